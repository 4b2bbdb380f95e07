package repositories

import (
	"net/url"
	"testing"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/query"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/go-sql-driver/mysql"
)

func assetRows() *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "name", "asset_tag", "serial_number", "category", "status",
		"assigned_to", "purchase_date", "purchase_price", "currency", "company_id",
	})
}

func TestAssetListPushesCriteriaToSQL(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	params := query.Parse(url.Values{
		"q":         {"dell"},
		"status":    {"Available"},
		"companyId": {"3"},
		"page":      {"2"},
		"limit":     {"10"},
	}, "status", "category", "companyId")

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM assets").
		WithArgs("%dell%", "%dell%", "%dell%", "available", int64(3)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(11))
	mock.ExpectQuery("FROM assets").
		WithArgs("%dell%", "%dell%", "%dell%", "available", int64(3), 10, 10).
		WillReturnRows(assetRows().
			AddRow(1, "Dell XPS", "A-1", "SN1", "laptop", "available", "", "2025-01-15", 1500.0, "USD", 3))

	repo := AssetRepository{DB: db}
	assets, total, err := repo.List(params)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if total != 11 {
		t.Fatalf("total wrong: %d", total)
	}
	if len(assets) != 1 || assets[0].Name != "Dell XPS" {
		t.Fatalf("unexpected page: %+v", assets)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssetListCapsPageSize(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	params := query.Parse(url.Values{"limit": {"500"}})

	mock.ExpectQuery("SELECT COUNT\\(\\*\\) FROM assets").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectQuery("FROM assets").
		WithArgs(query.MaxLimit, 0).
		WillReturnRows(assetRows())

	repo := AssetRepository{DB: db}
	if _, _, err := repo.List(params); err != nil {
		t.Fatalf("list failed: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAssetGetByIDNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM assets").WithArgs(int64(42)).
		WillReturnRows(assetRows())

	repo := AssetRepository{DB: db}
	if _, err := repo.GetByID(42); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestAssetCreateDuplicateTagConflicts(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("INSERT INTO assets").
		WillReturnError(&mysql.MySQLError{Number: 1062, Message: "Duplicate entry 'A-1' for key 'assets.asset_tag'"})

	repo := AssetRepository{DB: db}
	if _, err := repo.Create(models.AssetPayload{Name: "Dell XPS", AssetTag: "A-1"}); !domain.IsConflict(err) {
		t.Fatalf("duplicate tag should map to conflict, got %v", err)
	}
}

func TestAssetDeleteNotFound(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("DELETE FROM assets").WithArgs(int64(9)).
		WillReturnResult(sqlmock.NewResult(0, 0))

	repo := AssetRepository{DB: db}
	if err := repo.Delete(9); !domain.IsNotFound(err) {
		t.Fatalf("expected not found, got %v", err)
	}
}
