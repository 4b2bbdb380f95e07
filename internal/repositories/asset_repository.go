package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/query"
)

type AssetRepository struct {
	DB *sql.DB
}

func (r AssetRepository) db() *sql.DB { return defaultDB(r.DB) }

var assetSortColumns = map[string]string{
	"name":         "name",
	"assetTag":     "asset_tag",
	"purchaseDate": "purchase_date",
	"status":       "status",
}

const assetSelect = `
	SELECT id,
	       COALESCE(name,''),
	       COALESCE(asset_tag,''),
	       COALESCE(serial_number,''),
	       COALESCE(category,''),
	       COALESCE(status,''),
	       COALESCE(assigned_to,''),
	       COALESCE(DATE_FORMAT(purchase_date,'%Y-%m-%d'),''),
	       COALESCE(purchase_price,0),
	       COALESCE(currency,'USD'),
	       COALESCE(company_id,0)
	FROM assets
`

// List fetches one page of assets with all criteria pushed into SQL.
func (r AssetRepository) List(p query.ListParams) ([]models.Asset, int64, error) {
	where := []string{}
	args := []any{}

	if clause, clauseArgs := likeClause([]string{"name", "asset_tag", "serial_number"}, p.Search); clause != "" {
		where = append(where, clause)
		args = append(args, clauseArgs...)
	}
	if status, ok := p.EnumField("status", "available", "assigned", "maintenance", "retired", "disposed", "reserved"); ok {
		where = append(where, "LOWER(status) = ?")
		args = append(args, status)
	}
	if category := p.Field("category"); category != "" {
		where = append(where, "LOWER(category) = ?")
		args = append(args, strings.ToLower(category))
	}
	if companyID, ok := p.IntField("companyId"); ok {
		where = append(where, "company_id = ?")
		args = append(args, companyID)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db().QueryRow("SELECT COUNT(*) FROM assets"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(append([]any{}, args...), p.CappedLimit(), p.Offset())
	rows, err := r.db().Query(assetSelect+whereSQL+orderClause(p, assetSortColumns)+"LIMIT ? OFFSET ?", listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Asset{}
	for rows.Next() {
		var a models.Asset
		if err := rows.Scan(&a.ID, &a.Name, &a.AssetTag, &a.SerialNumber, &a.Category,
			&a.Status, &a.AssignedTo, &a.PurchaseDate, &a.PurchasePrice, &a.Currency, &a.CompanyID); err != nil {
			return nil, 0, err
		}
		out = append(out, a)
	}
	return out, total, rows.Err()
}

func (r AssetRepository) GetByID(id int64) (models.Asset, error) {
	var a models.Asset
	err := r.db().QueryRow(assetSelect+" WHERE id=? LIMIT 1", id).Scan(
		&a.ID, &a.Name, &a.AssetTag, &a.SerialNumber, &a.Category,
		&a.Status, &a.AssignedTo, &a.PurchaseDate, &a.PurchasePrice, &a.Currency, &a.CompanyID)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Asset{}, domain.NotFoundError{Resource: "asset"}
	}
	return a, err
}

func (r AssetRepository) Create(p models.AssetPayload) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO assets (name, asset_tag, serial_number, category, status, assigned_to, purchase_date, purchase_price, currency, company_id)
		VALUES (?, ?, ?, ?, ?, ?, NULLIF(?,''), ?, ?, NULLIF(?,0))`,
		p.Name, p.AssetTag, p.SerialNumber, p.Category, p.Status, p.AssignedTo,
		p.PurchaseDate, p.PurchasePrice, p.Currency, p.CompanyID)
	if err != nil {
		return 0, dupKeyConflict(err, "asset")
	}
	return res.LastInsertId()
}

func (r AssetRepository) Update(id int64, p models.AssetPayload) error {
	res, err := r.db().Exec(`
		UPDATE assets
		SET name=?, asset_tag=?, serial_number=?, category=?, status=?, assigned_to=?,
		    purchase_date=NULLIF(?,''), purchase_price=?, currency=?, company_id=NULLIF(?,0)
		WHERE id=?`,
		p.Name, p.AssetTag, p.SerialNumber, p.Category, p.Status, p.AssignedTo,
		p.PurchaseDate, p.PurchasePrice, p.Currency, p.CompanyID, id)
	if err != nil {
		return dupKeyConflict(err, "asset")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "asset"}
	}
	return nil
}

func (r AssetRepository) Delete(id int64) error {
	res, err := r.db().Exec("DELETE FROM assets WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "asset"}
	}
	return nil
}
