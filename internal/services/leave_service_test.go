package services

import (
	"testing"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestAdjustRequiresReason(t *testing.T) {
	svc := LeaveService{}
	err := svc.Adjust(models.LeaveAdjustment{BalanceID: 1, Adjustment: -1, Reason: "  "}, "hr@example.com")
	if !domain.IsValidation(err) {
		t.Fatalf("empty reason must be rejected, got %v", err)
	}
}

func TestAdjustRequiresNonZeroDelta(t *testing.T) {
	svc := LeaveService{}
	err := svc.Adjust(models.LeaveAdjustment{BalanceID: 1, Adjustment: 0, Reason: "correction"}, "hr@example.com")
	if !domain.IsValidation(err) {
		t.Fatalf("zero adjustment must be rejected, got %v", err)
	}
}

func TestAdjustIssuesExactlyOneMutation(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE leave_balances").
		WithArgs(-1.0, "correction", "hr@example.com", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := LeaveService{Repo: repositories.LeaveRepository{DB: db}}
	adj := models.LeaveAdjustment{BalanceID: 5, Adjustment: -1, Reason: "correction"}
	if err := svc.Adjust(adj, "hr@example.com"); err != nil {
		t.Fatalf("adjust failed: %v", err)
	}

	// one Exec expected, none outstanding
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestAdjustMissingBalance(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectExec("UPDATE leave_balances").
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := LeaveService{Repo: repositories.LeaveRepository{DB: db}}
	adj := models.LeaveAdjustment{BalanceID: 99, Adjustment: 2, Reason: "backfill"}
	if err := svc.Adjust(adj, "hr@example.com"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for missing balance, got %v", err)
	}
}

func TestInitializeYearRejectsBadYear(t *testing.T) {
	svc := LeaveService{}
	if _, err := svc.InitializeYear("2026"); !domain.IsValidation(err) {
		t.Fatalf("expected validation error for malformed year, got %v", err)
	}
}

func TestCarryForwardCapsRemaining(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "employee_name", "employee_id", "leave_type", "financial_year",
		"entitled", "taken", "adjusted", "carried_forward",
	}).
		// Asha has 18 remaining (caps at 10), Ben is at -2 (floors to 0).
		AddRow(1, "Asha", 7, "annual", "2025-26", 20.0, 2.0, 0.0, 0.0).
		AddRow(2, "Ben", 8, "sick", "2025-26", 10.0, 12.0, 0.0, 0.0)

	mock.ExpectQuery("FROM leave_balances").WithArgs("2025-26").WillReturnRows(rows)
	mock.ExpectExec("INSERT INTO leave_balances").
		WithArgs("Asha", int64(7), "annual", "2026-27", 20.0, CarryForwardCap).
		WillReturnResult(sqlmock.NewResult(3, 1))
	mock.ExpectExec("INSERT INTO leave_balances").
		WithArgs("Ben", int64(8), "sick", "2026-27", 10.0, 0.0).
		WillReturnResult(sqlmock.NewResult(4, 1))

	svc := LeaveService{Repo: repositories.LeaveRepository{DB: db}}
	n, err := svc.CarryForward("2025-26")
	if err != nil {
		t.Fatalf("carry forward failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 rows carried, got %d", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCarryForwardSkipsExistingRows(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	rows := sqlmock.NewRows([]string{
		"id", "employee_name", "employee_id", "leave_type", "financial_year",
		"entitled", "taken", "adjusted", "carried_forward",
	}).
		AddRow(1, "Asha", 7, "annual", "2025-26", 20.0, 2.0, 0.0, 0.0).
		AddRow(2, "Ben", 8, "sick", "2025-26", 10.0, 12.0, 0.0, 0.0)

	mock.ExpectQuery("FROM leave_balances").WithArgs("2025-26").WillReturnRows(rows)
	mock.ExpectExec("INSERT INTO leave_balances").
		WithArgs("Asha", int64(7), "annual", "2026-27", 20.0, CarryForwardCap).
		WillReturnResult(sqlmock.NewResult(3, 1))
	// Ben's next-year row already exists, the duplicate-key branch no-ops.
	mock.ExpectExec("INSERT INTO leave_balances").
		WithArgs("Ben", int64(8), "sick", "2026-27", 10.0, 0.0).
		WillReturnResult(sqlmock.NewResult(0, 0))

	svc := LeaveService{Repo: repositories.LeaveRepository{DB: db}}
	n, err := svc.CarryForward("2025-26")
	if err != nil {
		t.Fatalf("carry forward failed: %v", err)
	}
	if n != 1 {
		t.Fatalf("existing rows must not be counted, got %d", n)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestCarryForwardEmptyYear(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM leave_balances").WithArgs("2025-26").
		WillReturnRows(sqlmock.NewRows([]string{
			"id", "employee_name", "employee_id", "leave_type", "financial_year",
			"entitled", "taken", "adjusted", "carried_forward",
		}))

	svc := LeaveService{Repo: repositories.LeaveRepository{DB: db}}
	if _, err := svc.CarryForward("2025-26"); !domain.IsNotFound(err) {
		t.Fatalf("expected not found for empty year, got %v", err)
	}
}
