package services

import (
	"testing"

	"staffdesk/internal/domain"
	"staffdesk/internal/repositories"

	"github.com/DATA-DOG/go-sqlmock"
)

func paymentRow(status string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{
		"id", "contractor_name", "contractor_id", "period_start", "period_end",
		"amount", "currency", "status", "updated_by",
	}).AddRow(1, "Acme Contracting", 9, "2026-08-01", "2026-08-31", 2500.0, "USD", status, "")
}

func TestTransitionApprovePending(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM contractor_payments").WithArgs(int64(1)).
		WillReturnRows(paymentRow(domain.StatusPending))
	mock.ExpectExec("UPDATE contractor_payments SET status").
		WithArgs(domain.StatusApproved, "ops@example.com", int64(1)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	svc := PaymentService{Repo: repositories.PaymentRepository{DB: db}}
	payment, err := svc.Transition(1, domain.ActionApprove, "ops@example.com")
	if err != nil {
		t.Fatalf("approve failed: %v", err)
	}
	if payment.Status != domain.StatusApproved {
		t.Fatalf("status not updated: %q", payment.Status)
	}
	if payment.UpdatedBy != "ops@example.com" {
		t.Fatalf("acting user not recorded: %q", payment.UpdatedBy)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransitionMarkPaidRequiresApproved(t *testing.T) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock init error: %v", err)
	}
	defer db.Close()

	mock.ExpectQuery("FROM contractor_payments").WithArgs(int64(1)).
		WillReturnRows(paymentRow(domain.StatusPending))

	svc := PaymentService{Repo: repositories.PaymentRepository{DB: db}}
	_, err = svc.Transition(1, domain.ActionMarkPaid, "ops@example.com")
	if !domain.IsConflict(err) {
		t.Fatalf("expected conflict for mark-paid on pending, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestTransitionRefusesAnonymousCaller(t *testing.T) {
	svc := PaymentService{}
	_, err := svc.Transition(1, domain.ActionApprove, "  ")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error without acting user, got %v", err)
	}
}

func TestTransitionUnknownAction(t *testing.T) {
	svc := PaymentService{}
	_, err := svc.Transition(1, "escalate", "ops@example.com")
	if !domain.IsValidation(err) {
		t.Fatalf("expected validation error for unknown action, got %v", err)
	}
}
