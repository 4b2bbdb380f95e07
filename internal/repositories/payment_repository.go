package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/query"
)

type PaymentRepository struct {
	DB *sql.DB
}

func (r PaymentRepository) db() *sql.DB { return defaultDB(r.DB) }

var paymentSortColumns = map[string]string{
	"contractorName": "contractor_name",
	"periodStart":    "period_start",
	"amount":         "amount",
	"status":         "status",
}

const paymentSelect = `
	SELECT id,
	       COALESCE(contractor_name,''),
	       COALESCE(contractor_id,0),
	       COALESCE(DATE_FORMAT(period_start,'%Y-%m-%d'),''),
	       COALESCE(DATE_FORMAT(period_end,'%Y-%m-%d'),''),
	       COALESCE(amount,0),
	       COALESCE(currency,'USD'),
	       COALESCE(status,''),
	       COALESCE(updated_by,'')
	FROM contractor_payments
`

func (r PaymentRepository) List(p query.ListParams) ([]models.ContractorPayment, int64, error) {
	where := []string{}
	args := []any{}

	if clause, clauseArgs := likeClause([]string{"contractor_name"}, p.Search); clause != "" {
		where = append(where, clause)
		args = append(args, clauseArgs...)
	}
	if status, ok := p.EnumField("status", "pending", "approved", "paid", "cancelled"); ok {
		where = append(where, "LOWER(status) = ?")
		args = append(args, status)
	}
	if contractorID, ok := p.IntField("contractorId"); ok {
		where = append(where, "contractor_id = ?")
		args = append(args, contractorID)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db().QueryRow("SELECT COUNT(*) FROM contractor_payments"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(append([]any{}, args...), p.CappedLimit(), p.Offset())
	rows, err := r.db().Query(paymentSelect+whereSQL+orderClause(p, paymentSortColumns)+"LIMIT ? OFFSET ?", listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.ContractorPayment{}
	for rows.Next() {
		var cp models.ContractorPayment
		if err := rows.Scan(&cp.ID, &cp.ContractorName, &cp.ContractorID, &cp.PeriodStart,
			&cp.PeriodEnd, &cp.Amount, &cp.Currency, &cp.Status, &cp.UpdatedBy); err != nil {
			return nil, 0, err
		}
		out = append(out, cp)
	}
	return out, total, rows.Err()
}

func (r PaymentRepository) GetByID(id int64) (models.ContractorPayment, error) {
	var cp models.ContractorPayment
	err := r.db().QueryRow(paymentSelect+" WHERE id=? LIMIT 1", id).Scan(
		&cp.ID, &cp.ContractorName, &cp.ContractorID, &cp.PeriodStart,
		&cp.PeriodEnd, &cp.Amount, &cp.Currency, &cp.Status, &cp.UpdatedBy)
	if errors.Is(err, sql.ErrNoRows) {
		return models.ContractorPayment{}, domain.NotFoundError{Resource: "contractor payment"}
	}
	return cp, err
}

func (r PaymentRepository) Create(p models.ContractorPaymentPayload) (int64, error) {
	status := p.Status
	if status == "" {
		status = domain.StatusPending
	}
	res, err := r.db().Exec(`
		INSERT INTO contractor_payments (contractor_name, contractor_id, period_start, period_end, amount, currency, status)
		VALUES (?, NULLIF(?,0), NULLIF(?,''), NULLIF(?,''), ?, ?, ?)`,
		p.ContractorName, p.ContractorID, p.PeriodStart, p.PeriodEnd, p.Amount, p.Currency, status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r PaymentRepository) Update(id int64, p models.ContractorPaymentPayload) error {
	res, err := r.db().Exec(`
		UPDATE contractor_payments
		SET contractor_name=?, contractor_id=NULLIF(?,0),
		    period_start=NULLIF(?,''), period_end=NULLIF(?,''),
		    amount=?, currency=?
		WHERE id=?`,
		p.ContractorName, p.ContractorID, p.PeriodStart, p.PeriodEnd, p.Amount, p.Currency, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "contractor payment"}
	}
	return nil
}

// UpdateStatus records a workflow transition together with who made it.
func (r PaymentRepository) UpdateStatus(id int64, status, updatedBy string) error {
	res, err := r.db().Exec(`
		UPDATE contractor_payments SET status=?, updated_by=? WHERE id=?`,
		status, updatedBy, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "contractor payment"}
	}
	return nil
}

func (r PaymentRepository) Delete(id int64) error {
	res, err := r.db().Exec("DELETE FROM contractor_payments WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "contractor payment"}
	}
	return nil
}
