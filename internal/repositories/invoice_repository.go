package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/query"
)

type InvoiceRepository struct {
	DB *sql.DB
}

func (r InvoiceRepository) db() *sql.DB { return defaultDB(r.DB) }

var invoiceSortColumns = map[string]string{
	"invoiceNumber": "invoice_number",
	"issueDate":     "issue_date",
	"dueDate":       "due_date",
	"totalAmount":   "total_amount",
	"status":        "status",
}

const invoiceSelect = `
	SELECT id,
	       COALESCE(invoice_number,''),
	       COALESCE(customer_name,''),
	       COALESCE(customer_id,0),
	       COALESCE(DATE_FORMAT(issue_date,'%Y-%m-%d'),''),
	       COALESCE(DATE_FORMAT(due_date,'%Y-%m-%d'),''),
	       COALESCE(total_amount,0),
	       COALESCE(paid_amount,0),
	       COALESCE(currency,'USD'),
	       COALESCE(status,'')
	FROM invoices
`

func (r InvoiceRepository) whereFrom(p query.ListParams) (string, []any) {
	where := []string{}
	args := []any{}

	if clause, clauseArgs := likeClause([]string{"invoice_number", "customer_name"}, p.Search); clause != "" {
		where = append(where, clause)
		args = append(args, clauseArgs...)
	}
	if status, ok := p.EnumField("status", "pending", "approved", "paid", "cancelled"); ok {
		where = append(where, "LOWER(status) = ?")
		args = append(args, status)
	}
	if customerID, ok := p.IntField("customerId"); ok {
		where = append(where, "customer_id = ?")
		args = append(args, customerID)
	}

	if len(where) == 0 {
		return "", args
	}
	return " WHERE " + strings.Join(where, " AND "), args
}

func (r InvoiceRepository) List(p query.ListParams) ([]models.Invoice, int64, error) {
	whereSQL, args := r.whereFrom(p)

	var total int64
	if err := r.db().QueryRow("SELECT COUNT(*) FROM invoices"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(append([]any{}, args...), p.CappedLimit(), p.Offset())
	rows, err := r.db().Query(invoiceSelect+whereSQL+orderClause(p, invoiceSortColumns)+"LIMIT ? OFFSET ?", listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Invoice{}
	for rows.Next() {
		var inv models.Invoice
		if err := rows.Scan(&inv.ID, &inv.InvoiceNumber, &inv.CustomerName, &inv.CustomerID,
			&inv.IssueDate, &inv.DueDate, &inv.TotalAmount, &inv.PaidAmount, &inv.Currency, &inv.Status); err != nil {
			return nil, 0, err
		}
		out = append(out, inv)
	}
	return out, total, rows.Err()
}

// Summary totals the filtered set for the cards above the table.
func (r InvoiceRepository) Summary(p query.ListParams) (models.InvoiceSummary, error) {
	whereSQL, args := r.whereFrom(p)
	var s models.InvoiceSummary
	err := r.db().QueryRow(`
		SELECT COUNT(*),
		       COALESCE(SUM(total_amount),0),
		       COALESCE(SUM(paid_amount),0)
		FROM invoices`+whereSQL, args...).Scan(&s.Count, &s.TotalAmount, &s.PaidAmount)
	if err != nil {
		return models.InvoiceSummary{}, err
	}
	s.DueAmount = s.TotalAmount - s.PaidAmount
	return s, nil
}

func (r InvoiceRepository) GetByID(id int64) (models.Invoice, error) {
	var inv models.Invoice
	err := r.db().QueryRow(invoiceSelect+" WHERE id=? LIMIT 1", id).Scan(
		&inv.ID, &inv.InvoiceNumber, &inv.CustomerName, &inv.CustomerID,
		&inv.IssueDate, &inv.DueDate, &inv.TotalAmount, &inv.PaidAmount, &inv.Currency, &inv.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Invoice{}, domain.NotFoundError{Resource: "invoice"}
	}
	return inv, err
}

func (r InvoiceRepository) Create(p models.InvoicePayload) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO invoices (invoice_number, customer_name, customer_id, issue_date, due_date, total_amount, paid_amount, currency, status)
		VALUES (?, ?, NULLIF(?,0), NULLIF(?,''), NULLIF(?,''), ?, ?, ?, ?)`,
		p.InvoiceNumber, p.CustomerName, p.CustomerID, p.IssueDate, p.DueDate,
		p.TotalAmount, p.PaidAmount, p.Currency, p.Status)
	if err != nil {
		return 0, dupKeyConflict(err, "invoice")
	}
	return res.LastInsertId()
}

func (r InvoiceRepository) Update(id int64, p models.InvoicePayload) error {
	res, err := r.db().Exec(`
		UPDATE invoices
		SET invoice_number=?, customer_name=?, customer_id=NULLIF(?,0),
		    issue_date=NULLIF(?,''), due_date=NULLIF(?,''),
		    total_amount=?, paid_amount=?, currency=?, status=?
		WHERE id=?`,
		p.InvoiceNumber, p.CustomerName, p.CustomerID, p.IssueDate, p.DueDate,
		p.TotalAmount, p.PaidAmount, p.Currency, p.Status, id)
	if err != nil {
		return dupKeyConflict(err, "invoice")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "invoice"}
	}
	return nil
}

func (r InvoiceRepository) Delete(id int64) error {
	res, err := r.db().Exec("DELETE FROM invoices WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "invoice"}
	}
	return nil
}
