package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/query"
)

type PayslipRepository struct {
	DB *sql.DB
}

func (r PayslipRepository) db() *sql.DB { return defaultDB(r.DB) }

var payslipSortColumns = map[string]string{
	"employeeName": "employee_name",
	"periodMonth":  "period_month",
	"net":          "net",
}

const payslipSelect = `
	SELECT id,
	       COALESCE(employee_name,''),
	       COALESCE(employee_id,0),
	       COALESCE(period_month,''),
	       COALESCE(gross,0),
	       COALESCE(deductions,0),
	       COALESCE(net,0),
	       COALESCE(currency,'USD'),
	       COALESCE(status,'')
	FROM payslips
`

func (r PayslipRepository) List(p query.ListParams) ([]models.Payslip, int64, error) {
	where := []string{}
	args := []any{}

	if clause, clauseArgs := likeClause([]string{"employee_name"}, p.Search); clause != "" {
		where = append(where, clause)
		args = append(args, clauseArgs...)
	}
	if month := p.Field("periodMonth"); month != "" {
		where = append(where, "period_month = ?")
		args = append(args, month)
	}
	if status, ok := p.EnumField("status", "draft", "issued", "paid"); ok {
		where = append(where, "LOWER(status) = ?")
		args = append(args, status)
	}
	if employeeID, ok := p.IntField("employeeId"); ok {
		where = append(where, "employee_id = ?")
		args = append(args, employeeID)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db().QueryRow("SELECT COUNT(*) FROM payslips"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(append([]any{}, args...), p.CappedLimit(), p.Offset())
	rows, err := r.db().Query(payslipSelect+whereSQL+orderClause(p, payslipSortColumns)+"LIMIT ? OFFSET ?", listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Payslip{}
	for rows.Next() {
		var ps models.Payslip
		if err := rows.Scan(&ps.ID, &ps.EmployeeName, &ps.EmployeeID, &ps.PeriodMonth,
			&ps.Gross, &ps.Deductions, &ps.Net, &ps.Currency, &ps.Status); err != nil {
			return nil, 0, err
		}
		out = append(out, ps)
	}
	return out, total, rows.Err()
}

func (r PayslipRepository) GetByID(id int64) (models.Payslip, error) {
	var ps models.Payslip
	err := r.db().QueryRow(payslipSelect+" WHERE id=? LIMIT 1", id).Scan(
		&ps.ID, &ps.EmployeeName, &ps.EmployeeID, &ps.PeriodMonth,
		&ps.Gross, &ps.Deductions, &ps.Net, &ps.Currency, &ps.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Payslip{}, domain.NotFoundError{Resource: "payslip"}
	}
	return ps, err
}

func (r PayslipRepository) Create(p models.PayslipPayload) (int64, error) {
	net := p.Gross - p.Deductions
	status := p.Status
	if status == "" {
		status = "draft"
	}
	res, err := r.db().Exec(`
		INSERT INTO payslips (employee_name, employee_id, period_month, gross, deductions, net, currency, status)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		p.EmployeeName, p.EmployeeID, p.PeriodMonth, p.Gross, p.Deductions, net, p.Currency, status)
	if err != nil {
		return 0, dupKeyConflict(err, "payslip")
	}
	return res.LastInsertId()
}

func (r PayslipRepository) Update(id int64, p models.PayslipPayload) error {
	net := p.Gross - p.Deductions
	res, err := r.db().Exec(`
		UPDATE payslips
		SET employee_name=?, employee_id=?, period_month=?, gross=?, deductions=?, net=?, currency=?, status=?
		WHERE id=?`,
		p.EmployeeName, p.EmployeeID, p.PeriodMonth, p.Gross, p.Deductions, net, p.Currency, p.Status, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "payslip"}
	}
	return nil
}

func (r PayslipRepository) Delete(id int64) error {
	res, err := r.db().Exec("DELETE FROM payslips WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "payslip"}
	}
	return nil
}
