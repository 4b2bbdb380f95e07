package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/query"
)

type LeaveRepository struct {
	DB *sql.DB
}

func (r LeaveRepository) db() *sql.DB { return defaultDB(r.DB) }

var leaveSortColumns = map[string]string{
	"employeeName":  "employee_name",
	"leaveType":     "leave_type",
	"financialYear": "financial_year",
}

const leaveSelect = `
	SELECT id,
	       COALESCE(employee_name,''),
	       COALESCE(employee_id,0),
	       COALESCE(leave_type,''),
	       COALESCE(financial_year,''),
	       COALESCE(entitled,0),
	       COALESCE(taken,0),
	       COALESCE(adjusted,0),
	       COALESCE(carried_forward,0)
	FROM leave_balances
`

func (r LeaveRepository) List(p query.ListParams) ([]models.LeaveBalance, int64, error) {
	where := []string{}
	args := []any{}

	if clause, clauseArgs := likeClause([]string{"employee_name"}, p.Search); clause != "" {
		where = append(where, clause)
		args = append(args, clauseArgs...)
	}
	if leaveType := p.Field("leaveType"); leaveType != "" {
		where = append(where, "LOWER(leave_type) = ?")
		args = append(args, strings.ToLower(leaveType))
	}
	if year := p.Field("financialYear"); year != "" {
		where = append(where, "financial_year = ?")
		args = append(args, year)
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
	if err := r.db().QueryRow("SELECT COUNT(*) FROM leave_balances"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(append([]any{}, args...), p.CappedLimit(), p.Offset())
	rows, err := r.db().Query(leaveSelect+whereSQL+orderClause(p, leaveSortColumns)+"LIMIT ? OFFSET ?", listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.LeaveBalance{}
	for rows.Next() {
		var b models.LeaveBalance
		if err := rows.Scan(&b.ID, &b.EmployeeName, &b.EmployeeID, &b.LeaveType,
			&b.FinancialYear, &b.Entitled, &b.Taken, &b.Adjusted, &b.CarriedForward); err != nil {
			return nil, 0, err
		}
		out = append(out, b)
	}
	return out, total, rows.Err()
}

func (r LeaveRepository) GetByID(id int64) (models.LeaveBalance, error) {
	var b models.LeaveBalance
	err := r.db().QueryRow(leaveSelect+" WHERE id=? LIMIT 1", id).Scan(
		&b.ID, &b.EmployeeName, &b.EmployeeID, &b.LeaveType,
		&b.FinancialYear, &b.Entitled, &b.Taken, &b.Adjusted, &b.CarriedForward)
	if errors.Is(err, sql.ErrNoRows) {
		return models.LeaveBalance{}, domain.NotFoundError{Resource: "leave balance"}
	}
	return b, err
}

// ApplyAdjustment bumps the adjusted column and records the audit trail
// entry in the same statement order the portal expects: exactly one
// mutation against the balance row.
func (r LeaveRepository) ApplyAdjustment(id int64, delta float64, reason, adjustedBy string) error {
	res, err := r.db().Exec(`
		UPDATE leave_balances
		SET adjusted = adjusted + ?,
		    last_adjust_reason = ?,
		    last_adjusted_by = ?
		WHERE id=?`,
		delta, reason, adjustedBy, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "leave balance"}
	}
	return nil
}

// ListByYear returns every balance row for one financial year.
func (r LeaveRepository) ListByYear(year string) ([]models.LeaveBalance, error) {
	rows, err := r.db().Query(leaveSelect+" WHERE financial_year=?", year)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.LeaveBalance{}
	for rows.Next() {
		var b models.LeaveBalance
		if err := rows.Scan(&b.ID, &b.EmployeeName, &b.EmployeeID, &b.LeaveType,
			&b.FinancialYear, &b.Entitled, &b.Taken, &b.Adjusted, &b.CarriedForward); err != nil {
			return nil, err
		}
		out = append(out, b)
	}
	return out, rows.Err()
}

// Insert creates one balance row, skipping duplicates on the
// (employee, leave type, year) unique key. Reports whether a new row was
// actually inserted: MySQL returns 1 affected row for an insert and 0 or 2
// when the duplicate-key branch fires.
func (r LeaveRepository) Insert(b models.LeaveBalance) (bool, error) {
	res, err := r.db().Exec(`
		INSERT INTO leave_balances (employee_name, employee_id, leave_type, financial_year, entitled, taken, adjusted, carried_forward)
		VALUES (?, ?, ?, ?, ?, 0, 0, ?)
		ON DUPLICATE KEY UPDATE employee_name = VALUES(employee_name)`,
		b.EmployeeName, b.EmployeeID, b.LeaveType, b.FinancialYear, b.Entitled, b.CarriedForward)
	if err != nil {
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n == 1, nil
}

// ActiveEmployees lists staff eligible for balance initialization.
func (r LeaveRepository) ActiveEmployees() ([]models.User, error) {
	rows, err := r.db().Query(`
		SELECT id, COALESCE(name,''), COALESCE(username,''), COALESCE(email,''), COALESCE(role,''), COALESCE(status,'')
		FROM users
		WHERE LOWER(status) = 'active'`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Role, &u.Status); err != nil {
			return nil, err
		}
		out = append(out, u)
	}
	return out, rows.Err()
}

func (r LeaveRepository) Delete(id int64) error {
	res, err := r.db().Exec("DELETE FROM leave_balances WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "leave balance"}
	}
	return nil
}
