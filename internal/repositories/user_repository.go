package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/query"
)

type UserRepository struct {
	DB *sql.DB
}

func (r UserRepository) db() *sql.DB { return defaultDB(r.DB) }

const userSelect = `
	SELECT id, COALESCE(name,''), COALESCE(username,''), COALESCE(email,''), COALESCE(role,''), COALESCE(status,'')
	FROM users
`

func (r UserRepository) List(p query.ListParams) ([]models.User, int64, error) {
	where := []string{}
	args := []any{}

	if clause, clauseArgs := likeClause([]string{"name", "username", "email"}, p.Search); clause != "" {
		where = append(where, clause)
		args = append(args, clauseArgs...)
	}
	if role := p.Field("role"); role != "" {
		where = append(where, "LOWER(role) = ?")
		args = append(args, strings.ToLower(role))
	}
	if status, ok := p.EnumField("status", "active", "inactive"); ok {
		where = append(where, "LOWER(status) = ?")
		args = append(args, status)
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db().QueryRow("SELECT COUNT(*) FROM users"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(append([]any{}, args...), p.CappedLimit(), p.Offset())
	rows, err := r.db().Query(userSelect+whereSQL+" ORDER BY id DESC LIMIT ? OFFSET ?", listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.User{}
	for rows.Next() {
		var u models.User
		if err := rows.Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Role, &u.Status); err != nil {
			return nil, 0, err
		}
		out = append(out, u)
	}
	return out, total, rows.Err()
}

func (r UserRepository) GetByID(id int64) (models.User, error) {
	var u models.User
	err := r.db().QueryRow(userSelect+" WHERE id=? LIMIT 1", id).Scan(
		&u.ID, &u.Name, &u.Username, &u.Email, &u.Role, &u.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, domain.NotFoundError{Resource: "user"}
	}
	return u, err
}

// GetByLogin resolves an email or username to an account plus its hash.
func (r UserRepository) GetByLogin(login string) (models.User, string, error) {
	var (
		u    models.User
		hash string
	)
	err := r.db().QueryRow(`
		SELECT id, COALESCE(name,''), COALESCE(username,''), COALESCE(email,''), COALESCE(role,''), COALESCE(status,''), COALESCE(password_hash,'')
		FROM users
		WHERE email = ? OR username = ?
		LIMIT 1`, login, login).Scan(&u.ID, &u.Name, &u.Username, &u.Email, &u.Role, &u.Status, &hash)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, "", domain.NotFoundError{Resource: "user"}
	}
	return u, hash, err
}

func (r UserRepository) Create(p models.UserPayload, passwordHash string) (int64, error) {
	status := p.Status
	if status == "" {
		status = "active"
	}
	role := p.Role
	if role == "" {
		role = "staff"
	}
	res, err := r.db().Exec(`
		INSERT INTO users (name, username, email, password_hash, role, status)
		VALUES (?, ?, ?, ?, ?, ?)`,
		p.Name, p.Username, p.Email, passwordHash, role, status)
	if err != nil {
		return 0, dupKeyConflict(err, "user")
	}
	return res.LastInsertId()
}

func (r UserRepository) Update(id int64, p models.UserPayload) error {
	res, err := r.db().Exec(`
		UPDATE users SET name=?, username=?, email=?, role=?, status=? WHERE id=?`,
		p.Name, p.Username, p.Email, p.Role, p.Status, id)
	if err != nil {
		return dupKeyConflict(err, "user")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}

func (r UserRepository) Delete(id int64) error {
	res, err := r.db().Exec("DELETE FROM users WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "user"}
	}
	return nil
}
