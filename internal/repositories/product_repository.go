package repositories

import (
	"database/sql"
	"errors"
	"strings"

	"staffdesk/internal/domain"
	"staffdesk/internal/domain/models"
	"staffdesk/internal/query"
)

type ProductRepository struct {
	DB *sql.DB
}

func (r ProductRepository) db() *sql.DB { return defaultDB(r.DB) }

var productSortColumns = map[string]string{
	"name":  "name",
	"sku":   "sku",
	"price": "price",
}

const productSelect = `
	SELECT id,
	       COALESCE(name,''),
	       COALESCE(sku,''),
	       COALESCE(category,''),
	       COALESCE(price,0),
	       COALESCE(currency,'USD'),
	       COALESCE(stock_qty,0),
	       COALESCE(status,'')
	FROM products
`

func (r ProductRepository) List(p query.ListParams) ([]models.Product, int64, error) {
	where := []string{}
	args := []any{}

	if clause, clauseArgs := likeClause([]string{"name", "sku"}, p.Search); clause != "" {
		where = append(where, clause)
		args = append(args, clauseArgs...)
	}
	if status, ok := p.EnumField("status", "active", "discontinued", "draft"); ok {
		where = append(where, "LOWER(status) = ?")
		args = append(args, status)
	}
	if category := p.Field("category"); category != "" {
		where = append(where, "LOWER(category) = ?")
		args = append(args, strings.ToLower(category))
	}

	whereSQL := ""
	if len(where) > 0 {
		whereSQL = " WHERE " + strings.Join(where, " AND ")
	}

	var total int64
	if err := r.db().QueryRow("SELECT COUNT(*) FROM products"+whereSQL, args...).Scan(&total); err != nil {
		return nil, 0, err
	}

	listArgs := append(append([]any{}, args...), p.CappedLimit(), p.Offset())
	rows, err := r.db().Query(productSelect+whereSQL+orderClause(p, productSortColumns)+"LIMIT ? OFFSET ?", listArgs...)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	out := []models.Product{}
	for rows.Next() {
		var pr models.Product
		if err := rows.Scan(&pr.ID, &pr.Name, &pr.SKU, &pr.Category, &pr.Price,
			&pr.Currency, &pr.StockQty, &pr.Status); err != nil {
			return nil, 0, err
		}
		out = append(out, pr)
	}
	return out, total, rows.Err()
}

func (r ProductRepository) GetByID(id int64) (models.Product, error) {
	var pr models.Product
	err := r.db().QueryRow(productSelect+" WHERE id=? LIMIT 1", id).Scan(
		&pr.ID, &pr.Name, &pr.SKU, &pr.Category, &pr.Price, &pr.Currency, &pr.StockQty, &pr.Status)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Product{}, domain.NotFoundError{Resource: "product"}
	}
	return pr, err
}

func (r ProductRepository) Create(p models.ProductPayload) (int64, error) {
	res, err := r.db().Exec(`
		INSERT INTO products (name, sku, category, price, currency, stock_qty, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)`,
		p.Name, p.SKU, p.Category, p.Price, p.Currency, p.StockQty, p.Status)
	if err != nil {
		return 0, dupKeyConflict(err, "product")
	}
	return res.LastInsertId()
}

func (r ProductRepository) Update(id int64, p models.ProductPayload) error {
	res, err := r.db().Exec(`
		UPDATE products
		SET name=?, sku=?, category=?, price=?, currency=?, stock_qty=?, status=?
		WHERE id=?`,
		p.Name, p.SKU, p.Category, p.Price, p.Currency, p.StockQty, p.Status, id)
	if err != nil {
		return dupKeyConflict(err, "product")
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "product"}
	}
	return nil
}

func (r ProductRepository) Delete(id int64) error {
	res, err := r.db().Exec("DELETE FROM products WHERE id=?", id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.NotFoundError{Resource: "product"}
	}
	return nil
}
