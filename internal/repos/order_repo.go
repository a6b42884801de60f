package repos

import (
	"database/sql"

	"comanda/internal/domain"

	"github.com/jmoiron/sqlx"
)

type OrderRepo struct{ db *sqlx.DB }

func NewOrderRepo(db *sqlx.DB) *OrderRepo { return &OrderRepo{db: db} }

// LineInput is one cart entry frozen for persistence: price and tax are
// captured here and never recomputed from the products table.
type LineInput struct {
	ProductID int64
	Qty       int
	UnitPrice float64
	UnitTax   float64
	Subtotal  float64
}

// Submission is everything the order workflow persists in one go.
type Submission struct {
	OrderID        string
	Customer       domain.Customer
	TableNumber    int
	Lines          []LineInput
	Subtotal       float64
	Tax            float64
	ConsumptionTax float64
	Total          float64
}

// Submit runs the whole order workflow in a single transaction: customer
// upsert, table resolution, order header, line snapshots and the table
// status flip to Ocupada. Any failure rolls the lot back.
func (r *OrderRepo) Submit(s Submission) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	customerID, err := upsertCustomerTx(tx, s.Customer)
	if err != nil {
		return err
	}

	var tableID int64
	if err := tx.Get(&tableID, `SELECT id FROM tables WHERE number = ?`, s.TableNumber); err != nil {
		if err == sql.ErrNoRows {
			return domain.ErrTableNotFound
		}
		return err
	}

	if _, err := tx.Exec(`
	  INSERT INTO orders(id, customer_id, table_id, subtotal, tax, consumption_tax, total, status)
	  VALUES(?, ?, ?, ?, ?, ?, ?, ?)
	`, s.OrderID, customerID, tableID, s.Subtotal, s.Tax, s.ConsumptionTax, s.Total, domain.OrderStatusNew); err != nil {
		return err
	}

	for _, l := range s.Lines {
		if _, err := tx.Exec(`
		  INSERT INTO order_lines(order_id, product_id, qty, unit_price, unit_tax, subtotal)
		  VALUES(?, ?, ?, ?, ?, ?)
		`, s.OrderID, l.ProductID, l.Qty, l.UnitPrice, l.UnitTax, l.Subtotal); err != nil {
			return err
		}
	}

	// No status precondition: a Reservada table still gets taken.
	if _, err := tx.Exec(`
	  UPDATE tables SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, domain.TableOccupied, tableID); err != nil {
		return err
	}

	return tx.Commit()
}

// ---------- Read models ----------

type OrderRow struct {
	ID             string  `db:"id"`
	CustomerName   string  `db:"customer_name"`
	IdentType      string  `db:"ident_type"`
	IdentNumber    string  `db:"ident_number"`
	Phone          string  `db:"phone"`
	TableNumber    int     `db:"table_number"` // 0 when the table was deleted
	Subtotal       float64 `db:"subtotal"`
	Tax            float64 `db:"tax"`
	ConsumptionTax float64 `db:"consumption_tax"`
	Total          float64 `db:"total"`
	Status         string  `db:"status"`
	CreatedAt      string  `db:"created_at"`
}

type OrderLineRow struct {
	ProductName string  `db:"product_name"`
	Qty         int     `db:"qty"`
	UnitPrice   float64 `db:"unit_price"`
	UnitTax     float64 `db:"unit_tax"`
	Subtotal    float64 `db:"subtotal"`
}

func (r *OrderRepo) Get(orderID string) (OrderRow, []OrderLineRow, error) {
	var o OrderRow
	if err := r.db.Get(&o, `
	  SELECT o.id, c.name AS customer_name, c.ident_type, c.ident_number,
	         COALESCE(c.phone,'') AS phone,
	         COALESCE(t.number, 0) AS table_number,
	         o.subtotal, o.tax, o.consumption_tax, o.total, o.status, o.created_at
	  FROM orders o
	  JOIN customers c ON c.id = o.customer_id
	  LEFT JOIN tables t ON t.id = o.table_id
	  WHERE o.id = ?
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}

	var lines []OrderLineRow
	if err := r.db.Select(&lines, `
	  SELECT p.name AS product_name, ol.qty, ol.unit_price, ol.unit_tax, ol.subtotal
	  FROM order_lines ol
	  JOIN products p ON p.id = ol.product_id
	  WHERE ol.order_id = ?
	  ORDER BY p.name
	`, orderID); err != nil {
		return OrderRow{}, nil, err
	}

	return o, lines, nil
}

// ListLatest returns recent orders, newest first, optionally filtered by
// status.
func (r *OrderRepo) ListLatest(status string, limit int) ([]OrderRow, error) {
	if limit <= 0 {
		limit = 100
	}
	q := `
	  SELECT o.id, c.name AS customer_name, c.ident_type, c.ident_number,
	         COALESCE(c.phone,'') AS phone,
	         COALESCE(t.number, 0) AS table_number,
	         o.subtotal, o.tax, o.consumption_tax, o.total, o.status, o.created_at
	  FROM orders o
	  JOIN customers c ON c.id = o.customer_id
	  LEFT JOIN tables t ON t.id = o.table_id
	`
	args := []any{}
	if status != "" {
		q += ` WHERE o.status = ?`
		args = append(args, status)
	}
	q += ` ORDER BY datetime(o.created_at) DESC, o.id LIMIT ?`
	args = append(args, limit)

	var out []OrderRow
	err := r.db.Select(&out, q, args...)
	return out, err
}

// CountByStatus feeds the admin dashboard.
func (r *OrderRepo) CountByStatus() (map[string]int, error) {
	var rows []struct {
		Status string `db:"status"`
		N      int    `db:"n"`
	}
	if err := r.db.Select(&rows, `SELECT status, COUNT(*) AS n FROM orders GROUP BY status`); err != nil {
		return nil, err
	}
	out := make(map[string]int, len(rows))
	for _, row := range rows {
		out[row.Status] = row.N
	}
	return out, nil
}

// UpdateStatus sets the order's status and, when freeTable is set, releases
// the associated table in the same transaction.
func (r *OrderRepo) UpdateStatus(orderID, status string, freeTable bool) error {
	tx, err := r.db.Beginx()
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback() }()

	res, err := tx.Exec(`
	  UPDATE orders SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, status, orderID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return domain.ErrOrderNotFound
	}

	if freeTable {
		if _, err := tx.Exec(`
		  UPDATE tables SET status = ?, updated_at = CURRENT_TIMESTAMP
		  WHERE id = (SELECT table_id FROM orders WHERE id = ?)
		`, domain.TableFree, orderID); err != nil {
			return err
		}
	}

	return tx.Commit()
}
