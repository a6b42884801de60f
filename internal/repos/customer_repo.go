package repos

import (
	"comanda/internal/domain"

	"github.com/jmoiron/sqlx"
)

type CustomerRepo struct{ db *sqlx.DB }

func NewCustomerRepo(db *sqlx.DB) *CustomerRepo { return &CustomerRepo{db: db} }

const customerCols = `
  id, name, ident_type, ident_number, COALESCE(phone,'') AS phone,
  created_at, COALESCE(updated_at,'') AS updated_at`

// ByIdent looks a customer up by identity key (type + number).
func (r *CustomerRepo) ByIdent(identType, identNumber string) (*domain.Customer, error) {
	var c domain.Customer
	err := r.db.Get(&c, `
	  SELECT `+customerCols+`
	  FROM customers WHERE ident_type = ? AND ident_number = ?
	`, identType, identNumber)
	if err != nil {
		return nil, err
	}
	return &c, nil
}

// Upsert creates the customer or refreshes name/phone on the existing row.
// Duplicate identification is never a conflict here.
func (r *CustomerRepo) Upsert(c domain.Customer) (int64, error) {
	return upsertCustomerTx(r.db, c)
}

// upsertCustomerTx runs on the pool or inside a transaction; the order
// submission workflow reuses it under its own tx.
func upsertCustomerTx(q sqlx.Ext, c domain.Customer) (int64, error) {
	_, err := q.Exec(`
	  INSERT INTO customers(name, ident_type, ident_number, phone)
	  VALUES(?, ?, ?, ?)
	  ON CONFLICT(ident_type, ident_number) DO UPDATE
	  SET name = excluded.name, phone = excluded.phone, updated_at = CURRENT_TIMESTAMP
	`, c.Name, c.IdentType, c.IdentNumber, c.Phone)
	if err != nil {
		return 0, err
	}
	var id int64
	err = sqlx.Get(q, &id, `
	  SELECT id FROM customers WHERE ident_type = ? AND ident_number = ?
	`, c.IdentType, c.IdentNumber)
	return id, err
}

func (r *CustomerRepo) List() ([]domain.Customer, error) {
	var out []domain.Customer
	err := r.db.Select(&out, `SELECT `+customerCols+` FROM customers ORDER BY name`)
	return out, err
}
