package repos

import (
	"database/sql"

	"comanda/internal/domain"

	"github.com/jmoiron/sqlx"
)

type MenuRepo struct{ db *sqlx.DB }

func NewMenuRepo(db *sqlx.DB) *MenuRepo { return &MenuRepo{db: db} }

func (r *MenuRepo) List() ([]domain.Menu, error) {
	var out []domain.Menu
	err := r.db.Select(&out, `
	  SELECT id, weekday, COALESCE(description,'') AS description,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM menus ORDER BY id
	`)
	return out, err
}

func (r *MenuRepo) ByWeekday(weekday string) (domain.Menu, error) {
	var m domain.Menu
	err := r.db.Get(&m, `
	  SELECT id, weekday, COALESCE(description,'') AS description,
	         created_at, COALESCE(updated_at,'') AS updated_at
	  FROM menus WHERE weekday = ?
	`, weekday)
	return m, err
}

// Products returns the dishes assigned to one menu, name-ordered.
func (r *MenuRepo) Products(menuID int64) ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT p.id, p.name, COALESCE(p.description,'') AS description, p.price, p.iva,
	         p.prep_minutes, COALESCE(p.image,'') AS image, p.created_at,
	         COALESCE(p.updated_at,'') AS updated_at
	  FROM menu_products mp JOIN products p ON p.id = mp.product_id
	  WHERE mp.menu_id = ?
	  ORDER BY p.name
	`, menuID)
	return out, err
}

// Contains reports whether the (menu, product) pairing already exists.
func (r *MenuRepo) Contains(menuID, productID int64) (bool, error) {
	var one int
	err := r.db.Get(&one, `
	  SELECT 1 FROM menu_products WHERE menu_id = ? AND product_id = ?
	`, menuID, productID)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *MenuRepo) AddProduct(menuID, productID int64) error {
	_, err := r.db.Exec(`
	  INSERT INTO menu_products(menu_id, product_id) VALUES(?, ?)
	`, menuID, productID)
	return err
}

func (r *MenuRepo) RemoveProduct(menuID, productID int64) error {
	_, err := r.db.Exec(`
	  DELETE FROM menu_products WHERE menu_id = ? AND product_id = ?
	`, menuID, productID)
	return err
}
