package repos

import (
	"comanda/internal/domain"

	"github.com/jmoiron/sqlx"
)

type ProductRepo struct{ db *sqlx.DB }

func NewProductRepo(db *sqlx.DB) *ProductRepo { return &ProductRepo{db: db} }

const productCols = `
  id, name, COALESCE(description,'') AS description, price, iva, prep_minutes,
  COALESCE(image,'') AS image, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *ProductRepo) List() ([]domain.Product, error) {
	var out []domain.Product
	err := r.db.Select(&out, `SELECT `+productCols+` FROM products ORDER BY name`)
	return out, err
}

// Search filters the admin product list by name; empty q lists everything.
func (r *ProductRepo) Search(q string) ([]domain.Product, error) {
	if q == "" {
		return r.List()
	}
	var out []domain.Product
	err := r.db.Select(&out, `
	  SELECT `+productCols+`
	  FROM products
	  WHERE LOWER(name) LIKE ?
	  ORDER BY name
	`, "%"+q+"%")
	return out, err
}

func (r *ProductRepo) Get(id int64) (domain.Product, error) {
	var p domain.Product
	err := r.db.Get(&p, `SELECT `+productCols+` FROM products WHERE id = ?`, id)
	return p, err
}

func (r *ProductRepo) Create(p domain.Product) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO products(name, description, price, iva, prep_minutes, image)
	  VALUES(?, ?, ?, ?, ?, ?)
	`, p.Name, p.Description, p.Price, p.IVA, p.PrepMinutes, p.Image)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *ProductRepo) Update(p domain.Product) error {
	_, err := r.db.Exec(`
	  UPDATE products
	  SET name = ?, description = ?, price = ?, iva = ?, prep_minutes = ?, image = ?,
	      updated_at = CURRENT_TIMESTAMP
	  WHERE id = ?
	`, p.Name, p.Description, p.Price, p.IVA, p.PrepMinutes, p.Image, p.ID)
	return err
}

// Delete removes the product; menu pairings cascade away with it.
func (r *ProductRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM products WHERE id = ?`, id)
	return err
}
