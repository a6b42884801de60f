package repos

import (
	"database/sql"

	"comanda/internal/domain"

	"github.com/jmoiron/sqlx"
)

type TableRepo struct{ db *sqlx.DB }

func NewTableRepo(db *sqlx.DB) *TableRepo { return &TableRepo{db: db} }

const tableCols = `
  id, number, capacity, status, created_at, COALESCE(updated_at,'') AS updated_at`

func (r *TableRepo) List() ([]domain.Table, error) {
	var out []domain.Table
	err := r.db.Select(&out, `SELECT `+tableCols+` FROM tables ORDER BY number`)
	return out, err
}

// ByNumber resolves a table by its dining-room number, not its row id.
// Returns sql.ErrNoRows when no such table exists.
func (r *TableRepo) ByNumber(number int) (domain.Table, error) {
	var t domain.Table
	err := r.db.Get(&t, `SELECT `+tableCols+` FROM tables WHERE number = ?`, number)
	return t, err
}

// NumberExists is the pre-insert duplicate check for table creation.
func (r *TableRepo) NumberExists(number int) (bool, error) {
	var one int
	err := r.db.Get(&one, `SELECT 1 FROM tables WHERE number = ?`, number)
	if err == sql.ErrNoRows {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return true, nil
}

func (r *TableRepo) Create(number, capacity int, status string) (int64, error) {
	res, err := r.db.Exec(`
	  INSERT INTO tables(number, capacity, status) VALUES(?, ?, ?)
	`, number, capacity, status)
	if err != nil {
		return 0, err
	}
	return res.LastInsertId()
}

func (r *TableRepo) SetStatus(id int64, status string) error {
	_, err := r.db.Exec(`
	  UPDATE tables SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, status, id)
	return err
}

// Delete is unconditional: orders referencing the table keep their rows
// and their table_id goes NULL.
func (r *TableRepo) Delete(id int64) error {
	_, err := r.db.Exec(`DELETE FROM tables WHERE id = ?`, id)
	return err
}
