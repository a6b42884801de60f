package domain

type Product struct {
	ID          int64   `db:"id"`
	Name        string  `db:"name"`
	Description string  `db:"description"`
	Price       float64 `db:"price"`
	IVA         float64 `db:"iva"` // percent, e.g. 19
	PrepMinutes int     `db:"prep_minutes"`
	Image       string  `db:"image"`
	CreatedAt   string  `db:"created_at"`
	UpdatedAt   string  `db:"updated_at"`
}

type Menu struct {
	ID          int64  `db:"id"`
	Weekday     string `db:"weekday"` // lunes..domingo
	Description string `db:"description"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

type Table struct {
	ID        int64  `db:"id"`
	Number    int    `db:"number"`
	Capacity  int    `db:"capacity"`
	Status    string `db:"status"`
	CreatedAt string `db:"created_at"`
	UpdatedAt string `db:"updated_at"`
}

type Customer struct {
	ID          int64  `db:"id"`
	Name        string `db:"name"`
	IdentType   string `db:"ident_type"` // CC | CE | TI | PP
	IdentNumber string `db:"ident_number"`
	Phone       string `db:"phone"`
	CreatedAt   string `db:"created_at"`
	UpdatedAt   string `db:"updated_at"`
}

// TableAvailability is the JSON shape of /api/v1/tables/:numero/status.
type TableAvailability struct {
	Number   int    `json:"number"`
	Status   string `json:"status"`
	Capacity int    `json:"capacity,omitempty"`
}
