package repos

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// OpenDB opens the sqlite database, ensures the schema and seeds baseline
// data. Every step is idempotent; running it on each start is safe.
func OpenDB(dsn string) (*sqlx.DB, error) {
	db, err := sqlx.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	// A plain :memory: dsn gives every pooled connection its own empty
	// database; a single connection keeps schema, seeds and queries together.
	if dsn == ":memory:" {
		db.SetMaxOpenConns(1)
	}

	if err := bootstrap(db); err != nil {
		_ = db.Close()
		return nil, err
	}
	return db, nil
}

func bootstrap(db *sqlx.DB) error {
	if err := db.Ping(); err != nil {
		return err
	}
	if err := ensureSchema(db); err != nil {
		return err
	}
	// Seven weekday menus and the default table set (conflict-skipping).
	if err := seedMenusAndTables(db); err != nil {
		return err
	}
	// Sample dishes + weekly assignments, only when the catalog is empty.
	return seedProductsIfEmpty(db)
}

func ensureSchema(db *sqlx.DB) error {
	schema := `
PRAGMA foreign_keys = ON;

-- Products
CREATE TABLE IF NOT EXISTS products(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  description TEXT,
  price NUMERIC NOT NULL CHECK (price > 0),
  iva NUMERIC NOT NULL DEFAULT 19 CHECK (iva >= 0),
  prep_minutes INTEGER NOT NULL DEFAULT 15,
  image TEXT DEFAULT '/static/placeholder.svg',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_products_name ON products(LOWER(name));

-- Menus: one row per weekday
CREATE TABLE IF NOT EXISTS menus(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  weekday TEXT NOT NULL UNIQUE,
  description TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

CREATE TABLE IF NOT EXISTS menu_products(
  menu_id INTEGER NOT NULL REFERENCES menus(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES products(id) ON DELETE CASCADE,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  PRIMARY KEY(menu_id, product_id)
);

-- Tables
CREATE TABLE IF NOT EXISTS tables(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  number INTEGER NOT NULL UNIQUE CHECK (number > 0),
  capacity INTEGER NOT NULL DEFAULT 4,
  status TEXT NOT NULL DEFAULT 'Libre',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);

-- Customers, keyed by identification
CREATE TABLE IF NOT EXISTS customers(
  id INTEGER PRIMARY KEY AUTOINCREMENT,
  name TEXT NOT NULL,
  ident_type TEXT NOT NULL,
  ident_number TEXT NOT NULL,
  phone TEXT,
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT,
  UNIQUE(ident_type, ident_number)
);

-- Orders: totals are snapshots taken at submission time
CREATE TABLE IF NOT EXISTS orders(
  id TEXT PRIMARY KEY,
  customer_id INTEGER NOT NULL REFERENCES customers(id),
  table_id INTEGER REFERENCES tables(id) ON DELETE SET NULL,
  subtotal NUMERIC NOT NULL,
  tax NUMERIC NOT NULL,
  consumption_tax NUMERIC NOT NULL,
  total NUMERIC NOT NULL,
  status TEXT NOT NULL DEFAULT 'Nuevo pedido',
  created_at TEXT DEFAULT CURRENT_TIMESTAMP,
  updated_at TEXT
);
CREATE INDEX IF NOT EXISTS idx_orders_status     ON orders(status);
CREATE INDEX IF NOT EXISTS idx_orders_created_at ON orders(created_at);

CREATE TABLE IF NOT EXISTS order_lines(
  order_id TEXT NOT NULL REFERENCES orders(id) ON DELETE CASCADE,
  product_id INTEGER NOT NULL REFERENCES products(id),
  qty INTEGER NOT NULL CHECK (qty >= 1),
  unit_price NUMERIC NOT NULL,
  unit_tax NUMERIC NOT NULL,
  subtotal NUMERIC NOT NULL,
  PRIMARY KEY(order_id, product_id)
);
`
	_, err := db.Exec(schema)
	return err
}

// seedMenusAndTables inserts the weekday menus and the default dining room.
// Safe to run on every startup (idempotent).
func seedMenusAndTables(db *sqlx.DB) error {
	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.Exec(`
		INSERT INTO menus(weekday, description) VALUES
		('lunes',     'Menú del Lunes'),
		('martes',    'Menú del Martes'),
		('miercoles', 'Menú del Miércoles'),
		('jueves',    'Menú del Jueves'),
		('viernes',   'Menú del Viernes'),
		('sabado',    'Menú del Sábado'),
		('domingo',   'Menú del Domingo')
		ON CONFLICT(weekday) DO NOTHING
	`); err != nil {
		return err
	}

	if _, err := tx.Exec(`
		INSERT INTO tables(number, capacity, status) VALUES
		(1, 4,  'Libre'),
		(2, 2,  'Ocupada'),
		(3, 4,  'Ocupada'),
		(4, 6,  'Libre'),
		(5, 4,  'Ocupada'),
		(6, 8,  'Reservada'),
		(7, 2,  'Libre'),
		(8, 4,  'Ocupada'),
		(9, 6,  'Libre'),
		(10, 10, 'Reservada')
		ON CONFLICT(number) DO NOTHING
	`); err != nil {
		return err
	}

	return tx.Commit()
}

func seedProductsIfEmpty(db *sqlx.DB) error {
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		return err
	}
	if n > 0 {
		return nil
	}

	log.Println("[seed] inserting demo dishes and weekly menu assignments")

	tx := db.MustBegin()
	defer func() { _ = tx.Rollback() }()

	tx.MustExec(`INSERT INTO products(name, description, price, iva, prep_minutes) VALUES
	('Bandeja Paisa', 'Plato típico con frijoles, arroz, carne molida, chicharrón, huevo frito, aguacate y arepa', 25000, 19, 20),
	('Ajiaco Santafereño', 'Sopa tradicional bogotana con papas, pollo, mazorca, alcaparras y crema', 22000, 19, 25),
	('Pescado Frito', 'Mojarra frita con arroz de coco, patacones y ensalada', 28000, 19, 18),
	('Sancocho de Gallina', 'Sopa espesa con gallina, yuca, plátano, mazorca y papa', 24000, 19, 30),
	('Arroz con Pollo', 'Arroz con pollo, verduras, salsa de tomate y especias', 20000, 19, 22),
	('Cazuela de Mariscos', 'Guiso de mariscos variados en leche de coco con arroz y patacones', 32000, 19, 25),
	('Mondongo', 'Sopa de callos de res con papa, yuca y verduras', 23000, 19, 35),
	('Lechona Tolimense', 'Cerdo relleno de arroz, arvejas y especias', 26000, 19, 40),
	('Tamales', 'Masa de maíz rellena de pollo, cerdo y verduras envuelta en hojas de plátano', 18000, 19, 15),
	('Fritanga', 'Surtido de carnes fritas con papa criolla y arepa', 30000, 19, 20)`)

	assignments := map[string][]string{
		"lunes":     {"Bandeja Paisa", "Ajiaco Santafereño", "Pescado Frito"},
		"martes":    {"Sancocho de Gallina", "Arroz con Pollo"},
		"miercoles": {"Cazuela de Mariscos"},
		"jueves":    {"Mondongo"},
		"viernes":   {"Lechona Tolimense"},
		"sabado":    {"Tamales"},
		"domingo":   {"Fritanga"},
	}
	for day, names := range assignments {
		for _, name := range names {
			tx.MustExec(`
				INSERT INTO menu_products(menu_id, product_id)
				SELECT m.id, p.id FROM menus m, products p
				WHERE m.weekday = ? AND p.name = ?
				ON CONFLICT(menu_id, product_id) DO NOTHING
			`, day, name)
		}
	}

	return tx.Commit()
}
