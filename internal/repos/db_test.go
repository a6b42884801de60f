package repos_test

import (
	"path/filepath"
	"testing"

	"comanda/internal/repos"
)

func TestOpenDB_BootstrapAndIdempotence(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, err := repos.OpenDB(dsn)
	if err != nil {
		t.Fatal(err)
	}

	counts := map[string]int{"menus": 7, "tables": 10, "products": 10}
	for table, want := range counts {
		var n int
		if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
			t.Fatal(err)
		}
		if n != want {
			t.Fatalf("%s: want %d seeded rows, got %d", table, want, n)
		}
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	// A second open against the same file must not duplicate anything.
	db, err = repos.OpenDB(dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	for table, want := range counts {
		var n int
		if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
			t.Fatal(err)
		}
		if n != want {
			t.Fatalf("%s after reopen: want %d rows, got %d", table, want, n)
		}
	}
}

func TestOpenDB_MemoryCapsConnections(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()

	// The whole pool must be one connection, otherwise each query could
	// land on a fresh empty in-memory database.
	if got := db.Stats().MaxOpenConnections; got != 1 {
		t.Fatalf("want 1 max open connection for :memory:, got %d", got)
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM menus`); err != nil {
		t.Fatal(err)
	}
	if n != 7 {
		t.Fatalf("seeded schema not visible: %d menus", n)
	}
}

func TestOpenDB_UnwritablePath(t *testing.T) {
	if _, err := repos.OpenDB(filepath.Join(t.TempDir(), "missing", "sub", "x.db")); err == nil {
		t.Fatal("want an error for an unwritable path")
	}
}

func TestSeedSkippedWhenCatalogEdited(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "test.db")

	db, err := repos.OpenDB(dsn)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := db.Exec(`DELETE FROM products WHERE name <> 'Bandeja Paisa'`); err != nil {
		t.Fatal(err)
	}
	if err := db.Close(); err != nil {
		t.Fatal(err)
	}

	// The dish seed only fires on an empty catalog; a trimmed one stays put.
	db, err = repos.OpenDB(dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer db.Close()
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM products`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("trimmed catalog must not be reseeded, got %d products", n)
	}
}
