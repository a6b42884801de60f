package repos_test

import (
	"database/sql"
	"testing"

	"comanda/internal/domain"
	"comanda/internal/repos"
)

func TestCustomerUpsert(t *testing.T) {
	db, err := repos.OpenDB(":memory:")
	if err != nil {
		t.Fatal(err)
	}
	repo := repos.NewCustomerRepo(db)

	if _, err := repo.ByIdent("CC", "1020304050"); err != sql.ErrNoRows {
		t.Fatalf("want ErrNoRows for unknown customer, got %v", err)
	}

	id1, err := repo.Upsert(domain.Customer{
		Name: "Ana Pérez", IdentType: "CC", IdentNumber: "1020304050", Phone: "3001234567",
	})
	if err != nil {
		t.Fatal(err)
	}

	// Same identity: row is refreshed in place, not duplicated.
	id2, err := repo.Upsert(domain.Customer{
		Name: "Ana María Pérez", IdentType: "CC", IdentNumber: "1020304050", Phone: "3017654321",
	})
	if err != nil {
		t.Fatal(err)
	}
	if id1 != id2 {
		t.Fatalf("upsert minted a new id: %d != %d", id1, id2)
	}

	c, err := repo.ByIdent("CC", "1020304050")
	if err != nil {
		t.Fatal(err)
	}
	if c.Name != "Ana María Pérez" || c.Phone != "3017654321" {
		t.Fatalf("row not refreshed: %+v", c)
	}

	// A different document type is a different customer.
	if _, err := repo.Upsert(domain.Customer{
		Name: "Ana Pérez", IdentType: "PP", IdentNumber: "1020304050",
	}); err != nil {
		t.Fatal(err)
	}
	all, err := repo.List()
	if err != nil {
		t.Fatal(err)
	}
	if len(all) != 2 {
		t.Fatalf("want 2 customers, got %d", len(all))
	}
}
