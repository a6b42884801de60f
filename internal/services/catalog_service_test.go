package services_test

import (
	"testing"

	"github.com/jmoiron/sqlx"

	"comanda/internal/domain"
	"comanda/internal/repos"
	"comanda/internal/services"
)

func newCatalog(t *testing.T) (*services.CatalogService, *sqlx.DB) {
	t.Helper()
	db := seededDB(t)
	return services.NewCatalogService(repos.NewMenuRepo(db), repos.NewProductRepo(db)), db
}

func TestProductsForDay(t *testing.T) {
	svc, _ := newCatalog(t)

	lunes, err := svc.ProductsForDay("lunes")
	if err != nil {
		t.Fatal(err)
	}
	if len(lunes) != 3 {
		t.Fatalf("lunes should seed 3 dishes, got %d", len(lunes))
	}

	miercoles, err := svc.ProductsForDay("miercoles")
	if err != nil {
		t.Fatal(err)
	}
	if len(miercoles) != 1 || miercoles[0].Name != "Cazuela de Mariscos" {
		t.Fatalf("unexpected miércoles menu: %+v", miercoles)
	}

	if _, err := svc.ProductsForDay("feriado"); err != domain.ErrMenuNotFound {
		t.Fatalf("want ErrMenuNotFound, got %v", err)
	}
}

func TestAddToMenu_DuplicateRejected(t *testing.T) {
	svc, db := newCatalog(t)
	pid := productID(t, db, "Bandeja Paisa")

	// Not on jueves yet: first pairing succeeds.
	if err := svc.AddToMenu("jueves", pid); err != nil {
		t.Fatal(err)
	}
	// Second attempt is a conflict and the set is unchanged.
	if err := svc.AddToMenu("jueves", pid); err != domain.ErrProductInMenu {
		t.Fatalf("want ErrProductInMenu, got %v", err)
	}

	jueves, err := svc.ProductsForDay("jueves")
	if err != nil {
		t.Fatal(err)
	}
	if len(jueves) != 2 { // seeded Mondongo + the new pairing
		t.Fatalf("jueves should have 2 dishes, got %d", len(jueves))
	}
}

func TestAddToMenu_UnknownProduct(t *testing.T) {
	svc, _ := newCatalog(t)
	if err := svc.AddToMenu("lunes", 9999); err != domain.ErrProductNotFound {
		t.Fatalf("want ErrProductNotFound, got %v", err)
	}
}

func TestRemoveFromMenu(t *testing.T) {
	svc, db := newCatalog(t)
	pid := productID(t, db, "Fritanga")

	if err := svc.RemoveFromMenu("domingo", pid); err != nil {
		t.Fatal(err)
	}
	domingo, err := svc.ProductsForDay("domingo")
	if err != nil {
		t.Fatal(err)
	}
	if len(domingo) != 0 {
		t.Fatalf("domingo should be empty, got %d dishes", len(domingo))
	}
	// Removing a pairing that is not there is a no-op.
	if err := svc.RemoveFromMenu("domingo", pid); err != nil {
		t.Fatalf("second removal should be silent, got %v", err)
	}
}
