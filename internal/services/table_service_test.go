package services_test

import (
	"testing"

	"comanda/internal/cart"
	"comanda/internal/domain"
	"comanda/internal/repos"
	"comanda/internal/services"
)

func TestCreateTable_DuplicateNumberRejected(t *testing.T) {
	db := seededDB(t)
	svc := services.NewTableService(repos.NewTableRepo(db))

	id, err := svc.Create(11, 4)
	if err != nil {
		t.Fatal(err)
	}
	if id == 0 {
		t.Fatal("no id returned")
	}

	if _, err := svc.Create(11, 2); err != domain.ErrTableNumberUsed {
		t.Fatalf("want ErrTableNumberUsed, got %v", err)
	}
	var n int
	if err := db.Get(&n, `SELECT COUNT(*) FROM tables WHERE number = 11`); err != nil {
		t.Fatal(err)
	}
	if n != 1 {
		t.Fatalf("duplicate create must not write a row, found %d", n)
	}
}

func TestCreateTable_Validation(t *testing.T) {
	db := seededDB(t)
	svc := services.NewTableService(repos.NewTableRepo(db))

	if _, err := svc.Create(0, 4); !domain.IsValidation(err) {
		t.Fatalf("want validation error for number, got %v", err)
	}
	if _, err := svc.Create(12, 0); !domain.IsValidation(err) {
		t.Fatalf("want validation error for capacity, got %v", err)
	}
}

func TestSetTableStatus(t *testing.T) {
	db := seededDB(t)
	repo := repos.NewTableRepo(db)
	svc := services.NewTableService(repo)

	tbl, err := repo.ByNumber(1)
	if err != nil {
		t.Fatal(err)
	}
	if err := svc.SetStatus(tbl.ID, domain.TableMaintenance); err != nil {
		t.Fatal(err)
	}
	if got := tableStatus(t, db, 1); got != domain.TableMaintenance {
		t.Fatalf("want Mantenimiento, got %s", got)
	}

	if err := svc.SetStatus(tbl.ID, "Flotando"); err != domain.ErrUnknownStatus {
		t.Fatalf("want ErrUnknownStatus, got %v", err)
	}
}

func TestDeleteTable_OrdersSurvive(t *testing.T) {
	db := seededDB(t)
	store := cart.NewStore()
	cartSvc := services.NewCartService(store, repos.NewProductRepo(db))
	orderSvc := services.NewOrderService(store, repos.NewOrderRepo(db))
	tableRepo := repos.NewTableRepo(db)
	tableSvc := services.NewTableService(tableRepo)

	if err := cartSvc.Add("sid", productID(t, db, "Sancocho de Gallina")); err != nil {
		t.Fatal(err)
	}
	oid, _, err := orderSvc.Place("sid", validForm(4))
	if err != nil {
		t.Fatal(err)
	}

	tbl, err := tableRepo.ByNumber(4)
	if err != nil {
		t.Fatal(err)
	}
	// Deletion has no precondition, even with a live order on the table.
	if err := tableSvc.Delete(tbl.ID); err != nil {
		t.Fatal(err)
	}

	o, _, err := repos.NewOrderRepo(db).Get(oid)
	if err != nil {
		t.Fatal(err)
	}
	if o.TableNumber != 0 {
		t.Fatalf("order should show no table after deletion, got %d", o.TableNumber)
	}
}

func TestCheckTable(t *testing.T) {
	db := seededDB(t)
	svc := services.NewTableService(repos.NewTableRepo(db))

	av, err := svc.Check(6)
	if err != nil {
		t.Fatal(err)
	}
	if av.Number != 6 || av.Status != domain.TableReserved || av.Capacity != 8 {
		t.Fatalf("unexpected availability: %+v", av)
	}

	if _, err := svc.Check(99); !domain.IsNotFound(err) {
		t.Fatalf("want not-found, got %v", err)
	}
}
