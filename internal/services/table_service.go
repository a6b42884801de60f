package services

import (
	"database/sql"

	"comanda/internal/domain"
	"comanda/internal/repos"
)

type TableService struct {
	Tables *repos.TableRepo
}

func NewTableService(tables *repos.TableRepo) *TableService {
	return &TableService{Tables: tables}
}

func (s *TableService) List() ([]domain.Table, error) {
	out, err := s.Tables.List()
	if err != nil {
		return nil, domain.NewPersistenceError("no se pudieron cargar las mesas", err)
	}
	return out, nil
}

// Create rejects a duplicate table number before writing anything.
func (s *TableService) Create(number, capacity int) (int64, error) {
	if number < 1 {
		return 0, domain.NewValidationError("número de mesa no válido")
	}
	if capacity < 1 {
		return 0, domain.NewValidationError("capacidad no válida")
	}
	taken, err := s.Tables.NumberExists(number)
	if err != nil {
		return 0, domain.NewPersistenceError("no se pudo verificar la mesa", err)
	}
	if taken {
		return 0, domain.ErrTableNumberUsed
	}
	id, err := s.Tables.Create(number, capacity, domain.TableFree)
	if err != nil {
		return 0, domain.NewPersistenceError("no se pudo crear la mesa", err)
	}
	return id, nil
}

// SetStatus is the direct admin override, independent of order activity.
func (s *TableService) SetStatus(id int64, status string) error {
	if !domain.IsTableStatus(status) {
		return domain.ErrUnknownStatus
	}
	if err := s.Tables.SetStatus(id, status); err != nil {
		return domain.NewPersistenceError("no se pudo actualizar la mesa", err)
	}
	return nil
}

// Delete is unconditional; orders referencing the table survive with a
// NULL table reference.
func (s *TableService) Delete(id int64) error {
	if err := s.Tables.Delete(id); err != nil {
		return domain.NewPersistenceError("no se pudo eliminar la mesa", err)
	}
	return nil
}

// Check answers the live status API for one table number.
func (s *TableService) Check(number int) (domain.TableAvailability, error) {
	t, err := s.Tables.ByNumber(number)
	if err != nil {
		if err == sql.ErrNoRows {
			return domain.TableAvailability{}, domain.ErrTableNotFound
		}
		return domain.TableAvailability{}, domain.NewPersistenceError("no se pudo consultar la mesa", err)
	}
	return domain.TableAvailability{Number: t.Number, Status: t.Status, Capacity: t.Capacity}, nil
}
