package services

import (
	"comanda/internal/cart"
	"comanda/internal/domain"
	"comanda/internal/pricing"
	"comanda/internal/repos"

	"github.com/google/uuid"
)

// CustomerForm is the raw checkout form, validated before anything is
// persisted.
type CustomerForm struct {
	Name        string
	IdentType   string
	IdentNumber string
	Phone       string
	TableNumber int
}

type OrderService struct {
	Store  *cart.Store
	Orders *repos.OrderRepo
}

func NewOrderService(store *cart.Store, orders *repos.OrderRepo) *OrderService {
	return &OrderService{Store: store, Orders: orders}
}

// Place turns the session's cart into a persisted order. Validation happens
// before any database work; the persistence steps run in one transaction,
// so a failure part-way leaves no order, no lines, no customer row and an
// untouched table. On success the cart is cleared and the order id returned
// for the confirmation page.
func (s *OrderService) Place(sessionID string, form CustomerForm) (string, pricing.Summary, error) {
	lines := s.Store.Lines(sessionID)
	if len(lines) == 0 {
		return "", pricing.Summary{}, domain.ErrCartEmpty
	}
	if form.Name == "" || form.IdentNumber == "" || form.Phone == "" || form.TableNumber == 0 {
		return "", pricing.Summary{}, domain.ErrIncompleteData
	}
	if !domain.IsIdentType(form.IdentType) {
		return "", pricing.Summary{}, domain.NewValidationError("tipo de identificación no válido")
	}

	sum := pricing.Summarize(lines)

	sub := repos.Submission{
		OrderID: uuid.NewString(),
		Customer: domain.Customer{
			Name:        form.Name,
			IdentType:   form.IdentType,
			IdentNumber: form.IdentNumber,
			Phone:       form.Phone,
		},
		TableNumber:    form.TableNumber,
		Subtotal:       sum.Subtotal,
		Tax:            sum.TaxTotal,
		ConsumptionTax: sum.ConsumptionTax,
		Total:          sum.Total,
	}
	for _, l := range lines {
		sub.Lines = append(sub.Lines, repos.LineInput{
			ProductID: l.Product.ID,
			Qty:       l.Qty,
			UnitPrice: l.Product.Price,
			UnitTax:   pricing.UnitTax(l.Product.Price, l.Product.IVA),
			Subtotal:  l.Subtotal(),
		})
	}

	if err := s.Orders.Submit(sub); err != nil {
		if domain.IsNotFound(err) {
			return "", pricing.Summary{}, err
		}
		return "", pricing.Summary{}, domain.NewPersistenceError("no se pudo registrar la orden", err)
	}

	s.Store.Clear(sessionID)
	return sub.OrderID, sum, nil
}

// UpdateStatus applies an admin-selected status. Any known status may
// follow any other; Completado and Cancelado additionally free the table.
func (s *OrderService) UpdateStatus(orderID, status string) error {
	if !domain.IsOrderStatus(status) {
		return domain.ErrUnknownStatus
	}
	err := s.Orders.UpdateStatus(orderID, status, domain.ReleasesTable(status))
	if err != nil {
		if domain.IsNotFound(err) {
			return err
		}
		return domain.NewPersistenceError("no se pudo actualizar el estado de la orden", err)
	}
	return nil
}
