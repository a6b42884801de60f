package domain

// Status values are persisted in Spanish, exactly as the back office
// displays them. Changing a literal breaks existing rows.

const (
	OrderStatusNew             = "Nuevo pedido"
	OrderStatusInPreparation   = "En preparación"
	OrderStatusReadyToServe    = "Listo para servir"
	OrderStatusEnRoute         = "En camino"
	OrderStatusAwaitingPayment = "Esperando pago"
	OrderStatusPaid            = "Pagado"
	OrderStatusCompleted       = "Completado"
	OrderStatusOnHold          = "En espera"
	OrderStatusRejected        = "Rechazado"
	OrderStatusCancelled       = "Cancelado"
)

// OrderStatuses lists every status an admin may select, in menu order.
var OrderStatuses = []string{
	OrderStatusNew,
	OrderStatusInPreparation,
	OrderStatusReadyToServe,
	OrderStatusEnRoute,
	OrderStatusAwaitingPayment,
	OrderStatusPaid,
	OrderStatusCompleted,
	OrderStatusOnHold,
	OrderStatusRejected,
	OrderStatusCancelled,
}

func IsOrderStatus(s string) bool {
	for _, v := range OrderStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// ReleasesTable reports whether moving an order into s frees its table.
func ReleasesTable(s string) bool {
	return s == OrderStatusCompleted || s == OrderStatusCancelled
}

const (
	TableFree        = "Libre"
	TableOccupied    = "Ocupada"
	TableReserved    = "Reservada"
	TableMaintenance = "Mantenimiento"
)

var TableStatuses = []string{TableFree, TableOccupied, TableReserved, TableMaintenance}

func IsTableStatus(s string) bool {
	for _, v := range TableStatuses {
		if v == s {
			return true
		}
	}
	return false
}

// Identification document types accepted on checkout.
var IdentTypes = []string{"CC", "CE", "TI", "PP"}

func IsIdentType(s string) bool {
	for _, v := range IdentTypes {
		if v == s {
			return true
		}
	}
	return false
}

// Weekdays in menu-tab order; one menu row exists per entry.
var Weekdays = []string{"lunes", "martes", "miercoles", "jueves", "viernes", "sabado", "domingo"}

func IsWeekday(s string) bool {
	for _, v := range Weekdays {
		if v == s {
			return true
		}
	}
	return false
}
