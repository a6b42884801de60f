package domain

import "errors"

// Error codes surfaced to handlers for status mapping.
const (
	CodeValidation  = "VALIDATION"
	CodeNotFound    = "NOT_FOUND"
	CodeConflict    = "CONFLICT"
	CodePersistence = "PERSISTENCE"
)

type DomainError struct {
	Code    string
	Message string
	Err     error
}

func (e *DomainError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *DomainError) Unwrap() error { return e.Err }

func NewValidationError(msg string) *DomainError {
	return &DomainError{Code: CodeValidation, Message: msg}
}

func NewNotFoundError(msg string) *DomainError {
	return &DomainError{Code: CodeNotFound, Message: msg}
}

func NewConflictError(msg string) *DomainError {
	return &DomainError{Code: CodeConflict, Message: msg}
}

// NewPersistenceError wraps a driver error; the cause goes to the log,
// the message to the user.
func NewPersistenceError(msg string, err error) *DomainError {
	return &DomainError{Code: CodePersistence, Message: msg, Err: err}
}

func hasCode(err error, code string) bool {
	var de *DomainError
	return errors.As(err, &de) && de.Code == code
}

func IsValidation(err error) bool  { return hasCode(err, CodeValidation) }
func IsNotFound(err error) bool    { return hasCode(err, CodeNotFound) }
func IsConflict(err error) bool    { return hasCode(err, CodeConflict) }
func IsPersistence(err error) bool { return hasCode(err, CodePersistence) }

// Shared business-rule errors.
var (
	ErrCartEmpty       = NewValidationError("el carrito está vacío")
	ErrIncompleteData  = NewValidationError("datos incompletos")
	ErrTableNotFound   = NewNotFoundError("mesa no encontrada")
	ErrMenuNotFound    = NewNotFoundError("menú no encontrado")
	ErrOrderNotFound   = NewNotFoundError("orden no encontrada")
	ErrProductNotFound = NewNotFoundError("producto no encontrado")
	ErrProductInMenu   = NewConflictError("este producto ya está en el menú")
	ErrTableNumberUsed = NewConflictError("ya existe una mesa con ese número")
	ErrUnknownStatus   = NewValidationError("estado no válido")
)
