package domain

import "errors"

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound           = errors.New("recurso no encontrado")
	ErrUserNotFound       = errors.New("usuario no encontrado")
	ErrEmailAlreadyExists = errors.New("el email ya está registrado")
	ErrInvalidInput       = errors.New("entrada inválida")
	ErrDuplicate          = errors.New("recurso duplicado")
	ErrUnauthorized       = errors.New("no autorizado")
	ErrForbidden          = errors.New("acceso denegado")
	ErrInsufficientStock  = errors.New("stock insuficiente en el lote")
	ErrBatchInactive      = errors.New("el lote está inactivo")
	ErrMedicationMismatch = errors.New("el lote no pertenece al medicamento indicado")
	ErrStockExceedsQty    = errors.New("el stock no puede superar la cantidad recibida del lote")
	ErrMedicationInUse    = errors.New("el medicamento tiene lotes activos asociados")
	ErrSelfAction         = errors.New("no puede eliminar ni desactivar su propia cuenta")
)
