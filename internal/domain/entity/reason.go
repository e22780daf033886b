package entity

import "time"

// Reason categoriza el motivo de un movimiento de stock (ajuste, devolución, pérdida...).
type Reason struct {
	ID          string
	Code        string // ej. ADJ, DEV, PER
	Description string
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}
