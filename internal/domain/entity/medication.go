package entity

import "time"

// Medication representa un medicamento del catálogo de la farmacia.
// ReorderLevel es un umbral informativo de reposición; no bloquea operaciones.
type Medication struct {
	ID           string
	Code         string // código único, ej. MED001
	Name         string
	Category     string
	Supplier     string
	ReorderLevel int64
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
