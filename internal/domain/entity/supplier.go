package entity

import "time"

// Supplier representa un proveedor (dato de referencia, sin comportamiento).
type Supplier struct {
	ID        string
	Name      string
	Active    bool
	CreatedAt time.Time
	UpdatedAt time.Time
}
