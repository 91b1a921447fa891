package entity

import "time"

// Company representa una organización/tenant del sistema. Es el límite de alcance
// para bodegas, productos y proveedores.
type Company struct {
	ID        int64
	Name      string // único en todo el sistema
	Address   string
	CreatedAt time.Time
}
