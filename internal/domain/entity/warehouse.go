package entity

import "time"

// Warehouse representa una bodega de una empresa. (CompanyID, Name) es único.
type Warehouse struct {
	ID        int64
	CompanyID int64
	Name      string
	Location  string
	CreatedAt time.Time
}
