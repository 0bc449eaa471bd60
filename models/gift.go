package models

import "time"

// Gift is one item of the registry that guests can pick from.
// The purchased flag only moves false->true through the reservation flow's
// conditional update, and back to false when an admin deletes the purchase.
type Gift struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:255;not null" json:"name"`
	Link      string    `gorm:"size:512;not null" json:"link"`
	Price     float64   `gorm:"type:decimal(10,2);not null" json:"price"`
	Store     string    `gorm:"size:100;not null;index" json:"store"`
	Purchased bool      `gorm:"not null;default:false;index" json:"purchased"`
	CreatedAt time.Time `json:"created_at"`

	// Associations
	Purchase *Purchase `gorm:"foreignKey:GiftID" json:"purchase,omitempty"`
}

func (Gift) TableName() string {
	return "gifts"
}
