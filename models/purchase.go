package models

import "time"

// Purchase records which guest claimed a gift. At most one row per gift is
// written under correct operation; the reservation flow creates it inside
// the same transaction that flips the gift's purchased flag.
type Purchase struct {
	ID                    uint       `gorm:"primaryKey" json:"id"`
	GiftID                uint       `gorm:"not null;index" json:"gift_id"`
	BuyerName             string     `gorm:"size:100;not null" json:"buyer_name"`
	BuyerSurname          string     `gorm:"size:100;not null" json:"buyer_surname"`
	HomeDelivery          bool       `gorm:"not null;default:false" json:"home_delivery"`
	EstimatedDeliveryDate *time.Time `json:"estimated_delivery_date,omitempty"`
	CreatedAt             time.Time  `json:"created_at"`

	// Associations
	Gift *Gift `gorm:"foreignKey:GiftID" json:"gift,omitempty"`
}

func (Purchase) TableName() string {
	return "purchases"
}
