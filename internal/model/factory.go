package model

import "time"

// Factory is a manufacturing location. The ID is a generated business ID
// (FAC{date}{hex}), not a UUID.
type Factory struct {
	ID        string    `gorm:"type:varchar(50);primaryKey" json:"id"`
	Name      string    `gorm:"type:varchar(200);not null" json:"name" validate:"required"`
	MobileNo  string    `gorm:"type:varchar(20)" json:"mobile_no"`
	City      string    `gorm:"type:varchar(100)" json:"city"`
	State     string    `gorm:"type:varchar(100)" json:"state"`
	CreatedAt time.Time `json:"created_at"`
}
