package model

import "time"

type Sponsor struct {
	ID        uint64    `gorm:"primaryKey"`
	Name      string    `gorm:"type:varchar(100);not null" json:"name"`
	LogoKey   string    `gorm:"type:varchar(255)" json:"logo_key"`
	LinkURL   string    `gorm:"type:varchar(255)" json:"link_url"`
	Position  int       `gorm:"not null;default:0" json:"position"`
	Active    bool      `gorm:"type:tinyint(1);not null;default:1" json:"active"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (Sponsor) TableName() string {
	return "sponsors"
}
