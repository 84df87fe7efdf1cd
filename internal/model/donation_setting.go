package model

import "time"

// DonationSetting linha única (id=1) com a configuração de doação
type DonationSetting struct {
	ID        uint64    `gorm:"primaryKey" json:"id"`
	Enabled   bool      `gorm:"type:tinyint(1);not null;default:0" json:"enabled"`
	PixKey    string    `gorm:"type:varchar(255)" json:"pix_key"`
	Message   string    `gorm:"type:text" json:"message"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (DonationSetting) TableName() string {
	return "donation_settings"
}
