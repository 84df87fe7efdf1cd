package model

import "time"

// GenerationConfig linha única (id=1) que governa a geração automática
type GenerationConfig struct {
	ID               uint64     `gorm:"primaryKey" json:"id"`
	Enabled          bool       `gorm:"type:tinyint(1);not null;default:0" json:"enabled"`
	ApiKey           string     `gorm:"type:varchar(255)" json:"-"`
	Model            string     `gorm:"type:varchar(100)" json:"model"`
	Temperature      float64    `gorm:"not null;default:0.7" json:"temperature"`
	ActiveCategories string     `gorm:"type:varchar(255)" json:"active_categories"`
	Topics           string     `gorm:"type:text" json:"topics"`
	Instructions     string     `gorm:"type:text" json:"instructions"`
	PromptTemplate   string     `gorm:"type:text" json:"prompt_template"`
	FrequencyDays    int        `gorm:"not null;default:1" json:"frequency_days"`
	TimeOfDay        string     `gorm:"type:varchar(5)" json:"time_of_day"`
	LastRunAt        *time.Time `json:"last_run_at"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

func (GenerationConfig) TableName() string {
	return "generation_config"
}
