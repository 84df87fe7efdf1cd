package dto

import "time"

// GenerationConfigDTO atualização parcial da configuração de geração
type GenerationConfigDTO struct {
	Enabled          *bool    `json:"enabled"`
	ApiKey           *string  `json:"api_key"`
	Model            *string  `json:"model"`
	Temperature      *float64 `json:"temperature"`
	ActiveCategories []string `json:"active_categories"`
	Topics           *string  `json:"topics"`
	Instructions     *string  `json:"instructions"`
	PromptTemplate   *string  `json:"prompt_template"`
	FrequencyDays    *int     `json:"frequency_days"`
	TimeOfDay        *string  `json:"time_of_day"`
}

// GenerationConfigViewDTO visão da configuração (sem a credencial)
type GenerationConfigViewDTO struct {
	Enabled          bool       `json:"enabled"`
	HasApiKey        bool       `json:"has_api_key"`
	Model            string     `json:"model"`
	Temperature      float64    `json:"temperature"`
	ActiveCategories []string   `json:"active_categories"`
	Topics           string     `json:"topics"`
	Instructions     string     `json:"instructions"`
	PromptTemplate   string     `json:"prompt_template"`
	FrequencyDays    int        `json:"frequency_days"`
	TimeOfDay        string     `json:"time_of_day"`
	LastRunAt        *time.Time `json:"last_run_at"`
}

// ManualGenerationDTO gatilho manual de geração (admin)
type ManualGenerationDTO struct {
	Model        string   `json:"model" binding:"required"`
	Temperature  float64  `json:"temperature"`
	Topics       []string `json:"topics" binding:"required,min=1"`
	Instructions string   `json:"instructions" binding:"required"`
}
