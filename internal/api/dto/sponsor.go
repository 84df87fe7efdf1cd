package dto

// SponsorDTO criação/edição de patrocinador
type SponsorDTO struct {
	Name     string `json:"name" binding:"required,max=100"`
	LogoKey  string `json:"logo_key"`
	LinkURL  string `json:"link_url" binding:"omitempty,url"`
	Position int    `json:"position"`
	Active   *bool  `json:"active"`
}

// DonationDTO edição da configuração de doação
type DonationDTO struct {
	Enabled *bool   `json:"enabled"`
	PixKey  *string `json:"pix_key"`
	Message *string `json:"message"`
}
