package dto

// RegisterDTO cadastro de usuário
type RegisterDTO struct {
	Name       string `json:"name" binding:"required,min=2,max=100"`
	Email      string `json:"email" binding:"required,email"`
	Password   string `json:"password" binding:"required,min=6,max=72"`
	NotifyNews bool   `json:"notify_news"`
}

// CredentialDTO credenciais de login
type CredentialDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UserDTO visão do usuário autenticado
type UserDTO struct {
	ID         uint64   `json:"id"`
	Name       string   `json:"name"`
	Email      string   `json:"email"`
	Roles      []string `json:"roles"`
	NotifyNews bool     `json:"notify_news"`
}

// UpdateUserDTO edição de perfil
type UpdateUserDTO struct {
	Name       *string `json:"name"`
	NotifyNews *bool   `json:"notify_news"`
}

// LoginResultDTO token + dados básicos
type LoginResultDTO struct {
	Token string   `json:"token"`
	User  *UserDTO `json:"user"`
}

// RoleChangeDTO alteração de papel de um usuário
type RoleChangeDTO struct {
	UserID uint64 `json:"user_id" binding:"required"`
	Role   string `json:"role" binding:"required"`
}
