package auth

import (
	"time"

	"github.com/Xyscco/easy-finances/internal/models"

	"github.com/google/uuid"
)

type RegisterRequest struct {
	Email          string `json:"email" binding:"required,email"`
	Senha          string `json:"senha" binding:"required"`
	ConfirmarSenha string `json:"confirmar_senha" binding:"required"`
	PrimeiroNome   string `json:"primeiro_nome" binding:"required"`
	UltimoNome     string `json:"ultimo_nome" binding:"required"`
	Telefone       string `json:"telefone"`
}

type LoginRequest struct {
	Email string `json:"email" binding:"required"`
	Senha string `json:"senha" binding:"required"`
}

// UserResponse is the public user profile. The password hash never appears.
type UserResponse struct {
	ID           uuid.UUID `json:"id"`
	Email        string    `json:"email"`
	PrimeiroNome string    `json:"primeiro_nome"`
	UltimoNome   string    `json:"ultimo_nome"`
	NomeCompleto string    `json:"nome_completo"`
	Telefone     string    `json:"telefone,omitempty"`
	Ativo        bool      `json:"ativo"`
	CriadoEm     time.Time `json:"criado_em"`
	AtualizadoEm time.Time `json:"atualizado_em"`
}

func NewUserResponse(u models.User) UserResponse {
	return UserResponse{
		ID:           u.ID,
		Email:        u.Email,
		PrimeiroNome: u.FirstName,
		UltimoNome:   u.LastName,
		NomeCompleto: u.FullName(),
		Telefone:     u.Phone,
		Ativo:        u.Active,
		CriadoEm:     u.CreatedAt,
		AtualizadoEm: u.UpdatedAt,
	}
}

// TokenResponse is the login payload.
type TokenResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int          `json:"expires_in"`
	Usuario     UserResponse `json:"usuario"`
}
