package settings

import (
	"github.com/Xyscco/easy-finances/internal/models"

	"github.com/google/uuid"
)

type SettingsResponse struct {
	ID                uuid.UUID `json:"id"`
	UsuarioID         uuid.UUID `json:"usuario_id"`
	Moeda             string    `json:"moeda"`
	SimboloMoeda      string    `json:"simbolo_moeda"`
	FormatoData       string    `json:"formato_data"`
	Tema              string    `json:"tema"`
	NotificacoesEmail bool      `json:"notificacoes_email"`
	NotificacoesPush  bool      `json:"notificacoes_push"`
	DiaFechamentoMes  int       `json:"dia_fechamento_mes"`
}

func NewSettingsResponse(s models.UserSettings) SettingsResponse {
	return SettingsResponse{
		ID:                s.ID,
		UsuarioID:         s.UserID,
		Moeda:             s.Currency,
		SimboloMoeda:      s.CurrencySymbol(),
		FormatoData:       s.DateFormat,
		Tema:              s.Theme,
		NotificacoesEmail: s.EmailNotifications,
		NotificacoesPush:  s.PushNotifications,
		DiaFechamentoMes:  s.MonthCloseDay,
	}
}

// UpdateRequest uses pointers so omitted fields stay untouched.
type UpdateRequest struct {
	Moeda             *string `json:"moeda"`
	FormatoData       *string `json:"formato_data"`
	Tema              *string `json:"tema"`
	NotificacoesEmail *bool   `json:"notificacoes_email"`
	NotificacoesPush  *bool   `json:"notificacoes_push"`
	DiaFechamentoMes  *int    `json:"dia_fechamento_mes"`
}
