package settings

import (
	"errors"
	"net/http"

	"github.com/Xyscco/easy-finances/internal/middleware"
	"github.com/Xyscco/easy-finances/internal/services"
	"github.com/Xyscco/easy-finances/internal/utils"

	"github.com/gin-gonic/gin"
)

// Get godoc
// @Summary Configurações do usuário
// @Tags configuracoes
// @Produce  json
// @Security Bearer
// @Success 200 {object} SettingsResponse
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /configuracoes [get]
func Get(c *gin.Context) {
	user, ok := middleware.ActiveUser(c)
	if !ok {
		return
	}

	s, err := services.FindSettingsByUserID(user.ID)
	if err != nil {
		if errors.Is(err, services.ErrSettingsNotFound) {
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Erro interno"))
		return
	}

	c.JSON(http.StatusOK, NewSettingsResponse(s))
}

// Update godoc
// @Summary Atualiza as configurações do usuário
// @Tags configuracoes
// @Accept  json
// @Produce  json
// @Security Bearer
// @Param   input  body  UpdateRequest  true  "Campos a atualizar"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} utils.Response
// @Failure 401 {object} utils.Response
// @Failure 404 {object} utils.Response
// @Router /configuracoes [put]
func Update(c *gin.Context) {
	user, ok := middleware.ActiveUser(c)
	if !ok {
		return
	}

	var req UpdateRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	updated, err := services.UpdateSettings(user.ID, services.SettingsUpdate{
		Currency:           req.Moeda,
		DateFormat:         req.FormatoData,
		Theme:              req.Tema,
		EmailNotifications: req.NotificacoesEmail,
		PushNotifications:  req.NotificacoesPush,
		MonthCloseDay:      req.DiaFechamentoMes,
	})
	if err != nil {
		switch {
		case services.IsSettingsValidationError(err):
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
		case errors.Is(err, services.ErrSettingsNotFound):
			c.JSON(http.StatusNotFound, utils.NewErrorResponse(http.StatusNotFound, err.Error()))
		default:
			c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Erro interno"))
		}
		return
	}

	c.JSON(http.StatusOK, NewSettingsResponse(*updated))
}
