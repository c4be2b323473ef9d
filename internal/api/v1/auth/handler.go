package auth

import (
	"errors"
	"net/http"

	"github.com/Xyscco/easy-finances/config"
	"github.com/Xyscco/easy-finances/internal/middleware"
	"github.com/Xyscco/easy-finances/internal/services"
	"github.com/Xyscco/easy-finances/internal/utils"

	"github.com/gin-gonic/gin"
)

// Register godoc
// @Summary Registra um novo usuário
// @Description Cria o usuário junto com configurações padrão e categorias iniciais
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input  body  RegisterRequest  true  "Dados de registro"
// @Success 201 {object} UserResponse
// @Failure 400 {object} utils.Response
// @Failure 500 {object} utils.Response
// @Router /auth/registrar [post]
func Register(c *gin.Context) {
	var req RegisterRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	user, err := services.RegisterUser(services.RegisterInput{
		Email:           req.Email,
		Password:        req.Senha,
		ConfirmPassword: req.ConfirmarSenha,
		FirstName:       req.PrimeiroNome,
		LastName:        req.UltimoNome,
		Phone:           req.Telefone,
	})
	if err != nil {
		if errors.Is(err, services.ErrEmailAlreadyExists) || services.IsValidationError(err) {
			c.JSON(http.StatusBadRequest, utils.NewErrorResponse(http.StatusBadRequest, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Erro interno ao criar usuário"))
		return
	}

	c.JSON(http.StatusCreated, NewUserResponse(*user))
}

// Login godoc
// @Summary Autentica um usuário
// @Description Retorna um token de acesso com validade de 30 minutos
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   input  body  LoginRequest  true  "Credenciais"
// @Success 200 {object} TokenResponse
// @Failure 401 {object} utils.Response
// @Router /auth/login [post]
func Login(c *gin.Context) {
	var req LoginRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	token, user, err := services.LoginUser(req.Email, req.Senha)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			c.Header("WWW-Authenticate", "Bearer")
			c.JSON(http.StatusUnauthorized, utils.NewErrorResponse(http.StatusUnauthorized, err.Error()))
			return
		}
		c.JSON(http.StatusInternalServerError, utils.NewErrorResponse(http.StatusInternalServerError, "Erro interno ao autenticar"))
		return
	}

	expiresIn := 1800
	if cfg, err := config.LoadConfig(); err == nil {
		expiresIn = cfg.TokenExpireSeconds()
	}

	c.JSON(http.StatusOK, TokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
		ExpiresIn:   expiresIn,
		Usuario:     NewUserResponse(user),
	})
}

// Me godoc
// @Summary Perfil do usuário autenticado
// @Tags auth
// @Produce  json
// @Security Bearer
// @Success 200 {object} UserResponse
// @Failure 401 {object} utils.Response
// @Router /auth/me [get]
func Me(c *gin.Context) {
	user, ok := middleware.ActiveUser(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, NewUserResponse(user))
}

// Logout godoc
// @Summary Logout
// @Description Stateless: o cliente descarta o token; nada é invalidado no servidor
// @Tags auth
// @Produce  json
// @Success 200 {object} utils.Response
// @Router /auth/logout [post]
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, utils.NewSuccessResponse("Logout realizado com sucesso", nil))
}
