package controller

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/auth"
	"todo-api/pkg/msg"
)

type AuthController struct {
	api     *echo.Group
	useCase auth.UseCase
}

func NewAuthController(api *echo.Group, useCase auth.UseCase) *AuthController {
	return &AuthController{api: api, useCase: useCase}
}

// InitAuthRoutes initializes authentication routes
func (controller *AuthController) InitAuthRoutes() {
	controller.api.POST("/auth/register", controller.Register)
	controller.api.POST("/auth/login", controller.Login)
}

// Register godoc
// @Summary Register an account
// @Description Create a new user account
// @Tags auth
// @Accept json
// @Produce json
// @Param user body model.RegisterDTO true "Account data"
// @Success 201 {object} model.UserResponse "Created account"
// @Failure 400 {object} model.ValidationErrors "Field-keyed validation errors"
// @Router /auth/register [post]
func (controller *AuthController) Register(c echo.Context) error {
	var dto model.RegisterDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	user, err := controller.useCase.Register(dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, user)
}

// Login godoc
// @Summary Log in
// @Description Verify credentials and return a bearer token
// @Tags auth
// @Accept json
// @Produce json
// @Param credentials body model.LoginDTO true "Credentials"
// @Success 200 {object} model.TokenResponse "Signed token"
// @Failure 401 {object} map[string]string "Invalid credentials"
// @Router /auth/login [post]
func (controller *AuthController) Login(c echo.Context) error {
	var dto model.LoginDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	token, err := controller.useCase.Login(dto)
	if err != nil {
		if errors.Is(err, model.ErrInvalidCredentials) {
			return c.JSON(http.StatusUnauthorized, map[string]string{
				"detail": msg.GetMessage("auth.error.invalid-credentials"),
			})
		}
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, token)
}
