package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/usecase/tag"
)

type TagController struct {
	api     *echo.Group
	useCase tag.UseCase
}

func NewTagController(api *echo.Group, useCase tag.UseCase) *TagController {
	return &TagController{api: api, useCase: useCase}
}

// InitTagRoutes initializes tag routes
func (controller *TagController) InitTagRoutes() {
	controller.api.GET("/tags", controller.FindAll)
}

// FindAll godoc
// @Summary List tags
// @Description Retrieve the authenticated user's tags with pagination
// @Tags tags
// @Accept json
// @Produce json
// @Param page query int false "Page number" default(0)
// @Param size query int false "Page size" default(10)
// @Success 200 {object} model.Page[entity.Tag] "Paginated list of tags"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /tags [get]
func (controller *TagController) FindAll(c echo.Context) error {
	page := toIntWithDefault(c.QueryParam("page"), 0)
	size := toIntWithDefault(c.QueryParam("size"), 10)

	tagsPage, err := controller.useCase.FindAllByUser(middleware.CurrentUserID(c), page, size)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, tagsPage)
}

func toIntWithDefault(value string, defaultValue int) int {
	parsed, err := strconv.Atoi(value)
	if err != nil {
		return defaultValue
	}
	return parsed
}
