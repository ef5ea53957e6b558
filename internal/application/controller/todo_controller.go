package controller

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"todo-api/internal/application/middleware"
	"todo-api/internal/domain/model"
	"todo-api/internal/domain/usecase/todo"
)

type TodoController struct {
	api     *echo.Group
	useCase todo.UseCase
}

func NewTodoController(api *echo.Group, useCase todo.UseCase) *TodoController {
	return &TodoController{api: api, useCase: useCase}
}

// InitTodoRoutes initializes todo routes
func (controller *TodoController) InitTodoRoutes() {
	controller.api.GET("/todos", controller.FindAll)
	controller.api.GET("/todos/:id", controller.FindByID)
	controller.api.POST("/todos", controller.Create)
	controller.api.PUT("/todos/:id", controller.Update)
	controller.api.PATCH("/todos/:id", controller.PartialUpdate)
	controller.api.DELETE("/todos/:id", controller.Delete)
}

// FindAll godoc
// @Summary List todos
// @Description Retrieve all todos owned by the authenticated user, newest first
// @Tags todos
// @Accept json
// @Produce json
// @Success 200 {array} entity.Todo "Todos owned by the caller"
// @Failure 401 {object} map[string]string "Missing or invalid token"
// @Router /todos [get]
func (controller *TodoController) FindAll(c echo.Context) error {
	todos, err := controller.useCase.FindAllByUser(middleware.CurrentUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, todos)
}

// FindByID godoc
// @Summary Get a todo
// @Description Retrieve one todo by id; other users' todos look like missing ones
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Success 200 {object} entity.Todo "The todo"
// @Failure 404 {object} map[string]string "Not found or not owned"
// @Router /todos/{id} [get]
func (controller *TodoController) FindByID(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, model.ErrNotFound)
	}

	result, err := controller.useCase.FindByIDAndUser(id, middleware.CurrentUserID(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, result)
}

// Create godoc
// @Summary Create a todo
// @Description Create a todo owned by the authenticated user
// @Tags todos
// @Accept json
// @Produce json
// @Param todo body model.CreateTodoDTO true "Todo creation data"
// @Success 201 {object} entity.Todo "Created todo"
// @Failure 400 {object} model.ValidationErrors "Field-keyed validation errors"
// @Router /todos [post]
func (controller *TodoController) Create(c echo.Context) error {
	var dto model.CreateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	created, err := controller.useCase.Create(middleware.CurrentUserID(c), dto)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusCreated, created)
}

// Update godoc
// @Summary Update a todo
// @Description Full update; creation timestamp and owner are never changed
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Todo update data"
// @Success 200 {object} entity.Todo "Updated todo"
// @Failure 400 {object} model.ValidationErrors "Field-keyed validation errors"
// @Failure 404 {object} map[string]string "Not found or not owned"
// @Router /todos/{id} [put]
func (controller *TodoController) Update(c echo.Context) error {
	return controller.update(c, false)
}

// PartialUpdate godoc
// @Summary Partially update a todo
// @Description Partial update; omitted fields keep their stored values
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Param todo body model.UpdateTodoDTO true "Fields to change"
// @Success 200 {object} entity.Todo "Updated todo"
// @Failure 400 {object} model.ValidationErrors "Field-keyed validation errors"
// @Failure 404 {object} map[string]string "Not found or not owned"
// @Router /todos/{id} [patch]
func (controller *TodoController) PartialUpdate(c echo.Context) error {
	return controller.update(c, true)
}

func (controller *TodoController) update(c echo.Context, partial bool) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, model.ErrNotFound)
	}

	var dto model.UpdateTodoDTO
	if err := c.Bind(&dto); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"error": "Invalid request body"})
	}

	updated, err := controller.useCase.Update(id, middleware.CurrentUserID(c), dto, partial)
	if err != nil {
		return writeError(c, err)
	}
	return c.JSON(http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a todo
// @Description Delete a todo and its tag associations; tag rows persist
// @Tags todos
// @Accept json
// @Produce json
// @Param id path int true "Todo id"
// @Success 204 "Todo deleted"
// @Failure 404 {object} map[string]string "Not found or not owned"
// @Router /todos/{id} [delete]
func (controller *TodoController) Delete(c echo.Context) error {
	id, err := parseID(c)
	if err != nil {
		return writeError(c, model.ErrNotFound)
	}

	if err := controller.useCase.Delete(id, middleware.CurrentUserID(c)); err != nil {
		return writeError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func parseID(c echo.Context) (uint, error) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
