package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/fieldforce-api/internal/application/dto"
	"github.com/jhoicas/fieldforce-api/internal/application/usecase"
	"github.com/jhoicas/fieldforce-api/internal/domain/repository"
)

// UserHandler maneja las peticiones HTTP para usuarios (protegido, company_admin).
type UserHandler struct {
	uc *usecase.UserUseCase
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase) *UserHandler {
	return &UserHandler{uc: uc}
}

// Create godoc
// @Summary      Crear usuario en la empresa
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "Datos del usuario"
// @Success      201   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if in.Email == "" || in.Password == "" || in.Name == "" || in.Role == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "email, password, name y role son requeridos"})
	}
	if len(in.Password) < 8 {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "password debe tener al menos 8 caracteres"})
	}
	out, err := h.uc.Create(actorFrom(c), in)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener usuario por ID
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	out, err := h.uc.GetByID(actorFrom(c), id)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "Datos a actualizar"
// @Success      200   {object}  dto.UserResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Update(actorFrom(c), id, in)
	if err != nil {
		return mapDomainError(c, err)
	}
	if out == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "usuario no encontrado"})
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar usuarios de la empresa
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        role          query  string  false  "Filtrar por rol"
// @Param        territory_id  query  string  false  "Filtrar por territorio"
// @Param        limit         query  int     false  "Límite"   default(20)
// @Param        offset        query  int     false  "Offset"   default(0)
// @Success      200  {object}  dto.UserListResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	f := repository.UserFilter{
		Role:        c.Query("role"),
		TerritoryID: c.Query("territory_id"),
		Limit:       c.QueryInt("limit", 20),
		Offset:      c.QueryInt("offset", 0),
	}
	if f.Limit <= 0 {
		f.Limit = 20
	}
	if f.Limit > 100 {
		f.Limit = 100
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	out, err := h.uc.List(actorFrom(c), f)
	if err != nil {
		return mapDomainError(c, err)
	}
	return c.JSON(out)
}

// Delete godoc
// @Summary      Eliminar usuario
// @Tags         users
// @Security     Bearer
// @Param        id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	id := c.Params("id")
	if id == "" {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MISSING_ID", Message: "id es requerido"})
	}
	if err := h.uc.Delete(actorFrom(c), id); err != nil {
		return mapDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}
