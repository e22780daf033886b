package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Farmacia-api/internal/application/dto"
	"github.com/jhoicas/Farmacia-api/internal/application/usecase"
	"github.com/jhoicas/Farmacia-api/pkg/table"
)

// UserHandler administración de cuentas (protegido, requiere users.manage).
type UserHandler struct {
	uc        *usecase.UserUseCase
	exporters Exporters
}

// NewUserHandler construye el handler.
func NewUserHandler(uc *usecase.UserUseCase, exporters Exporters) *UserHandler {
	return &UserHandler{uc: uc, exporters: exporters}
}

var userColumns = []table.Column[dto.UserResponse]{
	{Header: "Usuario", Value: func(u dto.UserResponse) string { return u.Username }},
	{Header: "Nombre", Value: func(u dto.UserResponse) string { return u.FullName }},
	{Header: "Email", Value: func(u dto.UserResponse) string { return u.Email }},
	{Header: "Rol", Value: func(u dto.UserResponse) string { return u.Role }},
	{Header: "Permisos", Value: func(u dto.UserResponse) string { return strings.Join(u.Permissions, ", ") }},
	{Header: "Estado", Value: func(u dto.UserResponse) string { return u.Status }},
}

// List godoc
// @Summary      Listar usuarios
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        search     query  string  false  "término de búsqueda"
// @Param        page       query  int     false  "página 1-based"
// @Param        page_size  query  int     false  "tamaño de página"
// @Param        format     query  string  false  "json, xlsx o pdf"
// @Success      200  {object}  dto.PageResponse[dto.UserResponse]
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/users [get]
func (h *UserHandler) List(c *fiber.Ctx) error {
	var req dto.TableRequest
	if err := c.QueryParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "parámetros inválidos"})
	}
	users, err := h.uc.List()
	if err != nil {
		return respondDomainError(c, err)
	}
	rows := make([]dto.UserResponse, 0, len(users))
	for _, u := range users {
		rows = append(rows, dto.ToUserResponse(u))
	}
	return respondTable(c, h.exporters, req, "Usuarios", "usuarios", rows, userColumns)
}

// GetByID godoc
// @Summary      Obtener usuario
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [get]
func (h *UserHandler) GetByID(c *fiber.Ctx) error {
	user, err := h.uc.Get(c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToUserResponse(user))
}

// Create godoc
// @Summary      Crear usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateUserRequest  true  "datos del usuario; sin permisos explícitos se asignan los del rol"
// @Success      201  {object}  dto.UserResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users [post]
func (h *UserHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Create(in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(dto.ToUserResponse(user))
}

// Update godoc
// @Summary      Editar usuario
// @Tags         users
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del usuario"
// @Param        body  body  dto.UpdateUserRequest  true  "datos editables; password solo si se cambia"
// @Success      200  {object}  dto.UserResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [put]
func (h *UserHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateUserRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	user, err := h.uc.Update(c.Params("id"), in)
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToUserResponse(user))
}

// Delete godoc
// @Summary      Eliminar usuario
// @Description  Un usuario no puede eliminar su propia cuenta.
// @Tags         users
// @Security     Bearer
// @Param        id  path  string  true  "ID del usuario"
// @Success      204
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id} [delete]
func (h *UserHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(GetUserID(c), c.Params("id")); err != nil {
		return respondDomainError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// ToggleStatus godoc
// @Summary      Activar o desactivar usuario
// @Description  Un usuario no puede desactivar su propia cuenta.
// @Tags         users
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del usuario"
// @Success      200  {object}  dto.UserResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/users/{id}/toggle-status [patch]
func (h *UserHandler) ToggleStatus(c *fiber.Ctx) error {
	user, err := h.uc.ToggleStatus(GetUserID(c), c.Params("id"))
	if err != nil {
		return respondDomainError(c, err)
	}
	return c.JSON(dto.ToUserResponse(user))
}
