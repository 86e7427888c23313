package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supermercado/backoffice-system/internal/api/metrics"
	"github.com/supermercado/backoffice-system/internal/core/ports"
)

// UserHandler handles staff-user CRUD and avatar management.
type UserHandler struct {
	service ports.UserService
}

func NewUserHandler(service ports.UserService) *UserHandler {
	return &UserHandler{service: service}
}

// List returns all staff users. Password hashes are never serialized.
//
// @Summary      List users
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.User
// @Router       /users [get]
func (h *UserHandler) List(c echo.Context) error {
	users, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, users)
}

// Create registers a new staff user.
//
// @Summary      Create a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createUserRequest  true  "User details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Router       /users [post]
func (h *UserHandler) Create(c echo.Context) error {
	var req createUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		countCPFRejection(err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Create(c.Request().Context(), ports.CreateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		CPF:      req.CPF,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.EntityOpsTotal.WithLabelValues("users", "create").Inc()
	return c.JSON(http.StatusOK, user)
}

// Update modifies a staff user; the password only changes when senha is present.
//
// @Summary      Update a user
// @Tags         users
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string             true  "User id"
// @Param        body  body      updateUserRequest  true  "User details"
// @Success      200   {object}  domain.User
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /users/{id} [put]
func (h *UserHandler) Update(c echo.Context) error {
	var req updateUserRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		countCPFRejection(err)
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	user, err := h.service.Update(c.Request().Context(), c.Param("id"), ports.UpdateUserInput{
		Name:     req.Name,
		Email:    req.Email,
		CPF:      req.CPF,
		Password: req.Password,
	})
	if err != nil {
		return err
	}

	metrics.EntityOpsTotal.WithLabelValues("users", "update").Inc()
	return c.JSON(http.StatusOK, user)
}

// Delete removes a staff user.
//
// @Summary      Delete a user
// @Tags         users
// @Security     BearerAuth
// @Param        id  path  string  true  "User id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /users/{id} [delete]
func (h *UserHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.EntityOpsTotal.WithLabelValues("users", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

// UploadAvatar stores a profile picture sent as multipart field "avatar".
//
// @Summary      Upload a user avatar
// @Tags         users
// @Accept       multipart/form-data
// @Produce      json
// @Security     BearerAuth
// @Param        id      path      string  true  "User id"
// @Param        avatar  formData  file    true  "Avatar image"
// @Success      200     {object}  avatarResponse
// @Failure      400     {object}  errorResponse
// @Failure      404     {object}  errorResponse
// @Router       /users/{id}/avatar [post]
func (h *UserHandler) UploadAvatar(c echo.Context) error {
	fileHeader, err := c.FormFile("avatar")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file not sent")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "file not readable")
	}
	defer file.Close()

	user, err := h.service.SetAvatar(c.Request().Context(), c.Param("id"), fileHeader.Filename, file)
	if err != nil {
		return err
	}

	metrics.AvatarUploadsTotal.Inc()
	return c.JSON(http.StatusOK, avatarResponse{AvatarURL: *user.AvatarURL})
}

// RemoveAvatar clears a user's profile picture and returns the updated user.
//
// @Summary      Remove a user avatar
// @Tags         users
// @Produce      json
// @Security     BearerAuth
// @Param        id  path      string  true  "User id"
// @Success      200  {object}  domain.User
// @Failure      404  {object}  errorResponse
// @Router       /users/{id}/avatar [delete]
func (h *UserHandler) RemoveAvatar(c echo.Context) error {
	user, err := h.service.RemoveAvatar(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, user)
}

// countCPFRejection increments the cpf rejection counter only when the CPF
// field itself failed, not for unrelated validation errors.
func countCPFRejection(err error) {
	var ve *ValidationError
	if errors.As(err, &ve) && ve.FieldFailed("cpf") {
		metrics.ValidationRejectionsTotal.WithLabelValues("cpf").Inc()
	}
}
