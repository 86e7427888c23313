package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/supermercado/backoffice-system/internal/api/metrics"
	"github.com/supermercado/backoffice-system/internal/core/ports"
)

// ClientHandler handles loyalty-client CRUD.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// List returns all loyalty clients.
//
// @Summary      List clients
// @Tags         clients
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  domain.Client
// @Router       /clients [get]
func (h *ClientHandler) List(c echo.Context) error {
	clients, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, clients)
}

// Create adds a loyalty client.
//
// @Summary      Create a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      clientRequest  true  "Client details"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Router       /clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Create(c.Request().Context(), toClientInput(req))
	if err != nil {
		return err
	}

	metrics.EntityOpsTotal.WithLabelValues("clients", "create").Inc()
	return c.JSON(http.StatusOK, client)
}

// Update replaces a client's fields.
//
// @Summary      Update a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string         true  "Client id"
// @Param        body  body      clientRequest  true  "Client details"
// @Success      200   {object}  domain.Client
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /clients/{id} [put]
func (h *ClientHandler) Update(c echo.Context) error {
	var req clientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	client, err := h.service.Update(c.Request().Context(), c.Param("id"), toClientInput(req))
	if err != nil {
		return err
	}

	metrics.EntityOpsTotal.WithLabelValues("clients", "update").Inc()
	return c.JSON(http.StatusOK, client)
}

// Delete removes a client.
//
// @Summary      Delete a client
// @Tags         clients
// @Security     BearerAuth
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.Delete(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}

	metrics.EntityOpsTotal.WithLabelValues("clients", "delete").Inc()
	return c.NoContent(http.StatusNoContent)
}

func toClientInput(req clientRequest) ports.ClientInput {
	return ports.ClientInput{
		Name:     req.Name,
		Identity: req.Identity,
		Age:      req.Age,
		Tenure:   req.Tenure,
	}
}
