package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/orderboard/orderboard/internal/api/metrics"
	"github.com/orderboard/orderboard/internal/core/ports"
)

// ClientHandler handles HTTP requests for roster operations.
type ClientHandler struct {
	service ports.ClientService
}

func NewClientHandler(service ports.ClientService) *ClientHandler {
	return &ClientHandler{service: service}
}

// Catalog handles GET /v1/catalog.
//
// @Summary      List the session product catalog
// @Tags         catalog
// @Produce      json
// @Success      200  {object}  catalogResponse
// @Router       /v1/catalog [get]
func (h *ClientHandler) Catalog(c echo.Context) error {
	return c.JSON(http.StatusOK, toCatalogResponse(h.service.Catalog(c.Request().Context())))
}

// Board handles GET /v1/board — one summary per client plus the grand total.
//
// @Summary      Get the order board
// @Tags         clients
// @Produce      json
// @Success      200  {object}  boardResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/board [get]
func (h *ClientHandler) Board(c echo.Context) error {
	board, err := h.service.Board(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toBoardResponse(board))
}

// Create handles POST /v1/clients — adds a client with a fresh sequential
// display name and an empty order.
//
// @Summary      Add a new client
// @Tags         clients
// @Produce      json
// @Success      201  {object}  clientDetailResponse
// @Failure      500  {object}  errorResponse
// @Router       /v1/clients [post]
func (h *ClientHandler) Create(c echo.Context) error {
	detail, err := h.service.AddClient(c.Request().Context())
	if err != nil {
		return err
	}
	metrics.ClientsCreatedTotal.Inc()
	return c.JSON(http.StatusCreated, toDetailResponse(detail))
}

// Get handles GET /v1/clients/:id — the full editor view for one client.
//
// @Summary      Get a client with its order rows
// @Tags         clients
// @Produce      json
// @Param        id   path      string  true  "Client id"
// @Success      200  {object}  clientDetailResponse
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [get]
func (h *ClientHandler) Get(c echo.Context) error {
	detail, err := h.service.GetClient(c.Request().Context(), c.Param("id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDetailResponse(detail))
}

// Rename handles PATCH /v1/clients/:id. Empty or whitespace-only names are
// accepted and ignored; the response carries whichever name is in effect.
//
// @Summary      Rename a client
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string               true  "Client id"
// @Param        body  body      renameClientRequest  true  "New name"
// @Success      200   {object}  clientDetailResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /v1/clients/{id} [patch]
func (h *ClientHandler) Rename(c echo.Context) error {
	var req renameClientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	detail, err := h.service.Rename(c.Request().Context(), c.Param("id"), req.Name)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toDetailResponse(detail))
}

// AdjustQuantity handles POST /v1/clients/:id/order — applies a ±1 delta to
// one product's quantity, clamped at zero.
//
// @Summary      Increment or decrement an order quantity
// @Tags         clients
// @Accept       json
// @Produce      json
// @Param        id    path      string           true  "Client id"
// @Param        body  body      quantityRequest  true  "Product and delta"
// @Success      200   {object}  clientDetailResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      422   {object}  errorResponse
// @Router       /v1/clients/{id}/order [post]
func (h *ClientHandler) AdjustQuantity(c echo.Context) error {
	var req quantityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusUnprocessableEntity, err.Error())
	}

	detail, err := h.service.AdjustQuantity(c.Request().Context(), c.Param("id"), req.ProductID, req.Delta)
	if err != nil {
		return err
	}

	direction := "up"
	if req.Delta < 0 {
		direction = "down"
	}
	metrics.QuantityUpdatesTotal.WithLabelValues(direction).Inc()

	return c.JSON(http.StatusOK, toDetailResponse(detail))
}

// Delete handles DELETE /v1/clients/:id. The confirmation dialog happens in
// the UI; this endpoint is the post-confirmation path.
//
// @Summary      Remove a client
// @Tags         clients
// @Param        id  path  string  true  "Client id"
// @Success      204
// @Failure      404  {object}  errorResponse
// @Router       /v1/clients/{id} [delete]
func (h *ClientHandler) Delete(c echo.Context) error {
	if err := h.service.RemoveClient(c.Request().Context(), c.Param("id")); err != nil {
		return err
	}
	metrics.ClientsDeletedTotal.Inc()
	return c.NoContent(http.StatusNoContent)
}
