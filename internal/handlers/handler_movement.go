package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/SscSPs/taxi_coop_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// movementHandler serves one movement kind. It is mounted twice: cash and non-cash.
type movementHandler struct {
	movementService portssvc.MovementSvcFacade
}

func newMovementHandler(ms portssvc.MovementSvcFacade) *movementHandler {
	return &movementHandler{movementService: ms}
}

// registerMovementRoutes registers the CRUD routes of one movement kind under path.
func registerMovementRoutes(rg *gin.RouterGroup, path string, movementService portssvc.MovementSvcFacade) {
	h := newMovementHandler(movementService)

	movements := rg.Group(path)
	{
		movements.POST("", h.createMovement)
		movements.GET("", h.listMovements)
		movements.GET("/:id", h.getMovement)
		movements.PUT("/:id", h.updateMovement)
		movements.DELETE("/:id", h.deleteMovement)
	}
}

// createMovement godoc
// @Summary Record a movement
// @Description Creates a cash or non-cash movement and applies its effect to the account and, for cash, the register
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   movement body dto.MovementRequest true "Movement details"
// @Success 201 {object} dto.MovementResponse
// @Failure 400 {object} ErrorResponse "Invalid input or more than one account"
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Failure 404 {object} ErrorResponse "Account not found"
// @Failure 500 {object} ErrorResponse "Failed to create movement"
// @Security BearerAuth
// @Router /cash-movements [post]
// @Router /non-cash-movements [post]
func (h *movementHandler) createMovement(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	movement, err := h.movementService.CreateMovement(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create movement")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMovementResponse(movement))
}

// getMovement godoc
// @Summary Get a movement
// @Tags movements
// @Produce  json
// @Param   id path string true "Movement ID"
// @Success 200 {object} dto.MovementResponse
// @Failure 404 {object} ErrorResponse "Movement not found"
// @Security BearerAuth
// @Router /cash-movements/{id} [get]
// @Router /non-cash-movements/{id} [get]
func (h *movementHandler) getMovement(c *gin.Context) {
	movement, err := h.movementService.GetMovement(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve movement")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// listMovements godoc
// @Summary List movements
// @Description Lists movements newest first. Deleted movements are only returned with status=INACTIVE or ALL.
// @Tags movements
// @Produce  json
// @Param   accountID query string false "Account ID"
// @Param   from query string false "From date (YYYY-MM-DD)"
// @Param   to query string false "To date (YYYY-MM-DD)"
// @Param   status query string false "ACTIVE (default), INACTIVE or ALL"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListMovementsResponse
// @Failure 400 {object} ErrorResponse "Invalid query parameters"
// @Security BearerAuth
// @Router /cash-movements [get]
// @Router /non-cash-movements [get]
func (h *movementHandler) listMovements(c *gin.Context) {
	var params dto.ListMovementsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}

	movements, nextToken, err := h.movementService.ListMovements(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list movements")
		return
	}
	c.JSON(http.StatusOK, dto.ToListMovementsResponse(movements, nextToken))
}

// updateMovement godoc
// @Summary Replace a movement
// @Description Reverts the stored movement's effect, then applies the new one, in a single transaction
// @Tags movements
// @Accept  json
// @Produce  json
// @Param   id path string true "Movement ID"
// @Param   movement body dto.MovementRequest true "New movement details"
// @Success 200 {object} dto.MovementResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Movement or account not found"
// @Security BearerAuth
// @Router /cash-movements/{id} [put]
// @Router /non-cash-movements/{id} [put]
func (h *movementHandler) updateMovement(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.MovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	movement, err := h.movementService.UpdateMovement(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update movement")
		return
	}
	c.JSON(http.StatusOK, dto.ToMovementResponse(movement))
}

// deleteMovement godoc
// @Summary Delete a movement
// @Description Reverts the movement's effect and marks it inactive. The row is kept.
// @Tags movements
// @Param   id path string true "Movement ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Movement not found or already deleted"
// @Security BearerAuth
// @Router /cash-movements/{id} [delete]
// @Router /non-cash-movements/{id} [delete]
func (h *movementHandler) deleteMovement(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	movementID := c.Param("id")
	if err := h.movementService.DeleteMovement(c.Request.Context(), movementID, userID); err != nil {
		respondError(c, err, "Failed to delete movement")
		return
	}
	middleware.GetLoggerFromCtx(c.Request.Context()).Info("Movement deleted", slog.String("movement_id", movementID))
	c.Status(http.StatusNoContent)
}
