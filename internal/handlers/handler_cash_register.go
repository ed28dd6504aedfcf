package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

type cashRegisterHandler struct {
	registerService portssvc.CashRegisterSvc
}

func registerCashRegisterRoutes(rg *gin.RouterGroup, registerService portssvc.CashRegisterSvc) {
	h := &cashRegisterHandler{registerService: registerService}

	register := rg.Group("/cash-register")
	{
		register.GET("", h.getCashRegister)
		register.PUT("", h.updateCashRegister)
	}
}

// getCashRegister godoc
// @Summary Get the cash register
// @Description Returns the cooperative's cash register, creating it with a zero amount on first access
// @Tags cash-register
// @Produce  json
// @Success 200 {object} dto.CashRegisterResponse
// @Security BearerAuth
// @Router /cash-register [get]
func (h *cashRegisterHandler) getCashRegister(c *gin.Context) {
	register, err := h.registerService.GetCashRegister(c.Request.Context())
	if err != nil {
		respondError(c, err, "Failed to retrieve cash register")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashRegisterResponse(register))
}

// updateCashRegister godoc
// @Summary Set the cash register amount
// @Description Overwrites the register amount after a physical count. No movement is recorded.
// @Tags cash-register
// @Accept  json
// @Produce  json
// @Param   register body dto.UpdateCashRegisterRequest true "New amount"
// @Success 200 {object} dto.CashRegisterResponse
// @Failure 400 {object} ErrorResponse "Missing or invalid amount"
// @Security BearerAuth
// @Router /cash-register [put]
func (h *cashRegisterHandler) updateCashRegister(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.UpdateCashRegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	if req.Amount == nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "amount is required"})
		return
	}

	register, err := h.registerService.UpdateCashRegisterAmount(c.Request.Context(), *req.Amount, userID)
	if err != nil {
		respondError(c, err, "Failed to update cash register")
		return
	}
	c.JSON(http.StatusOK, dto.ToCashRegisterResponse(register))
}
