package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

type advanceHandler struct {
	advanceService portssvc.AdvanceSvc
}

func registerAdvanceRoutes(rg *gin.RouterGroup, advanceService portssvc.AdvanceSvc) {
	h := &advanceHandler{advanceService: advanceService}

	advances := rg.Group("/advances")
	{
		advances.GET("", h.listAdvances)
		advances.GET("/:id", h.getAdvance)
	}
}

// listAdvances godoc
// @Summary List advances
// @Description Advances are derived from ADVANCE movements and cannot be edited directly
// @Tags advances
// @Produce  json
// @Param   memberAccountID query string false "Member account ID"
// @Param   from query string false "From date (YYYY-MM-DD)"
// @Param   to query string false "To date (YYYY-MM-DD)"
// @Success 200 {array} dto.AdvanceResponse
// @Security BearerAuth
// @Router /advances [get]
func (h *advanceHandler) listAdvances(c *gin.Context) {
	var params dto.ListAdvancesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}

	advances, err := h.advanceService.ListAdvances(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list advances")
		return
	}
	c.JSON(http.StatusOK, dto.ToListAdvanceResponse(advances))
}

// getAdvance godoc
// @Summary Get an advance
// @Tags advances
// @Produce  json
// @Param   id path string true "Advance ID"
// @Success 200 {object} dto.AdvanceResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /advances/{id} [get]
func (h *advanceHandler) getAdvance(c *gin.Context) {
	advance, err := h.advanceService.GetAdvance(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve advance")
		return
	}
	c.JSON(http.StatusOK, dto.ToAdvanceResponse(advance))
}
