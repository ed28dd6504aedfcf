package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/gin-gonic/gin"
)

// accountHandler exposes accounts read-only. Balances change only through movements.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
	historyService portssvc.AccountHistorySvc
}

func newAccountHandler(as portssvc.AccountSvcFacade, hs portssvc.AccountHistorySvc) *accountHandler {
	return &accountHandler{accountService: as, historyService: hs}
}

func registerAccountRoutes(rg *gin.RouterGroup, accountService portssvc.AccountSvcFacade, historyService portssvc.AccountHistorySvc) {
	h := newAccountHandler(accountService, historyService)

	accounts := rg.Group("/accounts")
	{
		accounts.GET("", h.listAccounts)
		accounts.GET("/:id", h.getAccount)
		accounts.GET("/:id/history", h.getAccountHistory)
	}
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce  json
// @Param   kind query string false "MEMBER, SUBSCRIBER or VEHICLE"
// @Param   status query string false "ACTIVE (default), INACTIVE or ALL"
// @Param   limit query int false "Limit" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Failure 400 {object} ErrorResponse
// @Security BearerAuth
// @Router /accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list accounts")
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{id} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountHistory godoc
// @Summary Monthly balance history
// @Description Returns the month-end balance snapshots of an account, oldest first
// @Tags accounts
// @Produce  json
// @Param   id path string true "Account ID"
// @Success 200 {array} dto.AccountHistoryResponse
// @Failure 404 {object} ErrorResponse "Account not found"
// @Security BearerAuth
// @Router /accounts/{id}/history [get]
func (h *accountHandler) getAccountHistory(c *gin.Context) {
	history, err := h.historyService.ListAccountHistory(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve account history")
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountHistoryResponse(history))
}
