package handlers

import (
	"log/slog"
	"net/http"

	"github.com/SscSPs/taxi_coop_backoffice/internal/core/domain"
	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/dto"
	"github.com/SscSPs/taxi_coop_backoffice/internal/middleware"
	"github.com/gin-gonic/gin"
)

// ownerAccount looks up the account opened for an owner. A lookup failure is logged and
// the owner is returned without it.
func ownerAccount(c *gin.Context, accountService portssvc.AccountSvcFacade, kind domain.AccountKind, ownerID string) *domain.Account {
	acc, err := accountService.GetAccountByOwner(c.Request.Context(), kind, ownerID)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Warn("Owner account lookup failed",
			slog.String("kind", string(kind)), slog.String("owner_id", ownerID), slog.String("error", err.Error()))
		return nil
	}
	return acc
}

type memberHandler struct {
	memberService  portssvc.MemberSvcFacade
	accountService portssvc.AccountSvcFacade
}

func registerMemberRoutes(rg *gin.RouterGroup, memberService portssvc.MemberSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := &memberHandler{memberService: memberService, accountService: accountService}

	members := rg.Group("/members")
	{
		members.POST("", h.createMember)
		members.GET("", h.listMembers)
		members.GET("/:id", h.getMember)
		members.PUT("/:id", h.updateMember)
		members.DELETE("/:id", h.deactivateMember)
	}
}

// createMember godoc
// @Summary Register a member
// @Description Creates a member and opens its account with a zero balance
// @Tags members
// @Accept  json
// @Produce  json
// @Param   member body dto.CreateMemberRequest true "Member details"
// @Success 201 {object} dto.MemberResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Document number already registered"
// @Security BearerAuth
// @Router /members [post]
func (h *memberHandler) createMember(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}

	member, account, err := h.memberService.CreateMember(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create member")
		return
	}
	c.JSON(http.StatusCreated, dto.ToMemberResponse(member, account))
}

// listMembers godoc
// @Summary List members
// @Tags members
// @Produce  json
// @Param   status query string false "ACTIVE (default), INACTIVE or ALL"
// @Param   limit query int false "Limit" default(20)
// @Param   offset query int false "Offset" default(0)
// @Success 200 {array} dto.MemberResponse
// @Security BearerAuth
// @Router /members [get]
func (h *memberHandler) listMembers(c *gin.Context) {
	var params dto.ListOwnersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	members, err := h.memberService.ListMembers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list members")
		return
	}
	res := make([]dto.MemberResponse, len(members))
	for i := range members {
		res[i] = dto.ToMemberResponse(&members[i], nil)
	}
	c.JSON(http.StatusOK, res)
}

// getMember godoc
// @Summary Get a member with its account
// @Tags members
// @Produce  json
// @Param   id path string true "Member ID"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id} [get]
func (h *memberHandler) getMember(c *gin.Context) {
	member, err := h.memberService.GetMember(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve member")
		return
	}
	account := ownerAccount(c, h.accountService, domain.AccountKindMember, member.MemberID)
	c.JSON(http.StatusOK, dto.ToMemberResponse(member, account))
}

// updateMember godoc
// @Summary Update a member
// @Tags members
// @Accept  json
// @Produce  json
// @Param   id path string true "Member ID"
// @Param   member body dto.UpdateMemberRequest true "Fields to update"
// @Success 200 {object} dto.MemberResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id} [put]
func (h *memberHandler) updateMember(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	member, err := h.memberService.UpdateMember(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update member")
		return
	}
	c.JSON(http.StatusOK, dto.ToMemberResponse(member, nil))
}

// deactivateMember godoc
// @Summary Deactivate a member
// @Description Marks the member and its account inactive
// @Tags members
// @Param   id path string true "Member ID"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /members/{id} [delete]
func (h *memberHandler) deactivateMember(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	if err := h.memberService.DeactivateMember(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to deactivate member")
		return
	}
	c.Status(http.StatusNoContent)
}

type subscriberHandler struct {
	subscriberService portssvc.SubscriberSvcFacade
	accountService    portssvc.AccountSvcFacade
}

func registerSubscriberRoutes(rg *gin.RouterGroup, subscriberService portssvc.SubscriberSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := &subscriberHandler{subscriberService: subscriberService, accountService: accountService}

	subscribers := rg.Group("/subscribers")
	{
		subscribers.POST("", h.createSubscriber)
		subscribers.GET("", h.listSubscribers)
		subscribers.GET("/:id", h.getSubscriber)
		subscribers.PUT("/:id", h.updateSubscriber)
		subscribers.DELETE("/:id", h.deactivateSubscriber)
	}
}

// createSubscriber godoc
// @Summary Register a subscriber
// @Tags subscribers
// @Accept  json
// @Produce  json
// @Param   subscriber body dto.CreateSubscriberRequest true "Subscriber details"
// @Success 201 {object} dto.SubscriberResponse
// @Failure 409 {object} ErrorResponse
// @Security BearerAuth
// @Router /subscribers [post]
func (h *subscriberHandler) createSubscriber(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.CreateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	subscriber, account, err := h.subscriberService.CreateSubscriber(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create subscriber")
		return
	}
	c.JSON(http.StatusCreated, dto.ToSubscriberResponse(subscriber, account))
}

// @Router /subscribers [get]
func (h *subscriberHandler) listSubscribers(c *gin.Context) {
	var params dto.ListOwnersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	subscribers, err := h.subscriberService.ListSubscribers(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list subscribers")
		return
	}
	res := make([]dto.SubscriberResponse, len(subscribers))
	for i := range subscribers {
		res[i] = dto.ToSubscriberResponse(&subscribers[i], nil)
	}
	c.JSON(http.StatusOK, res)
}

// @Router /subscribers/{id} [get]
func (h *subscriberHandler) getSubscriber(c *gin.Context) {
	subscriber, err := h.subscriberService.GetSubscriber(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve subscriber")
		return
	}
	account := ownerAccount(c, h.accountService, domain.AccountKindSubscriber, subscriber.SubscriberID)
	c.JSON(http.StatusOK, dto.ToSubscriberResponse(subscriber, account))
}

// @Router /subscribers/{id} [put]
func (h *subscriberHandler) updateSubscriber(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.UpdateSubscriberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	subscriber, err := h.subscriberService.UpdateSubscriber(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update subscriber")
		return
	}
	c.JSON(http.StatusOK, dto.ToSubscriberResponse(subscriber, nil))
}

// @Router /subscribers/{id} [delete]
func (h *subscriberHandler) deactivateSubscriber(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	if err := h.subscriberService.DeactivateSubscriber(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to deactivate subscriber")
		return
	}
	c.Status(http.StatusNoContent)
}

type vehicleHandler struct {
	vehicleService portssvc.VehicleSvcFacade
	accountService portssvc.AccountSvcFacade
}

func registerVehicleRoutes(rg *gin.RouterGroup, vehicleService portssvc.VehicleSvcFacade, accountService portssvc.AccountSvcFacade) {
	h := &vehicleHandler{vehicleService: vehicleService, accountService: accountService}

	vehicles := rg.Group("/vehicles")
	{
		vehicles.POST("", h.createVehicle)
		vehicles.GET("", h.listVehicles)
		vehicles.GET("/:id", h.getVehicle)
		vehicles.PUT("/:id", h.updateVehicle)
		vehicles.DELETE("/:id", h.deactivateVehicle)
	}
}

// createVehicle godoc
// @Summary Register a vehicle
// @Description Creates a vehicle and opens its account. The license plate is stored upper-cased without spaces.
// @Tags vehicles
// @Accept  json
// @Produce  json
// @Param   vehicle body dto.CreateVehicleRequest true "Vehicle details"
// @Success 201 {object} dto.VehicleResponse
// @Failure 409 {object} ErrorResponse "License plate already registered"
// @Security BearerAuth
// @Router /vehicles [post]
func (h *vehicleHandler) createVehicle(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.CreateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	vehicle, account, err := h.vehicleService.CreateVehicle(c.Request.Context(), req, userID)
	if err != nil {
		respondError(c, err, "Failed to create vehicle")
		return
	}
	c.JSON(http.StatusCreated, dto.ToVehicleResponse(vehicle, account))
}

// @Router /vehicles [get]
func (h *vehicleHandler) listVehicles(c *gin.Context) {
	var params dto.ListOwnersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		bindError(c, err, "query parameters")
		return
	}
	vehicles, err := h.vehicleService.ListVehicles(c.Request.Context(), params)
	if err != nil {
		respondError(c, err, "Failed to list vehicles")
		return
	}
	res := make([]dto.VehicleResponse, len(vehicles))
	for i := range vehicles {
		res[i] = dto.ToVehicleResponse(&vehicles[i], nil)
	}
	c.JSON(http.StatusOK, res)
}

// @Router /vehicles/{id} [get]
func (h *vehicleHandler) getVehicle(c *gin.Context) {
	vehicle, err := h.vehicleService.GetVehicle(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err, "Failed to retrieve vehicle")
		return
	}
	account := ownerAccount(c, h.accountService, domain.AccountKindVehicle, vehicle.VehicleID)
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle, account))
}

// @Router /vehicles/{id} [put]
func (h *vehicleHandler) updateVehicle(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	var req dto.UpdateVehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		bindError(c, err, "request format")
		return
	}
	vehicle, err := h.vehicleService.UpdateVehicle(c.Request.Context(), c.Param("id"), req, userID)
	if err != nil {
		respondError(c, err, "Failed to update vehicle")
		return
	}
	c.JSON(http.StatusOK, dto.ToVehicleResponse(vehicle, nil))
}

// @Router /vehicles/{id} [delete]
func (h *vehicleHandler) deactivateVehicle(c *gin.Context) {
	userID, ok := operatorID(c)
	if !ok {
		return
	}
	if err := h.vehicleService.DeactivateVehicle(c.Request.Context(), c.Param("id"), userID); err != nil {
		respondError(c, err, "Failed to deactivate vehicle")
		return
	}
	c.Status(http.StatusNoContent)
}
