package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/taxi_coop_backoffice/internal/core/ports/services"
	"github.com/SscSPs/taxi_coop_backoffice/internal/middleware"
	"github.com/SscSPs/taxi_coop_backoffice/internal/platform/config"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// gatherer may be nil, in which case /metrics is not exposed.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	gatherer prometheus.Gatherer,
) {
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	if gatherer != nil {
		r.GET("/metrics", gin.WrapH(promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{})))
	}

	registerAuthRoutes(r, services.Auth)

	setupAPIV1Routes(r, cfg, services)
}

// setupAPIV1Routes configures the authenticated /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	service *portssvc.ServiceContainer,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	registerMovementRoutes(v1, "/cash-movements", service.CashMovement)
	registerMovementRoutes(v1, "/non-cash-movements", service.NonCashMovement)
	registerCashRegisterRoutes(v1, service.CashRegister)
	registerAccountRoutes(v1, service.Account, service.AccountHistory)
	registerAdvanceRoutes(v1, service.Advance)
	registerMemberRoutes(v1, service.Member, service.Account)
	registerSubscriberRoutes(v1, service.Subscriber, service.Account)
	registerVehicleRoutes(v1, service.Vehicle, service.Account)
}
