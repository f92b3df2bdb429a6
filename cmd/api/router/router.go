package router

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"opsdesk/cmd/api/auth"
	"opsdesk/cmd/api/handlers"
	"opsdesk/cmd/api/middleware"
	"opsdesk/cmd/api/services"
	"opsdesk/config"
	_ "opsdesk/docs"
)

// Dependencies 는 라우터가 필요로 하는 협력 객체 묶음이다. 전역 상태를 쓰지 않는다.
type Dependencies struct {
	Config config.AppConfig
	// Health 는 /health 에서 호출되며 백엔드 연결 상태를 확인한다.
	Health func(ctx context.Context) error
	Tokens middleware.TokenVerifier
	CRM    *services.CRMService
	Fleet  *services.FleetService
	Audit  *services.AuditService
}

func New(deps Dependencies) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestTrace())

	// Health check
	r.GET("/health", func(c *gin.Context) {
		if deps.Health != nil {
			ctx, cancel := context.WithTimeout(c.Request.Context(), 3*time.Second)
			defer cancel()
			if err := deps.Health(ctx); err != nil {
				body := gin.H{"status": "degraded", "mongo": "down"}
				if !deps.Config.IsProduction() {
					body["error"] = err.Error()
				}
				c.JSON(http.StatusServiceUnavailable, body)
				return
			}
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Swagger
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	opts := handlers.Options{ExposeErrors: !deps.Config.IsProduction()}
	requireRoles := func(roles ...string) gin.HandlerFunc {
		return middleware.RequireRoles(deps.Tokens, roles...)
	}

	// v1 routes
	api := r.Group("/api/v1")
	{
		leads := api.Group("/crm/leads", requireRoles(auth.RoleAdmin, auth.RoleSales, auth.RoleManager))
		leads.GET("", handlers.ListLeadsHandler(deps.CRM, opts))
		leads.GET("/:id", handlers.GetLeadHandler(deps.CRM, opts))

		api.GET("/partners", requireRoles(auth.RoleAdmin, auth.RoleManager), handlers.ListPartnersHandler(deps.CRM, opts))

		alerts := api.Group("/fleet/alerts", requireRoles(auth.RoleAdmin, auth.RoleFleet))
		alerts.GET("", handlers.ListAlertsHandler(deps.Fleet, opts))
		alerts.GET("/:id", handlers.GetAlertHandler(deps.Fleet, opts))

		api.GET("/sales/templates", requireRoles(auth.RoleAdmin, auth.RoleSales), handlers.ListSalesTemplatesHandler(deps.CRM, opts))

		api.GET("/audit/logs", requireRoles(auth.RoleAdmin), handlers.ListAuditLogsHandler(deps.Audit, opts))
	}

	return r
}
