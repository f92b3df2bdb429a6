package handlers

import (
	"github.com/gin-gonic/gin"

	"opsdesk/cmd/api/services"
)

// ListAuditLogsHandler godoc
// @Summary      List audit logs
// @Tags         audit
// @Param        page      query  int     false  "Page number (1-based)"  default(1)
// @Param        limit     query  int     false  "Page size (<=100)"      default(10)
// @Param        userId    query  string  false  "Acting user id"
// @Param        action    query  string  false  "Action"
// @Param        resource  query  string  false  "Resource type"
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.AuditLogListDTO}
// @Failure      500  {object}  dto.ErrorEnvelope
// @Router       /audit/logs [get]
func ListAuditLogsHandler(svc *services.AuditService, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondList(c, opts, "logs", "Failed to fetch audit logs", svc.ListLogs)
	}
}
