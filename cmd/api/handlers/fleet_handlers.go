package handlers

import (
	"github.com/gin-gonic/gin"

	"opsdesk/cmd/api/services"
)

// ListAlertsHandler godoc
// @Summary      List OBD alerts
// @Tags         fleet
// @Param        page       query  int     false  "Page number (1-based)"  default(1)
// @Param        limit      query  int     false  "Page size (<=100)"      default(10)
// @Param        userId     query  string  false  "Owner user id"
// @Param        vehicleId  query  string  false  "Vehicle id"
// @Param        status     query  string  false  "Alert status"
// @Param        severity   query  string  false  "Alert severity"
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.AlertListDTO}
// @Failure      500  {object}  dto.ErrorEnvelope
// @Router       /fleet/alerts [get]
func ListAlertsHandler(svc *services.FleetService, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondList(c, opts, "alerts", "Failed to fetch alerts", svc.ListAlerts)
	}
}

// GetAlertHandler godoc
// @Summary      Get alert by id
// @Tags         fleet
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Failure      404  {object}  dto.ErrorEnvelope
// @Router       /fleet/alerts/{id} [get]
func GetAlertHandler(svc *services.FleetService, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		alert, err := svc.GetAlert(c.Request.Context(), c.Param("id"))
		respondItem(c, opts, "alert", "Failed to fetch alert", alert, err)
	}
}
