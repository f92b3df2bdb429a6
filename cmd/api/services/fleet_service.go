package services

import (
	"context"

	"opsdesk/models"
	"opsdesk/pagination"
)

// FleetService exposes OBD telemetry alerts.
type FleetService struct {
	alerts Store[models.Alert]
}

func NewFleetService(alerts Store[models.Alert]) *FleetService {
	return &FleetService{alerts: alerts}
}

func (s *FleetService) ListAlerts(ctx context.Context, raw map[string]string) (pagination.Result[models.Alert], error) {
	return list(ctx, "list alerts", s.alerts, raw)
}

func (s *FleetService) GetAlert(ctx context.Context, hexID string) (*models.Alert, error) {
	return getByHex(ctx, "get alert", s.alerts, hexID)
}
