package services

import (
	"context"

	"opsdesk/models"
	"opsdesk/pagination"
)

// CRMService covers leads, partners and sales templates.
type CRMService struct {
	leads     Store[models.Lead]
	partners  Lister[models.Partner]
	templates Lister[models.SalesTemplate]
}

func NewCRMService(leads Store[models.Lead], partners Lister[models.Partner], templates Lister[models.SalesTemplate]) *CRMService {
	return &CRMService{leads: leads, partners: partners, templates: templates}
}

func (s *CRMService) ListLeads(ctx context.Context, raw map[string]string) (pagination.Result[models.Lead], error) {
	return list(ctx, "list leads", s.leads, raw)
}

// GetLead returns ErrInvalidID for a malformed hex id and ErrNotFound when absent.
func (s *CRMService) GetLead(ctx context.Context, hexID string) (*models.Lead, error) {
	return getByHex(ctx, "get lead", s.leads, hexID)
}

func (s *CRMService) ListPartners(ctx context.Context, raw map[string]string) (pagination.Result[models.Partner], error) {
	return list(ctx, "list partners", s.partners, raw)
}

func (s *CRMService) ListSalesTemplates(ctx context.Context, raw map[string]string) (pagination.Result[models.SalesTemplate], error) {
	return list(ctx, "list sales templates", s.templates, raw)
}
