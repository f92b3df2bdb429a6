package dto

import (
	"opsdesk/models"
	"opsdesk/pagination"
)

// The types below exist for swagger only: handlers build the data object as
// {<items key>: [...], "pagination": {...}} at runtime.

// swagger:model LeadListDTO
type LeadListDTO struct {
	Leads      []models.Lead   `json:"leads"`
	Pagination pagination.Info `json:"pagination"`
}

// swagger:model PartnerListDTO
type PartnerListDTO struct {
	Partners   []models.Partner `json:"partners"`
	Pagination pagination.Info  `json:"pagination"`
}

// swagger:model AlertListDTO
type AlertListDTO struct {
	Alerts     []models.Alert  `json:"alerts"`
	Pagination pagination.Info `json:"pagination"`
}

// swagger:model SalesTemplateListDTO
type SalesTemplateListDTO struct {
	Templates  []models.SalesTemplate `json:"templates"`
	Pagination pagination.Info        `json:"pagination"`
}

// swagger:model AuditLogListDTO
type AuditLogListDTO struct {
	Logs       []models.AuditLog `json:"logs"`
	Pagination pagination.Info   `json:"pagination"`
}
