package handlers

import (
	"github.com/gin-gonic/gin"

	"opsdesk/cmd/api/services"
)

// ListLeadsHandler godoc
// @Summary      List leads
// @Description  List CRM leads, newest first, with equality filters and pagination
// @Tags         crm
// @Param        page        query  int     false  "Page number (1-based)"  default(1)
// @Param        limit       query  int     false  "Page size (<=100)"      default(10)
// @Param        status      query  string  false  "Lead status"
// @Param        source      query  string  false  "Lead source"
// @Param        assignedTo  query  string  false  "Assigned user id"
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.LeadListDTO}
// @Failure      500  {object}  dto.ErrorEnvelope
// @Router       /crm/leads [get]
func ListLeadsHandler(svc *services.CRMService, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondList(c, opts, "leads", "Failed to fetch leads", svc.ListLeads)
	}
}

// GetLeadHandler godoc
// @Summary      Get lead by id
// @Tags         crm
// @Param        id   path   string  true  "ObjectID"
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope
// @Failure      400  {object}  dto.ErrorEnvelope
// @Failure      404  {object}  dto.ErrorEnvelope
// @Router       /crm/leads/{id} [get]
func GetLeadHandler(svc *services.CRMService, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		lead, err := svc.GetLead(c.Request.Context(), c.Param("id"))
		respondItem(c, opts, "lead", "Failed to fetch lead", lead, err)
	}
}

// ListPartnersHandler godoc
// @Summary      List partners
// @Tags         partners
// @Param        page    query  int     false  "Page number (1-based)"  default(1)
// @Param        limit   query  int     false  "Page size (<=100)"      default(10)
// @Param        status  query  string  false  "Partner status"
// @Param        tier    query  string  false  "Partner tier"
// @Param        region  query  string  false  "Region"
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.PartnerListDTO}
// @Failure      500  {object}  dto.ErrorEnvelope
// @Router       /partners [get]
func ListPartnersHandler(svc *services.CRMService, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondList(c, opts, "partners", "Failed to fetch partners", svc.ListPartners)
	}
}

// ListSalesTemplatesHandler godoc
// @Summary      List sales templates
// @Description  Templates are ordered by last update, most recent first
// @Tags         sales
// @Param        page      query  int     false  "Page number (1-based)"  default(1)
// @Param        limit     query  int     false  "Page size (<=100)"      default(10)
// @Param        category  query  string  false  "Template category"
// @Param        status    query  string  false  "Template status"
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  dto.Envelope{data=dto.SalesTemplateListDTO}
// @Failure      500  {object}  dto.ErrorEnvelope
// @Router       /sales/templates [get]
func ListSalesTemplatesHandler(svc *services.CRMService, opts Options) gin.HandlerFunc {
	return func(c *gin.Context) {
		respondList(c, opts, "templates", "Failed to fetch sales templates", svc.ListSalesTemplates)
	}
}
