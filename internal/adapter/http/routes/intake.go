package routes

import (
	"dischley_intake/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathLeads       = "/leads"
	PathCaseResults = "/case-results"
)

func addIntakeRoutes(rg *gin.RouterGroup, leadHandler *handlers.LeadHandler, caseResultHandler *handlers.CaseResultHandler) {
	leads := rg.Group(PathLeads)
	{
		leads.POST("", leadHandler.CreateLead)
		leads.GET("", leadHandler.ListLeads)
		leads.GET("/:id", leadHandler.GetLead)
		// PUT is the full follow-up form (notifies), PATCH the quick edit (silent).
		leads.PUT("/:id", leadHandler.UpdateLead)
		leads.PATCH("/:id", leadHandler.EditLead)
	}

	caseResults := rg.Group(PathCaseResults)
	{
		caseResults.POST("", caseResultHandler.CreateCaseResult)
		caseResults.GET("", caseResultHandler.ListCaseResults)
		caseResults.GET("/:id", caseResultHandler.GetCaseResult)
		caseResults.PATCH("/:id", caseResultHandler.EditCaseResult)
	}
}
