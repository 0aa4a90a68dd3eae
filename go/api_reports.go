package shopserver

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	reportmapper "github.com/Apurer/go-gin-shop-api/internal/domains/reports/adapters/http/mapper"
	reportports "github.com/Apurer/go-gin-shop-api/internal/domains/reports/ports"
)

// ReportAPI serves the sales reports.
type ReportAPI struct {
	service reportports.Service
}

func NewReportAPI(service reportports.Service) ReportAPI {
	return ReportAPI{service: service}
}

// Get /
// Redirects to the sales reports.
func (api *ReportAPI) Home(c *gin.Context) {
	c.Redirect(http.StatusSeeOther, "/stats")
}

// Get /stats
// Totals of sold products by manufacturer and by category, and order totals by month.
func (api *ReportAPI) GetStats(c *gin.Context) {
	summary, err := api.service.Summary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, reportmapper.FromDomainSummary(summary))
}

// HealthAPI reports whether the store answers.
type HealthAPI struct {
	ping func(ctx context.Context) error
}

func NewHealthAPI(ping func(ctx context.Context) error) HealthAPI {
	return HealthAPI{ping: ping}
}

// Get /healthz
func (api *HealthAPI) Healthz(c *gin.Context) {
	if api.ping != nil {
		if err := api.ping(c.Request.Context()); err != nil {
			_ = c.Error(err)
			responder.Unavailable(c, "store ping failed")
			return
		}
	}
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}
