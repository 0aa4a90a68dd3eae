package mapper

import (
	"time"

	catalogmapper "github.com/Apurer/go-gin-shop-api/internal/domains/catalog/adapters/http/mapper"
	reportdomain "github.com/Apurer/go-gin-shop-api/internal/domains/reports/domain"
)

// Total is one report row with its amount rendered for display.
type Total struct {
	Label        string `json:"label"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}

// Stats is the transport view of the three sales reports.
type Stats struct {
	ByManufacturer []Total   `json:"by_manufacturer"`
	ByCategory     []Total   `json:"by_category"`
	ByMonth        []Total   `json:"by_month"`
	Revenue        int64     `json:"revenue"`
	RevenueDisplay string    `json:"revenue_display"`
	GeneratedAt    time.Time `json:"generated_at"`
}

func FromDomainSummary(summary *reportdomain.Summary) Stats {
	if summary == nil {
		return Stats{ByManufacturer: []Total{}, ByCategory: []Total{}, ByMonth: []Total{}}
	}
	revenue := reportdomain.Grand(summary.ByMonth)
	return Stats{
		ByManufacturer: fromDomainTotals(summary.ByManufacturer),
		ByCategory:     fromDomainTotals(summary.ByCategory),
		ByMonth:        fromDomainTotals(summary.ByMonth),
		Revenue:        revenue,
		RevenueDisplay: catalogmapper.FormatPrice(revenue),
		GeneratedAt:    summary.GeneratedAt,
	}
}

func fromDomainTotals(totals []reportdomain.Total) []Total {
	out := make([]Total, 0, len(totals))
	for _, t := range totals {
		out = append(out, Total{Label: t.Label, Total: t.Amount, TotalDisplay: catalogmapper.FormatPrice(t.Amount)})
	}
	return out
}
