package domain

import "time"

const monthLayout = "2006-01"

// Total is one row of a sales report: a group label and the summed amount in minor units.
type Total struct {
	Label  string `json:"label"`
	Amount int64  `json:"amount"`
}

// Summary bundles the three sales reports.
type Summary struct {
	ByManufacturer []Total   `json:"by_manufacturer"`
	ByCategory     []Total   `json:"by_category"`
	ByMonth        []Total   `json:"by_month"`
	GeneratedAt    time.Time `json:"generated_at"`
}

// MonthLabel formats t as the YYYY-MM bucket used by the monthly report, in UTC.
func MonthLabel(t time.Time) string {
	return t.UTC().Format(monthLayout)
}

// Grand sums every amount in totals.
func Grand(totals []Total) int64 {
	var sum int64
	for _, t := range totals {
		sum += t.Amount
	}
	return sum
}
