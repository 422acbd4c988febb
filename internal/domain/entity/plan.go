package entity

const (
	PlanEssencial    = "essencial"
	PlanCompleto     = "completo"
	PlanSuperPremium = "super_premium"
)

// Plan is a subscription tier. The plan table is static; checkout happens
// through the external PaymentLink, never through this API.
type Plan struct {
	ID               string   `json:"id"`
	Name             string   `json:"name"`
	Description      string   `json:"description"`
	Price            float64  `json:"price"`
	Visits           string   `json:"visits"`
	PaymentLink      string   `json:"payment_link"`
	IncludedServices []string `json:"included_services"`
	QuoteOnly        []string `json:"quote_only"`
	TicketLimit      int      `json:"ticket_limit"`
	Active           bool     `json:"active"`
}
