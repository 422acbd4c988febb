package entity

import (
	"time"
)

const (
	QuoteStatusAguardando = "aguardando"
	QuoteStatusEnviado    = "enviado"
	QuoteStatusAprovado   = "aprovado"
	QuoteStatusRecusado   = "recusado"
)

// Quote is the cost estimate created 1:1 with every ticket whose service
// is not covered by the property's plan.
type Quote struct {
	ID          string `json:"id" firestore:"id"`
	TicketID    string `json:"ticket_id" firestore:"ticketId"`
	OwnerUID    string `json:"owner_uid" firestore:"ownerUid"`
	PropertyID  string `json:"property_id,omitempty" firestore:"propertyId,omitempty"`
	ServiceType string `json:"service_type" firestore:"serviceType"`

	DescriptionCliente string `json:"description_cliente" firestore:"descriptionCliente"`

	// EstimatedValue stays nil until an admin sends the quote.
	EstimatedValue *float64 `json:"estimated_value" firestore:"estimatedValue"`
	Status         string   `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
