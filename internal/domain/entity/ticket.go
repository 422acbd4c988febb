package entity

import (
	"time"
)

const (
	TicketStatusNovo      = "novo"
	TicketStatusOrcamento = "orçamento"

	PriorityNormal  = "normal"
	PriorityUrgente = "urgente"
)

type Ticket struct {
	ID          string   `json:"id" firestore:"id"`
	OwnerUID    string   `json:"owner_uid" firestore:"ownerUid"`
	PropertyID  string   `json:"property_id,omitempty" firestore:"propertyId,omitempty"`
	ServiceType string   `json:"service_type" firestore:"serviceType"`
	Title       string   `json:"title" firestore:"title"`
	Description string   `json:"description" firestore:"description"`
	Photos      []string `json:"photos" firestore:"photos"`
	Priority    string   `json:"priority" firestore:"priority"`

	// IncludedInPlan is computed at creation time from the owning
	// property's plan and the service catalog; status is "novo" for
	// covered tickets and "orçamento" for the rest.
	IncludedInPlan bool   `json:"included_in_plan" firestore:"includedInPlan"`
	Status         string `json:"status" firestore:"status"`

	UsedAdHocAddress bool     `json:"used_ad_hoc_address,omitempty" firestore:"usedAdHocAddress,omitempty"`
	AdHocAddress     *Address `json:"ad_hoc_address,omitempty" firestore:"adHocAddress,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
