package entity

import (
	"time"
)

const (
	PlanStatusAtivo    = "ativo"
	PlanStatusPendente = "pendente"
	PlanStatusInativo  = "inativo"
)

type Address struct {
	Street       string `json:"street" firestore:"street"`
	Number       string `json:"number" firestore:"number"`
	Neighborhood string `json:"neighborhood" firestore:"neighborhood"`
	City         string `json:"city" firestore:"city"`
	State        string `json:"state" firestore:"state"`
	Zip          string `json:"zip" firestore:"zip"`
}

type Property struct {
	ID       string  `json:"id" firestore:"id"`
	Label    string  `json:"label" firestore:"label"`
	Address  Address `json:"address" firestore:"address"`
	OwnerUID string  `json:"owner_uid" firestore:"ownerUid"`

	// PlanID is empty when the property has no subscription; PlanStatus is
	// "pendente" until the subscription is confirmed, "inativo" when there
	// is no plan at all.
	PlanID     string `json:"plan_id,omitempty" firestore:"planId,omitempty"`
	PlanStatus string `json:"plan_status" firestore:"planStatus"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
