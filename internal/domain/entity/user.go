package entity

import (
	"time"
)

const (
	RoleCliente     = "cliente"
	RoleTecnico     = "tecnico"
	RoleImobiliaria = "imobiliaria"
	RoleAdmin       = "admin"
)

// ValidRole reports whether role is one of the known profile roles.
func ValidRole(role string) bool {
	switch role {
	case RoleCliente, RoleTecnico, RoleImobiliaria, RoleAdmin:
		return true
	}
	return false
}

type User struct {
	ID          string `json:"id" firestore:"id"`
	FullName    string `json:"full_name" firestore:"fullName"`
	Email       string `json:"email" firestore:"email"`
	Phone       string `json:"phone,omitempty" firestore:"phone,omitempty"`
	PartnerCode string `json:"partner_code,omitempty" firestore:"partnerCode,omitempty"`
	Role        string `json:"role" firestore:"role"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
