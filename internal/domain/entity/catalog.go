package entity

// ServiceCatalogEntry maps a service-type name to the plan identifiers
// that cover it. Lookups are by exact name, case sensitive.
type ServiceCatalogEntry struct {
	ID        string   `json:"id" firestore:"id"`
	Name      string   `json:"name" firestore:"name"`
	CoveredBy []string `json:"covered_by" firestore:"coveredBy"`
}

// Covers reports whether planID is in the entry's coverage list.
func (e *ServiceCatalogEntry) Covers(planID string) bool {
	for _, id := range e.CoveredBy {
		if id == planID {
			return true
		}
	}
	return false
}
