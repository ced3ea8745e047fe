// Package subscription holds the static plan catalog and the grant endpoint.
// Payment settlement is out of scope; only the credit-grant contract applies.
package subscription

// Plan is one purchasable interpretation pack. Price is in the store
// currency's minor display unit and is informational only.
type Plan struct {
	ID              string `json:"id"`
	Name            string `json:"name"`
	Interpretations int    `json:"interpretations"`
	Price           int    `json:"price"`
}

var plans = []Plan{
	{ID: "single", Name: "1 Tabir", Interpretations: 1, Price: 20},
	{ID: "pack10", Name: "10 Tabir", Interpretations: 10, Price: 100},
	{ID: "pack20", Name: "20 Tabir", Interpretations: 20, Price: 200},
}

// Plans returns the full catalog.
func Plans() []Plan {
	out := make([]Plan, len(plans))
	copy(out, plans)
	return out
}

// Find returns the plan with the given id.
func Find(id string) (Plan, bool) {
	for _, p := range plans {
		if p.ID == id {
			return p, true
		}
	}
	return Plan{}, false
}
