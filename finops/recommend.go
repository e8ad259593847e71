package finops

import "github.com/cloudcostlabs/m365-gateway/graph"

// Recommendation flags a license assignment worth reclaiming.
type Recommendation struct {
	User          UserRef `json:"user"`
	SKU           string  `json:"sku"`
	MonthlySaving float64 `json:"monthlySaving"`
	Reason        string  `json:"reason"`
}

const reasonAccountDisabled = "account is disabled but the license is still assigned"

// RecommendDowngrades flags priced licenses held by disabled accounts:
// sign-in is blocked, so the seat is pure spend. Users whose accountEnabled
// field was not fetched are skipped rather than guessed at.
func RecommendDowngrades(users []graph.User, prices map[string]float64) []Recommendation {
	recommendations := []Recommendation{}
	for _, u := range users {
		if u.AccountEnabled == nil || *u.AccountEnabled {
			continue
		}
		for _, lic := range u.AssignedLicenses {
			sku := licenseSKU(lic)
			price, ok := prices[sku]
			if !ok || price <= 0 {
				continue
			}
			recommendations = append(recommendations, Recommendation{
				User:          UserRef{Name: u.DisplayName, Email: u.UserPrincipalName},
				SKU:           sku,
				MonthlySaving: price,
				Reason:        reasonAccountDisabled,
			})
		}
	}
	return recommendations
}
