package finops_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cloudcostlabs/m365-gateway/finops"
	"github.com/cloudcostlabs/m365-gateway/graph"
)

func boolPtr(b bool) *bool { return &b }

func TestRecommendDowngradesFlagsDisabledAccountsWithPricedLicenses(t *testing.T) {
	users := []graph.User{
		{
			DisplayName:       "Adele Vance",
			UserPrincipalName: "AdeleV@contoso.com",
			AccountEnabled:    boolPtr(false),
			AssignedLicenses: []graph.AssignedLicense{
				{SKUPartNumber: "SPE_E5"},
				{SKUPartNumber: "POWER_BI_PRO"},
			},
		},
		{
			DisplayName:       "Alex Wilber",
			UserPrincipalName: "AlexW@contoso.com",
			AccountEnabled:    boolPtr(true),
			AssignedLicenses:  []graph.AssignedLicense{{SKUPartNumber: "SPE_E5"}},
		},
	}

	recommendations := finops.RecommendDowngrades(users, testPrices)
	require.Len(t, recommendations, 2)

	require.Equal(t, "SPE_E5", recommendations[0].SKU)
	require.Equal(t, float64(57), recommendations[0].MonthlySaving)
	require.Equal(t, finops.UserRef{Name: "Adele Vance", Email: "AdeleV@contoso.com"}, recommendations[0].User)
	require.Equal(t, "POWER_BI_PRO", recommendations[1].SKU)
}

func TestRecommendDowngradesSkipsUnpricedAndUnknownStates(t *testing.T) {
	users := []graph.User{
		{
			// accountEnabled not fetched
			DisplayName:      "A",
			AssignedLicenses: []graph.AssignedLicense{{SKUPartNumber: "SPE_E5"}},
		},
		{
			DisplayName:      "B",
			AccountEnabled:   boolPtr(false),
			AssignedLicenses: []graph.AssignedLicense{{SKUPartNumber: "FREE_TIER"}},
		},
	}

	require.Empty(t, finops.RecommendDowngrades(users, testPrices))
}
