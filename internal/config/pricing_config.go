package config

import "encoding/json"

// PricingConfig supplies the per-SKU monthly price table (USD) used by the
// forecast and downgrade reports. Overridable via the SKU_PRICES variable
// (a JSON object of SKU part number to monthly price) so prices can change
// without a redeploy.
type PricingConfig interface {
	GetSKUPrices() map[string]float64
}

type Pricing struct{}

var _ PricingConfig = Pricing{}

var defaultSKUPrices = map[string]float64{
	"ENTERPRISEPACK": 23, // Office 365 E3
	"EMS":            11, // Enterprise Mobility + Security E3
	"SPE_E5":         57, // Microsoft 365 E5
	"SPE_E3":         36, // Microsoft 365 E3
	"POWER_BI_PRO":   10, // Power BI Pro
}

func (Pricing) GetSKUPrices() map[string]float64 {
	raw := GetEnv("SKU_PRICES", "")
	if raw == "" {
		return defaultSKUPrices
	}
	prices := map[string]float64{}
	if err := json.Unmarshal([]byte(raw), &prices); err != nil {
		return defaultSKUPrices
	}
	return prices
}
