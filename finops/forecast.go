package finops

import "github.com/cloudcostlabs/m365-gateway/graph"

// ForecastRow projects one SKU's yearly spend from its monthly price.
type ForecastRow struct {
	SKU    string  `json:"sku"`
	Price  float64 `json:"price"`
	Count  int     `json:"count"`
	Yearly float64 `json:"yearly"`
}

// ForecastReport is the license-forecast response body. TotalYearly is the
// exact sum of the Yearly column.
type ForecastReport struct {
	Licenses    []ForecastRow `json:"licenses"`
	TotalYearly float64       `json:"totalYearly"`
}

// Forecast counts license assignments per SKU and prices each bucket from
// the supplied table. SKUs missing from the table price at zero so they
// still show up in the report with their counts.
func Forecast(users []graph.User, prices map[string]float64) ForecastReport {
	var order []string
	counts := make(map[string]int)
	for _, u := range users {
		for _, lic := range u.AssignedLicenses {
			sku := licenseSKU(lic)
			if _, ok := counts[sku]; !ok {
				order = append(order, sku)
			}
			counts[sku]++
		}
	}

	report := ForecastReport{Licenses: make([]ForecastRow, 0, len(order))}
	for _, sku := range order {
		price := prices[sku]
		yearly := price * 12 * float64(counts[sku])
		report.Licenses = append(report.Licenses, ForecastRow{
			SKU:    sku,
			Price:  price,
			Count:  counts[sku],
			Yearly: yearly,
		})
		report.TotalYearly += yearly
	}
	return report
}
