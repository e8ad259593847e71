// Package finops contains the pure aggregation logic behind the cost and
// license reports. Everything here operates on directory records already
// fetched by the caller; nothing does I/O.
package finops

import (
	"bytes"
	"encoding/json"

	"github.com/cloudcostlabs/m365-gateway/graph"
)

// UnknownDepartment is the bucket for users without a department.
const UnknownDepartment = "Unknown"

// UnknownSKU is the bucket for license assignments without any SKU
// identifier.
const UnknownSKU = "UNKNOWN"

// DeptCounts is a department-to-count mapping that marshals to a JSON
// object in first-encounter order, so the dashboard's tables keep a stable
// column order across renders.
type DeptCounts struct {
	order  []string
	counts map[string]int
}

func NewDeptCounts() *DeptCounts {
	return &DeptCounts{counts: make(map[string]int)}
}

// Add increments dept's count by n, registering the bucket on first use.
func (d *DeptCounts) Add(dept string, n int) {
	if _, ok := d.counts[dept]; !ok {
		d.order = append(d.order, dept)
	}
	d.counts[dept] += n
}

// Get returns the count for dept, zero if the bucket does not exist.
func (d *DeptCounts) Get(dept string) int {
	return d.counts[dept]
}

// Departments returns the buckets in insertion order.
func (d *DeptCounts) Departments() []string {
	return d.order
}

// Total returns the sum over all buckets.
func (d *DeptCounts) Total() int {
	total := 0
	for _, n := range d.counts {
		total += n
	}
	return total
}

func (d *DeptCounts) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, dept := range d.order {
		if i > 0 {
			buf.WriteByte(',')
		}
		key, err := json.Marshal(dept)
		if err != nil {
			return nil, err
		}
		buf.Write(key)
		buf.WriteByte(':')
		value, err := json.Marshal(d.counts[dept])
		if err != nil {
			return nil, err
		}
		buf.Write(value)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// CostByDepartment groups users by department and sums their assigned
// license counts per bucket. Users without a department land in
// UnknownDepartment; a user with no licenses still registers their bucket
// with a zero contribution.
func CostByDepartment(users []graph.User) *DeptCounts {
	counts := NewDeptCounts()
	for _, u := range users {
		dept := u.Department
		if dept == "" {
			dept = UnknownDepartment
		}
		counts.Add(dept, len(u.AssignedLicenses))
	}
	return counts
}

// UserRef identifies a user within a license bucket.
type UserRef struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// LicenseUsers is one SKU bucket with every holder of that license.
type LicenseUsers struct {
	SKU   string    `json:"sku"`
	Count int       `json:"count"`
	Users []UserRef `json:"users"`
}

// LicensesBySKU buckets every license assignment by SKU, collecting the
// holders per bucket. Count is the bucket length, so a user holding two
// assignments of the same SKU is counted twice, matching the raw
// assignment total. Buckets appear in first-encounter order.
func LicensesBySKU(users []graph.User) []LicenseUsers {
	var order []string
	buckets := make(map[string][]UserRef)
	for _, u := range users {
		for _, lic := range u.AssignedLicenses {
			sku := licenseSKU(lic)
			if _, ok := buckets[sku]; !ok {
				order = append(order, sku)
			}
			buckets[sku] = append(buckets[sku], UserRef{Name: u.DisplayName, Email: u.UserPrincipalName})
		}
	}

	report := make([]LicenseUsers, 0, len(order))
	for _, sku := range order {
		report = append(report, LicenseUsers{
			SKU:   sku,
			Count: len(buckets[sku]),
			Users: buckets[sku],
		})
	}
	return report
}

// licenseSKU resolves the bucket key: part number, then SKU GUID, then the
// literal UNKNOWN.
func licenseSKU(lic graph.AssignedLicense) string {
	switch {
	case lic.SKUPartNumber != "":
		return lic.SKUPartNumber
	case lic.SKUID != "":
		return lic.SKUID
	default:
		return UnknownSKU
	}
}
