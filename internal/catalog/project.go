package catalog

import "strings"

// ProjectStatus is the sale state of a whole project (unit type).
type ProjectStatus string

const (
	ProjectForSale    ProjectStatus = "for_sale"
	ProjectComingSoon ProjectStatus = "coming_soon"
	ProjectSoldOut    ProjectStatus = "sold_out"
)

// UnitStatus is the sale state of one physical unit within a project.
type UnitStatus string

const (
	UnitAvailable UnitStatus = "available"
	UnitReserved  UnitStatus = "reserved"
	UnitSold      UnitStatus = "sold"
)

// StatusBucket is the user-facing availability bucket used by catalog filters.
// Project-level and unit-level statuses are different enums; the bucket is the
// one place where the two are mapped onto each other.
type StatusBucket string

const (
	BucketAvailable StatusBucket = "available"
	BucketReserved  StatusBucket = "reserved"
	BucketSold      StatusBucket = "sold"
)

// ProjectBucket maps a project status to a filter bucket. The mapping is
// approximate: a project still "for sale" may contain reserved or sold units,
// but for project-level filtering it counts as available stock.
func ProjectBucket(s ProjectStatus) StatusBucket {
	switch s {
	case ProjectSoldOut:
		return BucketSold
	case ProjectComingSoon:
		return BucketReserved
	default:
		return BucketAvailable
	}
}

// UnitBucket maps a unit status to a filter bucket (one-to-one).
func UnitBucket(s UnitStatus) StatusBucket {
	switch s {
	case UnitReserved:
		return BucketReserved
	case UnitSold:
		return BucketSold
	default:
		return BucketAvailable
	}
}

// UnitDetail is one physical, individually sellable space within a project.
// Prices are the formatted strings used on the site ("€ 212,520 v.o.n. ex. BTW");
// ParsePrice extracts whole euros for comparisons.
type UnitDetail struct {
	UnitNumber   int        `json:"unitNumber"`
	NetArea      float64    `json:"netArea"`
	GrossArea    float64    `json:"grossArea"`
	Price        string     `json:"price"`
	Status       UnitStatus `json:"status"`
	IndustryArea float64    `json:"industryArea,omitempty"`
	OfficeArea   float64    `json:"officeArea,omitempty"`
}

// InvestorInfo is the optional investment block on a project detail page.
type InvestorInfo struct {
	RentalYield    string `json:"rentalYield,omitempty"`
	RentPerMonth   string `json:"rentPerMonth,omitempty"`
	ServiceCharges string `json:"serviceCharges,omitempty"`
}

// ProjectDetails holds the extended content of a project detail page.
type ProjectDetails struct {
	LocationText   string            `json:"locationText,omitempty"`
	Accessibility  string            `json:"accessibility,omitempty"`
	Sustainability string            `json:"sustainability,omitempty"`
	Facilities     []string          `json:"facilities,omitempty"`
	Specifications map[string]string `json:"specifications,omitempty"`
	Investor       *InvestorInfo     `json:"investor,omitempty"`
	Units          []UnitDetail      `json:"units,omitempty"`
}

// Project is a sellable unit type (e.g. "Bedrijfsunit Type 3"), not an
// individual physical unit. Slug is the only stable external identifier.
type Project struct {
	ID            int             `json:"id"`
	Name          string          `json:"name"`
	Location      string          `json:"location"`
	Status        ProjectStatus   `json:"status"`
	Description   string          `json:"description"`
	StartingPrice string          `json:"startingPrice,omitempty"`
	UnitCount     int             `json:"unitCount"`
	Features      []string        `json:"features,omitempty"`
	Images        []string        `json:"images,omitempty"`
	Slug          string          `json:"slug"`
	Details       *ProjectDetails `json:"details,omitempty"`
}

// Units returns the project's unit list, or nil when it has none.
func (p *Project) Units() []UnitDetail {
	if p.Details == nil {
		return nil
	}
	return p.Details.Units
}

// IsStorageBox reports whether the project belongs to the opslagbox product
// line. Storage boxes carry a lower reservation fee and route under /opslagbox.
func (p *Project) IsStorageBox() bool {
	return strings.HasPrefix(p.Slug, "opslagbox")
}

// AvailableUnit returns the unit with the given number if it exists and is
// still available.
func (p *Project) AvailableUnit(number int) (*UnitDetail, bool) {
	for i := range p.Units() {
		u := &p.Details.Units[i]
		if u.UnitNumber == number {
			return u, u.Status == UnitAvailable
		}
	}
	return nil, false
}
