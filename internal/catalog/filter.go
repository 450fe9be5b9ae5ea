package catalog

import (
	"sort"
	"strings"
)

// SortOrder selects the catalog ordering.
type SortOrder string

const (
	SortByName     SortOrder = "name"     // numeric "Type N" suffix, ascending
	SortByPrice    SortOrder = "price"    // starting price ascending
	SortByUnits    SortOrder = "units"    // total unit count descending
	SortByLocation SortOrder = "location" // lexicographic
)

// SizeBucket classifies a project by total unit (or box) count.
type SizeBucket string

const (
	SizeSmall  SizeBucket = "small"
	SizeMedium SizeBucket = "medium"
	SizeLarge  SizeBucket = "large"
)

// Count thresholds for the size buckets.
const (
	sizeMediumMin = 10
	sizeLargeMin  = 20
)

// FilterParams is the full filter/sort state of a catalog view. Dimensions are
// independent and combine with logical AND; zero values mean "no filter".
type FilterParams struct {
	Search   string
	Status   StatusBucket
	Types    []string
	AreaMin  *float64
	AreaMax  *float64
	PriceMin *int64
	PriceMax *int64
	Size     SizeBucket
	SortBy   SortOrder
	View     string // grid|list, carried in share links only
}

// Apply derives the visible, ordered project list from the full dataset.
// Pure function: no I/O, input slice is not mutated.
func Apply(projects []Project, p FilterParams) []Project {
	out := make([]Project, 0, len(projects))
	for _, proj := range projects {
		if Matches(proj, p) {
			out = append(out, proj)
		}
	}
	Sort(out, p.SortBy)
	return out
}

// Matches reports whether one project passes every active filter dimension.
func Matches(proj Project, p FilterParams) bool {
	return matchesSearch(proj, p.Search) &&
		matchesStatus(proj, p.Status) &&
		matchesType(proj, p.Types) &&
		matchesAreaRange(proj, p.AreaMin, p.AreaMax) &&
		matchesPriceRange(proj, p.PriceMin, p.PriceMax) &&
		matchesSize(proj, p.Size)
}

func matchesSearch(proj Project, term string) bool {
	term = strings.TrimSpace(strings.ToLower(term))
	if term == "" {
		return true
	}
	return strings.Contains(strings.ToLower(proj.Name), term) ||
		strings.Contains(strings.ToLower(proj.Location), term) ||
		strings.Contains(strings.ToLower(proj.Description), term)
}

func matchesStatus(proj Project, bucket StatusBucket) bool {
	if bucket == "" {
		return true
	}
	return ProjectBucket(proj.Status) == bucket
}

func matchesType(proj Project, types []string) bool {
	if len(types) == 0 {
		return true
	}
	for _, t := range types {
		if proj.Name == t {
			return true
		}
	}
	return false
}

// matchesAreaRange: a project matches when ANY of its units falls inside the
// range (existential). A project without unit details matches by default.
func matchesAreaRange(proj Project, min, max *float64) bool {
	if min == nil && max == nil {
		return true
	}
	units := proj.Units()
	if len(units) == 0 {
		return true
	}
	for _, u := range units {
		if min != nil && u.NetArea < *min {
			continue
		}
		if max != nil && u.NetArea > *max {
			continue
		}
		return true
	}
	return false
}

// matchesPriceRange follows the same existential rule as area. Units whose
// price string carries no numeric token never match a price filter.
func matchesPriceRange(proj Project, min, max *int64) bool {
	if min == nil && max == nil {
		return true
	}
	units := proj.Units()
	if len(units) == 0 {
		return true
	}
	for _, u := range units {
		price, ok := ParsePrice(u.Price)
		if !ok {
			continue
		}
		if min != nil && price < *min {
			continue
		}
		if max != nil && price > *max {
			continue
		}
		return true
	}
	return false
}

func matchesSize(proj Project, size SizeBucket) bool {
	if size == "" {
		return true
	}
	return ProjectSize(proj) == size
}

// ProjectSize classifies a project by its total unit count against the fixed
// thresholds (small < 10, medium 10–19, large >= 20).
func ProjectSize(proj Project) SizeBucket {
	switch {
	case proj.UnitCount >= sizeLargeMin:
		return SizeLarge
	case proj.UnitCount >= sizeMediumMin:
		return SizeMedium
	default:
		return SizeSmall
	}
}

// Sort orders projects in place. Unknown orders leave the dataset order.
// Sorting is stable so equal keys keep their dataset order.
func Sort(projects []Project, by SortOrder) {
	switch by {
	case SortByName:
		sort.SliceStable(projects, func(i, j int) bool {
			return TypeNumber(projects[i].Name) < TypeNumber(projects[j].Name)
		})
	case SortByPrice:
		sort.SliceStable(projects, func(i, j int) bool {
			return SortPrice(projects[i].StartingPrice) < SortPrice(projects[j].StartingPrice)
		})
	case SortByUnits:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].UnitCount > projects[j].UnitCount
		})
	case SortByLocation:
		sort.SliceStable(projects, func(i, j int) bool {
			return projects[i].Location < projects[j].Location
		})
	}
}

// FilterUnits derives the unit subset for a project detail page. Only the
// status bucket and the numeric ranges apply at unit level.
func FilterUnits(proj Project, p FilterParams) []UnitDetail {
	out := make([]UnitDetail, 0, len(proj.Units()))
	for _, u := range proj.Units() {
		if p.Status != "" && UnitBucket(u.Status) != p.Status {
			continue
		}
		if p.AreaMin != nil && u.NetArea < *p.AreaMin {
			continue
		}
		if p.AreaMax != nil && u.NetArea > *p.AreaMax {
			continue
		}
		if p.PriceMin != nil || p.PriceMax != nil {
			price, ok := ParsePrice(u.Price)
			if !ok {
				continue
			}
			if p.PriceMin != nil && price < *p.PriceMin {
				continue
			}
			if p.PriceMax != nil && price > *p.PriceMax {
				continue
			}
		}
		out = append(out, u)
	}
	return out
}

// Stats are the derived availability counters shown above the catalog grid.
type Stats struct {
	Total     int `json:"total"`
	Available int `json:"available"`
	Reserved  int `json:"reserved"`
	Sold      int `json:"sold"`
}

// DeriveStats scans unit lists and counts availability per bucket. Unit status
// is the single source of truth; there is no separate inventory counter.
func DeriveStats(projects []Project) Stats {
	var s Stats
	for _, proj := range projects {
		for _, u := range proj.Units() {
			s.Total++
			switch UnitBucket(u.Status) {
			case BucketReserved:
				s.Reserved++
			case BucketSold:
				s.Sold++
			default:
				s.Available++
			}
		}
	}
	return s
}
