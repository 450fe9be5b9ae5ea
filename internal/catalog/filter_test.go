package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 { return &v }
func i64(v int64) *int64     { return &v }

func testProjects() []Project {
	return []Project{
		{
			ID: 1, Name: "Bedrijfsunit Type 1", Location: "Almere", Status: ProjectForSale,
			Description: "Compacte unit", StartingPrice: "€ 148,890 v.o.n. ex. BTW",
			UnitCount: 8, Slug: "bedrijfsunit-type-1",
			Details: &ProjectDetails{Units: []UnitDetail{
				{UnitNumber: 1, NetArea: 80, Price: "€ 148,890 v.o.n. ex. BTW", Status: UnitAvailable},
				{UnitNumber: 2, NetArea: 120, Price: "€ 186,230 v.o.n. ex. BTW", Status: UnitSold},
			}},
		},
		{
			ID: 2, Name: "Bedrijfsunit Type 2", Location: "Lelystad", Status: ProjectForSale,
			Description: "Ruime unit met entresol", StartingPrice: "€ 212,520 v.o.n. ex. BTW",
			UnitCount: 14, Slug: "bedrijfsunit-type-2",
			Details: &ProjectDetails{Units: []UnitDetail{
				{UnitNumber: 1, NetArea: 92, Price: "€ 212,520 v.o.n. ex. BTW", Status: UnitAvailable},
				{UnitNumber: 2, NetArea: 92, Price: "€ 212,520 v.o.n. ex. BTW", Status: UnitReserved},
			}},
		},
		{
			// No unit details: matches any range filter by default.
			ID: 3, Name: "Bedrijfsunit Type 4", Location: "Almere", Status: ProjectComingSoon,
			Description: "Tweede fase", UnitCount: 24, Slug: "bedrijfsunit-type-4",
		},
		{
			ID: 4, Name: "Opslagbox Type A", Location: "Almere", Status: ProjectSoldOut,
			Description: "Opslag aan de rijbaan", StartingPrice: "€ 42,500 v.o.n. ex. BTW",
			UnitCount: 6, Slug: "opslagbox-type-a",
			Details: &ProjectDetails{Units: []UnitDetail{
				{UnitNumber: 1, NetArea: 18, Price: "€ 42,500 v.o.n. ex. BTW", Status: UnitSold},
			}},
		},
	}
}

func slugs(projects []Project) []string {
	out := make([]string, 0, len(projects))
	for _, p := range projects {
		out = append(out, p.Slug)
	}
	return out
}

func TestApply_NoFilters_MatchesEverything(t *testing.T) {
	got := Apply(testProjects(), FilterParams{})
	assert.Len(t, got, 4)
}

func TestApply_Search_CaseInsensitiveOverThreeFields(t *testing.T) {
	// Name
	got := Apply(testProjects(), FilterParams{Search: "opslagbox"})
	assert.Equal(t, []string{"opslagbox-type-a"}, slugs(got))
	// Location
	got = Apply(testProjects(), FilterParams{Search: "LELYSTAD"})
	assert.Equal(t, []string{"bedrijfsunit-type-2"}, slugs(got))
	// Description
	got = Apply(testProjects(), FilterParams{Search: "entresol"})
	assert.Equal(t, []string{"bedrijfsunit-type-2"}, slugs(got))
	// Empty term matches everything
	got = Apply(testProjects(), FilterParams{Search: "  "})
	assert.Len(t, got, 4)
}

func TestApply_StatusBucket(t *testing.T) {
	got := Apply(testProjects(), FilterParams{Status: BucketAvailable})
	assert.ElementsMatch(t, []string{"bedrijfsunit-type-1", "bedrijfsunit-type-2"}, slugs(got))

	got = Apply(testProjects(), FilterParams{Status: BucketSold})
	assert.Equal(t, []string{"opslagbox-type-a"}, slugs(got))
}

func TestApply_TypeSetMembership(t *testing.T) {
	got := Apply(testProjects(), FilterParams{Types: []string{"Bedrijfsunit Type 1", "Opslagbox Type A"}})
	assert.ElementsMatch(t, []string{"bedrijfsunit-type-1", "opslagbox-type-a"}, slugs(got))
}

// A project matches an area range when ANY unit falls inside it: [100,150]
// matches the 80/120 project through its 120 m² unit.
func TestApply_AreaRange_Existential(t *testing.T) {
	got := Apply(testProjects(), FilterParams{AreaMin: f64(100), AreaMax: f64(150)})
	require.Contains(t, slugs(got), "bedrijfsunit-type-1")
	assert.NotContains(t, slugs(got), "bedrijfsunit-type-2") // both units 92
	assert.NotContains(t, slugs(got), "opslagbox-type-a")    // 18
	// No unit details: vacuous truth
	assert.Contains(t, slugs(got), "bedrijfsunit-type-4")
}

func TestApply_PriceRange_ParsesFormattedStrings(t *testing.T) {
	got := Apply(testProjects(), FilterParams{PriceMin: i64(200000), PriceMax: i64(250000)})
	assert.Contains(t, slugs(got), "bedrijfsunit-type-2")
	assert.NotContains(t, slugs(got), "bedrijfsunit-type-1")
	assert.NotContains(t, slugs(got), "opslagbox-type-a")
	assert.Contains(t, slugs(got), "bedrijfsunit-type-4") // no units, matches by default
}

func TestApply_SizeBuckets(t *testing.T) {
	got := Apply(testProjects(), FilterParams{Size: SizeSmall})
	assert.ElementsMatch(t, []string{"bedrijfsunit-type-1", "opslagbox-type-a"}, slugs(got))

	got = Apply(testProjects(), FilterParams{Size: SizeMedium})
	assert.Equal(t, []string{"bedrijfsunit-type-2"}, slugs(got))

	got = Apply(testProjects(), FilterParams{Size: SizeLarge})
	assert.Equal(t, []string{"bedrijfsunit-type-4"}, slugs(got))
}

// Combined filters equal the intersection of each filter applied independently.
func TestApply_Composability(t *testing.T) {
	all := testProjects()
	params := FilterParams{
		Search:  "bedrijfsunit",
		Status:  BucketAvailable,
		AreaMin: f64(90),
	}

	combined := map[string]bool{}
	for _, p := range Apply(all, params) {
		combined[p.Slug] = true
	}

	intersection := map[string]bool{}
	for _, p := range all {
		inAll := true
		for _, single := range []FilterParams{
			{Search: params.Search},
			{Status: params.Status},
			{AreaMin: params.AreaMin},
		} {
			if !Matches(p, single) {
				inAll = false
				break
			}
		}
		if inAll {
			intersection[p.Slug] = true
		}
	}
	assert.Equal(t, intersection, combined)
}

func TestSort_ByName_TypeNumberAscending(t *testing.T) {
	projects := Apply(testProjects(), FilterParams{SortBy: SortByName})
	// Opslagbox has no "Type N" pattern so its sort key falls back to 0.
	assert.Equal(t, []string{"opslagbox-type-a", "bedrijfsunit-type-1", "bedrijfsunit-type-2", "bedrijfsunit-type-4"}, slugs(projects))
}

func TestSort_ByPrice_Ascending(t *testing.T) {
	projects := Apply(testProjects(), FilterParams{SortBy: SortByPrice})
	// Missing starting price sorts as 0, first.
	assert.Equal(t, []string{"bedrijfsunit-type-4", "opslagbox-type-a", "bedrijfsunit-type-1", "bedrijfsunit-type-2"}, slugs(projects))
}

func TestSort_ByUnits_Descending(t *testing.T) {
	projects := Apply(testProjects(), FilterParams{SortBy: SortByUnits})
	assert.Equal(t, []string{"bedrijfsunit-type-4", "bedrijfsunit-type-2", "bedrijfsunit-type-1", "opslagbox-type-a"}, slugs(projects))
}

func TestSort_ByLocation_Lexicographic(t *testing.T) {
	projects := Apply(testProjects(), FilterParams{SortBy: SortByLocation})
	assert.Equal(t, "Almere", projects[0].Location)
	assert.Equal(t, "Lelystad", projects[len(projects)-1].Location)
}

func TestFilterUnits_StatusAndRanges(t *testing.T) {
	proj := testProjects()[0] // units: 80 available, 120 sold

	units := FilterUnits(proj, FilterParams{Status: BucketAvailable})
	require.Len(t, units, 1)
	assert.Equal(t, 1, units[0].UnitNumber)

	units = FilterUnits(proj, FilterParams{AreaMin: f64(100)})
	require.Len(t, units, 1)
	assert.Equal(t, 2, units[0].UnitNumber)

	units = FilterUnits(proj, FilterParams{PriceMax: i64(150000)})
	require.Len(t, units, 1)
	assert.Equal(t, 1, units[0].UnitNumber)
}

func TestDeriveStats(t *testing.T) {
	stats := DeriveStats(testProjects())
	assert.Equal(t, 5, stats.Total)
	assert.Equal(t, 2, stats.Available)
	assert.Equal(t, 1, stats.Reserved)
	assert.Equal(t, 2, stats.Sold)
}

func TestRepository_FindBySlug(t *testing.T) {
	repo := NewMemoryRepository(testProjects())
	p, ok := repo.FindBySlug("bedrijfsunit-type-2")
	require.True(t, ok)
	assert.Equal(t, "Bedrijfsunit Type 2", p.Name)

	_, ok = repo.FindBySlug("does-not-exist")
	assert.False(t, ok)
}

func TestAvailableUnit(t *testing.T) {
	repo := NewMemoryRepository(testProjects())
	p, _ := repo.FindBySlug("bedrijfsunit-type-1")

	u, available := p.AvailableUnit(1)
	require.NotNil(t, u)
	assert.True(t, available)

	u, available = p.AvailableUnit(2)
	require.NotNil(t, u)
	assert.False(t, available) // sold

	u, _ = p.AvailableUnit(99)
	assert.Nil(t, u)
}
