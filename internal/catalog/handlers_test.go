package catalog

import (
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupCatalogApp() *fiber.App {
	h := &Handlers{Repo: NewMemoryRepository(testProjects())}
	app := fiber.New()
	app.Get("/api/v1/projects", h.ListProjects)
	app.Get("/api/v1/projects/:slug", h.GetProject)
	app.Get("/api/v1/projects/:slug/units", h.ListUnits)
	return app
}

func getJSON(t *testing.T, app *fiber.App, path string) (int, map[string]interface{}) {
	resp, err := app.Test(httptest.NewRequest("GET", path, nil))
	require.NoError(t, err)
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	var parsed map[string]interface{}
	require.NoError(t, json.Unmarshal(raw, &parsed))
	return resp.StatusCode, parsed
}

func TestListProjects_FiltersAndShareLink(t *testing.T) {
	app := setupCatalogApp()

	status, parsed := getJSON(t, app, "/api/v1/projects?search=bedrijfsunit&status=available&sort=price")
	require.Equal(t, 200, status)

	data := parsed["data"].(map[string]interface{})
	projects := data["projects"].([]interface{})
	require.Len(t, projects, 2)
	first := projects[0].(map[string]interface{})
	assert.Equal(t, "bedrijfsunit-type-1", first["slug"]) // cheapest first

	meta := parsed["metadata"].(map[string]interface{})
	assert.Equal(t, float64(2), meta["count"])
	// The share link reproduces the active filter state.
	assert.Contains(t, meta["share_link"], "search=bedrijfsunit")
	assert.Contains(t, meta["share_link"], "status=available")
	assert.Contains(t, meta["share_link"], "sort=price")
}

func TestListProjects_MalformedFiltersIgnored(t *testing.T) {
	app := setupCatalogApp()

	status, parsed := getJSON(t, app, "/api/v1/projects?area_min=abc&status=bogus")
	require.Equal(t, 200, status)
	data := parsed["data"].(map[string]interface{})
	assert.Len(t, data["projects"], 4)
}

func TestGetProject(t *testing.T) {
	app := setupCatalogApp()

	status, parsed := getJSON(t, app, "/api/v1/projects/bedrijfsunit-type-2")
	require.Equal(t, 200, status)
	project := parsed["data"].(map[string]interface{})["project"].(map[string]interface{})
	assert.Equal(t, "Bedrijfsunit Type 2", project["name"])

	status, _ = getJSON(t, app, "/api/v1/projects/bestaat-niet")
	assert.Equal(t, 404, status)
}

func TestListUnits_StatusFilter(t *testing.T) {
	app := setupCatalogApp()

	status, parsed := getJSON(t, app, "/api/v1/projects/bedrijfsunit-type-1/units?status=available")
	require.Equal(t, 200, status)
	units := parsed["data"].(map[string]interface{})["units"].([]interface{})
	require.Len(t, units, 1)
	unit := units[0].(map[string]interface{})
	assert.Equal(t, float64(1), unit["unitNumber"])
}
