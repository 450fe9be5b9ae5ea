package catalog

import (
	"net/url"

	"steiger-backend/internal/pkg/response"

	"github.com/gofiber/fiber/v2"
)

// Handlers serves the catalog endpoints over a Repository.
type Handlers struct {
	Repo Repository
}

// ListProjects GET /api/v1/projects — filter/sort state comes from the query
// string (same parameters as catalog share links).
func (h *Handlers) ListProjects(c *fiber.Ctx) error {
	params := queryParams(c)
	projects := Apply(h.Repo.ListAll(), params)
	return response.Success(c, "Projects fetched", fiber.Map{
		"projects": projects,
	}, fiber.Map{
		"stats":      DeriveStats(projects),
		"count":      len(projects),
		"share_link": params.QueryValues().Encode(),
	})
}

// GetProject GET /api/v1/projects/:slug
func (h *Handlers) GetProject(c *fiber.Ctx) error {
	proj, ok := h.Repo.FindBySlug(c.Params("slug"))
	if !ok {
		return response.Error(c, "Project not found", fiber.StatusNotFound, nil)
	}
	return response.Success(c, "Project fetched", fiber.Map{"project": proj}, nil)
}

// ListUnits GET /api/v1/projects/:slug/units — the unit-selection grid for the
// detail page, with optional status/area/price filters.
func (h *Handlers) ListUnits(c *fiber.Ctx) error {
	proj, ok := h.Repo.FindBySlug(c.Params("slug"))
	if !ok {
		return response.Error(c, "Project not found", fiber.StatusNotFound, nil)
	}
	units := FilterUnits(*proj, queryParams(c))
	return response.Success(c, "Units fetched", fiber.Map{
		"units": units,
	}, fiber.Map{
		"stats": DeriveStats([]Project{*proj}),
	})
}

func queryParams(c *fiber.Ctx) FilterParams {
	values, err := url.ParseQuery(string(c.Request().URI().QueryString()))
	if err != nil {
		return FilterParams{}
	}
	return ParseQuery(values)
}
