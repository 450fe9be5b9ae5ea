package catalog

// Repository abstracts project lookup so the filter engine and wizard never
// touch the backing store directly. Today that store is the hardcoded dataset;
// swapping in a real datastore means implementing these two methods.
type Repository interface {
	ListAll() []Project
	FindBySlug(slug string) (*Project, bool)
}

// MemoryRepository serves the static dataset. Lookups are a linear scan over
// the slug, which is the only stable external identifier.
type MemoryRepository struct {
	projects []Project
}

// NewMemoryRepository returns a repository over the given projects, or over
// the built-in dataset when none are given.
func NewMemoryRepository(projects ...[]Project) *MemoryRepository {
	if len(projects) > 0 {
		return &MemoryRepository{projects: projects[0]}
	}
	return &MemoryRepository{projects: Projects()}
}

func (r *MemoryRepository) ListAll() []Project {
	out := make([]Project, len(r.projects))
	copy(out, r.projects)
	return out
}

func (r *MemoryRepository) FindBySlug(slug string) (*Project, bool) {
	for i := range r.projects {
		if r.projects[i].Slug == slug {
			p := r.projects[i]
			return &p, true
		}
	}
	return nil, false
}
