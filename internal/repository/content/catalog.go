package content

import (
	"embed"
	"errors"
	"fmt"

	"aimlaw-web/internal/domain"

	"gopkg.in/yaml.v3"
)

//go:embed data/catalog.yaml data/locales/*.yaml
var files embed.FS

type catalogFile struct {
	Site     domain.SiteInfo  `yaml:"site"`
	Services []domain.Service `yaml:"services"`
}

// Catalog is the static service catalog. It is never modified after load,
// so it is safe for concurrent readers.
type Catalog struct {
	site     domain.SiteInfo
	services []domain.Service
	byID     map[string]int
}

// LoadCatalog reads the catalog embedded in the binary
func LoadCatalog() (*Catalog, error) {
	raw, err := files.ReadFile("data/catalog.yaml")
	if err != nil {
		return nil, fmt.Errorf("failed to read catalog: %w", err)
	}
	return ParseCatalog(raw)
}

// ParseCatalog decodes a catalog document and checks that service ids are unique
func ParseCatalog(raw []byte) (*Catalog, error) {
	var f catalogFile
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	if f.Site.Name == "" || f.Site.Domain == "" {
		return nil, errors.New("catalog: site name and domain are required")
	}

	c := &Catalog{
		site:     f.Site,
		services: f.Services,
		byID:     make(map[string]int, len(f.Services)),
	}
	for i, s := range f.Services {
		if s.ID == "" {
			return nil, fmt.Errorf("catalog: service #%d has no id", i)
		}
		if _, dup := c.byID[s.ID]; dup {
			return nil, fmt.Errorf("catalog: duplicate service id %q", s.ID)
		}
		c.byID[s.ID] = i
	}
	return c, nil
}

func (c *Catalog) Site() domain.SiteInfo {
	return c.site
}

// List returns the services in display order. The slice is a copy.
func (c *Catalog) List() []domain.Service {
	out := make([]domain.Service, len(c.services))
	copy(out, c.services)
	return out
}

func (c *Catalog) FindByID(id string) (*domain.Service, bool) {
	i, ok := c.byID[id]
	if !ok {
		return nil, false
	}
	s := c.services[i]
	return &s, true
}
