package catalog

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-StudioBooking/internal/domain"
)

// Catalog неизменяемый список услуг, заданный при старте
type Catalog struct {
	services []domain.Service
	byID     map[string]domain.Service
}

// New создает каталог, порядок услуг сохраняется
func New(services []domain.Service) (*Catalog, error) {
	c := &Catalog{
		services: make([]domain.Service, 0, len(services)),
		byID:     make(map[string]domain.Service, len(services)),
	}

	for _, s := range services {
		s.ID = strings.TrimSpace(s.ID)
		s.Name = strings.TrimSpace(s.Name)

		if s.ID == "" || s.Name == "" {
			return nil, fmt.Errorf("%w: id and name are required", ErrInvalidService)
		}
		if s.DurationHours < 0 {
			return nil, fmt.Errorf("%w: %s has negative duration", ErrInvalidService, s.ID)
		}
		if _, exists := c.byID[s.ID]; exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateService, s.ID)
		}

		c.services = append(c.services, s)
		c.byID[s.ID] = s
	}

	return c, nil
}

// ListServices возвращает копию списка услуг в порядке конфигурации
func (c *Catalog) ListServices() []domain.Service {
	out := make([]domain.Service, len(c.services))
	copy(out, c.services)
	return out
}

// Get возвращает услугу по ID
func (c *Catalog) Get(id string) (domain.Service, bool) {
	s, ok := c.byID[id]
	return s, ok
}
