package prompt

import (
	"fmt"
	"strings"

	"github.com/futig/docgen-backend/internal/entity"
)

// Registry resolves content kind strings to templates. It is built once and
// only read afterwards.
type Registry struct {
	byName    map[string]*Template
	templates []*Template
}

func NewRegistry(templates ...*Template) *Registry {
	r := &Registry{byName: make(map[string]*Template, len(templates)*2)}
	for _, t := range templates {
		r.templates = append(r.templates, t)
		r.byName[normalizeName(t.Name)] = t
		for _, alias := range t.Aliases {
			r.byName[normalizeName(alias)] = t
		}
	}
	return r
}

// DefaultRegistry holds every built-in template.
func DefaultRegistry() *Registry {
	var all []*Template
	all = append(all, legalTemplates()...)
	all = append(all, presentationTemplates()...)
	all = append(all, financeTemplates()...)
	all = append(all, billTemplates()...)
	all = append(all, researchTemplates()...)
	all = append(all, assistantTemplates()...)
	return NewRegistry(all...)
}

// Lookup finds a template by name or alias, ignoring case, surrounding
// spaces, and '-' or ' ' in place of '_'.
func (r *Registry) Lookup(name string) (*Template, error) {
	t, ok := r.byName[normalizeName(name)]
	if !ok {
		return nil, fmt.Errorf("%w: %q", entity.ErrUnsupportedContentType, name)
	}
	return t, nil
}

// Templates returns templates in registration order.
func (r *Registry) Templates() []*Template {
	out := make([]*Template, len(r.templates))
	copy(out, r.templates)
	return out
}

// Category returns the templates rendered under the given artifact category.
func (r *Registry) Category(category string) []*Template {
	var out []*Template
	for _, t := range r.templates {
		if t.Category == category {
			out = append(out, t)
		}
	}
	return out
}

func normalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.NewReplacer("-", "_", " ", "_").Replace(name)
}
