package catalog

import (
	"fmt"
	"strings"

	"github.com/yungbote/officeorder-backend/internal/domain"
)

type Designation struct {
	Key     string `yaml:"key"`
	English string `yaml:"en"`
	Hindi   string `yaml:"hi"`
}

func (d Designation) In(lang domain.Language) string {
	if lang == domain.LanguageHindi {
		return d.Hindi
	}
	return d.English
}

// Registry maps canonical role names to their display forms. It keeps
// declaration order so the form lists roles the way the catalog does.
type Registry struct {
	keys  []string
	byKey map[string]Designation
}

func NewRegistry(ds []Designation) (*Registry, error) {
	r := &Registry{byKey: make(map[string]Designation, len(ds))}
	for _, d := range ds {
		d.Key = strings.TrimSpace(d.Key)
		d.English = strings.TrimSpace(d.English)
		d.Hindi = strings.TrimSpace(d.Hindi)
		if d.Key == "" || d.English == "" || d.Hindi == "" {
			return nil, fmt.Errorf("designation %q needs key, en and hi", d.Key)
		}
		if d.Key == domain.OtherPosition {
			return nil, fmt.Errorf("designation key %q is reserved", d.Key)
		}
		if _, dup := r.byKey[d.Key]; dup {
			return nil, fmt.Errorf("duplicate designation %q", d.Key)
		}
		r.byKey[d.Key] = d
		r.keys = append(r.keys, d.Key)
	}
	return r, nil
}

func (r *Registry) Keys() []string {
	out := make([]string, len(r.keys))
	copy(out, r.keys)
	return out
}

func (r *Registry) Lookup(key string) (Designation, bool) {
	d, ok := r.byKey[strings.TrimSpace(key)]
	return d, ok
}

// Resolve turns a submitted position into a Role. "Other" (or any
// position the registry does not know) needs accompanying free text.
func (r *Registry) Resolve(in domain.RoleInput) (domain.Role, error) {
	pos := strings.TrimSpace(in.Position)
	other := strings.TrimSpace(in.Other)
	if pos != domain.OtherPosition {
		if d, ok := r.Lookup(pos); ok {
			return domain.Role{Key: d.Key}, nil
		}
	}
	if other != "" {
		return domain.Role{Key: other, Custom: true}, nil
	}
	if pos == "" || pos == domain.OtherPosition {
		return domain.Role{}, fmt.Errorf("%w: no designation given", domain.ErrUnknownDesignation)
	}
	return domain.Role{}, fmt.Errorf("%w: %q", domain.ErrUnknownDesignation, pos)
}

// Display returns the printed form of role in lang. Custom roles and keys
// that have since left the registry are printed literally.
func (r *Registry) Display(role domain.Role, lang domain.Language) string {
	if !role.Custom {
		if d, ok := r.Lookup(role.Key); ok {
			return d.In(lang)
		}
	}
	return role.Key
}
