package catalog

import "strings"

// Filter applies all non-empty criteria and returns matching resources.
type Filter struct {
	Query string // matches title, description, or any category
	Type  string // canonical or upload-vocabulary file type token
}

// Apply returns the subset of resources matching all non-empty filter
// fields. Matching is case-insensitive and preserves collection order;
// Apply is pure, so calling it twice with identical inputs yields
// identical output.
func (f Filter) Apply(resources []Resource) []Resource {
	var out []Resource
	for _, r := range resources {
		if f.Type != "" && r.Type() != ParseFileType(f.Type) {
			continue
		}
		if f.Query != "" && !matchesQuery(r, f.Query) {
			continue
		}
		out = append(out, r)
	}
	return out
}

// ByID returns the first resource with the given ID, or nil.
func ByID(resources []Resource, id string) *Resource {
	for i := range resources {
		if resources[i].ID == id {
			return &resources[i]
		}
	}
	return nil
}

func matchesQuery(r Resource, q string) bool {
	q = strings.ToLower(q)
	if strings.Contains(strings.ToLower(r.Title), q) {
		return true
	}
	if strings.Contains(strings.ToLower(r.Description), q) {
		return true
	}
	for _, c := range r.Categories {
		if strings.Contains(strings.ToLower(c), q) {
			return true
		}
	}
	return false
}
