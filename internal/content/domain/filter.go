package domain

import (
	"sort"
	"strings"
)

// ListQuery carries the optional list filters accepted by the API. Filters
// that do not apply to a kind are ignored.
type ListQuery struct {
	Q        string
	Tag      string
	Category string
	Tech     string
	Series   string
	Featured *bool
	// IncludeDrafts is set only for authenticated admins.
	IncludeDrafts bool
}

// Matcher is implemented by entities that support list filtering.
type Matcher interface {
	Matches(q ListQuery) bool
}

func (p *Project) Matches(q ListQuery) bool {
	if !q.IncludeDrafts && !p.IsPublished() {
		return false
	}
	if q.Featured != nil && p.Featured != *q.Featured {
		return false
	}
	return containsFold(p.TechStack, q.Tech) &&
		textMatch(q.Q, p.Title, p.OneLiner, p.Overview)
}

func (w *Writing) Matches(q ListQuery) bool {
	if q.Series != "" && (w.Series == nil || !strings.EqualFold(*w.Series, q.Series)) {
		return false
	}
	return containsFold(w.Tags, q.Tag) &&
		textMatch(q.Q, w.Title, w.Excerpt, w.Content)
}

func (s *SystemEntry) Matches(q ListQuery) bool {
	return equalOrEmpty(s.Category, q.Category) &&
		textMatch(q.Q, s.Name, s.Usage, s.WhyChosen, s.WhereItBreaks)
}

func (v *VaultEntry) Matches(q ListQuery) bool {
	return equalOrEmpty(v.Category, q.Category) &&
		containsFold(v.Tags, q.Tag) &&
		textMatch(q.Q, v.Title, v.Content)
}

func (t *ArenaThread) Matches(q ListQuery) bool {
	return textMatch(q.Q, t.Title, t.Content)
}

func textMatch(needle string, haystack ...string) bool {
	needle = strings.ToLower(strings.TrimSpace(needle))
	if needle == "" {
		return true
	}
	for _, h := range haystack {
		if strings.Contains(strings.ToLower(h), needle) {
			return true
		}
	}
	return false
}

func containsFold(list []string, want string) bool {
	if want == "" {
		return true
	}
	for _, s := range list {
		if strings.EqualFold(s, want) {
			return true
		}
	}
	return false
}

func equalOrEmpty(value, want string) bool {
	return want == "" || strings.EqualFold(value, want)
}

// SortWritings orders writings newest first. Equal timestamps keep their
// insertion order.
func SortWritings(ws []*Writing) {
	sort.SliceStable(ws, func(i, j int) bool {
		return ws[i].PublishedAt.After(ws[j].PublishedAt.Time)
	})
}

// VaultGroup is one category of vault entries.
type VaultGroup struct {
	Category string        `json:"category"`
	Entries  []*VaultEntry `json:"entries"`
}

// GroupVault buckets entries by category, categories sorted by name and
// entries kept in their given order.
func GroupVault(entries []*VaultEntry) []VaultGroup {
	index := make(map[string]int)
	groups := []VaultGroup{}
	for _, e := range entries {
		i, ok := index[e.Category]
		if !ok {
			i = len(groups)
			index[e.Category] = i
			groups = append(groups, VaultGroup{Category: e.Category})
		}
		groups[i].Entries = append(groups[i].Entries, e)
	}
	sort.SliceStable(groups, func(i, j int) bool {
		return groups[i].Category < groups[j].Category
	})
	return groups
}
