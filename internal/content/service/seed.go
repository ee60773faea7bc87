package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"

	authdomain "github.com/Developer-Sahil/portfolio-system/internal/auth/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/logging"
)

// Fixture is the on-disk seed format, one list per kind.
type Fixture struct {
	Projects []*domain.Project     `yaml:"projects"`
	Writings []*domain.Writing     `yaml:"writings"`
	Systems  []*domain.SystemEntry `yaml:"systems"`
	Vault    []*domain.VaultEntry  `yaml:"vault"`
	Arena    []*domain.ArenaThread `yaml:"arena"`
}

// SeedReport counts what a seed run did per kind.
type SeedReport struct {
	Created map[domain.Kind]int
	Skipped map[domain.Kind]int
}

func LoadFixture(r io.Reader) (*Fixture, error) {
	var f Fixture
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil {
		if errors.Is(err, io.EOF) {
			return &f, nil
		}
		return nil, fmt.Errorf("parse seed file: %w", err)
	}
	return &f, nil
}

// Seed inserts every fixture record. Projects and writings are skipped when
// their slug already exists. Systems, vault entries and arena threads have no
// slug, so they are matched on a natural key instead: name and category,
// title and category, and title. Applying the same file twice creates nothing.
func (s *Services) Seed(ctx context.Context, actor authdomain.Identity, f *Fixture) (SeedReport, error) {
	rep := SeedReport{Created: map[domain.Kind]int{}, Skipped: map[domain.Kind]int{}}

	if err := seedAll(ctx, actor, s.Projects, f.Projects, nil, rep); err != nil {
		return rep, err
	}
	if err := seedAll(ctx, actor, s.Writings, f.Writings, nil, rep); err != nil {
		return rep, err
	}
	if err := seedAll(ctx, actor, s.Systems, f.Systems, func(e *domain.SystemEntry) string {
		return naturalKey(e.Name, e.Category)
	}, rep); err != nil {
		return rep, err
	}
	if err := seedAll(ctx, actor, s.Vault, f.Vault, func(e *domain.VaultEntry) string {
		return naturalKey(e.Title, e.Category)
	}, rep); err != nil {
		return rep, err
	}
	if err := seedAll(ctx, actor, s.Arena.Collection, f.Arena, func(e *domain.ArenaThread) string {
		return naturalKey(e.Title)
	}, rep); err != nil {
		return rep, err
	}

	logging.NewLogger(ctx).LogInfof("content.seed", "seeded %v, skipped %v", rep.Created, rep.Skipped)
	return rep, nil
}

// seedAll creates items in order. With a nil key, duplicates are detected by
// the store's slug conflict; otherwise by key against existing records and
// earlier items of the same run.
func seedAll[E domain.Entity](ctx context.Context, actor authdomain.Identity, c *Collection[E], items []E, key func(E) string, rep SeedReport) error {
	seen := map[string]bool{}
	if key != nil && len(items) > 0 {
		existing, err := c.List(ctx, domain.ListQuery{IncludeDrafts: true})
		if err != nil {
			return fmt.Errorf("seed %s: list existing: %w", c.Kind().Singular(), err)
		}
		for _, e := range existing {
			seen[key(e)] = true
		}
	}

	for i, item := range items {
		if key != nil {
			k := key(item)
			if seen[k] {
				rep.Skipped[c.Kind()]++
				continue
			}
			seen[k] = true
		}
		if _, err := c.Create(ctx, actor, item); err != nil {
			if errors.Is(err, domain.ErrConflict) {
				rep.Skipped[c.Kind()]++
				continue
			}
			return fmt.Errorf("seed %s #%d: %w", c.Kind().Singular(), i+1, err)
		}
		rep.Created[c.Kind()]++
	}
	return nil
}

func naturalKey(parts ...string) string {
	for i, p := range parts {
		parts[i] = strings.ToLower(strings.TrimSpace(p))
	}
	return strings.Join(parts, "\x00")
}
