package service

import (
	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
	"github.com/Developer-Sahil/portfolio-system/internal/content/repository"
)

type (
	Projects = Collection[*domain.Project]
	Writings = Collection[*domain.Writing]
	Systems  = Collection[*domain.SystemEntry]
	Vault    = Collection[*domain.VaultEntry]
)

// Services bundles one collection per content kind over a shared store.
type Services struct {
	Projects *Projects
	Writings *Writings
	Systems  *Systems
	Vault    *Vault
	Arena    *Arena
}

func New(store repository.Store) *Services {
	return &Services{
		Projects: NewCollection(store, func() *domain.Project { return &domain.Project{} }),
		Writings: NewCollection(store, func() *domain.Writing { return &domain.Writing{} },
			WithSort(domain.SortWritings)),
		Systems: NewCollection(store, func() *domain.SystemEntry { return &domain.SystemEntry{} }),
		Vault:   NewCollection(store, func() *domain.VaultEntry { return &domain.VaultEntry{} }),
		Arena:   NewArena(store),
	}
}
