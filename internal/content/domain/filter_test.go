package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestProject_Matches(t *testing.T) {
	yes := true
	draft := &Project{Title: "Draft", Status: StatusDraft}
	live := &Project{Title: "Ledger", OneLiner: "money", Status: StatusPublished, Featured: true, TechStack: []string{"Go", "Postgres"}}

	assert.False(t, draft.Matches(ListQuery{}))
	assert.True(t, draft.Matches(ListQuery{IncludeDrafts: true}))

	assert.True(t, live.Matches(ListQuery{Q: "MONEY"}))
	assert.True(t, live.Matches(ListQuery{Tech: "postgres"}))
	assert.False(t, live.Matches(ListQuery{Tech: "rust"}))
	assert.True(t, live.Matches(ListQuery{Featured: &yes}))
	assert.False(t, (&Project{Status: StatusPublished}).Matches(ListQuery{Featured: &yes}))
}

func TestWriting_Matches(t *testing.T) {
	series := "Distributed"
	w := &Writing{Title: "Raft", Tags: []string{"consensus"}, Series: &series}

	assert.True(t, w.Matches(ListQuery{Series: "distributed"}))
	assert.False(t, w.Matches(ListQuery{Series: "other"}))
	assert.False(t, (&Writing{}).Matches(ListQuery{Series: "distributed"}))
	assert.True(t, w.Matches(ListQuery{Tag: "Consensus"}))
	assert.False(t, w.Matches(ListQuery{Q: "paxos"}))
}

func TestVaultAndSystems_Matches(t *testing.T) {
	v := &VaultEntry{Title: "CAP", Category: "Theory", Tags: []string{"db"}, Content: "pick two"}
	assert.True(t, v.Matches(ListQuery{Category: "theory", Tag: "DB"}))
	assert.False(t, v.Matches(ListQuery{Category: "ops"}))

	s := &SystemEntry{Name: "Kafka", Category: "Messaging"}
	assert.True(t, s.Matches(ListQuery{Q: "kaf"}))
	assert.False(t, s.Matches(ListQuery{Category: "storage"}))

	th := &ArenaThread{Title: "Monorepos", Content: "yes or no"}
	assert.True(t, th.Matches(ListQuery{Q: "monorepo"}))
}

func TestSortWritings(t *testing.T) {
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	ws := []*Writing{
		{ID: "old", PublishedAt: At(base)},
		{ID: "new", PublishedAt: At(base.Add(48 * time.Hour))},
		{ID: "mid-a", PublishedAt: At(base.Add(24 * time.Hour))},
		{ID: "mid-b", PublishedAt: At(base.Add(24 * time.Hour))},
	}
	SortWritings(ws)

	var ids []string
	for _, w := range ws {
		ids = append(ids, w.ID)
	}
	assert.Equal(t, []string{"new", "mid-a", "mid-b", "old"}, ids)
}

func TestGroupVault(t *testing.T) {
	entries := []*VaultEntry{
		{ID: "1", Category: "Ops"},
		{ID: "2", Category: "Databases"},
		{ID: "3", Category: "Ops"},
	}
	groups := GroupVault(entries)

	assert.Len(t, groups, 2)
	assert.Equal(t, "Databases", groups[0].Category)
	assert.Equal(t, "Ops", groups[1].Category)
	assert.Equal(t, "1", groups[1].Entries[0].ID)
	assert.Equal(t, "3", groups[1].Entries[1].ID)

	assert.Empty(t, GroupVault(nil))
}
