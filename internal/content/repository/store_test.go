package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Developer-Sahil/portfolio-system/internal/content/domain"
)

func doc(slug string, body string) Document {
	return Document{ID: uuid.NewString(), Slug: slug, Body: []byte(body)}
}

func decode(t *testing.T, d Document) map[string]interface{} {
	t.Helper()
	var m map[string]interface{}
	require.NoError(t, json.Unmarshal(d.Body, &m))
	return m
}

// runStoreContract exercises behaviour every Store backend must share.
func runStoreContract(t *testing.T, newStore func(t *testing.T) Store) {
	ctx := context.Background()

	t.Run("insert then get returns the same document", func(t *testing.T) {
		s := newStore(t)
		in := doc("ledger", `{"title":"Ledger"}`)
		require.NoError(t, s.Insert(ctx, domain.KindProject, in))

		got, err := s.Get(ctx, domain.KindProject, in.ID)
		require.NoError(t, err)
		assert.Equal(t, in.ID, got.ID)
		assert.Equal(t, "ledger", got.Slug)
		assert.Equal(t, "Ledger", decode(t, got)["title"])

		bySlug, err := s.GetBySlug(ctx, domain.KindProject, "ledger")
		require.NoError(t, err)
		if diff := cmp.Diff(decode(t, got), decode(t, bySlug)); diff != "" {
			t.Fatalf("slug lookup differs (-id +slug):\n%s", diff)
		}
	})

	t.Run("duplicate slug conflicts and leaves store unchanged", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, domain.KindWriting, doc("raft", `{"n":1}`)))

		err := s.Insert(ctx, domain.KindWriting, doc("raft", `{"n":2}`))
		require.Error(t, err)
		assert.True(t, errors.Is(err, domain.ErrConflict))

		all, err := s.List(ctx, domain.KindWriting)
		require.NoError(t, err)
		require.Len(t, all, 1)
		assert.Equal(t, float64(1), decode(t, all[0])["n"])
	})

	t.Run("kinds are isolated", func(t *testing.T) {
		s := newStore(t)
		require.NoError(t, s.Insert(ctx, domain.KindProject, doc("same", `{}`)))
		require.NoError(t, s.Insert(ctx, domain.KindWriting, doc("same", `{}`)))

		vault, err := s.List(ctx, domain.KindVault)
		require.NoError(t, err)
		assert.Empty(t, vault)
	})

	t.Run("list keeps insertion order", func(t *testing.T) {
		s := newStore(t)
		var want []string
		for i := 0; i < 5; i++ {
			d := doc("", fmt.Sprintf(`{"i":%d}`, i))
			want = append(want, d.ID)
			require.NoError(t, s.Insert(ctx, domain.KindSystem, d))
		}
		all, err := s.List(ctx, domain.KindSystem)
		require.NoError(t, err)

		var got []string
		for _, d := range all {
			got = append(got, d.ID)
		}
		assert.Equal(t, want, got)
	})

	t.Run("delete then get is not found", func(t *testing.T) {
		s := newStore(t)
		d := doc("gone", `{}`)
		require.NoError(t, s.Insert(ctx, domain.KindProject, d))
		require.NoError(t, s.Delete(ctx, domain.KindProject, d.ID))

		_, err := s.Get(ctx, domain.KindProject, d.ID)
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		_, err = s.GetBySlug(ctx, domain.KindProject, "gone")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		assert.True(t, errors.Is(s.Delete(ctx, domain.KindProject, d.ID), domain.ErrNotFound))

		// the slug is free again
		require.NoError(t, s.Insert(ctx, domain.KindProject, doc("gone", `{}`)))
	})

	t.Run("update keeps id and enforces slug uniqueness", func(t *testing.T) {
		s := newStore(t)
		a := doc("a", `{"v":"a"}`)
		b := doc("b", `{"v":"b"}`)
		require.NoError(t, s.Insert(ctx, domain.KindProject, a))
		require.NoError(t, s.Insert(ctx, domain.KindProject, b))

		_, err := s.Update(ctx, domain.KindProject, b.ID, func(cur Document) (Document, error) {
			cur.Slug = "a"
			cur.Body = []byte(`{"v":"changed"}`)
			return cur, nil
		})
		assert.True(t, errors.Is(err, domain.ErrConflict))

		got, err := s.Get(ctx, domain.KindProject, b.ID)
		require.NoError(t, err)
		assert.Equal(t, "b", got.Slug)
		assert.Equal(t, "b", decode(t, got)["v"])

		updated, err := s.Update(ctx, domain.KindProject, b.ID, func(cur Document) (Document, error) {
			cur.ID = "hijack"
			cur.Slug = "b2"
			return cur, nil
		})
		require.NoError(t, err)
		assert.Equal(t, b.ID, updated.ID)

		_, err = s.GetBySlug(ctx, domain.KindProject, "b")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
		_, err = s.GetBySlug(ctx, domain.KindProject, "b2")
		assert.NoError(t, err)
	})

	t.Run("update of missing id is not found", func(t *testing.T) {
		s := newStore(t)
		_, err := s.Update(ctx, domain.KindVault, uuid.NewString(), func(cur Document) (Document, error) {
			return cur, nil
		})
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("mutate error leaves document unchanged", func(t *testing.T) {
		s := newStore(t)
		d := doc("", `{"v":1}`)
		require.NoError(t, s.Insert(ctx, domain.KindVault, d))

		boom := errors.New("boom")
		_, err := s.Update(ctx, domain.KindVault, d.ID, func(cur Document) (Document, error) {
			return Document{}, boom
		})
		assert.ErrorIs(t, err, boom)

		got, err := s.Get(ctx, domain.KindVault, d.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(1), decode(t, got)["v"])
	})

	t.Run("concurrent increments are all applied", func(t *testing.T) {
		s := newStore(t)
		th := doc("", `{"title":"t","likes":0,"dislikes":0}`)
		require.NoError(t, s.Insert(ctx, domain.KindArena, th))

		const n = 50
		var wg sync.WaitGroup
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				_, err := s.Increment(ctx, domain.KindArena, th.ID, "likes")
				assert.NoError(t, err)
			}()
		}
		wg.Wait()

		got, err := s.Get(ctx, domain.KindArena, th.ID)
		require.NoError(t, err)
		assert.Equal(t, float64(n), decode(t, got)["likes"])
		assert.Equal(t, float64(0), decode(t, got)["dislikes"])
	})

	t.Run("increment starts missing counters at zero", func(t *testing.T) {
		s := newStore(t)
		th := doc("", `{"title":"t"}`)
		require.NoError(t, s.Insert(ctx, domain.KindArena, th))

		got, err := s.Increment(ctx, domain.KindArena, th.ID, "dislikes")
		require.NoError(t, err)
		assert.Equal(t, float64(1), decode(t, got)["dislikes"])

		_, err = s.Increment(ctx, domain.KindArena, uuid.NewString(), "likes")
		assert.True(t, errors.Is(err, domain.ErrNotFound))
	})

	t.Run("appended items stay with their thread", func(t *testing.T) {
		s := newStore(t)
		one := doc("", `{"title":"one","comments":[]}`)
		two := doc("", `{"title":"two","comments":null}`)
		require.NoError(t, s.Insert(ctx, domain.KindArena, one))
		require.NoError(t, s.Insert(ctx, domain.KindArena, two))

		_, err := s.AppendItem(ctx, domain.KindArena, one.ID, "comments", []byte(`{"id":"c1"}`))
		require.NoError(t, err)
		_, err = s.AppendItem(ctx, domain.KindArena, one.ID, "comments", []byte(`{"id":"c2"}`))
		require.NoError(t, err)
		got2, err := s.AppendItem(ctx, domain.KindArena, two.ID, "comments", []byte(`{"id":"c3"}`))
		require.NoError(t, err)

		got1, err := s.Get(ctx, domain.KindArena, one.ID)
		require.NoError(t, err)

		c1 := decode(t, got1)["comments"].([]interface{})
		c2 := decode(t, got2)["comments"].([]interface{})
		require.Len(t, c1, 2)
		require.Len(t, c2, 1)
		assert.Equal(t, "c1", c1[0].(map[string]interface{})["id"])
		assert.Equal(t, "c2", c1[1].(map[string]interface{})["id"])
		assert.Equal(t, "c3", c2[0].(map[string]interface{})["id"])
	})

	t.Run("ping", func(t *testing.T) {
		assert.NoError(t, newStore(t).Ping(ctx))
	})
}
