package store

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kakari-nlp/kakari"
)

func newTestStore(t *testing.T) *SQLiteStore {
	t.Helper()
	s, err := NewSQLiteStore(filepath.Join(t.TempDir(), "nested", "test.db"))
	require.NoError(t, err, "create store")
	t.Cleanup(func() { s.Close() })
	return s
}

func sampleAnalysis(text string) *kakari.Analysis {
	a := kakari.Analyze([]kakari.Morpheme{
		{Surface: "先生", POS: kakari.POSNoun, BasicForm: "先生"},
		{Surface: "が", POS: kakari.POSParticle, BasicForm: "が"},
		{Surface: "来", POS: kakari.POSVerb, BasicForm: "来る"},
		{Surface: "た", POS: kakari.POSAuxiliaryVerb, BasicForm: "た"},
	})
	a.Text = text
	return a
}

func TestSaveAndGet(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)
	require.NoError(t, s.Ping(ctx))

	rec, err := s.Save(ctx, sampleAnalysis("先生が来た"))
	require.NoError(t, err)
	assert.Len(t, rec.ID, 26, "ulid string")
	assert.Equal(t, 4, rec.Morphemes)
	assert.False(t, rec.CreatedAt.IsZero())

	got, err := s.Get(ctx, rec.ID)
	require.NoError(t, err)
	assert.Equal(t, "先生が来た", got.Text)
	require.NotNil(t, got.Analysis)
	assert.Equal(t, rec.Analysis.Edges, got.Analysis.Edges)
	assert.Equal(t, rec.Analysis.Morphemes, got.Analysis.Morphemes)
	assert.Equal(t, rec.Analysis.Roles[kakari.Who], got.Analysis.Roles[kakari.Who])
	assert.Empty(t, got.Analysis.Roles[kakari.Why])
	assert.True(t, rec.CreatedAt.Equal(got.CreatedAt))
}

func TestGetNotFound(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Get(context.Background(), "01HZZZZZZZZZZZZZZZZZZZZZZZ")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestSaveNil(t *testing.T) {
	s := newTestStore(t)
	_, err := s.Save(context.Background(), nil)
	assert.Error(t, err)
}

func TestListNewestFirst(t *testing.T) {
	ctx := context.Background()
	s := newTestStore(t)

	var ids []string
	for _, text := range []string{"一", "二", "三"} {
		rec, err := s.Save(ctx, sampleAnalysis(text))
		require.NoError(t, err)
		ids = append(ids, rec.ID)
	}

	all, err := s.List(ctx, ListParams{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{ids[2], ids[1], ids[0]}, []string{all[0].ID, all[1].ID, all[2].ID})
	assert.NotNil(t, all[0].Analysis)

	limited, err := s.List(ctx, ListParams{Limit: 2, Summary: true})
	require.NoError(t, err)
	require.Len(t, limited, 2)
	assert.Equal(t, "三", limited[0].Text)
	assert.Nil(t, limited[0].Analysis)

	filtered, err := s.List(ctx, ListParams{Contains: "二"})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, ids[1], filtered[0].ID)
}
