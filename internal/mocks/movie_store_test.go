package mocks

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/movie-api/internal/domain"
	"github.com/phrazzld/movie-api/internal/store"
)

func TestMockMovieStore_DefaultBehavior(t *testing.T) {
	ctx := context.Background()
	m := NewMockMovieStore(domain.Movie{ID: 3, Title: "Alien", Year: 1979, Review: "Tense"})

	id, err := m.Create(ctx, &domain.Movie{Title: "Aliens", Year: 1986, Review: "Loud"})
	require.NoError(t, err)
	assert.Equal(t, int64(4), id)

	list, err := m.List(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "Alien", list[0].Title)
	assert.Equal(t, "Aliens", list[1].Title)

	got, err := m.GetByID(ctx, 4)
	require.NoError(t, err)
	got.Review = "Louder"
	require.NoError(t, m.Update(ctx, got))
	assert.Equal(t, "Louder", m.Movies[4].Review)

	require.NoError(t, m.Delete(ctx, 3))
	_, err = m.GetByID(ctx, 3)
	assert.ErrorIs(t, err, store.ErrMovieNotFound)
	assert.ErrorIs(t, m.Delete(ctx, 3), store.ErrMovieNotFound)
	assert.ErrorIs(t, m.Update(ctx, &domain.Movie{ID: 99}), store.ErrMovieNotFound)
}

func TestMockMovieStore_ZeroValue(t *testing.T) {
	var m MockMovieStore
	id, err := m.Create(context.Background(), &domain.Movie{Title: "Dune"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestMockMovieStore_FunctionFields(t *testing.T) {
	boom := errors.New("boom")
	m := NewMockMovieStore()
	m.ListFn = func(context.Context) ([]domain.Movie, error) { return nil, boom }

	_, err := m.List(context.Background())
	assert.ErrorIs(t, err, boom)
}
