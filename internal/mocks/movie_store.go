package mocks

import (
	"context"
	"sort"
	"sync"

	"github.com/phrazzld/movie-api/internal/domain"
	"github.com/phrazzld/movie-api/internal/store"
)

// MockMovieStore implements store.MovieStore for testing
type MockMovieStore struct {
	// Function fields for customizable behavior
	CreateFn  func(ctx context.Context, movie *domain.Movie) (int64, error)
	ListFn    func(ctx context.Context) ([]domain.Movie, error)
	GetByIDFn func(ctx context.Context, id int64) (*domain.Movie, error)
	UpdateFn  func(ctx context.Context, movie *domain.Movie) error
	DeleteFn  func(ctx context.Context, id int64) error

	// Data for default implementation
	mu     sync.Mutex
	Movies map[int64]domain.Movie
	LastID int64
}

var _ store.MovieStore = (*MockMovieStore)(nil)

// NewMockMovieStore creates a new mock store with initialized defaults
func NewMockMovieStore(seed ...domain.Movie) *MockMovieStore {
	m := &MockMovieStore{Movies: make(map[int64]domain.Movie)}
	for _, movie := range seed {
		m.Movies[movie.ID] = movie
		if movie.ID > m.LastID {
			m.LastID = movie.ID
		}
	}
	return m
}

// Create implements the MovieStore interface
func (m *MockMovieStore) Create(ctx context.Context, movie *domain.Movie) (int64, error) {
	if m.CreateFn != nil {
		return m.CreateFn(ctx, movie)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.init()
	m.LastID++
	stored := *movie
	stored.ID = m.LastID
	m.Movies[stored.ID] = stored
	return stored.ID, nil
}

// List implements the MovieStore interface
func (m *MockMovieStore) List(ctx context.Context) ([]domain.Movie, error) {
	if m.ListFn != nil {
		return m.ListFn(ctx)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	movies := make([]domain.Movie, 0, len(m.Movies))
	for _, movie := range m.Movies {
		movies = append(movies, movie)
	}
	sort.Slice(movies, func(i, j int) bool { return movies[i].ID < movies[j].ID })
	return movies, nil
}

// GetByID implements the MovieStore interface
func (m *MockMovieStore) GetByID(ctx context.Context, id int64) (*domain.Movie, error) {
	if m.GetByIDFn != nil {
		return m.GetByIDFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	movie, ok := m.Movies[id]
	if !ok {
		return nil, store.ErrMovieNotFound
	}
	return &movie, nil
}

// Update implements the MovieStore interface
func (m *MockMovieStore) Update(ctx context.Context, movie *domain.Movie) error {
	if m.UpdateFn != nil {
		return m.UpdateFn(ctx, movie)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Movies[movie.ID]; !ok {
		return store.ErrMovieNotFound
	}
	m.Movies[movie.ID] = *movie
	return nil
}

// Delete implements the MovieStore interface
func (m *MockMovieStore) Delete(ctx context.Context, id int64) error {
	if m.DeleteFn != nil {
		return m.DeleteFn(ctx, id)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.Movies[id]; !ok {
		return store.ErrMovieNotFound
	}
	delete(m.Movies, id)
	return nil
}

func (m *MockMovieStore) init() {
	if m.Movies == nil {
		m.Movies = make(map[int64]domain.Movie)
	}
}
