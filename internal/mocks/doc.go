// Package mocks provides centralized mock implementations for testing.
//
// Each mock has a function field per interface method. A nil field falls back
// to a small in-memory implementation, so tests only stub the calls they care
// about:
//
//	movies := mocks.NewMockMovieStore()
//	movies.DeleteFn = func(ctx context.Context, id int64) error {
//	    return errors.New("boom")
//	}
package mocks
