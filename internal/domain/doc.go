// Package domain contains the movie entity, the partial-update value used by
// the edit operation and the single-or-list read result. It has no
// dependencies on storage or transport.
package domain
