// Package id generates short opaque expense identifiers.
package id

import "github.com/google/uuid"

// idLength keeps ids readable in listings and CSV files. Collision
// probability over a personal-sized collection is negligible and is not
// checked.
const idLength = 8

// New returns a fresh identifier: the leading hex characters of a
// random UUID.
func New() string {
	return uuid.NewString()[:idLength]
}
