// package services defines interface Service for interacting with the Phish.net API
package services

import (
	"context"
)

// Methods and columns accepted by [Service] queries.
const (
	MethodShows    = "shows"
	MethodSetlists = "setlists"

	ColumnShowDate = "showdate"
	ColumnShowID   = "showid"
)

// Service defines the interface for a concert database that can be queried by column.
type Service interface {
	// GetShows returns show records whose column equals value.
	GetShows(ctx context.Context, column, value string) ([]any, error)

	// GetSetlists returns setlist records whose column equals value.
	GetSetlists(ctx context.Context, column, value string) ([]any, error)

	// Name returns the name of the service (e.g., "Phish.net")
	Name() string
}

var (
	_ Service = (*PhishNetService)(nil)
)

func validMethod(method string) bool {
	return method == MethodShows || method == MethodSetlists
}

func validColumn(column string) bool {
	return column == ColumnShowDate || column == ColumnShowID
}
