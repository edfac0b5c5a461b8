// Package dataapi holds the typed operations the dashboard issues against
// the hosted GraphQL backend, one file per entity. Every read returns the
// collection ordered the way the backend serves it (creation time descending
// where the document asks for it); every write returns only after the API
// confirmed the mutation, so callers can patch local state safely.
package dataapi

import (
	"cravio-admin/internal/common/graphql"
)

// API bundles the per-entity operations behind a single GraphQL client.
type API struct {
	gql *graphql.Client
}

func New(gql *graphql.Client) *API {
	return &API{gql: gql}
}
