package repository

import (
	"context"

	"codeatlas-gateway/internal/model"
)

// Repository is the data access contract for User records. The sync core
// reads provider credentials per request; writes are limited to credential
// management in the account-linking flow.
type Repository interface {
	// GetOneUser matches on any non-empty field (AND condition). Returns a
	// zero-value User (ID == 0) when not found — never an error.
	GetOneUser(ctx context.Context, opt GetOneUserOptions) (model.User, error)
	// UpdateProviderCredential writes the credential column(s) for one
	// provider. An empty token clears the stored credential (used when
	// validation finds a token invalid).
	UpdateProviderCredential(ctx context.Context, opt UpdateCredentialOptions) error
}

// GetOneUserOptions holds filter parameters for fetching a single User.
type GetOneUserOptions struct {
	ID    int64
	Email string
}

// UpdateCredentialOptions holds a provider credential write. Organization is
// only meaningful for the azure provider.
type UpdateCredentialOptions struct {
	UserID       int64
	Provider     model.Source
	Token        string
	Organization string
}
