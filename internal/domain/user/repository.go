package user

import "context"

// UserRepository defines read access to the externally managed user store.
type UserRepository interface {
	// GetByID retrieves a user by ID; returns nil when absent.
	GetByID(ctx context.Context, id string) (*User, error)

	// ListActiveCardHolders retrieves all active users that have an RFID
	// card linked. These are the users the daily batch iterates.
	ListActiveCardHolders(ctx context.Context) ([]User, error)
}
