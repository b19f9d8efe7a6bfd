// Package auth contains authentication use cases for the single owner account.
package auth

// Owner is the only account of the tracker. Its credentials come from configuration.
type Owner struct {
	ID           string
	Email        string
	Name         string
	PasswordHash string
}

// IsConfigured reports whether the owner can log in.
func (o Owner) IsConfigured() bool {
	return o.Email != "" && o.PasswordHash != ""
}
