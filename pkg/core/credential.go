package core

import "context"

// CredentialKind identifies the shape of a stored credential.
type CredentialKind string

// Supported CredentialKind values. Any other kind is stored as is and rejected on use.
const (
	CredentialUsernamePassword CredentialKind = "usernamePassword"
	CredentialSecretText       CredentialKind = "secretText"
)

// Supported reports whether the kind can authenticate against the hosting API.
func (k CredentialKind) Supported() bool {
	return k == CredentialUsernamePassword || k == CredentialSecretText
}

// Credential is a secret held by the credential store.
type Credential struct {
	ID          string         `json:"id"`
	Kind        CredentialKind `json:"kind"`
	Description string         `json:"description,omitempty"`
	Username    string         `json:"username,omitempty"`
	Secret      string         `json:"secret"`
}

// Token returns the API token the credential authenticates with.
func (c *Credential) Token() *Token {
	if c.Kind == CredentialSecretText {
		return &Token{AccessToken: c.Secret}
	}
	return &Token{AccessToken: c.Secret, Username: c.Username}
}

// CredentialStore looks up credentials by id.
type CredentialStore interface {
	// Find returns the credential with the id visible in scope, nil when absent.
	Find(ctx context.Context, id, scope string) (*Credential, error)
	// List returns the credentials visible in scope.
	List(ctx context.Context, scope string) ([]*Credential, error)
}
