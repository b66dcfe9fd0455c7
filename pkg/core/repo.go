package core

import "context"

// Repository represents a git repository.
type Repository struct {
	ID            string `json:"id"`
	Namespace     string `json:"namespace"`
	Name          string `json:"name"`
	FullName      string `json:"full_name"`
	DefaultBranch string `json:"default_branch,omitempty"`
	HTTPURL       string `json:"http_url,omitempty"`
	SSHURL        string `json:"ssh_url,omitempty"`
	Link          string `json:"link,omitempty"`
	Private       bool   `json:"private"`
	Perm          *Perm  `json:"permissions,omitempty"`
}

// Perm represents the user's repository permissions.
type Perm struct {
	Read  bool `json:"read"`
	Write bool `json:"write"`
	Admin bool `json:"admin"`
}

// RepositoryService provides access to repository information
// in the remote source code management system.
type RepositoryService interface {
	// Find returns the repository with the given full name among the repositories
	// accessible to the session identity.
	Find(ctx context.Context, session *SCM, fullName string) (*Repository, error)
	// List returns one page of the repositories accessible to the session identity
	// and the next page, 0 on the last one.
	List(ctx context.Context, session *SCM, page, size int) ([]*Repository, int, error)
}
