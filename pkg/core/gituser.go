package core

import "context"

// GitUser represents the git scm user
type GitUser struct {
	Username string `json:"username"`
	Name     string `json:"name,omitempty"`
	Email    string `json:"email,omitempty"`
	Avatar   string `json:"avatar,omitempty"`
}

// GitUserService provides access to user account
// resources in the remote system.
type GitUserService interface {
	// Find returns the authenticated user.
	Find(ctx context.Context, session *SCM) (*GitUser, error)
}
