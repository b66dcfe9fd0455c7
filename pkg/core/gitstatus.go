package core

import "context"

// GitStatus is the git scm status which will be updated using APIs.
type GitStatus struct {
	State       CommitState
	Description string
	Context     string
	TargetURL   string
}

// GitStatusService sends the commit status to an external
// git SCM provider.
type GitStatusService interface {
	// Create posts the status on commit sha of repo.
	Create(ctx context.Context, session *SCM, repo, sha string, status *GitStatus) error
}
