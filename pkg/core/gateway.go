package core

import "context"

// RepositoryGateway talks to the hosting API on behalf of one invocation.
type RepositoryGateway interface {
	// Authenticate resolves the credentials and checks them against the API.
	Authenticate(ctx context.Context, credentialsID, apiURL, scope string) (*SCM, error)
	// FindRepository returns the repository with the full name owner/name.
	FindRepository(ctx context.Context, session *SCM, fullName string) (*Repository, error)
	// FindCommit returns the commit sha of repo.
	FindCommit(ctx context.Context, session *SCM, repo *Repository, sha string) (*GitCommit, error)
	// CreateStatus posts one status on the commit.
	CreateStatus(ctx context.Context, session *SCM, repo *Repository, sha string, status *GitStatus) error
}
