// Package gateway authenticates against the hosting API and reads and writes the
// resources a commit status needs.
package gateway

import (
	"context"
	"errors"
	"strings"

	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
)

type gateway struct {
	credentialStore core.CredentialStore
	scmProvider     core.SCMProvider
	userService     core.GitUserService
	repoService     core.RepositoryService
	commitService   core.CommitService
	statusService   core.GitStatusService
	logger          lumber.Logger
}

// New returns a RepositoryGateway.
func New(credentialStore core.CredentialStore,
	scmProvider core.SCMProvider,
	userService core.GitUserService,
	repoService core.RepositoryService,
	commitService core.CommitService,
	statusService core.GitStatusService,
	logger lumber.Logger) core.RepositoryGateway {
	return &gateway{
		credentialStore: credentialStore,
		scmProvider:     scmProvider,
		userService:     userService,
		repoService:     repoService,
		commitService:   commitService,
		statusService:   statusService,
		logger:          logger,
	}
}

// Authenticate resolves credentialsID in scope and verifies it against the API.
// No request reaches the API before the credential kind is known to be supported.
func (g *gateway) Authenticate(ctx context.Context, credentialsID, apiURL, scope string) (*core.SCM, error) {
	if strings.TrimSpace(credentialsID) == "" {
		return nil, errs.ErrCredentialsNull
	}

	cred, err := g.credentialStore.Find(ctx, credentialsID, scope)
	if err != nil {
		g.logger.Errorf("failed to find credentials %s in scope %q, error: %v", credentialsID, scope, err)
		return nil, errs.WithCause(errs.ErrCredentialsNotFound, err)
	}
	if cred == nil {
		g.logger.Debugf("credentials %s not found in scope %q", credentialsID, scope)
		return nil, errs.ErrCredentialsNotFound
	}
	if !cred.Kind.Supported() {
		g.logger.Debugf("credentials %s have unsupported kind %s", credentialsID, cred.Kind)
		return nil, errs.ErrCredentialsUnsupported
	}

	session, err := g.scmProvider.GetClient(apiURL)
	if err != nil {
		return nil, errs.WithCause(errs.ErrCredentialsInvalid, err)
	}
	session.Token = cred.Token()

	user, err := g.userService.Find(ctx, session)
	if err != nil {
		g.logger.Errorf("failed to login with credentials %s at %s, error: %v", credentialsID, session.APIURL, err)
		return nil, errs.WithCause(errs.ErrCredentialsInvalid, err)
	}
	session.User = user
	return session, nil
}

func (g *gateway) FindRepository(ctx context.Context, session *core.SCM, fullName string) (*core.Repository, error) {
	repo, err := g.repoService.Find(ctx, session, fullName)
	if err != nil {
		if errors.Is(err, errs.ErrNotFound) {
			g.logger.Debugf("repository %s not accessible to %s", fullName, loginOf(session))
			return nil, errs.ErrRepositoryNotFound
		}
		return nil, errs.WithCause(errs.ErrRepositoryNotFound, err)
	}
	return repo, nil
}

func (g *gateway) FindCommit(ctx context.Context, session *core.SCM, repo *core.Repository, sha string) (*core.GitCommit, error) {
	if strings.TrimSpace(sha) == "" {
		return nil, errs.ErrCommitNotFound
	}
	commit, err := g.commitService.Find(ctx, session, repo.FullName, sha)
	if err != nil {
		return nil, errs.WithCause(errs.ErrCommitNotFound, err)
	}
	if commit.CommitID == "" {
		commit.CommitID = sha
	}
	return commit, nil
}

// CreateStatus makes exactly one attempt.
func (g *gateway) CreateStatus(ctx context.Context, session *core.SCM, repo *core.Repository, sha string, status *core.GitStatus) error {
	if err := g.statusService.Create(ctx, session, repo.FullName, sha, status); err != nil {
		return errs.WithCause(errs.ErrDeliveryFailed, err)
	}
	return nil
}

func loginOf(session *core.SCM) string {
	if session == nil || session.User == nil {
		return ""
	}
	return session.User.Username
}
