// Package notifier resolves, validates and delivers commit statuses.
package notifier

import (
	"context"

	"github.com/LambdaTest/ghnotify/pkg/constants"
	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/LambdaTest/ghnotify/pkg/utils"
)

const noneSelection = "- none -"

type notifier struct {
	gateway         core.RepositoryGateway
	resolver        core.ContextResolver
	credentialStore core.CredentialStore
	logger          lumber.Logger
}

// New returns a StatusNotifier.
func New(gateway core.RepositoryGateway,
	resolver core.ContextResolver,
	credentialStore core.CredentialStore,
	logger lumber.Logger) core.StatusNotifier {
	return &notifier{
		gateway:         gateway,
		resolver:        resolver,
		credentialStore: credentialStore,
		logger:          logger,
	}
}

// Notify resolves the missing fields of req from bc, validates credentials,
// repository and commit in that order and posts one status. The first failure
// aborts the delivery.
func (n *notifier) Notify(ctx context.Context, req *core.NotificationRequest, bc core.BuildContext) (*core.NotificationResult, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	requestID := utils.GenerateUUID()
	logger := n.logger.WithFields(lumber.Fields{constants.RequestIDKey: requestID})

	targetURL := req.TargetURL
	if targetURL == "" && bc != nil {
		targetURL = bc.RunURL()
	}

	credentialsID := req.CredentialsID
	if credentialsID == "" {
		id, err := n.resolver.InferCredentialsID(bc)
		if err != nil {
			logger.Errorf("failed to infer credentials id, error: %v", err)
			return nil, err
		}
		credentialsID = id
	}

	repoName := req.Repo
	if repoName == "" {
		name, err := n.resolver.InferRepository(bc)
		if err != nil {
			logger.Errorf("failed to infer repository, error: %v", err)
			return nil, err
		}
		repoName = name
	}

	session, err := n.gateway.Authenticate(ctx, credentialsID, req.GitAPIURL, scopeOf(bc))
	if err != nil {
		logger.Errorf("failed to authenticate with credentials %s, error: %v", credentialsID, err)
		return nil, err
	}
	repo, err := n.gateway.FindRepository(ctx, session, repoName)
	if err != nil {
		logger.Errorf("failed to find repository %s, error: %v", repoName, err)
		return nil, err
	}

	sha := req.SHA
	if sha == "" {
		inferred, ierr := n.resolver.InferCommitSHA(bc)
		if ierr != nil {
			logger.Errorf("failed to infer commit, error: %v", ierr)
			return nil, ierr
		}
		sha = inferred
	}
	commit, err := n.gateway.FindCommit(ctx, session, repo, sha)
	if err != nil {
		logger.Errorf("failed to find commit %s in %s, error: %v", sha, repo.FullName, err)
		return nil, err
	}

	status := &core.GitStatus{
		State:       req.Status,
		Description: req.Description,
		Context:     req.Context,
		TargetURL:   targetURL,
	}
	if err := n.gateway.CreateStatus(ctx, session, repo, commit.CommitID, status); err != nil {
		logger.Errorf("failed to deliver status %s to %s@%s, error: %v", req.Status, repo.FullName, commit.CommitID, err)
		return nil, err
	}
	logger.Infof("delivered status %s with context %s to %s@%s", req.Status, req.Context, repo.FullName, commit.CommitID)

	return &core.NotificationResult{
		RequestID:     requestID,
		Repo:          repo.FullName,
		SHA:           commit.CommitID,
		InputSHA:      sha,
		Context:       req.Context,
		State:         req.Status,
		TargetURL:     targetURL,
		CredentialsID: credentialsID,
	}, nil
}

func (n *notifier) TestConnection(ctx context.Context, credentialsID, apiURL, scope string) *core.ValidationResult {
	if _, err := n.gateway.Authenticate(ctx, credentialsID, apiURL, scope); err != nil {
		return core.ValidationFailed(err)
	}
	return core.ValidationOk(constants.ProbeSuccess)
}

func (n *notifier) CheckRepo(ctx context.Context, credentialsID, repo, apiURL, scope string) *core.ValidationResult {
	session, err := n.gateway.Authenticate(ctx, credentialsID, apiURL, scope)
	if err != nil {
		return core.ValidationFailed(err)
	}
	if _, err := n.gateway.FindRepository(ctx, session, repo); err != nil {
		return core.ValidationFailed(err)
	}
	return core.ValidationOk(constants.ProbeSuccess)
}

func (n *notifier) CheckSHA(ctx context.Context, credentialsID, repo, sha, apiURL, scope string) *core.ValidationResult {
	session, err := n.gateway.Authenticate(ctx, credentialsID, apiURL, scope)
	if err != nil {
		return core.ValidationFailed(err)
	}
	r, err := n.gateway.FindRepository(ctx, session, repo)
	if err != nil {
		return core.ValidationFailed(err)
	}
	if _, err := n.gateway.FindCommit(ctx, session, r, sha); err != nil {
		return core.ValidationFailed(err)
	}
	return core.ValidationOk(constants.ProbeCommitValid)
}

func (n *notifier) StatusItems() []core.ListItem {
	items := make([]core.ListItem, 0, len(core.CommitStates))
	for _, s := range core.CommitStates {
		items = append(items, core.ListItem{Name: s.String(), Value: s.String()})
	}
	return items
}

// CredentialsItems lists the supported credentials visible in scope, led by an
// empty selection.
func (n *notifier) CredentialsItems(ctx context.Context, scope string) ([]core.ListItem, error) {
	creds, err := n.credentialStore.List(ctx, scope)
	if err != nil {
		n.logger.Errorf("failed to list credentials in scope %q, error: %v", scope, err)
		return nil, err
	}
	items := []core.ListItem{{Name: noneSelection, Value: ""}}
	for _, c := range creds {
		if !c.Kind.Supported() {
			continue
		}
		items = append(items, core.ListItem{Name: displayName(c), Value: c.ID})
	}
	return items, nil
}

func displayName(c *core.Credential) string {
	switch {
	case c.Description != "":
		return c.Description
	case c.Username != "":
		return c.Username + "/******"
	default:
		return c.ID
	}
}

// scopeOf returns the credential lookup scope of the build, the full name of its job.
func scopeOf(bc core.BuildContext) string {
	if bc == nil || bc.Job() == nil {
		return ""
	}
	return bc.Job().Name()
}
