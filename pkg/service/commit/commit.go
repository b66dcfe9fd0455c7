package commit

import (
	"context"

	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/LambdaTest/ghnotify/pkg/utils"
)

type service struct {
	logger lumber.Logger
}

// New returns a new CommitService.
func New(logger lumber.Logger) core.CommitService {
	return &service{
		logger: logger,
	}
}

// Find returns the commit information by sha.
func (s *service) Find(ctx context.Context, session *core.SCM, repo, sha string) (*core.GitCommit, error) {
	// set token in context for the git scm client
	ctx = session.Token.SetRequestContext(ctx)

	commit, _, err := session.Client.Git.FindCommit(ctx, repo, sha)
	if err != nil {
		s.logger.Errorf("failed to find commit %s in repo %s, error: %v", sha, repo, err)
		return nil, err
	}

	return &core.GitCommit{
		CommitID: commit.Sha,
		Message:  commit.Message,
		Link:     commit.Link,
		Author: core.Signature{
			Name:  utils.GetAuthorName(&commit.Author),
			Email: commit.Author.Email,
			Date:  commit.Author.Date,
		},
		Committer: core.Signature{
			Name:  utils.GetAuthorName(&commit.Committer),
			Email: commit.Committer.Email,
			Date:  commit.Committer.Date,
		},
	}, nil
}
