package gitstatus

import (
	"context"

	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/drone/go-scm/scm"
)

type service struct {
	logger lumber.Logger
}

// New returns a new GitStatusService posting commit statuses through the
// session's client.
func New(logger lumber.Logger) core.GitStatusService {
	return &service{logger: logger}
}

func (s *service) Create(ctx context.Context, session *core.SCM, repo, sha string, status *core.GitStatus) error {
	input := &scm.StatusInput{
		State:  status.State.APIState(),
		Label:  status.Context,
		Desc:   status.Description,
		Target: status.TargetURL,
	}

	ctx = session.Token.SetRequestContext(ctx)
	if _, _, err := session.Client.Repositories.CreateStatus(ctx, repo, sha, input); err != nil {
		s.logger.Errorf("failed to create status for commit %s in repo %s, error: %v", sha, repo, err)
		return err
	}
	return nil
}
