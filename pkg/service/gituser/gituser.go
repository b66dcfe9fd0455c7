package gituser

import (
	"context"

	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
)

type service struct {
	logger lumber.Logger
}

// New returns a new User service that provides access to
// user data from the source code management system.
func New(logger lumber.Logger) core.GitUserService {
	return &service{logger: logger}
}

// Find returns the authenticated user.
func (s *service) Find(ctx context.Context, session *core.SCM) (*core.GitUser, error) {
	// set token in context for the git scm client
	ctx = session.Token.SetRequestContext(ctx)

	src, _, err := session.Client.Users.Find(ctx)
	if err != nil {
		s.logger.Errorf("error while finding user %v", err)
		return nil, err
	}

	return &core.GitUser{
		Username: src.Login,
		Name:     src.Name,
		Email:    src.Email,
		Avatar:   src.Avatar,
	}, nil
}
