package repo

import (
	"context"
	"strings"

	"github.com/LambdaTest/ghnotify/pkg/constants"
	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/LambdaTest/ghnotify/pkg/utils"
	"github.com/drone/go-scm/scm"
)

type service struct {
	pageSize int
	logger   lumber.Logger
}

// New returns a new Repository service, providing access to the
// repository information from the source code management system.
func New(pageSize int, logger lumber.Logger) core.RepositoryService {
	if pageSize <= 0 {
		pageSize = constants.DefaultRepoPageSize
	}
	return &service{
		pageSize: utils.Min(pageSize, constants.MaxRepoPageSize),
		logger:   logger,
	}
}

// Find walks the pages of accessible repositories until the exact full name matches.
func (s *service) Find(ctx context.Context, session *core.SCM, fullName string) (*core.Repository, error) {
	page := 1
	for page != 0 {
		repos, next, err := s.List(ctx, session, page, s.pageSize)
		if err != nil {
			return nil, err
		}
		for _, r := range repos {
			if r.FullName == fullName {
				return r, nil
			}
		}
		page = next
	}
	return nil, errs.ErrNotFound
}

func (s *service) List(ctx context.Context, session *core.SCM, page, size int) ([]*core.Repository, int, error) {
	ctx = session.Token.SetRequestContext(ctx)
	opts := scm.ListOptions{Page: utils.Max(page, 1), Size: utils.Min(size, constants.MaxRepoPageSize)}
	result, meta, err := session.Client.Repositories.List(ctx, opts)
	if err != nil {
		s.logger.Errorf("failed to list repositories page %d, error: %v", opts.Page, err)
		return nil, 0, err
	}
	repos := make([]*core.Repository, 0, len(result))
	for _, src := range result {
		repos = append(repos, convertRepository(src))
	}
	nextPage := 0
	if meta != nil && meta.Page.Next > opts.Page {
		nextPage = meta.Page.Next
	}
	return repos, nextPage, nil
}

func convertRepository(src *scm.Repository) *core.Repository {
	fullName := src.Name
	if src.Namespace != "" {
		fullName = scm.Join(src.Namespace, src.Name)
	}
	return &core.Repository{
		ID:            src.ID,
		Namespace:     src.Namespace,
		Name:          src.Name,
		FullName:      strings.TrimSpace(fullName),
		DefaultBranch: src.Branch,
		HTTPURL:       src.Clone,
		SSHURL:        src.CloneSSH,
		Link:          src.Link,
		Private:       src.Private,
		Perm: &core.Perm{
			Write: src.Perm != nil && src.Perm.Push,
			Read:  src.Perm != nil && src.Perm.Pull,
			Admin: src.Perm != nil && src.Perm.Admin,
		},
	}
}
