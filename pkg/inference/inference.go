// Package inference fills missing notification fields from the build context.
package inference

import (
	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
)

type resolver struct {
	logger lumber.Logger
}

// New returns a ContextResolver.
func New(logger lumber.Logger) core.ContextResolver {
	return &resolver{logger: logger}
}

// FindSource returns the first GitHub source configured on the container of the
// job, which must be a source owner such as a multi-branch project.
func (r *resolver) FindSource(bc core.BuildContext) (*core.SCMSource, error) {
	if bc == nil {
		return nil, errs.ErrCannotInferGitData
	}
	job := bc.Job()
	if job == nil {
		return nil, errs.ErrCannotInferGitData
	}
	owner, ok := job.Parent().(core.SourceOwner)
	if !ok {
		r.logger.Debugf("container of job %s owns no scm sources", job.Name())
		return nil, errs.ErrCannotInferGitData
	}
	for _, src := range owner.Sources() {
		if src.Kind == core.SourceKindGitHub {
			source := src
			return &source, nil
		}
	}
	r.logger.Debugf("no github source configured on %s", owner.Name())
	return nil, errs.ErrCannotInferGitData
}

func (r *resolver) InferCredentialsID(bc core.BuildContext) (string, error) {
	source, err := r.FindSource(bc)
	if err != nil {
		return "", err
	}
	if source.ScanCredentialsID == "" {
		return "", errs.ErrCannotInferCredentials
	}
	return source.ScanCredentialsID, nil
}

func (r *resolver) InferRepository(bc core.BuildContext) (string, error) {
	source, err := r.FindSource(bc)
	if err != nil {
		return "", err
	}
	if source.Repository == "" {
		return "", errs.ErrCannotInferRepository
	}
	return source.Repository, nil
}

// InferCommitSHA returns the head of a branch build or the pull request head of
// a pull request build.
func (r *resolver) InferCommitSHA(bc core.BuildContext) (string, error) {
	if bc == nil {
		return "", errs.ErrCannotInferCommit
	}
	rev := bc.Revision()
	if rev == nil {
		return "", errs.ErrCannotInferCommit
	}
	var sha string
	switch rev.Kind {
	case core.RevisionBranch:
		sha = rev.Hash
	case core.RevisionPullRequest:
		sha = rev.PullHash
	default:
		r.logger.Debugf("cannot infer commit from revision of kind %s", rev.Kind)
	}
	if sha == "" {
		return "", errs.ErrCannotInferCommit
	}
	return sha, nil
}
