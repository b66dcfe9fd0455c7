package core

import (
	"context"
	"time"
)

// GitCommit represents a git commit.
type GitCommit struct {
	CommitID  string    `json:"commit_id"`
	Message   string    `json:"message"`
	Link      string    `json:"link"`
	Author    Signature `json:"author"`
	Committer Signature `json:"committer"`
}

// Signature identifies a git commit author or committer.
type Signature struct {
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Date  time.Time `json:"date"`
}

// CommitService provides access to the commit history from
// the external source code management service.
type CommitService interface {
	// Find returns the commit information by sha.
	Find(ctx context.Context, session *SCM, repo, sha string) (*GitCommit, error)
}
