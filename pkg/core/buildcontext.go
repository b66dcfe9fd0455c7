package core

import "context"

// SourceKindGitHub is the kind of SCM sources backed by GitHub.
const SourceKindGitHub = "github"

// Item is a node of the job hierarchy.
type Item interface {
	// Name returns the full name of the item.
	Name() string
	// Parent returns the enclosing item, nil at the top.
	Parent() Item
}

// SCMSource is a source configured on a multi-branch project or organization folder.
type SCMSource struct {
	Kind              string `json:"kind"`
	Repository        string `json:"repository"`
	ScanCredentialsID string `json:"scanCredentialsId"`
	APIURL            string `json:"apiUrl,omitempty"`
}

// SourceOwner is an Item that owns SCM sources.
type SourceOwner interface {
	Item
	Sources() []SCMSource
}

// RevisionKind tags the revision variant.
type RevisionKind string

// RevisionKind values. Other kinds (tags, unknown) carry no inferable hash.
const (
	RevisionBranch      RevisionKind = "branch"
	RevisionPullRequest RevisionKind = "pullRequest"
)

// Revision is the revision the build checked out.
type Revision struct {
	Kind     RevisionKind `json:"kind"`
	Hash     string       `json:"hash,omitempty"`
	PullHash string       `json:"pullHash,omitempty"`
}

// BuildContext is the read-only view of the running build.
type BuildContext interface {
	// Job returns the job the build belongs to.
	Job() Item
	// Revision returns the revision of the build, nil if none was recorded.
	Revision() *Revision
	// RunURL returns the build result page.
	RunURL() string
}

// BuildContextLoader produces the build context for an invocation.
type BuildContextLoader interface {
	Load(ctx context.Context) (BuildContext, error)
}

// ContextResolver infers missing request fields from the build context.
type ContextResolver interface {
	// FindSource returns the first GitHub source of the job's container.
	FindSource(bc BuildContext) (*SCMSource, error)
	// InferCredentialsID returns the scan credentials of the GitHub source.
	InferCredentialsID(bc BuildContext) (string, error)
	// InferRepository returns the repository of the GitHub source.
	InferRepository(bc BuildContext) (string, error)
	// InferCommitSHA returns the hash of the build revision.
	InferCommitSHA(bc BuildContext) (string, error)
}
