package core

import (
	"context"
	"strings"

	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/drone/go-scm/scm"
)

// DefaultStatusContext is the status label used when the request does not set one.
const DefaultStatusContext = "jenkins/githubnotify"

// CommitState is the state of a commit status.
type CommitState string

// CommitState values.
const (
	StateSuccess CommitState = "SUCCESS"
	StateFailure CommitState = "FAILURE"
	StateError   CommitState = "ERROR"
	StatePending CommitState = "PENDING"
)

// CommitStates lists the supported states in display order.
var CommitStates = []CommitState{StateSuccess, StateFailure, StateError, StatePending}

// ParseCommitState parses the state name case-insensitively.
func ParseCommitState(s string) (CommitState, error) {
	state := CommitState(strings.ToUpper(strings.TrimSpace(s)))
	if err := state.Verify(); err != nil {
		return "", err
	}
	return state, nil
}

// Verify checks that the state is one of the supported values.
func (s CommitState) Verify() error {
	switch s {
	case StateSuccess, StateFailure, StateError, StatePending:
		return nil
	default:
		return errs.ErrInvalidRequest
	}
}

// String returns the state name.
func (s CommitState) String() string {
	return string(s)
}

// APIState maps the state to the hosting API state.
func (s CommitState) APIState() scm.State {
	switch s {
	case StateSuccess:
		return scm.StateSuccess
	case StateFailure:
		return scm.StateFailure
	case StateError:
		return scm.StateError
	case StatePending:
		return scm.StatePending
	default:
		return scm.StateUnknown
	}
}

// NotificationRequest is one request to publish a commit status.
// Repo, SHA, CredentialsID and TargetURL are inferred from the build when empty.
type NotificationRequest struct {
	Status        CommitState `json:"status" binding:"required"`
	Description   string      `json:"description" binding:"required"`
	Context       string      `json:"context,omitempty"`
	Repo          string      `json:"repo,omitempty" binding:"omitempty,repo_slug"`
	SHA           string      `json:"sha,omitempty"`
	CredentialsID string      `json:"credentialsId,omitempty"`
	GitAPIURL     string      `json:"gitApiUrl,omitempty" binding:"omitempty,url"`
	TargetURL     string      `json:"targetUrl,omitempty" binding:"omitempty,url"`
}

// NewNotificationRequest returns a request with the default status context.
func NewNotificationRequest(status CommitState, description string) *NotificationRequest {
	return &NotificationRequest{
		Status:      status,
		Description: description,
		Context:     DefaultStatusContext,
	}
}

// Validate checks the required fields and fills the default context.
func (r *NotificationRequest) Validate() error {
	if r == nil || strings.TrimSpace(r.Description) == "" {
		return errs.ErrInvalidRequest
	}
	if err := r.Status.Verify(); err != nil {
		return err
	}
	if r.Context == "" {
		r.Context = DefaultStatusContext
	}
	return nil
}

// NotificationResult describes a delivered status.
type NotificationResult struct {
	RequestID     string      `json:"requestId"`
	Repo          string      `json:"repo"`
	SHA           string      `json:"sha"`
	InputSHA      string      `json:"inputSha"`
	Context       string      `json:"context"`
	State         CommitState `json:"state"`
	TargetURL     string      `json:"targetUrl"`
	CredentialsID string      `json:"credentialsId"`
}

// ValidationKind is the outcome of a validation probe.
type ValidationKind string

// ValidationKind values.
const (
	ValidationOK    ValidationKind = "ok"
	ValidationError ValidationKind = "error"
)

// ValidationResult is the rendered outcome of a validation probe.
type ValidationResult struct {
	Kind    ValidationKind `json:"kind"`
	Message string         `json:"message"`
}

// ValidationOk returns a successful ValidationResult.
func ValidationOk(message string) *ValidationResult {
	return &ValidationResult{Kind: ValidationOK, Message: message}
}

// ValidationFailed renders err as a failed ValidationResult.
func ValidationFailed(err error) *ValidationResult {
	return &ValidationResult{Kind: ValidationError, Message: err.Error()}
}

// ListItem is a name/value pair used to populate selection lists.
type ListItem struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// StatusNotifier resolves, validates and delivers commit statuses.
type StatusNotifier interface {
	// Notify publishes the status described by req for the build bc.
	Notify(ctx context.Context, req *NotificationRequest, bc BuildContext) (*NotificationResult, error)
	// TestConnection checks that the credentials authenticate against the API.
	TestConnection(ctx context.Context, credentialsID, apiURL, scope string) *ValidationResult
	// CheckRepo checks that the repository is reachable with the credentials.
	CheckRepo(ctx context.Context, credentialsID, repo, apiURL, scope string) *ValidationResult
	// CheckSHA checks that the commit exists in the repository.
	CheckSHA(ctx context.Context, credentialsID, repo, sha, apiURL, scope string) *ValidationResult
	// StatusItems lists the selectable commit states.
	StatusItems() []ListItem
	// CredentialsItems lists the ids of supported credentials visible in scope.
	CredentialsItems(ctx context.Context, scope string) ([]ListItem, error)
}
