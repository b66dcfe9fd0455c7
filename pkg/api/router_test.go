package api

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/core"
	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/gin-gonic/gin"
	jsoniter "github.com/json-iterator/go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifier struct {
	req       *core.NotificationRequest
	bc        core.BuildContext
	notifyErr error
	listErr   error
	probeArgs []string
}

func (f *fakeNotifier) Notify(ctx context.Context, req *core.NotificationRequest, bc core.BuildContext) (*core.NotificationResult, error) {
	f.req = req
	f.bc = bc
	if f.notifyErr != nil {
		return nil, f.notifyErr
	}
	return &core.NotificationResult{Repo: req.Repo, SHA: req.SHA, State: req.Status, Context: req.Context}, nil
}

func (f *fakeNotifier) TestConnection(ctx context.Context, credentialsID, apiURL, scope string) *core.ValidationResult {
	f.probeArgs = []string{credentialsID, apiURL, scope}
	return core.ValidationOk("Success")
}

func (f *fakeNotifier) CheckRepo(ctx context.Context, credentialsID, repo, apiURL, scope string) *core.ValidationResult {
	f.probeArgs = []string{credentialsID, repo, apiURL, scope}
	return core.ValidationFailed(errs.ErrRepositoryNotFound)
}

func (f *fakeNotifier) CheckSHA(ctx context.Context, credentialsID, repo, sha, apiURL, scope string) *core.ValidationResult {
	f.probeArgs = []string{credentialsID, repo, sha, apiURL, scope}
	return core.ValidationOk("Commit seems valid")
}

func (f *fakeNotifier) StatusItems() []core.ListItem {
	return []core.ListItem{{Name: "SUCCESS", Value: "SUCCESS"}}
}

func (f *fakeNotifier) CredentialsItems(ctx context.Context, scope string) ([]core.ListItem, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return []core.ListItem{{Name: "- none -"}, {Name: "bot", Value: "gh-bot"}}, nil
}

type rejectingSession struct{}

func (rejectingSession) Authorize(c *gin.Context) (*core.CallerData, error) {
	c.AbortWithStatusJSON(http.StatusForbidden, errs.ErrMissingToken)
	return nil, errs.ErrMissingToken
}

func newRouter(t *testing.T, ctx context.Context, notifier core.StatusNotifier, session core.Session) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true}, true, lumber.InstanceZapLogger)
	require.NoError(t, err)
	r := New(ctx, &config.Config{}, notifier, session, nil, logger)
	return r.Handler()
}

func serve(router *gin.Engine, method, target, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	router.ServeHTTP(w, req)
	return w
}

func TestHealth(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	router := newRouter(t, ctx, &fakeNotifier{}, nil)

	w := serve(router, http.MethodGet, "/health", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
	cancel()
	assert.Equal(t, http.StatusInternalServerError, serve(router, http.MethodGet, "/health", "").Code)
}

func TestNotify(t *testing.T) {
	notifier := &fakeNotifier{}
	router := newRouter(t, context.Background(), notifier, nil)

	body := `{"status": "success", "description": "Build passed", "repo": "acme/app", "sha": "abc123",
		"buildContext": {"job": {"name": "acme/app/main"}, "runUrl": "https://ci.example.com/7/"}}`
	w := serve(router, http.MethodPost, "/notify", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	require.NotNil(t, notifier.req)
	assert.Equal(t, core.StateSuccess, notifier.req.Status)
	assert.Equal(t, core.DefaultStatusContext, notifier.req.Context)
	require.NotNil(t, notifier.bc)
	assert.Equal(t, "https://ci.example.com/7/", notifier.bc.RunURL())

	result := new(core.NotificationResult)
	require.NoError(t, jsoniter.Unmarshal(w.Body.Bytes(), result))
	assert.Equal(t, "acme/app", result.Repo)
	assert.Equal(t, core.StateSuccess, result.State)
}

func TestNotifyWithoutBuildContext(t *testing.T) {
	notifier := &fakeNotifier{}
	router := newRouter(t, context.Background(), notifier, nil)

	w := serve(router, http.MethodPost, "/notify", `{"status": "PENDING", "description": "Running"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Nil(t, notifier.bc)
}

func TestNotifyBadRequests(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"missing description", `{"status": "SUCCESS"}`},
		{"missing status", `{"description": "done"}`},
		{"unknown status", `{"status": "DONE", "description": "done"}`},
		{"malformed body", `{"status": `},
		{"repo without owner", `{"status": "SUCCESS", "description": "done", "repo": "app"}`},
		{"relative target url", `{"status": "SUCCESS", "description": "done", "targetUrl": "builds/7"}`},
		{"malformed build context", `{"status": "SUCCESS", "description": "done", "buildContext": "nope"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notifier := &fakeNotifier{}
			router := newRouter(t, context.Background(), notifier, nil)

			w := serve(router, http.MethodPost, "/notify", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
			assert.Nil(t, notifier.req)
		})
	}
}

func TestNotifyValidationMessage(t *testing.T) {
	router := newRouter(t, context.Background(), &fakeNotifier{}, nil)

	w := serve(router, http.MethodPost, "/notify", `{"status": "SUCCESS"}`)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `[{"field": "description", "reason": "required"}]`, w.Body.String())
}

func TestNotifyFailure(t *testing.T) {
	notifier := &fakeNotifier{notifyErr: errs.WithCause(errs.ErrCommitNotFound, errs.New("422"))}
	router := newRouter(t, context.Background(), notifier, nil)

	w := serve(router, http.MethodPost, "/notify", `{"status": "FAILURE", "description": "Build failed"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.JSONEq(t, `{"message": "The specified commit does not exist in the specified repository"}`, w.Body.String())
}

func TestDescriptorProbes(t *testing.T) {
	notifier := &fakeNotifier{}
	router := newRouter(t, context.Background(), notifier, nil)

	w := serve(router, http.MethodGet, "/descriptor/check-sha?credentialsId=gh-bot&repo=acme/app&sha=abc123&scope=acme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"kind": "ok", "message": "Commit seems valid"}`, w.Body.String())
	assert.Equal(t, []string{"gh-bot", "acme/app", "abc123", "", "acme"}, notifier.probeArgs)

	w = serve(router, http.MethodGet, "/descriptor/check-repo?credentialsId=gh-bot&repo=acme/missing", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"kind": "error", "message": "`+errs.ErrRepositoryNotFound.Error()+`"}`, w.Body.String())

	w = serve(router, http.MethodGet, "/descriptor/test-connection?credentialsId=gh-bot&gitApiUrl=https://ghe.example.com/api/v3", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []string{"gh-bot", "https://ghe.example.com/api/v3", ""}, notifier.probeArgs)
}

func TestDescriptorItems(t *testing.T) {
	notifier := &fakeNotifier{}
	router := newRouter(t, context.Background(), notifier, nil)

	w := serve(router, http.MethodGet, "/descriptor/status-items", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name": "SUCCESS", "value": "SUCCESS"}]`, w.Body.String())

	w = serve(router, http.MethodGet, "/descriptor/credentials-items?scope=acme", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"name": "- none -", "value": ""}, {"name": "bot", "value": "gh-bot"}]`, w.Body.String())

	notifier.listErr = errs.ErrSecretNotFound
	w = serve(router, http.MethodGet, "/descriptor/credentials-items", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestRoutesRequireToken(t *testing.T) {
	notifier := &fakeNotifier{}
	router := newRouter(t, context.Background(), notifier, rejectingSession{})

	assert.Equal(t, http.StatusForbidden, serve(router, http.MethodPost, "/notify", `{"status": "SUCCESS", "description": "ok"}`).Code)
	assert.Equal(t, http.StatusForbidden, serve(router, http.MethodGet, "/descriptor/status-items", "").Code)
	assert.Equal(t, http.StatusOK, serve(router, http.MethodGet, "/health", "").Code)
	assert.Nil(t, notifier.req)
}
