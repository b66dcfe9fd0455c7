package buildcontext

import (
	"context"
	"errors"
	"testing"

	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func envFunc(env map[string]string) func(string) string {
	return func(key string) string {
		return env[key]
	}
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
		want string
	}{
		{"github actions", map[string]string{"GITHUB_ACTIONS": "true"}, PlatformGitHubActions},
		{"jenkins url", map[string]string{"JENKINS_URL": "https://ci.example.com/"}, PlatformJenkins},
		{"jenkins home", map[string]string{"JENKINS_HOME": "/var/jenkins_home"}, PlatformJenkins},
		{"local", map[string]string{}, PlatformLocal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DetectPlatform(envFunc(tt.env)); got != tt.want {
				t.Errorf("Expected %s, got %s", tt.want, got)
			}
		})
	}
}

func TestParseRemote(t *testing.T) {
	tests := []struct {
		name       string
		remote     string
		wantRepo   string
		wantAPIURL string
	}{
		{"https", "https://github.com/octo/hello.git", "octo/hello", ""},
		{"scp like", "git@github.com:octo/hello.git", "octo/hello", ""},
		{"ssh", "ssh://git@github.com/octo/hello", "octo/hello", ""},
		{"enterprise", "https://ghe.example.com/octo/hello.git", "octo/hello", "https://ghe.example.com/api/v3"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo, apiURL, err := parseRemote(tt.remote)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRepo, repo)
			assert.Equal(t, tt.wantAPIURL, apiURL)
		})
	}
}

func TestEnvLoaderJenkins(t *testing.T) {
	tests := []struct {
		name         string
		env          map[string]string
		wantRevision *core.Revision
	}{
		{
			name: "branch build",
			env: map[string]string{
				"JENKINS_URL": "https://ci.example.com/", "JOB_NAME": "org/hello/main",
				"GIT_URL": "https://github.com/octo/hello.git", "GIT_COMMIT": "abc123",
				"BUILD_URL": "https://ci.example.com/job/hello/3/",
			},
			wantRevision: &core.Revision{Kind: core.RevisionBranch, Hash: "abc123"},
		},
		{
			name: "pull request build",
			env: map[string]string{
				"JENKINS_URL": "https://ci.example.com/", "JOB_NAME": "org/hello/PR-4",
				"GIT_URL": "https://github.com/octo/hello.git", "GIT_COMMIT": "def456", "CHANGE_ID": "4",
				"BUILD_URL": "https://ci.example.com/job/hello/3/",
			},
			wantRevision: &core.Revision{Kind: core.RevisionPullRequest, PullHash: "def456"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			loader := &envLoader{getenv: envFunc(tt.env), credentialsID: "gh-scan", logger: newTestLogger(t)}
			bc, err := loader.Load(context.Background())
			require.NoError(t, err)

			assert.Equal(t, tt.env["JOB_NAME"], bc.Job().Name())
			owner, ok := bc.Job().Parent().(core.SourceOwner)
			require.True(t, ok)
			assert.Equal(t, "org/hello", owner.Name())
			assert.Equal(t, []core.SCMSource{{Kind: core.SourceKindGitHub, Repository: "octo/hello", ScanCredentialsID: "gh-scan"}}, owner.Sources())
			assert.Equal(t, tt.wantRevision, bc.Revision())
			assert.Equal(t, "https://ci.example.com/job/hello/3/", bc.RunURL())
		})
	}
}

func TestEnvLoaderJenkinsWithoutRemote(t *testing.T) {
	loader := &envLoader{getenv: envFunc(map[string]string{"JENKINS_HOME": "/var/jenkins", "JOB_NAME": "freestyle"}), logger: newTestLogger(t)}
	bc, err := loader.Load(context.Background())
	require.NoError(t, err)

	_, ok := bc.Job().Parent().(core.SourceOwner)
	assert.False(t, ok)
	assert.Nil(t, bc.Revision())
}

func TestEnvLoaderGitHubActions(t *testing.T) {
	base := map[string]string{
		"GITHUB_ACTIONS": "true", "GITHUB_REPOSITORY": "octo/hello", "GITHUB_WORKFLOW": "ci",
		"GITHUB_SERVER_URL": "https://github.com", "GITHUB_API_URL": "https://api.github.com",
		"GITHUB_RUN_ID": "99", "GITHUB_SHA": "merge123", "GITHUB_EVENT_PATH": "/tmp/event.json",
	}
	tests := []struct {
		name         string
		event        string
		payload      string
		readErr      error
		wantRevision *core.Revision
	}{
		{"push", "push", "", nil, &core.Revision{Kind: core.RevisionBranch, Hash: "merge123"}},
		{"pull request", "pull_request", `{"pull_request": {"head": {"sha": "head456"}}}`, nil,
			&core.Revision{Kind: core.RevisionPullRequest, PullHash: "head456"}},
		{"unreadable payload", "pull_request", "", errors.New("no such file"),
			&core.Revision{Kind: core.RevisionPullRequest}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env := map[string]string{"GITHUB_EVENT_NAME": tt.event}
			for k, v := range base {
				env[k] = v
			}
			loader := &envLoader{
				getenv: envFunc(env),
				readFile: func(string) ([]byte, error) {
					return []byte(tt.payload), tt.readErr
				},
				credentialsID: "gh-scan",
				logger:        newTestLogger(t),
			}
			bc, err := loader.Load(context.Background())
			require.NoError(t, err)

			assert.Equal(t, "octo/hello/ci", bc.Job().Name())
			owner, ok := bc.Job().Parent().(core.SourceOwner)
			require.True(t, ok)
			assert.Equal(t, "octo/hello", owner.Sources()[0].Repository)
			assert.Equal(t, "", owner.Sources()[0].APIURL)
			assert.Equal(t, tt.wantRevision, bc.Revision())
			assert.Equal(t, "https://github.com/octo/hello/actions/runs/99", bc.RunURL())
		})
	}
}

func TestEnvLoaderLocal(t *testing.T) {
	loader := &envLoader{getenv: envFunc(map[string]string{}), logger: newTestLogger(t)}
	bc, err := loader.Load(context.Background())
	require.NoError(t, err)
	assert.Equal(t, PlatformLocal, bc.Job().Name())
	assert.Nil(t, bc.Job().Parent())
	assert.Nil(t, bc.Revision())
	assert.Equal(t, "", bc.RunURL())
}
