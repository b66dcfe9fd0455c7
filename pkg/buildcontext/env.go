package buildcontext

import (
	"context"
	"fmt"
	"os"
	"path"
	"strings"

	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	jsoniter "github.com/json-iterator/go"
	giturls "github.com/whilp/git-urls"
)

// CI platforms recognised by the environment loader.
const (
	PlatformJenkins       = "jenkins"
	PlatformGitHubActions = "github"
	PlatformLocal         = "local"
)

const publicGitHubHost = "github.com"

type envLoader struct {
	getenv        func(string) string
	readFile      func(string) ([]byte, error)
	credentialsID string
	logger        lumber.Logger
}

// NewEnvLoader returns a loader detecting the build context from the CI
// environment. credentialsID is attached as the scan credentials of the source.
func NewEnvLoader(credentialsID string, logger lumber.Logger) core.BuildContextLoader {
	return &envLoader{
		getenv:        os.Getenv,
		readFile:      os.ReadFile,
		credentialsID: credentialsID,
		logger:        logger,
	}
}

// DetectPlatform returns the CI platform the process runs on.
func DetectPlatform(getenv func(string) string) string {
	if getenv("GITHUB_ACTIONS") == "true" {
		return PlatformGitHubActions
	}
	if getenv("JENKINS_URL") != "" || getenv("JENKINS_HOME") != "" {
		return PlatformJenkins
	}
	return PlatformLocal
}

func (e *envLoader) Load(ctx context.Context) (core.BuildContext, error) {
	platform := DetectPlatform(e.getenv)
	e.logger.Debugf("detected ci platform %s", platform)
	switch platform {
	case PlatformGitHubActions:
		return e.loadGitHubActions()
	case PlatformJenkins:
		return e.loadJenkins()
	default:
		return New(NewItem(PlatformLocal, nil), nil, ""), nil
	}
}

func (e *envLoader) loadJenkins() (core.BuildContext, error) {
	jobName := e.getenv("JOB_NAME")
	repo, apiURL := "", ""
	if gitURL := e.getenv("GIT_URL"); gitURL != "" {
		var err error
		repo, apiURL, err = parseRemote(gitURL)
		if err != nil {
			e.logger.Warnf("failed to parse GIT_URL %s, error: %v", gitURL, err)
		}
	}

	var revision *core.Revision
	if sha := e.getenv("GIT_COMMIT"); sha != "" {
		if e.getenv("CHANGE_ID") != "" {
			revision = &core.Revision{Kind: core.RevisionPullRequest, PullHash: sha}
		} else {
			revision = &core.Revision{Kind: core.RevisionBranch, Hash: sha}
		}
	}

	job := NewItem(jobName, e.container(path.Dir(jobName), repo, apiURL))
	return New(job, revision, e.getenv("BUILD_URL")), nil
}

func (e *envLoader) loadGitHubActions() (core.BuildContext, error) {
	repo := e.getenv("GITHUB_REPOSITORY")
	serverURL := strings.TrimSuffix(e.getenv("GITHUB_SERVER_URL"), "/")
	apiURL := e.getenv("GITHUB_API_URL")
	if apiURL == core.DefaultGitHubAPIURL {
		apiURL = ""
	}

	revision := &core.Revision{Kind: core.RevisionBranch, Hash: e.getenv("GITHUB_SHA")}
	switch e.getenv("GITHUB_EVENT_NAME") {
	case "pull_request", "pull_request_target":
		revision = &core.Revision{Kind: core.RevisionPullRequest, PullHash: e.pullRequestHead()}
	}

	runURL := ""
	if serverURL != "" && repo != "" && e.getenv("GITHUB_RUN_ID") != "" {
		runURL = fmt.Sprintf("%s/%s/actions/runs/%s", serverURL, repo, e.getenv("GITHUB_RUN_ID"))
	}

	job := NewItem(path.Join(repo, e.getenv("GITHUB_WORKFLOW")), e.container(repo, repo, apiURL))
	return New(job, revision, runURL), nil
}

// pullRequestHead reads the head sha of the pull request from the event payload.
func (e *envLoader) pullRequestHead() string {
	eventPath := e.getenv("GITHUB_EVENT_PATH")
	if eventPath == "" {
		return ""
	}
	data, err := e.readFile(eventPath)
	if err != nil {
		e.logger.Warnf("failed to read event payload %s, error: %v", eventPath, err)
		return ""
	}
	return jsoniter.Get(data, "pull_request", "head", "sha").ToString()
}

func (e *envLoader) container(name, repo, apiURL string) core.Item {
	if repo == "" {
		return NewItem(name, nil)
	}
	return NewSourceOwner(name, nil, []core.SCMSource{{
		Kind:              core.SourceKindGitHub,
		Repository:        repo,
		ScanCredentialsID: e.credentialsID,
		APIURL:            apiURL,
	}})
}

// parseRemote returns the owner/name of a git remote and, for GitHub Enterprise
// hosts, the API endpoint of the host.
func parseRemote(remote string) (repo, apiURL string, err error) {
	u, err := giturls.Parse(remote)
	if err != nil {
		return "", "", err
	}
	repo = strings.TrimSuffix(strings.Trim(u.Path, "/"), ".git")
	if host := u.Hostname(); host != "" && host != publicGitHubHost {
		apiURL = fmt.Sprintf("https://%s/api/v3", host)
	}
	return repo, apiURL, nil
}
