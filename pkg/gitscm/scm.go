package gitscm

import (
	"net/http"
	"strings"

	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/drone/go-scm/scm"
	"github.com/drone/go-scm/scm/driver/github"
	"github.com/drone/go-scm/scm/transport/oauth2"
	"github.com/hashicorp/go-cleanhttp"
)

// gitClientProvider provides the git scm client
type gitClientProvider struct {
	logger        lumber.Logger
	proxySelector core.ProxySelector
	defaultAPIURL string
}

// New initializes GitClientProvider. Clients are built per call and never shared.
func New(defaultAPIURL string, proxySelector core.ProxySelector, logger lumber.Logger) core.SCMProvider {
	if defaultAPIURL == "" {
		defaultAPIURL = core.DefaultGitHubAPIURL
	}
	return &gitClientProvider{
		logger:        logger,
		proxySelector: proxySelector,
		defaultAPIURL: defaultAPIURL,
	}
}

func (g *gitClientProvider) GetClient(apiURL string) (*core.SCM, error) {
	endpoint := strings.TrimSuffix(apiURL, "/")
	if endpoint == "" {
		endpoint = strings.TrimSuffix(g.defaultAPIURL, "/")
	}

	proxyURL, err := g.proxySelector.ProxyFor(endpoint)
	if err != nil {
		g.logger.Errorf("failed to resolve proxy for endpoint %s, error: %v", endpoint, err)
		return nil, err
	}

	client, err := provideGithubClient(endpoint)
	if err != nil {
		g.logger.Errorf("failed to create github client for endpoint %s, error: %v", endpoint, err)
		return nil, err
	}
	base := cleanhttp.DefaultPooledTransport()
	base.Proxy = http.ProxyURL(proxyURL)
	client.Client = &http.Client{
		Transport: &oauth2.Transport{
			Source: oauth2.ContextTokenSource(),
			Base:   base,
		},
	}
	return &core.SCM{Client: client, Name: core.DriverGithub.String(), APIURL: endpoint}, nil
}

func provideGithubClient(endpoint string) (*scm.Client, error) {
	if endpoint == core.DefaultGitHubAPIURL {
		return github.NewDefault(), nil
	}
	return github.New(endpoint)
}
