package core

import (
	"net/url"

	errs "github.com/LambdaTest/ghnotify/pkg/errors"
	"github.com/drone/go-scm/scm"
)

// DefaultGitHubAPIURL is the public GitHub API endpoint.
const DefaultGitHubAPIURL = "https://api.github.com"

// SCMProvider builds git scm clients.
type SCMProvider interface {
	// GetClient returns a client for the API at apiURL, the public API when empty.
	GetClient(apiURL string) (*SCM, error)
}

// ProxySelector selects the proxy used to reach an endpoint.
type ProxySelector interface {
	// ProxyFor returns the proxy for endpoint, nil for a direct connection.
	ProxyFor(endpoint string) (*url.URL, error)
}

// SCM is wrapper around scm.Client, bound to one identity.
type SCM struct {
	Client *scm.Client
	Name   string
	APIURL string
	Token  *Token
	User   *GitUser
}

// SCMDriver identifies source code management driver.
type SCMDriver string

// SCMDriver values.
const (
	DriverGithub SCMDriver = "github"
)

// VerifyDriver verifies if the SCMDriver is valid.
func (d SCMDriver) VerifyDriver() error {
	if d != DriverGithub {
		return errs.ErrInvalidDriver
	}
	return nil
}

// String returns the driver name.
func (d SCMDriver) String() string {
	return string(d)
}
