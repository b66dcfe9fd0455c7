package gitscm

import (
	"net/url"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/core"
	"golang.org/x/net/http/httpproxy"
)

type proxySelector struct {
	proxyFunc func(*url.URL) (*url.URL, error)
}

// NewProxySelector returns a selector honouring the configured proxies, falling
// back to the HTTP_PROXY, HTTPS_PROXY and NO_PROXY environment variables.
func NewProxySelector(cfg config.ProxyConfig) core.ProxySelector {
	pc := httpproxy.FromEnvironment()
	if cfg.HTTPProxy != "" {
		pc.HTTPProxy = cfg.HTTPProxy
	}
	if cfg.HTTPSProxy != "" {
		pc.HTTPSProxy = cfg.HTTPSProxy
	}
	if cfg.NoProxy != "" {
		pc.NoProxy = cfg.NoProxy
	}
	return &proxySelector{proxyFunc: pc.ProxyFunc()}
}

func (p *proxySelector) ProxyFor(endpoint string) (*url.URL, error) {
	u, err := url.Parse(endpoint)
	if err != nil {
		return nil, err
	}
	return p.proxyFunc(u)
}
