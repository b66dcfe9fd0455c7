package gitscm

import (
	"net/url"
	"testing"

	"github.com/LambdaTest/ghnotify/config"
	"github.com/LambdaTest/ghnotify/pkg/core"
	"github.com/LambdaTest/ghnotify/pkg/lumber"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingSelector struct {
	endpoints []string
}

func (r *recordingSelector) ProxyFor(endpoint string) (*url.URL, error) {
	r.endpoints = append(r.endpoints, endpoint)
	return nil, nil
}

func newTestLogger(t *testing.T) lumber.Logger {
	logger, err := lumber.NewLogger(&lumber.LoggingConfig{EnableConsole: true}, true, lumber.InstanceZapLogger)
	require.NoError(t, err)
	return logger
}

func TestGetClient(t *testing.T) {
	tests := []struct {
		name         string
		apiURL       string
		wantEndpoint string
		wantHost     string
	}{
		{"public api", "", core.DefaultGitHubAPIURL, "api.github.com"},
		{"enterprise api", "https://ghe.example.com/api/v3", "https://ghe.example.com/api/v3", "ghe.example.com"},
		{"trailing slash", "https://ghe.example.com/api/v3/", "https://ghe.example.com/api/v3", "ghe.example.com"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			selector := new(recordingSelector)
			provider := New("", selector, newTestLogger(t))

			session, err := provider.GetClient(tt.apiURL)
			require.NoError(t, err)

			assert.Equal(t, []string{tt.wantEndpoint}, selector.endpoints)
			assert.Equal(t, tt.wantEndpoint, session.APIURL)
			assert.Equal(t, tt.wantHost, session.Client.BaseURL.Host)
			assert.Equal(t, core.DriverGithub.String(), session.Name)
		})
	}
}

func TestProxySelector(t *testing.T) {
	selector := NewProxySelector(config.ProxyConfig{
		HTTPSProxy: "http://proxy.internal:3128",
		NoProxy:    "ghe.internal",
	})

	proxy, err := selector.ProxyFor(core.DefaultGitHubAPIURL)
	require.NoError(t, err)
	require.NotNil(t, proxy)
	assert.Equal(t, "proxy.internal:3128", proxy.Host)

	proxy, err = selector.ProxyFor("https://ghe.internal/api/v3")
	require.NoError(t, err)
	assert.Nil(t, proxy)
}
