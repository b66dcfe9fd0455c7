package config

import (
	"time"

	"github.com/LambdaTest/ghnotify/pkg/lumber"
)

type (
	// ConfigWrapper is a wrapper for the config
	ConfigWrapper struct {
		Config `json:"data"`
	}

	// Config the application's configuration
	Config struct {
		Port            string
		LogFile         string
		LogConfig       lumber.LoggingConfig
		Env             string
		Verbose         bool
		GitHub          GitHubConfig
		Proxy           ProxyConfig
		Credentials     CredentialsConfig
		Vault           VaultConfig
		BuildContext    BuildContextConfig
		JWT             JWT
		Redis           Redis
		Kafka           KafkaConfig
		Tracing         TracingConfig
		GracefulTimeout time.Duration
		ShutDownDelay   time.Duration
	}

	// GitHubConfig configures the hosting API.
	GitHubConfig struct {
		// APIURL default API endpoint, overridden per request
		APIURL string
		// PageSize number of repositories requested per page
		PageSize int
	}

	// ProxyConfig configures the outbound proxy. Empty values fall back to
	// the HTTP_PROXY, HTTPS_PROXY and NO_PROXY environment variables.
	ProxyConfig struct {
		HTTPProxy  string
		HTTPSProxy string
		NoProxy    string
	}

	// CredentialsConfig selects and configures the credential store.
	CredentialsConfig struct {
		// Store is either "vault" or "static"
		Store string
		// Static credentials keyed by id, used by the static store
		Static []StaticCredential
	}

	// StaticCredential is one credential held in the configuration.
	StaticCredential struct {
		ID          string `json:"id"`
		Kind        string `json:"kind"`
		Description string `json:"description"`
		Username    string `json:"username"`
		Secret      string `json:"secret"`
		Scope       string `json:"scope"`
	}

	// VaultConfig represents the vault server configuration.
	VaultConfig struct {
		// Token directly specify token(optional)
		Token string
		// Address the vault server address
		Address string
		// Namespace the vault Namespace
		Namespace string
		// MountPath the kv v2 mount holding the credentials
		MountPath string
		// BasePath directory of the credentials inside the mount
		BasePath string
	}

	// BuildContextConfig configures how the build context is obtained when none is passed.
	BuildContextConfig struct {
		// File path of a build-context document
		File string
		// CredentialsID scan credentials attached to the detected source
		CredentialsID string
	}

	// JWT represents the JWT configuration.
	JWT struct {
		// PublicKey  RSA Encoded public key
		PublicKey string
	}

	// Redis represents the redis configuration.
	Redis struct {
		// Redis host:port address.
		Addr string
		// Redis username.
		Username string
		// Redis password.
		Password string
		// TLS enabled
		TLS bool
	}

	// KafkaConfig provides the kafka configuration.
	KafkaConfig struct {
		Brokers      string
		NotifyConfig KafkaConsumerConfig
	}

	// KafkaConsumerConfig provides the kafka consumer configuration.
	KafkaConsumerConfig struct {
		Topic         string
		ConsumerGroup string
	}

	// TracingConfig provides opentelemetry configurations
	TracingConfig struct {
		// OtelEndpoint for storing host name for otel collector
		OtelEndpoint string
	}
)
