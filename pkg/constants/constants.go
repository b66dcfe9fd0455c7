package constants

const (
	// ServiceName OpenTelemetry service name
	ServiceName = "ghnotify"
	// DefaultVaultMountPath kv v2 mount holding the credentials.
	DefaultVaultMountPath = "secret"
	// DefaultVaultBasePath directory of the credentials inside the mount.
	DefaultVaultBasePath = "ghnotify/credentials"
	// DefaultRepoPageSize number of repositories requested per page.
	DefaultRepoPageSize = 100
	// MaxRepoPageSize page size limit of the hosting API.
	MaxRepoPageSize = 100
	// DefaultShutDownDelay is the delay for graceful shutdown of all queue consumers
	DefaultShutDownDelay = 15e9 // 15 seconds, value is int64 nanoseconds due to issue in viper.
	// DefaultGracefulTimeout is default timeout for graceful shutdown of the app.
	DefaultGracefulTimeout = 5 * 6e10 // 5 minutes
	// RequestIDKey structured logging field carrying the invocation id.
	RequestIDKey = "request_id"
	// AuthorizationHeader http header carrying the bearer token.
	AuthorizationHeader = "Authorization"
)

// Credential store names.
const (
	CredentialStoreVault  = "vault"
	CredentialStoreStatic = "static"
)

// Validation probe messages.
const (
	ProbeSuccess     = "Success"
	ProbeCommitValid = "Commit seems valid"
)

// Env variables
const (
	Dev   = "dev"
	Prod  = "prod"
	Stage = "stage"
)

// CorsAllowedOrigins list of allowed origins
var CorsAllowedOrigins = []string{"http://localhost:3000", "http://localhost:8080"}

// BinaryVersion version of the binary, set at build time through -ldflags.
var BinaryVersion = "dev"
