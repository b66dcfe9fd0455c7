package core

// Vault defines operation for working with vault store
type Vault interface {
	// ReadSecret returns the secret in given path, nil when absent.
	ReadSecret(path string) (map[string]interface{}, error)
	// ListSecrets returns the keys under the given path.
	ListSecrets(path string) ([]string, error)
}
