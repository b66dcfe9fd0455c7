package errors

// ErrSecretNotFound is returned when a vault secret is not found in path.
var ErrSecretNotFound = New("Secrets not found")

// ErrVaultConfig is returned when the vault address is missing.
var ErrVaultConfig = New("missing vault address")
