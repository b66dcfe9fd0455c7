package errors

var (
	// ErrInvalidPubKey indicates the the given public key is invalid
	ErrInvalidPubKey = New("Public key invalid")

	// ErrInvalidAuthHeader indicates invalid Authorization header
	ErrInvalidAuthHeader = New("Authorization header invalid")

	// ErrMissingToken indicates the jwt token is not present
	ErrMissingToken = New("Missing Access Token")

	// ErrInvalidSigningAlgorithm indicates signing algorithm is invalid, needs to be RS256
	ErrInvalidSigningAlgorithm = New("Invalid signing algorithm")

	// ErrInvalidJWTToken indicates JWT token is invalid.
	ErrInvalidJWTToken = New("Invalid token")

	// ErrExpiredToken indicates JWT token has expired.
	ErrExpiredToken = New("Token has expired")

	// ErrMissingJTI indicates jti claim missing in JWT token.
	ErrMissingJTI = New("Missing jti in Token")
)
