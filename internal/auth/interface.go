package auth

// TokenVerifier resolves a bearer token to a user id. Verification is
// advisory: no route rejects a request over identity, a failed
// verification simply leaves the request anonymous.
type TokenVerifier interface {
	// Subject validates the token and returns its subject claim.
	Subject(tokenString string) (string, error)

	// Close releases any resources held by the verifier.
	Close() error
}
