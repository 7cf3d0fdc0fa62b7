package jwtx

// Signer is anything that can turn Claims into a signed token string.
type Signer interface {
	Alg() string
	Sign(Claims) (string, error)
}

// Verifier validates a token string and returns the decoded Claims if the
// signature and expiry check out.
type Verifier interface {
	Verify(token string) (Claims, error)
}
