package ports

// Claims is the caller identity embedded in a signed token.
type Claims struct {
	UserID   string
	Username string
}

// TokenService issues and verifies the bearer tokens used on every protected
// route. Verification is stateless: there is no revocation list, so a token
// stays valid until its expiry.
type TokenService interface {
	Issue(userID, username string) (string, error)
	// Verify returns domain.ErrTokenMissing for an empty token and
	// domain.ErrTokenInvalid for a bad signature, malformed token, or one
	// past its expiry.
	Verify(raw string) (*Claims, error)
}
