package tokenAuth

import "time"

// Maker creates and verifies access tokens
type Maker interface {
	// CreateToken creates a token for username valid for duration
	CreateToken(username string, duration time.Duration) (string, error)

	// VerifyToken checks the token and returns its payload
	VerifyToken(token string) (*Payload, error)
}
