package auth

import "time"

// NewTestJWTService creates a JWT service with an injectable time function.
// Intended for tests that need deterministic issue and expiry times.
func NewTestJWTService(
	secret string,
	tokenLifetime time.Duration,
	timeFunc func() time.Time,
) JWTService {
	if timeFunc == nil {
		timeFunc = time.Now
	}
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: tokenLifetime,
		timeFunc:      timeFunc,
		clockSkew:     0, // No skew so expiry boundaries are exact in tests
	}
}
