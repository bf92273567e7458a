// Package jwt provides signed-claims tokens for the authentication core.
//
// The implementation covers exactly the HS256 (HMAC-SHA256) algorithm. A
// Service is constructed from configuration holding the symmetric signing
// key and the expected issuer and audience; Generate stamps those values
// into every token and Parse refuses tokens that do not match them.
// Temporal claims are validated with zero clock skew.
//
// # Usage
//
//	svc, err := jwt.New(jwt.Config{SigningKey: "super-secret", Issuer: "authkit", Audience: "web"})
//	if err != nil {
//	    // missing key is a deployment error
//	}
//
//	token, err := svc.Generate(jwt.Claims{
//	    Subject:   "alice1",
//	    ID:        uuid.NewString(),
//	    ExpiresAt: time.Now().Add(30 * time.Minute).Unix(),
//	})
//
//	claims, err := svc.Parse(token)
//
// Sentinel errors (ErrExpiredToken, ErrInvalidSignature, ErrInvalidIssuer,
// ErrInvalidAudience) support errors.Is comparisons; the session manager
// collapses all of them into a boolean validity answer.
package jwt
