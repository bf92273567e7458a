package jwt

import (
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"
)

// JWT header constants required by RFC 7519.
const (
	HeaderType      = "JWT"
	HeaderAlgorithm = "HS256" // HMAC-SHA256, symmetric signing per configuration
)

// Header represents the JWT header as defined in RFC 7515.
type Header struct {
	Type      string `json:"typ"`
	Algorithm string `json:"alg"`
}

// Claims represents the registered JWT claims defined in RFC 7519 Section 4.1.
// Temporal claims are Unix timestamps.
type Claims struct {
	ID        string `json:"jti,omitempty"` // unique token identifier
	Subject   string `json:"sub,omitempty"`
	Issuer    string `json:"iss,omitempty"`
	Audience  string `json:"aud,omitempty"`
	ExpiresAt int64  `json:"exp,omitempty"`
	NotBefore int64  `json:"nbf,omitempty"`
	IssuedAt  int64  `json:"iat,omitempty"`
}

// Config carries the signing material and the expected issuer/audience.
type Config struct {
	SigningKey string `env:"JWT_SIGNING_KEY,required"`
	Issuer     string `env:"JWT_ISSUER" envDefault:"authkit"`
	Audience   string `env:"JWT_AUDIENCE" envDefault:"authkit"`
}

// Service signs and verifies JWT tokens using HMAC-SHA256. Verification is
// strict: signature, algorithm, issuer, audience and expiry are all checked
// with zero clock skew.
type Service struct {
	signingKey []byte
	issuer     string
	audience   string
}

// New creates a JWT service from configuration. An absent signing key is a
// deployment error, not a runtime condition.
func New(cfg Config) (*Service, error) {
	if cfg.SigningKey == "" {
		return nil, ErrMissingSigningKey
	}

	return &Service{
		signingKey: []byte(cfg.SigningKey),
		issuer:     cfg.Issuer,
		audience:   cfg.Audience,
	}, nil
}

// Generate signs the given claims. The issuer and audience fields are
// stamped from configuration; the caller supplies subject, id and expiry.
func (s *Service) Generate(claims Claims) (string, error) {
	claims.Issuer = s.issuer
	claims.Audience = s.audience
	if claims.IssuedAt == 0 {
		claims.IssuedAt = time.Now().Unix()
	}

	headerJSON, err := json.Marshal(Header{Type: HeaderType, Algorithm: HeaderAlgorithm})
	if err != nil {
		return "", fmt.Errorf("failed to marshal header: %w", err)
	}

	claimsJSON, err := json.Marshal(claims)
	if err != nil {
		return "", fmt.Errorf("failed to marshal claims: %w", err)
	}

	payload := base64URLEncode(headerJSON) + "." + base64URLEncode(claimsJSON)
	return payload + "." + s.sign(payload), nil
}

// Parse verifies a token and returns its claims. Every deviation —
// malformed structure, foreign algorithm, bad signature, wrong issuer or
// audience, expired or not-yet-valid timestamps — is an error.
func (s *Service) Parse(tokenString string) (Claims, error) {
	var claims Claims

	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return claims, ErrInvalidToken
	}

	// Constant-time signature comparison to prevent timing attacks.
	payload := parts[0] + "." + parts[1]
	expected := s.sign(payload)
	if subtle.ConstantTimeCompare([]byte(parts[2]), []byte(expected)) != 1 {
		return claims, ErrInvalidSignature
	}

	headerJSON, err := base64URLDecode(parts[0])
	if err != nil {
		return claims, errors.Join(ErrInvalidToken, err)
	}

	var header Header
	if err := json.Unmarshal(headerJSON, &header); err != nil {
		return claims, errors.Join(ErrInvalidToken, err)
	}

	// Reject foreign algorithms to prevent algorithm confusion attacks.
	if header.Algorithm != HeaderAlgorithm {
		return claims, ErrUnexpectedSigningMethod
	}

	claimsJSON, err := base64URLDecode(parts[1])
	if err != nil {
		return claims, errors.Join(ErrInvalidToken, err)
	}

	if err := json.Unmarshal(claimsJSON, &claims); err != nil {
		return claims, errors.Join(ErrInvalidToken, err)
	}

	if err := s.validateClaims(claims); err != nil {
		return Claims{}, err
	}

	return claims, nil
}

// validateClaims enforces the registered claims with zero clock skew.
func (s *Service) validateClaims(claims Claims) error {
	now := time.Now().Unix()

	if claims.ExpiresAt > 0 && now > claims.ExpiresAt {
		return ErrExpiredToken
	}
	if claims.NotBefore > 0 && now < claims.NotBefore {
		return ErrInvalidToken
	}
	if s.issuer != "" && claims.Issuer != s.issuer {
		return ErrInvalidIssuer
	}
	if s.audience != "" && claims.Audience != s.audience {
		return ErrInvalidAudience
	}

	return nil
}

// sign creates a base64url-encoded HMAC-SHA256 signature for the payload.
func (s *Service) sign(payload string) string {
	h := hmac.New(sha256.New, s.signingKey)
	h.Write([]byte(payload))
	return base64URLEncode(h.Sum(nil))
}

// base64URLEncode encodes data using base64url encoding without padding,
// as required by RFC 7515.
func base64URLEncode(data []byte) string {
	return base64.RawURLEncoding.EncodeToString(data)
}

func base64URLDecode(s string) ([]byte, error) {
	return base64.RawURLEncoding.DecodeString(s)
}
