// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"crypto/sha256"
	"encoding/hex"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"

	"ridehub/config"
	"ridehub/internal/domain/entity"
	"ridehub/internal/domain/service"
)

// ErrInvalidToken is returned for every validation failure: bad signature,
// expired, malformed, wrong algorithm, missing claims. Collapsing the causes
// keeps the error from acting as an oracle.
var ErrInvalidToken = errors.New("invalid or expired token")

const sessionTTL = 24 * time.Hour

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret []byte        // Process-wide signing secret, read-only after construction.
	ttl    time.Duration // Validity window of issued tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Session == "" {
		return nil, errors.New("session secret must be provided")
	}

	return &jwtService{
		secret: []byte(cfg.SecretKey.Session),
		ttl:    sessionTTL,
	}, nil
}

// Issue creates a signed session token carrying the principal id and kind.
func (s *jwtService) Issue(principalID uuid.UUID, kind entity.PrincipalKind) (string, error) {
	if !kind.IsValid() {
		return "", errors.Errorf("unknown principal kind: %s", kind)
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  principalID.String(),  // Subject (who the token is for)
		"kind": kind.String(),         // Principal kind, part of the trust boundary
		"iat":  now.Unix(),            // Issued At
		"exp":  now.Add(s.ttl).Unix(), // Expiration Time
		"jti":  uuid.New().String(),   // Unique token id
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign session token")
	}

	return signed, nil
}

// Validate checks the signature and expiry of a token string and decodes its
// claims. All failure modes map to ErrInvalidToken.
func (s *jwtService) Validate(tokenString string) (*service.SessionClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.WithStack(ErrInvalidToken)
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.WithStack(ErrInvalidToken)
	}

	return parseSessionClaims(mapClaims)
}

// Digest returns the hex-encoded SHA-256 of a token, the key under which
// revocations are recorded.
func (s *jwtService) Digest(tokenString string) string {
	sum := sha256.Sum256([]byte(tokenString))

	return hex.EncodeToString(sum[:])
}

// SessionTTL returns the validity window of issued tokens.
func (s *jwtService) SessionTTL() time.Duration {
	return s.ttl
}

func parseSessionClaims(mapClaims jwt.MapClaims) (*service.SessionClaims, error) {
	sub, ok := mapClaims["sub"].(string)
	if !ok {
		return nil, errors.WithStack(ErrInvalidToken)
	}
	principalID, err := uuid.Parse(sub)
	if err != nil {
		return nil, errors.WithStack(ErrInvalidToken)
	}

	kindStr, ok := mapClaims["kind"].(string)
	if !ok {
		return nil, errors.WithStack(ErrInvalidToken)
	}
	kind := entity.PrincipalKind(kindStr)
	if !kind.IsValid() {
		return nil, errors.WithStack(ErrInvalidToken)
	}

	claims := &service.SessionClaims{
		PrincipalID: principalID,
		Kind:        kind,
	}
	if iat, ok := mapClaims["iat"].(float64); ok {
		claims.IssuedAt = time.Unix(int64(iat), 0)
	}
	if exp, ok := mapClaims["exp"].(float64); ok {
		claims.ExpiresAt = time.Unix(int64(exp), 0)
	}

	return claims, nil
}
