package auth

import (
	"testing"
	"time"

	"ridehub/config"
	"ridehub/internal/domain/entity"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSessionSecret = "test_session_secret_key_very_long_for_testing"

func testTokenService(t *testing.T) *jwtService {
	t.Helper()

	cfg := &config.Config{}
	cfg.SecretKey.Session = testSessionSecret

	svc, err := NewJWTService(cfg)
	require.NoError(t, err)

	return svc.(*jwtService)
}

func TestJWTService_IssueAndValidate(t *testing.T) {
	svc := testTokenService(t)

	principalID := uuid.New()

	token, err := svc.Issue(principalID, entity.KindRider)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := svc.Validate(token)
	assert.NoError(t, err)
	require.NotNil(t, claims)
	assert.Equal(t, principalID, claims.PrincipalID)
	assert.Equal(t, entity.KindRider, claims.Kind)
	assert.WithinDuration(t, time.Now().Add(24*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestJWTService_KindSurvivesRoundTrip(t *testing.T) {
	svc := testTokenService(t)

	for _, kind := range []entity.PrincipalKind{entity.KindRider, entity.KindDriver} {
		token, err := svc.Issue(uuid.New(), kind)
		require.NoError(t, err)

		claims, err := svc.Validate(token)
		require.NoError(t, err)
		assert.Equal(t, kind, claims.Kind)
	}
}

func TestJWTService_IssueUnknownKind(t *testing.T) {
	svc := testTokenService(t)

	_, err := svc.Issue(uuid.New(), entity.PrincipalKind("admin"))
	assert.Error(t, err)
}

func TestJWTService_ValidateFailuresAreUniform(t *testing.T) {
	svc := testTokenService(t)

	otherCfg := &config.Config{}
	otherCfg.SecretKey.Session = "a_completely_different_secret_key"
	otherSvc, err := NewJWTService(otherCfg)
	require.NoError(t, err)

	forged, err := otherSvc.Issue(uuid.New(), entity.KindRider)
	require.NoError(t, err)

	valid, err := svc.Issue(uuid.New(), entity.KindRider)
	require.NoError(t, err)

	// Every failure mode collapses to the same sentinel: no oracle for
	// callers probing why a token was rejected.
	cases := map[string]string{
		"not a token":   "clearly-not-a-jwt-token-format",
		"wrong secret":  forged,
		"tampered body": valid + "xx",
		"expired":       signExpiredToken(t, uuid.New(), entity.KindRider),
		"unknown kind":  signTokenWithKind(t, uuid.New(), "admin"),
		"missing sub":   signTokenWithoutSubject(t),
	}

	for name, token := range cases {
		claims, err := svc.Validate(token)
		assert.Nil(t, claims, name)
		assert.True(t, errors.Is(err, ErrInvalidToken), name)
	}
}

func TestJWTService_Digest(t *testing.T) {
	svc := testTokenService(t)

	digest := svc.Digest("some-token")
	assert.Len(t, digest, 64) // hex SHA-256
	assert.Equal(t, digest, svc.Digest("some-token"))
	assert.NotEqual(t, digest, svc.Digest("some-other-token"))
}

func TestJWTService_SessionTTL(t *testing.T) {
	svc := testTokenService(t)

	assert.Equal(t, 24*time.Hour, svc.SessionTTL())
}

func TestJWTService_EmptySecret(t *testing.T) {
	svc, err := NewJWTService(&config.Config{})
	assert.Error(t, err)
	assert.Nil(t, svc)
	assert.Contains(t, err.Error(), "session secret must be provided")
}

func signExpiredToken(t *testing.T, principalID uuid.UUID, kind entity.PrincipalKind) string {
	t.Helper()

	now := time.Now()

	return signTestToken(t, jwt.MapClaims{
		"sub":  principalID.String(),
		"kind": kind.String(),
		"iat":  now.Add(-48 * time.Hour).Unix(),
		"exp":  now.Add(-24 * time.Hour).Unix(),
		"jti":  uuid.New().String(),
	})
}

func signTokenWithKind(t *testing.T, principalID uuid.UUID, kind string) string {
	t.Helper()

	now := time.Now()

	return signTestToken(t, jwt.MapClaims{
		"sub":  principalID.String(),
		"kind": kind,
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
		"jti":  uuid.New().String(),
	})
}

func signTokenWithoutSubject(t *testing.T) string {
	t.Helper()

	now := time.Now()

	return signTestToken(t, jwt.MapClaims{
		"kind": entity.KindRider.String(),
		"iat":  now.Unix(),
		"exp":  now.Add(time.Hour).Unix(),
		"jti":  uuid.New().String(),
	})
}

func signTestToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSessionSecret))
	require.NoError(t, err)

	return signed
}
