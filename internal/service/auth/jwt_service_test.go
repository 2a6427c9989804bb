package auth

import (
	"context"
	"testing"
	"time"

	"github.com/chenna14/Real-time-Data-Classification/internal/config"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestJWTService(t *testing.T, secret string, lifetime time.Duration, now func() time.Time) *hmacJWTService {
	t.Helper()
	svc, err := newHMACJWTService(secret, lifetime, now)
	require.NoError(t, err)
	return svc
}

func fixedClock(at time.Time) func() time.Time {
	return func() time.Time { return at }
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60})
	assert.NoError(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60})
	assert.Error(t, err)

	_, err = NewJWTService(config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 0})
	assert.Error(t, err)
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	userID := uuid.New()
	svc := newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime))

	token, expiresAt, err := svc.GenerateToken(context.Background(), userID)
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.Equal(t, fixedTime.Add(lifetime), expiresAt)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.Equal(t, AccessTokenType, claims.TokenType)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, expiresAt.Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	userID := uuid.New()

	signCustom := func(claims jwtCustomClaims, method jwt.SigningMethod, key any) string {
		token, err := jwt.NewWithClaims(method, claims).SignedString(key)
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name      string
		setupFunc func() (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func() (JWTService, string) {
				svc := newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime))
				token, _, _ := svc.GenerateToken(context.Background(), userID)
				return svc, token
			},
		},
		{
			name: "within clock skew after expiry",
			setupFunc: func() (JWTService, string) {
				gen := newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime))
				token, _, _ := gen.GenerateToken(context.Background(), userID)
				val := newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime.Add(lifetime+time.Minute)))
				return val, token
			},
		},
		{
			name: "expired token",
			setupFunc: func() (JWTService, string) {
				gen := newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime))
				token, _, _ := gen.GenerateToken(context.Background(), userID)
				val := newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime.Add(lifetime+time.Hour)))
				return val, token
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "not yet valid",
			setupFunc: func() (JWTService, string) {
				gen := newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime.Add(time.Hour)))
				token, _, _ := gen.GenerateToken(context.Background(), userID)
				val := newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime))
				return val, token
			},
			wantErr: ErrTokenNotYetValid,
		},
		{
			name: "invalid signature",
			setupFunc: func() (JWTService, string) {
				gen := newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime))
				token, _, _ := gen.GenerateToken(context.Background(), userID)
				val := newTestJWTService(t, "wrong-secret-that-is-long-enough-for-testing", lifetime, fixedClock(fixedTime))
				return val, token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func() (JWTService, string) {
				return newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime)), "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func() (JWTService, string) {
				return newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime)), ""
			},
			wantErr: ErrMissingToken,
		},
		{
			name: "wrong token type",
			setupFunc: func() (JWTService, string) {
				token := signCustom(jwtCustomClaims{
					UserID:    userID,
					TokenType: "refresh",
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
					},
				}, jwt.SigningMethodHS256, []byte(testSecret))
				return newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime)), token
			},
			wantErr: ErrWrongTokenType,
		},
		{
			name: "missing expiry",
			setupFunc: func() (JWTService, string) {
				token := signCustom(jwtCustomClaims{
					UserID:    userID,
					TokenType: AccessTokenType,
				}, jwt.SigningMethodHS256, []byte(testSecret))
				return newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "other hmac algorithm rejected",
			setupFunc: func() (JWTService, string) {
				token := signCustom(jwtCustomClaims{
					UserID:    userID,
					TokenType: AccessTokenType,
					RegisteredClaims: jwt.RegisteredClaims{
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(time.Hour)),
					},
				}, jwt.SigningMethodHS512, []byte(testSecret))
				return newTestJWTService(t, testSecret, lifetime, fixedClock(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, token := tt.setupFunc()
			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, userID, claims.UserID)
		})
	}
}
