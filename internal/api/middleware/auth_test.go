package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

const testSecret = "test-secret"

func signToken(t *testing.T, method jwt.SigningMethod, key interface{}, claims AdminClaims) string {
	t.Helper()
	token, err := jwt.NewWithClaims(method, claims).SignedString(key)
	require.NoError(t, err)
	return token
}

func validClaims(role string) AdminClaims {
	return AdminClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "owner@studio.test",
			Issuer:    "studio-idp",
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	}
}

func TestAdminAuth(t *testing.T) {
	cfg := AuthConfig{Secret: testSecret, Role: "admin", Issuer: "studio-idp"}

	var gotSubject string
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSubject, _ = GetSubject(r.Context())
		w.WriteHeader(http.StatusOK)
	})
	h := AdminAuth(cfg, nopLogger{})(next)

	expired := validClaims("admin")
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	otherIssuer := validClaims("admin")
	otherIssuer.Issuer = "someone-else"

	noExpiry := validClaims("admin")
	noExpiry.ExpiresAt = nil

	tests := []struct {
		name       string
		header     string
		wantStatus int
	}{
		{
			name:       "valid admin token",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("admin")),
			wantStatus: http.StatusOK,
		},
		{
			name:       "missing header",
			header:     "",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong scheme",
			header:     "Basic abc",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "wrong secret",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte("other"), validClaims("admin")),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "expired",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), expired),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "no expiry",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), noExpiry),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "other issuer",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), otherIssuer),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "unsigned token",
			header:     "Bearer " + signToken(t, jwt.SigningMethodNone, jwt.UnsafeAllowNoneSignatureType, validClaims("admin")),
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "customer role",
			header:     "Bearer " + signToken(t, jwt.SigningMethodHS256, []byte(testSecret), validClaims("customer")),
			wantStatus: http.StatusForbidden,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gotSubject = ""
			req := httptest.NewRequest(http.MethodGet, "/api/v1/admin/reservations", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			h.ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantStatus == http.StatusOK {
				assert.Equal(t, "owner@studio.test", gotSubject)
			} else {
				assert.Empty(t, gotSubject)
			}
		})
	}
}
