package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-StudioBooking/internal/api/handlers"
)

type contextKey string

const subjectKey contextKey = "subject"

const (
	msgMissingToken = "требуется токен администратора"
	msgInvalidToken = "недействительный токен"
	msgForbidden    = "доступ запрещен"
)

// AdminClaims claims токена внешнего провайдера идентификации
type AdminClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// AuthConfig параметры проверки токена
type AuthConfig struct {
	Secret string
	Role   string
	Issuer string // Пусто - issuer не проверяется
}

// AdminAuth пропускает только запросы с валидным HMAC токеном и ролью администратора
// Токены выпускает внешний провайдер, сервис их только проверяет
func AdminAuth(cfg AuthConfig, log Logger) mux.MiddlewareFunc {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg(), jwt.SigningMethodHS384.Alg(), jwt.SigningMethodHS512.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if cfg.Issuer != "" {
		opts = append(opts, jwt.WithIssuer(cfg.Issuer))
	}
	parser := jwt.NewParser(opts...)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			tokenString, err := bearerToken(r)
			if err != nil {
				log.Warn("%s %s - %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgMissingToken)
				return
			}

			var claims AdminClaims
			_, err = parser.ParseWithClaims(tokenString, &claims, func(*jwt.Token) (interface{}, error) {
				return []byte(cfg.Secret), nil
			})
			if err != nil {
				log.Warn("%s %s - invalid token: %v", r.Method, r.URL.Path, err)
				handlers.RespondUnauthorized(w, msgInvalidToken)
				return
			}

			if claims.Role != cfg.Role {
				log.Warn("%s %s - role %q is not allowed, subject=%s", r.Method, r.URL.Path, claims.Role, claims.Subject)
				handlers.RespondForbidden(w, msgForbidden)
				return
			}

			ctx := context.WithValue(r.Context(), subjectKey, claims.Subject)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// GetSubject возвращает subject администратора из контекста
func GetSubject(ctx context.Context) (string, bool) {
	subject, ok := ctx.Value(subjectKey).(string)
	return subject, ok
}

func bearerToken(r *http.Request) (string, error) {
	header := r.Header.Get("Authorization")
	if header == "" {
		return "", errors.New("missing authorization header")
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.New("invalid authorization header")
	}

	return strings.TrimSpace(parts[1]), nil
}
