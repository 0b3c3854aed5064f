package auth

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v4"
	"go.uber.org/zap"

	"droscher.com/AuthenticEats/configs"
	"droscher.com/AuthenticEats/pkg/model"
	"droscher.com/AuthenticEats/pkg/repository"
)

type UserKey struct{}

var ErrUnauthenticated = errors.New("unauthenticated")

type Manager struct {
	conf   *configs.Config
	repo   *repository.Repository
	logger *zap.Logger
}

func NewAuthManager(conf *configs.Config, repo *repository.Repository, logger *zap.Logger) *Manager {
	return &Manager{conf: conf, repo: repo, logger: logger}
}

// RequireUser authenticates the bearer token, resolves (or creates) the local
// user for the token's subject and stores it in the request context. Requests
// without a valid identity never reach the wrapped handler.
func (a *Manager) RequireUser(next http.Handler) http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		keyFunc := func(token *jwt.Token) (interface{}, error) {
			_, ok := token.Method.(*jwt.SigningMethodHMAC)
			if !ok {
				return nil, jwt.ErrTokenSignatureInvalid
			}

			return []byte(a.conf.Auth.SecretKey), nil
		}

		accessToken, err := a.extractTokenFromHeader(request.Header)
		if err != nil {
			a.writeUnauthenticated(writer, err.Error())

			return
		}

		token, err := jwt.ParseWithClaims(*accessToken, jwt.MapClaims{}, keyFunc)
		if err != nil {
			a.logger.Error("error parsing token", zap.Error(err))
			a.writeUnauthenticated(writer, "error parsing token")

			return
		}

		claims, found := token.Claims.(jwt.MapClaims)
		if !found || !token.Valid {
			a.logger.Error("invalid token", zap.Any("claims", claims))
			a.writeUnauthenticated(writer, "invalid token")

			return
		}

		subject, found := claims["sub"].(string)
		if !found || len(subject) == 0 {
			a.logger.Error("unable to get subject from token", zap.Any("claims", claims))
			a.writeUnauthenticated(writer, "unable to get subject from token")

			return
		}

		name, _ := claims["name"].(string)
		email, _ := claims["email"].(string)

		var picture *string

		if value, ok := claims["picture"].(string); ok && len(value) > 0 {
			picture = &value
		}

		user, err := a.repo.GetOrCreateUser(request.Context(), subject, name, email, picture)
		if err != nil {
			a.logger.Error("error authenticating user", zap.String("subject", subject), zap.Error(err))
			http.Error(writer, "error authenticating user", http.StatusInternalServerError)

			return
		}

		ctx := context.WithValue(request.Context(), UserKey{}, user)

		next.ServeHTTP(writer, request.WithContext(ctx))
	})
}

// UserFromContext returns the authenticated user placed by RequireUser.
func UserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey{}).(*model.User)

	return user, ok
}

func (a *Manager) extractTokenFromHeader(header http.Header) (*string, error) {
	authorization := header.Get("Authorization")
	if len(authorization) == 0 {
		a.logger.Error("No authorization header found")

		return nil, errors.New("authorization header not found")
	}

	prefix := "Bearer "
	if !strings.HasPrefix(authorization, prefix) {
		prefix = "bearer "
	}

	token, found := strings.CutPrefix(authorization, prefix)
	if !found {
		return nil, errors.New("authorization format must be Bearer {token}")
	}

	return &token, nil
}

func (a *Manager) writeUnauthenticated(writer http.ResponseWriter, message string) {
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(http.StatusUnauthorized)

	_ = json.NewEncoder(writer).Encode(map[string]interface{}{
		"success": false,
		"error":   message,
	})
}
