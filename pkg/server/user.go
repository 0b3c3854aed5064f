package server

import (
	"fmt"
	"net/http"

	"go.uber.org/zap"

	"droscher.com/AuthenticEats/pkg/auth"
)

type UserServer struct {
	logger *zap.Logger
}

func NewUserServer(logger *zap.Logger) *UserServer {
	return &UserServer{logger: logger}
}

func (u *UserServer) Register(mux *http.ServeMux, authManager *auth.Manager) {
	mux.Handle("GET /api/me", authManager.RequireUser(http.HandlerFunc(u.handleProfile)))
}

// handleProfile returns the authenticated caller's profile. The record is
// created on first request by the auth middleware, so there is no not-found
// case here.
func (u *UserServer) handleProfile(writer http.ResponseWriter, request *http.Request) {
	user, ok := auth.UserFromContext(request.Context())
	if !ok {
		writeError(u.logger, writer, fmt.Errorf("%w: no authenticated user", ErrInvalidInput))

		return
	}

	expertise := make([]string, 0, len(user.CuisineExpertise))
	for _, cuisine := range user.CuisineExpertise {
		expertise = append(expertise, cuisine.Name)
	}

	writeData(writer, http.StatusOK, Author{
		ID:               user.UUID.String(),
		Name:             user.Name,
		Picture:          user.Picture,
		CuisineExpertise: expertise,
	})
}
