package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/jwtauth/v5"

	"github.com/glowpoint/salon-backend-go/internal/domain/auth"
	"github.com/glowpoint/salon-backend-go/internal/handler/http/response"
	authsvc "github.com/glowpoint/salon-backend-go/internal/service/auth"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	RefreshToken(w http.ResponseWriter, r *http.Request)
	Profile(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	authService *authsvc.AuthServiceImpl
}

func NewAuthHandler(authService *authsvc.AuthServiceImpl) AuthHandler {
	return &AuthHandlerImpl{authService: authService}
}

// userIDFromContext pulls the authenticated user id out of the verified JWT.
func userIDFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", auth.ErrInvalidToken
	}
	userID, ok := claims["user_id"].(string)
	if !ok || userID == "" {
		return "", auth.ErrInvalidToken
	}
	return userID, nil
}

// Login implements AuthHandler.
func (h *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var req auth.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := h.authService.Login(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokens)
}

// RefreshToken implements AuthHandler.
func (h *AuthHandlerImpl) RefreshToken(w http.ResponseWriter, r *http.Request) {
	var req auth.RefreshTokenRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	tokens, err := h.authService.Refresh(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, tokens)
}

// Profile implements AuthHandler.
func (h *AuthHandlerImpl) Profile(w http.ResponseWriter, r *http.Request) {
	userID, err := userIDFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	profile, err := h.authService.Profile(r.Context(), userID)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, profile)
}
