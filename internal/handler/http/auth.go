package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

type AuthHandler interface {
	Login(w http.ResponseWriter, r *http.Request)
	Logout(w http.ResponseWriter, r *http.Request)
	Session(w http.ResponseWriter, r *http.Request)
}

type AuthHandlerImpl struct {
	jwtService jwt.Service
	sessions   auth.SessionService
	loginDelay time.Duration
}

// Login implements AuthHandler.
func (a *AuthHandlerImpl) Login(w http.ResponseWriter, r *http.Request) {
	var loginReq auth.LoginRequest

	// 1. Decode JSON
	if err := json.NewDecoder(r.Body).Decode(&loginReq); err != nil {
		slog.Error("Login decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	// Validate DTO
	if err := loginReq.Validate(); err != nil {
		slog.Error("Login validate error", "error", err)
		response.HandleError(w, err)
		return
	}

	// Simulated round trip, applied to every attempt
	time.Sleep(a.loginDelay)

	if a.sessions.IsLoading() {
		response.HandleError(w, auth.ErrSessionLoading)
		return
	}

	if !a.sessions.Login(r.Context(), loginReq.Username, loginReq.Password) {
		slog.Warn("Login rejected", "username", loginReq.Username)
		response.HandleError(w, auth.ErrInvalidCredentials)
		return
	}

	user, _ := a.sessions.User()
	token, expiresAt, err := a.jwtService.GenerateAccessToken(user.Username)
	if err != nil {
		slog.Error("Login token error", "error", err)
		response.HandleError(w, err)
		return
	}

	slog.Info("User logged in successfully", "username", user.Username)
	response.Created(w, "User logged in successfully", auth.TokenResponse{
		AccessToken:          token,
		AccessTokenExpiresIn: expiresAt,
		User:                 user,
	})
}

// Logout implements AuthHandler.
func (a *AuthHandlerImpl) Logout(w http.ResponseWriter, r *http.Request) {
	token, _, err := jwtauth.FromContext(r.Context())
	if err != nil || token == nil {
		response.HandleError(w, auth.ErrInvalidToken)
		return
	}

	a.jwtService.RevokeToken(token.JwtID(), token.Expiration())
	a.sessions.Logout(r.Context())

	slog.Info("User logged out successfully")
	response.SuccessWithMessage(w, "User logged out successfully", nil)
}

// Session implements AuthHandler.
func (a *AuthHandlerImpl) Session(w http.ResponseWriter, r *http.Request) {
	resp := auth.SessionResponse{State: a.sessions.State()}
	if user, ok := a.sessions.User(); ok {
		resp.User = &user
	}
	response.Success(w, resp)
}

func NewAuthHandler(jwtService jwt.Service, sessions auth.SessionService, loginDelay time.Duration) AuthHandler {
	return &AuthHandlerImpl{
		jwtService: jwtService,
		sessions:   sessions,
		loginDelay: loginDelay,
	}
}
