package middleware

import (
	"net/http"

	"github.com/cmlabs-hris/employee-dashboard-go/internal/domain/auth"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/handler/http/response"
	"github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/jwt"
	"github.com/go-chi/jwtauth/v5"
)

// AuthRequired admits requests that carry a verified, unrevoked access token
// for the user the session store currently has signed in. It must run after
// jwtauth.Verifier.
func AuthRequired(jwtService jwt.Service, sessions auth.SessionService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		hfn := func(w http.ResponseWriter, r *http.Request) {
			token, claims, err := jwtauth.FromContext(r.Context())

			if err != nil || token == nil {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			tokenType, ok := claims[jwt.ClaimType].(string)
			if !ok || tokenType != jwt.TokenTypeAccess {
				response.HandleError(w, auth.ErrInvalidToken)
				return
			}

			if jwtService.IsTokenRevoked(token.JwtID()) {
				response.HandleError(w, auth.ErrTokenRevoked)
				return
			}

			// Tokens outlive the session they were issued for once it is logged out.
			user, ok := sessions.User()
			username, _ := claims[jwt.ClaimUsername].(string)
			if sessions.State() != auth.SessionAuthenticated || !ok || user.Username != username {
				response.HandleError(w, auth.ErrNotAuthenticated)
				return
			}

			next.ServeHTTP(w, r)
		}
		return http.HandlerFunc(hfn)
	}
}
