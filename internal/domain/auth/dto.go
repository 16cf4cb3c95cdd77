package auth

import "github.com/cmlabs-hris/employee-dashboard-go/internal/pkg/validator"

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (r *LoginRequest) Validate() error {
	var errs validator.ValidationErrors

	if validator.IsEmpty(r.Username) {
		errs.Add("username", "username is required")
	}
	if r.Password == "" {
		errs.Add("password", "password is required")
	}

	return errs.Err()
}

type TokenResponse struct {
	AccessToken          string   `json:"access_token"`
	AccessTokenExpiresIn int64    `json:"access_token_expires_in"`
	User                 Identity `json:"user"`
}

type SessionResponse struct {
	State SessionState `json:"state"`
	User  *Identity    `json:"user"`
}
