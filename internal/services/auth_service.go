package services

import (
	"context"
	"strings"

	"odyssweb/internal/apiclient"
	"odyssweb/internal/domain"
	"odyssweb/internal/session"
	"odyssweb/internal/utils"
)

// AuthService handles sign-in, sign-up and the OTP/password flows. It is
// the only service that writes the session store.
type AuthService struct {
	API       *apiclient.Client
	Session   *session.Store
	RequestID string
}

type LoginData struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type RegisterData struct {
	FirstName   string   `json:"first_name"`
	LastName    string   `json:"last_name"`
	Nickname    string   `json:"nickname"`
	Email       string   `json:"email"`
	Password    string   `json:"password"`
	Bio         string   `json:"bio,omitempty"`
	PhoneNumber string   `json:"phone_number,omitempty"`
	ProfilePic  string   `json:"profile_pic,omitempty"`
	IntroVideo  string   `json:"intro_video,omitempty"`
	DateOfBirth string   `json:"date_of_birth,omitempty"`
	Vibes       []string `json:"vibes,omitempty"`
	AccessCode  string   `json:"access_code"`
}

type OTPData struct {
	Email string `json:"email"`
	OTP   string `json:"otp"`
}

type PasswordResetData struct {
	Email       string `json:"email"`
	NewPassword string `json:"new_password"`
	Token       string `json:"token,omitempty"`
}

type ChangePasswordData struct {
	OldPassword string `json:"old_password"`
	NewPassword string `json:"new_password"`
}

type TokenPair struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
}

type AuthResponse struct {
	Tokens TokenPair          `json:"tokens"`
	User   domain.UserProfile `json:"user"`
}

type MessageResponse struct {
	Message string `json:"message"`
}

// Login signs the user in and persists the session on success.
func (s AuthService) Login(ctx context.Context, data LoginData) (AuthResponse, error) {
	data.Email = utils.TrimOrEmpty(data.Email)
	if data.Email == "" {
		return AuthResponse{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	if data.Password == "" {
		return AuthResponse{}, domain.ValidationError{Field: "password", Msg: "password is required"}
	}

	var resp AuthResponse
	if err := s.API.PostPublic(ctx, "/auth/login", data, &resp); err != nil {
		return AuthResponse{}, err
	}
	if err := s.persistSession(resp); err != nil {
		return AuthResponse{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "login", "user_id="+resp.User.ID)
	return resp, nil
}

// Register creates an account and signs the user in.
func (s AuthService) Register(ctx context.Context, data RegisterData) (AuthResponse, error) {
	data.Email = utils.TrimOrEmpty(data.Email)
	data.FirstName = utils.TrimOrEmpty(data.FirstName)
	data.LastName = utils.TrimOrEmpty(data.LastName)
	data.Nickname = utils.TrimOrEmpty(data.Nickname)

	switch {
	case data.Email == "":
		return AuthResponse{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	case data.Password == "":
		return AuthResponse{}, domain.ValidationError{Field: "password", Msg: "password is required"}
	case data.FirstName == "" || data.LastName == "":
		return AuthResponse{}, domain.ValidationError{Field: "name", Msg: "first and last name are required"}
	case utils.TrimOrEmpty(data.AccessCode) == "":
		return AuthResponse{}, domain.ValidationError{Field: "access_code", Msg: "access code is required"}
	}

	var resp AuthResponse
	if err := s.API.PostPublic(ctx, "/auth/register", data, &resp); err != nil {
		return AuthResponse{}, err
	}
	if err := s.persistSession(resp); err != nil {
		return AuthResponse{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "register", "user_id="+resp.User.ID)
	return resp, nil
}

// Logout revokes the refresh token server-side and always clears the local
// session, even when revocation fails.
func (s AuthService) Logout(ctx context.Context) error {
	_, refresh := s.Session.Tokens()
	if refresh != "" {
		body := map[string]string{"refresh_token": refresh}
		if err := s.API.Post(ctx, "/auth/logout", body, nil); err != nil {
			utils.LogEvent(s.RequestID, "auth", "logout_revoke_failed", err.Error())
		}
	}
	utils.LogEvent(s.RequestID, "auth", "logout", "")
	return s.Session.Clear()
}

func (s AuthService) RequestOTP(ctx context.Context, email string) (MessageResponse, error) {
	email = utils.TrimOrEmpty(email)
	if email == "" {
		return MessageResponse{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	var resp MessageResponse
	err := s.API.PostPublic(ctx, "/auth/request-otp", map[string]string{"email": email}, &resp)
	return resp, err
}

func (s AuthService) VerifyOTP(ctx context.Context, data OTPData) (MessageResponse, error) {
	data.Email = utils.TrimOrEmpty(data.Email)
	data.OTP = utils.TrimOrEmpty(data.OTP)
	if data.Email == "" || data.OTP == "" {
		return MessageResponse{}, domain.ValidationError{Field: "otp", Msg: "email and code are required"}
	}
	var resp MessageResponse
	err := s.API.PostPublic(ctx, "/auth/verify-otp", data, &resp)
	return resp, err
}

func (s AuthService) ForgotPassword(ctx context.Context, email string) (MessageResponse, error) {
	email = utils.TrimOrEmpty(email)
	if email == "" {
		return MessageResponse{}, domain.ValidationError{Field: "email", Msg: "email is required"}
	}
	var resp MessageResponse
	err := s.API.PostPublic(ctx, "/auth/forgot-password", map[string]string{"email": email}, &resp)
	return resp, err
}

func (s AuthService) ResetPassword(ctx context.Context, data PasswordResetData) (MessageResponse, error) {
	if data.NewPassword == "" {
		return MessageResponse{}, domain.ValidationError{Field: "new_password", Msg: "new password is required"}
	}
	var resp MessageResponse
	err := s.API.PostPublic(ctx, "/auth/reset-password", data, &resp)
	return resp, err
}

func (s AuthService) ChangePassword(ctx context.Context, data ChangePasswordData) (MessageResponse, error) {
	if data.OldPassword == "" || data.NewPassword == "" {
		return MessageResponse{}, domain.ValidationError{Field: "password", Msg: "old and new password are required"}
	}
	var resp MessageResponse
	err := s.API.Post(ctx, "/auth/change-password", data, &resp)
	return resp, err
}

// GoogleOAuth exchanges a Google id token for an Odyss session.
func (s AuthService) GoogleOAuth(ctx context.Context, idToken string) (AuthResponse, error) {
	idToken = strings.TrimSpace(idToken)
	if idToken == "" {
		return AuthResponse{}, domain.ValidationError{Field: "id_token", Msg: "id token is required"}
	}
	var resp AuthResponse
	if err := s.API.PostPublic(ctx, "/auth/oauth/google", map[string]string{"id_token": idToken}, &resp); err != nil {
		return AuthResponse{}, err
	}
	if err := s.persistSession(resp); err != nil {
		return AuthResponse{}, err
	}
	utils.LogEvent(s.RequestID, "auth", "oauth_google", "user_id="+resp.User.ID)
	return resp, nil
}

func (s AuthService) persistSession(resp AuthResponse) error {
	user := resp.User
	return s.Session.SetSession(&user, resp.Tokens.AccessToken, resp.Tokens.RefreshToken)
}
