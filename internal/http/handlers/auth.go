package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"odyssweb/internal/errmsg"
	"odyssweb/internal/services"
	"odyssweb/internal/wizard"
)

// Login signs the user in. A circle id stashed before the login redirect
// resumes the interrupted join.
func (h *Handlers) Login(c *gin.Context) {
	var data services.LoginData
	if !BindJSONOrError(c, &data) {
		return
	}

	resp, err := h.auth(c).Login(c.Request.Context(), data)
	if err != nil {
		RespondAuthError(c, err)
		return
	}

	out := gin.H{"user": resp.User}
	if circleID := h.Session.RedirectCircle(); circleID != "" {
		if _, err := h.circles(c).JoinCircle(c.Request.Context(), circleID); err != nil {
			out["join_error"] = errmsg.UserFriendly(err, errmsg.ContextCircleLoading)
		} else {
			out["joined_circle"] = circleID
		}
		_ = h.Session.ClearRedirectCircle()
		out["redirect"] = "/circles/" + circleID
	}
	c.JSON(http.StatusOK, out)
}

func (h *Handlers) Logout(c *gin.Context) {
	if err := h.auth(c).Logout(c.Request.Context()); err != nil {
		RespondServiceError(c, errmsg.ContextLogin, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Logged out."})
}

func (h *Handlers) GoogleLogin(c *gin.Context) {
	var data struct {
		IDToken string `json:"id_token"`
	}
	if !BindJSONOrError(c, &data) {
		return
	}
	resp, err := h.auth(c).GoogleOAuth(c.Request.Context(), data.IDToken)
	if err != nil {
		RespondAuthError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": resp.User})
}

func (h *Handlers) ForgotPassword(c *gin.Context) {
	var data struct {
		Email string `json:"email"`
	}
	if !BindJSONOrError(c, &data) {
		return
	}
	resp, err := h.auth(c).ForgotPassword(c.Request.Context(), data.Email)
	if err != nil {
		RespondServiceError(c, errmsg.ContextVerification, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) ResetPassword(c *gin.Context) {
	var data services.PasswordResetData
	if !BindJSONOrError(c, &data) {
		return
	}
	resp, err := h.auth(c).ResetPassword(c.Request.Context(), data)
	if err != nil {
		RespondServiceError(c, errmsg.ContextVerification, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *Handlers) ChangePassword(c *gin.Context) {
	var data services.ChangePasswordData
	if !BindJSONOrError(c, &data) {
		return
	}
	resp, err := h.auth(c).ChangePassword(c.Request.Context(), data)
	if err != nil {
		RespondServiceError(c, errmsg.ContextVerification, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// signup returns the one in-flight signup wizard, creating it on first
// use. The client is single-session; one wizard instance suffices.
func (h *Handlers) signup() *wizard.SignupWizard {
	if h.signupWizard == nil {
		h.signupWizard = wizard.NewSignupWizard()
	}
	return h.signupWizard
}

func signupState(w *wizard.SignupWizard) gin.H {
	f := w.Form()
	return gin.H{
		"step": w.Step().String(),
		"form": gin.H{
			"access_code":   f.AccessCode,
			"first_name":    f.FirstName,
			"last_name":     f.LastName,
			"date_of_birth": f.DateOfBirth,
			"email":         f.Email,
			"phone_number":  f.PhoneNumber,
			"otp_verified":  f.OTPVerified,
			"profile_pic":   f.ProfilePic,
			"nickname":      f.Nickname,
			"bio":           f.Bio,
			"vibes":         f.Vibes,
		},
	}
}

func (h *Handlers) SignupState(c *gin.Context) {
	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()
	c.JSON(http.StatusOK, signupState(h.signup()))
}

// SignupSelect applies one field update to the signup wizard.
func (h *Handlers) SignupSelect(c *gin.Context) {
	var data struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if !BindJSONOrError(c, &data) {
		return
	}

	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()
	w := h.signup()
	switch data.Field {
	case "access_code":
		w.SetAccessCode(data.Value)
	case "first_name":
		w.SetFirstName(data.Value)
	case "last_name":
		w.SetLastName(data.Value)
	case "date_of_birth":
		w.SetDateOfBirth(data.Value)
	case "email":
		w.SetEmail(data.Value)
	case "phone_number":
		w.SetPhoneNumber(data.Value)
	case "password":
		w.SetPassword(data.Value)
	case "profile_pic":
		w.SetProfilePic(data.Value)
	case "nickname":
		w.SetNickname(data.Value)
	case "bio":
		w.SetBio(data.Value)
	case "vibe":
		w.ToggleVibe(data.Value)
	default:
		RespondError(c, http.StatusBadRequest, "unknown field: "+data.Field, nil)
		return
	}
	c.JSON(http.StatusOK, signupState(w))
}

// SignupNext advances the wizard. Leaving the credentials step sends the
// verification code to the entered email.
func (h *Handlers) SignupNext(c *gin.Context) {
	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()

	w := h.signup()
	wasCredentials := w.Step() == wizard.SignupCredentials
	if err := w.Next(); err != nil {
		RespondServiceError(c, errmsg.ContextSignup, err)
		return
	}
	if wasCredentials {
		if _, err := h.auth(c).RequestOTP(c.Request.Context(), w.Form().Email); err != nil {
			w.Previous()
			RespondServiceError(c, errmsg.ContextVerification, err)
			return
		}
	}
	c.JSON(http.StatusOK, signupState(w))
}

func (h *Handlers) SignupPrevious(c *gin.Context) {
	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()
	w := h.signup()
	w.Previous()
	c.JSON(http.StatusOK, signupState(w))
}

// SignupVerifyOTP checks the emailed code and unlocks the profile step.
func (h *Handlers) SignupVerifyOTP(c *gin.Context) {
	var data struct {
		OTP string `json:"otp"`
	}
	if !BindJSONOrError(c, &data) {
		return
	}

	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()
	w := h.signup()
	resp, err := h.auth(c).VerifyOTP(c.Request.Context(), services.OTPData{Email: w.Form().Email, OTP: data.OTP})
	if err != nil {
		RespondServiceError(c, errmsg.ContextVerification, err)
		return
	}
	w.MarkOTPVerified()
	c.JSON(http.StatusOK, gin.H{"message": resp.Message, "otp_verified": true})
}

// SignupSubmit registers the account from the completed wizard, signs the
// user in, and resets the wizard.
func (h *Handlers) SignupSubmit(c *gin.Context) {
	h.wizardMu.Lock()
	defer h.wizardMu.Unlock()

	w := h.signup()
	data, err := w.RegisterData()
	if err != nil {
		RespondServiceError(c, errmsg.ContextSignup, err)
		return
	}
	resp, err := h.auth(c).Register(c.Request.Context(), data)
	if err != nil {
		RespondAuthError(c, err)
		return
	}
	h.signupWizard = nil
	c.JSON(http.StatusCreated, gin.H{"user": resp.User})
}
