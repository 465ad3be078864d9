package wizard

import (
	"strings"

	"odyssweb/internal/domain"
	"odyssweb/internal/services"
	"odyssweb/internal/utils"
)

// SignupStep names the signup wizard's states.
type SignupStep int

const (
	SignupAccessCode SignupStep = iota
	SignupName
	SignupCredentials
	SignupVerifyEmail
	SignupProfile
	SignupVibes
)

func (s SignupStep) String() string {
	switch s {
	case SignupAccessCode:
		return "access_code"
	case SignupName:
		return "name"
	case SignupCredentials:
		return "credentials"
	case SignupVerifyEmail:
		return "verify_email"
	case SignupProfile:
		return "profile"
	case SignupVibes:
		return "vibes"
	default:
		return "unknown"
	}
}

// SignupForm aggregates all six steps' input.
type SignupForm struct {
	AccessCode  string
	FirstName   string
	LastName    string
	DateOfBirth string // YYYY-MM-DD
	Email       string
	PhoneNumber string
	Password    string
	OTP         string
	OTPVerified bool
	ProfilePic  string
	Nickname    string
	Bio         string
	Vibes       []string
}

// SignupWizard walks access code, personal details, credentials, email
// verification, profile and vibes before registration.
type SignupWizard struct {
	step SignupStep
	form SignupForm
}

func NewSignupWizard() *SignupWizard {
	return &SignupWizard{step: SignupAccessCode}
}

func (w *SignupWizard) Step() SignupStep { return w.step }
func (w *SignupWizard) Form() SignupForm { return w.form }

func (w *SignupWizard) SetAccessCode(code string) { w.form.AccessCode = utils.TrimOrEmpty(code) }

func (w *SignupWizard) SetFirstName(v string) { w.form.FirstName = utils.TrimOrEmpty(v) }

func (w *SignupWizard) SetLastName(v string) { w.form.LastName = utils.TrimOrEmpty(v) }

func (w *SignupWizard) SetDateOfBirth(v string) { w.form.DateOfBirth = utils.TrimOrEmpty(v) }

func (w *SignupWizard) SetPhoneNumber(v string) { w.form.PhoneNumber = utils.TrimOrEmpty(v) }

func (w *SignupWizard) SetPassword(v string) { w.form.Password = v }

func (w *SignupWizard) SetProfilePic(url string) { w.form.ProfilePic = utils.TrimOrEmpty(url) }

func (w *SignupWizard) SetNickname(v string) { w.form.Nickname = utils.TrimOrEmpty(v) }

func (w *SignupWizard) SetBio(v string) { w.form.Bio = utils.TrimOrEmpty(v) }

// SetEmail resets verification: a changed address must re-verify.
func (w *SignupWizard) SetEmail(v string) {
	v = utils.TrimOrEmpty(v)
	if v != w.form.Email {
		w.form.OTPVerified = false
		w.form.OTP = ""
	}
	w.form.Email = v
}

// MarkOTPVerified records a successful code check for the current email.
func (w *SignupWizard) MarkOTPVerified() { w.form.OTPVerified = true }

func (w *SignupWizard) ToggleVibe(vibe string) {
	for i, v := range w.form.Vibes {
		if v == vibe {
			w.form.Vibes = append(w.form.Vibes[:i], w.form.Vibes[i+1:]...)
			return
		}
	}
	w.form.Vibes = append(w.form.Vibes, vibe)
}

// Next advances when the current step's guard passes; guard failure
// returns the blocking message and leaves the wizard unchanged.
func (w *SignupWizard) Next() error {
	if w.step >= SignupVibes {
		return domain.ValidationError{Msg: "use Submit on the final step"}
	}
	if err := w.validateStep(w.step); err != nil {
		return err
	}
	w.step++
	return nil
}

// Previous retreats one step unconditionally, retaining entered data.
func (w *SignupWizard) Previous() {
	if w.step > SignupAccessCode {
		w.step--
	}
}

func (w *SignupWizard) validateStep(step SignupStep) error {
	f := w.form
	switch step {
	case SignupAccessCode:
		if f.AccessCode == "" {
			return domain.ValidationError{Field: "access_code", Msg: "Access code is required."}
		}
	case SignupName:
		if f.FirstName == "" || f.LastName == "" {
			return domain.ValidationError{Field: "name", Msg: "First and last name are required."}
		}
		if f.DateOfBirth == "" {
			return domain.ValidationError{Field: "date_of_birth", Msg: "Date of birth is required."}
		}
	case SignupCredentials:
		if !strings.Contains(f.Email, "@") {
			return domain.ValidationError{Field: "email", Msg: "A valid email is required."}
		}
		if f.PhoneNumber == "" {
			return domain.ValidationError{Field: "phone_number", Msg: "Phone number is required."}
		}
		if len(f.Password) < 8 {
			return domain.ValidationError{Field: "password", Msg: "Password must be at least 8 characters."}
		}
	case SignupVerifyEmail:
		if !f.OTPVerified {
			return domain.ValidationError{Field: "otp", Msg: "Please verify your email to continue."}
		}
	case SignupProfile:
		if f.ProfilePic == "" {
			return domain.ValidationError{Field: "profile_pic", Msg: "A profile image is required."}
		}
		if f.Nickname == "" {
			return domain.ValidationError{Field: "nickname", Msg: "Nickname is required."}
		}
		if f.Bio == "" {
			return domain.ValidationError{Field: "bio", Msg: "Bio is required."}
		}
	}
	return nil
}

// RegisterData assembles the registration payload after all steps pass.
func (w *SignupWizard) RegisterData() (services.RegisterData, error) {
	for step := SignupAccessCode; step <= SignupProfile; step++ {
		if err := w.validateStep(step); err != nil {
			return services.RegisterData{}, err
		}
	}
	f := w.form
	return services.RegisterData{
		FirstName:   f.FirstName,
		LastName:    f.LastName,
		Nickname:    f.Nickname,
		Email:       f.Email,
		Password:    f.Password,
		Bio:         f.Bio,
		PhoneNumber: f.PhoneNumber,
		ProfilePic:  f.ProfilePic,
		DateOfBirth: f.DateOfBirth,
		Vibes:       f.Vibes,
		AccessCode:  f.AccessCode,
	}, nil
}
