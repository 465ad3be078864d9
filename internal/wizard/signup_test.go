package wizard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"odyssweb/internal/domain"
	"odyssweb/internal/services"
)

func filledSignup() *SignupWizard {
	w := NewSignupWizard()
	w.SetAccessCode("EARLY-2026")
	w.SetFirstName("Ada")
	w.SetLastName("Obi")
	w.SetDateOfBirth("1999-04-12")
	w.SetEmail("ada@example.com")
	w.SetPhoneNumber("+2348012345678")
	w.SetPassword("hunter2hunter2")
	w.MarkOTPVerified()
	w.SetProfilePic("https://cdn.odyss.ng/u/ada.png")
	w.SetNickname("ada")
	w.SetBio("Weekend traveller.")
	w.ToggleVibe("afrobeats")
	return w
}

func TestSignupStepGating(t *testing.T) {
	w := NewSignupWizard()

	err := w.Next()
	require.Error(t, err)
	assert.Equal(t, SignupAccessCode, w.Step())

	w.SetAccessCode("EARLY-2026")
	require.NoError(t, w.Next())
	assert.Equal(t, SignupName, w.Step())

	w.SetFirstName("Ada")
	err = w.Next()
	require.Error(t, err, "last name still missing")
	assert.Equal(t, SignupName, w.Step())

	w.SetLastName("Obi")
	w.SetDateOfBirth("1999-04-12")
	require.NoError(t, w.Next())
	assert.Equal(t, SignupCredentials, w.Step())
}

func TestSignupCredentialChecks(t *testing.T) {
	tests := []struct {
		name  string
		setup func(*SignupWizard)
		want  string
	}{
		{"bad email", func(w *SignupWizard) {
			w.SetEmail("not-an-email")
			w.SetPhoneNumber("+2348012345678")
			w.SetPassword("longenough")
		}, "A valid email is required."},
		{"no phone", func(w *SignupWizard) {
			w.SetEmail("ada@example.com")
			w.SetPassword("longenough")
		}, "Phone number is required."},
		{"short password", func(w *SignupWizard) {
			w.SetEmail("ada@example.com")
			w.SetPhoneNumber("+2348012345678")
			w.SetPassword("seven77")
		}, "Password must be at least 8 characters."},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewSignupWizard()
			w.step = SignupCredentials
			tt.setup(w)
			err := w.Next()
			require.Error(t, err)
			var vErr domain.ValidationError
			require.ErrorAs(t, err, &vErr)
			assert.Equal(t, tt.want, vErr.Msg)
			assert.Equal(t, SignupCredentials, w.Step())
		})
	}
}

func TestVerifyEmailGatesOnOTP(t *testing.T) {
	w := NewSignupWizard()
	w.step = SignupVerifyEmail

	err := w.Next()
	require.Error(t, err)
	assert.Equal(t, SignupVerifyEmail, w.Step())

	w.MarkOTPVerified()
	require.NoError(t, w.Next())
	assert.Equal(t, SignupProfile, w.Step())
}

func TestEmailChangeResetsVerification(t *testing.T) {
	w := NewSignupWizard()
	w.SetEmail("ada@example.com")
	w.MarkOTPVerified()
	require.True(t, w.Form().OTPVerified)

	w.SetEmail("ada@example.com")
	assert.True(t, w.Form().OTPVerified, "re-entering the same email keeps verification")

	w.SetEmail("other@example.com")
	assert.False(t, w.Form().OTPVerified)
	assert.Equal(t, "", w.Form().OTP)
}

func TestSignupPreviousRetainsData(t *testing.T) {
	w := NewSignupWizard()
	w.SetAccessCode("EARLY-2026")
	require.NoError(t, w.Next())
	w.SetFirstName("Ada")
	w.SetLastName("Obi")
	w.SetDateOfBirth("1999-04-12")
	require.NoError(t, w.Next())

	w.Previous()
	assert.Equal(t, SignupName, w.Step())
	assert.Equal(t, "Ada", w.Form().FirstName)

	w.Previous()
	w.Previous()
	assert.Equal(t, SignupAccessCode, w.Step())
	assert.Equal(t, "EARLY-2026", w.Form().AccessCode)
}

func TestToggleVibeAddsAndRemoves(t *testing.T) {
	w := NewSignupWizard()
	w.ToggleVibe("afrobeats")
	w.ToggleVibe("podcasts")
	assert.Equal(t, []string{"afrobeats", "podcasts"}, w.Form().Vibes)

	w.ToggleVibe("afrobeats")
	assert.Equal(t, []string{"podcasts"}, w.Form().Vibes)
}

func TestRegisterDataAssembly(t *testing.T) {
	w := filledSignup()

	data, err := w.RegisterData()
	require.NoError(t, err)
	assert.Equal(t, services.RegisterData{
		FirstName:   "Ada",
		LastName:    "Obi",
		Nickname:    "ada",
		Email:       "ada@example.com",
		Password:    "hunter2hunter2",
		Bio:         "Weekend traveller.",
		PhoneNumber: "+2348012345678",
		ProfilePic:  "https://cdn.odyss.ng/u/ada.png",
		DateOfBirth: "1999-04-12",
		Vibes:       []string{"afrobeats"},
		AccessCode:  "EARLY-2026",
	}, data)
}

func TestRegisterDataRejectsSkippedSteps(t *testing.T) {
	w := filledSignup()
	w.form.ProfilePic = ""

	_, err := w.RegisterData()
	require.Error(t, err)
	var vErr domain.ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "A profile image is required.", vErr.Msg)
}
