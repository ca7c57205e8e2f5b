package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campus-pop/internal/status"
	"campus-pop/models"
)

func validDraft() models.EventDraft {
	return models.EventDraft{
		Title:         "Clean Drive",
		Club:          "NSS",
		Description:   "Plastic-free campus initiative",
		Category:      "Social",
		Tags:          []string{"Environment", "Campus"},
		Venue:         "Football Ground",
		EventDateTime: "2026-09-02T13:45",
	}
}

func TestValidateEventDraft_TitleBoundary(t *testing.T) {
	draft := validDraft()

	draft.Title = strings.Repeat("a", 200)
	assert.NoError(t, ValidateEventDraft(draft))

	draft.Title = strings.Repeat("a", 201)
	err := ValidateEventDraft(draft)
	require.Error(t, err)

	var verr *status.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Title must be less than 200 characters", verr.Message)
}

func TestValidateEventDraft_FirstViolationWins(t *testing.T) {
	draft := validDraft()
	draft.Title = ""
	draft.Description = strings.Repeat("x", 3000)

	err := ValidateEventDraft(draft)
	require.Error(t, err)

	var verr *status.ValidationError
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, "Title is required", verr.Message)
	assert.Equal(t, "title", verr.Field)
}

func TestValidateEventDraft_Tags(t *testing.T) {
	draft := validDraft()

	draft.Tags = make([]string, 11)
	for i := range draft.Tags {
		draft.Tags[i] = "tag"
	}
	err := ValidateEventDraft(draft)
	require.Error(t, err)
	assert.Equal(t, "Maximum 10 tags allowed", err.Error())

	draft.Tags = []string{strings.Repeat("t", 31)}
	err = ValidateEventDraft(draft)
	require.Error(t, err)
	assert.Equal(t, "Each tag must be less than 30 characters", err.Error())
}

func TestValidateEventDraft_DateTimeRequired(t *testing.T) {
	draft := validDraft()
	draft.EventDateTime = ""

	err := ValidateEventDraft(draft)
	require.Error(t, err)
	assert.Equal(t, "Date and time are required", err.Error())
}

func TestValidateEventDraft_OptionalFieldsMayBeEmpty(t *testing.T) {
	draft := models.EventDraft{
		Title:         "Minimal",
		EventDateTime: "2026-09-02T13:45",
	}
	assert.NoError(t, ValidateEventDraft(draft))
}

func TestNormalizeDraft(t *testing.T) {
	draft := models.EventDraft{
		Title: "  Clean Drive  ",
		Tags:  []string{" Environment ", "", "  "},
		Venue: " Football Ground ",
	}
	NormalizeDraft(&draft)

	assert.Equal(t, "Clean Drive", draft.Title)
	assert.Equal(t, []string{"Environment"}, draft.Tags)
	assert.Equal(t, "Football Ground", draft.Venue)
}

func TestValidateLogin(t *testing.T) {
	assert.NoError(t, ValidateLogin("student@college.edu", "Password1"))

	err := ValidateLogin("not-an-email", "Password1")
	require.Error(t, err)
	assert.Equal(t, "Invalid email address", err.Error())

	err = ValidateLogin("student@college.edu", "short")
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters", err.Error())

	err = ValidateLogin("student@college.edu", "")
	require.Error(t, err)
	assert.Equal(t, "Password must be at least 8 characters", err.Error())
}

func TestValidateSignup_PasswordStrength(t *testing.T) {
	assert.NoError(t, ValidateSignup("student@college.edu", "Password1", ""))

	err := ValidateSignup("student@college.edu", "password1", "")
	require.Error(t, err)
	assert.Equal(t, "Password must contain at least one uppercase letter", err.Error())

	err = ValidateSignup("student@college.edu", "Passwords", "")
	require.Error(t, err)
	assert.Equal(t, "Password must contain at least one number", err.Error())

	err = ValidateSignup("student@college.edu", "Password1", strings.Repeat("n", 101))
	require.Error(t, err)
	assert.Equal(t, "Name must be less than 100 characters", err.Error())
}
