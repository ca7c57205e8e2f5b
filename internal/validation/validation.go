package validation

import (
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"campus-pop/internal/status"
	"campus-pop/models"
)

var (
	uppercaseRe = regexp.MustCompile(`[A-Z]`)
	digitRe     = regexp.MustCompile(`[0-9]`)
)

// check runs the rules for a single field and converts the first failure into
// the user-facing validation error. Fields are checked in declaration order,
// so callers always get the first violation.
func check(field string, value any, rules ...validation.Rule) error {
	if err := validation.Validate(value, rules...); err != nil {
		return status.NewValidationError(field, err.Error())
	}
	return nil
}

func ValidateLogin(email, password string) error {
	if err := check("email", strings.TrimSpace(email),
		validation.Required.Error("Invalid email address"),
		is.EmailFormat.Error("Invalid email address"),
		validation.RuneLength(0, 255).Error("Email must be less than 255 characters"),
	); err != nil {
		return err
	}
	return check("password", password,
		validation.Required.Error("Password must be at least 8 characters"),
		validation.RuneLength(8, 0).Error("Password must be at least 8 characters"),
		validation.RuneLength(0, 100).Error("Password must be less than 100 characters"),
	)
}

func ValidateSignup(email, password, fullName string) error {
	if err := check("email", strings.TrimSpace(email),
		validation.Required.Error("Invalid email address"),
		is.EmailFormat.Error("Invalid email address"),
		validation.RuneLength(0, 255).Error("Email must be less than 255 characters"),
	); err != nil {
		return err
	}
	if err := check("password", password,
		validation.Required.Error("Password must be at least 8 characters"),
		validation.RuneLength(8, 0).Error("Password must be at least 8 characters"),
		validation.RuneLength(0, 100).Error("Password must be less than 100 characters"),
		validation.Match(uppercaseRe).Error("Password must contain at least one uppercase letter"),
		validation.Match(digitRe).Error("Password must contain at least one number"),
	); err != nil {
		return err
	}
	// Name is optional
	return check("full_name", strings.TrimSpace(fullName),
		validation.RuneLength(0, 100).Error("Name must be less than 100 characters"),
	)
}

// NormalizeDraft trims all free-text fields and drops empty tags before the
// draft is validated or stored.
func NormalizeDraft(d *models.EventDraft) {
	d.Title = strings.TrimSpace(d.Title)
	d.Club = strings.TrimSpace(d.Club)
	d.Description = strings.TrimSpace(d.Description)
	d.Category = strings.TrimSpace(d.Category)
	d.Venue = strings.TrimSpace(d.Venue)
	d.EventDateTime = strings.TrimSpace(d.EventDateTime)

	tags := d.Tags[:0]
	for _, tag := range d.Tags {
		if t := strings.TrimSpace(tag); t != "" {
			tags = append(tags, t)
		}
	}
	d.Tags = tags
}

func ValidateEventDraft(d models.EventDraft) error {
	if err := check("title", d.Title,
		validation.Required.Error("Title is required"),
		validation.RuneLength(0, 200).Error("Title must be less than 200 characters"),
	); err != nil {
		return err
	}
	if err := check("description", d.Description,
		validation.RuneLength(0, 2000).Error("Description must be less than 2000 characters"),
	); err != nil {
		return err
	}
	if err := check("category", d.Category,
		validation.RuneLength(0, 50).Error("Category must be less than 50 characters"),
	); err != nil {
		return err
	}
	if len(d.Tags) > 10 {
		return status.NewValidationError("tags", "Maximum 10 tags allowed")
	}
	for _, tag := range d.Tags {
		if err := check("tags", tag,
			validation.RuneLength(0, 30).Error("Each tag must be less than 30 characters"),
		); err != nil {
			return err
		}
	}
	if err := check("venue", d.Venue,
		validation.RuneLength(0, 200).Error("Venue must be less than 200 characters"),
	); err != nil {
		return err
	}
	return check("event_date_time", d.EventDateTime,
		validation.Required.Error("Date and time are required"),
	)
}
