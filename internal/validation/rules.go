// Package validation provides custom validation rules for the application.
package validation

import (
	"regexp"
	"strings"

	validation "github.com/jellydator/validation"

	apperrors "github.com/allisson/tenantvault/internal/errors"
)

var (
	// keyIDRegex matches generated key identifiers ("key_<hex>_<unix>") as well
	// as caller-supplied ids made of safe characters.
	keyIDRegex = regexp.MustCompile(`^[a-zA-Z0-9_\-]{1,128}$`)

	// teamIDRegex matches Slack workspace identifiers (e.g., "T0123ABCD").
	teamIDRegex = regexp.MustCompile(`^[A-Z0-9]{5,20}$`)
)

// WrapValidationError wraps validation errors as domain ErrInvalidInput
func WrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	return apperrors.Wrap(apperrors.ErrInvalidInput, err.Error())
}

// KeyID validates encryption key identifiers.
var KeyID = validation.NewStringRuleWithError(
	func(s string) bool {
		return keyIDRegex.MatchString(s)
	},
	validation.NewError("validation_key_id", "must be a valid key identifier"),
)

// SlackTeamID validates Slack workspace identifiers.
var SlackTeamID = validation.NewStringRuleWithError(
	func(s string) bool {
		return teamIDRegex.MatchString(s)
	},
	validation.NewError("validation_slack_team_id", "must be a valid Slack team identifier"),
)

// NoWhitespace validates that string doesn't contain leading/trailing whitespace
var NoWhitespace = validation.NewStringRuleWithError(
	func(s string) bool {
		return s == strings.TrimSpace(s)
	},
	validation.NewError("validation_no_whitespace", "must not contain leading or trailing whitespace"),
)

// NotBlank validates that a string is not empty after trimming whitespace
var NotBlank = validation.NewStringRuleWithError(
	func(s string) bool {
		return strings.TrimSpace(s) != ""
	},
	validation.NewError("validation_not_blank", "must not be blank"),
)
