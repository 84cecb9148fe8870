package notify

import (
	"regexp"
	"strings"

	apperrors "github.com/splita/splita-api/pkg/errors"
)

// Permissive E.164 shape: optional +, then 2-15 digits not starting with 0.
var phonePattern = regexp.MustCompile(`^\+?[1-9]\d{1,14}$`)

// NormalizePhoneNumber coerces a phone number into E.164 form. A bare
// 10-digit number is assumed to be North American and gets a +1 prefix; any
// other number without a country code is rejected rather than guessed at.
func NormalizePhoneNumber(raw string) (string, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), " ", "")

	if !phonePattern.MatchString(s) {
		return "", apperrors.NewInvalidRequestError("invalid phone number format", nil)
	}

	if strings.HasPrefix(s, "+") {
		return s, nil
	}

	if len(s) == 10 {
		return "+1" + s, nil
	}

	return "", apperrors.NewInvalidRequestError("phone number must include a country code (e.g. +1234567890)", nil)
}
