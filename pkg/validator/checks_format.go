package validator

import (
	"net/mail"
	"reflect"
	"strings"

	"github.com/google/uuid"

	"github.com/dmitrymomot/freshval/pkg/sanitizer"
)

func formatChecks() []Check {
	return []Check{
		{
			Name:      CheckUUID,
			Message:   "{name} ({val}) must{not} be a valid UUID",
			Validate:  func(target any, _ ...any) bool { return isUUID(target) },
			Transform: canonicalUUID,
		},
		{
			Name:      CheckEmail,
			Message:   "{name} ({val}) must{not} be a valid email address",
			Validate:  func(target any, _ ...any) bool { return isEmail(target) },
			Transform: sanitizer.StringTransform(sanitizer.NormalizeEmail),
		},
		{
			Name:           CheckTrimmed,
			ContinueOnFail: true,
			Message:        "{name} ({val}) must{not} be a string",
			Validate:       isStringValue,
			Transform:      sanitizer.StringTransform(sanitizer.Trim),
		},
		{
			Name:           CheckLowercase,
			ContinueOnFail: true,
			Message:        "{name} ({val}) must{not} be a string",
			Validate:       isStringValue,
			Transform:      sanitizer.StringTransform(sanitizer.ToLower),
		},
		{
			Name:           CheckNormalized,
			ContinueOnFail: true,
			Message:        "{name} ({val}) must{not} be a string",
			Validate:       isStringValue,
			Transform:      sanitizer.StringTransform(sanitizer.NormalizeUnicode),
		},
	}
}

func isStringValue(target any, _ ...any) bool {
	return target != nil && reflect.TypeOf(target).Kind() == reflect.String
}

func stringOf(target any) (string, bool) {
	if !isStringValue(target) {
		return "", false
	}
	return reflect.ValueOf(target).String(), true
}

// isUUID accepts uuid.UUID values and every textual form uuid.Parse understands.
func isUUID(target any) bool {
	if _, ok := target.(uuid.UUID); ok {
		return true
	}
	s, ok := stringOf(target)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}
	_, err := uuid.Parse(s)
	return err == nil
}

// canonicalUUID rewrites textual UUIDs into the lowercase hyphenated form.
func canonicalUUID(target any) any {
	s, ok := stringOf(target)
	if !ok {
		return target
	}
	id, err := uuid.Parse(s)
	if err != nil {
		return target
	}
	return id.String()
}

func isEmail(target any) bool {
	s, ok := stringOf(target)
	if !ok || strings.TrimSpace(s) == "" {
		return false
	}

	addr, err := mail.ParseAddress(strings.TrimSpace(s))
	if err != nil || addr.Name != "" {
		return false
	}

	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" {
		return false
	}
	if !strings.Contains(domain, ".") || strings.HasPrefix(domain, ".") || strings.HasSuffix(domain, ".") {
		return false
	}
	return !strings.Contains(domain, "..")
}
