package domain

import (
	"net/mail"
	"strings"

	dErrors "biblio/pkg/domain-errors"
)

// EmailAddress is a validated, lowercase-normalized mail address.
type EmailAddress string

// ParseEmailAddress validates a raw string as a single RFC 5322 address
// (local-part@domain) and normalizes it to lowercase. Display names are
// rejected: the input must be a bare address.
func ParseEmailAddress(s string) (EmailAddress, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", dErrors.New(dErrors.CodeValidation, "email address cannot be empty")
	}
	addr, err := mail.ParseAddress(s)
	if err != nil || addr.Name != "" || addr.Address != s {
		return "", dErrors.New(dErrors.CodeValidation, "email address is not valid")
	}
	local, domain, ok := strings.Cut(addr.Address, "@")
	if !ok || local == "" || domain == "" {
		return "", dErrors.New(dErrors.CodeValidation, "email address is not valid")
	}
	return EmailAddress(strings.ToLower(addr.Address)), nil
}

// TryParseEmailAddress is the non-failing variant for callers that branch on validity.
func TryParseEmailAddress(s string) (EmailAddress, bool) {
	email, err := ParseEmailAddress(s)
	return email, err == nil
}

func (e EmailAddress) String() string { return string(e) }

func (e EmailAddress) IsNil() bool { return e == "" }
