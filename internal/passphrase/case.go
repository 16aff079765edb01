package passphrase

import (
	"errors"
	"fmt"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// CaseMode selects the case transform applied to a passphrase.
type CaseMode string

const (
	// Lower lowercases every word.
	Lower CaseMode = "lower"
	// AsIs keeps the casing found in the dictionary.
	AsIs CaseMode = "asis"
	// Upper uppercases every word.
	Upper CaseMode = "upper"
)

// ErrUnknownCaseMode is returned when a case mode name is not recognised.
var ErrUnknownCaseMode = errors.New("unknown case mode")

// CaseModes lists the accepted case mode names.
func CaseModes() []string {
	return []string{string(Lower), string(AsIs), string(Upper)}
}

// ParseCaseMode converts a case-insensitive mode name into a CaseMode.
func ParseCaseMode(raw string) (CaseMode, error) {
	switch mode := CaseMode(strings.ToLower(strings.TrimSpace(raw))); mode {
	case Lower, AsIs, Upper:
		return mode, nil
	default:
		return "", fmt.Errorf("%w %q (supported: %s)", ErrUnknownCaseMode, raw, strings.Join(CaseModes(), ", "))
	}
}

// Apply returns s transformed according to the mode.
func (m CaseMode) Apply(s string) string {
	switch m {
	case Lower:
		return cases.Lower(language.Und).String(s)
	case Upper:
		return cases.Upper(language.Und).String(s)
	default:
		return s
	}
}
