package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

// maxFormatterNameLength bounds the length of a formatter name.
const maxFormatterNameLength = 255

// ErrEmptySelector is returned when a selector string has no formatter name.
var ErrEmptySelector = errors.New("empty selector")

// FormatterName identifies a formatter, e.g. "date-format-pattern".
type FormatterName string

// String returns the string form of the name.
func (n FormatterName) String() string { return string(n) }

// ParseFormatterName validates s as a formatter name.
//
// A name starts with an ASCII letter followed by letters, digits or '-'.
func ParseFormatterName(s string) (FormatterName, error) {
	if s == "" {
		return "", errors.New("empty formatter name")
	}
	if len(s) > maxFormatterNameLength {
		return "", fmt.Errorf("formatter name too long (%d > %d)", len(s), maxFormatterNameLength)
	}
	for i, r := range s {
		switch {
		case isASCIILetter(r):
		case i > 0 && (r >= '0' && r <= '9' || r == '-'):
		default:
			return "", fmt.Errorf("invalid character %q at %d in formatter name %q", r, i, s)
		}
	}
	return FormatterName(s), nil
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

// Selector names a formatter plus the pattern text handed to it.
//
// Its string form is the name, optionally followed by a single space and
// the text: "date-format-pattern dd/mm/yyyy".
type Selector struct {
	Name FormatterName
	Text string
}

// ParseSelector parses the string form of a Selector.
func ParseSelector(s string) (Selector, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Selector{}, ErrEmptySelector
	}
	name, text, _ := strings.Cut(s, " ")
	n, err := ParseFormatterName(name)
	if err != nil {
		return Selector{}, err
	}
	return Selector{Name: n, Text: text}, nil
}

// NewSelector returns a Selector for name with the given text.
func NewSelector(name FormatterName, text string) Selector {
	return Selector{Name: name, Text: text}
}

// String returns the selector in its parseable form.
func (s Selector) String() string {
	if s.Text == "" {
		return string(s.Name)
	}
	return string(s.Name) + " " + s.Text
}

// IsZero reports whether s has no name.
func (s Selector) IsZero() bool { return s.Name == "" }

// MarshalJSON encodes the selector as its string form.
func (s Selector) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// UnmarshalJSON decodes a selector from its string form.
func (s *Selector) UnmarshalJSON(b []byte) error {
	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("selector must be a JSON string: %w", err)
	}
	parsed, err := ParseSelector(raw)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// MarshalText lets selectors appear as YAML scalars and map keys.
func (s Selector) MarshalText() ([]byte, error) { return []byte(s.String()), nil }

// UnmarshalText is the inverse of MarshalText.
func (s *Selector) UnmarshalText(b []byte) error {
	parsed, err := ParseSelector(string(b))
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}
