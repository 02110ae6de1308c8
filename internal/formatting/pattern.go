package formatting

import (
	"fmt"
	"strings"

	"sheetfmt/internal/domain"
)

// kind classifies a pattern token.
type kind int

const (
	kindLiteral kind = iota
	kindQuoted
	kindEscape
	kindText
	kindDigit
	kindGroup
	kindDecimal
	kindPercent
	kindSection
	kindDay
	kindMonth
	kindYear
	kindHour
	kindMinute
	kindSecond
	kindAMPM
)

// token is one structural piece of a pattern, Text is verbatim.
type token struct {
	kind kind
	text string
}

// value returns the literal text a literal-like token renders.
func (t token) value() string {
	switch t.kind {
	case kindQuoted:
		return t.text[1 : len(t.text)-1]
	case kindEscape:
		return t.text[1:]
	default:
		return t.text
	}
}

func (t token) isLiteral() bool {
	return t.kind == kindLiteral || t.kind == kindQuoted || t.kind == kindEscape
}

// variants lists the spellings offered as alternatives for each placeholder kind.
var variants = map[kind][]string{
	kindDigit:  {"0", "#", "?"},
	kindDay:    {"d", "dd", "ddd", "dddd"},
	kindMonth:  {"m", "mm", "mmm", "mmmm", "mmmmm"},
	kindYear:   {"yy", "yyyy"},
	kindHour:   {"h", "hh"},
	kindMinute: {"m", "mm"},
	kindSecond: {"s", "ss"},
	kindAMPM:   {"AM/PM", "A/P"},
}

// scanner walks a pattern rune by rune, collecting literal tokens.
type scanner struct {
	runes []rune
	pos   int
}

func newScanner(pattern string) *scanner { return &scanner{runes: []rune(pattern)} }

func (s *scanner) done() bool { return s.pos >= len(s.runes) }

func (s *scanner) peek() rune { return s.runes[s.pos] }

// run consumes consecutive runes equal to r ignoring ASCII case.
func (s *scanner) run(r rune) string {
	start := s.pos
	for s.pos < len(s.runes) && lower(s.runes[s.pos]) == lower(r) {
		s.pos++
	}
	return string(s.runes[start:s.pos])
}

// hasPrefixFold reports whether the remaining input starts with p ignoring ASCII case.
func (s *scanner) hasPrefixFold(p string) bool {
	pr := []rune(p)
	if s.pos+len(pr) > len(s.runes) {
		return false
	}
	for i, r := range pr {
		if lower(s.runes[s.pos+i]) != lower(r) {
			return false
		}
	}
	return true
}

func (s *scanner) take(n int) string {
	out := string(s.runes[s.pos : s.pos+n])
	s.pos += n
	return out
}

// literal scans quoted text, an escape or a single literal rune.
func (s *scanner) literal() (token, error) {
	start := s.pos
	switch s.peek() {
	case '"':
		for s.pos++; s.pos < len(s.runes); s.pos++ {
			if s.runes[s.pos] == '"' {
				s.pos++
				return token{kind: kindQuoted, text: string(s.runes[start:s.pos])}, nil
			}
		}
		return token{}, fmt.Errorf("unterminated quoted text at %d", start)
	case '\\':
		if s.pos+1 >= len(s.runes) {
			return token{}, fmt.Errorf("incomplete escape at %d", start)
		}
		s.pos += 2
		return token{kind: kindEscape, text: string(s.runes[start:s.pos])}, nil
	default:
		s.pos++
		return token{kind: kindLiteral, text: string(s.runes[start:s.pos])}, nil
	}
}

func (s *scanner) invalid() error {
	return fmt.Errorf("invalid character %q at %d", s.peek(), s.pos)
}

func lower(r rune) rune {
	if r >= 'A' && r <= 'Z' {
		return r + 'a' - 'A'
	}
	return r
}

// textComponents converts tokens to their editor representation.
func textComponents(tokens []token) []domain.TextComponent {
	out := make([]domain.TextComponent, 0, len(tokens))
	for _, t := range tokens {
		out = append(out, domain.TextComponent{
			Label:        t.text,
			Text:         t.text,
			Alternatives: alternatives(t.kind, t.text),
		})
	}
	return out
}

// alternatives lists the variants of k other than current.
func alternatives(k kind, current string) []domain.TextComponentAlternative {
	out := []domain.TextComponentAlternative{}
	for _, v := range variants[k] {
		if strings.EqualFold(v, current) {
			continue
		}
		out = append(out, domain.TextComponentAlternative{Label: v, Text: v})
	}
	return out
}

// nextComponent offers every variant of the missing kinds, nil when none are missing.
func nextComponent(missing ...kind) *domain.TextComponent {
	alts := []domain.TextComponentAlternative{}
	for _, k := range missing {
		for _, v := range variants[k] {
			alts = append(alts, domain.TextComponentAlternative{Label: v, Text: v})
		}
	}
	if len(alts) == 0 {
		return nil
	}
	return &domain.TextComponent{Alternatives: alts}
}

// present reports which kinds occur in tokens.
func present(tokens []token) map[kind]bool {
	m := make(map[kind]bool, len(tokens))
	for _, t := range tokens {
		m[t.kind] = true
	}
	return m
}

// missingKinds returns the kinds from want that tokens lacks, in order.
func missingKinds(tokens []token, want ...kind) []kind {
	have := present(tokens)
	var out []kind
	for _, k := range want {
		if !have[k] {
			out = append(out, k)
		}
	}
	return out
}
