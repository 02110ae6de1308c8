package formatting

import (
	"fmt"
	"strconv"
	"strings"

	"sheetfmt/internal/domain"
)

type dateTimeMode int

const (
	modeDate dateTimeMode = iota
	modeTime
	modeDateTime
)

func (m dateTimeMode) String() string {
	switch m {
	case modeDate:
		return "date"
	case modeTime:
		return "time"
	default:
		return "date-time"
	}
}

// maxRun is the longest meaningful run for each placeholder letter.
var maxRun = map[kind]int{
	kindDay:    4,
	kindMonth:  5,
	kindYear:   4,
	kindHour:   2,
	kindMinute: 2,
	kindSecond: 2,
}

// dateTimeFormatter renders date and time patterns such as "dd/mm/yyyy hh:mm".
type dateTimeFormatter struct {
	mode       dateTimeMode
	tokens     []token
	twelveHour bool
}

func dateTimeParser(mode dateTimeMode) func(string) (patternFormatter, error) {
	return func(pattern string) (patternFormatter, error) {
		f, err := parseDateTime(mode, pattern)
		if err != nil {
			return nil, err
		}
		return f, nil
	}
}

func parseDateTime(mode dateTimeMode, pattern string) (*dateTimeFormatter, error) {
	if pattern == "" {
		return nil, fmt.Errorf("empty %s pattern", mode)
	}
	s := newScanner(pattern)
	var tokens []token
	for !s.done() {
		r := s.peek()
		var t token
		switch lower(r) {
		case 'd':
			t = token{kind: kindDay, text: s.run('d')}
		case 'm':
			t = token{kind: kindMonth, text: s.run('m')}
		case 'y':
			t = token{kind: kindYear, text: s.run('y')}
		case 'h':
			t = token{kind: kindHour, text: s.run('h')}
		case 's':
			t = token{kind: kindSecond, text: s.run('s')}
		case 'a':
			switch {
			case s.hasPrefixFold("am/pm"):
				t = token{kind: kindAMPM, text: s.take(5)}
			case s.hasPrefixFold("a/p"):
				t = token{kind: kindAMPM, text: s.take(3)}
			default:
				return nil, s.invalid()
			}
		default:
			if isASCIILetter(r) {
				return nil, s.invalid()
			}
			lit, err := s.literal()
			if err != nil {
				return nil, err
			}
			t = lit
		}
		tokens = append(tokens, t)
	}

	if err := resolveMinutes(mode, tokens); err != nil {
		return nil, err
	}
	f := &dateTimeFormatter{mode: mode, tokens: tokens}
	for _, t := range tokens {
		if limit, ok := maxRun[t.kind]; ok && len(t.text) > limit {
			return nil, fmt.Errorf("%q is too long, at most %d letters", t.text, limit)
		}
		if err := mode.allows(t); err != nil {
			return nil, err
		}
		if t.kind == kindAMPM {
			f.twelveHour = true
		}
	}
	return f, nil
}

// resolveMinutes decides whether each 'm' run is a month or minutes.
//
// In a date-time pattern a run of at most two letters directly after an
// hour or directly before a second is minutes.
func resolveMinutes(mode dateTimeMode, tokens []token) error {
	for i := range tokens {
		if tokens[i].kind != kindMonth {
			continue
		}
		switch mode {
		case modeDate:
		case modeTime:
			if len(tokens[i].text) > 2 {
				return fmt.Errorf("%q is not a minute in a time pattern", tokens[i].text)
			}
			tokens[i].kind = kindMinute
		case modeDateTime:
			if len(tokens[i].text) <= 2 &&
				(placeholderBefore(tokens, i) == kindHour || placeholderAfter(tokens, i) == kindSecond) {
				tokens[i].kind = kindMinute
			}
		}
	}
	return nil
}

func placeholderBefore(tokens []token, i int) kind {
	for j := i - 1; j >= 0; j-- {
		if !tokens[j].isLiteral() {
			return tokens[j].kind
		}
	}
	return kindLiteral
}

func placeholderAfter(tokens []token, i int) kind {
	for j := i + 1; j < len(tokens); j++ {
		if !tokens[j].isLiteral() {
			return tokens[j].kind
		}
	}
	return kindLiteral
}

func (m dateTimeMode) allows(t token) error {
	switch t.kind {
	case kindDay, kindMonth, kindYear:
		if m == modeTime {
			return fmt.Errorf("date component %q not allowed in %s pattern", t.text, m)
		}
	case kindHour, kindMinute, kindSecond, kindAMPM:
		if m == modeDate {
			return fmt.Errorf("time component %q not allowed in %s pattern", t.text, m)
		}
	}
	return nil
}

func (f *dateTimeFormatter) Format(_ domain.FormatterContext, value any) (string, error) {
	t, err := toDateTime(value)
	if err != nil {
		return "", err
	}
	var b strings.Builder
	for _, tok := range f.tokens {
		n := len(tok.text)
		switch tok.kind {
		case kindDay:
			switch n {
			case 1, 2:
				b.WriteString(pad(t.Day(), n))
			case 3:
				b.WriteString(t.Weekday().String()[:3])
			default:
				b.WriteString(t.Weekday().String())
			}
		case kindMonth:
			switch n {
			case 1, 2:
				b.WriteString(pad(int(t.Month()), n))
			case 3:
				b.WriteString(t.Month().String()[:3])
			case 4:
				b.WriteString(t.Month().String())
			default:
				b.WriteString(t.Month().String()[:1])
			}
		case kindYear:
			if n <= 2 {
				b.WriteString(pad(t.Year()%100, 2))
			} else {
				b.WriteString(pad(t.Year(), 4))
			}
		case kindHour:
			h := t.Hour()
			if f.twelveHour {
				h %= 12
				if h == 0 {
					h = 12
				}
			}
			b.WriteString(pad(h, n))
		case kindMinute:
			b.WriteString(pad(t.Minute(), n))
		case kindSecond:
			b.WriteString(pad(t.Second(), n))
		case kindAMPM:
			b.WriteString(ampm(tok.text, t.Hour() < 12))
		default:
			b.WriteString(tok.value())
		}
	}
	return b.String(), nil
}

// pad renders v with at least width digits.
func pad(v, width int) string {
	s := strconv.Itoa(v)
	for len(s) < width {
		s = "0" + s
	}
	return s
}

// ampm renders the marker in the letter case the pattern used.
func ampm(pattern string, morning bool) string {
	var out string
	switch {
	case len(pattern) == 3 && morning:
		out = "A"
	case len(pattern) == 3:
		out = "P"
	case morning:
		out = "AM"
	default:
		out = "PM"
	}
	if pattern[0] >= 'a' && pattern[0] <= 'z' {
		return strings.ToLower(out)
	}
	return out
}

func (f *dateTimeFormatter) TextComponents(domain.FormatterContext) []domain.TextComponent {
	return textComponents(f.tokens)
}

func (f *dateTimeFormatter) next() *domain.TextComponent {
	switch f.mode {
	case modeDate:
		return nextComponent(missingKinds(f.tokens, kindDay, kindMonth, kindYear)...)
	case modeTime:
		return nextComponent(missingKinds(f.tokens, kindHour, kindMinute, kindSecond)...)
	default:
		return nextComponent(missingKinds(f.tokens,
			kindDay, kindMonth, kindYear, kindHour, kindMinute, kindSecond)...)
	}
}
