package formatting

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"sheetfmt/internal/domain"
)

const maxNumberSections = 3

// numberSection is one ';' separated part of a number pattern.
type numberSection struct {
	tokens    []token
	intDigit  []rune // integer placeholders, left to right
	fracDigit []rune // fraction placeholders, left to right
	grouping  bool
	percents  int
}

// numberFormatter renders numbers with positive;negative;zero sections.
type numberFormatter struct {
	tokens   []token
	sections []numberSection
}

func parseNumber(pattern string) (patternFormatter, error) {
	if pattern == "" {
		return nil, errors.New("empty number pattern")
	}
	s := newScanner(pattern)
	f := &numberFormatter{}
	sec := numberSection{}
	afterDecimal := false

	for !s.done() {
		var t token
		switch r := s.peek(); r {
		case '0', '#', '?':
			t = token{kind: kindDigit, text: s.take(1)}
			if afterDecimal {
				sec.fracDigit = append(sec.fracDigit, r)
			} else {
				sec.intDigit = append(sec.intDigit, r)
			}
		case ',':
			if afterDecimal {
				return nil, fmt.Errorf("unexpected ',' after decimal point at %d", s.pos)
			}
			t = token{kind: kindGroup, text: s.take(1)}
			sec.grouping = true
		case '.':
			if afterDecimal {
				return nil, fmt.Errorf("duplicate decimal point at %d", s.pos)
			}
			t = token{kind: kindDecimal, text: s.take(1)}
			afterDecimal = true
		case '%':
			t = token{kind: kindPercent, text: s.take(1)}
			sec.percents++
		case ';':
			t = token{kind: kindSection, text: s.take(1)}
			f.sections = append(f.sections, sec)
			if len(f.sections) == maxNumberSections {
				return nil, fmt.Errorf("too many sections, at most %d allowed", maxNumberSections)
			}
			sec = numberSection{}
			afterDecimal = false
			f.tokens = append(f.tokens, t)
			continue
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
		f.tokens = append(f.tokens, t)
		sec.tokens = append(sec.tokens, t)
	}
	f.sections = append(f.sections, sec)
	return f, nil
}

func isASCIILetter(r rune) bool {
	return r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z'
}

func (f *numberFormatter) Format(ctx domain.FormatterContext, value any) (string, error) {
	n, err := toNumber(value)
	if err != nil {
		return "", err
	}
	if math.IsNaN(n) || math.IsInf(n, 0) {
		return "", fmt.Errorf("cannot format %v", n)
	}
	sym := ctx.Symbols()

	switch {
	case len(f.sections) >= 3 && n == 0:
		return f.sections[2].format(0, sym), nil
	case len(f.sections) >= 2 && n < 0:
		return f.sections[1].format(-n, sym), nil
	case len(f.sections) >= 2:
		return f.sections[0].format(n, sym), nil
	}
	sec := f.sections[0]
	out := sec.format(math.Abs(n), sym)
	if n < 0 && !sec.roundsToZero(math.Abs(n)) {
		return string(sym.Minus) + out, nil
	}
	return out, nil
}

// scaled applies percent scaling to a non-negative value.
func (s numberSection) scaled(n float64) float64 {
	for i := 0; i < s.percents; i++ {
		n *= 100
	}
	return n
}

func (s numberSection) roundsToZero(n float64) bool {
	return strings.Trim(s.digits(n), "0.") == ""
}

// digits rounds half away from zero to one place per fraction placeholder.
func (s numberSection) digits(n float64) string {
	places := len(s.fracDigit)
	p := math.Pow(10, float64(places))
	return strconv.FormatFloat(math.Round(s.scaled(n)*p)/p, 'f', places, 64)
}

// format renders a non-negative value with this section.
func (s numberSection) format(n float64, sym domain.Symbols) string {
	intPart, fracPart, _ := strings.Cut(s.digits(n), ".")
	intCells := s.integer(intPart, sym)
	fracCells := s.fraction(strings.TrimRight(fracPart, "0"))

	showDecimal := false
	for _, c := range fracCells {
		if c != "" {
			showDecimal = true
			break
		}
	}

	var b strings.Builder
	seenDecimal := false
	intIdx, fracIdx := 0, 0
	for _, t := range s.tokens {
		switch t.kind {
		case kindDigit:
			if seenDecimal {
				b.WriteString(fracCells[fracIdx])
				fracIdx++
				continue
			}
			b.WriteString(intCells[intIdx])
			intIdx++
		case kindGroup:
		case kindDecimal:
			seenDecimal = true
			if showDecimal {
				b.WriteRune(sym.Decimal)
			}
		case kindPercent:
			b.WriteRune(sym.Percent)
		default:
			b.WriteString(t.value())
		}
	}
	return b.String()
}

// integer hands the integer digits out to the placeholders from the right,
// one per placeholder. Surplus digits go to the leftmost placeholder and
// missing ones are padded per placeholder: '0' with a zero, '?' with a
// space, '#' with nothing. Group separators follow the digit positions.
func (s numberSection) integer(intPart string, sym domain.Symbols) []string {
	if intPart == "0" {
		intPart = ""
	}
	digits := []rune(intPart)
	cells := make([][]rune, len(s.intDigit))
	for i := len(s.intDigit) - 1; i >= 0; i-- {
		k := len(digits) - (len(s.intDigit) - i)
		switch {
		case k >= 0 && i == 0:
			cells[i] = digits[:k+1]
		case k >= 0:
			cells[i] = []rune{digits[k]}
		case s.intDigit[i] == '0':
			cells[i] = []rune{'0'}
		case s.intDigit[i] == '?':
			cells[i] = []rune{' '}
		}
	}

	count := 0
	for _, c := range cells {
		for _, r := range c {
			if isDigit(r) {
				count++
			}
		}
	}
	out := make([]string, len(cells))
	seen := 0
	for i, c := range cells {
		var b strings.Builder
		for _, r := range c {
			b.WriteRune(r)
			if !s.grouping || !isDigit(r) {
				continue
			}
			seen++
			if rem := count - seen; rem > 0 && rem%3 == 0 {
				b.WriteRune(sym.Group)
			}
		}
		out[i] = b.String()
	}
	return out
}

// fraction renders one cell per fraction placeholder. Positions without a
// significant digit are padded with '0' up to the last '0' placeholder,
// after that '?' pads with a space and '#' stays empty.
func (s numberSection) fraction(fracPart string) []string {
	lastZero := -1
	for i, r := range s.fracDigit {
		if r == '0' {
			lastZero = i
		}
	}
	digits := []rune(fracPart)
	out := make([]string, len(s.fracDigit))
	for i, r := range s.fracDigit {
		switch {
		case i < len(digits):
			out[i] = string(digits[i])
		case i <= lastZero:
			out[i] = "0"
		case r == '?':
			out[i] = " "
		}
	}
	return out
}

func isDigit(r rune) bool { return r >= '0' && r <= '9' }

func (f *numberFormatter) TextComponents(domain.FormatterContext) []domain.TextComponent {
	return textComponents(f.tokens)
}

// next suggests digits first, then a fraction, then a percent sign.
func (f *numberFormatter) next() *domain.TextComponent {
	have := present(f.tokens)
	var alts []string
	switch {
	case !have[kindDigit]:
		alts = []string{"#,##0", "0", "#"}
	case !have[kindDecimal]:
		alts = []string{".0", ".00", ".##"}
	case !have[kindPercent]:
		alts = []string{"%"}
	default:
		return nil
	}
	out := &domain.TextComponent{Alternatives: make([]domain.TextComponentAlternative, 0, len(alts))}
	for _, a := range alts {
		out.Alternatives = append(out.Alternatives, domain.TextComponentAlternative{Label: a, Text: a})
	}
	return out
}
