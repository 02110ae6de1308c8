package formatting

import (
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"sheetfmt/internal/domain"
)

// Context is the FormatterContext handed to formatters for one request.
type Context struct {
	locale  language.Tag
	now     func() time.Time
	symbols domain.Symbols
}

// NewContext returns a context for locale whose clock is now.
// A nil now uses time.Now.
func NewContext(locale language.Tag, now func() time.Time) *Context {
	if now == nil {
		now = time.Now
	}
	return &Context{locale: locale, now: now, symbols: SymbolsFor(locale)}
}

// Locale returns the locale values are formatted for.
func (c *Context) Locale() language.Tag { return c.locale }

// Now returns the current time of the context clock.
func (c *Context) Now() time.Time { return c.now() }

// Symbols returns the number symbols of the locale.
func (c *Context) Symbols() domain.Symbols { return c.symbols }

// SymbolsFor derives decimal and grouping separators for tag from the CLDR
// data in x/text by formatting a probe number.
func SymbolsFor(tag language.Tag) domain.Symbols {
	out := domain.DefaultSymbols()
	probe := []rune(message.NewPrinter(tag).Sprintf("%v",
		number.Decimal(1234567.5, number.MinFractionDigits(1), number.MaxFractionDigits(1))))

	first, last := -1, -1
	for i, r := range probe {
		if unicode.IsDigit(r) {
			if first < 0 {
				first = i
			}
			last = i
		}
	}
	if first < 0 || last < 1 {
		return out
	}
	if r := probe[last-1]; !unicode.IsDigit(r) {
		out.Decimal = r
	}
	if first+1 < len(probe) {
		if r := probe[first+1]; !unicode.IsDigit(r) && r != out.Decimal {
			out.Group = r
		}
	}
	if out.Decimal == out.Group {
		return domain.DefaultSymbols()
	}
	return out
}

var _ domain.FormatterContext = (*Context)(nil)
