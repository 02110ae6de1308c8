package interfaces

import (
	"time"

	"golang.org/x/text/language"

	domaintypes "sheetfmt/internal/domain/types"
)

// FormatterContext carries the request scoped environment a formatter needs.
type FormatterContext interface {
	Locale() language.Tag
	Now() time.Time
	Symbols() domaintypes.Symbols
}

// Formatter formats values for one parsed selector.
type Formatter interface {
	// Format renders value, or returns an error when value cannot be
	// converted to what the formatter expects.
	Format(ctx FormatterContext, value any) (string, error)
	// TextComponents lists the structural tokens of the pattern.
	TextComponents(ctx FormatterContext) []domaintypes.TextComponent
}

// FormatterProvider resolves selectors to formatters and knows what it offers.
type FormatterProvider interface {
	Infos() []domaintypes.Info
	Formatter(selector domaintypes.Selector, ctx FormatterContext) (Formatter, error)
	// NextTextComponent returns the component that may be appended to the
	// selector's pattern, or nil when the pattern is complete.
	NextTextComponent(selector domaintypes.Selector) (*domaintypes.TextComponent, error)
	Samples(name domaintypes.FormatterName, ctx FormatterContext) ([]domaintypes.Sample, error)
	// Locales lists the locales the provider can format for, preferred first.
	Locales() []language.Tag
}
