package types

// Symbols are the locale dependent characters used when formatting numbers.
type Symbols struct {
	Decimal rune
	Group   rune
	Percent rune
	Minus   rune
}

// DefaultSymbols returns the symbols used by English locales.
func DefaultSymbols() Symbols {
	return Symbols{Decimal: '.', Group: ',', Percent: '%', Minus: '-'}
}
