package domain

import (
	interfaces "sheetfmt/internal/domain/interfaces"
	types "sheetfmt/internal/domain/types"
)

// Type aliases expose domain types from the types subpackage for compact imports.
type (
	FormatterName            = types.FormatterName
	Selector                 = types.Selector
	FormatRequest            = types.FormatRequest
	FormattedValue           = types.FormattedValue
	MenuEntry                = types.MenuEntry
	MenuList                 = types.MenuList
	Info                     = types.Info
	Sample                   = types.Sample
	TextComponent            = types.TextComponent
	TextComponentAlternative = types.TextComponentAlternative
	Edit                     = types.Edit
	Symbols                  = types.Symbols
)

// Interface aliases expose domain interfaces from the interfaces subpackage.
type (
	FormatterContext  = interfaces.FormatterContext
	Formatter         = interfaces.Formatter
	FormatterProvider = interfaces.FormatterProvider
	FormatterService  = interfaces.FormatterService
	FormatterClient   = interfaces.FormatterClient
	PresetStore       = interfaces.PresetStore
)

// Function re-exports keep call sites on the domain package.
var (
	ParseSelector      = types.ParseSelector
	ParseFormatterName = types.ParseFormatterName
	NewSelector        = types.NewSelector
	DefaultSymbols     = types.DefaultSymbols
	ErrEmptySelector   = types.ErrEmptySelector
)
