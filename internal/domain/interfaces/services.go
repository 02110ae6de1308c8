package interfaces

import (
	domaintypes "sheetfmt/internal/domain/types"
)

// FormatterService is the façade the HTTP handlers delegate to.
type FormatterService interface {
	Infos() []domaintypes.Info
	Info(name domaintypes.FormatterName) (domaintypes.Info, error)
	Edit(ctx FormatterContext, selector string) domaintypes.Edit
	Format(ctx FormatterContext, requests []domaintypes.FormatRequest) []domaintypes.FormattedValue
	Menu(ctx FormatterContext) (domaintypes.MenuList, error)
	TextComponents(
		ctx FormatterContext,
		selector domaintypes.Selector,
	) ([]domaintypes.TextComponent, error)
	NextTextComponent(selector domaintypes.Selector) (*domaintypes.TextComponent, error)
	Samples(ctx FormatterContext, name domaintypes.FormatterName) ([]domaintypes.Sample, error)
}
