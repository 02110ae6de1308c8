package interfaces

import (
	"context"

	domaintypes "sheetfmt/internal/domain/types"
)

// FormatterClient is how the CLI talks to a running server, all with context.
type FormatterClient interface {
	Infos(ctx context.Context) ([]domaintypes.Info, error)
	Info(ctx context.Context, name domaintypes.FormatterName) (domaintypes.Info, error)
	Edit(ctx context.Context, selector string) (domaintypes.Edit, error)
	Format(
		ctx context.Context,
		requests []domaintypes.FormatRequest,
	) ([]domaintypes.FormattedValue, error)
	Menu(ctx context.Context) (domaintypes.MenuList, error)
	Samples(ctx context.Context, name domaintypes.FormatterName) ([]domaintypes.Sample, error)
	TextComponents(
		ctx context.Context,
		selector domaintypes.Selector,
	) ([]domaintypes.TextComponent, error)
	NextTextComponent(
		ctx context.Context,
		selector domaintypes.Selector,
	) (*domaintypes.TextComponent, error)
}
