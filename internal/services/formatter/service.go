package formatter

import (
	"go.uber.org/zap"

	"sheetfmt/internal/domain"
)

// Service delegates formatter requests to a provider.
type Service struct {
	provider domain.FormatterProvider
	presets  domain.PresetStore
	log      *zap.Logger
}

// New returns a service backed by provider. presets may be nil.
func New(provider domain.FormatterProvider, presets domain.PresetStore, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{provider: provider, presets: presets, log: log}
}

// Infos lists the provider's formatters.
func (s *Service) Infos() []domain.Info { return s.provider.Infos() }

// Info returns the info for name.
func (s *Service) Info(name domain.FormatterName) (domain.Info, error) {
	for _, info := range s.provider.Infos() {
		if info.Name == name {
			return info, nil
		}
	}
	return domain.Info{}, domain.Errorf("formatter.info", domain.KindNotFound, "unknown formatter %q", name)
}

// Edit parses text and gathers everything an editor shows for it.
//
// It never fails: the first error ends the chain and its text becomes the
// message, keeping whatever was computed before.
func (s *Service) Edit(ctx domain.FormatterContext, text string) domain.Edit {
	edit := domain.Edit{
		TextComponents: []domain.TextComponent{},
		Samples:        []domain.Sample{},
	}

	selector, err := domain.ParseSelector(text)
	if err != nil {
		edit.Message = err.Error()
		return edit
	}
	edit.Selector = &selector

	formatter, err := s.provider.Formatter(selector, ctx)
	if err != nil {
		edit.Message = err.Error()
		return edit
	}
	edit.TextComponents = nonNil(formatter.TextComponents(ctx))

	edit.Next, err = s.provider.NextTextComponent(selector)
	if err != nil {
		edit.Message = err.Error()
		return edit
	}

	samples, err := s.provider.Samples(selector.Name, ctx)
	if err != nil {
		edit.Message = err.Error()
		return edit
	}
	edit.Samples = nonNil(samples)
	return edit
}

// Format formats each request independently; result i belongs to request i.
func (s *Service) Format(ctx domain.FormatterContext, requests []domain.FormatRequest) []domain.FormattedValue {
	out := make([]domain.FormattedValue, len(requests))
	formatters := make(map[domain.Selector]domain.Formatter)

	for i, req := range requests {
		f, ok := formatters[req.Selector]
		if !ok {
			var err error
			f, err = s.provider.Formatter(req.Selector, ctx)
			if err != nil {
				out[i].Error = err.Error()
				continue
			}
			formatters[req.Selector] = f
		}
		text, err := f.Format(ctx, req.Value)
		if err != nil {
			s.log.Debug("format failed",
				zap.Stringer("selector", req.Selector),
				zap.Error(err))
			out[i].Error = err.Error()
			continue
		}
		out[i].Text = text
	}
	return out
}

// Menu lists one entry per provider sample, followed by the stored presets.
func (s *Service) Menu(ctx domain.FormatterContext) (domain.MenuList, error) {
	menu := domain.MenuList{}
	for _, info := range s.provider.Infos() {
		samples, err := s.provider.Samples(info.Name, ctx)
		if err != nil {
			return nil, err
		}
		for _, sample := range samples {
			menu = append(menu, domain.MenuEntry{Label: sample.Label, Selector: sample.Selector})
		}
	}
	if s.presets == nil {
		return menu, nil
	}
	presets, err := s.presets.ListPresets()
	if err != nil {
		return nil, err
	}
	return append(menu, presets...), nil
}

// TextComponents returns the structural tokens of the selector's pattern.
func (s *Service) TextComponents(
	ctx domain.FormatterContext,
	selector domain.Selector,
) ([]domain.TextComponent, error) {
	f, err := s.provider.Formatter(selector, ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(f.TextComponents(ctx)), nil
}

// NextTextComponent returns what may follow the selector's pattern, or nil.
func (s *Service) NextTextComponent(selector domain.Selector) (*domain.TextComponent, error) {
	return s.provider.NextTextComponent(selector)
}

// Samples returns the provider's samples for name.
func (s *Service) Samples(ctx domain.FormatterContext, name domain.FormatterName) ([]domain.Sample, error) {
	samples, err := s.provider.Samples(name, ctx)
	if err != nil {
		return nil, err
	}
	return nonNil(samples), nil
}

func nonNil[T any](s []T) []T {
	if s == nil {
		return []T{}
	}
	return s
}

// Compile-time assertion that Service implements domain.FormatterService.
var _ domain.FormatterService = (*Service)(nil)
