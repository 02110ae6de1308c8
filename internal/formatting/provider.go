package formatting

import (
	"strings"

	"golang.org/x/text/language"

	"sheetfmt/internal/domain"
)

// Names of the built-in formatters.
const (
	NameText     domain.FormatterName = "text-format-pattern"
	NameNumber   domain.FormatterName = "number-format-pattern"
	NameDate     domain.FormatterName = "date-format-pattern"
	NameTime     domain.FormatterName = "time-format-pattern"
	NameDateTime domain.FormatterName = "date-time-format-pattern"
	NameGeneral  domain.FormatterName = "general"
)

// InfoPath is the path under which formatter infos are published.
const InfoPath = "/api/formatter/"

// patternFormatter is a formatter that also knows what may follow its pattern.
type patternFormatter interface {
	domain.Formatter
	next() *domain.TextComponent
}

type definition struct {
	parse   func(pattern string) (patternFormatter, error)
	samples func(ctx domain.FormatterContext) []sampleSpec
}

// Provider is the built-in FormatterProvider.
type Provider struct {
	publicURL   string
	locales     []language.Tag
	names       []domain.FormatterName
	definitions map[domain.FormatterName]definition
}

// NewProvider returns a provider whose infos link below publicURL and which
// formats for the given locales (the first one is preferred). An empty
// locales list defaults to English.
func NewProvider(publicURL string, locales ...language.Tag) *Provider {
	if len(locales) == 0 {
		locales = []language.Tag{language.English}
	}
	p := &Provider{
		publicURL:   strings.TrimSuffix(publicURL, "/"),
		locales:     locales,
		definitions: make(map[domain.FormatterName]definition),
	}
	p.register(NameDate, dateTimeParser(modeDate), dateSamples)
	p.register(NameDateTime, dateTimeParser(modeDateTime), dateTimeSamples)
	p.register(NameGeneral, parseGeneral, generalSamples)
	p.register(NameNumber, parseNumber, numberSamples)
	p.register(NameText, parseText, textSamples)
	p.register(NameTime, dateTimeParser(modeTime), timeSamples)
	return p
}

func (p *Provider) register(
	name domain.FormatterName,
	parse func(string) (patternFormatter, error),
	samples func(domain.FormatterContext) []sampleSpec,
) {
	p.names = append(p.names, name)
	p.definitions[name] = definition{parse: parse, samples: samples}
}

// Infos lists every formatter in registration order.
func (p *Provider) Infos() []domain.Info {
	out := make([]domain.Info, 0, len(p.names))
	for _, n := range p.names {
		out = append(out, domain.Info{URL: p.publicURL + InfoPath + string(n), Name: n})
	}
	return out
}

// Locales lists the supported locales, preferred first.
func (p *Provider) Locales() []language.Tag {
	out := make([]language.Tag, len(p.locales))
	copy(out, p.locales)
	return out
}

// Formatter parses the selector's pattern with the named formatter.
func (p *Provider) Formatter(selector domain.Selector, _ domain.FormatterContext) (domain.Formatter, error) {
	return p.parse("provider.formatter", selector)
}

// NextTextComponent returns what may be appended to the selector's pattern.
func (p *Provider) NextTextComponent(selector domain.Selector) (*domain.TextComponent, error) {
	f, err := p.parse("provider.next_text_component", selector)
	if err != nil {
		return nil, err
	}
	return f.next(), nil
}

// Samples formats the named formatter's sample patterns with ctx.
func (p *Provider) Samples(name domain.FormatterName, ctx domain.FormatterContext) ([]domain.Sample, error) {
	def, err := p.definition("provider.samples", name)
	if err != nil {
		return nil, err
	}
	specs := def.samples(ctx)
	out := make([]domain.Sample, 0, len(specs))
	for _, spec := range specs {
		f, err := def.parse(spec.pattern)
		if err != nil {
			return nil, &domain.OpError{Op: "provider.samples", Kind: domain.KindInvalid, Err: err}
		}
		value, err := f.Format(ctx, spec.value)
		if err != nil {
			return nil, &domain.OpError{Op: "provider.samples", Kind: domain.KindInvalid, Err: err}
		}
		out = append(out, domain.Sample{
			Label:    spec.label,
			Selector: domain.NewSelector(name, spec.pattern),
			Value:    value,
		})
	}
	return out, nil
}

func (p *Provider) definition(op string, name domain.FormatterName) (definition, error) {
	def, ok := p.definitions[name]
	if !ok {
		return definition{}, domain.Errorf(op, domain.KindNotFound, "unknown formatter %q", name)
	}
	return def, nil
}

func (p *Provider) parse(op string, selector domain.Selector) (patternFormatter, error) {
	def, err := p.definition(op, selector.Name)
	if err != nil {
		return nil, err
	}
	f, err := def.parse(selector.Text)
	if err != nil {
		return nil, &domain.OpError{Op: op, Kind: domain.KindInvalid, Err: err}
	}
	return f, nil
}

var _ domain.FormatterProvider = (*Provider)(nil)
