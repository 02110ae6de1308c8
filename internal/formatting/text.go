package formatting

import (
	"errors"
	"strings"

	"sheetfmt/internal/domain"
)

// textFormatter substitutes the value's text for every '@'.
type textFormatter struct {
	tokens []token
}

func parseText(pattern string) (patternFormatter, error) {
	if pattern == "" {
		return nil, errors.New("empty text pattern")
	}
	s := newScanner(pattern)
	var tokens []token
	for !s.done() {
		if s.peek() == '@' {
			tokens = append(tokens, token{kind: kindText, text: s.take(1)})
			continue
		}
		t, err := s.literal()
		if err != nil {
			return nil, err
		}
		tokens = append(tokens, t)
	}
	return &textFormatter{tokens: tokens}, nil
}

func (f *textFormatter) Format(_ domain.FormatterContext, value any) (string, error) {
	text := toText(value)
	var b strings.Builder
	for _, t := range f.tokens {
		if t.kind == kindText {
			b.WriteString(text)
			continue
		}
		b.WriteString(t.value())
	}
	return b.String(), nil
}

func (f *textFormatter) TextComponents(domain.FormatterContext) []domain.TextComponent {
	return textComponents(f.tokens)
}

func (f *textFormatter) next() *domain.TextComponent {
	if present(f.tokens)[kindText] {
		return nil
	}
	return &domain.TextComponent{
		Alternatives: []domain.TextComponentAlternative{{Label: "@", Text: "@"}},
	}
}
