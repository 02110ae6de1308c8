package formatting

import (
	"encoding/json"
	"errors"
	"time"

	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"sheetfmt/internal/domain"
)

// generalMaxFractionDigits matches the precision a spreadsheet shows for
// the General format.
const generalMaxFractionDigits = 9

var errGeneralPattern = errors.New("general formatter does not accept a pattern")

// generalFormatter renders values without a pattern, using the locale's
// number conventions.
type generalFormatter struct{}

func parseGeneral(pattern string) (patternFormatter, error) {
	if pattern != "" {
		return nil, errGeneralPattern
	}
	return generalFormatter{}, nil
}

func (generalFormatter) Format(ctx domain.FormatterContext, value any) (string, error) {
	switch v := value.(type) {
	case float64, float32, int, int32, int64, json.Number:
		n, err := toNumber(v)
		if err != nil {
			return "", err
		}
		p := message.NewPrinter(ctx.Locale())
		return p.Sprintf("%v", number.Decimal(n, number.MaxFractionDigits(generalMaxFractionDigits))), nil
	case time.Time:
		return v.Format("2006-01-02 15:04:05"), nil
	default:
		return toText(v), nil
	}
}

func (generalFormatter) TextComponents(domain.FormatterContext) []domain.TextComponent {
	return []domain.TextComponent{}
}

func (generalFormatter) next() *domain.TextComponent { return nil }
