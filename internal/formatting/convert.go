package formatting

import (
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// serialEpoch is day zero of spreadsheet serial date numbers.
var serialEpoch = time.Date(1899, time.December, 30, 0, 0, 0, 0, time.UTC)

// dateLayouts are tried in order when a string is converted to a date/time.
var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02 15:04",
	"2006-01-02",
	"15:04:05.999999999",
	"15:04:05",
	"15:04",
}

// toNumber converts JSON-decoded values and common Go numerics to float64.
func toNumber(v any) (float64, error) {
	switch x := v.(type) {
	case float64:
		return x, nil
	case float32:
		return float64(x), nil
	case int:
		return float64(x), nil
	case int32:
		return float64(x), nil
	case int64:
		return float64(x), nil
	case json.Number:
		return x.Float64()
	case bool:
		if x {
			return 1, nil
		}
		return 0, nil
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		if err != nil {
			return 0, fmt.Errorf("cannot convert %q to number", x)
		}
		return f, nil
	default:
		return 0, fmt.Errorf("cannot convert %T to number", v)
	}
}

// toDateTime converts ISO strings, time.Time and serial numbers to a time.
func toDateTime(v any) (time.Time, error) {
	switch x := v.(type) {
	case time.Time:
		return x, nil
	case string:
		s := strings.TrimSpace(x)
		for _, layout := range dateLayouts {
			if t, err := time.Parse(layout, s); err == nil {
				return t, nil
			}
		}
		return time.Time{}, fmt.Errorf("cannot convert %q to date/time", x)
	case nil, bool:
		return time.Time{}, fmt.Errorf("cannot convert %T to date/time", v)
	default:
		n, err := toNumber(v)
		if err != nil {
			return time.Time{}, fmt.Errorf("cannot convert %T to date/time", v)
		}
		return fromSerial(n), nil
	}
}

// fromSerial converts a spreadsheet serial number to a time, rounded to the second.
func fromSerial(n float64) time.Time {
	days := math.Floor(n)
	secs := math.Round((n - days) * 24 * 60 * 60)
	return serialEpoch.AddDate(0, 0, int(days)).Add(time.Duration(secs) * time.Second)
}

// toText renders any value the way a spreadsheet cell shows it as text.
func toText(v any) string {
	switch x := v.(type) {
	case nil:
		return ""
	case string:
		return x
	case bool:
		if x {
			return "TRUE"
		}
		return "FALSE"
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	case json.Number:
		return x.String()
	case time.Time:
		return x.Format("2006-01-02T15:04:05")
	default:
		return fmt.Sprint(v)
	}
}
