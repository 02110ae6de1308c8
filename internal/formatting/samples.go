package formatting

import (
	"golang.org/x/text/language"

	"sheetfmt/internal/domain"
)

// sampleNumber is formatted by the number and general samples.
const sampleNumber = 1234.5

type sampleSpec struct {
	label   string
	pattern string
	value   any
}

// monthFirst reports whether the locale writes the month before the day.
func monthFirst(tag language.Tag) bool {
	region, _ := tag.Region()
	switch region.String() {
	case "US", "PH", "FM", "MH", "PW", "AS", "GU", "MP", "PR", "UM", "VI":
		return true
	}
	return false
}

type dateStyles struct{ short, medium, long, full string }

func datePatterns(tag language.Tag) dateStyles {
	if monthFirst(tag) {
		return dateStyles{
			short:  "m/d/yy",
			medium: "mmm d, yyyy",
			long:   "mmmm d, yyyy",
			full:   "dddd, mmmm d, yyyy",
		}
	}
	return dateStyles{
		short:  "d/m/yy",
		medium: "d mmm yyyy",
		long:   "d mmmm yyyy",
		full:   "dddd, d mmmm yyyy",
	}
}

func timePatterns(tag language.Tag) (short, long string) {
	if monthFirst(tag) {
		return "h:mm AM/PM", "h:mm:ss AM/PM"
	}
	return "hh:mm", "hh:mm:ss"
}

func dateSamples(ctx domain.FormatterContext) []sampleSpec {
	p, now := datePatterns(ctx.Locale()), ctx.Now()
	return []sampleSpec{
		{label: "Short", pattern: p.short, value: now},
		{label: "Medium", pattern: p.medium, value: now},
		{label: "Long", pattern: p.long, value: now},
		{label: "Full", pattern: p.full, value: now},
	}
}

func timeSamples(ctx domain.FormatterContext) []sampleSpec {
	short, long := timePatterns(ctx.Locale())
	now := ctx.Now()
	return []sampleSpec{
		{label: "Short", pattern: short, value: now},
		{label: "Long", pattern: long, value: now},
	}
}

func dateTimeSamples(ctx domain.FormatterContext) []sampleSpec {
	d := datePatterns(ctx.Locale())
	short, long := timePatterns(ctx.Locale())
	now := ctx.Now()
	return []sampleSpec{
		{label: "Short", pattern: d.short + " " + short, value: now},
		{label: "Medium", pattern: d.medium + " " + short, value: now},
		{label: "Long", pattern: d.long + " " + long, value: now},
		{label: "Full", pattern: d.full + " " + long, value: now},
	}
}

func numberSamples(domain.FormatterContext) []sampleSpec {
	return []sampleSpec{
		{label: "Number", pattern: "#,##0.###", value: sampleNumber},
		{label: "Integer", pattern: "#,##0", value: sampleNumber},
		{label: "Percent", pattern: "#,##0%", value: sampleNumber},
		{label: "Currency", pattern: "$#,##0.00", value: sampleNumber},
	}
}

func textSamples(domain.FormatterContext) []sampleSpec {
	return []sampleSpec{{label: "Default", pattern: "@", value: "Hello"}}
}

func generalSamples(domain.FormatterContext) []sampleSpec {
	return []sampleSpec{{label: "General", pattern: "", value: sampleNumber}}
}
