package formatting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

var fixedNow = time.Date(2024, time.January, 31, 15, 4, 5, 0, time.UTC)

func testContext(tag string) *Context {
	return NewContext(language.MustParse(tag), func() time.Time { return fixedNow })
}

func TestNumberFormatter_Format(t *testing.T) {
	tests := []struct {
		pattern string
		value   any
		want    string
	}{
		{"#,##0.00", 1234.5, "1,234.50"},
		{"0", 1234.5, "1235"},
		{"000", 7.0, "007"},
		{"#.##", 0.5, ".5"},
		{"0.0#", 3.0, "3.0"},
		{"0.0#", 3.14159, "3.14"},
		{"0%", 0.25, "25%"},
		{"#,##0", 1234567.0, "1,234,567"},
		{"$#,##0.00", -1234.5, "-$1,234.50"},
		{"0;(0)", -5.0, "(5)"},
		{"0;(0)", 5.0, "5"},
		{`0;(0);"zero"`, 0.0, "zero"},
		{"0.00", -0.001, "0.00"},
		{`"$"0`, 5.0, "$5"},
		{"0.00", "12.5", "12.50"},
		{"0", true, "1"},
		{"000-0000", 1234567.0, "123-4567"},
		{`0"-"00`, 123.0, "1-23"},
		{`00\/00`, 1234.0, "12/34"},
		{"0-00", 12345.0, "123-45"},
		{"?? 0", 5.0, "   5"},
		{"0.??", 1.5, "1.5 "},
		{"0.?0", 1.0, "1.00"},
	}
	ctx := testContext("en-AU")
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			f, err := parseNumber(tt.pattern)
			require.NoError(t, err)
			got, err := f.Format(ctx, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNumberFormatter_LocaleSymbols(t *testing.T) {
	f, err := parseNumber("#,##0.00")
	require.NoError(t, err)

	got, err := f.Format(testContext("de"), 1234.5)
	require.NoError(t, err)
	assert.Equal(t, "1.234,50", got)
}

func TestNumberFormatter_ParseErrors(t *testing.T) {
	tests := map[string]string{
		"":        "empty number pattern",
		"0..0":    "duplicate decimal point at 2",
		"0;0;0;0": "too many sections",
		"0abc":    "invalid character 'a' at 1",
		"0.0,0":   "unexpected ',' after decimal point at 3",
		`"0`:      "unterminated quoted text at 0",
	}
	for pattern, want := range tests {
		t.Run(pattern, func(t *testing.T) {
			_, err := parseNumber(pattern)
			require.Error(t, err)
			assert.Contains(t, err.Error(), want)
		})
	}
}

func TestNumberFormatter_RejectsNonNumbers(t *testing.T) {
	f, err := parseNumber("0")
	require.NoError(t, err)

	_, err = f.Format(testContext("en"), "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `cannot convert "abc" to number`)
}

func TestNumberFormatter_Next(t *testing.T) {
	for pattern, want := range map[string][]string{
		`"x"`:  {"#,##0", "0", "#"},
		"0":    {".0", ".00", ".##"},
		"0.00": {"%"},
	} {
		f, err := parseNumber(pattern)
		require.NoError(t, err)
		next := f.next()
		require.NotNil(t, next, pattern)
		var got []string
		for _, a := range next.Alternatives {
			got = append(got, a.Text)
		}
		assert.Equal(t, want, got, pattern)
	}

	f, err := parseNumber("0.00%")
	require.NoError(t, err)
	assert.Nil(t, f.next())
}

func TestSymbolsFor(t *testing.T) {
	en := SymbolsFor(language.English)
	assert.Equal(t, '.', en.Decimal)
	assert.Equal(t, ',', en.Group)

	de := SymbolsFor(language.German)
	assert.Equal(t, ',', de.Decimal)
	assert.Equal(t, '.', de.Group)
}
