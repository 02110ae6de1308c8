package formatting

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetfmt/internal/domain"
)

func TestTextFormatter_Format(t *testing.T) {
	tests := []struct {
		pattern string
		value   any
		want    string
	}{
		{"@", "Hello", "Hello"},
		{`"Name: "@`, "Hello", "Name: Hello"},
		{"@ @", "Hi", "Hi Hi"},
		{"@", 12.5, "12.5"},
		{"@", true, "TRUE"},
		{"[@]", nil, "[]"},
		{`\@`, "ignored", "@"},
	}
	ctx := testContext("en")
	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			f, err := parseText(tt.pattern)
			require.NoError(t, err)
			got, err := f.Format(ctx, tt.value)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextFormatter_RejectsEmptyPattern(t *testing.T) {
	_, err := parseText("")
	assert.EqualError(t, err, "empty text pattern")
}

func TestTextFormatter_Next(t *testing.T) {
	f, err := parseText(`"prefix "`)
	require.NoError(t, err)
	next := f.next()
	require.NotNil(t, next)
	assert.Equal(t, []string{"@"}, altTexts(next.Alternatives))

	f, err = parseText("@")
	require.NoError(t, err)
	assert.Nil(t, f.next())
}

func TestGeneralFormatter(t *testing.T) {
	f, err := parseGeneral("")
	require.NoError(t, err)

	ctx := testContext("en")
	got, err := f.Format(ctx, 1234.5)
	require.NoError(t, err)
	assert.Equal(t, "1,234.5", got)

	got, err = f.Format(ctx, "text stays")
	require.NoError(t, err)
	assert.Equal(t, "text stays", got)

	got, err = f.Format(ctx, false)
	require.NoError(t, err)
	assert.Equal(t, "FALSE", got)

	assert.Empty(t, f.TextComponents(ctx))
	assert.Nil(t, f.next())

	_, err = parseGeneral("0.00")
	assert.ErrorIs(t, err, errGeneralPattern)
}

func altTexts(alts []domain.TextComponentAlternative) []string {
	out := make([]string, 0, len(alts))
	for _, a := range alts {
		out = append(out, a.Text)
	}
	return out
}
