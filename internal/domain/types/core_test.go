package types_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"sheetfmt/internal/domain/types"
)

func TestParseSelector(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    types.Selector
		wantErr string
	}{
		{name: "name only", in: "general", want: types.Selector{Name: "general"}},
		{
			name: "name and text",
			in:   "date-format-pattern dd/mm/yyyy",
			want: types.Selector{Name: "date-format-pattern", Text: "dd/mm/yyyy"},
		},
		{
			name: "text keeps inner spaces",
			in:   "  text-format-pattern  @ \"x\"  ",
			want: types.Selector{Name: "text-format-pattern", Text: " @ \"x\""},
		},
		{name: "empty", in: "   ", wantErr: "empty selector"},
		{name: "leading digit", in: "1abc", wantErr: `invalid character '1' at 0`},
		{name: "bad char", in: "date_format", wantErr: `invalid character '_' at 4`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := types.ParseSelector(tt.in)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSelector_String(t *testing.T) {
	assert.Equal(t, "general", types.NewSelector("general", "").String())
	assert.Equal(t, "number-format-pattern #,##0", types.NewSelector("number-format-pattern", "#,##0").String())
}

func TestSelector_JSONIsString(t *testing.T) {
	in := types.MenuEntry{Label: "Short", Selector: types.NewSelector("date-format-pattern", "d/m/yy")}

	b, err := json.Marshal(in)
	require.NoError(t, err)
	assert.JSONEq(t, `{"label":"Short","selector":"date-format-pattern d/m/yy"}`, string(b))

	var out types.MenuEntry
	require.NoError(t, json.Unmarshal(b, &out))
	assert.Equal(t, in, out)
}

func TestSelector_UnmarshalRejectsNonString(t *testing.T) {
	var s types.Selector
	err := json.Unmarshal([]byte(`{"name":"general"}`), &s)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "selector must be a JSON string")
}

func TestParseFormatterName_TooLong(t *testing.T) {
	long := make([]byte, 256)
	for i := range long {
		long[i] = 'a'
	}
	_, err := types.ParseFormatterName(string(long))
	require.Error(t, err)
}

func TestEdit_EmptySlicesMarshalAsArrays(t *testing.T) {
	b, err := json.Marshal(types.Edit{
		Message:        "empty selector",
		TextComponents: []types.TextComponent{},
		Samples:        []types.Sample{},
	})
	require.NoError(t, err)
	assert.JSONEq(t, `{"message":"empty selector","text_components":[],"samples":[]}`, string(b))
}
