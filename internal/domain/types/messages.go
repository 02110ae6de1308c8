package types

// FormatRequest is one item of a bulk format call.
type FormatRequest struct {
	Selector Selector `json:"selector"`
	Value    any      `json:"value"`
}

// FormattedValue is the result for the FormatRequest at the same index.
type FormattedValue struct {
	Text  string `json:"text"`
	Error string `json:"error,omitempty"`
}

// MenuEntry is a labelled selector shown in a formatter menu.
type MenuEntry struct {
	Label    string   `json:"label" yaml:"label"`
	Selector Selector `json:"selector" yaml:"selector"`
}

// MenuList is the full set of menu entries offered to a client.
type MenuList []MenuEntry

// Info describes one available formatter.
type Info struct {
	URL  string        `json:"url"`
	Name FormatterName `json:"name"`
}

// Sample is a selector together with a value it formatted.
type Sample struct {
	Label    string   `json:"label"`
	Selector Selector `json:"selector"`
	Value    string   `json:"value"`
}

// TextComponentAlternative is a replacement offered for a text component.
type TextComponentAlternative struct {
	Label string `json:"label"`
	Text  string `json:"text"`
}

// TextComponent is one structural token of a pattern.
type TextComponent struct {
	Label        string                     `json:"label"`
	Text         string                     `json:"text"`
	Alternatives []TextComponentAlternative `json:"alternatives"`
}

// Edit is everything an editor needs after the user changed a selector.
//
// When any step fails Message holds the error text and the fields computed
// after that step are left empty.
type Edit struct {
	Selector       *Selector       `json:"selector,omitempty"`
	Message        string          `json:"message"`
	TextComponents []TextComponent `json:"text_components"`
	Next           *TextComponent  `json:"next,omitempty"`
	Samples        []Sample        `json:"samples"`
}
