package detail

// Cell is one column of a TextRow with its flex weight.
type Cell struct {
	Text     string `json:"text"`
	Flex     int    `json:"flex"`
	Subtitle bool   `json:"subtitle,omitempty"`
}

// TextRow is a labeled two-column line of text.
type TextRow struct {
	Label Cell `json:"label"`
	Value Cell `json:"value"`
}

// Row builds a TextRow with the usual 1:2 split.
func Row(label, value string) TextRow {
	return TextRow{Label: Cell{Text: label, Flex: 1}, Value: Cell{Text: value, Flex: 2}}
}

// WideRow builds a TextRow with a 1:4 split.
func WideRow(label, value string) TextRow {
	return TextRow{Label: Cell{Text: label, Flex: 1}, Value: Cell{Text: value, Flex: 4}}
}

// SubtitleRow is an unlabeled continuation line in the subtitle style.
func SubtitleRow(value string) TextRow {
	r := Row("", value)
	r.Value.Subtitle = true
	return r
}

// Separator is a thin horizontal rule between sections.
type Separator struct {
	Color  string  `json:"color"`
	Height float64 `json:"height"`
}

// DefaultSeparator matches the app's standard rule.
var DefaultSeparator = Separator{Color: "#777", Height: 1.4}

// Section is a group of rows, optionally preceded by a separator.
type Section struct {
	Name      string     `json:"name"`
	Separator *Separator `json:"separator,omitempty"`
	Rows      []TextRow  `json:"rows"`
}

func separated(name string, rows ...TextRow) Section {
	sep := DefaultSeparator
	return Section{Name: name, Separator: &sep, Rows: rows}
}
