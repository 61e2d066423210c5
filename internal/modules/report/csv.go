package report

import "strings"

// Table is the export-neutral shape both formatters consume.
type Table struct {
	Columns []string
	Rows    [][]string
}

// Exports use semicolon-delimited CSV with a UTF-8 BOM so spreadsheet
// applications configured for pt-BR locales open them correctly.
const (
	csvBOM       = "\uFEFF"
	csvDelimiter = ";"
)

func needsQuoting(s string) bool {
	return strings.ContainsAny(s, csvDelimiter+"\"\n\r")
}

func escapeField(s string) string {
	if !needsQuoting(s) {
		return s
	}
	return "\"" + strings.ReplaceAll(s, "\"", "\"\"") + "\""
}

// ToCSV renders the table as semicolon-delimited CSV, BOM first.
func ToCSV(t Table) string {
	var b strings.Builder
	b.WriteString(csvBOM)

	for i, col := range t.Columns {
		if i > 0 {
			b.WriteString(csvDelimiter)
		}
		b.WriteString(escapeField(col))
	}
	b.WriteString("\n")

	for _, row := range t.Rows {
		for i, field := range row {
			if i > 0 {
				b.WriteString(csvDelimiter)
			}
			b.WriteString(escapeField(field))
		}
		b.WriteString("\n")
	}
	return b.String()
}
