package report

import (
	"html"
	"sort"
	"strings"
)

// ToPrintableHTML renders a self-contained document meant for the browser's
// print-to-PDF flow: inline styles only, A4 landscape page rules, header,
// one row per record and an optional totals block.
func ToPrintableHTML(t Table, title, subtitle string, totals map[string]string) string {
	var b strings.Builder

	b.WriteString("<!DOCTYPE html>\n<html lang=\"pt-BR\">\n<head>\n")
	b.WriteString("<meta charset=\"utf-8\">\n")
	b.WriteString("<title>" + html.EscapeString(title) + "</title>\n")
	b.WriteString(`<style>
@page { size: A4 landscape; margin: 12mm; }
body { font-family: Arial, Helvetica, sans-serif; font-size: 11px; color: #222; }
h1 { font-size: 16px; margin: 0 0 2px 0; }
h2 { font-size: 12px; font-weight: normal; color: #666; margin: 0 0 12px 0; }
table { width: 100%; border-collapse: collapse; }
th, td { border: 1px solid #999; padding: 3px 6px; text-align: left; }
th { background: #eee; }
tr:nth-child(even) td { background: #f7f7f7; }
.totals { margin-top: 10px; font-size: 12px; }
.totals span { margin-right: 18px; }
@media print { .no-print { display: none; } }
</style>
`)
	b.WriteString("</head>\n<body onload=\"window.print()\">\n")

	b.WriteString("<h1>" + html.EscapeString(title) + "</h1>\n")
	if subtitle != "" {
		b.WriteString("<h2>" + html.EscapeString(subtitle) + "</h2>\n")
	}

	b.WriteString("<table>\n<thead><tr>")
	for _, col := range t.Columns {
		b.WriteString("<th>" + html.EscapeString(col) + "</th>")
	}
	b.WriteString("</tr></thead>\n<tbody>\n")

	for _, row := range t.Rows {
		b.WriteString("<tr>")
		for _, field := range row {
			b.WriteString("<td>" + html.EscapeString(field) + "</td>")
		}
		b.WriteString("</tr>\n")
	}
	b.WriteString("</tbody>\n</table>\n")

	if len(totals) > 0 {
		b.WriteString("<div class=\"totals\">")
		for _, label := range sortedKeys(totals) {
			b.WriteString("<span><strong>" + html.EscapeString(label) + ":</strong> " +
				html.EscapeString(totals[label]) + "</span>")
		}
		b.WriteString("</div>\n")
	}

	b.WriteString("</body>\n</html>\n")
	return b.String()
}

func sortedKeys(m map[string]string) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
