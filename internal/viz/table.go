package viz

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/san-kum/dimcalc/internal/calc"
	"github.com/san-kum/dimcalc/internal/storage"
)

// ResultTable renders the inputs and output of one evaluation.
func ResultTable(res calc.Result, precision int) string {
	var b strings.Builder
	b.WriteString(Title.Render(res.Formula) + "\n")

	labelWidth := len(res.Formula)
	for _, in := range res.Inputs {
		labelWidth = max(labelWidth, len(in.Name))
	}

	for i, in := range res.Inputs {
		v := 0.0
		if i < len(res.Args) {
			v = res.Args[i]
		}
		b.WriteString(fmt.Sprintf("%s  %s\n",
			MetricLabel.Render(pad(in.Name, labelWidth)),
			FormatValue(v, in.Quantity.Unit(), precision)))
	}

	out := FormatValue(res.Value, res.Unit, precision)
	if res.Finite() {
		out = MetricValue.Render(out)
	} else {
		out = Warning.Render(out)
	}
	b.WriteString(fmt.Sprintf("%s  %s", Selected.Render(pad("=", labelWidth)), out))

	return Panel.Render(b.String())
}

// FormulaTable lists formulas with their signature.
func FormulaTable(formulas []calc.Formula) string {
	nameWidth := 0
	for _, f := range formulas {
		nameWidth = max(nameWidth, len(f.Name))
	}

	rows := make([]string, 0, len(formulas)+1)
	rows = append(rows, HeaderStyle.Render(fmt.Sprintf("%s  %s", pad("FORMULA", nameWidth), "SIGNATURE")))
	for _, f := range formulas {
		rows = append(rows, fmt.Sprintf("%s  %s  %s",
			Selected.Render(pad(f.Name, nameWidth)),
			Signature(f),
			Subtle.Render(f.Description)))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

// Signature renders "(mass g, speed m/s) -> J".
func Signature(f calc.Formula) string {
	parts := make([]string, len(f.Inputs))
	for i, in := range f.Inputs {
		parts[i] = strings.TrimSpace(in.Name + " " + in.Quantity.Unit())
	}
	return fmt.Sprintf("(%s) -> %s", strings.Join(parts, ", "), f.OutputUnit())
}

// RecordTable lists saved history records.
func RecordTable(records []storage.Record, precision int) string {
	rows := make([]string, 0, len(records)+1)
	rows = append(rows, HeaderStyle.Render(fmt.Sprintf("%-36s  %-5s  %-19s  %-24s  %s", "ID", "KIND", "TIME", "FORMULA", "RESULT")))
	for _, rec := range records {
		result := ""
		switch {
		case rec.Value != nil:
			result = FormatValue(float64(*rec.Value), rec.Unit, precision)
		case rec.Kind == storage.KindSweep:
			result = fmt.Sprintf("%d samples over %s", rec.Samples, rec.Vary)
		}
		rows = append(rows, fmt.Sprintf("%-36s  %-5s  %-19s  %-24s  %s",
			rec.ID, rec.Kind, rec.Timestamp.Format("2006-01-02 15:04:05"), rec.Formula, result))
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func pad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}
