package display

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/fatih/color"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Format selects how rows are written.
type Format string

const (
	FormatTable Format = "table"
	FormatJSON  Format = "json"
)

// ParseFormat parses a format name, case-insensitively.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatTable, FormatJSON:
		return f, nil
	case "":
		return FormatTable, nil
	default:
		return "", fmt.Errorf("unknown output format %q (want table or json)", s)
	}
}

const (
	noCurrencies = "No currencies found with the given filters."
	noItems      = "No items found with the given filters."
)

var (
	currencyHeaders = []string{"Currency", "Chaos Value", "Pay Value", "Receive Value", "Pay Count", "Receive Count"}
	itemHeaders     = []string{"Item Name", "Base Type", "Chaos Value", "Divine Value", "Count", "Listings", "Level"}

	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	borderStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#D9DCCF", Dark: "#383838"})

	noticeColor  = color.New(color.FgRed)
	titleColor   = color.New(color.FgHiBlue)
	subjectColor = color.New(color.FgHiYellow)
	listColor    = color.New(color.FgHiGreen)
	noteColor    = color.New(color.Faint)
)

// Renderer writes rows to Out in the chosen Format.
type Renderer struct {
	Out    io.Writer
	Format Format
}

// NewRenderer returns a renderer writing to out.
func NewRenderer(out io.Writer, format Format) *Renderer {
	return &Renderer{Out: out, Format: format}
}

// Fetching announces the overview about to be requested. It is silent in
// JSON mode so that the output stays machine readable.
func (r *Renderer) Fetching(kind, league, typ string) {
	if r.Format == FormatJSON {
		return
	}
	fmt.Fprintf(r.Out, "%s %s\n",
		titleColor.Sprintf("Fetching %s data for", kind),
		subjectColor.Sprintf("%s - %s", league, typ),
	)
}

// RenderCurrencies writes currency rows. An empty set is reported with a
// notice in table mode and as an empty array in JSON mode.
func (r *Renderer) RenderCurrencies(rows []CurrencyRow) error {
	if r.Format == FormatJSON {
		if rows == nil {
			rows = []CurrencyRow{}
		}
		return r.WriteJSON(rows)
	}
	if len(rows) == 0 {
		return r.notice(noCurrencies)
	}

	p := message.NewPrinter(language.English)
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Name,
			p.Sprintf("%.2f", row.ChaosEquivalent),
			p.Sprintf("%.4f", row.PayValue),
			p.Sprintf("%.4f", row.ReceiveValue),
			p.Sprintf("%d", row.PayCount),
			p.Sprintf("%d", row.ReceiveCount),
		})
	}
	return r.writeTable(currencyHeaders, cells, 1)
}

// RenderItems writes item rows. An empty set is reported with a notice in
// table mode and as an empty array in JSON mode.
func (r *Renderer) RenderItems(rows []ItemRow) error {
	if r.Format == FormatJSON {
		if rows == nil {
			rows = []ItemRow{}
		}
		return r.WriteJSON(rows)
	}
	if len(rows) == 0 {
		return r.notice(noItems)
	}

	p := message.NewPrinter(language.English)
	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		cells = append(cells, []string{
			row.Name,
			row.BaseType,
			p.Sprintf("%.2f", row.ChaosValue),
			p.Sprintf("%.2f", row.DivineValue),
			p.Sprintf("%d", row.Count),
			p.Sprintf("%d", row.ListingCount),
			p.Sprintf("%d", row.LevelRequired),
		})
	}
	return r.writeTable(itemHeaders, cells, 2)
}

// RenderList writes a titled bullet list followed by a dimmed note.
// JSON mode writes the entries as an array.
func (r *Renderer) RenderList(title string, entries []string, note string) error {
	if r.Format == FormatJSON {
		return r.WriteJSON(entries)
	}
	if _, err := listColor.Fprintln(r.Out, title); err != nil {
		return err
	}
	for _, e := range entries {
		if _, err := fmt.Fprintf(r.Out, "  • %s\n", subjectColor.Sprint(e)); err != nil {
			return err
		}
	}
	if note == "" {
		return nil
	}
	fmt.Fprintln(r.Out)
	_, err := noteColor.Fprintln(r.Out, note)
	return err
}

// writeTable draws a rounded table; columns from numericFrom on are right
// aligned.
func (r *Renderer) writeTable(headers []string, rows [][]string, numericFrom int) error {
	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(borderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			style := cellStyle
			if row == table.HeaderRow {
				style = headerStyle
			}
			if col >= numericFrom {
				return style.Align(lipgloss.Right)
			}
			return style
		})

	_, err := fmt.Fprintln(r.Out, t.Render())
	return err
}

// WriteJSON writes v as indented JSON.
func (r *Renderer) WriteJSON(v any) error {
	enc := json.NewEncoder(r.Out)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode json: %w", err)
	}
	return nil
}

func (r *Renderer) notice(msg string) error {
	_, err := noticeColor.Fprintln(r.Out, msg)
	return err
}
