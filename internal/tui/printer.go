package tui

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

// maxCellWidth caps the width of a table value before it is truncated.
const maxCellWidth = 96

// PrintOptions control how a [Printer] renders results.
type PrintOptions struct {
	// JSON renders results as JSON instead of a table.
	JSON bool

	// Pretty indents JSON output. Ignored for tables.
	Pretty bool

	// Copy places the rendered output on the system clipboard as well.
	Copy bool
}

// Printer renders command results to an output stream.
type Printer struct {
	out       io.Writer
	opts      PrintOptions
	copyToClp func(string) error
}

// NewPrinter builds a Printer writing to out.
func NewPrinter(out io.Writer, opts PrintOptions) *Printer {
	return &Printer{
		out:       out,
		opts:      opts,
		copyToClp: clipboard.WriteAll,
	}
}

// Options returns the options the printer was built with.
func (p *Printer) Options() PrintOptions {
	return p.opts
}

// Print renders v and writes it followed by a newline.
func (p *Printer) Print(v any) error {
	rendered, err := p.Render(v)
	if err != nil {
		return err
	}

	if _, err = fmt.Fprintln(p.out, rendered); err != nil {
		return fmt.Errorf("write output: %w", err)
	}

	if p.opts.Copy {
		if err = p.copyToClp(rendered); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}
	return nil
}

// Warn writes a highlighted warning line. Warnings are never copied.
func (p *Printer) Warn(msg string) {
	if p.opts.JSON {
		return
	}
	fmt.Fprintln(p.out, warnStyle.Render("Warning:")+" "+msg)
}

// Render returns the textual form of v without writing it.
func (p *Printer) Render(v any) (string, error) {
	if p.opts.JSON {
		return renderJSON(v, p.opts.Pretty)
	}
	return renderTable(v)
}

func renderJSON(v any, pretty bool) (string, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(v); err != nil {
		return "", fmt.Errorf("encode output: %w", err)
	}
	return strings.TrimRight(buf.String(), "\n"), nil
}

func renderTable(v any) (string, error) {
	plain, err := toPlain(v)
	if err != nil {
		return "", err
	}

	rows := flattenRows(nil, "", plain)
	if len(rows) == 0 {
		return "", nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(borderStyle).
		Headers("KEY", "VALUE").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	return t.String(), nil
}

// toPlain turns v into the generic JSON shape (maps, slices, scalars) so that
// structs are rendered through their json tags.
func toPlain(v any) (any, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encode output: %w", err)
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	var plain any
	if err = dec.Decode(&plain); err != nil {
		return nil, fmt.Errorf("decode output: %w", err)
	}
	return plain, nil
}

func flattenRows(rows [][]string, prefix string, v any) [][]string {
	switch typed := v.(type) {
	case map[string]any:
		if len(typed) == 0 && prefix != "" {
			return append(rows, []string{prefix, "{}"})
		}
		keys := make([]string, 0, len(typed))
		for k := range typed {
			keys = append(keys, k)
		}
		slices.Sort(keys)
		for _, k := range keys {
			rows = flattenRows(rows, joinKey(prefix, k), typed[k])
		}
	case []any:
		if len(typed) == 0 {
			return append(rows, []string{prefix, "[]"})
		}
		for i, item := range typed {
			rows = flattenRows(rows, joinKey(prefix, strconv.Itoa(i)), item)
		}
	default:
		rows = append(rows, []string{prefix, fitText(scalarString(typed), maxCellWidth)})
	}
	return rows
}

func joinKey(prefix, key string) string {
	if prefix == "" {
		return key
	}
	return prefix + "." + key
}

func scalarString(v any) string {
	switch typed := v.(type) {
	case nil:
		return "null"
	case string:
		return typed
	case json.Number:
		return typed.String()
	case bool:
		return strconv.FormatBool(typed)
	default:
		return fmt.Sprint(typed)
	}
}

func fitText(v string, max int) string {
	r := []rune(v)
	if max <= 0 || len(r) <= max {
		return v
	}
	if max <= 3 {
		return string(r[:max])
	}
	return string(r[:max-3]) + "..."
}
