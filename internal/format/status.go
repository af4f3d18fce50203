// Package format renders session status listings for the one-shot
// command surface.
package format

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"agentdash/internal/state"
)

// Row is one session line in a status listing.
type Row struct {
	Project   string     `json:"project"`
	SessionID string     `json:"session_id"`
	State     state.Kind `json:"state"`
	Label     string     `json:"label"`
	Status    string     `json:"status,omitempty"`
	Model     string     `json:"model,omitempty"`
	Updated   time.Time  `json:"updated"`
	Age       string     `json:"age"`
}

// Options controls row rendering.
type Options struct {
	IncludeHeader bool
	Color         bool // colorize the state column (table format only)
	StatusWidth   int  // max width of the status column, 0 means default
}

// WriteRows writes rows to w in the requested format: table, plain,
// json or jsonl.
func WriteRows(w io.Writer, rows []Row, format string, opts Options) error {
	switch strings.ToLower(format) {
	case "", "table":
		return writeRowsTable(w, rows, opts)
	case "plain":
		return writeRowsPlain(w, rows, opts.IncludeHeader)
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	case "jsonl":
		enc := json.NewEncoder(w)
		for _, row := range rows {
			if err := enc.Encode(row); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func writeRowsPlain(w io.Writer, rows []Row, includeHeader bool) error {
	if includeHeader {
		if _, err := fmt.Fprintln(w, "project\tsession_id\tstate\tstatus\tmodel\tupdated\tage"); err != nil {
			return err
		}
	}

	for _, row := range rows {
		line := fmt.Sprintf(
			"%s\t%s\t%s\t%s\t%s\t%s\t%s",
			row.Project,
			row.SessionID,
			row.State,
			escapeNewlines(row.Status),
			row.Model,
			row.Updated.Format(time.RFC3339),
			row.Age,
		)
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func writeRowsTable(w io.Writer, rows []Row, opts Options) error {
	statusWidth := opts.StatusWidth
	if statusWidth <= 0 {
		statusWidth = 50
	}

	tw := table.NewWriter()
	tw.SetOutputMirror(w)
	tw.SetStyle(table.StyleRounded)
	tw.Style().Options.SeparateHeader = true
	tw.Style().Options.DrawBorder = true

	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 3, Align: text.AlignLeft, AlignHeader: text.AlignCenter, WidthMax: statusWidth},
		{Number: 4, Align: text.AlignLeft, AlignHeader: text.AlignCenter},
		{Number: 5, Align: text.AlignRight, AlignHeader: text.AlignCenter},
	})

	if opts.IncludeHeader {
		tw.AppendHeader(table.Row{"Project", "State", "Status", "Model", "Age"})
	}

	for _, row := range rows {
		label := row.Label
		if label == "" {
			label = string(row.State)
		}
		if opts.Color {
			label = stateColors(row.State).Sprint(label)
		}
		tw.AppendRow(table.Row{
			row.Project,
			label,
			escapeNewlines(row.Status),
			row.Model,
			row.Age,
		})
	}

	if len(rows) == 0 {
		tw.AppendRow(table.Row{"(no sessions)", "-", "-", "-", "-"})
	}

	_ = tw.Render()
	return nil
}

func stateColors(kind state.Kind) text.Colors {
	switch kind {
	case state.Working:
		return text.Colors{text.FgGreen}
	case state.Thinking:
		return text.Colors{text.FgYellow}
	case state.WaitingPermission:
		return text.Colors{text.FgRed}
	case state.WaitingInput:
		return text.Colors{text.FgMagenta}
	default:
		return text.Colors{text.Faint}
	}
}

func escapeNewlines(s string) string {
	return strings.ReplaceAll(s, "\n", "\\n")
}
