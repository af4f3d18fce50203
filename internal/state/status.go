package state

import (
	"fmt"
	"path/filepath"
	"time"

	"agentdash/internal/i18n"
)

// Tool names emitted by Claude Code in tool_use blocks.
const (
	ToolRead            = "Read"
	ToolEdit            = "Edit"
	ToolWrite           = "Write"
	ToolBash            = "Bash"
	ToolGrep            = "Grep"
	ToolGlob            = "Glob"
	ToolTask            = "Task"
	ToolWebSearch       = "WebSearch"
	ToolWebFetch        = "WebFetch"
	ToolTodoWrite       = "TodoWrite"
	ToolAskUserQuestion = "AskUserQuestion"
)

// ToolStatus formats a tool invocation as a short single-line phrase,
// e.g. "Reading: main.go" or "Running: npm test". Unknown tool names
// come back unchanged.
func ToolStatus(name string, input map[string]any, maxCmd int, msgs *i18n.Messages) string {
	switch name {
	case ToolRead:
		return fmt.Sprintf(msgs.ToolReading, fileParam(input))
	case ToolEdit:
		return fmt.Sprintf(msgs.ToolEditing, fileParam(input))
	case ToolWrite:
		return fmt.Sprintf(msgs.ToolWriting, fileParam(input))
	case ToolBash:
		cmd := stringParam(input, "command")
		if r := []rune(cmd); len(r) > maxCmd {
			cmd = string(r[:maxCmd]) + "..."
		}
		return fmt.Sprintf(msgs.ToolRunning, cmd)
	case ToolGrep, ToolGlob:
		pattern := stringParam(input, "pattern")
		if pattern == "" {
			pattern = "..."
		}
		return fmt.Sprintf(msgs.ToolSearching, pattern)
	case ToolTask:
		desc := stringParam(input, "description")
		if desc == "" {
			desc = "task"
		}
		return fmt.Sprintf(msgs.ToolSubAgent, desc)
	case ToolWebSearch:
		return msgs.ToolBrowsingWeb
	case ToolWebFetch:
		return msgs.ToolFetchingWeb
	case ToolTodoWrite:
		return msgs.ToolUpdatingTodos
	default:
		return name
	}
}

// fileParam extracts the target file name from a file-oriented tool
// input, reduced to its final path segment.
func fileParam(input map[string]any) string {
	path := stringParam(input, "file_path")
	if path == "" {
		path = stringParam(input, "path")
	}
	if path == "" {
		return "..."
	}
	return filepath.Base(path)
}

func stringParam(input map[string]any, key string) string {
	if v, ok := input[key].(string); ok {
		return v
	}
	return ""
}

// FormatAge renders an elapsed duration as a rounded time-ago string:
// "45s ago", "2m ago", "2h ago".
func FormatAge(age time.Duration, msgs *i18n.Messages) string {
	seconds := int(age.Seconds())
	if seconds < 0 {
		seconds = 0
	}
	if seconds < 60 {
		return fmt.Sprintf(msgs.TimeSecondsAgo, seconds)
	}
	minutes := seconds / 60
	if minutes < 60 {
		return fmt.Sprintf(msgs.TimeMinutesAgo, minutes)
	}
	return fmt.Sprintf(msgs.TimeHoursAgo, minutes/60)
}
