package state

import (
	"strings"
	"testing"
	"time"

	"agentdash/internal/i18n"
)

func TestToolStatus(t *testing.T) {
	tests := []struct {
		name  string
		tool  string
		input map[string]any
		want  string
	}{
		{
			name:  "read with file path",
			tool:  ToolRead,
			input: map[string]any{"file_path": "/home/alice/project/main.go"},
			want:  "Reading: main.go",
		},
		{
			name:  "edit with path fallback",
			tool:  ToolEdit,
			input: map[string]any{"path": "src/parser.go"},
			want:  "Editing: parser.go",
		},
		{
			name:  "write without target",
			tool:  ToolWrite,
			input: map[string]any{},
			want:  "Writing: ...",
		},
		{
			name:  "bash short command",
			tool:  ToolBash,
			input: map[string]any{"command": "go test ./..."},
			want:  "Running: go test ./...",
		},
		{
			name:  "grep pattern",
			tool:  ToolGrep,
			input: map[string]any{"pattern": "func main"},
			want:  "Searching: func main",
		},
		{
			name:  "glob without pattern",
			tool:  ToolGlob,
			input: nil,
			want:  "Searching: ...",
		},
		{
			name:  "task with description",
			tool:  ToolTask,
			input: map[string]any{"description": "Audit error handling"},
			want:  "Sub-agent: Audit error handling",
		},
		{
			name:  "task without description",
			tool:  ToolTask,
			input: nil,
			want:  "Sub-agent: task",
		},
		{
			name: "web search",
			tool: ToolWebSearch,
			want: "Browsing web",
		},
		{
			name: "web fetch",
			tool: ToolWebFetch,
			want: "Fetching web",
		},
		{
			name: "todo write",
			tool: ToolTodoWrite,
			want: "Updating todos",
		},
		{
			name: "unknown tool passes through",
			tool: "mcp__github__create_issue",
			want: "mcp__github__create_issue",
		},
		{
			name:  "non-string input ignored",
			tool:  ToolRead,
			input: map[string]any{"file_path": 42},
			want:  "Reading: ...",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ToolStatus(tt.tool, tt.input, 30, i18n.EN)
			if got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestToolStatusBashTruncation(t *testing.T) {
	long := strings.Repeat("x", 31)
	got := ToolStatus(ToolBash, map[string]any{"command": long}, 30, i18n.EN)
	want := "Running: " + strings.Repeat("x", 30) + "..."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}

	// A command at exactly the cap is untouched.
	exact := strings.Repeat("y", 30)
	got = ToolStatus(ToolBash, map[string]any{"command": exact}, 30, i18n.EN)
	if got != "Running: "+exact {
		t.Errorf("expected no truncation at cap, got %q", got)
	}
}

func TestToolStatusBashTruncationIsRuneAware(t *testing.T) {
	cmd := strings.Repeat("あ", 35)
	got := ToolStatus(ToolBash, map[string]any{"command": cmd}, 30, i18n.EN)
	want := "Running: " + strings.Repeat("あ", 30) + "..."
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestFormatAge(t *testing.T) {
	tests := []struct {
		age  time.Duration
		want string
	}{
		{-5 * time.Second, "0s ago"},
		{0, "0s ago"},
		{45 * time.Second, "45s ago"},
		{59 * time.Second, "59s ago"},
		{60 * time.Second, "1m ago"},
		{130 * time.Second, "2m ago"},
		{59 * time.Minute, "59m ago"},
		{60 * time.Minute, "1h ago"},
		{2*time.Hour + 45*time.Minute, "2h ago"},
	}

	for _, tt := range tests {
		if got := FormatAge(tt.age, i18n.EN); got != tt.want {
			t.Errorf("FormatAge(%v): expected %q, got %q", tt.age, tt.want, got)
		}
	}
}
