package claude

import "testing"

func TestParseLineAssistantToolUse(t *testing.T) {
	raw := `{"type":"assistant","message":{"model":"claude-opus-4-20250514","content":[{"type":"tool_use","id":"toolu_01","name":"Bash","input":{"command":"npm test"}},{"type":"text","text":"running tests"}]}}`

	event, err := ParseLine([]byte(raw))
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}

	if event.Kind != EntryTypeAssistant {
		t.Errorf("expected assistant, got %q", event.Kind)
	}
	if event.Model != "claude-opus-4-20250514" {
		t.Errorf("expected model claude-opus-4-20250514, got %q", event.Model)
	}
	if len(event.Content) != 2 {
		t.Fatalf("expected 2 content blocks, got %d", len(event.Content))
	}

	use := event.Content[0]
	if use.Type != ContentBlockTypeToolUse {
		t.Errorf("expected tool_use block, got %q", use.Type)
	}
	if use.ID != "toolu_01" || use.Name != "Bash" {
		t.Errorf("unexpected tool_use fields: id=%q name=%q", use.ID, use.Name)
	}
	if cmd, ok := use.Input["command"].(string); !ok || cmd != "npm test" {
		t.Errorf("expected command input, got %v", use.Input)
	}

	text := event.Content[1]
	if text.Type != ContentBlockTypeText || text.Text != "running tests" {
		t.Errorf("unexpected text block: %+v", text)
	}
}

func TestParseLineUserToolResult(t *testing.T) {
	raw := `{"type":"user","message":{"content":[{"type":"tool_result","tool_use_id":"toolu_01","content":"ok"}]}}`

	event, err := ParseLine([]byte(raw))
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}

	if event.Kind != EntryTypeUser {
		t.Errorf("expected user, got %q", event.Kind)
	}
	if len(event.Content) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(event.Content))
	}
	block := event.Content[0]
	if block.Type != ContentBlockTypeToolResult || block.ToolUseID != "toolu_01" {
		t.Errorf("unexpected tool_result block: %+v", block)
	}
}

func TestParseLineUserStringContent(t *testing.T) {
	raw := `{"type":"user","message":{"content":"please fix the bug"}}`

	event, err := ParseLine([]byte(raw))
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}

	if len(event.Content) != 1 {
		t.Fatalf("expected 1 content block, got %d", len(event.Content))
	}
	if event.Content[0].Type != ContentBlockTypeText || event.Content[0].Text != "please fix the bug" {
		t.Errorf("unexpected block: %+v", event.Content[0])
	}
}

func TestParseLineSystemSubtype(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		subtype string
	}{
		{"turn duration", `{"type":"system","subtype":"turn_duration","durationMs":5120}`, SubtypeTurnDuration},
		{"bash progress", `{"type":"system","subtype":"bash_progress"}`, SubtypeBashProgress},
		{"mcp progress", `{"type":"system","subtype":"mcp_progress"}`, SubtypeMCPProgress},
		{"agent progress", `{"type":"system","subtype":"agent_progress"}`, SubtypeAgentProgress},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			event, err := ParseLine([]byte(tt.raw))
			if err != nil {
				t.Fatalf("ParseLine failed: %v", err)
			}
			if event.Kind != EntryTypeSystem {
				t.Errorf("expected system, got %q", event.Kind)
			}
			if event.Subtype != tt.subtype {
				t.Errorf("expected subtype %q, got %q", tt.subtype, event.Subtype)
			}
		})
	}
}

func TestParseLineUnknownTypeIsNotAnError(t *testing.T) {
	event, err := ParseLine([]byte(`{"type":"summary","summary":"Refactored the config loader"}`))
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if event.Kind != EntryType("summary") {
		t.Errorf("expected kind summary, got %q", event.Kind)
	}
	if len(event.Content) != 0 {
		t.Errorf("expected no content, got %v", event.Content)
	}
}

func TestParseLineMalformed(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"truncated", `{"type":"assistant","message":{"co`},
		{"not json", `total 48`},
		{"bad message", `{"type":"assistant","message":42}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := ParseLine([]byte(tt.raw)); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestParseLineMissingMessage(t *testing.T) {
	event, err := ParseLine([]byte(`{"type":"assistant"}`))
	if err != nil {
		t.Fatalf("ParseLine failed: %v", err)
	}
	if event.Model != "" || len(event.Content) != 0 {
		t.Errorf("expected empty event body, got %+v", event)
	}
}
