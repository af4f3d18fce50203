// Package claude decodes Claude Code session log records. Each line of a
// session JSONL file is one self-contained record; decoding is independent
// per line so a corrupt record never affects its neighbors.
package claude

import (
	"encoding/json"
	"fmt"
)

// EntryType represents the top-level "type" field values in Claude Code
// JSONL logs.
type EntryType string

const (
	EntryTypeUser      EntryType = "user"
	EntryTypeAssistant EntryType = "assistant"
	EntryTypeSystem    EntryType = "system"
)

// System entry subtypes that carry activity signals. turn_duration marks
// the end of an assistant turn; the progress subtypes confirm a
// long-running tool call is still executing.
const (
	SubtypeTurnDuration  = "turn_duration"
	SubtypeBashProgress  = "bash_progress"
	SubtypeMCPProgress   = "mcp_progress"
	SubtypeAgentProgress = "agent_progress"
)

// ContentBlockType represents the "type" field in content blocks.
type ContentBlockType string

const (
	ContentBlockTypeText       ContentBlockType = "text"
	ContentBlockTypeToolUse    ContentBlockType = "tool_use"
	ContentBlockTypeToolResult ContentBlockType = "tool_result"
)

// ContentBlock is one element of a message content array. Which fields
// are set depends on Type: text blocks carry Text, tool_use blocks carry
// ID, Name and Input, tool_result blocks carry ToolUseID.
type ContentBlock struct {
	Type      ContentBlockType
	Text      string
	ID        string
	Name      string
	Input     map[string]any
	ToolUseID string
}

// Event is a single decoded record from a session log.
type Event struct {
	Kind    EntryType
	Subtype string // system entries only
	Model   string // assistant entries only
	Content []ContentBlock
}

type rawEntry struct {
	Type    string          `json:"type"`
	Subtype string          `json:"subtype"`
	Message json.RawMessage `json:"message"`
}

type messagePayload struct {
	Model   string          `json:"model"`
	Content json.RawMessage `json:"content"`
}

type rawBlock struct {
	Type      string         `json:"type"`
	Text      string         `json:"text"`
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Input     map[string]any `json:"input"`
	ToolUseID string         `json:"tool_use_id"`
}

// ParseLine decodes one JSONL record. Unknown entry types and subtypes
// decode successfully and are ignored downstream; only malformed JSON is
// an error.
func ParseLine(raw []byte) (Event, error) {
	var entry rawEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return Event{}, fmt.Errorf("unmarshal entry: %w", err)
	}

	event := Event{
		Kind:    EntryType(entry.Type),
		Subtype: entry.Subtype,
	}

	switch event.Kind {
	case EntryTypeUser, EntryTypeAssistant:
		if len(entry.Message) > 0 {
			var msg messagePayload
			if err := json.Unmarshal(entry.Message, &msg); err != nil {
				return Event{}, fmt.Errorf("unmarshal message: %w", err)
			}
			event.Model = msg.Model
			event.Content = decodeContent(msg.Content)
		}
	}

	return event, nil
}

// decodeContent accepts either a bare string (simple user messages) or an
// array of typed blocks.
func decodeContent(raw json.RawMessage) []ContentBlock {
	if len(raw) == 0 {
		return nil
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return []ContentBlock{{Type: ContentBlockTypeText, Text: asString}}
	}

	var blocks []rawBlock
	if err := json.Unmarshal(raw, &blocks); err != nil {
		return nil
	}

	result := make([]ContentBlock, 0, len(blocks))
	for _, block := range blocks {
		result = append(result, ContentBlock{
			Type:      ContentBlockType(block.Type),
			Text:      block.Text,
			ID:        block.ID,
			Name:      block.Name,
			Input:     block.Input,
			ToolUseID: block.ToolUseID,
		})
	}
	return result
}
