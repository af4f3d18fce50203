package state

import (
	"strings"

	"agentdash/internal/claude"
	"agentdash/internal/i18n"
)

// observations is what the backward scan saw in the tail window.
type observations struct {
	activeIDs            map[string]struct{}
	hasTurnBoundary      bool
	hasProgress          bool
	lastAssistantHasText bool
	lastToolName         string
	lastToolStatus       string
	model                string
}

// Model families recognized by normalizeModel, in match order.
var modelFamilies = []string{"opus", "sonnet", "haiku"}

// scan walks the decoded events newest to oldest, reconstructing which
// tool invocations are still in flight. Tool results always appear later
// in the file than their originating tool_use, so in reverse order an
// id lands in the completed set before its tool_use line is reached.
//
// The scan stops at the first assistant event that yields an active tool
// or trailing text; system signals older than that line are never
// observed. That is a deliberate cost bound, not an oversight.
func scan(lines []string, th Thresholds, msgs *i18n.Messages) observations {
	obs := observations{activeIDs: make(map[string]struct{})}
	completed := make(map[string]struct{})

	for i := len(lines) - 1; i >= 0; i-- {
		event, err := claude.ParseLine([]byte(lines[i]))
		if err != nil {
			continue
		}

		switch event.Kind {
		case claude.EntryTypeSystem:
			switch event.Subtype {
			case claude.SubtypeTurnDuration:
				obs.hasTurnBoundary = true
			case claude.SubtypeBashProgress, claude.SubtypeMCPProgress, claude.SubtypeAgentProgress:
				obs.hasProgress = true
			}

		case claude.EntryTypeUser:
			for _, block := range event.Content {
				if block.Type == claude.ContentBlockTypeToolResult {
					completed[block.ToolUseID] = struct{}{}
				}
			}

		case claude.EntryTypeAssistant:
			if obs.model == "" && event.Model != "" {
				obs.model = normalizeModel(event.Model)
			}

			for _, block := range event.Content {
				switch block.Type {
				case claude.ContentBlockTypeToolUse:
					if _, done := completed[block.ID]; done {
						continue
					}
					obs.activeIDs[block.ID] = struct{}{}
					if obs.lastToolName == "" {
						obs.lastToolName = block.Name
						obs.lastToolStatus = ToolStatus(block.Name, block.Input, th.BashCommandMax, msgs)
					}
				case claude.ContentBlockTypeText:
					// Only the most recent assistant turn's trailing
					// text counts, and only when that turn had no tool
					// activity.
					if obs.lastToolName == "" && len(obs.activeIDs) == 0 {
						obs.lastAssistantHasText = true
					}
				}
			}

			if len(obs.activeIDs) > 0 || obs.lastAssistantHasText {
				return obs
			}
		}
	}

	return obs
}

// normalizeModel reduces a full model identifier such as
// "claude-opus-4-20250514" to its family name. Unrecognized identifiers
// are kept as-is.
func normalizeModel(raw string) string {
	lower := strings.ToLower(raw)
	for _, family := range modelFamilies {
		if strings.Contains(lower, family) {
			return family
		}
	}
	return raw
}
