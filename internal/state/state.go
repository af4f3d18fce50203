// Package state infers the current activity state of a Claude Code
// session from the tail of its JSONL log. One call is one stat, at most
// one bounded read and one in-memory scan; every failure mode degrades
// to Idle rather than surfacing an error.
package state

import (
	"os"
	"slices"
	"time"

	"agentdash/internal/i18n"
	"agentdash/internal/tail"
)

// Kind identifies the inferred activity state of a session.
type Kind string

const (
	Working           Kind = "working"
	Thinking          Kind = "thinking"
	WaitingPermission Kind = "waiting_permission"
	WaitingInput      Kind = "waiting_input"
	Idle              Kind = "idle"
)

// AgentState is the engine output for a single poll of one session log.
// It is recomputed fresh on every call and never cached or mutated.
type AgentState struct {
	Kind       Kind
	ToolName   string // active tool, if any
	Status     string // short display phrase
	Model      string // normalized model family, if detected
	LastUpdate time.Time
}

// Thresholds parameterize classification.
type Thresholds struct {
	// TailWindowBytes bounds how much of the log tail is read per poll.
	TailWindowBytes int64
	// IdleThreshold marks a session idle without reading its content.
	IdleThreshold time.Duration
	// PermissionTimer is how long a pending non-exempt tool call may go
	// without a result before it counts as waiting for permission.
	PermissionTimer time.Duration
	// InputWaitTimer is how long after a plain-text reply the session
	// counts as waiting for user input.
	InputWaitTimer time.Duration
	// BashCommandMax is the display length cap for shell commands.
	BashCommandMax int
	// ExemptTools never trigger the permission heuristic.
	ExemptTools []string
}

// streamingWindow is the short "just happened" window in which a fresh
// file with no other signal still counts as thinking.
const streamingWindow = 3 * time.Second

// DefaultThresholds returns the stock thresholds. The exempt set covers
// auto-approved read-only tools plus the sub-agent and question tools,
// which block on their own UI rather than on a permission prompt.
func DefaultThresholds() Thresholds {
	return Thresholds{
		TailWindowBytes: 32768,
		IdleThreshold:   120 * time.Second,
		PermissionTimer: 7 * time.Second,
		InputWaitTimer:  5 * time.Second,
		BashCommandMax:  30,
		ExemptTools: []string{
			ToolRead, ToolGlob, ToolGrep, ToolTodoWrite,
			ToolWebSearch, ToolWebFetch, ToolTask, ToolAskUserQuestion,
		},
	}
}

func (t Thresholds) exempt(name string) bool {
	return slices.Contains(t.ExemptTools, name)
}

// Infer stats the session log at path and classifies its current state.
// now is injected so repeated calls over an unchanged file are
// idempotent. Stat failures, read failures and stale files all yield
// Idle; Infer never returns an error.
func Infer(path string, now time.Time, th Thresholds, msgs *i18n.Messages) AgentState {
	info, err := os.Stat(path)
	if err != nil {
		return AgentState{Kind: Idle}
	}
	mtime := info.ModTime()
	age := now.Sub(mtime)

	// Stale files are never read.
	if age > th.IdleThreshold {
		return AgentState{
			Kind:       Idle,
			Status:     FormatAge(age, msgs),
			LastUpdate: mtime,
		}
	}

	lines, err := tail.Lines(path, info.Size(), th.TailWindowBytes)
	if err != nil || len(lines) == 0 {
		return AgentState{Kind: Idle, LastUpdate: mtime}
	}

	obs := scan(lines, th, msgs)
	return classify(obs, age, mtime, th, msgs)
}

// classify turns the scan observations plus the file age into exactly
// one state. Branches are ordered by priority; the first match wins.
func classify(obs observations, age time.Duration, mtime time.Time, th Thresholds, msgs *i18n.Messages) AgentState {
	if len(obs.activeIDs) > 0 {
		status := obs.lastToolStatus
		if status == "" {
			status = obs.lastToolName
		}
		kind := Working
		if !th.exempt(obs.lastToolName) && !obs.hasProgress && age > th.PermissionTimer {
			kind = WaitingPermission
		}
		return AgentState{
			Kind:       kind,
			ToolName:   obs.lastToolName,
			Status:     status,
			Model:      obs.model,
			LastUpdate: mtime,
		}
	}

	// An explicit turn-end signal overrides the text-based heuristic.
	if obs.hasTurnBoundary {
		return AgentState{
			Kind:       WaitingInput,
			Status:     msgs.StatusWaitingInput,
			Model:      obs.model,
			LastUpdate: mtime,
		}
	}

	if obs.lastAssistantHasText {
		if age > th.InputWaitTimer {
			return AgentState{
				Kind:       WaitingInput,
				Status:     msgs.StatusWaitingInput,
				Model:      obs.model,
				LastUpdate: mtime,
			}
		}
		return AgentState{
			Kind:       Thinking,
			Status:     msgs.StatusResponding,
			Model:      obs.model,
			LastUpdate: mtime,
		}
	}

	if age < streamingWindow {
		return AgentState{
			Kind:       Thinking,
			Status:     msgs.StatusThinking,
			Model:      obs.model,
			LastUpdate: mtime,
		}
	}

	return AgentState{
		Kind:       Idle,
		Status:     FormatAge(age, msgs),
		Model:      obs.model,
		LastUpdate: mtime,
	}
}

// Label returns the localized display label for k.
func Label(k Kind, msgs *i18n.Messages) string {
	switch k {
	case Working:
		return msgs.StateWorking
	case Thinking:
		return msgs.StateThinking
	case WaitingPermission:
		return msgs.StatePermission
	case WaitingInput:
		return msgs.StateInput
	default:
		return msgs.StateIdle
	}
}
