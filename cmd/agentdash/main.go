// Package main provides the agentdash CLI for monitoring the activity
// state of Claude Code agent sessions.
package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"agentdash/internal/config"
	"agentdash/internal/dashboard"
	"agentdash/internal/discover"
	"agentdash/internal/format"
	"agentdash/internal/i18n"
	"agentdash/internal/state"
)

var version = "dev"

var (
	configPath  string
	sessionsDir string
	lang        string
)

var rootCmd = &cobra.Command{
	Use:     "agentdash",
	Short:   "Live status dashboard for Claude Code agent sessions",
	Version: version,
	RunE: func(cmd *cobra.Command, _ []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		return dashboard.Run(cfg, i18n.Get(cfg.Language))
	},
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.StringVar(&configPath, "config", "",
		"config file (default: ~/.config/agentdash/config.toml)")
	flags.StringVar(&sessionsDir, "sessions-dir", "",
		"sessions directory (env: AGENTDASH_SESSIONS_DIR, default: ~/.claude/projects)")
	flags.StringVar(&lang, "lang", "",
		fmt.Sprintf("interface language, one of %v", i18n.Supported()))

	local := rootCmd.Flags()
	local.Int("refresh", 0, "data refresh interval in seconds")
	local.Int("idle-timeout", 0, "hide sessions idle for more than N minutes")
	local.Int("max-agents", 0, "maximum number of session cards (0 means no limit)")
	local.Bool("show-all", false, "show every session from the last 30 minutes")

	rootCmd.AddCommand(newStatusCmd())
	rootCmd.AddCommand(newStateCmd())
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "agentdash: %v\n", err)
		os.Exit(1)
	}
}

// loadConfig merges the TOML config file with command-line overrides.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	path := configPath
	if path == "" {
		path = config.DefaultPath()
	}

	cfg, err := config.Load(path)
	if err != nil {
		return cfg, err
	}

	if sessionsDir != "" {
		cfg.SessionsDir = sessionsDir
	}
	if cfg.SessionsDir == "" {
		cfg.SessionsDir = defaultSessionsDir()
	}
	if lang != "" {
		cfg.Language = lang
	}

	flags := cmd.Flags()
	if flags.Changed("refresh") {
		cfg.RefreshSeconds, _ = flags.GetInt("refresh")
	}
	if flags.Changed("idle-timeout") {
		cfg.IdleTimeoutMinutes, _ = flags.GetInt("idle-timeout")
	}
	if flags.Changed("max-agents") {
		cfg.MaxAgents, _ = flags.GetInt("max-agents")
	}
	if flags.Changed("show-all") {
		cfg.ShowAll, _ = flags.GetBool("show-all")
	}

	return cfg, nil
}

// defaultSessionsDir returns the Claude Code projects directory.
func defaultSessionsDir() string {
	if dir := os.Getenv("AGENTDASH_SESSIONS_DIR"); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".claude", "projects")
}

func newStatusCmd() *cobra.Command {
	var (
		formatFlag   string
		noHeader     bool
		showAll      bool
		idleTimeout  int
		forceColor   bool
		forceNoColor bool
	)

	cmd := &cobra.Command{
		Use:   "status",
		Short: "List discovered sessions with their inferred state",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if forceColor && forceNoColor {
				return errors.New("--color and --no-color cannot be used together")
			}

			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("idle-timeout") {
				cfg.IdleTimeoutMinutes = idleTimeout
			}
			if showAll {
				cfg.ShowAll = true
			}
			msgs := i18n.Get(cfg.Language)

			now := time.Now()
			sessions, err := discover.Sessions(discover.Options{
				Root:            cfg.SessionsDir,
				Now:             now,
				IdleTimeout:     cfg.IdleTimeout(),
				ShowAll:         cfg.ShowAll,
				ActiveThreshold: cfg.ActiveThreshold(),
			})
			if err != nil {
				return err
			}

			th := cfg.StateThresholds()
			rows := make([]format.Row, 0, len(sessions))
			for _, s := range sessions {
				st := state.Infer(s.Path, now, th, msgs)
				rows = append(rows, format.Row{
					Project:   s.ProjectName,
					SessionID: s.ID,
					State:     st.Kind,
					Label:     state.Label(st.Kind, msgs),
					Status:    st.Status,
					Model:     st.Model,
					Updated:   s.ModTime,
					Age:       state.FormatAge(s.Age, msgs),
				})
			}

			out := cmd.OutOrStdout()
			color := forceColor
			if !forceColor && !forceNoColor {
				color = shouldUseColorAuto(out)
			}

			return format.WriteRows(out, rows, formatFlag, format.Options{
				IncludeHeader: !noHeader,
				Color:         color,
				StatusWidth:   statusColumnWidth(out),
			})
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&formatFlag, "format", "table", "output format: table, plain, json, or jsonl")
	flags.BoolVar(&noHeader, "no-header", false, "omit the header row")
	flags.BoolVar(&showAll, "show-all", false, "include every session from the last 30 minutes")
	flags.IntVar(&idleTimeout, "idle-timeout", 0, "hide sessions idle for more than N minutes")
	flags.BoolVar(&forceColor, "color", false, "force-enable ANSI colors even when stdout is not a TTY")
	flags.BoolVar(&forceNoColor, "no-color", false, "disable ANSI colors regardless of terminal detection")

	return cmd
}

type statePayload struct {
	Path     string     `json:"path"`
	State    state.Kind `json:"state"`
	ToolName string     `json:"tool_name,omitempty"`
	Status   string     `json:"status,omitempty"`
	Model    string     `json:"model,omitempty"`
	Updated  string     `json:"updated,omitempty"`
}

func newStateCmd() *cobra.Command {
	var formatFlag string

	cmd := &cobra.Command{
		Use:   "state <session-id-or-path>",
		Short: "Infer the current state of a single session log",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return err
			}
			msgs := i18n.Get(cfg.Language)

			path, err := resolveSessionPath(args[0], cfg.SessionsDir)
			if err != nil {
				return err
			}

			st := state.Infer(path, time.Now(), cfg.StateThresholds(), msgs)

			payload := statePayload{
				Path:     path,
				State:    st.Kind,
				ToolName: st.ToolName,
				Status:   st.Status,
				Model:    st.Model,
			}
			if !st.LastUpdate.IsZero() {
				payload.Updated = st.LastUpdate.Format(time.RFC3339)
			}

			switch formatFlag {
			case "json":
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(payload)
			case "text":
				renderStateText(cmd.OutOrStdout(), payload)
				return nil
			default:
				return fmt.Errorf("unsupported format: %s", formatFlag)
			}
		},
	}

	cmd.Flags().StringVar(&formatFlag, "format", "text", "output format: text or json")

	return cmd
}

func resolveSessionPath(arg, root string) (string, error) {
	if arg == "" {
		return "", errors.New("session identifier is empty")
	}

	if info, err := os.Stat(arg); err == nil && !info.IsDir() {
		return arg, nil
	}

	candidate := filepath.Join(root, arg)
	if info, err := os.Stat(candidate); err == nil && !info.IsDir() {
		return candidate, nil
	}

	return discover.FindSessionPath(root, arg)
}

func renderStateText(out io.Writer, payload statePayload) {
	const labelWidth = 8
	writeKV(out, labelWidth, "State", string(payload.State))
	writeKV(out, labelWidth, "Tool", payload.ToolName)
	writeKV(out, labelWidth, "Status", payload.Status)
	writeKV(out, labelWidth, "Model", payload.Model)
	writeKV(out, labelWidth, "Updated", payload.Updated)
	writeKV(out, labelWidth, "Path", payload.Path)
}

func writeKV(out io.Writer, width int, label string, value string) {
	fmt.Fprintf(out, "%-*s: %s\n", width, label, value) //nolint:errcheck
}

func shouldUseColorAuto(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	file, ok := out.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// statusColumnWidth caps the status column to half the terminal width
// when writing to a TTY.
func statusColumnWidth(out io.Writer) int {
	file, ok := out.(*os.File)
	if !ok {
		return 0
	}
	if w, _, err := term.GetSize(int(file.Fd())); err == nil && w > 0 {
		return w / 2
	}
	return 0
}
