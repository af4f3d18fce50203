// Package discover enumerates active Claude Code session logs under the
// projects directory.
package discover

import (
	"errors"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// Session represents one detected Claude Code session log.
type Session struct {
	Path        string        // full path to the JSONL file
	ID          string        // session UUID (file name without extension)
	ProjectDir  string        // encoded project directory name
	ProjectName string        // human-readable project name
	ModTime     time.Time     // last modification of the JSONL file
	Age         time.Duration // Now minus ModTime
	Alive       bool          // modified within the active threshold
}

// Options controls session enumeration.
type Options struct {
	Root            string        // projects directory
	Now             time.Time     // reference time for age computation
	IdleTimeout     time.Duration // hide sessions idle longer than this
	ShowAll         bool          // widen the cutoff to 30 minutes
	ActiveThreshold time.Duration // alive when modified within this window
}

// showAllCutoff is the widest lookback used with ShowAll.
const showAllCutoff = 30 * time.Minute

// Sessions walks Root for *.jsonl session logs modified within the
// cutoff, newest first. Auto-generated compact logs are skipped, as are
// files that vanish or error mid-walk. A missing root yields an empty
// list, not an error.
func Sessions(opts Options) ([]Session, error) {
	if opts.Root == "" {
		return nil, errors.New("root directory is required")
	}

	cutoff := opts.IdleTimeout
	if opts.ShowAll {
		cutoff = showAllCutoff
	}

	var sessions []Session
	err := filepath.WalkDir(opts.Root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".jsonl") {
			return nil
		}
		if strings.Contains(d.Name(), "compact") {
			return nil
		}

		info, err := d.Info()
		if err != nil {
			return nil
		}

		age := opts.Now.Sub(info.ModTime())
		if age > cutoff {
			return nil
		}

		projectDir := filepath.Base(filepath.Dir(path))
		sessions = append(sessions, Session{
			Path:        path,
			ID:          strings.TrimSuffix(d.Name(), ".jsonl"),
			ProjectDir:  projectDir,
			ProjectName: ProjectName(projectDir),
			ModTime:     info.ModTime(),
			Age:         age,
			Alive:       age < opts.ActiveThreshold,
		})
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Slice(sessions, func(i, j int) bool {
		return sessions[i].ModTime.After(sessions[j].ModTime)
	})
	return sessions, nil
}

// ProjectName extracts a readable project name from an encoded directory
// name such as "-Users-alice-Projects-my-app". Path segments before a
// Users/home prefix are discarded; the last remaining segment wins.
func ProjectName(dirName string) string {
	parts := strings.Split(strings.Trim(dirName, "-"), "-")

	var meaningful []string
	for _, p := range parts {
		if p == "Users" || p == "home" {
			meaningful = nil
			continue
		}
		meaningful = append(meaningful, p)
	}

	if len(meaningful) == 0 {
		return dirName
	}
	return meaningful[len(meaningful)-1]
}

// FindSessionPath searches Root for the session whose id matches id.
func FindSessionPath(root, id string) (string, error) {
	if root == "" {
		return "", errors.New("root directory is required")
	}
	if id == "" {
		return "", errors.New("session id is required")
	}

	var matched string
	errStop := errors.New("stop iteration")
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return nil
		}
		if d.IsDir() || !strings.HasSuffix(d.Name(), ".jsonl") {
			return nil
		}
		if strings.TrimSuffix(d.Name(), ".jsonl") == id {
			matched = path
			return errStop
		}
		return nil
	})

	if matched != "" {
		return matched, nil
	}
	if err != nil && !errors.Is(err, errStop) {
		return "", err
	}
	return "", errors.New("session id " + id + " not found under " + root)
}
