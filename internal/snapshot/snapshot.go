// Package snapshot compares two directory trees and classifies every entry
// by its change status.
package snapshot

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/chmouel/diff-folders/internal/log"
	"github.com/chmouel/diff-folders/internal/models"
	"github.com/moby/patternmatcher"
)

// Progress milestones reported while diffing.
const (
	ProgressStart    = 10
	ProgressOldWalk  = 20
	ProgressNewWalk  = 30
	ProgressDeleted  = 40
	ProgressCompared = 80
	ProgressDone     = 100
)

// Options tunes a Diff run.
type Options struct {
	// Ignore holds gitignore-like patterns matched against relative keys.
	Ignore []string
	// Progress, when set, is called synchronously with a percentage.
	Progress func(percent int)
}

// List is the ordered, pruned result of a Diff.
type List []models.ClassifiedEntry

// Counts tallies a list by status.
type Counts struct {
	New      int
	Modified int
	Deleted  int
}

// Total returns the number of listed entries.
func (c Counts) Total() int {
	return c.New + c.Modified + c.Deleted
}

// Counts tallies the list by status.
func (l List) Counts() Counts {
	var c Counts
	for _, e := range l {
		switch e.Status {
		case models.StatusNew:
			c.New++
		case models.StatusModified:
			c.Modified++
		case models.StatusDeleted:
			c.Deleted++
		case models.StatusNormal:
		}
	}
	return c
}

// Result carries the canonical roots alongside the classified list.
type Result struct {
	OldRoot string
	NewRoot string
	Entries List
}

// Canonicalize resolves path to an absolute, symlink-free directory path.
func Canonicalize(path string) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	resolved, err := filepath.EvalSymlinks(abs)
	if err != nil {
		return "", fmt.Errorf("resolve %s: %w", path, err)
	}
	info, err := os.Stat(resolved)
	if err != nil {
		return "", fmt.Errorf("stat %s: %w", resolved, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", resolved)
	}
	return resolved, nil
}

// Diff walks both roots and classifies every entry. Only an unresolvable root
// or an invalid ignore pattern is an error; unreadable entries are skipped.
func Diff(oldRoot, newRoot string, opts Options) (*Result, error) {
	progress := opts.Progress
	if progress == nil {
		progress = func(int) {}
	}
	progress(ProgressStart)

	var err error
	if oldRoot, err = Canonicalize(oldRoot); err != nil {
		return nil, err
	}
	if newRoot, err = Canonicalize(newRoot); err != nil {
		return nil, err
	}

	matcher, err := newMatcher(opts.Ignore)
	if err != nil {
		return nil, err
	}

	oldEntries := Walk(oldRoot, matcher)
	progress(ProgressOldWalk)
	newEntries := Walk(newRoot, matcher)
	progress(ProgressNewWalk)
	log.Infof("scanned %d old and %d new entries", len(oldEntries), len(newEntries))

	var classified []models.ClassifiedEntry
	for key, entry := range oldEntries {
		if _, ok := newEntries[key]; !ok {
			classified = append(classified, models.ClassifiedEntry{Entry: entry, Status: models.StatusDeleted})
		}
	}
	progress(ProgressDeleted)

	for key, entry := range newEntries {
		old, ok := oldEntries[key]
		if !ok {
			classified = append(classified, models.ClassifiedEntry{Entry: entry, Status: models.StatusNew})
			continue
		}
		switch {
		case entry.IsDir && old.IsDir:
			// Implied by descendants.
		case entry.IsDir != old.IsDir:
			classified = append(classified, models.ClassifiedEntry{Entry: entry, Status: models.StatusModified})
		default:
			same, err := SameContent(old.Path, entry.Path)
			if err != nil {
				log.WithField("key", key).Warnf("skipping unreadable file: %v", err)
				continue
			}
			if !same {
				classified = append(classified, models.ClassifiedEntry{Entry: entry, Status: models.StatusModified})
			}
		}
	}
	progress(ProgressCompared)

	SortEntries(classified)
	entries := Prune(classified)
	progress(ProgressDone)

	return &Result{OldRoot: oldRoot, NewRoot: newRoot, Entries: entries}, nil
}

func newMatcher(patterns []string) (*patternmatcher.PatternMatcher, error) {
	if len(patterns) == 0 {
		return nil, nil
	}
	pm, err := patternmatcher.New(patterns)
	if err != nil {
		return nil, fmt.Errorf("invalid ignore pattern: %w", err)
	}
	return pm, nil
}

// Walk enumerates every entry below root, keyed by its slash-separated path
// relative to root. The root itself is not included. Entries that cannot be
// read are logged and skipped.
func Walk(root string, matcher *patternmatcher.PatternMatcher) map[string]models.Entry {
	entries := make(map[string]models.Entry)

	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if path == root && d == nil {
				return err
			}
			log.WithField("path", path).Warnf("walk: %v", err)
			return nil
		}
		if path == root {
			return nil
		}

		rel, err := filepath.Rel(root, path)
		if err != nil {
			log.WithField("path", path).Warnf("relative path: %v", err)
			return nil
		}

		if matcher != nil {
			ignored, err := matcher.MatchesOrParentMatches(rel)
			if err != nil {
				log.WithField("path", rel).Warnf("ignore match: %v", err)
			}
			if ignored {
				if d.IsDir() {
					return fs.SkipDir
				}
				return nil
			}
		}

		info, err := d.Info()
		if err != nil {
			log.WithField("path", path).Warnf("stat: %v", err)
			return nil
		}
		// Links are described by their target but never descended into.
		if d.Type()&fs.ModeSymlink != 0 {
			if target, err := os.Stat(path); err == nil {
				info = target
			} else {
				log.WithField("path", path).Debugf("dangling link: %v", err)
			}
		}

		key := filepath.ToSlash(rel)
		entries[key] = models.Entry{
			Path:    path,
			Key:     key,
			IsDir:   info.IsDir(),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		return nil
	})

	return entries
}

// SameContent reports whether two files hold identical bytes.
func SameContent(oldPath, newPath string) (bool, error) {
	oldInfo, err := os.Stat(oldPath)
	if err != nil {
		return false, err
	}
	newInfo, err := os.Stat(newPath)
	if err != nil {
		return false, err
	}
	if !oldInfo.Mode().IsRegular() || !newInfo.Mode().IsRegular() {
		return false, errors.New("not a regular file")
	}
	if oldInfo.Size() != newInfo.Size() {
		return false, nil
	}

	oldData, err := os.ReadFile(oldPath) //nolint:gosec
	if err != nil {
		return false, err
	}
	newData, err := os.ReadFile(newPath) //nolint:gosec
	if err != nil {
		return false, err
	}
	return bytes.Equal(oldData, newData), nil
}

// SortEntries orders entries by canonical path, byte-wise.
func SortEntries(entries []models.ClassifiedEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Path < entries[j].Path
	})
}

// Prune drops every entry that lives below a directory classified New or
// Deleted, keeping only the topmost changed node of such a subtree.
// Containment is checked against all such directories, not only the
// preceding entry, so siblings sorting in between do not defeat it.
func Prune(entries []models.ClassifiedEntry) List {
	whole := make(map[string]bool)
	for _, e := range entries {
		if e.IsDir && e.Status.Whole() {
			whole[e.Path] = true
		}
	}

	out := make(List, 0, len(entries))
	for _, e := range entries {
		if len(whole) > 0 && hasWholeAncestor(e.Path, whole) {
			continue
		}
		out = append(out, e)
	}
	return out
}

func hasWholeAncestor(path string, whole map[string]bool) bool {
	dir := filepath.Dir(path)
	for {
		if whole[dir] {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}
