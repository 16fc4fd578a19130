// Package linediff computes line-level diffs between two texts.
package linediff

import (
	"strings"

	"github.com/chmouel/diff-folders/internal/models"
	"github.com/sergi/go-diff/diffmatchpatch"
)

// Differ produces an ordered, aligned sequence of line operations covering
// every line of both inputs.
type Differ interface {
	Diff(oldText, newText string) []models.DiffOp
}

// Myers diffs texts line by line using diff-match-patch.
type Myers struct {
	dmp *diffmatchpatch.DiffMatchPatch
}

// NewMyers returns a line differ. The bisect deadline is disabled so large
// files always produce a minimal diff.
func NewMyers() *Myers {
	dmp := diffmatchpatch.New()
	dmp.DiffTimeout = 0
	return &Myers{dmp: dmp}
}

// Diff implements Differ.
func (d *Myers) Diff(oldText, newText string) []models.DiffOp {
	if oldText == newText {
		return opsFromChunk(models.OpEqual, newText, nil)
	}

	// Each line is hashed to a single rune so the character diff is a line diff.
	oldRunes, newRunes, lineArray := d.dmp.DiffLinesToRunes(oldText, newText)
	diffs := d.dmp.DiffMainRunes(oldRunes, newRunes, false)
	diffs = d.dmp.DiffCharsToLines(diffs, lineArray)

	var ops []models.DiffOp
	for _, chunk := range diffs {
		switch chunk.Type {
		case diffmatchpatch.DiffEqual:
			ops = opsFromChunk(models.OpEqual, chunk.Text, ops)
		case diffmatchpatch.DiffDelete:
			ops = opsFromChunk(models.OpDelete, chunk.Text, ops)
		case diffmatchpatch.DiffInsert:
			ops = opsFromChunk(models.OpInsert, chunk.Text, ops)
		}
	}
	return ops
}

func opsFromChunk(tag models.OpTag, text string, ops []models.DiffOp) []models.DiffOp {
	for _, line := range SplitLines(text) {
		ops = append(ops, models.DiffOp{Tag: tag, Text: line})
	}
	return ops
}

// SplitLines splits text on newlines. A trailing newline does not produce an
// extra empty line and carriage returns before a newline are dropped.
func SplitLines(text string) []string {
	if text == "" {
		return nil
	}
	text = strings.TrimSuffix(text, "\n")
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
