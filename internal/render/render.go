// Package render turns the displayed entry into the lines and title of the
// detail pane.
package render

import (
	"fmt"
	"os"
	"strings"

	"github.com/chmouel/diff-folders/internal/linediff"
	"github.com/chmouel/diff-folders/internal/models"
)

// TitleKind tags the detail pane title so the UI can style it.
type TitleKind int

// Title kinds.
const (
	TitleNormal TitleKind = iota
	TitleInfo
	TitleError
)

// String returns a human-readable name for the kind.
func (k TitleKind) String() string {
	switch k {
	case TitleNormal:
		return "normal"
	case TitleInfo:
		return "info"
	case TitleError:
		return "error"
	default:
		return "unknown"
	}
}

const (
	// HomeTitle is the title of the informational page.
	HomeTitle = "About"
	// ErrorTitle is the title shown with informational and error messages.
	ErrorTitle = "error"

	msgSelect    = "please press 'enter' to select a file"
	msgDirectory = "this is a directory"
	msgIdentical = "files are identical"
)

// HomeMarkdown is the informational page shown before any entry is selected
// and whenever the user asks for it.
const HomeMarkdown = `# diff-folders

A tool for comparing two directories side by side.

The left pane lists every entry that differs between the **old** and the
**new** directory:

- ` + "`A`" + ` added in the new directory
- ` + "`M`" + ` modified between the two
- ` + "`D`" + ` deleted from the new directory

Wholly added or deleted directories are shown once, as a single entry.

## Keys

| Key | Action |
|---|---|
| ` + "`j` / `k`" + ` | next / previous entry, or scroll the diff |
| ` + "`ctrl+d` / `ctrl+u`" + ` | page down / up |
| ` + "`h` / `l`" + ` | focus the list / the diff |
| ` + "`enter`" + ` | show the selected entry |
| ` + "`?`" + ` | show this page |
| ` + "`q`" + ` | quit |
`

// Result is the content of the detail pane.
type Result struct {
	Lines []models.DiffLine
	Title string
	Kind  TitleKind
}

// Renderer renders classified entries. Zero-valued Differ and ReadFile fall
// back to the Myers line differ and os.ReadFile.
type Renderer struct {
	OldRoot  string
	NewRoot  string
	Differ   linediff.Differ
	ReadFile func(string) ([]byte, error)
}

// New returns a renderer for the two canonical roots.
func New(oldRoot, newRoot string) *Renderer {
	return &Renderer{
		OldRoot:  oldRoot,
		NewRoot:  newRoot,
		Differ:   linediff.NewMyers(),
		ReadFile: os.ReadFile,
	}
}

// Render returns the detail pane content for entry. Read failures are
// reported in the result and never returned as errors.
func (r *Renderer) Render(entry *models.ClassifiedEntry, home bool) Result {
	if home {
		return Result{
			Lines: plainLines(HomeMarkdown, models.ColorInfo),
			Title: HomeTitle,
			Kind:  TitleInfo,
		}
	}
	if entry == nil || entry.Path == "" {
		return message(msgSelect, models.ColorInfo)
	}
	if entry.IsDir {
		return message(msgDirectory, models.ColorInfo)
	}

	switch entry.Status {
	case models.StatusNew:
		return r.renderWhole(entry.Path, '+', models.ColorInsert, "New File: ")
	case models.StatusDeleted:
		return r.renderWhole(entry.Path, '-', models.ColorDelete, "Deleted: ")
	case models.StatusModified:
		return r.renderModified(entry.Path)
	case models.StatusNormal:
		if _, err := r.read(entry.Path); err != nil {
			return readError(entry.Path, err)
		}
		return message(msgIdentical, models.ColorInfo)
	default:
		return message(fmt.Sprintf("unknown status: %s", entry.Status), models.ColorError)
	}
}

// OldPath maps a path under the new root to the same relative path under
// the old root. Only a leading new-root prefix is substituted.
func (r *Renderer) OldPath(newPath string) (string, error) {
	rest, ok := strings.CutPrefix(newPath, r.NewRoot)
	if !ok || (rest != "" && !os.IsPathSeparator(rest[0])) {
		return "", fmt.Errorf("%s is not under %s", newPath, r.NewRoot)
	}
	return r.OldRoot + rest, nil
}

func (r *Renderer) renderWhole(path string, sign rune, color models.Color, titlePrefix string) Result {
	content, err := r.read(path)
	if err != nil {
		return readError(path, err)
	}
	lines := linediff.SplitLines(content)
	out := make([]models.DiffLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, models.DiffLine{Sign: sign, Text: line, Color: color})
	}
	return Result{Lines: out, Title: titlePrefix + path, Kind: TitleNormal}
}

func (r *Renderer) renderModified(newPath string) Result {
	newContent, err := r.read(newPath)
	if err != nil {
		return readError(newPath, err)
	}
	oldPath, err := r.OldPath(newPath)
	if err != nil {
		return readError(newPath, err)
	}
	oldContent, err := r.read(oldPath)
	if err != nil {
		return readError(oldPath, err)
	}

	ops := r.differ().Diff(oldContent, newContent)
	out := make([]models.DiffLine, 0, len(ops))
	for _, op := range ops {
		out = append(out, models.DiffLine{Sign: op.Tag.Sign(), Text: op.Text, Color: models.ColorFor(op.Tag)})
	}
	return Result{
		Lines: out,
		Title: fmt.Sprintf("Diff: %s and %s", newPath, oldPath),
		Kind:  TitleNormal,
	}
}

func (r *Renderer) read(path string) (string, error) {
	readFile := r.ReadFile
	if readFile == nil {
		readFile = os.ReadFile
	}
	data, err := readFile(path)
	if err != nil {
		return "", err
	}
	return string(data), nil
}

func (r *Renderer) differ() linediff.Differ {
	if r.Differ == nil {
		return linediff.NewMyers()
	}
	return r.Differ
}

func message(text string, color models.Color) Result {
	return Result{
		Lines: []models.DiffLine{{Sign: ' ', Text: text, Color: color}},
		Title: ErrorTitle,
		Kind:  TitleError,
	}
}

func readError(path string, err error) Result {
	return message(fmt.Sprintf("open file: %s, error: %v", path, err), models.ColorError)
}

func plainLines(text string, color models.Color) []models.DiffLine {
	lines := linediff.SplitLines(text)
	out := make([]models.DiffLine, 0, len(lines))
	for _, line := range lines {
		out = append(out, models.DiffLine{Sign: ' ', Text: line, Color: color})
	}
	return out
}
