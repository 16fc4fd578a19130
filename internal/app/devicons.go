package app

import (
	"os"
	"path"
	"time"

	"github.com/chmouel/diff-folders/internal/models"
	devicons "github.com/epilande/go-devicons"
)

// iconFileInfo lets devicons resolve an icon from a name without a stat call,
// since deleted entries no longer exist on the new side.
type iconFileInfo struct {
	name  string
	isDir bool
}

func (i iconFileInfo) Name() string { return i.name }

func (i iconFileInfo) Size() int64 { return 0 }

func (i iconFileInfo) Mode() os.FileMode {
	if i.isDir {
		return os.ModeDir | 0o755
	}
	return 0
}

func (i iconFileInfo) ModTime() time.Time { return time.Time{} }

func (i iconFileInfo) IsDir() bool { return i.isDir }

func (i iconFileInfo) Sys() any { return nil }

func deviconForName(name string, isDir bool) string {
	if name == "" {
		return ""
	}
	style := devicons.IconForInfo(iconFileInfo{name: name, isDir: isDir})
	return style.Icon
}

// entryKind returns the leading glyph of a list row: a devicon when icons are
// enabled, otherwise "d" or "f".
func entryKind(entry models.ClassifiedEntry, showIcons bool) string {
	if showIcons {
		if icon := deviconForName(path.Base(entry.Key), entry.IsDir); icon != "" {
			return icon
		}
	}
	if entry.IsDir {
		return "d"
	}
	return "f"
}
