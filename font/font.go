// Package font answers a single question: is a requested font installed?
//
// Availability is decided by scanning the platform font directories (plus
// any configured extras) for font files whose stem matches the requested
// family name. Resolution never fails hard; a missing font is reported as
// an empty option so callers can degrade to the library default.
package font

import (
	"os"
	"path/filepath"
	"runtime"
	"sort"
	"strings"

	"github.com/samber/lo"
	"github.com/samber/mo"
	"github.com/spf13/viper"

	"github.com/mplthemes/mplthemes/filesystem"
	"github.com/mplthemes/mplthemes/key"
	"github.com/mplthemes/mplthemes/util"
)

var fontExtensions = map[string]bool{
	".ttf": true,
	".otf": true,
	".ttc": true,
}

// Dirs lists every directory scanned for installed fonts: the platform
// locations first, then any extras from configuration.
func Dirs() []string {
	var dirs []string
	switch runtime.GOOS {
	case "darwin":
		dirs = []string{"/System/Library/Fonts", "/Library/Fonts"}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, "Library", "Fonts"))
		}
	case "windows":
		dirs = []string{filepath.Join(os.Getenv("WINDIR"), "Fonts")}
	default:
		dirs = []string{"/usr/share/fonts", "/usr/local/share/fonts"}
		if home, err := os.UserHomeDir(); err == nil {
			dirs = append(dirs, filepath.Join(home, ".fonts"),
				filepath.Join(home, ".local", "share", "fonts"))
		}
	}
	return append(dirs, viper.GetStringSlice(key.FontsPaths)...)
}

// Available returns the sorted, de-duplicated names of every font found on
// the system.
func Available() []string {
	found := make(map[string]bool)
	for _, dir := range Dirs() {
		walk(dir, found)
	}
	names := lo.Keys(found)
	sort.Strings(names)
	return names
}

func walk(dir string, found map[string]bool) {
	fs := filesystem.API()
	if exists, err := fs.DirExists(dir); err != nil || !exists {
		return
	}
	util.Ignore(func() error {
		return fs.Walk(dir, func(path string, info os.FileInfo, err error) error {
			if err != nil || info == nil || info.IsDir() {
				return nil
			}
			if fontExtensions[strings.ToLower(filepath.Ext(path))] {
				found[util.FileStem(path)] = true
			}
			return nil
		})
	})
}

// Resolve reports the installed font matching name, or an empty option
// when the font is unavailable. Matching is case-insensitive on the file
// stem, tolerating the common "Name" vs "name" packaging difference.
func Resolve(name string) mo.Option[string] {
	return ResolveFrom(name, Available())
}

// ResolveFrom matches name against an already listed font set, so callers
// that also report the list only pay for the directory scan once.
func ResolveFrom(name string, available []string) mo.Option[string] {
	want := strings.ToLower(name)
	for _, candidate := range available {
		if strings.ToLower(candidate) == want {
			return mo.Some(candidate)
		}
	}
	return mo.None[string]()
}
