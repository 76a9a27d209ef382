package cli

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"sync"

	"github.com/ardnew/corefmt/pkg"
)

// baseConfig is the base name of the configuration files.
const baseConfig = "config"

// basePrefix returns the name of the per-user directories of corefmt: the
// base name of the executable, with the dlv debugger's default output name
// mapped to [pkg.Name] and any leading dots removed.
var basePrefix = sync.OnceValue(
	func() string {
		id := os.Args[0]
		if exe, err := os.Executable(); err == nil {
			id = exe
		}

		id = filepath.Base(id)
		id = strings.TrimSuffix(id, filepath.Ext(id))
		id = regexp.MustCompile(`^__debug_bin\d+$`).ReplaceAllString(id, pkg.Name)

		return strings.TrimLeft(id, ".")
	},
)

// userDir joins basePrefix to the directory returned by base, falling back to
// fallback in the home directory and then to the working directory.
// Nothing is created.
func userDir(base func() (string, error), fallback string) string {
	dir, err := base()
	if err != nil {
		if home, herr := os.UserHomeDir(); herr == nil {
			dir = filepath.Join(home, fallback)
		} else if dir, err = os.Getwd(); err != nil {
			dir = "."
		}
	}

	return filepath.Join(dir, basePrefix())
}

// configDir returns the configuration directory path.
var configDir = sync.OnceValue(func() string {
	return userDir(os.UserConfigDir, ".config")
})

// configPath returns the path formed by joining the configuration directory
// with the given path elements.
func configPath(elem ...string) string {
	return filepath.Join(append([]string{configDir()}, elem...)...)
}
