package cli

import (
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"

	"github.com/ardnew/corefmt/log"
)

// resolve is a [kong.ConfigurationLoader] that parses YAML config files.
//
// It can be used with [kong.Configuration] like this:
//
//	kong.Configuration(resolve, "/path/to/config.yaml")
//
// The document is converted as follows:
//   - Top-level keys name flags, with underscores in place of hyphens
//     (e.g., "log_level" for --log-level)
//   - Nested mappings are flattened by joining keys with an underscore,
//     so "log: {level: debug}" is equivalent to "log_level: debug"
//   - Numbers are passed to Kong as their decimal text
//   - Sequences are passed through unchanged
//   - A key applies to every flag of that name in the selected command, so
//     "indent" sets fmt --indent and "json_indent" sets tokens json
//     --json-indent
//
// Example config file:
//
//	log_level: debug
//	log_format: json
//	log_pretty: false
//	indent: 4
//
// A malformed document is reported as a warning and ignored.
// Command-line flags override config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var doc map[string]any

	err = yaml.Unmarshal(data, &doc)
	if err != nil {
		log.Warn("ignoring malformed configuration",
			slog.String("error", err.Error()),
		)

		return config{}, nil
	}

	cfg := config{}
	cfg.flatten("", doc)

	return cfg, nil
}

// config implements [kong.Resolver] for flat configuration maps.
type config map[string]any

// Validate implements [kong.Resolver].
func (r config) Validate(*kong.Application) error {
	return nil
}

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	// Kong flags use hyphens (e.g., "log-level") but config keys
	// may use underscores. Try both forms.
	name := flag.Name

	if value, ok := r[name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(name, "-", "_")]; ok {
		return value, nil
	}

	// Not found - return nil to let Kong use defaults
	return nil, nil
}

// flatten copies the entries of m into r, prefixing each key with prefix.
func (r config) flatten(prefix string, m map[string]any) {
	for key, val := range m {
		if prefix != "" {
			key = prefix + "_" + key
		}

		switch v := val.(type) {
		case map[string]any:
			r.flatten(key, v)
		default:
			r[key] = scalar(v)
		}
	}
}

// scalar converts a decoded YAML value to a form Kong's mappers accept.
func scalar(val any) any {
	switch v := val.(type) {
	case int:
		return strconv.Itoa(v)
	case int64:
		return strconv.FormatInt(v, 10)
	case uint64:
		return strconv.FormatUint(v, 10)
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	case nil, bool, string, []any:
		return v
	default:
		return fmt.Sprint(v)
	}
}
