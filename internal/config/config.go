// Package config loads default flag values for cmd/tspbb from an optional
// TOML file, in the same config-layering shape as the teacher pack's
// matzehuels/stacktower CLI (internal/cli): CLI flags explicitly set by the
// user always win, file values win over hardcoded defaults, and a missing
// --config flag is not an error — it just means every default comes from
// the flag package itself.
package config

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// File is the shape of an optional --config path.toml file.
type File struct {
	Workers   int    `toml:"workers"`
	Threads   int    `toml:"threads"`
	Bound     string `toml:"bound"`
	Mode      string `toml:"mode"`
	RedisAddr string `toml:"redis_addr"`
	LogLevel  string `toml:"log_level"`
	LogFormat string `toml:"log_format"`
}

// Load parses path as TOML into a File. An empty path returns a zero File
// with no error, so callers can unconditionally call Load(path) even when
// --config was never set.
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return File{}, fmt.Errorf("config: reading %s: %w", path, err)
	}
	if err := toml.Unmarshal(data, &f); err != nil {
		return File{}, fmt.Errorf("config: parsing %s: %w", path, err)
	}

	return f, nil
}

// OverlayInt returns fileValue when the flag still holds its zero value
// (never explicitly set) and cliValue otherwise. cmd/tspbb calls this once
// per numeric flag after cobra has parsed argv, so an explicit --workers=0
// is indistinguishable from "unset" here — spec.md's flags never accept 0
// as a meaningful value regardless, so this is not a lossy overlay in
// practice.
func OverlayInt(cliValue, fileValue int) int {
	if cliValue == 0 {
		return fileValue
	}

	return cliValue
}

// OverlayString returns fileValue when cliValue is empty, cliValue
// otherwise.
func OverlayString(cliValue, fileValue string) string {
	if cliValue == "" {
		return fileValue
	}

	return cliValue
}
