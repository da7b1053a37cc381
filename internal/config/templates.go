package config

import (
	"fmt"
	"os"
	"path/filepath"
)

// Template is the commented starter config written by WriteTemplate.
const Template = `# bitsctl configuration

# Output format for "bitsctl decode": text, json, yaml, cbor or dot.
format = "text"

# Color for text output: auto, always or never.
color = "auto"

# Log level on stderr: debug, info, warn, error or off.
log_level = "warn"

# Largest accepted input, before and after decompression.
max_input_bytes = 16777216

# Use the tighter decoder limits for untrusted input.
strict = false

# Decoder resource limits. 0 disables a check.
[limits]
max_depth = 1024
max_children = 32767
max_packets = 4194304
`

// WriteTemplate writes Template to path, creating parent directories.
func WriteTemplate(path string, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("config already exists: %s", path)
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	return os.WriteFile(path, []byte(Template), 0o600)
}
