// Package config provides the typed yalc configuration: loading and
// validating the TOML config file, applying CLI overrides, and managing
// the default template.
package config

import (
	"fmt"
	"strings"
)

// CleanUpMode selects which conditions decide whether a file has to be
// cleaned up.
type CleanUpMode int

const (
	// ModeFileSize cleans up a file as soon as the size from
	// retention.file_size_mb has been exceeded.
	ModeFileSize CleanUpMode = iota

	// ModeLastWrite cleans up a file as soon as the last write is
	// older than retention.last_write_h hours.
	ModeLastWrite

	// ModeAll evaluates every condition; a file is cleaned up when at
	// least one of them is met (OR combination).
	ModeAll
)

func (m CleanUpMode) String() string {
	switch m {
	case ModeFileSize:
		return "FileSize"
	case ModeLastWrite:
		return "LastWrite"
	case ModeAll:
		return "All"
	}
	return "Unknown"
}

// ParseCleanUpMode parses the mode config value, case-insensitively.
func ParseCleanUpMode(s string) (CleanUpMode, error) {
	switch strings.ToUpper(s) {
	case "FILESIZE":
		return ModeFileSize, nil
	case "LASTWRITE":
		return ModeLastWrite, nil
	case "ALL":
		return ModeAll, nil
	}
	return 0, fmt.Errorf("%w: unknown cleanup mode %q", ErrInvalidValue, s)
}

// RetentionConfig holds the thresholds checked for each file before a
// rotation is started.
type RetentionConfig struct {
	// Size in megabytes that a file must exceed to be cleaned up.
	FileSizeMB uint64

	// Hours since the last write before a file is cleaned up.
	LastWriteH uint64
}

// Config represents one execution of the yalc cleanup. It is immutable
// once extracted; overrides produce a copy.
type Config struct {
	// Operations are logged but not executed when true.
	DryRun bool

	// Which conditions are evaluated per file.
	Mode CleanUpMode

	// Number of historical copies kept by a rotation. Zero means the
	// file is deleted outright.
	KeepRotate uint64

	// A missing file from the file list is not an error when true.
	MissingFilesOK bool

	// Copy the file and empty it in place instead of renaming it, so a
	// process still writing to it is not disturbed.
	CopyTruncate bool

	// Paths of the log files to process, in order.
	FileList []string

	// Per-file cleanup thresholds.
	Retention RetentionConfig
}

// ApplyOverrides returns a copy of the config with the CLI run flags
// applied. Flags only ever enable behavior, they never reset a value
// that the config file turned on.
func (c Config) ApplyOverrides(dryRun, ignoreMissing, truncate bool) Config {
	out := c
	if dryRun {
		out.DryRun = true
	}
	if ignoreMissing {
		out.MissingFilesOK = true
	}
	if truncate {
		out.CopyTruncate = true
	}
	return out
}
