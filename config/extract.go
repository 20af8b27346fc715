package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/Henrik-Peters/Yalc/parse/toml"
)

var (
	ErrKeyNotFound  = errors.New("missing required config key")
	ErrInvalidValue = errors.New("invalid config value")
)

// Load reads the config file at path, decoded as UTF-8, and extracts
// the typed config. Parse and extraction errors abort the load; there
// is no partial or best-effort configuration.
func Load(path string) (*Config, error) {
	slog.Debug("loading config", "path", path)
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	root, err := toml.Parse(string(data))
	if err != nil {
		return nil, err
	}
	return Extract(root)
}

// Extract builds the typed config from a parsed value tree. Every key
// is required and fetched explicitly; there are no defaults.
func Extract(root *toml.Table) (*Config, error) {
	dryRun, err := getBool(root, "dry_run")
	if err != nil {
		return nil, err
	}
	modeStr, err := getString(root, "mode")
	if err != nil {
		return nil, err
	}
	mode, err := ParseCleanUpMode(modeStr)
	if err != nil {
		return nil, err
	}
	keepRotate, err := getUint(root, "keep_rotate")
	if err != nil {
		return nil, err
	}
	missingOK, err := getBool(root, "missing_files_ok")
	if err != nil {
		return nil, err
	}
	copyTruncate, err := getBool(root, "copy_truncate")
	if err != nil {
		return nil, err
	}
	fileList, err := getStringArray(root, "file_list")
	if err != nil {
		return nil, err
	}
	fileSizeMB, err := getUint(root, "retention.file_size_mb")
	if err != nil {
		return nil, err
	}
	lastWriteH, err := getUint(root, "retention.last_write_h")
	if err != nil {
		return nil, err
	}

	return &Config{
		DryRun:         dryRun,
		Mode:           mode,
		KeepRotate:     keepRotate,
		MissingFilesOK: missingOK,
		CopyTruncate:   copyTruncate,
		FileList:       fileList,
		Retention: RetentionConfig{
			FileSizeMB: fileSizeMB,
			LastWriteH: lastWriteH,
		},
	}, nil
}

// lookup resolves a dotted path like "retention.file_size_mb" in the
// tree. Any missing segment reports the full path as not found.
func lookup(root *toml.Table, path string) (toml.Node, error) {
	n, ok := toml.Get(root, strings.Split(path, ".")...)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrKeyNotFound, path)
	}
	return n, nil
}

func scalar(root *toml.Table, path string, kind toml.ValueKind, want string) (*toml.Value, error) {
	n, err := lookup(root, path)
	if err != nil {
		return nil, err
	}
	v, ok := n.(*toml.Value)
	if !ok || v.Type != kind {
		return nil, fmt.Errorf("%w: expected %s for %q", ErrInvalidValue, want, path)
	}
	return v, nil
}

func getBool(root *toml.Table, path string) (bool, error) {
	v, err := scalar(root, path, toml.ValueBool, "boolean")
	if err != nil {
		return false, err
	}
	return v.V.(bool), nil
}

func getString(root *toml.Table, path string) (string, error) {
	v, err := scalar(root, path, toml.ValueString, "string")
	if err != nil {
		return "", err
	}
	return v.V.(string), nil
}

func getUint(root *toml.Table, path string) (uint64, error) {
	v, err := scalar(root, path, toml.ValueInt, "unsigned integer")
	if err != nil {
		return 0, err
	}
	i := v.V.(int64)
	if i < 0 {
		return 0, fmt.Errorf("%w: negative value is not allowed for %q", ErrInvalidValue, path)
	}
	return uint64(i), nil
}

func getStringArray(root *toml.Table, path string) ([]string, error) {
	n, err := lookup(root, path)
	if err != nil {
		return nil, err
	}
	arr, ok := n.(*toml.Array)
	if !ok {
		return nil, fmt.Errorf("%w: expected array for %q", ErrInvalidValue, path)
	}
	out := make([]string, 0, len(arr.Elems))
	for _, elem := range arr.Elems {
		v, ok := elem.(*toml.Value)
		if !ok || v.Type != toml.ValueString {
			return nil, fmt.Errorf("%w: expected string elements in %q", ErrInvalidValue, path)
		}
		out = append(out, v.V.(string))
	}
	return out, nil
}
