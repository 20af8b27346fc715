package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/Henrik-Peters/Yalc/pkg"
)

// DefaultConfigPath is used when no config path is given on the CLI.
const DefaultConfigPath = "/etc/yalc.toml"

// DefaultConfigContent is the template written by "yalc config init".
const DefaultConfigContent = `# Yalc log rotation config
dry_run = false
mode = "FileSize"
keep_rotate = 3
missing_files_ok = false
copy_truncate = false

file_list = [
    "/var/log/my_app.log"
]

[retention]
file_size_mb = 50
last_write_h = 168
`

var ErrConfigExists = errors.New("config file already exists")

// Init writes the default template config to path. An existing file is
// never overwritten.
func Init(path string) error {
	exists, err := pkg.CheckFileExist(path)
	if err != nil {
		return fmt.Errorf("check config path: %w", err)
	}
	if exists {
		return fmt.Errorf("%w: %s", ErrConfigExists, path)
	}
	slog.Info("creating template config", "path", path)
	if err := os.WriteFile(path, []byte(DefaultConfigContent), 0o644); err != nil {
		return fmt.Errorf("write config template: %w", err)
	}
	return nil
}
