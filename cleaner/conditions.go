package cleaner

import (
	"time"

	"github.com/Henrik-Peters/Yalc/config"
)

// FileStat is the subset of os.FileInfo the retention evaluator reads.
type FileStat interface {
	Size() int64
	ModTime() time.Time
}

// NeedsCleanup reports whether the retention policy requires action for
// one file. Conditions trigger on strict excess of their threshold. In
// ModeAll the checks are OR-combined with short-circuit: once the size
// condition has triggered, the modification time is not read at all.
//
// A modification time in the future yields a negative age and counts as
// "condition not met".
func NeedsCleanup(stat FileStat, mode config.CleanUpMode, ret config.RetentionConfig, now time.Time) bool {
	if mode == config.ModeFileSize || mode == config.ModeAll {
		limitBytes := int64(ret.FileSizeMB) * 1024 * 1024
		if stat.Size() > limitBytes {
			return true
		}
	}

	if mode == config.ModeLastWrite || mode == config.ModeAll {
		age := now.Sub(stat.ModTime())
		limit := time.Duration(ret.LastWriteH) * time.Hour
		if age > limit {
			return true
		}
	}

	return false
}
