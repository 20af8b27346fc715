package cleaner

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/Henrik-Peters/Yalc/config"
)

// fakeStat is a hand-rolled FileStat double that counts how often the
// modification time is read.
type fakeStat struct {
	size     int64
	modTime  time.Time
	modCalls int
}

func (f *fakeStat) Size() int64 { return f.size }

func (f *fakeStat) ModTime() time.Time {
	f.modCalls++
	return f.modTime
}

func TestNeedsCleanupFileSize(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ret := config.RetentionConfig{FileSizeMB: 10, LastWriteH: 24}

	stat := &fakeStat{size: 10 * 1024 * 1024, modTime: now}
	assert.False(t, NeedsCleanup(stat, config.ModeFileSize, ret, now),
		"size equal to the limit must not trigger")

	stat.size++
	assert.True(t, NeedsCleanup(stat, config.ModeFileSize, ret, now),
		"one byte over the limit triggers")

	assert.Zero(t, stat.modCalls, "size mode never reads the modification time")
}

func TestNeedsCleanupLastWrite(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ret := config.RetentionConfig{FileSizeMB: 10, LastWriteH: 24}

	atLimit := &fakeStat{size: 0, modTime: now.Add(-24 * time.Hour)}
	assert.False(t, NeedsCleanup(atLimit, config.ModeLastWrite, ret, now),
		"age equal to the limit must not trigger")

	over := &fakeStat{size: 0, modTime: now.Add(-24*time.Hour - time.Second)}
	assert.True(t, NeedsCleanup(over, config.ModeLastWrite, ret, now))

	huge := &fakeStat{size: 1 << 40, modTime: now}
	assert.False(t, NeedsCleanup(huge, config.ModeLastWrite, ret, now),
		"write-age mode ignores the file size")
}

func TestNeedsCleanupFutureModTime(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ret := config.RetentionConfig{FileSizeMB: 10, LastWriteH: 24}

	future := &fakeStat{size: 0, modTime: now.Add(48 * time.Hour)}
	assert.False(t, NeedsCleanup(future, config.ModeLastWrite, ret, now),
		"a modification time in the future counts as not met")
	assert.False(t, NeedsCleanup(future, config.ModeAll, ret, now))
}

func TestNeedsCleanupAll(t *testing.T) {
	now := time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC)
	ret := config.RetentionConfig{FileSizeMB: 10, LastWriteH: 24}

	bySize := &fakeStat{size: 11 * 1024 * 1024, modTime: now}
	assert.True(t, NeedsCleanup(bySize, config.ModeAll, ret, now))
	assert.Zero(t, bySize.modCalls, "a met size condition short-circuits the age check")

	byAge := &fakeStat{size: 0, modTime: now.Add(-25 * time.Hour)}
	assert.True(t, NeedsCleanup(byAge, config.ModeAll, ret, now))

	neither := &fakeStat{size: 1024, modTime: now.Add(-time.Hour)}
	assert.False(t, NeedsCleanup(neither, config.ModeAll, ret, now))
}
