package cleaner

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/Henrik-Peters/Yalc/pkg"
)

// RotateOrDelete performs the file-system mutation for one triggered
// file. With keepRotate zero the file is deleted outright. Otherwise
// the rotation chain <path>.0 .. <path>.(keepRotate-1) is shifted one
// index up and the original moves to index zero, either by rename or by
// copy-truncate. Snapshots beyond the highest index are overwritten by
// the shift, oldest first.
func RotateOrDelete(path string, keepRotate uint64, copyTruncate bool) error {
	if keepRotate == 0 {
		slog.Info("removing file, keep_rotate is zero", "path", path)
		if err := os.Remove(path); err != nil {
			return fmt.Errorf("remove %s: %w", path, err)
		}
		return nil
	}

	// Shift existing snapshots in descending index order, so no rename
	// overwrites a file that has not been moved yet.
	for i := keepRotate - 1; i >= 1; i-- {
		src := fmt.Sprintf("%s.%d", path, i-1)
		exists, err := pkg.CheckFileExist(src)
		if err != nil {
			return fmt.Errorf("stat %s: %w", src, err)
		}
		if !exists {
			continue
		}
		dst := fmt.Sprintf("%s.%d", path, i)
		slog.Info("rotating snapshot", "from", src, "to", dst)
		if err := os.Rename(src, dst); err != nil {
			return fmt.Errorf("rotate %s: %w", src, err)
		}
	}

	rotated := path + ".0"
	if copyTruncate {
		slog.Info("copying original and truncating", "path", path, "to", rotated)
		if err := copyFile(path, rotated); err != nil {
			return err
		}
		// Reopen with truncate to clear the content while keeping the
		// same inode, so writers holding the file open are undisturbed.
		f, err := os.OpenFile(path, os.O_WRONLY|os.O_TRUNC, 0)
		if err != nil {
			return fmt.Errorf("truncate %s: %w", path, err)
		}
		return f.Close()
	}

	slog.Info("renaming original", "path", path, "to", rotated)
	if err := os.Rename(path, rotated); err != nil {
		return fmt.Errorf("rotate %s: %w", path, err)
	}
	return nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("create %s: %w", dst, err)
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return fmt.Errorf("copy %s: %w", src, err)
	}
	return out.Close()
}
