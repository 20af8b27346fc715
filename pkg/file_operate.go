package pkg

import "os"

// CheckFileExist reports whether a path exists in the file system.
// The path itself is inspected, symlinks are not followed.
func CheckFileExist(filePath string) (bool, error) {
	_, err := os.Lstat(filePath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}
