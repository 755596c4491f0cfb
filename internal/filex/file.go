package filex

import (
	"fmt"
	"os"
)

// EnsureDir creates dir (and parents) if missing, restricted to the owning
// user, and returns the path it ensured.
func EnsureDir(dir string) (string, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("mkdir %s: %w", dir, err)
	}
	return dir, nil
}
