package pathx

import (
	"fmt"
	log "github.com/sirupsen/logrus"
	"os"
	"path/filepath"
)

func Current() string {
	path, err := os.Getwd()
	if err != nil {
		log.Fatalf("cannot determine current working directory: %s", err)
	}
	return path
}

func Abs(path string) string {
	result, err := filepath.Abs(path)
	if err != nil {
		log.Fatalf("cannot determine absolute path for '%s': %s", path, err)
	}
	return result
}

func Normalize(path string) string {
	return filepath.ToSlash(Abs(path))
}

func Exists(path string) bool {
	exists, _ := ExistsStrict(path)
	return exists
}

func ExistsStrict(path string) (bool, error) {
	_, err := os.Stat(path)
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("cannot check path existence '%s': %w", path, err)
}

func Ensure(path string) error {
	err := os.MkdirAll(path, 0755)
	if err != nil {
		return fmt.Errorf("cannot ensure path '%s': %w", path, err)
	}
	return nil
}
