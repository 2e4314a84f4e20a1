package filex

import (
	"fmt"
	"github.com/otiai10/copy"
	"github.com/piercep/thread-safe-collections/pkg/common/pathx"
	"os"
	"path/filepath"
)

func Write(path string, text string) error {
	err := pathx.Ensure(filepath.Dir(path))
	if err != nil {
		return fmt.Errorf("cannot ensure path '%s': %w", path, err)
	}
	err = os.WriteFile(path, []byte(text), 0644)
	if err != nil {
		return fmt.Errorf("cannot write to file '%s': %w", path, err)
	}
	return nil
}

func Read(path string) ([]byte, error) {
	if !pathx.Exists(path) {
		return nil, fmt.Errorf("cannot read file as it does not exist at path '%s'", path)
	}
	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("cannot read file '%s': %w", path, err)
	}
	return bytes, nil
}

func Copy(sourcePath, destinationPath string) error {
	sourceStat, err := os.Stat(sourcePath)
	if err != nil {
		return fmt.Errorf("cannot copy file from '%s' to '%s': %w", sourcePath, destinationPath, err)
	}
	if !sourceStat.Mode().IsRegular() {
		return fmt.Errorf("cannot copy file from '%s' to '%s' as source is not a regular file", sourcePath, destinationPath)
	}
	if pathx.Exists(destinationPath) {
		return fmt.Errorf("cannot copy file from '%s' to '%s' as destination already exists", sourcePath, destinationPath)
	}
	if err := copy.Copy(sourcePath, destinationPath); err != nil {
		return fmt.Errorf("cannot copy file from '%s' to '%s': %w", sourcePath, destinationPath, err)
	}
	return nil
}
