package fileio

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// WriteFile сохраняет таблицу по пути; формат по расширению (.xlsx или .csv).
// Каталог создаётся при необходимости. .xls только на чтение.
func WriteFile(path string, headers []string, rows [][]string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx":
		return writeXLSX(path, headers, rows)
	case ".csv":
		return writeCSV(path, headers, rows)
	default:
		return fmt.Errorf("unsupported file for writing: %s", path)
	}
}
