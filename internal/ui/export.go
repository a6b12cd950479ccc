package ui

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// writeCSV writes a header row plus data rows to path.
func writeCSV(path string, headers []string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create export file: %w", err)
	}
	defer func() { _ = file.Close() }()

	w := csv.NewWriter(file)
	if err := w.Write(headers); err != nil {
		return fmt.Errorf("write header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}

// exportPath builds a timestamped file name in the user's home directory,
// falling back to the working directory.
func exportPath(name string) string {
	filename := fmt.Sprintf("rentdesk-%s-%s.csv", name, time.Now().Format("20060102-150405"))
	home, err := os.UserHomeDir()
	if err != nil {
		return filename
	}
	return filepath.Join(home, filename)
}

func exportCSVCmd(name string, headers []string, rows [][]string) tea.Cmd {
	return func() tea.Msg {
		path := exportPath(name)
		if err := writeCSV(path, headers, rows); err != nil {
			return exportDoneMsg{err: err}
		}
		return exportDoneMsg{path: path}
	}
}
