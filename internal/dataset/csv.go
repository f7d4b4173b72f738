package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
)

// CSVWriter appends records to a CSV file, writing the header row only
// when the file is empty. Standard CSV quoting makes embedded delimiters,
// quotes and newlines round-trip exactly.
type CSVWriter struct{}

// Write outputs the records as CSV rows in acceptance order.
func (w *CSVWriter) Write(records []Record, outputPath string) error {
	file, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat output file: %w", err)
	}

	writer := csv.NewWriter(file)

	if info.Size() == 0 {
		if err := writer.Write([]string{"commit_message", "commit_changes"}); err != nil {
			return fmt.Errorf("failed to write csv header: %w", err)
		}
	}

	for _, record := range records {
		if err := writer.Write([]string{record.CommitMessage, record.CommitChanges}); err != nil {
			return fmt.Errorf("failed to write csv record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}
