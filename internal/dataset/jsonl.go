package dataset

import (
	"encoding/json"
	"fmt"
	"os"
)

// JSONLWriter appends records as newline-delimited JSON, one object per
// record. There is no header row in this format.
type JSONLWriter struct{}

// Write outputs the records as JSON lines in acceptance order.
func (w *JSONLWriter) Write(records []Record, outputPath string) error {
	file, err := os.OpenFile(outputPath, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return fmt.Errorf("failed to open output file: %w", err)
	}
	defer file.Close()

	enc := json.NewEncoder(file)
	for _, record := range records {
		if err := enc.Encode(record); err != nil {
			return fmt.Errorf("failed to write jsonl record: %w", err)
		}
	}

	return nil
}
