package dataset

// Record is one accepted (message, changes) pair of the dataset.
type Record struct {
	CommitMessage string `json:"commit_message"`
	CommitChanges string `json:"commit_changes"`
}

// Format represents the dataset file format.
type Format string

const (
	FormatCSV   Format = "csv"
	FormatJSONL Format = "jsonl"
)

// Writer persists accepted records to the output path.
type Writer interface {
	Write(records []Record, outputPath string) error
}

// NewWriter creates a dataset writer for the specified format.
func NewWriter(format Format) Writer {
	switch format {
	case FormatJSONL:
		return &JSONLWriter{}
	default:
		return &CSVWriter{}
	}
}

// Compile-time interface conformance checks.
var (
	_ Writer = (*CSVWriter)(nil)
	_ Writer = (*JSONLWriter)(nil)
)
