package parser

import (
	"context"
	"io"
)

// Load reads every file in order and returns all successfully parsed
// records in file-then-line order, plus the count of malformed lines
// that were skipped. Any file that cannot be opened or read aborts the
// load with an error naming the path.
func Load(ctx context.Context, files []string, lp *LineParser) ([]*Record, int, error) {
	source := NewFileSource(files, lp)
	defer source.Close()

	var records []*Record
	for {
		rec, err := source.Next(ctx)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, 0, err
		}
		records = append(records, rec)
	}

	return records, source.Skipped(), nil
}
