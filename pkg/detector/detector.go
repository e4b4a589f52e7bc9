// Package detector infers the timestamp layout used by a JSON-lines log file.
package detector

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"
)

// DefaultSampleSize is the number of lines sampled when none is configured.
const DefaultSampleSize = 100

// DefaultTimestampField is the JSON field inspected when none is configured.
const DefaultTimestampField = "@timestamp"

// Detector samples log lines and tests the timestamp field's values
// against known layouts.
type Detector struct {
	sampleSize     int
	timestampField string
}

// Option configures a Detector.
type Option func(*Detector)

// WithSampleSize sets how many lines to sample.
func WithSampleSize(n int) Option {
	return func(d *Detector) {
		if n > 0 {
			d.sampleSize = n
		}
	}
}

// WithTimestampField sets the JSON field inspected for timestamps.
func WithTimestampField(field string) Option {
	return func(d *Detector) {
		if field != "" {
			d.timestampField = field
		}
	}
}

// New creates a Detector.
func New(opts ...Option) *Detector {
	d := &Detector{
		sampleSize:     DefaultSampleSize,
		timestampField: DefaultTimestampField,
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Match is one candidate layout's score against the sample.
type Match struct {
	// Format is the candidate layout.
	Format Format `json:"format"`

	// MatchCount is the number of sampled timestamp values that parsed.
	MatchCount int `json:"match_count"`

	// Confidence is MatchCount over the number of sampled lines.
	Confidence float64 `json:"confidence"`

	// SampleValue is the first timestamp value that matched.
	SampleValue string `json:"sample_value"`

	// ParsedTime is SampleValue parsed with this layout.
	ParsedTime time.Time `json:"parsed_time"`
}

// DetectionResult summarizes a detection run.
type DetectionResult struct {
	// SampledLines is the number of non-blank lines examined.
	SampledLines int `json:"sampled_lines"`

	// JSONLines is the number of sampled lines that were valid JSON objects.
	JSONLines int `json:"json_lines"`

	// WithField is the number of lines carrying the timestamp field as a string.
	WithField int `json:"with_field"`

	// Matches holds every layout that parsed at least one value, best first.
	Matches []Match `json:"matches"`
}

// HasMatch reports whether any layout matched.
func (r *DetectionResult) HasMatch() bool {
	return len(r.Matches) > 0
}

// BestMatch returns the highest-scoring match.
// Only valid when HasMatch is true.
func (r *DetectionResult) BestMatch() *Match {
	return &r.Matches[0]
}

// DetectFromFile samples the file and scores each known layout.
func (d *Detector) DetectFromFile(ctx context.Context, path string) (*DetectionResult, error) {
	f, err := os.Open(path) // #nosec G304 -- user-provided paths are expected
	if err != nil {
		return nil, fmt.Errorf("opening log file %s: %w", path, err)
	}
	defer f.Close()

	return d.detect(ctx, f)
}

func (d *Detector) detect(ctx context.Context, r io.Reader) (*DetectionResult, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	formats := KnownFormats()
	counts := make([]int, len(formats))
	samples := make([]string, len(formats))
	parsed := make([]time.Time, len(formats))

	result := &DetectionResult{}

	for result.SampledLines < d.sampleSize && scanner.Scan() {
		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		default:
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		result.SampledLines++

		var fields map[string]any
		if err := json.Unmarshal([]byte(line), &fields); err != nil {
			continue
		}
		result.JSONLines++

		value, ok := fields[d.timestampField].(string)
		if !ok || value == "" {
			continue
		}
		result.WithField++

		for i, format := range formats {
			ts, err := time.Parse(format.Layout, value)
			if err != nil {
				continue
			}
			counts[i]++
			if samples[i] == "" {
				samples[i] = value
				parsed[i] = ts
			}
		}
	}

	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading sample: %w", err)
	}

	for i, format := range formats {
		if counts[i] == 0 {
			continue
		}
		result.Matches = append(result.Matches, Match{
			Format:      format,
			MatchCount:  counts[i],
			Confidence:  float64(counts[i]) / float64(result.SampledLines),
			SampleValue: samples[i],
			ParsedTime:  parsed[i],
		})
	}

	// Stable sort keeps KnownFormats priority order on ties.
	sort.SliceStable(result.Matches, func(i, j int) bool {
		return result.Matches[i].MatchCount > result.Matches[j].MatchCount
	})

	return result, nil
}
