package report

import (
	"fmt"
	"strings"
)

// NewReducer returns the reducer for the given report kind.
// Unknown kinds are an error naming the kind and listing supported kinds.
func NewReducer(kind Kind) (Reducer, error) {
	switch kind {
	case KindAverage:
		return &averageReducer{}, nil
	default:
		return nil, fmt.Errorf("unknown report kind %q (supported: %s)", kind, kindList())
	}
}

func kindList() string {
	kinds := SupportedKinds()
	names := make([]string, len(kinds))
	for i, k := range kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}
