package report

import (
	"sort"
	"strings"

	"logstats/pkg/parser"
)

// averageReducer computes the mean response time across all records,
// with a per-endpoint breakdown for records that carry a URL.
type averageReducer struct{}

func (r *averageReducer) Kind() Kind {
	return KindAverage
}

func (r *averageReducer) Reduce(records []*parser.Record) *Result {
	result := &Result{Kind: KindAverage, Count: len(records)}

	if len(records) == 0 {
		result.NoData = true
		return result
	}

	type endpointAgg struct {
		count int
		total float64
	}

	var total float64
	endpoints := make(map[string]*endpointAgg)

	for _, rec := range records {
		total += rec.ResponseTime

		if rec.URL == "" {
			continue
		}
		endpoint := Endpoint(rec.URL)
		agg := endpoints[endpoint]
		if agg == nil {
			agg = &endpointAgg{}
			endpoints[endpoint] = agg
		}
		agg.count++
		agg.total += rec.ResponseTime
	}

	result.Value = total / float64(len(records))

	for endpoint, agg := range endpoints {
		result.Endpoints = append(result.Endpoints, EndpointStat{
			Endpoint: endpoint,
			Count:    agg.count,
			Average:  agg.total / float64(agg.count),
		})
	}

	// Most requested endpoints first; name breaks ties for stable output.
	sort.Slice(result.Endpoints, func(i, j int) bool {
		if result.Endpoints[i].Count != result.Endpoints[j].Count {
			return result.Endpoints[i].Count > result.Endpoints[j].Count
		}
		return result.Endpoints[i].Endpoint < result.Endpoints[j].Endpoint
	})

	return result
}

// Endpoint strips the query string from a URL.
func Endpoint(url string) string {
	if i := strings.Index(url, "?"); i >= 0 {
		return url[:i]
	}
	return url
}
