package vectorstore

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
	"time"

	"github.com/qdrant/go-client/qdrant"
	"google.golang.org/protobuf/types/known/timestamppb"

	"archive-search/internal/contextutil"
	"archive-search/internal/filters"
)

// QdrantStore implements Searcher against a Qdrant collection.
type QdrantStore struct {
	client     *qdrant.Client
	collection string
}

// NewQdrantStore creates a Qdrant-backed searcher for the given collection.
// urlStr should be in the format "http(s)://host:port"; the gRPC port is
// derived from the HTTP port.
func NewQdrantStore(urlStr, apiKey, collection string) (*QdrantStore, error) {
	parsedURL, err := url.Parse(urlStr)
	if err != nil {
		return nil, fmt.Errorf("invalid Qdrant URL: %w", err)
	}

	host := parsedURL.Hostname()
	if host == "" {
		host = "localhost"
	}

	// gRPC port is typically HTTP port + 1, default 6334.
	port := 6334
	if parsedURL.Port() != "" {
		if httpPort, err := strconv.Atoi(parsedURL.Port()); err == nil {
			port = httpPort + 1
		}
	}

	client, err := qdrant.NewClient(&qdrant.Config{
		Host:   host,
		Port:   port,
		APIKey: apiKey,
		UseTLS: parsedURL.Scheme == "https",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Qdrant client: %w", err)
	}

	return &QdrantStore{
		client:     client,
		collection: collection,
	}, nil
}

// Search runs one similarity query and returns the raw candidates ordered by
// descending score, as returned by the index.
func (s *QdrantStore) Search(ctx context.Context, vector []float32, limit int, conds []filters.Condition) ([]Candidate, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if limit <= 0 {
		return nil, fmt.Errorf("limit must be greater than 0")
	}

	qdrantFilter, err := buildFilter(conds)
	if err != nil {
		return nil, err
	}

	lim := uint64(limit)
	queryReq := &qdrant.QueryPoints{
		CollectionName: s.collection,
		Query:          qdrant.NewQuery(vector...),
		Limit:          &lim,
		WithPayload:    qdrant.NewWithPayload(true),
	}
	if qdrantFilter != nil {
		queryReq.Filter = qdrantFilter
	}

	scoredPoints, err := s.client.Query(ctx, queryReq)
	if err != nil {
		logger.ErrorContext(ctx, "failed to query points", "collection", s.collection, "limit", limit, "error", err)
		return nil, fmt.Errorf("failed to query points: %w", err)
	}

	candidates := make([]Candidate, 0, len(scoredPoints))
	for _, point := range scoredPoints {
		payload := make(map[string]any)
		if point.Payload != nil {
			payload = convertPayloadToMap(point.Payload)
		}
		candidates = append(candidates, Candidate{
			Score:   point.Score,
			Payload: payload,
		})
	}

	logger.InfoContext(ctx, "vector search completed", "collection", s.collection, "limit", limit, "candidates", len(candidates))
	return candidates, nil
}

// Ping lists collections as a lightweight connectivity probe.
func (s *QdrantStore) Ping(ctx context.Context) error {
	if _, err := s.client.ListCollections(ctx); err != nil {
		return fmt.Errorf("failed to list collections: %w", err)
	}
	return nil
}

// buildFilter translates normalized predicate conditions into a Qdrant
// filter. Date bounds arrive fully canonicalized as YYYY-MM-DD and become
// datetime range conditions; author sets become keyword match-any.
func buildFilter(conds []filters.Condition) (*qdrant.Filter, error) {
	if len(conds) == 0 {
		return nil, nil
	}

	must := make([]*qdrant.Condition, 0, len(conds))
	for _, cond := range conds {
		switch {
		case cond.Range != nil:
			dtRange := &qdrant.DatetimeRange{}
			if cond.Range.GTE != "" {
				t, err := time.Parse("2006-01-02", cond.Range.GTE)
				if err != nil {
					return nil, fmt.Errorf("invalid range lower bound %q: %w", cond.Range.GTE, err)
				}
				dtRange.Gte = timestamppb.New(t)
			}
			if cond.Range.LTE != "" {
				t, err := time.Parse("2006-01-02", cond.Range.LTE)
				if err != nil {
					return nil, fmt.Errorf("invalid range upper bound %q: %w", cond.Range.LTE, err)
				}
				dtRange.Lte = timestamppb.New(t)
			}
			must = append(must, qdrant.NewDatetimeRange(cond.Key, dtRange))
		case len(cond.MatchAny) > 0:
			must = append(must, qdrant.NewMatchKeywords(cond.Key, cond.MatchAny...))
		default:
			return nil, fmt.Errorf("condition on %q has neither range nor match values", cond.Key)
		}
	}

	return &qdrant.Filter{Must: must}, nil
}

// convertPayloadToMap converts a Qdrant payload to map[string]any.
func convertPayloadToMap(payload map[string]*qdrant.Value) map[string]any {
	result := make(map[string]any, len(payload))
	for k, v := range payload {
		if v == nil {
			continue
		}
		result[k] = convertValue(v)
	}
	return result
}

// convertValue converts a Qdrant Value to a Go any type.
func convertValue(v *qdrant.Value) any {
	switch val := v.Kind.(type) {
	case *qdrant.Value_BoolValue:
		return val.BoolValue
	case *qdrant.Value_IntegerValue:
		return val.IntegerValue
	case *qdrant.Value_DoubleValue:
		return val.DoubleValue
	case *qdrant.Value_StringValue:
		return val.StringValue
	case *qdrant.Value_ListValue:
		list := make([]any, len(val.ListValue.Values))
		for i, item := range val.ListValue.Values {
			list[i] = convertValue(item)
		}
		return list
	case *qdrant.Value_StructValue:
		return convertPayloadToMap(val.StructValue.Fields)
	default:
		return nil
	}
}
