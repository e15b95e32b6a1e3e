package comparison

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/aristath/investai/internal/utils"
	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/rs/zerolog"
)

// SearchIndex is an in-memory bleve index over the reference table. Symbols
// match by prefix and sectors by exact (case-insensitive) name.
type SearchIndex struct {
	index bleve.Index
	log   zerolog.Logger
}

// NewSearchIndex builds the index from the reference table
func NewSearchIndex(log zerolog.Logger) (*SearchIndex, error) {
	log = log.With().Str("service", "symbol_search").Logger()
	defer utils.OperationTimer("build_symbol_index", 5*time.Second, log)()

	index, err := bleve.NewMemOnly(buildIndexMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create symbol index: %w", err)
	}

	batch := index.NewBatch()
	for symbol, m := range referenceTable {
		doc := map[string]interface{}{
			"symbol": strings.ToLower(symbol),
			"sector": strings.ToLower(m.Sector),
		}
		if err := batch.Index(symbol, doc); err != nil {
			return nil, fmt.Errorf("failed to add %s to batch: %w", symbol, err)
		}
	}
	if err := index.Batch(batch); err != nil {
		return nil, fmt.Errorf("failed to index symbols: %w", err)
	}

	s := &SearchIndex{
		index: index,
		log:   log,
	}
	s.log.Debug().Int("symbols", len(referenceTable)).Msg("Symbol index built")
	return s, nil
}

// Values are lowercased before indexing and kept as single exact tokens.
func buildIndexMapping() mapping.IndexMapping {
	indexMapping := bleve.NewIndexMapping()

	fieldMapping := bleve.NewTextFieldMapping()
	fieldMapping.Analyzer = keyword.Name
	fieldMapping.Store = false

	symbolMapping := bleve.NewDocumentMapping()
	symbolMapping.AddFieldMappingsAt("symbol", fieldMapping)
	symbolMapping.AddFieldMappingsAt("sector", fieldMapping)

	indexMapping.DefaultMapping = symbolMapping
	return indexMapping
}

// Search returns the sorted tickers whose symbol starts with query or whose
// sector equals it. An empty query returns every ticker.
func (s *SearchIndex) Search(query string) ([]string, error) {
	prefix := strings.ToLower(NormalizeTicker(query))
	if prefix == "" {
		return Symbols(), nil
	}

	symbolQuery := bleve.NewPrefixQuery(prefix)
	symbolQuery.SetField("symbol")

	sectorQuery := bleve.NewTermQuery(strings.ToLower(strings.TrimSpace(query)))
	sectorQuery.SetField("sector")

	request := bleve.NewSearchRequestOptions(bleve.NewDisjunctionQuery(symbolQuery, sectorQuery), len(referenceTable), 0, false)
	result, err := s.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("symbol search %q: %w", query, err)
	}

	symbols := make([]string, 0, len(result.Hits))
	for _, hit := range result.Hits {
		symbols = append(symbols, hit.ID)
	}
	sort.Strings(symbols)
	return symbols, nil
}

// Close releases the index
func (s *SearchIndex) Close() error {
	return s.index.Close()
}
