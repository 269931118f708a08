package loader

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/viper"

	"github.com/dbsmedya/artmuseum/internal/catalog"
	"github.com/dbsmedya/artmuseum/internal/types"
)

// artworksKey is the top-level list in a catalog file.
const artworksKey = "artworks"

// FileSource reads artworks from a YAML, JSON or TOML catalog file:
//
//	artworks:
//	  - name: Guernica
//	    year: 1937
//	    cost: 2000.0
type FileSource struct {
	path string
}

// NewFileSource creates a FileSource for path. The format follows the file extension.
func NewFileSource(path string) *FileSource {
	return &FileSource{path: path}
}

func (s *FileSource) Name() string { return s.path }

// Records parses the catalog file.
func (s *FileSource) Records(ctx context.Context) ([]catalog.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigFile(s.path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read catalog file: %w", err)
	}
	if !v.IsSet(artworksKey) {
		return nil, fmt.Errorf("catalog file %s has no %q list", s.path, artworksKey)
	}

	entries, err := entryMaps(v.Get(artworksKey))
	if err != nil {
		return nil, fmt.Errorf("catalog file %s: %w", s.path, err)
	}

	records := make([]catalog.Record, 0, len(entries))
	for i, entry := range entries {
		rec, err := recordFromEntry(entry)
		if err != nil {
			return nil, fmt.Errorf("catalog file %s: artwork %d: %w", s.path, i+1, err)
		}
		records = append(records, rec)
	}
	return records, nil
}

// entryMaps normalises the decoded list. YAML and JSON yield []interface{},
// TOML arrays of tables yield []map[string]interface{}.
func entryMaps(raw interface{}) ([]map[string]interface{}, error) {
	switch list := raw.(type) {
	case nil:
		return nil, nil
	case []map[string]interface{}:
		return list, nil
	case []interface{}:
		entries := make([]map[string]interface{}, 0, len(list))
		for i, item := range list {
			m, ok := item.(map[string]interface{})
			if !ok {
				return nil, fmt.Errorf("artwork %d: expected a mapping, got %T", i+1, item)
			}
			entries = append(entries, m)
		}
		return entries, nil
	default:
		return nil, fmt.Errorf("%q must be a list, got %T", artworksKey, raw)
	}
}

func recordFromEntry(entry map[string]interface{}) (catalog.Record, error) {
	name, err := types.ToString(field(entry, "name"))
	if err != nil {
		return catalog.Record{}, fmt.Errorf("name: %w", err)
	}
	year, err := types.ParseInt(field(entry, "year"))
	if err != nil {
		return catalog.Record{}, fmt.Errorf("year: %w", err)
	}
	cost, err := types.ParseFloat64(field(entry, "cost"))
	if err != nil {
		return catalog.Record{}, fmt.Errorf("cost: %w", err)
	}
	return catalog.NewRecord(name, year, cost), nil
}

// field looks up key ignoring case, matching viper's own key handling.
func field(entry map[string]interface{}, key string) interface{} {
	if v, ok := entry[key]; ok {
		return v
	}
	for k, v := range entry {
		if strings.EqualFold(k, key) {
			return v
		}
	}
	return nil
}
