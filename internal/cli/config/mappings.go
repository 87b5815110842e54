package config

import (
	"fmt"
	"os"
	"reflect"
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"gopkg.in/yaml.v3"

	"github.com/leapstack-labs/sqlecto/internal/rewrite"
)

var (
	mappingType      = reflect.TypeOf(TableMapping{})
	mappingSliceType = reflect.TypeOf([]TableMapping{})
)

// tableMappingHook decodes "src:dst" strings into table mappings, and a
// comma separated string into a list of them (environment variables).
func tableMappingHook() mapstructure.DecodeHookFuncType {
	return func(from, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String {
			return data, nil
		}
		s, _ := data.(string)
		switch to {
		case mappingType:
			return rewrite.ParseMapping(s)
		case mappingSliceType:
			if strings.TrimSpace(s) == "" {
				return []TableMapping{}, nil
			}
			return rewrite.ParseMappings(strings.Split(s, ","))
		}
		return data, nil
	}
}

// LoadMappingsFile reads table mappings from a YAML or JSON file. The file
// holds a list, or an object with a table_mappings list; entries are
// either "src:dst" strings or {src_table, dst_table} objects.
func LoadMappingsFile(path string) ([]TableMapping, error) {
	data, err := os.ReadFile(path) //nolint:gosec // G304: path is given by the user
	if err != nil {
		return nil, fmt.Errorf("failed to read table mappings file: %w", err)
	}

	var raw interface{}
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid table mappings file %s: %w", path, err)
	}
	if m, ok := raw.(map[string]interface{}); ok {
		raw = m["table_mappings"]
	}
	if raw == nil {
		return nil, nil
	}
	entries, ok := raw.([]interface{})
	if !ok {
		return nil, fmt.Errorf("invalid table mappings file %s: expected a list of mappings", path)
	}

	mappings := make([]TableMapping, 0, len(entries))
	for i, entry := range entries {
		m, err := mappingFromValue(entry)
		if err != nil {
			return nil, fmt.Errorf("invalid table mappings file %s: entry %d: %w", path, i+1, err)
		}
		mappings = append(mappings, m)
	}
	return mappings, nil
}

func mappingFromValue(v interface{}) (TableMapping, error) {
	switch e := v.(type) {
	case string:
		return rewrite.ParseMapping(e)
	case map[string]interface{}:
		src, _ := e["src_table"].(string)
		dst, _ := e["dst_table"].(string)
		src, dst = strings.TrimSpace(src), strings.TrimSpace(dst)
		if src == "" || dst == "" {
			return TableMapping{}, fmt.Errorf("%w: src_table and dst_table are required", rewrite.ErrInvalidMapping)
		}
		return TableMapping{Source: src, Target: dst}, nil
	}
	return TableMapping{}, fmt.Errorf("%w: unexpected %T", rewrite.ErrInvalidMapping, v)
}
