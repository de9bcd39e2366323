package mapfile

import (
	"fmt"
	"os"

	yaml "gopkg.in/yaml.v2"
)

// readGraphYAML decodes the adjacency shape from YAML. Keys and values may
// be any YAML scalar; they become string labels.
func readGraphYAML(path string) (map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("mapfile: read %s: %w", path, err)
	}

	var doc map[interface{}]interface{}
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("mapfile: decode %s: %w", path, err)
	}

	graph, err := labelMap(doc)
	if err != nil {
		return nil, fmt.Errorf("mapfile: %s: %w", path, err)
	}

	return graph, nil
}

// readMapYAML decodes the two-mapping document from YAML.
func readMapYAML(path string) (map[string][]string, map[string][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("mapfile: read %s: %w", path, err)
	}

	var doc map[string]map[interface{}]interface{}
	if err = yaml.Unmarshal(data, &doc); err != nil {
		return nil, nil, fmt.Errorf("mapfile: decode %s: %w", path, err)
	}

	paths, err := yamlSection(doc, keyPathsToNodes)
	if err != nil {
		return nil, nil, fmt.Errorf("mapfile: %s: %w", path, err)
	}
	nodes, err := yamlSection(doc, keyNodesToPaths)
	if err != nil {
		return nil, nil, fmt.Errorf("mapfile: %s: %w", path, err)
	}

	return paths, nodes, nil
}

func yamlSection(doc map[string]map[interface{}]interface{}, key string) (map[string][]string, error) {
	section, ok := doc[key]
	if !ok {
		return nil, fmt.Errorf("missing %q key: %w", key, ErrBadDocument)
	}

	return labelMap(section)
}
