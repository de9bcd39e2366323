package mapfile

import (
	"fmt"

	"github.com/hashicorp/hcl/v2/hclsimple"
)

// HCL renditions of the two file shapes. An adjacency file is a series of
// node blocks:
//
//	node "A" { to = ["B", "C"] }
//
// and a map file adds explicit path blocks:
//
//	path "b1" { joins = ["C", "D"] }
//	node "C"  { paths = ["b1"] }
type hclGraphDoc struct {
	Nodes []hclGraphNode `hcl:"node,block"`
}

type hclGraphNode struct {
	Name string   `hcl:"name,label"`
	To   []string `hcl:"to"`
}

type hclMapDoc struct {
	Paths []hclMapPath `hcl:"path,block"`
	Nodes []hclMapNode `hcl:"node,block"`
}

type hclMapPath struct {
	Name  string   `hcl:"name,label"`
	Joins []string `hcl:"joins"`
}

type hclMapNode struct {
	Name  string   `hcl:"name,label"`
	Paths []string `hcl:"paths"`
}

func readGraphHCL(path string) (map[string][]string, error) {
	var doc hclGraphDoc
	if err := hclsimple.DecodeFile(path, nil, &doc); err != nil {
		return nil, fmt.Errorf("mapfile: decode %s: %w", path, err)
	}

	graph := make(map[string][]string, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if _, dup := graph[n.Name]; dup {
			return nil, fmt.Errorf("mapfile: %s: duplicate node block %q: %w", path, n.Name, ErrBadDocument)
		}
		graph[n.Name] = n.To
	}

	return graph, nil
}

func readMapHCL(path string) (map[string][]string, map[string][]string, error) {
	var doc hclMapDoc
	if err := hclsimple.DecodeFile(path, nil, &doc); err != nil {
		return nil, nil, fmt.Errorf("mapfile: decode %s: %w", path, err)
	}

	paths := make(map[string][]string, len(doc.Paths))
	for _, p := range doc.Paths {
		if _, dup := paths[p.Name]; dup {
			return nil, nil, fmt.Errorf("mapfile: %s: duplicate path block %q: %w", path, p.Name, ErrBadDocument)
		}
		paths[p.Name] = p.Joins
	}

	nodes := make(map[string][]string, len(doc.Nodes))
	for _, n := range doc.Nodes {
		if _, dup := nodes[n.Name]; dup {
			return nil, nil, fmt.Errorf("mapfile: %s: duplicate node block %q: %w", path, n.Name, ErrBadDocument)
		}
		nodes[n.Name] = n.Paths
	}

	return paths, nodes, nil
}
