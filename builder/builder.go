package builder

import (
	"fmt"
	"strconv"

	"github.com/katalvlaran/koenigsberg/mapping"
)

// Parameter minima (no magic numbers at call sites).
const (
	minRingNodes     = 3
	minCompleteNodes = 2
)

// idFor returns the decimal node label for a one-based index, e.g. 1→"1".
func idFor(idx int) string {
	return strconv.Itoa(idx)
}

// Ring returns the paths/nodes mappings of the cycle C_n: nodes "1".."n",
// each joined to its two neighbors. Defined for n ≥ 3.
func Ring(n int) (map[string][]string, map[string][]string, error) {
	if n < minRingNodes {
		return nil, nil, fmt.Errorf("Ring: n=%d < min=%d: %w", n, minRingNodes, ErrTooFewNodes)
	}

	graph := make(map[string][]string, n)
	for i := 1; i <= n; i++ {
		prev := i - 1
		if prev == 0 {
			prev = n
		}
		next := i + 1
		if next > n {
			next = 1
		}
		graph[idFor(i)] = []string{idFor(prev), idFor(next)}
	}

	return expand("Ring", graph)
}

// Complete returns the paths/nodes mappings of the complete map K_n: nodes
// "1".."n", every unordered pair joined. Defined for n ≥ 2.
func Complete(n int) (map[string][]string, map[string][]string, error) {
	if n < minCompleteNodes {
		return nil, nil, fmt.Errorf("Complete: n=%d < min=%d: %w", n, minCompleteNodes, ErrTooFewNodes)
	}

	graph := make(map[string][]string, n)
	for i := 1; i <= n; i++ {
		dests := make([]string, 0, n-1)
		for j := 1; j <= n; j++ {
			if j != i {
				dests = append(dests, idFor(j))
			}
		}
		graph[idFor(i)] = dests
	}

	return expand("Complete", graph)
}

// Koenigsberg returns the classical seven-bridge configuration: island A in
// the middle, B south, C north, D east; double bridges A↔C and A↔B, single
// bridges C↔D, A↔D, B↔D. Degree pattern 5-3-3-3, all four odd, so no trail
// crosses every bridge exactly once. A multigraph, hence the explicit
// two-mapping form rather than adjacency.
func Koenigsberg() (map[string][]string, map[string][]string) {
	pathsToNodes := map[string][]string{
		"1": {"C", "D"},
		"2": {"C", "A"},
		"3": {"C", "A"},
		"4": {"A", "B"},
		"5": {"A", "B"},
		"6": {"A", "D"},
		"7": {"B", "D"},
	}
	nodesToPaths := map[string][]string{
		"A": {"2", "3", "4", "5", "6"},
		"B": {"4", "5", "7"},
		"C": {"1", "2", "3"},
		"D": {"1", "6", "7"},
	}

	return pathsToNodes, nodesToPaths
}

// TenSpotHexagon returns the ten-node hexagonal development map (19 paths).
func TenSpotHexagon() (map[string][]string, map[string][]string, error) {
	graph := map[string][]string{
		"1":  {"2", "4", "5"},
		"2":  {"1", "5", "6", "3"},
		"3":  {"2", "6", "7"},
		"4":  {"1", "5", "8"},
		"5":  {"4", "1", "2", "6", "9", "8"},
		"6":  {"5", "2", "3", "7", "10", "9"},
		"7":  {"6", "3", "10"},
		"8":  {"4", "5", "9"},
		"9":  {"8", "5", "6", "10"},
		"10": {"9", "6", "7"},
	}

	return expand("TenSpotHexagon", graph)
}

// Cealdhame returns the 23-node town map (50 paths) used for long-search
// exercises.
func Cealdhame() (map[string][]string, map[string][]string, error) {
	graph := map[string][]string{
		"1":  {"2", "6"},
		"2":  {"1", "6", "7", "3"},
		"3":  {"2", "7", "8", "4"},
		"4":  {"3", "8", "9", "5"},
		"5":  {"4", "9"},
		"6":  {"1", "2", "7", "11", "10"},
		"7":  {"2", "3", "8", "12", "11", "6"},
		"8":  {"7", "3", "4", "9", "13", "12"},
		"9":  {"8", "4", "5", "14", "13"},
		"10": {"6", "11", "15"},
		"11": {"10", "6", "7", "12", "15", "16"},
		"12": {"11", "7", "8", "13", "17", "16"},
		"13": {"12", "8", "9", "14", "18", "17"},
		"14": {"13", "9", "18"},
		"15": {"10", "11", "16", "20", "19"},
		"16": {"15", "11", "12", "17", "21", "20"},
		"17": {"16", "12", "13", "18", "22", "21"},
		"18": {"13", "14", "23", "22", "17"},
		"19": {"15", "20"},
		"20": {"19", "15", "16", "21"},
		"21": {"20", "16", "17", "22"},
		"22": {"21", "17", "18", "23"},
		"23": {"18", "22"},
	}

	return expand("Cealdhame", graph)
}

// expand runs mapping.FromAdjacency and wraps any failure with the
// constructor name. Static topologies should never fail; a failure here is a
// programmer error in the table above.
func expand(method string, graph map[string][]string) (map[string][]string, map[string][]string, error) {
	paths, nodes, err := mapping.FromAdjacency(graph)
	if err != nil {
		return nil, nil, fmt.Errorf("%s: %w", method, err)
	}

	return paths, nodes, nil
}
