package assets

import (
	"github.com/injectivelabs/static-tokens/internal/networks"
	"github.com/injectivelabs/static-tokens/internal/tokens"
)

type Options struct {
	OutDir           string
	PreserveInternal bool
	// Collation is constants.CollationLocale (default) or constants.CollationBytes.
	Collation string
}

// Summary describes one written (or checked) network list.
type Summary struct {
	Network networks.Network
	Path    string
	Count   int
	ByType  map[tokens.TokenType]int
}

// Drift is the difference between a generated list and the file on disk.
type Drift struct {
	Network networks.Network
	Path    string
	Missing bool
	Changes int
	Diff    string
}

func (d Drift) Outdated() bool {
	return d.Missing || d.Changes > 0
}

func summarize(network networks.Network, path string, list []tokens.Token) Summary {
	byType := map[tokens.TokenType]int{}
	for _, t := range list {
		byType[t.TokenType]++
	}
	return Summary{Network: network, Path: path, Count: len(list), ByType: byType}
}
