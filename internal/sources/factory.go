package sources

import (
	"strings"

	"github.com/injectivelabs/static-tokens/internal/networks"
	"github.com/injectivelabs/static-tokens/internal/tokens"
)

// FactoryIndex resolves registered CW20 -> token factory metadata per network.
// Entries are reachable by lowercased CW20 address and by factory denom.
type FactoryIndex struct {
	byNetwork map[networks.Network]map[string]tokens.FactoryMetadata
}

var _ tokens.FactoryLookup = (*FactoryIndex)(nil)

func NewFactoryIndex(entries map[networks.Network][]tokens.FactoryMetadata) *FactoryIndex {
	x := &FactoryIndex{byNetwork: map[networks.Network]map[string]tokens.FactoryMetadata{}}

	for n, list := range entries {
		byKey := make(map[string]tokens.FactoryMetadata, len(list)*2)
		for _, m := range list {
			if addr := strings.ToLower(strings.TrimSpace(m.Cw20Address)); addr != "" {
				byKey[addr] = m
			}
			if denom := strings.TrimSpace(m.Denom); denom != "" {
				byKey[denom] = m
			}
		}
		x.byNetwork[n] = byKey
	}
	return x
}

func (x *FactoryIndex) Lookup(key string, network networks.Network) (tokens.FactoryMetadata, bool) {
	if x == nil {
		return tokens.FactoryMetadata{}, false
	}
	m, ok := x.byNetwork[network][key]
	return m, ok
}

// Len returns the number of distinct lookup keys for a network.
func (x *FactoryIndex) Len(network networks.Network) int {
	if x == nil {
		return 0
	}
	return len(x.byNetwork[network])
}
