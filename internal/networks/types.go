package networks

import (
	"errors"
	"fmt"
	"strings"

	"github.com/injectivelabs/static-tokens/internal/constants"
)

var ErrUnknownNetwork = errors.New("unknown network")

// Network is a deployment tier. Source tables are split by the same tiers.
type Network string

const (
	Devnet  Network = "devnet"
	Testnet Network = "testnet"
	Mainnet Network = "mainnet"
)

var aliases = map[string]Network{
	"devnet":         Devnet,
	"testnet":        Testnet,
	"testnet-sentry": Testnet,
	"mainnet":        Mainnet,
	"mainnet-sentry": Mainnet,
}

// All returns every network in generation order.
func All() []Network {
	return []Network{Devnet, Testnet, Mainnet}
}

func Parse(s string) (Network, error) {
	nk := normalizeNetworkKey(s)
	if nk == "" {
		return "", fmt.Errorf("network must not be empty")
	}
	n, ok := aliases[nk]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrUnknownNetwork, s)
	}
	return n, nil
}

// ParseList parses and dedupes a list of network names, keeping the first
// occurrence order. An empty list means every network.
func ParseList(in []string) ([]Network, error) {
	if len(in) == 0 {
		return All(), nil
	}

	seen := map[Network]bool{}
	out := make([]Network, 0, len(in))
	for _, raw := range in {
		n, err := Parse(raw)
		if err != nil {
			return nil, err
		}
		if seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	return out, nil
}

func (n Network) String() string { return string(n) }

// FileName is the output file name for the network, e.g. "mainnet.json".
func (n Network) FileName() string {
	return string(n) + constants.JSONFileSuffix
}

func (n Network) Valid() bool {
	_, ok := recipes[n]
	return ok
}

func normalizeNetworkKey(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}
