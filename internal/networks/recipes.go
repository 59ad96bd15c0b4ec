package networks

import "fmt"

// Recipe lists, per tiered source kind, which tiers feed a network's output and
// in which order. EVM and SPL tables are not tiered and always included.
type Recipe struct {
	Network      Network
	Ibc          []Network
	Cw20         []Network
	Erc20        []Network
	TokenFactory []Network
}

var recipes = map[Network]Recipe{
	Devnet: {
		Network:      Devnet,
		Ibc:          []Network{Testnet, Mainnet},
		Cw20:         []Network{Devnet, Testnet, Mainnet},
		Erc20:        []Network{Devnet, Testnet, Mainnet},
		TokenFactory: []Network{Devnet, Testnet, Mainnet},
	},
	Testnet: {
		Network:      Testnet,
		Ibc:          []Network{Testnet, Mainnet},
		Cw20:         []Network{Testnet, Devnet, Mainnet},
		Erc20:        []Network{Testnet, Devnet, Mainnet},
		TokenFactory: []Network{Testnet, Devnet, Mainnet},
	},
	Mainnet: {
		Network:      Mainnet,
		Ibc:          []Network{Mainnet},
		Cw20:         []Network{Mainnet, Testnet},
		Erc20:        []Network{Mainnet},
		TokenFactory: []Network{Mainnet},
	},
}

// RecipeFor returns a copy of the network's recipe.
func RecipeFor(n Network) (Recipe, error) {
	r, ok := recipes[n]
	if !ok {
		return Recipe{}, fmt.Errorf("%w: %q", ErrUnknownNetwork, string(n))
	}

	return Recipe{
		Network:      r.Network,
		Ibc:          append([]Network(nil), r.Ibc...),
		Cw20:         append([]Network(nil), r.Cw20...),
		Erc20:        append([]Network(nil), r.Erc20...),
		TokenFactory: append([]Network(nil), r.TokenFactory...),
	}, nil
}
