package assets

import (
	"github.com/injectivelabs/static-tokens/internal/networks"
	"github.com/injectivelabs/static-tokens/internal/sources"
	"github.com/injectivelabs/static-tokens/internal/tokens"
)

type stage func(t *sources.Tables, r networks.Recipe) []tokens.Token

// precedence: evm, spl, ibc, cw20, erc20, tokenFactory.
var precedence = []stage{
	func(t *sources.Tables, _ networks.Recipe) []tokens.Token {
		return tokens.FormatEvm(t.Evm)
	},
	func(t *sources.Tables, _ networks.Recipe) []tokens.Token {
		return tokens.FormatSpl(t.Spl)
	},
	func(t *sources.Tables, r networks.Recipe) []tokens.Token {
		return tokens.FormatIbc(t.IbcFor(r.Ibc))
	},
	func(t *sources.Tables, r networks.Recipe) []tokens.Token {
		return tokens.FormatCw20(t.Cw20For(r.Cw20), r.Network, t.Factory)
	},
	func(t *sources.Tables, r networks.Recipe) []tokens.Token {
		return tokens.FormatErc20(t.Erc20For(r.Erc20))
	},
	func(t *sources.Tables, r networks.Recipe) []tokens.Token {
		return tokens.FormatTokenFactory(t.TokenFactoryFor(r.TokenFactory), r.Network, t.Factory)
	},
}

// Aggregate formats and concatenates the recipe's sources in precedence order.
func Aggregate(t *sources.Tables, r networks.Recipe) []tokens.Token {
	var out []tokens.Token
	for _, s := range precedence {
		out = append(out, s(t, r)...)
	}
	return out
}
