package tokens

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/injectivelabs/static-tokens/internal/networks"
)

const atomHash = "C4CFF46FD6DE35CA4CF4CE031E643C8FDC9BA4B99AE598E9B0ED98FE3A2319F9"

func mapLookup(byNetwork map[networks.Network]map[string]FactoryMetadata) FactoryLookup {
	return FactoryLookupFunc(func(key string, n networks.Network) (FactoryMetadata, bool) {
		m, ok := byNetwork[n][key]
		return m, ok
	})
}

func TestFormatIbc(t *testing.T) {
	in := []IbcTokenSource{{
		TokenMeta: TokenMeta{Name: "Cosmos", Symbol: "ATOM", Decimals: 6},
		Hash:      atomHash,
		Path:      "transfer/channel-1",
		ChannelID: "channel-1",
		BaseDenom: "uatom",
	}}

	out := FormatIbc(in)
	require.Len(t, out, 1)
	assert.Equal(t, "ibc/"+atomHash, out[0].Denom)
	assert.Equal(t, TokenTypeIbc, out[0].TokenType)
	assert.Equal(t, "uatom", out[0].BaseDenom)
	assert.Equal(t, "channel-1", out[0].ChannelID)
	assert.Empty(t, out[0].Address)
}

func TestFormatErc20(t *testing.T) {
	addr := "0xdAC17F958D2ee523a2206206994597C13D831ec7"
	out := FormatErc20([]PeggyTokenSource{{TokenMeta: TokenMeta{Symbol: "USDT", Decimals: 6}, Address: addr}})

	require.Len(t, out, 1)
	assert.Equal(t, "peggy"+addr, out[0].Denom)
	assert.Equal(t, addr, out[0].Address)
	assert.Equal(t, TokenTypeErc20, out[0].TokenType)
}

func TestFormatSplAndEvm(t *testing.T) {
	spl := FormatSpl([]PeggyTokenSource{{TokenMeta: TokenMeta{Symbol: "SOL"}, Address: "So11111111111111111111111111111111111111112"}})
	require.Len(t, spl, 1)
	assert.Equal(t, spl[0].Address, spl[0].Denom)
	assert.Equal(t, TokenTypeSpl, spl[0].TokenType)

	evm := FormatEvm([]PeggyTokenSource{{TokenMeta: TokenMeta{Symbol: "WETH"}, Address: "0xC02aaA39b223FE8D0A0e5C4F27eAD9083C756Cc2"}})
	require.Len(t, evm, 1)
	assert.Equal(t, evm[0].Address, evm[0].Denom)
	assert.Equal(t, TokenTypeEvm, evm[0].TokenType)
}

func TestFormatTokenFactory(t *testing.T) {
	in := []TokenFactorySource{
		{TokenMeta: TokenMeta{Symbol: "KIRA", Decimals: 6}, Creator: "inj1creator"},
		{TokenMeta: TokenMeta{Symbol: "SOL", Decimals: 8}, Creator: "inj1other"},
	}
	lookup := mapLookup(map[networks.Network]map[string]FactoryMetadata{
		networks.Mainnet: {
			"factory/inj1other/sol": {Cw20Address: "inj1sol", Denom: "factory/inj1bridge/inj1sol", Decimals: 8},
		},
	})

	out := FormatTokenFactory(in, networks.Mainnet, lookup)
	require.Len(t, out, 2)

	assert.Equal(t, "factory/inj1creator/kira", out[0].Denom)
	assert.Equal(t, out[0].Denom, out[0].Address)
	assert.Equal(t, TokenTypeTokenFactory, out[0].TokenType)
	assert.Equal(t, TokenVerificationVerified, out[0].TokenVerification)
	assert.Equal(t, "inj1creator", out[0].Creator)

	assert.Equal(t, "factory/inj1bridge/inj1sol", out[1].Denom)
	assert.Equal(t, "factory/inj1bridge/inj1sol", out[1].Address)

	// Lookups are scoped to the network.
	devnet := FormatTokenFactory(in, networks.Devnet, lookup)
	assert.Equal(t, "factory/inj1other/sol", devnet[1].Denom)
}

func TestFormatCw20WithFactoryMatch(t *testing.T) {
	in := []Cw20TokenSource{
		{TokenMeta: TokenMeta{Symbol: "FOO", Decimals: 6}, Address: "cw20abc"},
		{TokenMeta: TokenMeta{Symbol: "BAR", Decimals: 6}, Address: "cw20bar"},
	}
	lookup := mapLookup(map[networks.Network]map[string]FactoryMetadata{
		networks.Mainnet: {
			"cw20abc": {Cw20Address: "cw20abc", Denom: "factory/x/foo", Decimals: 8},
		},
	})

	out := FormatCw20(in, networks.Mainnet, lookup)
	require.Len(t, out, 3)

	assert.Equal(t, Token{
		TokenMeta:         TokenMeta{Symbol: "FOO", Decimals: 6},
		Address:           "cw20abc",
		Denom:             "cw20abc",
		TokenType:         TokenTypeCw20,
		TokenVerification: TokenVerificationVerified,
	}, out[0])
	assert.Equal(t, Token{
		TokenMeta:         TokenMeta{Symbol: "FOO", Decimals: 8},
		Address:           "cw20abc",
		Denom:             "factory/x/foo",
		TokenType:         TokenTypeTokenFactory,
		TokenVerification: TokenVerificationInternal,
	}, out[1])
	assert.Equal(t, "cw20bar", out[2].Denom)
	assert.Equal(t, 6, in[0].Decimals, "input must not be mutated")
}

func TestFormatCw20LowercasesLookupKey(t *testing.T) {
	var keys []string
	lookup := FactoryLookupFunc(func(key string, _ networks.Network) (FactoryMetadata, bool) {
		keys = append(keys, key)
		return FactoryMetadata{Denom: "factory/x/abc"}, true
	})

	out := FormatCw20([]Cw20TokenSource{{TokenMeta: TokenMeta{Symbol: "ABC", Decimals: 6}, Address: "INJ1ABC"}}, networks.Testnet, lookup)
	require.Len(t, out, 2)
	assert.Equal(t, []string{"inj1abc"}, keys)
	assert.Equal(t, "INJ1ABC", out[1].Address)
	assert.Equal(t, 6, out[1].Decimals, "zero metadata decimals keep the token decimals")
}

func TestFormatNilLookup(t *testing.T) {
	out := FormatCw20([]Cw20TokenSource{{TokenMeta: TokenMeta{Symbol: "A"}, Address: "inj1a"}}, networks.Devnet, nil)
	assert.Len(t, out, 1)

	tf := FormatTokenFactory([]TokenFactorySource{{TokenMeta: TokenMeta{Symbol: "A"}, Creator: "c"}}, networks.Devnet, nil)
	assert.Equal(t, "factory/c/a", tf[0].Denom)
}

func TestSymbolBaseTokens(t *testing.T) {
	out := SymbolBaseTokens([]TokenMeta{{Symbol: "BAYC", Decimals: 18}, {Symbol: "Gold"}})
	require.Len(t, out, 2)
	for _, tok := range out {
		assert.Equal(t, TokenTypeSymbol, tok.TokenType)
		assert.Equal(t, strings.ToLower(tok.Symbol), tok.Denom)
		assert.Equal(t, tok.Denom, tok.Address)
	}
}

func TestNativeToken(t *testing.T) {
	inj := NativeToken(TokenMeta{Name: "Injective", Symbol: "INJ", Decimals: 18})
	assert.Equal(t, "inj", inj.Denom)
	assert.Equal(t, "inj", inj.Address)
	assert.True(t, inj.IsNative)
	assert.Equal(t, TokenTypeNative, inj.TokenType)
}

func TestFinalize(t *testing.T) {
	internal := Token{Denom: "factory/x/foo", Address: "cw20abc", TokenVerification: TokenVerificationInternal}

	got := Finalize(internal, false)
	assert.Equal(t, TokenVerificationVerified, got.TokenVerification)
	assert.Equal(t, "cw20abc", got.Address)

	kept := Finalize(internal, true)
	assert.Equal(t, TokenVerificationInternal, kept.TokenVerification)

	ibc := Finalize(Token{Denom: "ibc/" + atomHash}, true)
	assert.Equal(t, "ibc/"+atomHash, ibc.Address)
	assert.Equal(t, TokenVerificationVerified, ibc.TokenVerification)
}
