package tokens

import (
	"strings"

	"github.com/injectivelabs/static-tokens/internal/constants"
	"github.com/injectivelabs/static-tokens/internal/networks"
)

func FormatIbc(in []IbcTokenSource) []Token {
	out := make([]Token, 0, len(in))
	for _, t := range in {
		out = append(out, Token{
			TokenMeta: t.TokenMeta,
			Denom:     constants.IbcDenomPrefix + t.Hash,
			IsNative:  t.IsNative,
			TokenType: TokenTypeIbc,
			Hash:      t.Hash,
			Path:      t.Path,
			ChannelID: t.ChannelID,
			BaseDenom: t.BaseDenom,
		})
	}
	return out
}

// FactoryDenom builds factory/<creator>/<lowercase symbol>.
func FactoryDenom(creator, symbol string) string {
	return constants.FactoryDenomPrefix + creator + "/" + strings.ToLower(symbol)
}

// FormatTokenFactory reuses the denom of a factory token already registered
// for a CW20 token when the lookup knows the built denom.
func FormatTokenFactory(in []TokenFactorySource, network networks.Network, lookup FactoryLookup) []Token {
	if lookup == nil {
		lookup = NoFactoryLookup
	}

	out := make([]Token, 0, len(in))
	for _, t := range in {
		denom := FactoryDenom(t.Creator, t.Symbol)
		if existing, ok := lookup.Lookup(denom, network); ok && existing.Denom != "" {
			denom = existing.Denom
		}

		out = append(out, Token{
			TokenMeta:         t.TokenMeta,
			Address:           denom,
			Denom:             denom,
			TokenType:         TokenTypeTokenFactory,
			TokenVerification: TokenVerificationVerified,
			Creator:           t.Creator,
		})
	}
	return out
}

// FormatCw20 emits one record per CW20 token plus an Internal factory twin
// for tokens whose lowercased address has registered factory metadata.
func FormatCw20(in []Cw20TokenSource, network networks.Network, lookup FactoryLookup) []Token {
	if lookup == nil {
		lookup = NoFactoryLookup
	}

	out := make([]Token, 0, len(in))
	for _, t := range in {
		out = append(out, Token{
			TokenMeta:         t.TokenMeta,
			Address:           t.Address,
			Denom:             t.Address,
			TokenType:         TokenTypeCw20,
			TokenVerification: TokenVerificationVerified,
		})

		existing, ok := lookup.Lookup(strings.ToLower(t.Address), network)
		if !ok {
			continue
		}

		meta := t.TokenMeta
		if existing.Decimals != 0 {
			meta.Decimals = existing.Decimals
		}
		out = append(out, Token{
			TokenMeta:         meta,
			Address:           t.Address,
			Denom:             existing.Denom,
			TokenType:         TokenTypeTokenFactory,
			TokenVerification: TokenVerificationInternal,
		})
	}
	return out
}

func FormatSpl(in []PeggyTokenSource) []Token {
	return formatAddressKeyed(in, "", TokenTypeSpl)
}

func FormatEvm(in []PeggyTokenSource) []Token {
	return formatAddressKeyed(in, "", TokenTypeEvm)
}

func FormatErc20(in []PeggyTokenSource) []Token {
	return formatAddressKeyed(in, constants.PeggyDenomPrefix, TokenTypeErc20)
}

func formatAddressKeyed(in []PeggyTokenSource, prefix string, tokenType TokenType) []Token {
	out := make([]Token, 0, len(in))
	for _, t := range in {
		out = append(out, Token{
			TokenMeta: t.TokenMeta,
			Address:   t.Address,
			Denom:     prefix + t.Address,
			TokenType: tokenType,
		})
	}
	return out
}

// SymbolBaseTokens synthesizes records for perp market base symbols that have
// no on-chain denom.
func SymbolBaseTokens(meta []TokenMeta) []Token {
	out := make([]Token, 0, len(meta))
	for _, m := range meta {
		denom := strings.ToLower(m.Symbol)
		out = append(out, Token{
			TokenMeta: m,
			Address:   denom,
			Denom:     denom,
			TokenType: TokenTypeSymbol,
		})
	}
	return out
}

func NativeToken(meta TokenMeta) Token {
	return Token{
		TokenMeta:         meta,
		Address:           constants.NativeDenom,
		Denom:             constants.NativeDenom,
		IsNative:          true,
		TokenType:         TokenTypeNative,
		TokenVerification: TokenVerificationVerified,
	}
}

// Finalize applies the output defaults: address falls back to the denom and
// every record is marked Verified. With preserveInternal an Internal marking
// survives.
func Finalize(t Token, preserveInternal bool) Token {
	if t.Address == "" {
		t.Address = t.Denom
	}
	if preserveInternal && t.TokenVerification == TokenVerificationInternal {
		return t
	}
	t.TokenVerification = TokenVerificationVerified
	return t
}
