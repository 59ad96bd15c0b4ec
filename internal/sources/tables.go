package sources

import (
	"fmt"

	"github.com/injectivelabs/static-tokens/internal/constants"
	"github.com/injectivelabs/static-tokens/internal/networks"
	"github.com/injectivelabs/static-tokens/internal/tokens"
)

const (
	SplFile                = "spl.json"
	EvmFile                = "evm.json"
	Cw20File               = "cw20.json"
	Erc20File              = "erc20.json"
	TokenFactoryFile       = "tokenFactory.json"
	IbcFile                = "ibc.json"
	SymbolMetaFile         = "symbolMeta.json"
	UntaggedSymbolMetaFile = "untaggedSymbolMeta.json"
	FactoryMetadataFile    = "factoryMetadata.json"
)

// Tables holds every static source table. Tiered tables are keyed by the
// network tier the entries were registered on.
type Tables struct {
	Spl                []tokens.PeggyTokenSource
	Evm                []tokens.PeggyTokenSource
	Cw20               map[networks.Network][]tokens.Cw20TokenSource
	Erc20              map[networks.Network][]tokens.PeggyTokenSource
	TokenFactory       map[networks.Network][]tokens.TokenFactorySource
	Ibc                map[networks.Network][]tokens.IbcTokenSource
	SymbolMeta         map[string]tokens.TokenMeta
	UntaggedSymbolMeta []tokens.TokenMeta
	Factory            *FactoryIndex
}

func (t *Tables) Cw20For(tiers []networks.Network) []tokens.Cw20TokenSource {
	return concat(t.Cw20, tiers)
}

func (t *Tables) Erc20For(tiers []networks.Network) []tokens.PeggyTokenSource {
	return concat(t.Erc20, tiers)
}

func (t *Tables) TokenFactoryFor(tiers []networks.Network) []tokens.TokenFactorySource {
	return concat(t.TokenFactory, tiers)
}

func (t *Tables) IbcFor(tiers []networks.Network) []tokens.IbcTokenSource {
	return concat(t.Ibc, tiers)
}

// NativeMeta returns the symbol metadata of the native INJ token.
func (t *Tables) NativeMeta() (tokens.TokenMeta, error) {
	m, ok := t.SymbolMeta[constants.NativeSymbol]
	if !ok {
		return tokens.TokenMeta{}, fmt.Errorf("%s: missing %s entry", SymbolMetaFile, constants.NativeSymbol)
	}
	return m, nil
}

// Validate checks every table and reports the first bad entry with its table
// and tier.
func (t *Tables) Validate() error {
	if err := tokens.ValidateSpl(t.Spl); err != nil {
		return fmt.Errorf("%s: %w", SplFile, err)
	}
	if err := tokens.ValidateHexAddressed(t.Evm); err != nil {
		return fmt.Errorf("%s: %w", EvmFile, err)
	}
	if err := validateTiered(Cw20File, t.Cw20, tokens.ValidateCw20); err != nil {
		return err
	}
	if err := validateTiered(Erc20File, t.Erc20, tokens.ValidateHexAddressed); err != nil {
		return err
	}
	if err := validateTiered(TokenFactoryFile, t.TokenFactory, tokens.ValidateTokenFactory); err != nil {
		return err
	}
	if err := validateTiered(IbcFile, t.Ibc, tokens.ValidateIbc); err != nil {
		return err
	}
	if err := tokens.ValidateSymbolMeta(t.UntaggedSymbolMeta); err != nil {
		return fmt.Errorf("%s: %w", UntaggedSymbolMetaFile, err)
	}
	if _, err := t.NativeMeta(); err != nil {
		return err
	}
	return nil
}

func validateTiered[T any](file string, m map[networks.Network][]T, validate func([]T) error) error {
	for _, n := range networks.All() {
		if err := validate(m[n]); err != nil {
			return fmt.Errorf("%s[%s]: %w", file, n, err)
		}
	}
	return nil
}

func concat[T any](m map[networks.Network][]T, tiers []networks.Network) []T {
	size := 0
	for _, n := range tiers {
		size += len(m[n])
	}

	out := make([]T, 0, size)
	for _, n := range tiers {
		out = append(out, m[n]...)
	}
	return out
}
