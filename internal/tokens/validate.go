package tokens

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
)

var ErrInvalidToken = errors.New("invalid token")

const ibcHashLen = 64

func invalid(i int, format string, args ...any) error {
	return fmt.Errorf("%w: entry %d: %s", ErrInvalidToken, i, fmt.Sprintf(format, args...))
}

func validateMeta(i int, m TokenMeta) error {
	if strings.TrimSpace(m.Symbol) == "" {
		return invalid(i, "missing symbol")
	}
	if m.Decimals < 0 {
		return invalid(i, "negative decimals %d", m.Decimals)
	}
	return nil
}

func ValidateIbc(in []IbcTokenSource) error {
	for i, t := range in {
		if err := validateMeta(i, t.TokenMeta); err != nil {
			return err
		}
		if len(t.Hash) != ibcHashLen {
			return invalid(i, "ibc hash %q must be %d hex characters", t.Hash, ibcHashLen)
		}
		if _, err := hex.DecodeString(t.Hash); err != nil {
			return invalid(i, "ibc hash %q is not hex", t.Hash)
		}
	}
	return nil
}

func ValidateCw20(in []Cw20TokenSource) error {
	for i, t := range in {
		if err := validateMeta(i, t.TokenMeta); err != nil {
			return err
		}
		if strings.TrimSpace(t.Address) == "" {
			return invalid(i, "missing address")
		}
	}
	return nil
}

func ValidateTokenFactory(in []TokenFactorySource) error {
	for i, t := range in {
		if err := validateMeta(i, t.TokenMeta); err != nil {
			return err
		}
		if strings.TrimSpace(t.Creator) == "" {
			return invalid(i, "missing creator")
		}
	}
	return nil
}

// ValidateHexAddressed checks ERC20 and EVM tables, whose addresses are
// 20-byte hex contract addresses.
func ValidateHexAddressed(in []PeggyTokenSource) error {
	for i, t := range in {
		if err := validateMeta(i, t.TokenMeta); err != nil {
			return err
		}
		if !common.IsHexAddress(t.Address) {
			return invalid(i, "invalid hex address %q", t.Address)
		}
	}
	return nil
}

func ValidateSpl(in []PeggyTokenSource) error {
	for i, t := range in {
		if err := validateMeta(i, t.TokenMeta); err != nil {
			return err
		}
		if strings.TrimSpace(t.Address) == "" {
			return invalid(i, "missing address")
		}
	}
	return nil
}

func ValidateSymbolMeta(in []TokenMeta) error {
	for i, m := range in {
		if err := validateMeta(i, m); err != nil {
			return err
		}
	}
	return nil
}

// ValidateRecords rejects records that cannot be keyed in the output list.
func ValidateRecords(in []Token) error {
	for i, t := range in {
		if t.Denom == "" {
			return invalid(i, "%s record %q has an empty denom", t.TokenType, t.Symbol)
		}
	}
	return nil
}
