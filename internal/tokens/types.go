package tokens

import "github.com/injectivelabs/static-tokens/internal/networks"

type TokenType string

const (
	TokenTypeNative       TokenType = "native"
	TokenTypeIbc          TokenType = "ibc"
	TokenTypeCw20         TokenType = "cw20"
	TokenTypeTokenFactory TokenType = "tokenFactory"
	TokenTypeErc20        TokenType = "erc20"
	TokenTypeSpl          TokenType = "spl"
	TokenTypeEvm          TokenType = "evm"
	TokenTypeSymbol       TokenType = "symbol"
)

type TokenVerification string

const (
	TokenVerificationVerified TokenVerification = "verified"
	// TokenVerificationInternal marks records derived from another source,
	// e.g. the factory twin of a CW20 token.
	TokenVerificationInternal TokenVerification = "internal"
)

// TokenMeta is the display metadata shared by every source kind.
type TokenMeta struct {
	Name         string `json:"name,omitempty"`
	Symbol       string `json:"symbol"`
	Decimals     int    `json:"decimals"`
	Logo         string `json:"logo,omitempty"`
	CoinGeckoID  string `json:"coinGeckoId,omitempty"`
	ExternalLogo string `json:"externalLogo,omitempty"`
}

type IbcTokenSource struct {
	TokenMeta
	Hash      string `json:"hash"`
	Path      string `json:"path,omitempty"`
	ChannelID string `json:"channelId,omitempty"`
	BaseDenom string `json:"baseDenom,omitempty"`
	IsNative  bool   `json:"isNative"`
}

type Cw20TokenSource struct {
	TokenMeta
	Address string `json:"address"`
}

// PeggyTokenSource describes address-keyed bridged tokens (ERC20, EVM, SPL).
type PeggyTokenSource struct {
	TokenMeta
	Address string `json:"address"`
}

type TokenFactorySource struct {
	TokenMeta
	Creator string `json:"creator"`
}

// Token is the normalized record written to the static token lists.
type Token struct {
	TokenMeta
	Address           string            `json:"address"`
	Denom             string            `json:"denom"`
	IsNative          bool              `json:"isNative"`
	TokenType         TokenType         `json:"tokenType"`
	TokenVerification TokenVerification `json:"tokenVerification,omitempty"`

	Creator   string `json:"creator,omitempty"`
	Hash      string `json:"hash,omitempty"`
	Path      string `json:"path,omitempty"`
	ChannelID string `json:"channelId,omitempty"`
	BaseDenom string `json:"baseDenom,omitempty"`
}

// FactoryMetadata is a token factory denom already registered for a CW20
// token on a given network.
type FactoryMetadata struct {
	Cw20Address string `json:"cw20Address"`
	Denom       string `json:"denom"`
	Decimals    int    `json:"decimals,omitempty"`
}

// FactoryLookup resolves a CW20 address (lowercased) or a factory denom to
// its registered factory metadata.
type FactoryLookup interface {
	Lookup(key string, network networks.Network) (FactoryMetadata, bool)
}

type FactoryLookupFunc func(key string, network networks.Network) (FactoryMetadata, bool)

func (f FactoryLookupFunc) Lookup(key string, network networks.Network) (FactoryMetadata, bool) {
	return f(key, network)
}

// NoFactoryLookup never resolves anything.
var NoFactoryLookup FactoryLookup = FactoryLookupFunc(func(string, networks.Network) (FactoryMetadata, bool) {
	return FactoryMetadata{}, false
})
