package constants

const (
	AppName        = "static-tokens"
	ConfigFile     = "static-tokens.yaml"
	EnvPrefix      = "STATIC_TOKENS"
	DefaultOutDir  = "tokens/staticTokens"
	JSONFileSuffix = ".json"

	FilePerm      = 0o644
	DirectoryPerm = 0o755

	NativeDenom  = "inj"
	NativeSymbol = "INJ"

	IbcDenomPrefix     = "ibc/"
	FactoryDenomPrefix = "factory/"
	PeggyDenomPrefix   = "peggy"

	CollationBytes  = "bytes"
	CollationLocale = "locale"
)
