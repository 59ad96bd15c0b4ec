package sources

import (
	"embed"
	"fmt"
	"io/fs"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"

	"github.com/injectivelabs/static-tokens/internal/networks"
	"github.com/injectivelabs/static-tokens/internal/tokens"
)

//go:embed data/*.json
var embedded embed.FS

// Embedded returns the data tables compiled into the binary.
func Embedded() (fs.FS, error) {
	return fs.Sub(embedded, "data")
}

// DirFS exposes a data directory of the given filesystem as an fs.FS.
func DirFS(base afero.Fs, dir string) fs.FS {
	return afero.NewIOFS(afero.NewBasePathFs(base, dir))
}

// Load reads and validates every table from fsys.
func Load(fsys fs.FS) (*Tables, error) {
	var (
		t   Tables
		err error
	)

	if t.Spl, err = readJSON[[]tokens.PeggyTokenSource](fsys, SplFile); err != nil {
		return nil, err
	}
	if t.Evm, err = readJSON[[]tokens.PeggyTokenSource](fsys, EvmFile); err != nil {
		return nil, err
	}
	if t.Cw20, err = readTiered[tokens.Cw20TokenSource](fsys, Cw20File); err != nil {
		return nil, err
	}
	if t.Erc20, err = readTiered[tokens.PeggyTokenSource](fsys, Erc20File); err != nil {
		return nil, err
	}
	if t.TokenFactory, err = readTiered[tokens.TokenFactorySource](fsys, TokenFactoryFile); err != nil {
		return nil, err
	}
	if t.Ibc, err = readTiered[tokens.IbcTokenSource](fsys, IbcFile); err != nil {
		return nil, err
	}
	if t.SymbolMeta, err = readJSON[map[string]tokens.TokenMeta](fsys, SymbolMetaFile); err != nil {
		return nil, err
	}
	if t.UntaggedSymbolMeta, err = readJSON[[]tokens.TokenMeta](fsys, UntaggedSymbolMetaFile); err != nil {
		return nil, err
	}

	factory, err := readTiered[tokens.FactoryMetadata](fsys, FactoryMetadataFile)
	if err != nil {
		return nil, err
	}
	t.Factory = NewFactoryIndex(factory)

	if err := t.Validate(); err != nil {
		return nil, err
	}
	return &t, nil
}

func readJSON[T any](fsys fs.FS, name string) (T, error) {
	var out T

	b, err := fs.ReadFile(fsys, name)
	if err != nil {
		return out, fmt.Errorf("read %s: %w", name, err)
	}
	if err := json.Unmarshal(b, &out); err != nil {
		return out, fmt.Errorf("unmarshal %s: %w", name, err)
	}
	return out, nil
}

// readTiered decodes a {"<network>": [...]} document and normalizes its keys.
func readTiered[T any](fsys fs.FS, name string) (map[networks.Network][]T, error) {
	raw, err := readJSON[map[string][]T](fsys, name)
	if err != nil {
		return nil, err
	}

	out := make(map[networks.Network][]T, len(raw))
	for key, list := range raw {
		n, err := networks.Parse(key)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", name, err)
		}
		if _, dup := out[n]; dup {
			return nil, fmt.Errorf("%s: network %s listed twice", name, n)
		}
		out[n] = list
	}
	return out, nil
}
