package assets

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"github.com/quantumauth-io/quantum-go-utils/log"
	"github.com/spf13/afero"
	"github.com/wI2L/jsondiff"
	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/injectivelabs/static-tokens/internal/constants"
	"github.com/injectivelabs/static-tokens/internal/networks"
	"github.com/injectivelabs/static-tokens/internal/securefile"
	"github.com/injectivelabs/static-tokens/internal/sources"
	"github.com/injectivelabs/static-tokens/internal/tokens"
)

var ErrOutdated = errors.New("static token list is outdated")

// Manager builds the per-network static token lists and persists them under
// outDir.
type Manager struct {
	fs               afero.Fs
	outDir           string
	tables           *sources.Tables
	preserveInternal bool
	less             func(a, b string) bool
}

func NewManager(fsys afero.Fs, tables *sources.Tables, opts Options) (*Manager, error) {
	if fsys == nil {
		return nil, fmt.Errorf("assets: filesystem is nil")
	}
	if tables == nil {
		return nil, fmt.Errorf("assets: source tables are nil")
	}

	outDir := strings.TrimSpace(opts.OutDir)
	if outDir == "" {
		outDir = constants.DefaultOutDir
	}

	less, err := lessFunc(opts.Collation)
	if err != nil {
		return nil, err
	}

	return &Manager{
		fs:               fsys,
		outDir:           outDir,
		tables:           tables,
		preserveInternal: opts.PreserveInternal,
		less:             less,
	}, nil
}

// Path returns the output file path for a network.
func (m *Manager) Path(network networks.Network) string {
	return filepath.Join(m.outDir, network.FileName())
}

// Build returns the final static token list for a network: native INJ first,
// the aggregated sources, the symbol base tokens, finalized and sorted by denom.
func (m *Manager) Build(network networks.Network) ([]tokens.Token, error) {
	recipe, err := networks.RecipeFor(network)
	if err != nil {
		return nil, err
	}

	nativeMeta, err := m.tables.NativeMeta()
	if err != nil {
		return nil, err
	}

	aggregated := Aggregate(m.tables, recipe)
	symbols := tokens.SymbolBaseTokens(m.tables.UntaggedSymbolMeta)

	list := make([]tokens.Token, 0, 1+len(aggregated)+len(symbols))
	list = append(list, tokens.NativeToken(nativeMeta))
	list = append(list, aggregated...)
	list = append(list, symbols...)

	if err := tokens.ValidateRecords(list); err != nil {
		return nil, fmt.Errorf("build %s: %w", network, err)
	}

	for i := range list {
		list[i] = tokens.Finalize(list[i], m.preserveInternal)
	}

	sort.SliceStable(list, func(i, j int) bool {
		return m.less(list[i].Denom, list[j].Denom)
	})
	return list, nil
}

// Generate builds the network's list and writes it atomically.
func (m *Manager) Generate(ctx context.Context, network networks.Network) (Summary, error) {
	if err := ctx.Err(); err != nil {
		return Summary{}, err
	}

	list, b, err := m.render(network)
	if err != nil {
		return Summary{}, err
	}

	path := m.Path(network)
	if err := securefile.AtomicWriteFile(m.fs, path, b, constants.FilePerm, constants.DirectoryPerm); err != nil {
		return Summary{}, fmt.Errorf("write %s: %w", path, err)
	}

	s := summarize(network, path, list)
	log.Info("generated static tokens",
		"network", network.String(),
		"path", path,
		"count", s.Count,
		"by_type", s.ByType,
	)
	return s, nil
}

// GenerateAll generates every given network in order and stops at the first
// failure. Networks written before the failure stay on disk.
func (m *Manager) GenerateAll(ctx context.Context, nets []networks.Network) ([]Summary, error) {
	out := make([]Summary, 0, len(nets))
	for _, n := range nets {
		s, err := m.Generate(ctx, n)
		if err != nil {
			return out, fmt.Errorf("generate %s: %w", n, err)
		}
		out = append(out, s)
	}
	return out, nil
}

// Check compares the generated list with the file on disk without writing.
func (m *Manager) Check(ctx context.Context, network networks.Network) (Drift, error) {
	if err := ctx.Err(); err != nil {
		return Drift{}, err
	}

	_, generated, err := m.render(network)
	if err != nil {
		return Drift{}, err
	}

	path := m.Path(network)
	d := Drift{Network: network, Path: path}

	existing, err := afero.ReadFile(m.fs, path)
	if errors.Is(err, os.ErrNotExist) {
		d.Missing = true
		log.Warn("static tokens file missing", "network", network.String(), "path", path)
		return d, nil
	}
	if err != nil {
		return Drift{}, fmt.Errorf("read %s: %w", path, err)
	}

	patch, err := jsondiff.CompareJSON(existing, generated)
	if err != nil {
		return Drift{}, fmt.Errorf("compare %s: %w", path, err)
	}

	d.Changes = len(patch)
	if d.Changes > 0 {
		d.Diff = patch.String()
		log.Warn("static tokens outdated", "network", network.String(), "path", path, "changes", d.Changes)
	} else {
		log.Info("static tokens up to date", "network", network.String(), "path", path)
	}
	return d, nil
}

// CheckAll checks every given network and returns ErrOutdated when any file
// is missing or differs.
func (m *Manager) CheckAll(ctx context.Context, nets []networks.Network) ([]Drift, error) {
	out := make([]Drift, 0, len(nets))
	outdated := 0
	for _, n := range nets {
		d, err := m.Check(ctx, n)
		if err != nil {
			return out, fmt.Errorf("check %s: %w", n, err)
		}
		if d.Outdated() {
			outdated++
		}
		out = append(out, d)
	}

	if outdated > 0 {
		return out, fmt.Errorf("%w: %d of %d networks", ErrOutdated, outdated, len(nets))
	}
	return out, nil
}

func (m *Manager) render(network networks.Network) ([]tokens.Token, []byte, error) {
	list, err := m.Build(network)
	if err != nil {
		return nil, nil, err
	}

	b, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("marshal %s tokens: %w", network, err)
	}
	return list, append(b, '\n'), nil
}

func lessFunc(collation string) (func(a, b string) bool, error) {
	switch strings.ToLower(strings.TrimSpace(collation)) {
	case "", constants.CollationLocale:
		c := collate.New(language.English)
		return func(a, b string) bool { return c.CompareString(a, b) < 0 }, nil
	case constants.CollationBytes:
		return func(a, b string) bool { return a < b }, nil
	default:
		return nil, fmt.Errorf("assets: unknown collation %q", collation)
	}
}
