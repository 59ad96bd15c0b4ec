package main

import (
	"context"
	"fmt"
	"io"
	"io/fs"

	"github.com/quantumauth-io/quantum-go-utils/log"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/injectivelabs/static-tokens/internal/assets"
	"github.com/injectivelabs/static-tokens/internal/config"
	"github.com/injectivelabs/static-tokens/internal/networks"
	"github.com/injectivelabs/static-tokens/internal/sources"
)

// flag name -> config key
var flagKeys = map[string]string{
	"network":           "networks",
	"out":               "output.dir",
	"data":              "data.dir",
	"preserve-internal": "output.preserveInternal",
	"collation":         "output.collation",
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var configPath string

	root := &cobra.Command{
		Use:           "static-tokens",
		Short:         "Generate the per-network static token lists",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runGenerate(cmd.Context(), v, configPath)
		},
	}

	flags := root.PersistentFlags()
	flags.StringVar(&configPath, "config", "", "config file (default: first static-tokens.yaml in ~/.config/static-tokens or .)")
	flags.StringSlice("network", nil, "networks to process: devnet, testnet, mainnet (default all)")
	flags.String("out", "", "output directory")
	flags.String("data", "", "data tables directory (default: tables embedded in the binary)")
	flags.Bool("preserve-internal", false, "keep the internal verification of derived records")
	flags.String("collation", "", "denom sort order: bytes or locale")
	bindFlags(v, flags)

	root.AddCommand(
		&cobra.Command{
			Use:   "generate",
			Short: "Write the static token list of every configured network",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runGenerate(cmd.Context(), v, configPath)
			},
		},
		&cobra.Command{
			Use:   "check",
			Short: "Fail when a static token list on disk differs from the generated one",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return runCheck(cmd.Context(), cmd.OutOrStdout(), v, configPath)
			},
		},
	)
	return root
}

func bindFlags(v *viper.Viper, flags *pflag.FlagSet) {
	for name, key := range flagKeys {
		// Lookup cannot fail: every name is registered above.
		_ = v.BindPFlag(key, flags.Lookup(name))
	}
}

func setup(v *viper.Viper, configPath string) (*assets.Manager, []networks.Network, error) {
	cfg, err := config.Load(v, configPath)
	if err != nil {
		return nil, nil, err
	}
	if cfg.File != "" {
		log.Info("loaded config", "path", cfg.File)
	}

	osFs := afero.NewOsFs()

	var data fs.FS
	if cfg.Data.Dir != "" {
		data = sources.DirFS(osFs, cfg.Data.Dir)
	} else if data, err = sources.Embedded(); err != nil {
		return nil, nil, fmt.Errorf("embedded tables: %w", err)
	}

	tables, err := sources.Load(data)
	if err != nil {
		return nil, nil, fmt.Errorf("load tables: %w", err)
	}

	m, err := assets.NewManager(osFs, tables, assets.Options{
		OutDir:           cfg.Output.Dir,
		PreserveInternal: cfg.Output.PreserveInternal,
		Collation:        cfg.Output.Collation,
	})
	if err != nil {
		return nil, nil, err
	}

	nets, err := cfg.NetworkList()
	if err != nil {
		return nil, nil, err
	}
	return m, nets, nil
}

func runGenerate(ctx context.Context, v *viper.Viper, configPath string) error {
	m, nets, err := setup(v, configPath)
	if err != nil {
		return err
	}

	summaries, err := m.GenerateAll(ctx, nets)
	if err != nil {
		return err
	}
	log.Info("static tokens generated", "networks", len(summaries))
	return nil
}

func runCheck(ctx context.Context, out io.Writer, v *viper.Viper, configPath string) error {
	m, nets, err := setup(v, configPath)
	if err != nil {
		return err
	}

	drifts, checkErr := m.CheckAll(ctx, nets)
	for _, d := range drifts {
		switch {
		case d.Missing:
			fmt.Fprintf(out, "%s: missing\n", d.Path)
		case d.Changes > 0:
			fmt.Fprintf(out, "%s: %d changes\n%s\n", d.Path, d.Changes, d.Diff)
		default:
			fmt.Fprintf(out, "%s: up to date\n", d.Path)
		}
	}
	return checkErr
}
