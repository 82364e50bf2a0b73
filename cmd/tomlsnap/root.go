package main

import (
	"context"
	"fmt"
	"os"

	"github.com/Azhovan/configtoml"
	"github.com/Azhovan/configtoml/sourcefile"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// globalFlags are shared by every subcommand.
type globalFlags struct {
	secretKeys  []string
	secretsFile string
	bytes       string
	verbose     bool
}

func newRootCommand(version string) *cobra.Command {
	flags := &globalFlags{}

	rootCmd := &cobra.Command{
		Use:   "tomlsnap",
		Short: "Inspect TOML configuration as flattened, typed values",
		Long: `tomlsnap loads a TOML file the same way applications using configtoml do,
and prints the flattened keys, typed lookups, or a redacted dump.

Secret values are never printed; mark them with --secret or --secrets-file.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: false,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
	}

	pf := rootCmd.PersistentFlags()
	pf.StringArrayVar(&flags.secretKeys, "secret", nil, "treat this dotted key as secret (repeatable)")
	pf.StringVar(&flags.secretsFile, "secrets-file", "", "YAML file with secret rules (keys, key_patterns, value_prefixes)")
	pf.StringVar(&flags.bytes, "bytes", "base64", "bytes encoding of string values: base64 or hex")
	pf.BoolVarP(&flags.verbose, "verbose", "v", false, "log loading details to stderr")

	rootCmd.AddCommand(
		newDescribeCommand(flags),
		newDebugCommand(flags),
		newGetCommand(flags),
		newDumpCommand(flags),
	)

	return rootCmd
}

// open loads path into a provider configured from the global flags.
func (f *globalFlags) open(ctx context.Context, path string) (*sourcefile.Provider, error) {
	parsing, err := f.parsingOptions()
	if err != nil {
		return nil, err
	}

	logger := zerolog.Nop()
	if f.verbose {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
			Level(zerolog.DebugLevel).
			With().Timestamp().Logger()
	}

	return sourcefile.New(ctx, path, sourcefile.Options{
		Parsing: parsing,
		Logger:  &logger,
	})
}

func (f *globalFlags) parsingOptions() (configtoml.ParsingOptions, error) {
	opts := configtoml.DefaultParsingOptions()

	switch f.bytes {
	case "", "base64":
		opts.BytesDecoder = configtoml.Base64
	case "hex":
		opts.BytesDecoder = configtoml.Hex
	default:
		return opts, fmt.Errorf("unsupported bytes encoding: %s (supported: base64, hex)", f.bytes)
	}

	var specifiers []configtoml.SecretsSpecifier
	if len(f.secretKeys) > 0 {
		specifiers = append(specifiers, configtoml.SecretsKeys(f.secretKeys...))
	}
	if f.secretsFile != "" {
		rules, err := configtoml.LoadSecretRules(f.secretsFile)
		if err != nil {
			return opts, err
		}
		specifiers = append(specifiers, rules)
	}
	if len(specifiers) > 0 {
		opts.SecretsSpecifier = configtoml.SecretsFunc(func(key, value string) bool {
			for _, s := range specifiers {
				if s.IsSecret(key, value) {
					return true
				}
			}
			return false
		})
	}

	return opts, nil
}
