package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/Azhovan/configtoml"
	"github.com/spf13/cobra"
)

// errKeyNotFound is returned by get for absent keys.
var errKeyNotFound = errors.New("key not found")

func newDescribeCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "describe FILE",
		Short: "Print the provider name and number of values",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := flags.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), provider.String())
			return nil
		},
	}
}

func newDebugCommand(flags *globalFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "debug FILE",
		Short: "Print every flattened value on one line, secrets redacted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			provider, err := flags.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), provider.DebugString())
			return nil
		},
	}
}

func newGetCommand(flags *globalFlags) *cobra.Command {
	var typeName string

	cmd := &cobra.Command{
		Use:   "get FILE KEY",
		Short: "Look up one key as a typed value",
		Long: `Get looks up a dotted key and converts it to the requested type.

Types: string, int, double, bool, bytes, stringArray, intArray,
doubleArray, boolArray, byteChunkArray.

Example:
  tomlsnap get config.toml server.port --type int`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			typ, err := configtoml.ParseConfigType(typeName)
			if err != nil {
				return err
			}

			provider, err := flags.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			res, err := provider.Lookup(configtoml.ParseKey(args[1]), typ)
			if err != nil {
				return err
			}
			if res.Value == nil {
				return fmt.Errorf("%w: %s", errKeyNotFound, res.EncodedKey)
			}

			fmt.Fprintln(cmd.OutOrStdout(), formatConfigValue(res.Value))
			return nil
		},
	}

	cmd.Flags().StringVarP(&typeName, "type", "t", "string", "requested value type")
	return cmd
}

func newDumpCommand(flags *globalFlags) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "Print all values sorted by key, secrets redacted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []configtoml.DumpOption
			switch format {
			case "", "text":
			case "json":
				opts = append(opts, configtoml.AsJSON())
			case "yaml", "yml":
				opts = append(opts, configtoml.AsYAML())
			default:
				return fmt.Errorf("unsupported dump format: %s (supported: text, json, yaml)", format)
			}

			provider, err := flags.open(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			return configtoml.Dump(cmd.OutOrStdout(), provider.Snapshot(), opts...)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format: text, json, or yaml")
	return cmd
}

// formatConfigValue renders a lookup result for the terminal.
// Secret values are redacted, byte values are printed as hex and doubles
// use the snapshot's canonical rendering.
func formatConfigValue(cv *configtoml.ConfigValue) string {
	if cv.Secret {
		return "<REDACTED>"
	}

	switch v := cv.Value.(type) {
	case []byte:
		return fmt.Sprintf("%x", v)
	case [][]byte:
		parts := make([]string, len(v))
		for i, chunk := range v {
			parts[i] = fmt.Sprintf("%x", chunk)
		}
		return strings.Join(parts, ",")
	case []string:
		return strings.Join(v, ",")
	case float64:
		return configtoml.FormatDouble(v)
	case []float64:
		parts := make([]string, len(v))
		for i, f := range v {
			parts[i] = configtoml.FormatDouble(f)
		}
		return "[" + strings.Join(parts, " ") + "]"
	default:
		return fmt.Sprintf("%v", v)
	}
}
