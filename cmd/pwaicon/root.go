package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/pwaicon"
)

// openBackend is swapped in tests to simulate a broken drawing library.
var openBackend pwaicon.BackendOpener = pwaicon.OpenBackend

func newRootCmd() *cobra.Command {
	var cfgFile string
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "pwaicon",
		Short: "Generate the MacThree installable-app icons",
		Long: `pwaicon renders the two icons referenced by the MacThree web manifest,
icon-192.png (192x192) and icon-512.png (512x512): a white rectangular outline
inset from the edges of a black square, with the label "M3" centered in white.

Existing files are overwritten. Settings can also come from a config file
(pwaicon.yaml in the working directory, or --config) and from PWAICON_*
environment variables.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return initConfig(v, cfgFile, cmd.ErrOrStderr())
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := setupLogging(v.GetString("log-level"), cmd.ErrOrStderr()); err != nil {
				return err
			}

			cfg := pwaicon.Config{
				Dir:      v.GetString("dir"),
				Label:    v.GetString("label"),
				Fonts:    v.GetStringSlice("font"),
				Manifest: v.GetString("manifest"),
			}
			_, err := pwaicon.Run(cmd.OutOrStdout(), openBackend, cfg)
			if errors.Is(err, pwaicon.ErrMissingDependency) {
				stderr := cmd.ErrOrStderr()
				fmt.Fprintln(stderr, "Error: drawing library is not available.")
				fmt.Fprintln(stderr, pwaicon.InstallHint)
			}
			return err
		},
	}

	flags := cmd.PersistentFlags()
	flags.String("dir", "", "directory to write the icons to (default: current directory)")
	flags.String("label", pwaicon.DefaultLabel, "text drawn in the middle of the icons")
	flags.StringSlice("font", nil, "font file tried before the system fonts (repeatable)")
	flags.String("manifest", "", "also write the manifest \"icons\" fragment to this file")
	flags.String("log-level", "warn", "diagnostic log level on stderr (debug, info, warn, error)")
	_ = v.BindPFlags(flags)

	flags.StringVar(&cfgFile, "config", "", "config file (default is ./pwaicon.yaml)")
	AddVersionFlag(flags)

	return cmd
}

// initConfig reads in the config file and ENV variables if set.
func initConfig(v *viper.Viper, cfgFile string, stderr io.Writer) error {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("pwaicon")
		v.SetConfigType("yaml")
	}

	v.SetEnvPrefix("pwaicon")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile == "" && errors.As(err, &notFound) {
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}
	fmt.Fprintln(stderr, "Using config file:", v.ConfigFileUsed())
	return nil
}

func setupLogging(level string, w io.Writer) error {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		return fmt.Errorf("invalid --log-level %q: %w", level, err)
	}
	pwaicon.SetLogger(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: lvl,
	})))
	return nil
}
