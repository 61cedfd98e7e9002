package kle2kmk

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/dasdy/kle2kmk/convert"
	"github.com/dasdy/kle2kmk/db"
	"github.com/dasdy/kle2kmk/logging"
	"github.com/dasdy/kle2kmk/normalize"
)

const (
	defaultInput  = "kle.json"
	cacheFileName = "normalized.sqlite"
)

var (
	cfgFile  string
	output   string
	cacheDir string
	npmPath  string
	noCache  bool
	verify   bool
	verbose  bool
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "kle2kmk [input]",
	Short: "Convert a keyboard-layout-editor layout into a KMK keymap",
	Long: `kle2kmk reads a layout exported from keyboard-layout-editor.com (default kle.json)
and writes a KMK keymap.py with four layers taken from the key legends:

  base    center legend
  lower   bottom left legend
  raise   top right legend
  adjust  bottom right legend

Legends are normalized with @ijprest/kle-serial, installed with npm on first use
into the cache directory.`,
	Args:             cobra.MaximumNArgs(1),
	SilenceUsage:     true,
	SilenceErrors:    true,
	PersistentPreRun: bindFlags,
	RunE: func(cmd *cobra.Command, args []string) error {
		input := inputArg(args)

		normalizer, closeCache := buildNormalizer()
		defer closeCache()

		result, err := convert.Run(cmd.Context(), convert.Options{
			Input:      input,
			Output:     output,
			Verify:     verify,
			Normalizer: normalizer,
		})
		if err != nil {
			return err
		}

		if len(result.Fallbacks) > 0 {
			slog.Info("Legends used verbatim", "legends", strings.Join(result.Fallbacks, " "))
		}

		return nil
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		report(os.Stderr, err)
		os.Exit(1)
	}
}

func report(w io.Writer, err error) {
	var normalizeErr *normalize.Error
	if errors.As(err, &normalizeErr) && normalizeErr.Stderr != "" {
		fmt.Fprintln(w, normalizeErr.Stderr)
	}

	slog.Error("kle2kmk failed", "error", err)
}

func init() {
	cobra.OnInitialize(initLogging, initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.kle2kmk.toml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVar(&cacheDir, "cache-dir", normalize.DefaultDir,
		"Directory holding the npm project and the normalization cache")
	rootCmd.PersistentFlags().StringVar(&npmPath, "npm", "npm", "npm binary used to run kle-serial")
	rootCmd.PersistentFlags().BoolVar(&noCache, "no-cache", false, "Always run the normalizer")

	rootCmd.Flags().StringVarP(&output, "out", "o", "keymap.py", "Output path for the keymap")
	rootCmd.Flags().BoolVar(&verify, "verify", false, "Parse the rendered keymap back before writing it")
}

func initConfig() {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(home)
		}

		viper.AddConfigPath(".")
		viper.SetConfigType("toml")
		viper.SetConfigName(".kle2kmk")
	}

	viper.SetEnvPrefix("kle2kmk")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if errors.As(err, &configFileNotFoundError) {
			slog.Debug("No config file found, using flags only")

			return
		}

		slog.Warn("Could not read config file", "error", err)

		return
	}

	slog.Debug("Using config file", "path", viper.ConfigFileUsed())
}

// set values to the PFlag variables from config, if they are set. Priority is still given to explicitly provided CLI flags.
func bindFlags(cmd *cobra.Command, _ []string) {
	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		// Viper compares keys case-insensitively, so only the hyphens need removing.
		configName := strings.ReplaceAll(f.Name, "-", "")

		if !f.Changed && viper.IsSet(configName) {
			val := viper.Get(configName)

			if err := cmd.Flags().Set(f.Name, fmt.Sprintf("%v", val)); err != nil {
				slog.Warn("Could not apply config value", "flag", f.Name, "value", val, "error", err)

				return
			}

			slog.Debug("Flag set from config", "flag", f.Name, "value", val)
		}
	})

	// verbose may have come from the config file
	initLogging()
}

func initLogging() {
	if verbose {
		slog.SetDefault(logging.NewLogger(os.Stderr, slog.LevelDebug))
	}
}

func inputArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}

	return defaultInput
}

func cachePath() string {
	return filepath.Join(cacheDir, cacheFileName)
}

// buildNormalizer returns the npm normalizer, behind the sqlite cache unless
// --no-cache is set. The returned func closes the cache.
func buildNormalizer() (normalize.Normalizer, func()) {
	npm := normalize.NewNPMNormalizer(cacheDir, npmPath)
	if noCache {
		return npm, func() {}
	}

	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		slog.Warn("Could not create cache directory, running without cache", "dir", cacheDir, "error", err)

		return npm, func() {}
	}

	storage, err := db.NewStorageFromPath(cachePath())
	if err != nil {
		slog.Warn("Could not open cache, running without it", "path", cachePath(), "error", err)

		return npm, func() {}
	}

	return normalize.NewCachedNormalizer(npm, storage), storage.Close
}
