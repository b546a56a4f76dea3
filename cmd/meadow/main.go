package main

import (
	"fmt"
	"os"

	"github.com/phanxgames/meadow/config"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// version is set at build time with -ldflags "-X main.version=...".
var version = "dev"

var (
	// Global flags
	configPath string
	debug      bool

	// Run flags
	seed            uint64
	scriptPath      string
	screenshotDir   string
	exitOnScriptEnd bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd opens the sandbox window.
var rootCmd = &cobra.Command{
	Use:   "meadow",
	Short: "meadow - a tile-based farming sandbox",
	Long: `meadow opens a window with a grid of terrain tiles. Paint water, dirt and
grass, plant crops that grow on wet dirt or grass, and release animals that
wander the level.

Run without arguments to start the sandbox.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Name() == "version" {
			return nil
		}
		var err error
		cfg, err = config.Load(configPath)
		if err != nil {
			return err
		}
		if debug {
			cfg.Debug = true
		}

		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(cfg.LogLevel())
		if cfg.Debug {
			zcfg = zap.NewDevelopmentConfig()
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: runSandbox,
}

// catalogCmd prints the type tables.
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "List tile, plant and animal types with their selection keys",
	Args:  cobra.NoArgs,
	RunE:  printCatalog,
}

// validateCmd checks a config file without opening a window.
var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration and exit",
	Long: `Loads the built-in defaults, the --config file and MEADOW_* environment
variables, and reports every problem found.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		fmt.Fprintf(cmd.OutOrStdout(), "config OK: %dx%d level, %d px tiles\n",
			cfg.Level.Width, cfg.Level.Height, cfg.Level.TileSize)
		return nil
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Fprintf(cmd.OutOrStdout(), "meadow %s\n", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&debug, "debug", "d", false, "debug logging and HUD")

	rootCmd.Flags().Uint64Var(&seed, "seed", 0, "random seed (overrides config; 0 uses the clock)")
	rootCmd.Flags().StringVar(&scriptPath, "script", "", "JSON input script to play back")
	rootCmd.Flags().StringVar(&screenshotDir, "screenshot-dir", "", "directory for screenshots (overrides config)")
	rootCmd.Flags().BoolVar(&exitOnScriptEnd, "exit-on-script-end", false, "quit once --script finishes")

	rootCmd.AddCommand(catalogCmd, validateCmd, versionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
