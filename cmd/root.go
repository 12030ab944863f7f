package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/binres-gen/binres-gen/internal/collector"
	"github.com/binres-gen/binres-gen/internal/config"
	"github.com/binres-gen/binres-gen/internal/generator"
	"github.com/binres-gen/binres-gen/internal/ui"
	"github.com/binres-gen/binres-gen/pkg/log"
	"github.com/binres-gen/binres-gen/version"
)

var (
	configPath string
	watchMode  bool
	logLevel   string
	logFile    string
)

// rootCmd represents the base command. The build itself is the root command;
// there are no build subcommands.
var rootCmd = &cobra.Command{
	Use:   "binres-gen <sourceDir> <destDir> <className> [pattern]",
	Short: "Compile binary files into C++ source data",
	Long: `binres-gen finds all files in the source directory and encodes them into two
files called <className>.cpp and <className>.h, which it writes into the
destination directory supplied.

Files in subdirectories of the source directory are included, but #ifdef'ed
out using the uppercased name of the subdirectory, so callers can opt in to
per-subdirectory resource sets before including the header.`,
	Args: cobra.RangeArgs(3, 4),
	Run: func(cmd *cobra.Command, args []string) {
		if err := runBuild(args); err != nil {
			fmt.Println(err)
			os.Exit(1)
		}
	},
}

// Execute adds all child commands to the root command and sets flags
// appropriately. This is called by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().StringVar(&configPath, "config", "", "Path to a binres.yaml configuration file")
	rootCmd.Flags().BoolVar(&watchMode, "watch", false, "Stay resident and regenerate when the source tree changes")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
	rootCmd.Flags().StringVar(&logFile, "log-file", "", "Override the configured log file path")
}

// runBuild validates the arguments, collects the source files, and runs one
// generation pass. With --watch it then stays resident and repeats the pass
// on source-tree changes.
//
// Returns:
//   - error: An error carrying the user-facing diagnostic on any failure.
func runBuild(args []string) error {
	ui.PrintHeader(fmt.Sprintf("binres-gen %s", version.Version))

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.Path = logFile
	}
	if err := log.Init(cfg.Logging.Path, cfg.Logging.Level); err != nil {
		return fmt.Errorf("Failed to initialize logging: %v", err)
	}

	sourceDir, err := resolveDir(args[0], "Source")
	if err != nil {
		return err
	}
	destDir, err := resolveDir(args[1], "Destination")
	if err != nil {
		return err
	}

	className := strings.TrimSpace(args[2])

	pattern := "*"
	if len(args) > 3 {
		pattern = args[3]
	}

	opts := collector.Options{
		Pattern:        pattern,
		HiddenSuffixes: cfg.Filter.HiddenSuffixes,
		HiddenNames:    cfg.Filter.HiddenNames,
	}

	buildOnce := func() error {
		var files []collector.SourceFile
		err := ui.RunSpinner("Scanning "+sourceDir, func() error {
			var err error
			files, err = collector.Collect(sourceDir, opts)
			return err
		})
		if err != nil {
			return err
		}
		if len(files) == 0 {
			return fmt.Errorf("Didn't find any source files in: %s", sourceDir)
		}

		total, err := generator.Generate(generator.Request{
			SourceDir: sourceDir,
			DestDir:   destDir,
			ClassName: className,
			Files:     files,
		}, cfg.Output)
		if err != nil {
			return err
		}

		fmt.Printf("\n Total size of binary data: %d bytes\n", total)
		return nil
	}

	if err := buildOnce(); err != nil {
		return err
	}

	if !watchMode {
		return nil
	}
	return runWatch(cfg, sourceDir, opts, buildOnce)
}

// resolveDir resolves a directory argument against the working directory and
// verifies it exists.
func resolveDir(arg, label string) (string, error) {
	path, err := filepath.Abs(arg)
	if err != nil {
		return "", fmt.Errorf("%s directory doesn't exist: %s", label, arg)
	}
	if info, err := os.Stat(path); err != nil || !info.IsDir() {
		return "", fmt.Errorf("%s directory doesn't exist: %s", label, path)
	}
	return path, nil
}

// loadConfig reads the configuration file named by --config, falling back to
// a binres.yaml in the working directory when present, then applies defaults
// and validates.
func loadConfig() (*config.Config, error) {
	path := configPath
	if path == "" {
		if _, err := os.Stat("binres.yaml"); err == nil {
			path = "binres.yaml"
		}
	}

	cfg := &config.Config{}
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	config.ApplyDefaults(cfg)
	if err := config.Validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
