package main

import (
	"fmt"
	"os"
	"runtime"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/ajitpratap0/objectpool/pkg/config"
	"github.com/ajitpratap0/objectpool/pkg/logger"
)

var version = "0.1.0"

func main() {
	var logLevel string

	root := &cobra.Command{
		Use:   "objectpool",
		Short: "objectpool - inspect and exercise object pool configurations",
		Long: `objectpool loads object pool settings from YAML, JSON or any viper-supported
file and exercises them against a demo pooled type to show how much allocation
the pool saves.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return logger.Init(logger.Config{Level: logLevel, Encoding: "console"})
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")

	// Version command
	root.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("objectpool v%s\n", version)
			fmt.Printf("Go version: %s\n", runtime.Version())
			fmt.Printf("OS/Arch: %s/%s\n", runtime.GOOS, runtime.GOARCH)
		},
	})

	// Check command prints the resolved settings of every configured pool
	var checkConfigFile, checkWriteFile string
	checkCmd := &cobra.Command{
		Use:   "check",
		Short: "Validate a pool configuration file",
		Long: `Check loads a pool configuration file, validates every entry and prints the
resolved settings. With --write the normalized configuration is saved as YAML.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCheck(cmd, checkConfigFile, checkWriteFile)
		},
	}
	checkCmd.Flags().StringVarP(&checkConfigFile, "config", "c", "", "Path to pool configuration file (required)")
	checkCmd.Flags().StringVarP(&checkWriteFile, "write", "w", "", "Write the normalized configuration to this YAML file")
	_ = checkCmd.MarkFlagRequired("config")
	root.AddCommand(checkCmd)

	// Simulate command
	var opts simulateOptions
	simulateCmd := &cobra.Command{
		Use:   "simulate",
		Short: "Churn a demo pool and report how many allocations were avoided",
		Long: `Simulate runs one pool per worker. Each worker repeatedly takes --batch frames
from its pool and returns them, for --ops gets in total.

Example:
  objectpool simulate --config pools.yaml --pool frame --ops 100000 --workers 4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := loadRegistry(opts.configFile)
			if err != nil {
				return err
			}
			summary, err := runSimulation(cmd.Context(), reg, opts)
			if err != nil {
				return err
			}
			printSummary(cmd, summary)
			return nil
		},
	}
	simulateCmd.Flags().StringVarP(&opts.configFile, "config", "c", "", "Path to pool configuration file (optional, defaults to an unbounded pool)")
	simulateCmd.Flags().StringVar(&opts.poolName, "pool", "frame", "Pool name to look up in the configuration")
	simulateCmd.Flags().IntVar(&opts.ops, "ops", 10000, "Number of Get calls per worker")
	simulateCmd.Flags().IntVar(&opts.workers, "workers", runtime.NumCPU(), "Number of workers, each with its own pool")
	simulateCmd.Flags().IntVar(&opts.batch, "batch", 8, "Frames a worker holds before returning them")
	simulateCmd.Flags().StringVar(&opts.order, "order", "fifo", "Recycling order (fifo, lifo)")
	root.AddCommand(simulateCmd)

	err := root.Execute()
	_ = logger.Sync()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// loadRegistry loads the configuration file, or an empty registry when no
// file is given.
func loadRegistry(path string) (*config.Registry, error) {
	if path == "" {
		logger.Debug("no config file given, using unbounded defaults")
		return config.NewRegistry(config.File{})
	}
	return config.LoadFile(path)
}

func runCheck(cmd *cobra.Command, path, writePath string) error {
	reg, err := config.LoadFile(path)
	if err != nil {
		return err
	}
	logger.Info("pool config valid",
		zap.String("path", path),
		zap.Int("pools", len(reg.Names())))
	printRegistry(cmd, reg)

	if writePath == "" {
		return nil
	}
	if err := config.Save(writePath, reg.File()); err != nil {
		return err
	}
	logger.Info("normalized pool config written", zap.String("path", writePath))
	return nil
}

func printRegistry(cmd *cobra.Command, reg *config.Registry) {
	out := cmd.OutOrStdout()
	defaults := reg.Defaults()
	fmt.Fprintf(out, "%-24s %-10s %s\n", "POOL", "PRECACHE", "MAX ALIVE")
	fmt.Fprintf(out, "%-24s %-10d %s\n", "(defaults)", defaults.PrecacheCount, defaults.MaxAlive)
	for _, name := range reg.Names() {
		cfg := reg.Lookup(name)
		fmt.Fprintf(out, "%-24s %-10d %s\n", name, cfg.PrecacheCount, cfg.MaxAlive)
	}
}

func printSummary(cmd *cobra.Command, s simulationSummary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Pool:          %s (%s)\n", s.Pool, s.Dispatch)
	fmt.Fprintf(out, "Workers:       %d\n", len(s.Workers))
	fmt.Fprintf(out, "Gets:          %d\n", s.Gets)
	fmt.Fprintf(out, "Constructed:   %d\n", s.Constructed)
	fmt.Fprintf(out, "Reuse ratio:   %.2f%%\n", s.ReuseRatio()*100)
}
