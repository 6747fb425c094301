package main

import (
	"github.com/spf13/cobra"
)

// newRootCmd creates the command tree. It is a function rather than a global
// so that tests get fresh flag state.
func newRootCmd() *cobra.Command {
	var (
		cfg        Config
		configPath string
	)
	root := &cobra.Command{
		Use:   "msgscript",
		Short: "Run message-dispatch programs",
		Long: `msgscript executes programs made of dispatches: messages sent to
subjects, resolved through extensions, receiver handlers, and properties.
Programs are YAML files listing variables and dispatches.`,
		Example: `  # Run a program and print its result
  msgscript run prog.yaml

  # Trace every dispatch
  msgscript run --trace prog.yaml

  # Validate programs without running them
  msgscript check a.yaml b.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return cfg.load(cmd, configPath)
		},
	}
	pf := root.PersistentFlags()
	pf.StringVar(&configPath, "config", "", "path to a TOML config file (default "+defaultConfigFile+" if present)")
	pf.BoolVarP(&cfg.Debug, "debug", "d", false, "enable debug logging")
	pf.BoolVar(&cfg.Trace, "trace", false, "log every dispatch as it executes")
	pf.StringVar(&cfg.LogLevel, "log-level", "info", "minimum log level: debug, info, warn, or error")
	pf.BoolVar(&cfg.NoColor, "no-color", false, "disable colored log output")

	root.AddCommand(runCmd(&cfg), checkCmd(&cfg), versionCmd())
	return root
}
