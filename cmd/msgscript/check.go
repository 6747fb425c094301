package main

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/msgscript"
	"github.com/zephyrtronium/msgscript/program"
)

func checkCmd(cfg *Config) *cobra.Command {
	return &cobra.Command{
		Use:   "check FILE...",
		Short: "Load and build programs without running them",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			for _, path := range args {
				p, err := program.Load(path)
				if err != nil {
					return err
				}
				s, err := p.Build(msgscript.ScriptOptions{Logger: logger})
				if err != nil {
					return errors.Wrap(err, path)
				}
				logger.Debug("checked program", "file", path, "variables", len(p.Variables))
				fmt.Fprintf(cmd.OutOrStdout(), "%s: %d dispatches\n", path, s.Context().Len())
			}
			return nil
		},
	}
}
