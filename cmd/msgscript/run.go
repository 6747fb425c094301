package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"runtime/pprof"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/zephyrtronium/msgscript"
	// import for side effects
	_ "github.com/zephyrtronium/msgscript/coreext"
	"github.com/zephyrtronium/msgscript/program"
)

func runCmd(cfg *Config) *cobra.Command {
	var cpuProfile, memProfile string
	cmd := &cobra.Command{
		Use:   "run FILE...",
		Short: "Run programs and print the result of each",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), cfg)
			if err != nil {
				return err
			}
			run := func() error {
				for _, path := range args {
					if err := runFile(cmd.Context(), logger, cfg, cmd.OutOrStdout(), path); err != nil {
						return err
					}
				}
				return nil
			}
			if cpuProfile == "" && memProfile == "" {
				return run()
			}
			return profiled(cpuProfile, memProfile, run)
		},
	}
	cmd.Flags().StringVar(&cpuProfile, "cpuprofile", "", "write a CPU profile to this file")
	cmd.Flags().StringVar(&memProfile, "memprofile", "", "write a heap profile to this file")
	return cmd
}

// runFile loads, builds, and runs one program, printing its result to out.
func runFile(ctx context.Context, logger *slog.Logger, cfg *Config, out io.Writer, path string) error {
	p, err := program.Load(path)
	if err != nil {
		return err
	}
	s, err := p.Build(msgscript.ScriptOptions{Logger: logger, Debug: cfg.Trace})
	if err != nil {
		return errors.Wrap(err, path)
	}
	logger.Debug("running program", slog.String("file", path), slog.Int("dispatches", s.Context().Len()))
	r, err := s.RunContext(ctx)
	if err != nil {
		logger.Debug("stopped", slog.String("file", path), slog.String("stack", s.Context().StackString()))
		return errors.Wrap(err, path)
	}
	if at, ok := s.Context().PausedAt(); ok {
		logger.Warn("program paused", slog.String("file", path), slog.Int("index", at))
	}
	if !r.OK() {
		logger.Warn("method missing", slog.String("file", path), slog.Any("subject", r.Missing.Subject), slog.String("message", r.Missing.Name))
	}
	_, err = fmt.Fprintln(out, r)
	return err
}

// profiled runs f while recording a CPU profile and writes a heap profile
// afterward. Either file name may be empty to skip that profile.
func profiled(cpu, mem string, f func() error) error {
	if cpu != "" {
		cf, err := os.Create(cpu)
		if err != nil {
			return err
		}
		defer cf.Close()
		if err := pprof.StartCPUProfile(cf); err != nil {
			return err
		}
		defer pprof.StopCPUProfile()
	}
	if err := f(); err != nil {
		return err
	}
	if mem == "" {
		return nil
	}
	mf, err := os.Create(mem)
	if err != nil {
		return err
	}
	defer mf.Close()
	runtime.GC()
	return pprof.WriteHeapProfile(mf)
}
