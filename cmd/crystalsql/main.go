// Command crystalsql translates the formulas and visibility conditions of an
// extracted Crystal report into Oracle PL/SQL program units.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/rulego/crystalsql"
	"github.com/rulego/crystalsql/config"
	"github.com/rulego/crystalsql/logger"
	"github.com/rulego/crystalsql/report"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "crystalsql",
		Short:         "Translate Crystal Reports formulas to Oracle PL/SQL",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newTranslateCmd())
	return root
}

func newTranslateCmd() *cobra.Command {
	var (
		configPath string
		outputDir  string
		verbose    bool
	)

	cmd := &cobra.Command{
		Use:   "translate <report.json>",
		Short: "Translate an extracted report into PL/SQL program units",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			level := logger.INFO
			if verbose {
				level = logger.DEBUG
			}
			log := logger.New(level, cmd.ErrOrStderr())

			rep, err := report.Load(args[0])
			if err != nil {
				return err
			}

			conv := crystalsql.New(
				crystalsql.WithConfig(cfg),
				crystalsql.WithLogger(log),
			)
			res := conv.ConvertReport(cmd.Context(), rep)

			if err := os.MkdirAll(outputDir, 0o755); err != nil {
				return err
			}

			written := 0
			for _, f := range res.Formulas {
				if !f.Succeeded {
					log.Error("formula %s not translated", f.SourceName)
					continue
				}
				if err := writeUnit(outputDir, f.OracleName, f.Body); err != nil {
					return err
				}
				written++
				for _, w := range f.Warnings {
					log.Warn("%s: %s", f.OracleName, w)
				}
			}
			for _, t := range res.Triggers {
				if err := writeUnit(outputDir, t.Name, t.Body); err != nil {
					return err
				}
				for _, w := range t.Warnings {
					log.Warn("%s: %s", t.Name, w)
				}
			}

			log.Info("wrote %d formulas and %d triggers to %s", written, len(res.Triggers), outputDir)
			return nil
		},
	}

	cmd.Flags().StringVarP(&configPath, "config", "c", "", "conversion configuration file")
	cmd.Flags().StringVarP(&outputDir, "output", "o", "plsql", "output directory for program units")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	return cmd
}

func writeUnit(dir, name, body string) error {
	path := filepath.Join(dir, name+".pls")
	return os.WriteFile(path, []byte(body+"\n"), 0o644)
}
