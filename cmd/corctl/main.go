package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"corengine/internal/app"
	"corengine/internal/config"
	"corengine/internal/domain"
)

// exitErr carries a numeric exit code through the cobra error path.
type exitErr struct {
	code int
	msg  string
}

func (e *exitErr) Error() string { return e.msg }

func codeError(code int, format string, args ...any) error {
	return &exitErr{code: code, msg: fmt.Sprintf(format, args...)}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "corctl",
		Short:         "Operate the COR audit engine",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(migrateCmd(), cycleCmd(), readinessCmd(), scoreCmd(), elementsCmd())
	return root
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ee *exitErr
		if errors.As(err, &ee) {
			fmt.Fprintln(os.Stderr, "Error:", ee.msg)
			os.Exit(ee.code)
		}
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func migrateCmd() *cobra.Command {
	return &cobra.Command{
		Use:       "migrate <up|down|status>",
		Short:     "Run database migrations",
		Args:      cobra.MatchAll(cobra.ExactArgs(1), cobra.OnlyValidArgs),
		ValidArgs: []string{"up", "down", "status"},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return codeError(3, "config: %s", err)
			}
			if cfg.Store != "postgres" {
				return codeError(3, "migrate needs STORE=postgres")
			}
			cfg.MigrateOnStart = false
			log := cfg.Logger()
			a, err := app.Build(cmd.Context(), cfg, log)
			if err != nil {
				return codeError(4, "%s", err)
			}
			defer a.Close()
			if err := a.DB.Migrate(cmd.Context(), args[0], log); err != nil {
				return codeError(5, "migrate %s: %s", args[0], err)
			}
			return nil
		},
	}
}

func cycleCmd() *cobra.Command {
	var orgID, corType string
	cmd := &cobra.Command{
		Use:   "cycle",
		Short: "Project the audit cycle for an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				st, err := a.Cycle.Project(cmd.Context(), orgID, domain.CORType(corType))
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), st)
			})
		},
	}
	cmd.Flags().StringVar(&orgID, "org", "", "Organization id")
	cmd.Flags().StringVar(&corType, "cor-type", string(domain.CORTypeOHS), "COR type: OHS or RTW")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}

func readinessCmd() *cobra.Command {
	var orgID string
	cmd := &cobra.Command{
		Use:   "readiness",
		Short: "Aggregate readiness for an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withApp(cmd.Context(), func(a *app.App) error {
				rd, err := a.Cycle.Readiness(cmd.Context(), orgID)
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), rd)
			})
		},
	}
	cmd.Flags().StringVar(&orgID, "org", "", "Organization id")
	_ = cmd.MarkFlagRequired("org")
	return cmd
}

// scoreCmd scores an element score set read from a file (or stdin with
// "-") without touching the store.
func scoreCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "score <file|->",
		Short: "Compute element totals and the overall score for a score set",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var r io.Reader = cmd.InOrStdin()
			if args[0] != "-" {
				f, err := os.Open(args[0])
				if err != nil {
					return codeError(3, "%s", err)
				}
				defer f.Close()
				r = f
			}
			var scores domain.ElementScores
			if err := json.NewDecoder(r).Decode(&scores); err != nil {
				return codeError(3, "decode scores: %s", err)
			}
			if err := domain.ValidateMethodScores(scores); err != nil {
				return codeError(3, "%s", err)
			}
			res := domain.ScoreElements(scores)
			return printJSON(cmd.OutOrStdout(), struct {
				domain.ScoreResult
				Outcome domain.AuditStatus `json:"outcome"`
			}{res, domain.Outcome(res)})
		},
	}
}

func elementsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "elements",
		Short: "List the audit elements and their weights",
		RunE: func(cmd *cobra.Command, args []string) error {
			return printJSON(cmd.OutOrStdout(), domain.Elements())
		},
	}
}

func withApp(ctx context.Context, fn func(*app.App) error) error {
	cfg, err := config.Load()
	if err != nil {
		return codeError(3, "config: %s", err)
	}
	a, err := app.Build(ctx, cfg, cfg.Logger())
	if err != nil {
		return codeError(4, "%s", err)
	}
	defer a.Close()
	if err := fn(a); err != nil {
		return codeError(5, "%s", err)
	}
	return nil
}

func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
