package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/sansecio/rx"
	"github.com/sansecio/rx/ast"
	"github.com/sansecio/rx/cmd/internal"
	"github.com/sansecio/rx/render"
	"github.com/spf13/cobra"
)

// Version is set at build time.
var Version = "0.1.0"

// errStrict is returned when --strict is set and the description has
// diagnostics.
var errStrict = errors.New("description has diagnostics")

// NewRootCmd creates the rx command tree.
func NewRootCmd() *cobra.Command {
	var cfgFile string

	rootCmd := &cobra.Command{
		Use:   "rx [flags] <expression>",
		Short: "Convert S-expression regex descriptions into regular expressions",
		Long: `rx converts a regex description written as an S-expression, such as

  (seq bol (1+ digit) eol)

into PCRE, PCRE2 or JavaScript regular expression syntax.`,
		Version: Version,
		Args:    cobra.ExactArgs(1),
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "__complete" {
				return nil
			}

			cfg, err := internal.LoadConfig(cfgFile, cmd.Root().PersistentFlags())
			if err != nil {
				return err
			}

			logger := internal.NewLogger(cmd.ErrOrStderr(), cfg.Verbose)
			if cfg.File != "" {
				logger.Debug("using config file", "path", cfg.File)
			}

			ctx := internal.WithConfig(cmd.Context(), cfg)
			ctx = internal.WithLogger(ctx, logger)
			cmd.SetContext(ctx)
			return nil
		},
		RunE:          runConvert,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./rx.yaml)")
	rootCmd.PersistentFlags().StringP("output", "o", "", "Output dialect ("+strings.Join(render.Names(), "|")+")")
	rootCmd.PersistentFlags().Bool("strict", false, "Fail when the description has diagnostics")
	rootCmd.PersistentFlags().BoolP("verbose", "v", false, "Verbose output")

	_ = rootCmd.RegisterFlagCompletionFunc("output", func(_ *cobra.Command, _ []string, _ string) ([]string, cobra.ShellCompDirective) {
		return render.Names(), cobra.ShellCompDirectiveNoFileComp
	})

	rootCmd.AddCommand(newDialectsCommand())
	rootCmd.AddCommand(newVersionCommand(Version))

	return rootCmd
}

// Execute runs the root command.
func Execute() error {
	rootCmd := NewRootCmd()
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	cfg := internal.ConfigFrom(ctx)
	logger := internal.LoggerFrom(ctx)

	r, ok := render.Get(cfg.Output)
	if !ok {
		return fmt.Errorf("%w %q (available: %s)", rx.ErrUnknownDialect, cfg.Output, strings.Join(render.Names(), ", "))
	}

	expr, err := rx.Parse(args[0])
	if err != nil {
		return err
	}

	diags := ast.Check(expr)
	for _, d := range diags {
		logger.Warn("suspicious description", "kind", d.Kind.String(), "detail", d.Message)
	}
	if cfg.Strict && len(diags) > 0 {
		return fmt.Errorf("%w: %d found", errStrict, len(diags))
	}

	out, err := r.Render(expr)
	if err != nil {
		return err
	}
	logger.Debug("converted", "dialect", cfg.Output)

	_, _ = fmt.Fprintln(cmd.OutOrStdout(), out)
	return nil
}

func newDialectsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "dialects",
		Short: "List output dialects",
		Long:  `List the registered output dialects with their aliases.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			t := table.NewWriter()
			t.SetOutputMirror(cmd.OutOrStdout())
			t.SetStyle(table.StyleLight)
			t.AppendHeader(table.Row{"Name", "Aliases", "Description"})
			for _, info := range render.List() {
				t.AppendRow(table.Row{info.Name, strings.Join(info.Aliases, ", "), info.Description})
			}
			t.Render()
		},
	}
}

func newVersionCommand(version string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Long:  `Display the rx version.`,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "rx v%s\n", version)
		},
	}
}
