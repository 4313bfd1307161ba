package main

import (
	"context"
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"tesla-buddy/config"
	"tesla-buddy/internal/checklist"
	"tesla-buddy/internal/tui"
	"tesla-buddy/pkg/log"
	"tesla-buddy/pkg/mdsource"
	"tesla-buddy/pkg/mdview"
)

var version = "dev"

type sourceFlags struct {
	url     string
	file    string
	timeout time.Duration
}

func (f sourceFlags) location() string {
	switch {
	case f.file != "":
		return f.file
	case f.url != "":
		return f.url
	default:
		return config.DefaultChecklistURL
	}
}

func (f sourceFlags) loader(l log.Logger) tui.LoadFunc {
	source := mdsource.NewClient(l, nil)
	location := f.location()
	return func(ctx context.Context) string {
		ctx, cancel := context.WithTimeout(ctx, f.timeout)
		defer cancel()
		return source.Load(ctx, location)
	}
}

func bindSourceFlags(cmd *cobra.Command, f *sourceFlags) {
	cmd.Flags().StringVar(&f.url, "url", "", "Markdown URL (default: Model Y delivery checklist)")
	cmd.Flags().StringVar(&f.file, "file", "", "Local markdown file")
	cmd.Flags().DurationVar(&f.timeout, "timeout", mdsource.DefaultTimeout, "Fetch timeout")
	cmd.MarkFlagsMutuallyExclusive("url", "file")
}

func newLogger(verbose bool) log.Logger {
	level := "warn"
	if verbose {
		level = "info"
	}
	return log.Init(log.ZapConfig{
		Level:      level,
		Mode:       "development",
		Encoding:   log.EncodingConsole,
		OutputPath: "stderr",
	})
}

func toggleLogger(l log.Logger) checklist.ToggleFunc {
	return func(label string, checked bool) {
		l.Infof(context.Background(), "Checkbox %q toggled to: %t", label, checked)
	}
}

func renderCmd() *cobra.Command {
	var (
		src      sourceFlags
		readOnly bool
		theme    string
		verbose  bool
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Print a markdown checklist to the terminal",
		RunE: func(cmd *cobra.Command, args []string) error {
			l := newLogger(verbose)
			t := mdview.ParseTheme(theme, mdview.ThemeDark)
			term := tui.NewTerminal(t, 100)

			r := checklist.NewRenderer(nil, term, checklist.Options{Interactive: !readOnly})
			r.Load(src.loader(l)(cmd.Context()))

			tree, err := r.Render(cmd.Context())
			if err != nil {
				return fmt.Errorf("render: %w", err)
			}

			out := cmd.OutOrStdout()
			fmt.Fprint(out, tui.RenderTree(tree, term.Styles(), -1))
			fmt.Fprintln(out)
			fmt.Fprintln(out, tui.RenderProgress(tree.Stats, term.Styles()))
			return nil
		},
	}

	bindSourceFlags(cmd, &src)
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "Render checkboxes as disabled")
	cmd.Flags().StringVar(&theme, "theme", "dark", "Color theme (light|dark)")
	cmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Verbose logging")
	return cmd
}

func tuiCmd() *cobra.Command {
	var (
		src      sourceFlags
		readOnly bool
		theme    string
		logFile  string
	)

	cmd := &cobra.Command{
		Use:   "tui",
		Short: "Work through a markdown checklist interactively",
		RunE: func(cmd *cobra.Command, args []string) error {
			// The alt screen owns stdout, so toggles are logged to a file.
			l := log.NewNop()
			if logFile != "" {
				var err error
				l, err = log.New(log.ZapConfig{
					Level:      "info",
					Mode:       log.ModeProduction,
					Encoding:   log.EncodingJSON,
					OutputPath: logFile,
				})
				if err != nil {
					return err
				}
			}

			t := mdview.ParseTheme(theme, mdview.ThemeDark)
			term := tui.NewTerminal(t, 80)
			store := checklist.NewStore(toggleLogger(l))
			r := checklist.NewRenderer(store, term, checklist.Options{Interactive: !readOnly})

			m := tui.NewModel(r, term, t, src.loader(l))
			p := tea.NewProgram(m, tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				return err
			}
			return nil
		},
	}

	bindSourceFlags(cmd, &src)
	cmd.Flags().BoolVar(&readOnly, "read-only", false, "Disable toggling")
	cmd.Flags().StringVar(&theme, "theme", "dark", "Color theme (light|dark)")
	cmd.Flags().StringVar(&logFile, "log-file", "", "Write toggle logs to this file")
	return cmd
}

func main() {
	rootCmd := &cobra.Command{
		Use:     "tesla-buddy",
		Short:   "Markdown checklists with interactive checkboxes",
		Version: version,
	}

	rootCmd.AddCommand(renderCmd())
	rootCmd.AddCommand(tuiCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
