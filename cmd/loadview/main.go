// Command loadview shows a loading skeleton in the terminal.
package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"loadview/config"
	"loadview/logger"
	"loadview/motion"
	lvterm "loadview/term"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

type rootFlags struct {
	configFile   string
	lines        int
	avatar       bool
	label        string
	reduceMotion bool
	card         bool
	subtle       bool
}

func newRootCmd() *cobra.Command {
	var f rootFlags

	cmd := &cobra.Command{
		Use:           "loadview",
		Short:         "Show a loading skeleton in the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := resolveOptions(cmd, f)
			if err != nil {
				return err
			}

			if !term.IsTerminal(int(os.Stdout.Fd())) {
				// No animation without a terminal: print one static frame.
				_, err := fmt.Fprintln(cmd.OutOrStdout(), lvterm.NewModel(opts).Frame())
				return err
			}

			if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
				opts.Width = w
			}

			p := tea.NewProgram(lvterm.NewModel(opts), tea.WithReportFocus())
			if _, err := p.Run(); err != nil {
				return fmt.Errorf("running terminal ui: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&f.configFile, "config", "", "config file (default ~/.config/loadview/config.yaml)")
	cmd.Flags().IntVarP(&f.lines, "lines", "n", 3, "number of body placeholder lines")
	cmd.Flags().BoolVar(&f.avatar, "avatar", false, "show the avatar row")
	cmd.Flags().StringVar(&f.label, "label", "", "accessible label")
	cmd.Flags().BoolVar(&f.reduceMotion, "reduce-motion", false, "never animate")
	cmd.Flags().BoolVar(&f.card, "card", false, "draw a card placeholder")
	cmd.Flags().BoolVar(&f.subtle, "subtle", false, "use the gentler pulse")

	return cmd
}

// resolveOptions merges config sources with flags set on the command line.
func resolveOptions(cmd *cobra.Command, f rootFlags) (lvterm.Options, error) {
	var (
		cfg *config.Config
		err error
	)
	if f.configFile != "" {
		cfg, err = config.LoadFile(f.configFile)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return lvterm.Options{}, err
	}

	if err := logger.Init(logger.Config{Level: cfg.LogLevel(), Format: cfg.LogFormat()}); err != nil {
		return lvterm.Options{}, err
	}

	flags := cmd.Flags()
	if flags.Changed("lines") {
		cfg.Set("skeleton.lines", f.lines)
	}
	if flags.Changed("avatar") {
		cfg.Set("skeleton.avatar", f.avatar)
	}
	if flags.Changed("label") {
		cfg.Set("skeleton.label", f.label)
	}
	if flags.Changed("reduce-motion") {
		cfg.Set("reduce_motion", f.reduceMotion)
	}

	opts, clamped := cfg.Skeleton()
	if clamped {
		logger.Warn("negative line count clamped to 0")
	}

	var reduced motion.Signal = motion.Unavailable{}
	if v, ok := cfg.ReduceMotion(); ok {
		reduced = motion.Fixed(v)
	} else {
		logger.Debug("reduced motion preference not configured, animation allowed")
	}

	return lvterm.Options{
		Skeleton:      opts,
		Card:          f.card,
		Subtle:        f.subtle,
		ReducedMotion: reduced,
		StatusAfter:   cfg.StatusAfter(),
	}, nil
}
