// Package cli implements the command-line interface for twisty.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/SeamusWaldron/twisty"
	"github.com/SeamusWaldron/twisty/internal/config"
	"github.com/SeamusWaldron/twisty/internal/render"
)

const version = "0.2.0"

// app carries the state shared by every command of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config.Config
	logger *log.Logger

	// Global flags
	configPath string
	verbose    bool
}

// NewRootCmd builds the twisty command tree.
func NewRootCmd() *cobra.Command {
	a := &app{v: config.New()}

	root := &cobra.Command{
		Use:   "twisty",
		Short: "N×N×N twisty puzzle toolkit",
		Long: `twisty - scramble, turn and explore Rubik's-family cubes of any size
from the command line.

Cube sizes from 2 upward are supported. Moves use standard notation:
U D L R F B for face turns, u d l r f b for wide turns and x y z for
whole-cube rotations, each optionally followed by ' or 2.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
	}

	root.PersistentFlags().StringVar(&a.configPath, "config", "", "Config file (default: ~/.twisty/config.yaml)")
	root.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "Enable debug logging")
	root.PersistentFlags().IntP("size", "n", config.DefaultSize, "Cube size")
	root.PersistentFlags().Bool("plain", false, "Draw without color")
	a.bind(root, config.KeySize, "size")
	a.bind(root, config.KeyPlain, "plain")

	root.AddCommand(
		newScrambleCmd(a),
		newApplyCmd(a),
		newPlayCmd(a),
		newReplayCmd(a),
		newVersionCmd(),
	)

	return root
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

// bind ties a flag of cmd to a config key, so the flag wins over the file
// and the environment when it is set.
func (a *app) bind(cmd *cobra.Command, key, flag string) {
	f := cmd.Flags().Lookup(flag)
	if f == nil {
		f = cmd.PersistentFlags().Lookup(flag)
	}
	if f == nil {
		panic("cli: unknown flag " + flag)
	}
	if err := a.v.BindPFlag(key, f); err != nil {
		panic(err)
	}
}

func (a *app) setup(cmd *cobra.Command) error {
	a.logger = log.NewWithOptions(cmd.ErrOrStderr(), log.Options{
		Prefix: "twisty",
	})
	if a.verbose {
		a.logger.SetLevel(log.DebugLevel)
	}

	if err := config.Read(a.v, a.configPath, config.DefaultDir()); err != nil {
		return err
	}
	if used := a.v.ConfigFileUsed(); used != "" {
		a.logger.Debug("loaded config", "path", used)
	}

	cfg, err := config.Decode(a.v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	return nil
}

// newCube creates a cube of the configured size with the shared logger.
func (a *app) newCube(opts ...twisty.Option) (*twisty.Cube, error) {
	opts = append([]twisty.Option{twisty.WithLogger(a.logger)}, opts...)
	c, err := twisty.New(a.cfg.Size, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to create cube: %w", err)
	}
	return c, nil
}

// renderer picks plain output when asked to or when w is not a terminal.
func (a *app) renderer(w io.Writer) *render.Renderer {
	return render.New(a.cfg.Plain || !isTerminal(w))
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// terminalSize returns the size of stdout, or 80x24 if it is not a
// terminal.
func terminalSize() (width, height int) {
	width, height = 80, 24
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width, height = w, h
	}
	return width, height
}
