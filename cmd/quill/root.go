package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iw2rmb/quill"
	"github.com/iw2rmb/quill/internal/config"
	"github.com/iw2rmb/quill/internal/log"
	"github.com/iw2rmb/quill/internal/term"
	"github.com/iw2rmb/quill/internal/textfile"
)

// app holds the streams the editor runs on.
type app struct {
	in  *os.File
	out io.Writer
}

func newApp() *app {
	return &app{in: os.Stdin, out: os.Stdout}
}

type rootOptions struct {
	cfgFile string
	tui     bool
	debug   bool
	logFile string
}

func newRootCmd(a *app) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:          "quill [file]",
		Short:        "A minimal terminal text editor",
		Long:         `quill edits one text file in the terminal. Without a file argument it asks for a file name first.`,
		Version:      quill.Describe(),
		Args:         cobra.MaximumNArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.run(opts, args)
		},
	}

	cmd.PersistentFlags().StringVarP(&opts.cfgFile, "config", "c", "",
		"config file (default: .quill/config.yaml, then ~/.config/quill/config.yaml)")
	cmd.Flags().BoolVar(&opts.tui, "tui", false, "use the full-screen Bubble Tea frontend")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "write a debug log (also QUILL_DEBUG)")
	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "debug log path (default from config)")

	cmd.SetOut(a.out)
	cmd.AddCommand(newConfigCmd(), newVersionCmd())
	return cmd
}

func (a *app) run(opts *rootOptions, args []string) error {
	cfg, used, err := config.Load(opts.cfgFile)
	if err != nil {
		return err
	}
	if opts.tui {
		cfg.Frontend = config.FrontendTUI
	}

	cleanup, err := startLogging(cfg, opts)
	if err != nil {
		return err
	}
	defer cleanup()
	log.Info(log.CatConfig, "starting", "version", quill.Version(), "config", used, "frontend", cfg.Frontend)

	input := term.NewReader(a.in)
	path := ""
	if len(args) == 1 {
		path = args[0]
	} else {
		path, err = promptFileName(input, a.out)
		if err != nil {
			return err
		}
	}

	b, err := textfile.Load(path)
	if err != nil {
		return err
	}

	if cfg.Frontend == config.FrontendTUI {
		return a.runTUI(cfg, path, b)
	}
	return a.runRaw(cfg, path, b, input)
}

func startLogging(cfg config.Config, opts *rootOptions) (func(), error) {
	if !opts.debug && os.Getenv("QUILL_DEBUG") == "" {
		return func() {}, nil
	}
	path := opts.logFile
	if path == "" {
		path = cfg.Log.Path
	}
	initLog := log.Init
	if cfg.Frontend == config.FrontendTUI {
		initLog = func(path string) (func(), error) { return log.InitWithTeaLog(path, "quill ") }
	}
	closeLog, err := initLog(path)
	if err != nil {
		return nil, err
	}
	return func() {
		log.Reset()
		closeLog()
	}, nil
}

// promptFileName asks for a file name on the cooked terminal and reads one
// line from r.
func promptFileName(r io.RuneReader, w io.Writer) (string, error) {
	for {
		if _, err := io.WriteString(w, "File name: "); err != nil {
			return "", err
		}

		var sb strings.Builder
		for {
			ch, _, err := r.ReadRune()
			if errors.Is(err, io.EOF) {
				return "", errors.New("no file name given")
			}
			if err != nil {
				return "", fmt.Errorf("reading file name: %w", err)
			}
			if ch == '\n' || ch == '\r' {
				break
			}
			sb.WriteRune(ch)
		}

		if name := strings.TrimSpace(sb.String()); name != "" {
			return name, nil
		}
	}
}
