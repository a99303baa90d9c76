package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/l-donovan/wsh/config"
	"github.com/l-donovan/wsh/metrics"
	"github.com/l-donovan/wsh/shell"
	"github.com/l-donovan/wsh/utils"
	"github.com/l-donovan/wsh/version"
)

// options holds the flags accepted by the wsh binary.
type options struct {
	version bool
	help    bool
	script  string
}

func parseFlags(args []string) (*options, []string, error) {
	fs := flag.NewFlagSet("wsh", flag.ContinueOnError)
	opts := &options{}

	fs.BoolVar(&opts.version, "version", false, "print version and exit")
	fs.BoolVar(&opts.version, "v", false, "print version and exit (alias)")
	fs.BoolVar(&opts.help, "help", false, "print usage and exit")
	fs.StringVar(&opts.script, "c", "", "run a single line as a script and exit")

	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	return opts, fs.Args(), nil
}

// hasStdin reports whether stdin is a pipe or file rather than a TTY,
// the same check that governs non-interactive script mode.
func hasStdin() bool {
	return !term.IsTerminal(int(os.Stdin.Fd()))
}

func main() {
	opts, rest, err := parseFlags(os.Args[1:])
	if err != nil {
		fmt.Println(err)
		os.Exit(2)
	}

	if opts.version {
		fmt.Printf("%s %s\n", version.ShellName, version.Full())
		return
	}

	if opts.help {
		fmt.Println("usage: wsh [-c line] [script]")
		return
	}

	logger, err := utils.InitializeLogger()
	if err != nil {
		fmt.Printf("could not initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer func() {
		_ = logger.Sync()
	}()

	cfg := config.New(logger)
	cfg.Load()

	sh, err := shell.New(logger, cfg)
	if err != nil {
		logger.Fatal("failed to initialize shell", zap.Error(err))
	}
	defer sh.Close()

	handleGracefulShutdown(sh, logger)

	go serveMetrics(logger)

	// os.Exit skips deferred calls, so every exit below goes through
	// exit, which saves history first.
	exit := func(code int) {
		sh.Close()
		os.Exit(code)
	}

	// -c runs a single line non-interactively, same as "wsh -c 'cmd'".
	if opts.script != "" {
		if err := sh.EvalLine(opts.script); err != nil {
			fmt.Fprintln(os.Stderr, err)
			exit(1)
		}
		exit(sh.ExitCode())
	}

	// A script path argument, or piped/redirected stdin with no tty,
	// runs non-interactively instead of starting the REPL.
	if len(rest) > 0 {
		code, err := sh.RunFile(rest[0])
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
		exit(code)
	}

	if hasStdin() {
		b, _ := io.ReadAll(os.Stdin)
		for _, line := range strings.Split(string(b), "\n") {
			if strings.TrimSpace(line) == "" {
				continue
			}
			if err := sh.EvalLine(line); err != nil {
				fmt.Fprintln(os.Stderr, err)
			}
			if sh.ExitRequested() {
				break
			}
		}
		exit(sh.ExitCode())
	}

	exit(sh.RunInteractive())
}

// handleGracefulShutdown saves history and stops the path watcher
// before exiting on SIGTERM, rather than leaving a truncated history
// file behind. SIGINT is deliberately not handled here: the shell's
// children share its process group, so a terminal Ctrl-C reaches both
// wsh and whatever foreground external command is running, and per
// §4.7 a bare SIGINT must only clear the input line and return to the
// prompt, not tear down the process. That line-abort behavior is
// liner's job (see SetCtrlCAborts in repl.go).
func handleGracefulShutdown(sh *shell.Shell, logger *zap.Logger) {
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGTERM)
	go func() {
		sig := <-signals
		logger.Info("received shutdown signal", zap.String("signal", sig.String()))
		sh.Close()
		os.Exit(128)
	}()
}

// serveMetrics exposes the Prometheus registry over WSH_METRICS_ADDR, if
// set; wsh otherwise runs with no listening sockets at all.
func serveMetrics(logger *zap.Logger) {
	addr := os.Getenv("WSH_METRICS_ADDR")
	if addr == "" {
		return
	}
	if err := metrics.Serve(addr); err != nil {
		logger.Warn("metrics server exited", zap.Error(err))
	}
}
