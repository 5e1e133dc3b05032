package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"go.uber.org/automaxprocs/maxprocs"

	notecards "github.com/alnah/go-notecards"
	"github.com/alnah/go-notecards/internal/assets"
	"github.com/alnah/go-notecards/internal/hints"
)

// Version is set at build time via ldflags.
var Version = "dev"

// CLI errors.
var (
	ErrUsage        = errors.New("invalid usage")
	ErrReadMarkdown = errors.New("failed to read markdown")
)

func main() {
	verbose := slices.Contains(os.Args[1:], "-v") || slices.Contains(os.Args[1:], "--verbose")

	// Error ignored: maxprocs.Set only fails if GOMAXPROCS env is invalid,
	// in which case Go runtime defaults apply and the program continues safely.
	if verbose {
		_, _ = maxprocs.Set(maxprocs.Logger(func(format string, args ...interface{}) {
			fmt.Fprintf(os.Stderr, format+"\n", args...)
		}))
	} else {
		_, _ = maxprocs.Set(maxprocs.Logger(func(string, ...interface{}) {}))
	}

	ctx, stop := notifyContext(context.Background())
	code := runMain(ctx, os.Args, DefaultEnv())
	stop()
	os.Exit(code)
}

// runMain dispatches to a command and returns the process exit code.
// args includes the program name, like os.Args.
func runMain(ctx context.Context, args []string, env *Environment) int {
	if len(args) < 2 {
		return runGenerateCmd(ctx, nil, env)
	}

	cmd, rest := args[1], args[2:]
	switch cmd {
	case "generate":
		return runGenerateCmd(ctx, rest, env)
	case "config":
		return runConfigCmd(rest, env)
	case "doctor":
		return runDoctorCmd(rest, env)
	case "version", "--version":
		fmt.Fprintf(env.Stdout, "go-notecards %s\n", Version)
		return ExitSuccess
	case "help", "-h", "--help":
		return runHelp(rest, env)
	}

	// Legacy form: flags or a Markdown file without the generate command.
	if strings.HasPrefix(cmd, "-") || looksLikeMarkdown(cmd) {
		return runGenerateCmd(ctx, args[1:], env)
	}

	fmt.Fprintf(env.Stderr, "error: unknown command %q\n", cmd)
	printUsage(env.Stderr)
	return ExitUsage
}

// looksLikeMarkdown reports whether path has a Markdown extension.
func looksLikeMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// runHelp prints general or per-command usage.
func runHelp(args []string, env *Environment) int {
	if len(args) == 0 {
		printUsage(env.Stdout)
		return ExitSuccess
	}
	switch args[0] {
	case "generate":
		printGenerateUsage(env.Stdout)
	case "config":
		printConfigUsage(env.Stdout)
	case "doctor":
		printDoctorUsage(env.Stdout)
	default:
		fmt.Fprintf(env.Stderr, "error: unknown help topic %q\n", args[0])
		printUsage(env.Stderr)
		return ExitUsage
	}
	return ExitSuccess
}

// formatError renders err with an actionable hint when one applies.
func formatError(err error) string {
	msg := "error: " + err.Error()

	switch {
	case errors.Is(err, notecards.ErrBrowserConnect):
		msg += hints.ForBrowserConnect()
	case errors.Is(err, notecards.ErrPageLoad), errors.Is(err, context.DeadlineExceeded):
		msg += hints.ForTimeout()
	case errors.Is(err, notecards.ErrTemplateSetNotFound):
		msg += hints.ForTemplateSetNotFound(assets.TemplateSetNames())
	case errors.Is(err, ErrReadMarkdown) && errors.Is(err, os.ErrNotExist):
		msg += hints.ForInputNotFound()
	case errors.Is(err, notecards.ErrWriteDocument):
		msg += hints.ForOutputDirectory()
	}
	return msg
}
