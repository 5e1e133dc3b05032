package main

import (
	"errors"
	"fmt"

	flag "github.com/spf13/pflag"

	"github.com/alnah/go-notecards/internal/yamlutil"
)

// runConfigCmd prints the effective configuration as YAML. Flags other
// than --config are not applied, so the output is a valid config file.
func runConfigCmd(args []string, env *Environment) int {
	f, err := parseConfigFlags(args, env.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return ExitSuccess
		}
		fmt.Fprintln(env.Stderr, formatError(fmt.Errorf("%w: %v", ErrUsage, err)))
		return ExitUsage
	}

	warnUnknownEnvVars(env.Stderr)
	cfg, err := loadEffectiveConfig(f.config, loadEnvConfig(env.Stderr))
	if err == nil {
		err = cfg.Validate()
	}
	if err != nil {
		fmt.Fprintln(env.Stderr, formatError(err))
		return exitCodeFor(err)
	}

	data, err := yamlutil.Marshal(cfg)
	if err != nil {
		fmt.Fprintln(env.Stderr, formatError(err))
		return ExitGeneral
	}
	_, _ = env.Stdout.Write(data)
	return ExitSuccess
}
