package main

import (
	"errors"
	"io"
	"os"

	"github.com/vncsmyrnk/vote/internal/core/domain"
	"github.com/vncsmyrnk/vote/internal/platform/config"
)

func main() {
	if err := run(&app{cfg: config.Load()}, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(exitCode(err))
	}
}

func run(a *app, args []string, stdout, stderr io.Writer) error {
	defer a.close()

	cmd := newRootCmd(a)
	cmd.SetArgs(args)
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	return cmd.Execute()
}

func exitCode(err error) int {
	switch {
	case errors.Is(err, domain.ErrInvalidVoterID):
		return 2
	case errors.Is(err, domain.ErrVoteNotFound):
		return 3
	default:
		return 1
	}
}
