package adapter

import (
	"errors"
	"os"
	"os/exec"
	"testing"

	"github.com/stretchr/testify/require"
)

const exitHelperEnv = "INTCHECK_EXIT_HELPER"

func TestLocalProcessAdapter_Exit(t *testing.T) {
	if os.Getenv(exitHelperEnv) == "1" {
		NewLocalProcessAdapter().Exit(4)
		return
	}

	cmd := exec.Command(os.Args[0], "-test.run=^TestLocalProcessAdapter_Exit$")
	cmd.Env = append(os.Environ(), exitHelperEnv+"=1")

	err := cmd.Run()

	var exitErr *exec.ExitError
	require.True(t, errors.As(err, &exitErr), "expected exit error, got %v", err)
	require.Equal(t, 4, exitErr.ExitCode())
}
