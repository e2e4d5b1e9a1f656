package manager

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"time"
)

// Run executes a package manager binary with the given arguments and
// captures the result. It is the shared invocation path for all backends:
// stdout and stderr are combined, an optional LogWriter receives output in
// real time, and a non-zero exit code is returned in the Result rather
// than as an error.
func Run(ctx context.Context, bin string, args []string, opts AddOptions) (Result, error) {
	cmd := exec.CommandContext(ctx, bin, args...)

	if opts.WorkDir != "" {
		cmd.Dir = opts.WorkDir
	}
	cmd.Env = os.Environ()

	var output bytes.Buffer
	if opts.LogWriter != nil {
		w := io.MultiWriter(&output, opts.LogWriter)
		cmd.Stdout = w
		cmd.Stderr = w
	} else {
		cmd.Stdout = &output
		cmd.Stderr = &output
	}

	start := time.Now()
	err := cmd.Run()
	duration := time.Since(start)

	result := Result{
		Command:  bin + " " + strings.Join(args, " "),
		Output:   output.String(),
		Duration: duration,
	}

	if err != nil {
		// Context cancellation and timeouts take precedence over the
		// process exit status.
		if ctx.Err() != nil {
			return result, fmt.Errorf("command %q: %w", bin, ctx.Err())
		}
		if exitErr, ok := err.(*exec.ExitError); ok {
			result.ExitCode = exitErr.ExitCode()
			return result, nil
		}
		return result, fmt.Errorf("failed to execute %q: %w", bin, err)
	}

	return result, nil
}

// FileExists reports whether a regular file exists at path.
// Shared by the backends' DetectsProject implementations.
func FileExists(path string) bool {
	stat, err := os.Stat(path)
	return err == nil && !stat.IsDir()
}
