// Package normalize turns raw keyboard-layout-editor documents into per-key legend lists.
//
// Parsing is done by @ijprest/kle-serial, run through npm. Results can be cached by
// document digest.
package normalize

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"

	"github.com/dasdy/kle2kmk/model"
)

// Normalizer converts a raw KLE document into physical keys in row-major layout order.
type Normalizer interface {
	Normalize(ctx context.Context, document []byte) ([]model.PhysicalKey, error)
}

// Error is returned when the external tool fails. Stderr carries its diagnostic output.
type Error struct {
	Stage  string
	Stderr string
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("normalization failed during %s: %v", e.Stage, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Command is a single blocking process invocation.
type Command struct {
	Dir   string
	Name  string
	Args  []string
	Stdin []byte
	// Progress, if set, receives a copy of stdout as it is produced.
	Progress io.Writer
}

type Runner interface {
	Run(ctx context.Context, c Command) (stdout, stderr []byte, err error)
}

// ExecRunner runs commands with os/exec, capturing both output streams.
type ExecRunner struct{}

func (ExecRunner) Run(ctx context.Context, c Command) ([]byte, []byte, error) {
	cmd := exec.CommandContext(ctx, c.Name, c.Args...)
	cmd.Dir = c.Dir

	var stdout, stderr bytes.Buffer

	cmd.Stdout = &stdout
	if c.Progress != nil {
		cmd.Stdout = io.MultiWriter(&stdout, c.Progress)
	}

	cmd.Stderr = &stderr

	if c.Stdin != nil {
		cmd.Stdin = bytes.NewReader(c.Stdin)
	}

	err := cmd.Run()

	//nolint:wrapcheck
	return stdout.Bytes(), stderr.Bytes(), err
}
