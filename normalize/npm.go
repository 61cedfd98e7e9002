package normalize

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/dasdy/kle2kmk/layout"
	"github.com/dasdy/kle2kmk/logging"
	"github.com/dasdy/kle2kmk/model"
)

const DefaultDir = "/tmp/kle_to_keymap"

const packageJSON = `{
  "name": "kle-parser",
  "version": "1.0.0",
  "main": "index.js",
  "scripts": {
    "index.js": "node index.js"
  },
  "dependencies": {
    "@ijprest/kle-serial": "^0.15.1"
  }
}
`

const indexJS = `var kle = require("@ijprest/kle-serial");
var fs = require('fs');
var data = fs.readFileSync(0, 'utf-8');
var keyboard = kle.Serial.parse(data);

console.log(JSON.stringify(keyboard.keys));
`

var ErrNoOutput = errors.New("normalizer produced no output")

// NPMNormalizer runs kle-serial from a small npm project kept in Dir.
// The project is installed once; later runs reuse node_modules.
type NPMNormalizer struct {
	Dir    string
	NPM    string
	Runner Runner
	// Progress receives the install spinner. Nil disables it.
	Progress io.Writer
}

func NewNPMNormalizer(dir, npm string) *NPMNormalizer {
	if dir == "" {
		dir = DefaultDir
	}

	if npm == "" {
		npm = "npm"
	}

	return &NPMNormalizer{
		Dir:      dir,
		NPM:      npm,
		Runner:   ExecRunner{},
		Progress: os.Stderr,
	}
}

func (n *NPMNormalizer) Normalize(ctx context.Context, document []byte) ([]model.PhysicalKey, error) {
	ctx = logging.AppendCtx(ctx, slog.String(logging.PackageName, "normalize"))

	if err := n.prepare(ctx); err != nil {
		return nil, err
	}

	stdout, stderr, err := n.Runner.Run(ctx, Command{
		Dir:   n.Dir,
		Name:  n.NPM,
		Args:  []string{"run", "index.js"},
		Stdin: document,
	})
	if err != nil {
		return nil, &Error{Stage: "npm run", Stderr: string(stderr), Err: err}
	}

	// npm prints its own banner first; the JSON is the last line
	line := lastLine(stdout)
	if line == "" {
		return nil, &Error{Stage: "npm run", Stderr: string(stderr), Err: ErrNoOutput}
	}

	keys, err := layout.DecodeNormalized(strings.NewReader(line))
	if err != nil {
		return nil, &Error{Stage: "decode", Stderr: string(stderr), Err: err}
	}

	slog.DebugContext(ctx, "Normalized layout", "keys", len(keys))

	return keys, nil
}

func (n *NPMNormalizer) prepare(ctx context.Context) error {
	if err := os.MkdirAll(n.Dir, 0o755); err != nil {
		return &Error{Stage: "setup", Err: fmt.Errorf("could not create %s: %w", n.Dir, err)}
	}

	files := map[string]string{
		"package.json": packageJSON,
		"index.js":     indexJS,
	}

	for name, content := range files {
		if err := os.WriteFile(filepath.Join(n.Dir, name), []byte(content), 0o644); err != nil {
			return &Error{Stage: "setup", Err: fmt.Errorf("could not write %s: %w", name, err)}
		}
	}

	if _, err := os.Stat(filepath.Join(n.Dir, "node_modules")); err == nil {
		return nil
	}

	slog.InfoContext(ctx, "Installing kle-serial", "dir", n.Dir)

	return n.install(ctx)
}

func (n *NPMNormalizer) install(ctx context.Context) error {
	progress := n.Progress
	if progress == nil {
		progress = io.Discard
	}

	bar := progressbar.NewOptions64(-1,
		progressbar.OptionSetDescription("npm install"),
		progressbar.OptionSetWriter(progress),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSpinnerType(14),
		progressbar.OptionClearOnFinish(),
	)

	_, stderr, err := n.Runner.Run(ctx, Command{
		Dir:      n.Dir,
		Name:     n.NPM,
		Args:     []string{"install"},
		Progress: bar,
	})

	if errFinish := bar.Finish(); errFinish != nil {
		slog.ErrorContext(ctx, "could not finish progress bar", "error", errFinish)
	}

	if err != nil {
		return &Error{Stage: "npm install", Stderr: string(stderr), Err: err}
	}

	return nil
}

func lastLine(out []byte) string {
	lines := bytes.Split(bytes.TrimSpace(out), []byte("\n"))

	return strings.TrimSpace(string(lines[len(lines)-1]))
}
