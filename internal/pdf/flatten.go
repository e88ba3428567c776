package pdf

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"time"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// Package pdf implements the best-effort form-flattening chain. Each backend
// is tried once, in order; the first one that produces a valid PDF wins.
// This is integration glue around external tools, not a flattening engine:
// there is no shared abstraction beyond the command seam used by tests.

const toolTimeout = 30 * time.Second

var pdfHeader = []byte("%PDF-")

// ErrNotPDF is returned when the input does not start with a PDF header.
var ErrNotPDF = errors.New("input is not a PDF")

// Attempt records the outcome of one backend in the chain.
type Attempt struct {
	Tool  string `json:"tool"`
	Error string `json:"error"`
}

// ChainError is returned when every backend failed. It carries the per-tool
// errors so the caller can report the combined failure.
type ChainError struct {
	Attempts []Attempt
}

func (e *ChainError) Error() string {
	parts := make([]string, 0, len(e.Attempts))
	for _, a := range e.Attempts {
		parts = append(parts, fmt.Sprintf("%s: %s", a.Tool, a.Error))
	}
	return "all flatten backends failed: " + strings.Join(parts, "; ")
}

// cliTool describes one external command attempt. buildArgs receives the
// input and desired output path and returns the binary candidates (tried via
// LookPath in order) and its arguments.
type cliTool struct {
	name      string
	binaries  []string
	buildArgs func(in, out string) []string
}

var cliTools = []cliTool{
	{
		name:     "qpdf",
		binaries: []string{"qpdf"},
		buildArgs: func(in, out string) []string {
			return []string{"--flatten-annotations=all", "--generate-appearances", in, out}
		},
	},
	{
		name:     "pdftk",
		binaries: []string{"pdftk"},
		buildArgs: func(in, out string) []string {
			return []string{in, "output", out, "flatten"}
		},
	},
	{
		name:     "ghostscript",
		binaries: []string{"gs"},
		buildArgs: func(in, out string) []string {
			return []string{"-dBATCH", "-dNOPAUSE", "-dQUIET", "-sDEVICE=pdfwrite", "-dPreserveAnnots=false", "-sOutputFile=" + out, in}
		},
	},
	{
		name:     "chromium",
		binaries: []string{"chromium", "chromium-browser", "google-chrome"},
		buildArgs: func(in, out string) []string {
			return []string{"--headless", "--disable-gpu", "--no-sandbox", "--print-to-pdf=" + out, "file://" + in}
		},
	},
}

// Flattener runs the fallback chain. The zero value is not usable; use NewFlattener.
type Flattener struct {
	timeout time.Duration

	// runCommand is the seam tests use to fake tool execution.
	runCommand func(ctx context.Context, bin string, args ...string) error
	// lookPath is the seam for binary resolution.
	lookPath func(bin string) (string, error)
}

// NewFlattener creates a Flattener with the default per-tool timeout.
func NewFlattener() *Flattener {
	return &Flattener{
		timeout:    toolTimeout,
		runCommand: runCommand,
		lookPath:   exec.LookPath,
	}
}

func runCommand(ctx context.Context, bin string, args ...string) error {
	cmd := exec.CommandContext(ctx, bin, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return fmt.Errorf("%w: %s", err, msg)
		}
		return err
	}
	return nil
}

// Flatten runs the chain over the input PDF and returns the first successful
// output along with the name of the backend that produced it. When every
// backend fails the returned error is a *ChainError with per-tool messages.
func (f *Flattener) Flatten(ctx context.Context, input []byte) ([]byte, string, error) {
	if !bytes.HasPrefix(input, pdfHeader) {
		return nil, "", ErrNotPDF
	}

	dir, err := os.MkdirTemp("", "flatten-*")
	if err != nil {
		return nil, "", fmt.Errorf("create temp dir: %w", err)
	}
	defer os.RemoveAll(dir)

	in := filepath.Join(dir, "in.pdf")
	if err := os.WriteFile(in, input, 0o600); err != nil {
		return nil, "", fmt.Errorf("write temp input: %w", err)
	}

	chain := &ChainError{}
	for i, tool := range cliTools {
		out := filepath.Join(dir, fmt.Sprintf("out-%d.pdf", i))
		data, err := f.runTool(ctx, tool, in, out)
		if err != nil {
			chain.Attempts = append(chain.Attempts, Attempt{Tool: tool.name, Error: err.Error()})
			continue
		}
		return data, tool.name, nil
	}

	// Last resort: lock all form fields in-process.
	data, err := libFlatten(input)
	if err != nil {
		chain.Attempts = append(chain.Attempts, Attempt{Tool: "pdfcpu", Error: err.Error()})
		return nil, "", chain
	}
	return data, "pdfcpu", nil
}

func (f *Flattener) runTool(ctx context.Context, tool cliTool, in, out string) ([]byte, error) {
	bin, err := f.resolveBinary(tool.binaries)
	if err != nil {
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, f.timeout)
	defer cancel()

	if err := f.runCommand(ctx, bin, tool.buildArgs(in, out)...); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(out)
	if err != nil {
		return nil, fmt.Errorf("read output: %w", err)
	}
	if !bytes.HasPrefix(data, pdfHeader) {
		return nil, fmt.Errorf("output is not a PDF")
	}
	return data, nil
}

func (f *Flattener) resolveBinary(candidates []string) (string, error) {
	var lastErr error
	for _, bin := range candidates {
		path, err := f.lookPath(bin)
		if err == nil {
			return path, nil
		}
		lastErr = err
	}
	return "", lastErr
}

// libFlatten locks every form field via pdfcpu, removing interactivity
// without shelling out. pdfcpu cannot burn appearances into page content,
// so this is the weakest backend and runs last.
func libFlatten(input []byte) ([]byte, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed

	var buf bytes.Buffer
	if err := api.LockFormFields(bytes.NewReader(input), &buf, nil, conf); err != nil {
		return nil, err
	}
	out := buf.Bytes()
	if !bytes.HasPrefix(out, pdfHeader) {
		return nil, fmt.Errorf("output is not a PDF")
	}
	return out, nil
}
