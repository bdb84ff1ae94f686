package harness

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/roach88/f2c/internal/ir"
	"github.com/roach88/f2c/internal/parser"
	"github.com/roach88/f2c/internal/serializer"
)

// Runner executes cases. The zero value is not usable; construct with
// NewRunner.
type Runner struct {
	logger *slog.Logger
}

// RunnerOption configures a Runner.
type RunnerOption func(*Runner)

// WithLogger sets the logger case progress is reported to.
//
// Default: a logger that discards everything
func WithLogger(l *slog.Logger) RunnerOption {
	return func(r *Runner) {
		r.logger = l
	}
}

// NewRunner creates a Runner.
func NewRunner(opts ...RunnerOption) *Runner {
	r := &Runner{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run executes a case with a default Runner.
func Run(c *Case) (*Result, error) {
	return NewRunner().Run(c)
}

// Run converts the case input and evaluates its expectations.
//
// Expectation failures are reported through Result.Errors. The returned
// error is reserved for problems with the case itself: invalid parser
// options or an unreadable input file.
func (r *Runner) Run(c *Case) (*Result, error) {
	log := r.logger.With("case", c.Name)

	p, err := parser.New(c.parserOptions()...)
	if err != nil {
		return nil, fmt.Errorf("case %s: %w", c.Name, err)
	}

	doc, parseErr, err := c.parse(p)
	if err != nil {
		return nil, fmt.Errorf("case %s: %w", c.Name, err)
	}

	result := NewResult()
	if c.ExpectError != "" {
		switch {
		case parseErr == nil:
			result.AddError(fmt.Sprintf("expected error containing %q, got none", c.ExpectError))
		case !strings.Contains(parseErr.Error(), c.ExpectError):
			result.AddError(fmt.Sprintf("expected error containing %q, got %q", c.ExpectError, parseErr.Error()))
		}
		log.Debug("case finished", "pass", result.Pass, "parse_error", parseErr)
		return result, nil
	}
	if parseErr != nil {
		result.AddError(fmt.Sprintf("parse failed: %v", parseErr))
		return result, nil
	}

	out := serializer.Serialize(doc)
	canonical, err := ir.MarshalCanonical(out)
	if err != nil {
		return nil, fmt.Errorf("case %s: encode output: %w", c.Name, err)
	}

	result.Document = doc
	result.Serialized = out
	result.Canonical = canonical
	result.NodeCount = ir.CountSerializedNodes(out.Nodes)

	for _, msg := range EvaluateAssertions(result, c.Assertions) {
		result.AddError(msg)
	}

	log.Debug("case finished", "pass", result.Pass, "nodes", result.NodeCount)
	return result, nil
}

func (c *Case) parserOptions() []parser.Option {
	var opts []parser.Option
	if c.ScaleFactor != nil {
		opts = append(opts, parser.WithScaleFactor(*c.ScaleFactor))
	}
	if c.MaxDepth != nil {
		opts = append(opts, parser.WithMaxDepth(*c.MaxDepth))
	}
	return opts
}

// parse separates conversion failures, which a case may expect, from
// failures to load the input at all.
func (c *Case) parse(p *parser.Parser) (doc *ir.Document, parseErr, err error) {
	if c.InputFile == "" {
		doc, parseErr = p.Parse(c.Input)
		return doc, parseErr, nil
	}
	data, err := os.ReadFile(c.InputFile)
	if err != nil {
		return nil, nil, fmt.Errorf("read input: %w", err)
	}
	doc, parseErr = p.ParseJSON(data)
	return doc, parseErr, nil
}
