// Package runner executes drills, captures their transcripts and verifies
// them against the recorded expected output.
package runner

import (
	"bytes"
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/dkoosis/drill/internal/errors"
	"github.com/dkoosis/drill/internal/logging"
	"github.com/dkoosis/drill/internal/registry"
)

// Result holds one drill execution.
type Result struct {
	Drill      string
	RunID      uuid.UUID
	Transcript string
	Duration   time.Duration
	Err        error
}

// Verification compares a live transcript with the recorded one.
type Verification struct {
	Result *Result
	Match  bool
	Line   int // first divergent line, 1-based; 0 when Match
	Want   string
	Got    string
}

// Runner runs drills out of a registry.
type Runner struct {
	registry *registry.DrillRegistry
	logger   logging.Logger
}

// New creates a runner.
func New(reg *registry.DrillRegistry, logger logging.Logger) *Runner {
	return &Runner{
		registry: reg,
		logger:   logger.WithComponent("runner"),
	}
}

// Run executes one drill by name and captures its transcript. A drill
// whose body returns an error still yields a Result; only an unknown name
// is an error from Run itself.
func (r *Runner) Run(ctx context.Context, name string) (*Result, error) {
	drill, exists := r.registry.Get(name)
	if !exists {
		return nil, errors.ErrDrillNotFound(name)
	}

	var buf bytes.Buffer
	start := time.Now()
	err := drill.Run(&buf)
	duration := time.Since(start)

	result := &Result{
		Drill:      name,
		RunID:      uuid.New(),
		Transcript: buf.String(),
		Duration:   duration,
		Err:        err,
	}

	if err != nil {
		r.logger.Warn(ctx, err, "drill finished with error", "drill", name)
	} else {
		r.logger.Debug(ctx, "drill finished", "drill", name, "duration", duration)
	}

	return result, nil
}

// RunAll executes every registered drill in catalog order.
func (r *Runner) RunAll(ctx context.Context) ([]*Result, error) {
	drills := r.registry.GetAll()
	results := make([]*Result, 0, len(drills))

	for _, drill := range drills {
		if ctx.Err() != nil {
			return results, ctx.Err()
		}

		result, err := r.Run(ctx, drill.Name)
		if err != nil {
			return results, err
		}
		results = append(results, result)
	}

	return results, nil
}

// Verify runs a drill and diffs the live transcript against the recorded
// one, reporting the first divergent line.
func (r *Runner) Verify(ctx context.Context, name string) (*Verification, error) {
	drill, exists := r.registry.Get(name)
	if !exists {
		return nil, errors.ErrDrillNotFound(name)
	}

	result, err := r.Run(ctx, name)
	if err != nil {
		return nil, err
	}

	v := &Verification{Result: result, Match: true}
	if result.Err != nil {
		v.Match = false
		v.Got = "error: " + result.Err.Error()
		v.Want = "clean run"
		return v, nil
	}

	wantLines := splitLines(drill.Transcript)
	gotLines := splitLines(result.Transcript)

	max := len(wantLines)
	if len(gotLines) > max {
		max = len(gotLines)
	}

	for i := 0; i < max; i++ {
		var want, got string
		if i < len(wantLines) {
			want = wantLines[i]
		}
		if i < len(gotLines) {
			got = gotLines[i]
		}
		if want != got {
			v.Match = false
			v.Line = i + 1
			v.Want = want
			v.Got = got
			break
		}
	}

	return v, nil
}

// Err converts a failed verification into a transcript-drift error, or
// nil when the verification matched.
func (v *Verification) Err() error {
	if v.Match {
		return nil
	}

	return errors.NewInvalidState(
		errors.ErrCodeTranscriptDrift,
		"transcript drift in drill "+v.Result.Drill,
	).WithContext("line", v.Line).WithContext("want", v.Want).WithContext("got", v.Got)
}

func splitLines(s string) []string {
	s = strings.TrimRight(s, "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}
