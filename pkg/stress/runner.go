package stress

import (
	"context"
	"errors"
	"fmt"
	"github.com/cheggaaa/pb/v3"
	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/gobwas/glob"
	"github.com/samber/lo"
	log "github.com/sirupsen/logrus"
	"time"
)

type Runner struct {
	opts *Opts
}

func NewRunner(opts *Opts) *Runner {
	return &Runner{opts: opts}
}

func (r *Runner) Opts() *Opts {
	return r.opts
}

// Report describes the outcome of a single scenario run
type Report struct {
	Scenario   string        `yaml:"scenario" json:"scenario"`
	Passed     bool          `yaml:"passed" json:"passed"`
	Operations int           `yaml:"operations" json:"operations"`
	Elapsed    time.Duration `yaml:"elapsed" json:"elapsed"`
	Message    string        `yaml:"message" json:"message"`
}

func (r Report) Rate() float64 {
	if r.Elapsed <= 0 {
		return 0
	}
	return float64(r.Operations) / r.Elapsed.Seconds()
}

func (r Report) Status() string {
	if r.Passed {
		return color.GreenString("passed")
	}
	return color.RedString("failed")
}

func (r Report) MarshalText() string {
	return fmt.Sprintf("%s %s: %s ops in %s (%s)", r.Scenario, r.Status(), humanize.Comma(int64(r.Operations)), r.Elapsed.Round(time.Millisecond), humanize.SIWithDigits(r.Rate(), 1, "op/s"))
}

func (r Report) Row() map[string]any {
	return map[string]any{
		"scenario":   r.Scenario,
		"status":     r.Status(),
		"operations": humanize.Comma(int64(r.Operations)),
		"elapsed":    r.Elapsed.Round(time.Millisecond),
		"rate":       humanize.SIWithDigits(r.Rate(), 1, "op/s"),
		"message":    r.Message,
	}
}

func ReportColumns() []string {
	return []string{"scenario", "status", "operations", "elapsed", "rate", "message"}
}

// Match selects scenarios whose names match glob pattern, e.g. 'push*' or '{clear,unique}'
func (r *Runner) Match(pattern string) ([]Scenario, error) {
	g, err := glob.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("cannot compile scenario pattern '%s': %w", pattern, err)
	}
	result := lo.Filter(Scenarios(), func(s Scenario, _ int) bool { return g.Match(s.Name) })
	if len(result) == 0 {
		return nil, fmt.Errorf("no scenario matches pattern '%s'", pattern)
	}
	return result, nil
}

// Run executes matching scenarios one after another.
// A broken stack property is reported as a failed run, only a canceled context or bad options end with an error.
func (r *Runner) Run(ctx context.Context) ([]Report, error) {
	if err := r.opts.Validate(); err != nil {
		return nil, err
	}
	scenarios, err := r.Match(r.opts.Scenarios)
	if err != nil {
		return nil, err
	}
	var reports []Report
	for _, scenario := range scenarios {
		report, err := r.RunScenario(ctx, scenario)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
	}
	return reports, nil
}

func (r *Runner) RunScenario(ctx context.Context, scenario Scenario) (Report, error) {
	planned := scenario.Planned(r.opts)
	log.Infof("running stress scenario '%s' (%s)", scenario.Name, scenario.Description)
	log.Debugf("stress scenario '%s' plans %d operations with %d workers and %d readers", scenario.Name, planned, r.opts.Workers, r.opts.Readers)

	tick, done := r.progress(planned)
	started := time.Now()
	err := scenario.run(ctx, r.opts, tick)
	elapsed := time.Since(started)
	done()

	report := Report{
		Scenario:   scenario.Name,
		Passed:     err == nil,
		Operations: planned,
		Elapsed:    elapsed,
		Message:    "ok",
	}
	if err != nil {
		if !errors.Is(err, ErrCheckFailed) && ctx.Err() != nil {
			return report, fmt.Errorf("cannot complete stress scenario '%s': %w", scenario.Name, err)
		}
		report.Message = err.Error()
		log.Errorf("stress scenario '%s' failed: %s", scenario.Name, err)
	} else {
		log.Infof("stress scenario '%s' passed in %s", scenario.Name, elapsed)
	}
	return report, nil
}

func (r *Runner) progress(total int) (tickFunc, func()) {
	if !r.opts.Progress || color.NoColor {
		return func(int) {}, func() {}
	}
	bar := pb.Full.Start(total)
	return func(n int) { bar.Add(n) }, func() { bar.Finish() }
}
