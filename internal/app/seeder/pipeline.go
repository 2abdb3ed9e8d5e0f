package seeder

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

// Phase names in canonical execution order.
const (
	PhaseTimezones        = "timezones"
	PhaseInteractionTypes = "interaction-types"
)

var allPhases = []string{PhaseTimezones, PhaseInteractionTypes}

//go:embed data/timezones.json
var embeddedTimezones []byte

// PhaseResult holds the outcome of a single pipeline phase.
type PhaseResult struct {
	Inserted int
	Skipped  int
	Duration time.Duration
	Err      error
}

// Pipeline runs the seeding phases.
type Pipeline struct {
	log       *slog.Logger
	timezones TimezoneRepo
	types     InteractionTypeRepo
	cfg       Config
	results   map[string]PhaseResult
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, timezones TimezoneRepo, types InteractionTypeRepo, cfg Config) *Pipeline {
	return &Pipeline{
		log:       log,
		timezones: timezones,
		types:     types,
		cfg:       cfg,
		results:   make(map[string]PhaseResult),
	}
}

// Results returns phase results after Run completes.
func (p *Pipeline) Results() map[string]PhaseResult {
	return p.results
}

// HasErrors returns true if any phase failed.
func (p *Pipeline) HasErrors() bool {
	for _, r := range p.results {
		if r.Err != nil {
			return true
		}
	}
	return false
}

// Run executes the pipeline. If phases is non-empty, only the listed phases
// run; unknown names are an error.
func (p *Pipeline) Run(ctx context.Context, phases []string) error {
	toRun, err := selectPhases(phases)
	if err != nil {
		return err
	}

	for _, phase := range toRun {
		start := time.Now()
		p.log.Info("starting phase", slog.String("phase", phase))

		var result PhaseResult
		switch phase {
		case PhaseTimezones:
			result = p.runTimezones(ctx)
		case PhaseInteractionTypes:
			result = p.runInteractionTypes(ctx)
		}
		result.Duration = time.Since(start)
		p.results[phase] = result

		if result.Err != nil {
			p.log.Warn("phase failed",
				slog.String("phase", phase),
				slog.String("error", result.Err.Error()),
				slog.Duration("duration", result.Duration),
			)
		} else {
			p.log.Info("phase completed",
				slog.String("phase", phase),
				slog.Int("inserted", result.Inserted),
				slog.Int("skipped", result.Skipped),
				slog.Duration("duration", result.Duration),
			)
		}
	}

	p.log.Info("pipeline completed", slog.Int("phases_run", len(toRun)))
	return nil
}

func selectPhases(phases []string) ([]string, error) {
	if len(phases) == 0 {
		return allPhases, nil
	}
	filter := make(map[string]bool, len(phases))
	for _, ph := range phases {
		ph = strings.TrimSpace(ph)
		known := false
		for _, a := range allPhases {
			if a == ph {
				known = true
				break
			}
		}
		if !known {
			return nil, fmt.Errorf("unknown phase %q (known: %s)", ph, strings.Join(allPhases, ", "))
		}
		filter[ph] = true
	}
	var out []string
	for _, ph := range allPhases {
		if filter[ph] {
			out = append(out, ph)
		}
	}
	return out, nil
}

func (p *Pipeline) runTimezones(ctx context.Context) PhaseResult {
	zones, err := p.loadTimezones()
	if err != nil {
		return PhaseResult{Err: err}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(zones)}
	}

	n, err := p.timezones.UpsertTimezones(ctx, zones)
	if err != nil {
		return PhaseResult{Inserted: n, Err: fmt.Errorf("upsert timezones: %w", err)}
	}
	return PhaseResult{Inserted: n}
}

func (p *Pipeline) runInteractionTypes(ctx context.Context) PhaseResult {
	names := make([]string, 0, len(p.cfg.InteractionTypes))
	for _, n := range p.cfg.InteractionTypes {
		if n = strings.TrimSpace(n); n != "" {
			names = append(names, n)
		}
	}
	if p.cfg.DryRun {
		return PhaseResult{Skipped: len(names)}
	}

	created, err := p.types.EnsureGlobal(ctx, names)
	if err != nil {
		return PhaseResult{Err: fmt.Errorf("ensure global interaction types: %w", err)}
	}
	return PhaseResult{Inserted: created, Skipped: len(names) - created}
}

type timezoneRecord struct {
	Timezone string `json:"timezone"`
	Name     string `json:"name"`
	Offset   string `json:"offset"`
}

// loadTimezones reads the dataset and numbers zones from 1 in file order,
// so ids stay stable across reseeds.
func (p *Pipeline) loadTimezones() ([]domain.Timezone, error) {
	raw := embeddedTimezones
	if p.cfg.TimezonesPath != "" {
		b, err := os.ReadFile(p.cfg.TimezonesPath)
		if err != nil {
			return nil, fmt.Errorf("read timezones: %w", err)
		}
		raw = b
	}
	return parseTimezones(raw)
}

func parseTimezones(raw []byte) ([]domain.Timezone, error) {
	var records []timezoneRecord
	if err := json.Unmarshal(raw, &records); err != nil {
		return nil, fmt.Errorf("parse timezones: %w", err)
	}

	zones := make([]domain.Timezone, 0, len(records))
	for i, r := range records {
		if r.Timezone == "" || r.Offset == "" {
			return nil, fmt.Errorf("parse timezones: record %d: timezone and offset are required", i)
		}
		zones = append(zones, domain.Timezone{
			ID:        i + 1,
			Name:      r.Timezone,
			NameShort: r.Name,
			Offset:    r.Offset,
		})
	}
	return zones, nil
}
