package service

import (
	"context"
	"io"
	"log/slog"
	"time"
)

// PlanOutcome summarises what a planning call produced. Only the fields that
// apply to the use case are set; zero values are left out of the log line.
type PlanOutcome struct {
	// Group is the ending pressure group of a dive or surface interval.
	Group        string
	NDL          float64
	WithinLimits bool
	Liters       float64
	FirstStop    float64
	RuntimeMin   float64
	DecoMin      float64
	Stops        int
}

// UseCaseEvent is one planner call: the request fields it was given, how
// long it took, and its outcome.
type UseCaseEvent struct {
	Name      string
	PlanID    string
	Duration  time.Duration
	Success   bool
	Err       error
	Fields    map[string]any
	Outcome   PlanOutcome
	StartedAt time.Time
}

// UseCaseObserver receives one event per planner call.
type UseCaseObserver interface {
	ObserveUseCase(ctx context.Context, event UseCaseEvent)
}

// NoopUseCaseObserver drops every event.
type NoopUseCaseObserver struct{}

func (NoopUseCaseObserver) ObserveUseCase(context.Context, UseCaseEvent) {}

type logUseCaseObserver struct {
	logger *slog.Logger
}

// NewLogUseCaseObserver logs each planner call as a "planner_use_case" line
// on w. A nil writer disables logging.
func NewLogUseCaseObserver(w io.Writer) UseCaseObserver {
	if w == nil {
		return NoopUseCaseObserver{}
	}
	return &logUseCaseObserver{
		logger: slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: slog.LevelInfo})),
	}
}

func (o *logUseCaseObserver) ObserveUseCase(ctx context.Context, event UseCaseEvent) {
	attrs := make([]slog.Attr, 0, 12+len(event.Fields))
	attrs = append(attrs,
		slog.String("use_case", event.Name),
		slog.String("plan_id", event.PlanID),
		slog.Int64("duration_us", event.Duration.Microseconds()),
		slog.Bool("success", event.Success),
	)
	for k, v := range event.Fields {
		attrs = append(attrs, slog.Any(k, v))
	}
	attrs = append(attrs, outcomeAttrs(event.Outcome)...)

	level := slog.LevelInfo
	if event.Err != nil {
		level = slog.LevelError
		attrs = append(attrs, slog.String("error", event.Err.Error()))
	}
	o.logger.LogAttrs(ctx, level, "planner_use_case", attrs...)
}

func outcomeAttrs(o PlanOutcome) []slog.Attr {
	var out []slog.Attr
	if o.Group != "" {
		out = append(out, slog.String("group", o.Group))
	}
	if o.NDL > 0 {
		out = append(out, slog.Float64("ndl_min", o.NDL), slog.Bool("within_limits", o.WithinLimits))
	}
	if o.Liters > 0 {
		out = append(out, slog.Float64("liters", o.Liters))
	}
	if o.RuntimeMin > 0 {
		out = append(out,
			slog.Float64("first_stop_m", o.FirstStop),
			slog.Float64("runtime_min", o.RuntimeMin),
			slog.Float64("deco_min", o.DecoMin),
			slog.Int("stops", o.Stops),
		)
	}
	return out
}

func useCaseObserverOrNoop(observers []UseCaseObserver) UseCaseObserver {
	for _, obs := range observers {
		if obs != nil {
			return obs
		}
	}
	return NoopUseCaseObserver{}
}
