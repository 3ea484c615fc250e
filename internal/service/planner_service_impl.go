package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/alexanderramin/fathom/internal/app"
	"github.com/alexanderramin/fathom/internal/config"
	"github.com/alexanderramin/fathom/internal/deco"
	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/alexanderramin/fathom/internal/recreational"
	"github.com/alexanderramin/fathom/internal/tables"
	"github.com/google/uuid"
)

type plannerService struct {
	cfg      config.Config
	observer UseCaseObserver
}

func NewPlannerService(cfg config.Config, observers ...UseCaseObserver) PlannerService {
	return &plannerService{
		cfg:      cfg,
		observer: useCaseObserverOrNoop(observers),
	}
}

func (s *plannerService) PlanRecreational(ctx context.Context, req app.RecreationalRequest) (resp *app.RecreationalResponse, err error) {
	planID := uuid.New().String()
	units := domain.Coalesce(req.Units, s.cfg.Units)
	done := s.track(ctx, "plan_recreational", planID, map[string]any{
		"depth": req.Depth, "bottom_time": req.BottomTime, "units": string(units),
	})
	defer func() { done(err, outcomeOf(resp)) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if !domain.ValidUnits[string(units)] {
		return nil, domain.InvalidInput("units", fmt.Sprintf("unknown unit system %q", units))
	}

	plan, err := recreational.PlanDive(tables.ForUnits(units), req.Depth, req.BottomTime)
	if err != nil {
		return nil, fmt.Errorf("planning recreational dive: %w", err)
	}

	return &app.RecreationalResponse{
		PlanID:        planID,
		Units:         units,
		Depth:         plan.Depth,
		BottomTime:    req.BottomTime,
		BandDepth:     plan.BandDepth,
		NDL:           plan.NDL,
		PressureGroup: plan.PressureGroup,
		TimeRemaining: plan.TimeRemaining,
		WithinLimits:  plan.WithinLimits,
		OutOfTable:    plan.OutOfTable,
		OverLimit:     plan.OverLimit,
		Advisories:    plan.Advisories,
	}, nil
}

func (s *plannerService) PlanSurfaceInterval(ctx context.Context, req app.SurfaceIntervalRequest) (resp *app.SurfaceIntervalResponse, err error) {
	planID := uuid.New().String()
	policy := domain.Coalesce(req.Policy, s.cfg.SurfacePolicy)
	done := s.track(ctx, "plan_surface_interval", planID, map[string]any{
		"group": req.Group, "minutes": req.Minutes, "policy": string(policy),
	})
	defer func() { done(err, outcomeOf(resp)) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	start, ok := domain.ParsePressureGroup(req.Group)
	if !ok {
		return nil, domain.InvalidInput("group", fmt.Sprintf("unrecognized pressure group %q", req.Group))
	}

	si, err := recreational.PlanSurfaceInterval(start, req.Minutes, policy)
	if err != nil {
		return nil, fmt.Errorf("crediting surface interval: %w", err)
	}

	return &app.SurfaceIntervalResponse{
		PlanID:              planID,
		Start:               si.Start,
		Minutes:             si.Minutes,
		Group:               si.Group,
		Policy:              si.Policy,
		FullDesaturationMin: tables.FullDesaturationMinutes(si.Start, si.Policy),
		Advisories:          si.Advisories,
	}, nil
}

func (s *plannerService) ComputeAir(ctx context.Context, req app.AirRequest) (resp *app.AirResponse, err error) {
	planID := uuid.New().String()
	in := recreational.AirInput{
		Depth:       req.Depth,
		Minutes:     req.Minutes,
		TankLiters:  domain.Coalesce(req.TankLiters, s.cfg.TankLiters),
		SACRate:     domain.Coalesce(req.SACRate, s.cfg.SACRate),
		StartBars:   domain.Coalesce(req.StartBars, s.cfg.StartBars),
		ReserveBars: domain.Coalesce(req.ReserveBars, s.cfg.ReserveBars),
	}
	done := s.track(ctx, "compute_air", planID, map[string]any{
		"depth": in.Depth, "minutes": in.Minutes, "tank_l": in.TankLiters, "sac": in.SACRate,
	})
	defer func() { done(err, outcomeOf(resp)) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	out, err := recreational.ComputeAirConsumption(in)
	if err != nil {
		return nil, fmt.Errorf("computing air consumption: %w", err)
	}

	return &app.AirResponse{
		PlanID:        planID,
		Depth:         in.Depth,
		Minutes:       in.Minutes,
		TankLiters:    in.TankLiters,
		SACRate:       in.SACRate,
		Liters:        out.Liters,
		Bars:          out.Bars,
		StartBars:     in.StartBars,
		RemainingBars: out.RemainingBars,
		Sufficient:    out.Sufficient,
		Advisories:    out.Advisories,
	}, nil
}

func (s *plannerService) PlanTechnical(ctx context.Context, req app.TechnicalRequest) (resp *app.TechnicalResponse, err error) {
	planID := uuid.New().String()
	settings := app.Settings{
		Units:      domain.UnitsMetric,
		GFLow:      domain.Coalesce(req.GFLow, s.cfg.GFLow),
		GFHigh:     domain.Coalesce(req.GFHigh, s.cfg.GFHigh),
		AscentRate: domain.Coalesce(req.AscentRate, s.cfg.AscentRate),
		StopCap:    s.cfg.StopCapMinutes,
	}
	gasID := domain.Coalesce(req.BottomGas, domain.GasAir)
	policy := domain.Coalesce(req.DecoGases, domain.DecoGasNone)
	done := s.track(ctx, "plan_technical", planID, map[string]any{
		"max_depth": req.MaxDepth, "bottom_time": req.BottomTime, "gas": gasID,
		"deco_gases": string(policy), "gf_low": settings.GFLow, "gf_high": settings.GFHigh,
	})
	defer func() { done(err, outcomeOf(resp)) }()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	gas, ok := domain.LookupGas(gasID)
	if !ok {
		return nil, domain.InvalidInput("gas", fmt.Sprintf("unknown gas %q", gasID))
	}

	plan, err := deco.Schedule(deco.Request{
		MaxDepth:   req.MaxDepth,
		BottomTime: req.BottomTime,
		BottomGas:  gas,
		DecoGases:  policy,
		GFLow:      settings.GFLow,
		GFHigh:     settings.GFHigh,
		AscentRate: settings.AscentRate,
	}, s.cfg.DecoOptions())
	if plan == nil {
		return nil, fmt.Errorf("planning technical dive: %w", err)
	}

	resp = &app.TechnicalResponse{
		PlanID:        planID,
		MaxDepth:      req.MaxDepth,
		BottomTime:    req.BottomTime,
		BottomGas:     gas,
		DecoGases:     policy,
		Settings:      settings,
		FirstStop:     plan.FirstStop,
		Profile:       plan.Profile,
		DecoStops:     plan.DecoStops,
		TotalRuntime:  plan.TotalRuntime,
		TotalDecoTime: plan.TotalDecoTime,
		Warnings:      plan.Warnings,
		Resolved:      err == nil,
	}
	if err != nil {
		if !errors.Is(err, domain.ErrUnresolvableCeiling) {
			return nil, fmt.Errorf("planning technical dive: %w", err)
		}
		resp.FailureReason = err.Error()
		return resp, fmt.Errorf("planning technical dive: %w", domain.UnresolvableCeiling(err))
	}
	return resp, nil
}

func (s *plannerService) ListGases(context.Context) []domain.GasMix {
	return domain.Gases()
}

func (s *plannerService) NDLTable(_ context.Context, units domain.Units) tables.Table {
	return tables.ForUnits(domain.Coalesce(units, s.cfg.Units))
}

// track starts a use-case timer and returns the completion callback.
func (s *plannerService) track(ctx context.Context, name, planID string, fields map[string]any) func(err error, outcome PlanOutcome) {
	start := time.Now()
	return func(err error, outcome PlanOutcome) {
		s.observer.ObserveUseCase(ctx, UseCaseEvent{
			Name:      name,
			PlanID:    planID,
			Duration:  time.Since(start),
			Success:   err == nil,
			Err:       err,
			Fields:    fields,
			Outcome:   outcome,
			StartedAt: start,
		})
	}
}

// outcomeOf extracts the logged outcome from a response. A nil response
// (rejected call) yields the zero outcome.
func outcomeOf(resp any) PlanOutcome {
	switch r := resp.(type) {
	case *app.RecreationalResponse:
		if r != nil {
			return PlanOutcome{Group: r.PressureGroup.String(), NDL: r.NDL, WithinLimits: r.WithinLimits}
		}
	case *app.SurfaceIntervalResponse:
		if r != nil {
			return PlanOutcome{Group: r.Group.String()}
		}
	case *app.AirResponse:
		if r != nil {
			return PlanOutcome{Liters: r.Liters}
		}
	case *app.TechnicalResponse:
		if r != nil {
			return PlanOutcome{
				FirstStop:  r.FirstStop,
				RuntimeMin: r.TotalRuntime,
				DecoMin:    r.TotalDecoTime,
				Stops:      len(r.DecoStops),
			}
		}
	}
	return PlanOutcome{}
}
