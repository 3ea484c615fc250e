package app

import (
	"context"

	"github.com/alexanderramin/fathom/internal/domain"
	"github.com/alexanderramin/fathom/internal/tables"
)

type RecreationalUseCase interface {
	PlanRecreational(ctx context.Context, req RecreationalRequest) (*RecreationalResponse, error)
}

type SurfaceIntervalUseCase interface {
	PlanSurfaceInterval(ctx context.Context, req SurfaceIntervalRequest) (*SurfaceIntervalResponse, error)
}

type AirUseCase interface {
	ComputeAir(ctx context.Context, req AirRequest) (*AirResponse, error)
}

type TechnicalUseCase interface {
	PlanTechnical(ctx context.Context, req TechnicalRequest) (*TechnicalResponse, error)
}

type CatalogUseCase interface {
	ListGases(ctx context.Context) []domain.GasMix
	NDLTable(ctx context.Context, units domain.Units) tables.Table
}
