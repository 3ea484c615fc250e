package service

import "github.com/alexanderramin/fathom/internal/app"

// PlannerService is the engine boundary used by the presentation layer.
// Implementations hold no per-request state and are safe for concurrent use.
// PlanTechnical returns a partial response together with an error wrapping
// domain.ErrUnresolvableCeiling when a stop cannot clear.
type PlannerService interface {
	app.RecreationalUseCase
	app.SurfaceIntervalUseCase
	app.AirUseCase
	app.TechnicalUseCase
	app.CatalogUseCase
}
