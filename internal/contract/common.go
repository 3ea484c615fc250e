package contract

import "github.com/alexanderramin/fathom/internal/app"

type Settings = app.Settings

type RecreationalRequest = app.RecreationalRequest

func NewRecreationalRequest() RecreationalRequest {
	return app.NewRecreationalRequest()
}

type RecreationalResponse = app.RecreationalResponse

type SurfaceIntervalRequest = app.SurfaceIntervalRequest

func NewSurfaceIntervalRequest() SurfaceIntervalRequest {
	return app.NewSurfaceIntervalRequest()
}

type SurfaceIntervalResponse = app.SurfaceIntervalResponse

type AirRequest = app.AirRequest

func NewAirRequest() AirRequest {
	return app.NewAirRequest()
}

type AirResponse = app.AirResponse
