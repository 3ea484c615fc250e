package contract

import "github.com/alexanderramin/fathom/internal/app"

type TechnicalRequest = app.TechnicalRequest

func NewTechnicalRequest() TechnicalRequest {
	return app.NewTechnicalRequest()
}

type TechnicalResponse = app.TechnicalResponse
