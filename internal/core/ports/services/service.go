package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Bond         BondSvcFacade
	Summary      BondSummarySvc
	ExchangeRate ExchangeRateSvcFacade
	Macro        MacroIndicatorSvc
	StaticData   StaticDataService
}

// StaticDataService defines the interface for loading the sample bond catalog.
type StaticDataService interface {
	InitializeStaticData(ctx context.Context) error
}
