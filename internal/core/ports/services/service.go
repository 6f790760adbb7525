package services

// ServiceContainer holds instances of all the application services.
// Handlers receive it from main and pick the services they need.
type ServiceContainer struct {
	Country  CountrySvcFacade
	Currency CurrencySvcFacade
}
