package app

import "go.uber.org/fx"

// Module wires the application facade.
var Module = fx.Provide(NewBookingFacade)
