package application

import "github.com/google/wire"

// ProviderSet provides the user service, which also backs profile lookups
// in the auth middleware.
var ProviderSet = wire.NewSet(
	NewUserService,
)
