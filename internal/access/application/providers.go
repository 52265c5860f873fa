package application

import "github.com/google/wire"

// ProviderSet is the wire provider set for the access resolver.
var ProviderSet = wire.NewSet(NewResolver)
