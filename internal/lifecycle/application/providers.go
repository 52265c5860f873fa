package application

import (
	"github.com/google/wire"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	"github.com/philly/arch-gallery/backend/internal/lifecycle/ports"
)

var ProviderSet = wire.NewSet(
	NewManager,
	wire.Bind(new(ports.Authorizer), new(*accessapp.Resolver)),
)
