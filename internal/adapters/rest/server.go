package rest

import (
	"github.com/philly/arch-gallery/backend/internal/adapters/api"
)

// Server combines all handlers to implement api.ServerInterface
type Server struct {
	*HealthHandler
	*AlbumHandler
	*ImageHandler
	*BlogHandler
	*SearchHandler
	*UserHandler
}

// NewServer creates a new server that implements api.ServerInterface
func NewServer(
	healthHandler *HealthHandler,
	albumHandler *AlbumHandler,
	imageHandler *ImageHandler,
	blogHandler *BlogHandler,
	searchHandler *SearchHandler,
	userHandler *UserHandler,
) api.ServerInterface {
	return &Server{
		HealthHandler: healthHandler,
		AlbumHandler:  albumHandler,
		ImageHandler:  imageHandler,
		BlogHandler:   blogHandler,
		SearchHandler: searchHandler,
		UserHandler:   userHandler,
	}
}

// Ensure Server implements api.ServerInterface
var _ api.ServerInterface = (*Server)(nil)
