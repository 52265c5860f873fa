package postgres

import (
	"github.com/google/wire"

	blogports "github.com/philly/arch-gallery/backend/internal/blog/ports"
	galleryports "github.com/philly/arch-gallery/backend/internal/gallery/ports"
	lifecycleports "github.com/philly/arch-gallery/backend/internal/lifecycle/ports"
	searchports "github.com/philly/arch-gallery/backend/internal/search/ports"
	userports "github.com/philly/arch-gallery/backend/internal/users/ports"
)

// ProviderSet is the wire provider set for postgres repositories
var ProviderSet = wire.NewSet(
	NewAlbumRepository,
	wire.Bind(new(galleryports.AlbumRepository), new(*AlbumRepository)),
	NewImageRepository,
	wire.Bind(new(galleryports.ImageRepository), new(*ImageRepository)),
	NewPostRepository,
	wire.Bind(new(blogports.PostRepository), new(*PostRepository)),
	NewCommentRepository,
	wire.Bind(new(blogports.CommentRepository), new(*CommentRepository)),
	NewUserRepository,
	wire.Bind(new(userports.UserRepository), new(*UserRepository)),
	NewLifecycleStore,
	wire.Bind(new(lifecycleports.SubjectStore), new(*LifecycleStore)),
	NewCandidateStore,
	wire.Bind(new(searchports.CandidateStore), new(*CandidateStore)),
)
