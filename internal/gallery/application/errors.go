package application

import (
	"errors"
	"net/http"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	"github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
)

var (
	ErrAlbumNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeAlbumNotFound,
		"album not found",
		http.StatusNotFound,
	)

	ErrImageNotFound = apperror.New(
		apperror.CodeNotFound,
		apperror.BusinessCodeImageNotFound,
		"image not found",
		http.StatusNotFound,
	)

	ErrInvalidAlbumData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"invalid album data",
		http.StatusBadRequest,
	)

	ErrInvalidImageData = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidFormat,
		"invalid image data",
		http.StatusBadRequest,
	)

	ErrCoverImageNotInAlbum = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeCoverImageNotInAlbum,
		"cover image must be a live image of this album",
		http.StatusBadRequest,
	)

	ErrInvalidImageOrder = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeInvalidImageOrder,
		"invalid image order",
		http.StatusBadRequest,
	)

	ErrNoDeletableImages = apperror.New(
		apperror.CodeValidationFailed,
		apperror.BusinessCodeNoDeletableImages,
		"none of the images could be deleted",
		http.StatusBadRequest,
	)
)

// inputError maps domain validation failures to client errors. It returns
// nil for anything else, which callers treat as internal.
func inputError(err error, invalid *apperror.AppError) error {
	if errors.Is(err, domain.ErrInvalidPermission) || errors.Is(err, domain.ErrInvalidPermissionConfig) {
		return accessapp.ErrInvalidPermissionConfig.WithDetails(err.Error())
	}
	var verrs validation.Errors
	if errors.As(err, &verrs) {
		return invalid.WithDetails(verrs)
	}
	if errors.Is(err, domain.ErrInvalidOwner) {
		return invalid.WithDetails(err.Error())
	}
	return nil
}
