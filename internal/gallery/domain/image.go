package domain

import (
	"strings"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/google/uuid"

	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	lifecycle "github.com/philly/arch-gallery/backend/internal/lifecycle/domain"
)

// Supported MIME types and their size ceilings.
const (
	FileTypeJPEG = "image/jpeg"
	FileTypePNG  = "image/png"
	FileTypeRAW  = "image/raw"

	MaxStandardFileSize int64 = 50 << 20
	MaxRawFileSize      int64 = 200 << 20
	MaxFilenameLength         = 255
)

// SupportedFileTypes lists the MIME types images may be registered with.
var SupportedFileTypes = []string{FileTypeJPEG, FileTypePNG, FileTypeRAW}

// Image is a single picture. It has no visibility of its own; it is exactly
// as visible as its album.
type Image struct {
	ID            uuid.UUID
	AlbumID       uuid.UUID
	OwnerID       uuid.UUID
	Filename      string
	FilePath      string
	ThumbnailPath string
	FileType      string
	FileSize      int64
	Width         int
	Height        int
	CameraModel   string
	SortOrder     int
	IsDeleted     bool
	DeletedAt     *time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

// ImageMetadata describes an already-stored file being registered.
type ImageMetadata struct {
	Filename      string
	FilePath      string
	ThumbnailPath string
	FileType      string
	FileSize      int64
	Width         int
	Height        int
	CameraModel   string
	SortOrder     int
}

func (m ImageMetadata) Validate() error {
	maxSize := MaxStandardFileSize
	if m.FileType == FileTypeRAW {
		maxSize = MaxRawFileSize
	}
	fileTypes := make([]interface{}, len(SupportedFileTypes))
	for i, ft := range SupportedFileTypes {
		fileTypes[i] = ft
	}

	return validation.ValidateStruct(&m,
		validation.Field(&m.Filename, validation.Required, validation.RuneLength(1, MaxFilenameLength)),
		validation.Field(&m.FilePath, validation.Required),
		validation.Field(&m.FileType, validation.Required, validation.In(fileTypes...)),
		validation.Field(&m.FileSize, validation.Required, validation.Max(maxSize)),
		validation.Field(&m.Width, validation.Min(0)),
		validation.Field(&m.Height, validation.Min(0)),
		validation.Field(&m.SortOrder, validation.Min(0)),
	)
}

// NewImage registers metadata for a file in album. The owner is always the
// album owner.
func NewImage(album *Album, meta ImageMetadata) (*Image, error) {
	meta.Filename = strings.TrimSpace(meta.Filename)
	meta.FileType = strings.ToLower(strings.TrimSpace(meta.FileType))
	if err := meta.Validate(); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	return &Image{
		ID:            uuid.New(),
		AlbumID:       album.ID,
		OwnerID:       album.OwnerID,
		Filename:      meta.Filename,
		FilePath:      meta.FilePath,
		ThumbnailPath: meta.ThumbnailPath,
		FileType:      meta.FileType,
		FileSize:      meta.FileSize,
		Width:         meta.Width,
		Height:        meta.Height,
		CameraModel:   strings.TrimSpace(meta.CameraModel),
		SortOrder:     meta.SortOrder,
		CreatedAt:     now,
		UpdatedAt:     now,
	}, nil
}

func (i *Image) ResourceKind() access.Kind       { return access.KindImage }
func (i *Image) ResourceID() uuid.UUID           { return i.ID }
func (i *Image) ResourceOwner() uuid.UUID        { return i.OwnerID }
func (i *Image) LifecycleState() lifecycle.State { return lifecycle.StateOf(i.IsDeleted) }

// ParentAlbumID exposes the album for lifecycle events.
func (i *Image) ParentAlbumID() uuid.UUID { return i.AlbumID }
