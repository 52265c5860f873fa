package rest

import (
	openapi_types "github.com/oapi-codegen/runtime/types"

	"github.com/philly/arch-gallery/backend/internal/adapters/api"
	blog "github.com/philly/arch-gallery/backend/internal/blog/domain"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
	search "github.com/philly/arch-gallery/backend/internal/search/domain"
	users "github.com/philly/arch-gallery/backend/internal/users/domain"
)

// Owner-only fields (recycle state, storage paths) are included only when
// the viewer owns the item.

func albumToAPI(a *gallery.Album, owner bool) api.Album {
	out := api.Album{
		Id:           a.ID,
		OwnerId:      a.OwnerID,
		Name:         a.Name,
		Description:  a.Description,
		Permission:   api.AlbumPermission(a.Permission),
		CoverImageId: a.CoverImageID,
		ImageCount:   a.ImageCount,
		CreatedAt:    a.CreatedAt,
		UpdatedAt:    a.UpdatedAt,
	}
	if owner {
		deleted := a.IsDeleted
		out.IsDeleted = &deleted
		out.DeletedAt = a.DeletedAt
	}
	return out
}

func imageToAPI(i *gallery.Image, owner bool) api.Image {
	out := api.Image{
		Id:            i.ID,
		AlbumId:       i.AlbumID,
		OwnerId:       i.OwnerID,
		Filename:      i.Filename,
		ThumbnailPath: stringToPointer(i.ThumbnailPath),
		FileType:      i.FileType,
		FileSize:      i.FileSize,
		CameraModel:   stringToPointer(i.CameraModel),
		CreatedAt:     i.CreatedAt,
		UpdatedAt:     i.UpdatedAt,
	}
	if i.Width > 0 {
		out.Width = &i.Width
	}
	if i.Height > 0 {
		out.Height = &i.Height
	}
	sortOrder := i.SortOrder
	out.SortOrder = &sortOrder
	if owner {
		deleted := i.IsDeleted
		out.IsDeleted = &deleted
		out.DeletedAt = i.DeletedAt
		out.FilePath = stringToPointer(i.FilePath)
	}
	return out
}

func postToAPI(p *blog.Post) api.Post {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return api.Post{
		Id:            p.ID,
		OwnerId:       p.OwnerID,
		Title:         p.Title,
		Content:       p.Content,
		CoverImageUrl: stringToPointer(p.CoverImageURL),
		Tags:          tags,
		IsDraft:       p.IsDraft,
		IsPrivate:     p.IsPrivate,
		CommentCount:  p.CommentCount,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

func commentToAPI(c *blog.Comment) api.Comment {
	return api.Comment{
		Id:        c.ID,
		PostId:    c.PostID,
		OwnerId:   c.OwnerID,
		ParentId:  c.ParentID,
		Content:   c.Content,
		CreatedAt: c.CreatedAt,
	}
}

func userToAPI(u *users.User) api.User {
	return api.User{
		Id:          u.ID,
		Email:       openapi_types.Email(u.Email),
		Username:    u.Username,
		DisplayName: stringToPointer(u.DisplayName),
		Bio:         stringToPointer(u.Bio),
		AvatarUrl:   stringToPointer(u.AvatarURL),
		Role:        api.UserRole(u.Role.String()),
		IsActive:    u.IsActive,
		CreatedAt:   u.CreatedAt,
		UpdatedAt:   u.UpdatedAt,
	}
}

func resultToAPI(item search.ResultItem) api.SearchResult {
	out := api.SearchResult{
		Type:      api.SearchResultType(item.Kind),
		Id:        item.ID,
		OwnerId:   item.OwnerID,
		Title:     item.Title,
		CreatedAt: item.CreatedAt,
		UpdatedAt: item.UpdatedAt,
	}
	switch {
	case item.Album != nil:
		out.Album = &api.Album{
			Id:           item.ID,
			OwnerId:      item.OwnerID,
			Name:         item.Title,
			Description:  item.Album.Description,
			Permission:   api.AlbumPermission(item.Album.Permission),
			ImageCount:   item.Album.ImageCount,
			CoverImageId: item.Album.CoverImageID,
			CreatedAt:    item.CreatedAt,
			UpdatedAt:    item.UpdatedAt,
		}
	case item.Image != nil:
		img := &api.Image{
			Id:            item.ID,
			AlbumId:       item.Image.AlbumID,
			OwnerId:       item.OwnerID,
			Filename:      item.Title,
			ThumbnailPath: stringToPointer(item.Image.ThumbnailPath),
			FileType:      item.Image.FileType,
			FileSize:      item.Image.FileSize,
			CameraModel:   stringToPointer(item.Image.CameraModel),
			CreatedAt:     item.CreatedAt,
			UpdatedAt:     item.UpdatedAt,
		}
		if item.Image.Width > 0 {
			img.Width = &item.Image.Width
		}
		if item.Image.Height > 0 {
			img.Height = &item.Image.Height
		}
		out.Image = img
	case item.Post != nil:
		tags := item.Post.Tags
		commentCount := item.Post.CommentCount
		out.Post = &struct {
			CommentCount  *int      `json:"comment_count,omitempty"`
			CoverImageUrl *string   `json:"cover_image_url,omitempty"`
			Excerpt       *string   `json:"excerpt,omitempty"`
			Tags          *[]string `json:"tags,omitempty"`
		}{
			CommentCount:  &commentCount,
			CoverImageUrl: stringToPointer(item.Post.CoverImageURL),
			Excerpt:       stringToPointer(item.Post.Excerpt),
			Tags:          &tags,
		}
	}
	return out
}

func mapItems[T, U any](items []T, f func(T) U) []U {
	out := make([]U, len(items))
	for i, item := range items {
		out[i] = f(item)
	}
	return out
}
