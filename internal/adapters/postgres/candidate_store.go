package postgres

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	blog "github.com/philly/arch-gallery/backend/internal/blog/domain"
	gallery "github.com/philly/arch-gallery/backend/internal/gallery/domain"
	"github.com/philly/arch-gallery/backend/internal/platform/postgres"
	"github.com/philly/arch-gallery/backend/internal/search/domain"
	"github.com/philly/arch-gallery/backend/internal/search/ports"
)

// CandidateStore implements ports.CandidateStore. Its visibility pre-filter
// keeps only rows the viewer could see without a password: public items and
// the viewer's own. The search engine re-checks every row it returns.
type CandidateStore struct {
	postgres.BaseRepository
}

func NewCandidateStore(db *pgxpool.Pool) *CandidateStore {
	return &CandidateStore{
		BaseRepository: postgres.NewBaseRepository(db),
	}
}

func (s *CandidateStore) FetchAlbums(ctx context.Context, c domain.Criteria) ([]*gallery.Album, int, error) {
	where := albumCriteria(c)

	qb := s.SB.Select(columns("a", albumColumns...)...).From("albums a").Where(where)
	qb = window(order(qb, c.Query, "a", "a.name"), c)

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchAlbums: build query: %w", err)
	}
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchAlbums: %w", err)
	}
	albums, err := collect(rows, scanAlbum)
	if err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchAlbums: %w", err)
	}

	total, err := s.Count(ctx, s.SB.Select("COUNT(*)").From("albums a").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchAlbums: %w", err)
	}
	return albums, total, nil
}

func (s *CandidateStore) FetchImages(ctx context.Context, c domain.Criteria) ([]ports.ImageCandidate, int, error) {
	where := imageCriteria(c)
	from := "images i JOIN albums al ON al.id = i.album_id"

	cols := append(columns("i", imageColumns...), columns("al", albumColumns...)...)
	qb := s.SB.Select(cols...).From(from).Where(where)
	qb = window(order(qb, c.Query, "i", "i.filename"), c)

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchImages: build query: %w", err)
	}
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchImages: %w", err)
	}
	defer rows.Close()

	var out []ports.ImageCandidate
	for rows.Next() {
		var img imageRow
		var album albumRow
		if err := rows.Scan(append(img.dest(), album.dest()...)...); err != nil {
			return nil, 0, fmt.Errorf("CandidateStore.FetchImages: %w", err)
		}
		out = append(out, ports.ImageCandidate{Image: img.image(), Album: album.album()})
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchImages: rows error: %w", err)
	}

	total, err := s.Count(ctx, s.SB.Select("COUNT(*)").From(from).Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchImages: %w", err)
	}
	return out, total, nil
}

func (s *CandidateStore) FetchPosts(ctx context.Context, c domain.Criteria) ([]*blog.Post, int, error) {
	where := postCriteria(c)

	qb := s.SB.Select(columns("p", postColumns...)...).From("posts p").Where(where)
	qb = window(order(qb, c.Query, "p", "p.title"), c)

	query, args, err := qb.ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchPosts: build query: %w", err)
	}
	rows, err := s.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchPosts: %w", err)
	}
	posts, err := collect(rows, scanPost)
	if err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchPosts: %w", err)
	}

	total, err := s.Count(ctx, s.SB.Select("COUNT(*)").From("posts p").Where(where))
	if err != nil {
		return nil, 0, fmt.Errorf("CandidateStore.FetchPosts: %w", err)
	}
	return posts, total, nil
}

// albumVisible is the password-free visibility rule for albums under alias.
func albumVisible(alias string, viewer uuid.UUID) sq.Sqlizer {
	public := sq.Eq{alias + ".permission": string(gallery.PermissionPublic)}
	if viewer == uuid.Nil {
		return public
	}
	return sq.Or{public, sq.Eq{alias + ".owner_id": pgUUID(viewer)}}
}

func albumCriteria(c domain.Criteria) sq.And {
	q := c.Query
	where := sq.And{
		sq.Eq{"a.is_deleted": false},
		albumVisible("a", c.ViewerID),
	}
	where = append(where, createdRange("a", q)...)
	if q.Keyword != "" {
		p := containsPattern(q.Keyword)
		where = append(where, sq.Or{sq.ILike{"a.name": p}, sq.ILike{"a.description": p}})
	}
	if q.OwnerID != nil {
		where = append(where, sq.Eq{"a.owner_id": pgUUID(*q.OwnerID)})
	}
	if q.Permission != nil {
		where = append(where, sq.Eq{"a.permission": string(*q.Permission)})
	}
	if q.ImageCountMin != nil {
		where = append(where, sq.GtOrEq{"a.image_count": *q.ImageCountMin})
	}
	if q.ImageCountMax != nil {
		where = append(where, sq.LtOrEq{"a.image_count": *q.ImageCountMax})
	}
	return where
}

func imageCriteria(c domain.Criteria) sq.And {
	q := c.Query
	where := sq.And{
		sq.Eq{"i.is_deleted": false, "al.is_deleted": false},
		albumVisible("al", c.ViewerID),
	}
	where = append(where, createdRange("i", q)...)
	if q.Keyword != "" {
		p := containsPattern(q.Keyword)
		where = append(where, sq.Or{sq.ILike{"i.filename": p}, sq.ILike{"i.camera_model": p}})
	}
	if q.OwnerID != nil {
		where = append(where, sq.Eq{"al.owner_id": pgUUID(*q.OwnerID)})
	}
	if q.Permission != nil {
		where = append(where, sq.Eq{"al.permission": string(*q.Permission)})
	}
	if q.AlbumID != nil {
		where = append(where, sq.Eq{"i.album_id": pgUUID(*q.AlbumID)})
	}
	if len(q.FileTypes) > 0 {
		where = append(where, sq.Eq{"i.file_type": q.FileTypes})
	}
	if q.Camera != "" {
		where = append(where, sq.ILike{"i.camera_model": containsPattern(q.Camera)})
	}
	if q.SizeMin != nil {
		where = append(where, sq.GtOrEq{"i.file_size": *q.SizeMin})
	}
	if q.SizeMax != nil {
		where = append(where, sq.LtOrEq{"i.file_size": *q.SizeMax})
	}
	return where
}

func postCriteria(c domain.Criteria) sq.And {
	q := c.Query
	public := sq.Eq{"p.is_draft": false, "p.is_private": false}
	var visible sq.Sqlizer = public
	if c.ViewerID != uuid.Nil {
		visible = sq.Or{public, sq.Eq{"p.owner_id": pgUUID(c.ViewerID)}}
	}

	where := sq.And{visible}
	where = append(where, createdRange("p", q)...)
	if q.Keyword != "" {
		p := containsPattern(q.Keyword)
		where = append(where, sq.Or{sq.ILike{"p.title": p}, sq.ILike{"p.content": p}})
	}
	if q.OwnerID != nil {
		where = append(where, sq.Eq{"p.owner_id": pgUUID(*q.OwnerID)})
	}
	if q.Draft != nil {
		where = append(where, sq.Eq{"p.is_draft": *q.Draft})
	}
	if len(q.Tags) > 0 {
		where = append(where, sq.Expr("EXISTS (SELECT 1 FROM unnest(p.tags) AS t(tag) WHERE lower(t.tag) = ANY(?))", q.Tags))
	}
	return where
}

func createdRange(alias string, q domain.Query) sq.And {
	var where sq.And
	if q.CreatedFrom != nil {
		where = append(where, sq.GtOrEq{alias + ".created_at": pgTime(*q.CreatedFrom)})
	}
	if q.CreatedTo != nil {
		where = append(where, sq.LtOrEq{alias + ".created_at": pgTime(*q.CreatedTo)})
	}
	return where
}

// order applies the query's sort with the same tie-break as domain.Less:
// created_at ascending, then id.
func order(qb sq.SelectBuilder, q domain.Query, alias, titleColumn string) sq.SelectBuilder {
	dir := "ASC"
	if q.Order == domain.OrderDesc {
		dir = "DESC"
	}

	var primary string
	switch q.Sort {
	case domain.SortTitle:
		primary = fmt.Sprintf("lower(%s) %s", titleColumn, dir)
	case domain.SortUpdatedAt:
		primary = fmt.Sprintf("%s.updated_at %s", alias, dir)
	default:
		primary = fmt.Sprintf("%s.created_at %s", alias, dir)
	}
	return qb.OrderBy(primary, alias+".created_at ASC", alias+".id ASC")
}

func window(qb sq.SelectBuilder, c domain.Criteria) sq.SelectBuilder {
	if c.Limit > 0 {
		qb = qb.Limit(uint64(c.Limit))
	}
	if c.Offset > 0 {
		qb = qb.Offset(uint64(c.Offset))
	}
	return qb
}
