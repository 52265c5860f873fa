package application

import (
	"context"
	"fmt"
	"net/http"
	"sort"

	"golang.org/x/sync/errgroup"

	accessapp "github.com/philly/arch-gallery/backend/internal/access/application"
	access "github.com/philly/arch-gallery/backend/internal/access/domain"
	"github.com/philly/arch-gallery/backend/internal/platform/apperror"
	"github.com/philly/arch-gallery/backend/internal/platform/logger"
	"github.com/philly/arch-gallery/backend/internal/platform/pagination"
	"github.com/philly/arch-gallery/backend/internal/search/domain"
	"github.com/philly/arch-gallery/backend/internal/search/ports"
)

var ErrInvalidQuery = apperror.New(
	apperror.CodeValidationFailed,
	apperror.BusinessCodeInvalidFormat,
	"invalid search query",
	http.StatusBadRequest,
)

const DefaultMaxCandidates = 1000

// Config tunes the engine.
type Config struct {
	// MaxCandidates caps the rows fetched per kind when several kinds are
	// merged in memory.
	MaxCandidates int
}

// Engine runs searches across albums, images and posts and returns only what
// the actor may view without a password.
type Engine struct {
	store         ports.CandidateStore
	resolver      *accessapp.Resolver
	logger        logger.Logger
	maxCandidates int
}

func NewEngine(store ports.CandidateStore, resolver *accessapp.Resolver, cfg Config, logger logger.Logger) *Engine {
	limit := cfg.MaxCandidates
	if limit <= 0 {
		limit = DefaultMaxCandidates
	}
	return &Engine{
		store:         store,
		resolver:      resolver,
		logger:        logger,
		maxCandidates: limit,
	}
}

// Candidate is one row from the store before permission filtering.
type Candidate struct {
	Item domain.ResultItem
	res  access.Resource
	keep func(domain.Query) bool
}

// Search validates q and returns one page of visible results. Per-item
// denials are never errors.
func (e *Engine) Search(ctx context.Context, actor *access.Actor, q domain.Query) (pagination.Page[domain.ResultItem], error) {
	q.ApplyDefaults()
	if err := q.Validate(); err != nil {
		return pagination.Page[domain.ResultItem]{}, ErrInvalidQuery.WithDetails(err)
	}

	kinds := q.Kinds()
	eval := e.resolver.Begin()
	if len(kinds) == 1 {
		return e.searchOne(ctx, eval, actor, q, kinds[0])
	}
	return e.searchMerged(ctx, eval, actor, q, kinds)
}

// searchOne pushes sorting and paging down to the store and vets the page.
func (e *Engine) searchOne(ctx context.Context, eval *accessapp.Evaluation, actor *access.Actor, q domain.Query, kind access.Kind) (pagination.Page[domain.ResultItem], error) {
	page := q.Pagination()
	criteria := domain.Criteria{
		Query:    q,
		ViewerID: actor.IDOrNil(),
		Limit:    page.Limit(),
		Offset:   page.Offset(),
	}

	candidates, total, err := e.FetchCandidates(ctx, eval, kind, criteria)
	if err != nil {
		return pagination.Page[domain.ResultItem]{}, err
	}

	items, err := e.vet(ctx, eval, actor, q, candidates)
	if err != nil {
		return pagination.Page[domain.ResultItem]{}, err
	}
	if dropped := len(candidates) - len(items); dropped > 0 {
		e.logger.Warn(ctx, "store returned rows that failed visibility or filters", "kind", kind, "dropped", dropped)
		total -= dropped
	}
	return pagination.NewPage(items, total, page), nil
}

// searchMerged fetches every included kind in parallel, filters, merges and
// paginates in memory.
func (e *Engine) searchMerged(ctx context.Context, eval *accessapp.Evaluation, actor *access.Actor, q domain.Query, kinds []access.Kind) (pagination.Page[domain.ResultItem], error) {
	criteria := domain.Criteria{
		Query:    q,
		ViewerID: actor.IDOrNil(),
		Limit:    e.maxCandidates,
	}

	perKind := make([][]Candidate, len(kinds))
	// unfetched counts store matches past the candidate cap. The store's
	// filters mirror the password-free view rule, so they still count
	// towards Total even though they cannot be paged to.
	unfetched := make([]int, len(kinds))
	g, gctx := errgroup.WithContext(ctx)
	for i, kind := range kinds {
		g.Go(func() error {
			candidates, total, err := e.FetchCandidates(gctx, eval, kind, criteria)
			if err != nil {
				return err
			}
			if total > len(candidates) {
				e.logger.Warn(gctx, "search candidates truncated", "kind", kind, "total", total, "fetched", len(candidates))
				unfetched[i] = total - len(candidates)
			}
			perKind[i] = candidates
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return pagination.Page[domain.ResultItem]{}, err
	}

	type key struct {
		kind access.Kind
		id   string
	}
	seen := make(map[key]struct{})
	var merged []domain.ResultItem
	for _, candidates := range perKind {
		items, err := e.vet(ctx, eval, actor, q, candidates)
		if err != nil {
			return pagination.Page[domain.ResultItem]{}, err
		}
		for _, item := range items {
			k := key{kind: item.Kind, id: item.ID.String()}
			if _, dup := seen[k]; dup {
				continue
			}
			seen[k] = struct{}{}
			merged = append(merged, item)
		}
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return domain.Less(merged[i], merged[j], q.Sort, q.Order)
	})

	total := len(merged)
	for _, n := range unfetched {
		total += n
	}
	page := q.Pagination()
	return pagination.NewPage(pagination.Slice(merged, page), total, page), nil
}

// FetchCandidates loads the candidates of one kind. Albums joined to image
// rows are remembered by eval.
func (e *Engine) FetchCandidates(ctx context.Context, eval *accessapp.Evaluation, kind access.Kind, c domain.Criteria) ([]Candidate, int, error) {
	var (
		out   []Candidate
		total int
	)

	switch kind {
	case access.KindAlbum:
		albums, n, err := e.store.FetchAlbums(ctx, c)
		if err != nil {
			return nil, 0, e.storeError(ctx, kind, err)
		}
		for _, a := range albums {
			out = append(out, Candidate{Item: domain.FromAlbum(a), res: a, keep: func(q domain.Query) bool { return q.MatchesAlbum(a) }})
		}
		total = n

	case access.KindImage:
		images, n, err := e.store.FetchImages(ctx, c)
		if err != nil {
			return nil, 0, e.storeError(ctx, kind, err)
		}
		for _, ic := range images {
			eval.RememberAlbum(ic.Album)
			img := ic.Image
			out = append(out, Candidate{Item: domain.FromImage(img), res: img, keep: func(q domain.Query) bool { return q.MatchesImage(img) }})
		}
		total = n

	case access.KindPost:
		posts, n, err := e.store.FetchPosts(ctx, c)
		if err != nil {
			return nil, 0, e.storeError(ctx, kind, err)
		}
		for _, p := range posts {
			out = append(out, Candidate{Item: domain.FromPost(p), res: p, keep: func(q domain.Query) bool { return q.MatchesPost(p) }})
		}
		total = n

	default:
		return nil, 0, fmt.Errorf("search: unsupported kind %q", kind)
	}
	return out, total, nil
}

// vet drops candidates the actor cannot view without a password, then
// applies the attribute post-filters.
func (e *Engine) vet(ctx context.Context, eval *accessapp.Evaluation, actor *access.Actor, q domain.Query, candidates []Candidate) ([]domain.ResultItem, error) {
	items := make([]domain.ResultItem, 0, len(candidates))
	for _, c := range candidates {
		decision, err := eval.CanView(ctx, actor, c.res, accessapp.ViewOptions{})
		if err != nil {
			e.logger.Error(ctx, "visibility check failed during search", "kind", c.Item.Kind, "id", c.Item.ID, "error", err)
			return nil, apperror.Internal(err, "search failed")
		}
		if decision.Denied() {
			continue
		}
		if c.keep != nil && !c.keep(q) {
			continue
		}
		items = append(items, c.Item)
	}
	return items, nil
}

func (e *Engine) storeError(ctx context.Context, kind access.Kind, err error) error {
	e.logger.Error(ctx, "failed to fetch search candidates", "kind", kind, "error", err)
	return apperror.Internal(err, "search failed")
}
