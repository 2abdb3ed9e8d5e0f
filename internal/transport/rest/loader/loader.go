// Package loader provides per-request DataLoaders that batch the group chips
// and member counts embedded in contact and group listings. Loaders call
// repositories directly; every key they receive comes from a listing that
// was already scoped to the requesting user.
package loader

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/dataloader/v7"

	"github.com/heartmarshall/mynetwrk-backend/internal/adapter/postgres/group"
	"github.com/heartmarshall/mynetwrk-backend/internal/domain"
)

const (
	maxBatch = 100
	wait     = 2 * time.Millisecond
)

type groupRepo interface {
	GetByContactIDs(ctx context.Context, contactIDs []uuid.UUID) ([]group.GroupWithContactID, error)
	CountMembersByGroupIDs(ctx context.Context, groupIDs []uuid.UUID) (map[uuid.UUID]int, error)
}

// Loaders holds the per-request DataLoader instances.
type Loaders struct {
	GroupsByContactID  *dataloader.Loader[uuid.UUID, []domain.Group]
	MemberCountByGroup *dataloader.Loader[uuid.UUID, int]
}

// New creates a fresh set of loaders. Results are cached for the lifetime
// of the returned value, so create one per request.
func New(groups groupRepo) *Loaders {
	return &Loaders{
		GroupsByContactID:  newLoader(newGroupsBatchFn(groups)),
		MemberCountByGroup: newLoader(newMemberCountBatchFn(groups)),
	}
}

func newLoader[V any](batchFn dataloader.BatchFunc[uuid.UUID, V]) *dataloader.Loader[uuid.UUID, V] {
	return dataloader.NewBatchedLoader(
		batchFn,
		dataloader.WithWait[uuid.UUID, V](wait),
		dataloader.WithBatchCapacity[uuid.UUID, V](maxBatch),
	)
}

// GroupsFor loads the groups of every contact in one batch, in key order.
func (l *Loaders) GroupsFor(ctx context.Context, contactIDs []uuid.UUID) ([][]domain.Group, error) {
	results, errs := l.GroupsByContactID.LoadMany(ctx, contactIDs)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// MemberCountsFor loads member counts for every group in one batch, in key order.
func (l *Loaders) MemberCountsFor(ctx context.Context, groupIDs []uuid.UUID) ([]int, error) {
	results, errs := l.MemberCountByGroup.LoadMany(ctx, groupIDs)()
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return results, nil
}

// ---------------------------------------------------------------------------
// Context helpers
// ---------------------------------------------------------------------------

type contextKey string

const loadersKey contextKey = "loaders"

// WithLoaders stores Loaders in the context.
func WithLoaders(ctx context.Context, l *Loaders) context.Context {
	return context.WithValue(ctx, loadersKey, l)
}

// FromContext retrieves Loaders from the context.
// Panics if loaders are not present (indicates middleware misconfiguration).
func FromContext(ctx context.Context) *Loaders {
	l, ok := ctx.Value(loadersKey).(*Loaders)
	if !ok || l == nil {
		panic("loader: loaders not found in context, is the middleware configured?")
	}
	return l
}

// Middleware instantiates per-request loaders and stores them in the request context.
func Middleware(groups groupRepo) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := WithLoaders(r.Context(), New(groups))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ---------------------------------------------------------------------------
// Batch functions
// ---------------------------------------------------------------------------

func newGroupsBatchFn(repo groupRepo) dataloader.BatchFunc[uuid.UUID, []domain.Group] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[[]domain.Group] {
		rows, err := repo.GetByContactIDs(ctx, keys)
		if err != nil {
			return errorResults[[]domain.Group](len(keys), err)
		}

		grouped := make(map[uuid.UUID][]domain.Group, len(keys))
		for _, row := range rows {
			grouped[row.ContactID] = append(grouped[row.ContactID], row.Group)
		}

		return mapResults(keys, grouped, emptySlice[domain.Group])
	}
}

func newMemberCountBatchFn(repo groupRepo) dataloader.BatchFunc[uuid.UUID, int] {
	return func(ctx context.Context, keys []uuid.UUID) []*dataloader.Result[int] {
		counts, err := repo.CountMembersByGroupIDs(ctx, keys)
		if err != nil {
			return errorResults[int](len(keys), err)
		}
		return mapResults(keys, counts, func() int { return 0 })
	}
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

func errorResults[V any](n int, err error) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], n)
	for i := range results {
		results[i] = &dataloader.Result[V]{Error: err}
	}
	return results
}

// mapResults maps grouped results back to key order, using defaultFn for missing keys.
func mapResults[V any](keys []uuid.UUID, grouped map[uuid.UUID]V, defaultFn func() V) []*dataloader.Result[V] {
	results := make([]*dataloader.Result[V], len(keys))
	for i, key := range keys {
		if v, ok := grouped[key]; ok {
			results[i] = &dataloader.Result[V]{Data: v}
		} else {
			results[i] = &dataloader.Result[V]{Data: defaultFn()}
		}
	}
	return results
}

// emptySlice returns a non-nil empty slice.
func emptySlice[T any]() []T {
	return []T{}
}
