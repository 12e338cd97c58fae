package usecase

import (
	"context"
	"errors"
	"log/slog"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
	"quickcamp/internal/metrics"
)

// Reference fetches a selector list. A failed lookup is served from the
// cache, or as an empty list, marked stale. Only a lost session surfaces as
// an error.
func (u *WizardUseCase) Reference(ctx context.Context, sessionID string, kind domain.ReferenceKind) (*port.ReferenceList, error) {
	if _, ok := domain.ParseReferenceKind(string(kind)); !ok {
		return nil, port.ErrInvalidRequest
	}
	s, err := u.session(sessionID)
	if err != nil {
		return nil, err
	}
	items, stale, err := u.lookup(ctx, s.context(), kind)
	if err != nil {
		return nil, err
	}
	return &port.ReferenceList{Kind: kind, Items: items, Stale: stale}, nil
}

func (u *WizardUseCase) lookup(ctx context.Context, sc port.SessionContext, kind domain.ReferenceKind) ([]domain.ReferenceItem, bool, error) {
	key := kind.CacheKey(sc.AccountID)
	items, err := u.deps.Catalog.Lookup(ctx, sc, kind)
	if err == nil {
		if items == nil {
			items = []domain.ReferenceItem{}
		}
		if u.deps.Cache != nil {
			if cerr := u.deps.Cache.Set(ctx, key, items); cerr != nil {
				u.log.Warn("cache reference list", slog.String("key", key), slog.Any("error", cerr))
			}
		}
		return items, false, nil
	}
	if errors.Is(err, port.ErrUnauthenticated) {
		return nil, false, err
	}

	u.log.Warn("reference lookup failed", slog.String("kind", string(kind)), slog.Any("error", err))
	if u.deps.Cache != nil {
		cached, ok, cerr := u.deps.Cache.Get(ctx, key)
		switch {
		case cerr != nil:
			u.log.Warn("read cached reference list", slog.String("key", key), slog.Any("error", cerr))
		case ok:
			metrics.RecordReferenceFallback(string(kind), "cache")
			return cached, true, nil
		}
	}
	metrics.RecordReferenceFallback(string(kind), "empty")
	return []domain.ReferenceItem{}, true, nil
}

// referenceLists fetches the lists checked before a strict submission. Kinds
// that could not be fetched, even from the cache, are left out and so not
// checked.
func (u *WizardUseCase) referenceLists(ctx context.Context, sc port.SessionContext) map[domain.ReferenceKind][]domain.ReferenceItem {
	lists := make(map[domain.ReferenceKind][]domain.ReferenceItem, len(domain.ReferenceKinds))
	for _, kind := range domain.ReferenceKinds {
		items, stale, err := u.lookup(ctx, sc, kind)
		if err != nil || (stale && len(items) == 0) {
			continue
		}
		lists[kind] = items
	}
	return lists
}
