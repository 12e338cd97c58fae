package remote

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"

	"quickcamp/internal/core/domain"
	"quickcamp/internal/core/port"
)

// CatalogClient serves the reference lists below campaigns/. Account scoped
// lists need the session's active ad account.
type CatalogClient struct {
	base *url.URL
}

var _ port.CatalogAPI = (*CatalogClient)(nil)

func NewCatalogClient(base *url.URL) *CatalogClient {
	return &CatalogClient{base: base}
}

func (c *CatalogClient) Lookup(ctx context.Context, sc port.SessionContext, kind domain.ReferenceKind) ([]domain.ReferenceItem, error) {
	elems := []string{"campaigns", string(kind)}
	if kind.AccountScoped() {
		if sc.AccountID == "" {
			return nil, port.ErrNoActiveAccount
		}
		elems = append(elems, sc.AccountID)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint(c.base, elems...), nil)
	if err != nil {
		return nil, err
	}
	var raw json.RawMessage
	if err = do(sc, req, &raw); err != nil {
		return nil, fmt.Errorf("lookup %s: %w", kind, err)
	}
	list, err := unwrapList(raw)
	if err != nil {
		return nil, fmt.Errorf("lookup %s: %w", kind, err)
	}
	var items []referenceDTO
	if err = json.Unmarshal(list, &items); err != nil {
		return nil, fmt.Errorf("lookup %s: decode: %w", kind, err)
	}
	out := make([]domain.ReferenceItem, 0, len(items))
	for _, it := range items {
		if item, ok := it.item(); ok {
			out = append(out, item)
		}
	}
	return out, nil
}

// referenceDTO accepts both {id, name} and the {value, label} shape used by
// selector libraries. Countries may also come as {code, name}.
type referenceDTO struct {
	ID    flexID `json:"id"`
	Value flexID `json:"value"`
	Code  string `json:"code"`
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (d referenceDTO) item() (domain.ReferenceItem, bool) {
	id := string(d.ID)
	if id == "" {
		id = string(d.Value)
	}
	if id == "" {
		id = d.Code
	}
	if id == "" {
		return domain.ReferenceItem{}, false
	}
	name := d.Name
	if name == "" {
		name = d.Label
	}
	if name == "" {
		name = id
	}
	return domain.ReferenceItem{ID: id, Name: name}, true
}
