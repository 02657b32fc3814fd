package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/url"
)

// Filters is the query-string side of a view's filter state. Only
// non-empty fields are rendered.
type Filters interface {
	Params() url.Values
}

// ListResult is one page of a filtered list view.
type ListResult struct {
	Items    []map[string]any
	Page     int
	PageSize int
	Total    int
}

// userScoped resources answer for the signed-in user rather than the
// active hotel, so they fetch even without a tenant scope.
var userScoped = map[string]bool{
	"hotels": true,
}

// List fetches one page of resource filtered by f. The cache key is the
// canonical encoding of the filter snapshot: a fresh entry short-circuits
// the fetch, and changing any field that affects the response changes the
// key. Hotel-scoped resources are disabled without an active hotel: the
// call returns (nil, nil) without touching the network.
func (c *Client) List(ctx context.Context, resource string, f Filters) (*ListResult, error) {
	if !userScoped[resource] && !c.HasActiveHotel() {
		return nil, nil
	}

	params := f.Params()
	key := ListKey(resource, params)
	if cached, ok := c.cache.Get(key); ok {
		if result, ok := cached.(*ListResult); ok {
			return result, nil
		}
	}

	target := c.cfg.APIURL + "/api/v1/" + resource
	if encoded := params.Encode(); encoded != "" {
		target += "?" + encoded
	}

	env, err := c.do(ctx, http.MethodGet, target, nil, "failed to load "+resource)
	if err != nil {
		return nil, err
	}

	var items []map[string]any
	if err := json.Unmarshal(env.Data, &items); err != nil {
		return nil, err
	}

	result := &ListResult{
		Items:    items,
		Page:     env.Meta.Page,
		PageSize: env.Meta.PageSize,
		Total:    env.Meta.Total,
	}
	c.cache.Put(key, result)
	return result, nil
}

// Detail fetches one entity by id. The cached document is a plain map so
// stream patches can shallow-merge into it in place. Hotel-scoped
// resources are disabled without an active hotel.
func (c *Client) Detail(ctx context.Context, resource, id string) (map[string]any, error) {
	if !userScoped[resource] && !c.HasActiveHotel() {
		return nil, nil
	}

	key := DetailKey(resource, id)
	if cached, ok := c.cache.Get(key); ok {
		if detail, ok := cached.(map[string]any); ok {
			return detail, nil
		}
	}

	env, err := c.do(ctx, http.MethodGet, c.cfg.APIURL+"/api/v1/"+resource+"/"+id, nil, "failed to load "+resource)
	if err != nil {
		return nil, err
	}

	var detail map[string]any
	if err := json.Unmarshal(env.Data, &detail); err != nil {
		return nil, err
	}

	c.cache.Put(key, detail)
	return detail, nil
}
