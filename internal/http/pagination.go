package http

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/tomnomnom/linkheader"

	"github.com/fivetwenty-io/recharge-client/pkg/recharge"
)

// PaginationStrategy finds the URL of the next page of a listing. An empty
// string ends the walk.
type PaginationStrategy interface {
	NextURL(original *url.URL, headers http.Header, decoded interface{}) string
}

// LinkHeaderStrategy follows the rel="next" entry of the Link header
// (2021-01).
type LinkHeaderStrategy struct{}

// NextURL implements PaginationStrategy.
func (LinkHeaderStrategy) NextURL(_ *url.URL, headers http.Header, _ interface{}) string {
	for _, value := range headers.Values("Link") {
		for _, link := range linkheader.Parse(value).FilterByRel("next") {
			if link.URL != "" {
				return link.URL
			}
		}
	}

	return ""
}

// CursorStrategy reads next_cursor from the body and rebuilds the original
// URL keeping only the cursor and limit parameters (2021-11).
type CursorStrategy struct{}

// NextURL implements PaginationStrategy.
func (CursorStrategy) NextURL(original *url.URL, _ http.Header, decoded interface{}) string {
	object, ok := decoded.(map[string]interface{})
	if !ok {
		return ""
	}

	cursor, _ := object["next_cursor"].(string)
	if cursor == "" || original == nil {
		return ""
	}

	next := *original
	query := url.Values{}
	query.Set("cursor", cursor)

	if limit := original.Query().Get("limit"); limit != "" {
		query.Set("limit", limit)
	}

	next.RawQuery = query.Encode()

	return next.String()
}

// StrategyFor returns the pagination strategy of version.
func StrategyFor(version recharge.Version) (PaginationStrategy, error) {
	switch version {
	case recharge.Version202101:
		return LinkHeaderStrategy{}, nil
	case recharge.Version202111:
		return CursorStrategy{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", recharge.ErrUnknownVersion, string(version))
	}
}

// PageFunc receives one page of a listing. Returning an error stops the walk.
type PageFunc func(page []recharge.Object) error

// Paginate walks every page of a listing and returns the concatenated
// objects found under key.
func (c *Client) Paginate(ctx context.Context, rawURL string, query url.Values, key string, version recharge.Version) ([]recharge.Object, error) {
	all := []recharge.Object{}

	err := c.PaginateFunc(ctx, rawURL, query, key, version, func(page []recharge.Object) error {
		all = append(all, page...)

		return nil
	})
	if err != nil {
		return all, err
	}

	return all, nil
}

// PaginateFunc walks every page of a listing, calling fn with the objects
// found under key on each page. The query is only sent with the first
// request; later pages are addressed by the URL the strategy produces. A
// page whose body is not valid JSON ends the walk without error.
func (c *Client) PaginateFunc(ctx context.Context, rawURL string, query url.Values, key string, version recharge.Version, fn PageFunc) error {
	version = c.resolveVersion(version)

	strategy, err := StrategyFor(version)
	if err != nil {
		return err
	}

	var original *url.URL

	next := rawURL
	pages := 0

	for next != "" {
		resp, err := c.Do(ctx, &Request{
			Method:  http.MethodGet,
			URL:     next,
			Query:   query,
			Version: version,
		})
		if err != nil {
			return err
		}

		pages++

		if original == nil {
			original = resp.URL
		}

		query = nil

		decoded, ok := decodeBody(resp.Body)
		if !ok {
			c.logger.Warn("Failed to decode page, ending pagination", map[string]interface{}{
				"url":   RedactURL(resp.URL.String()),
				"pages": pages,
			})

			return nil
		}

		page, skipped := arrayAt(decoded, key)
		if skipped > 0 {
			c.logger.Warn("Skipped page items that are not objects", map[string]interface{}{
				"url":     RedactURL(resp.URL.String()),
				"key":     key,
				"skipped": skipped,
			})
		}

		if len(page) > 0 {
			err = fn(page)
			if err != nil {
				return err
			}
		}

		next = strategy.NextURL(original, resp.Headers, decoded)
	}

	return nil
}
