// Package client speaks the club server's paginated, filterable event query
// protocol.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"sorties.club/sorties/pkg/catalog"
	"sorties.club/sorties/pkg/filters"
	"sorties.club/sorties/pkg/paging"
	"sorties.club/sorties/pkg/store"
)

const (
	eventsPath  = "/api/events/"
	leadersPath = "/api/leaders/autocomplete/"
)

// Client issues catalog queries against a club server. It performs no
// retries; a transport error or non-success status is returned as-is and
// retry policy stays with the caller.
type Client struct {
	base string
	http *http.Client

	// now reports the server's local time, used to resolve the default
	// "from today" date constraint without trusting the machine clock's
	// timezone.
	now func() time.Time
}

// New creates a client from the loaded configuration. The configured
// timezone anchors default date resolution to the server's clock.
func New(cfg store.Config) (*Client, error) {
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return nil, err
		}
	}
	loc, err := time.LoadLocation(cfg.Timezone())
	if err != nil {
		return nil, fmt.Errorf("client: load timezone %q: %w", cfg.Timezone(), err)
	}
	return &Client{
		base: strings.TrimRight(cfg.ServerURL(), "/"),
		http: &http.Client{Timeout: 15 * time.Second},
		now:  func() time.Time { return time.Now().In(loc) },
	}, nil
}

// NewForTesting creates a client pointed at the given base URL with a fixed
// clock.
func NewForTesting(base string, now func() time.Time) *Client {
	return &Client{
		base: strings.TrimRight(base, "/"),
		http: &http.Client{Timeout: 15 * time.Second},
		now:  now,
	}
}

// pageEnvelope mirrors the events endpoint response.
type pageEnvelope struct {
	Data     []catalog.EventSummary `json:"data"`
	LastPage int                    `json:"last_page"`
}

// FetchPage runs one filtered, paginated event query and returns the page
// items plus the total page count the service reported.
func (c *Client) FetchPage(ctx context.Context, page paging.PageRequest, f filters.FilterSet) (catalog.EventPage, error) {
	params := url.Values{}
	params.Set("page", strconv.Itoa(page.Page))
	params.Set("size", strconv.Itoa(page.PageSize))
	encodePredicates(params, BuildPredicates(f, c.now()))

	var envelope pageEnvelope
	if err := c.getJSON(ctx, eventsPath, params, &envelope); err != nil {
		return catalog.EventPage{}, err
	}
	return catalog.EventPage{Items: envelope.Data, LastPage: envelope.LastPage}, nil
}

// LeaderSuggestion is one autocomplete result for the leader filter.
type LeaderSuggestion struct {
	ID       int    `json:"id"`
	FullName string `json:"full_name"`
}

// SearchLeaders queries the leader autocomplete endpoint. It feeds the
// leader filter's suggestion list and is not part of the catalog state
// machine.
func (c *Client) SearchLeaders(ctx context.Context, query string, limit int) ([]LeaderSuggestion, error) {
	if query == "" {
		return nil, nil
	}
	if limit <= 0 {
		limit = 8
	}
	params := url.Values{}
	params.Set("q", query)
	params.Set("l", strconv.Itoa(limit))

	var suggestions []LeaderSuggestion
	if err := c.getJSON(ctx, leadersPath, params, &suggestions); err != nil {
		return nil, err
	}
	return suggestions, nil
}

// encodePredicates flattens predicates into the service's indexed bracket
// grammar: filters[0][field]=title&filters[0][type]=like&...
func encodePredicates(params url.Values, preds []Predicate) {
	for i, p := range preds {
		params.Set(fmt.Sprintf("filters[%d][field]", i), p.Field)
		params.Set(fmt.Sprintf("filters[%d][type]", i), p.Type)
		params.Set(fmt.Sprintf("filters[%d][value]", i), p.Value)
	}
}

func (c *Client) getJSON(ctx context.Context, path string, params url.Values, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.base+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return errors.New(resp.Status)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
