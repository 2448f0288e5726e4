// Package events runs one-shot catalog queries for the CLI.
package events

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"sorties.club/sorties/pkg/catalog"
	"sorties.club/sorties/pkg/filters"
	"sorties.club/sorties/pkg/group"
	"sorties.club/sorties/pkg/paging"
	"sorties.club/sorties/pkg/printers"
	"sorties.club/sorties/pkg/timeutil"
)

// Querier runs one remote catalog query.
type Querier interface {
	FetchPage(ctx context.Context, page paging.PageRequest, f filters.FilterSet) (catalog.EventPage, error)
}

// Events fetches a filtered catalog page and prints it grouped by date.
type Events struct {
	Client  Querier
	Filters filters.FilterSet
	Page    paging.PageRequest
	Locale  timeutil.Locale
	ShowID  bool
	JSON    bool
}

// jsonPage is the machine-readable output shape.
type jsonPage struct {
	Data       []catalog.EventSummary `json:"data"`
	Page       int                    `json:"page"`
	LastPage   int                    `json:"last_page"`
	TotalCount int                    `json:"total_count"`
}

func (n *Events) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not query events, no client")
	}
	if n.Page.Page < 1 {
		n.Page = paging.PageRequest{Page: 1, PageSize: paging.DefaultPageSize}
	}

	page, err := n.Client.FetchPage(ctx, n.Page, n.Filters)
	if err != nil {
		return err
	}
	totalCount := page.LastPage * n.Page.PageSize

	if n.JSON {
		out := jsonPage{
			Data:       page.Items,
			Page:       n.Page.Page,
			LastPage:   page.LastPage,
			TotalCount: totalCount,
		}
		b, err := json.MarshalIndent(out, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{ShowID: n.ShowID}
	fmt.Println("")

	grouped := group.ByDate(page.Items, n.Locale)
	if len(grouped) == 0 {
		pp.Title("Aucun événement")
		pp.Events()
		return nil
	}
	for _, bucket := range grouped {
		pp.Group(bucket)
	}
	pp.Summary(n.Page.Page, page.LastPage, totalCount)

	return nil
}
