// Package leaders runs leader autocomplete searches for the CLI.
package leaders

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fatih/color"

	"sorties.club/sorties/pkg/client"
	"sorties.club/sorties/pkg/printers"
)

// Searcher runs leader autocomplete queries.
type Searcher interface {
	SearchLeaders(ctx context.Context, query string, limit int) ([]client.LeaderSuggestion, error)
}

// Leaders searches leaders by name prefix and prints the matches.
type Leaders struct {
	Client Searcher
	Query  string
	Limit  int
	JSON   bool
}

func (n *Leaders) Do(ctx context.Context) error {
	if n.Client == nil {
		return errors.New("can not search leaders, no client")
	}
	if n.Query == "" {
		return errors.New("a search query is required")
	}

	suggestions, err := n.Client.SearchLeaders(ctx, n.Query, n.Limit)
	if err != nil {
		return err
	}

	if n.JSON {
		b, err := json.MarshalIndent(suggestions, "", "  ")
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(color.Output, string(b))
		return nil
	}

	pp := printers.PrettyPrint{}
	fmt.Println("")
	pp.Leaders(suggestions)
	return nil
}
