// Package browse launches the interactive catalog browser.
package browse

import (
	"context"

	"sorties.club/sorties/pkg/client"
	"sorties.club/sorties/pkg/filters"
	"sorties.club/sorties/pkg/paging"
	"sorties.club/sorties/pkg/store"
	"sorties.club/sorties/pkg/timeutil"
	"sorties.club/sorties/pkg/tui/app"
	"sorties.club/sorties/pkg/tui/controller"
)

// Browse wires the persisted filter and page state to a controller and runs
// the TUI.
type Browse struct {
	Config    store.Config
	Snapshots store.Snapshots
}

func (n *Browse) Do(ctx context.Context) error {
	cfg := n.Config
	if cfg == nil {
		var err error
		cfg, err = store.LoadConfig()
		if err != nil {
			return err
		}
	}

	snaps := n.Snapshots
	if snaps == nil {
		var err error
		snaps, err = store.Load(cfg)
		if err != nil {
			return err
		}
	}

	c, err := client.New(cfg)
	if err != nil {
		return err
	}

	ctrl := controller.New("catalog", c, filters.NewState(snaps), paging.NewState(snaps), timeutil.French)
	return app.Run(ctx, ctrl, c)
}
