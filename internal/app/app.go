package app

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/five82/ptable/internal/catalog"
	"github.com/five82/ptable/internal/config"
	"github.com/five82/ptable/internal/grid"
	"github.com/five82/ptable/internal/logging"
	"github.com/five82/ptable/internal/state"
	"github.com/five82/ptable/internal/ui"
)

// Options configure the ptable application. Non-empty fields override the
// config file.
type Options struct {
	ConfigPath  string
	ThemeName   string
	CatalogPath string
	NoMouse     bool
}

// Session holds the loaded configuration, catalog and grid.
type Session struct {
	Config  config.Config
	Catalog *catalog.Catalog
	Grid    *grid.Grid
}

// Load reads the config file, applies overrides and builds the grid.
func Load(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if theme := strings.TrimSpace(opts.ThemeName); theme != "" {
		cfg.Theme = theme
	}
	if path := strings.TrimSpace(opts.CatalogPath); path != "" {
		cfg.CatalogPath = path
	}
	if opts.NoMouse {
		cfg.Mouse = false
	}

	cat, err := catalog.Load(cfg.CatalogPath)
	if err != nil {
		return nil, fmt.Errorf("load catalog: %w", err)
	}

	return &Session{
		Config:  cfg,
		Catalog: cat,
		Grid:    grid.Build(cat.Elements()),
	}, nil
}

// Filter returns the elements that pass both filters, in grid order.
func (s *Session) Filter(term string, category catalog.Category) []catalog.Element {
	ctrl := state.New(s.Grid)
	ctrl.ApplySearch(term)
	ctrl.ApplyCategory(category)

	var out []catalog.Element
	for _, v := range ctrl.View() {
		if !v.Visible() {
			continue
		}
		if el, ok := v.Cell.Element(); ok {
			out = append(out, el)
		}
	}
	return out
}

// Run boots the ptable TUI until the user quits or the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	session, err := Load(opts)
	if err != nil {
		return err
	}

	closer, err := logging.Setup(session.Config.LogPath)
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer closer.Close()

	log.Printf("start: %d elements, %d placed, theme %s", session.Catalog.Len(), len(session.Grid.Bound()), session.Config.Theme)
	for _, el := range session.Grid.Unplaced() {
		log.Printf("unplaced: %s (period %d, group %d)", el.Symbol, el.Position.Period, el.Position.Group)
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Grid:      session.Grid,
		ThemeName: session.Config.Theme,
		Mouse:     session.Config.Mouse,
	})
}
