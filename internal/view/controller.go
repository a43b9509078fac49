package view

import (
	"context"

	"github.com/vkravets/budget-cloud/internal/logger"
)

// Presenter applies view changes to whatever renders the UI. The
// controller only decides transitions; all visual side effects go
// through this boundary so the transition logic stays testable.
type Presenter interface {
	HideAll()    // deactivate every panel and navigation control
	Show(v View) // mark v's panel and navigation control active
}

// History abstracts the navigation history surface (the browser history
// in the original frontend).
type History interface {
	Path() string     // current location path
	Push(path string) // push a new history entry
}

// RefreshFunc loads the data backing a view when it becomes active.
type RefreshFunc func(ctx context.Context)

// Controller is the single source of truth for the active view. It keeps
// the visible panel in sync with navigation history and invokes the
// registered data-refresh hook on every activation. No operation on the
// controller fails: unknown views and paths fall back to Default.
type Controller struct {
	routes    *Routes
	presenter Presenter
	history   History
	current   View
	hooks     map[View]RefreshFunc
}

// NewController wires a controller to its route table and side-effect
// adapters. Register all hooks before calling Init or Activate; there is
// no ordering magic beyond construct-then-register-then-wire.
func NewController(routes *Routes, presenter Presenter, history History) *Controller {
	return &Controller{
		routes:    routes,
		presenter: presenter,
		history:   history,
		current:   Default,
		hooks:     make(map[View]RefreshFunc),
	}
}

// RegisterRefreshHook associates fn with v. At most one hook per view;
// a later registration replaces the earlier one.
func (c *Controller) RegisterRefreshHook(v View, fn RefreshFunc) {
	if !Known(v) {
		logger.Log.Warnw("refusing refresh hook for unknown view", "view", v)
		return
	}
	c.hooks[v] = fn
}

// Current returns the active view.
func (c *Controller) Current() View {
	return c.current
}

// Init resolves the current history path exactly as HandleHistoryChange
// would, so a deep link or reload lands on the right view.
func (c *Controller) Init(ctx context.Context) {
	c.HandleHistoryChange(ctx, c.history.Path())
}

// Activate makes v the active view. Unknown views silently fall back to
// Default. Activating the same view again re-runs its refresh hook: the
// tab is treated as a reload request, once per call.
func (c *Controller) Activate(ctx context.Context, v View) {
	c.activate(ctx, v, true)
}

// HandleHistoryChange reacts to a back/forward navigation. It resolves
// path through the route table and activates the result without pushing
// a new history entry, so navigation never loops.
func (c *Controller) HandleHistoryChange(ctx context.Context, path string) {
	c.activate(ctx, c.routes.ResolveView(path), false)
}

func (c *Controller) activate(ctx context.Context, v View, push bool) {
	if !Known(v) {
		v = Default
	}

	c.presenter.HideAll()
	c.presenter.Show(v)
	c.current = v

	if push && v != Default {
		p := c.routes.PathFor(v)
		if c.history.Path() != p {
			c.history.Push(p)
		}
	}

	if fn, ok := c.hooks[v]; ok {
		fn(ctx)
	}
}
