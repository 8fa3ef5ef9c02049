package ui

import (
	"context"

	"github.com/kiwari-pos/pedidos-web/internal/enum"
)

// Screen is the content of one tab. Load fetches whatever the screen shows.
type Screen interface {
	Load(ctx context.Context)
}

// Shell holds the active tab and its screen. Switching to another tab
// discards the current screen and mounts a fresh one.
type Shell struct {
	api    API
	active enum.Tab
	screen Screen
}

func NewShell(api API) *Shell {
	return &Shell{api: api}
}

func (s *Shell) Active() enum.Tab {
	return s.active
}

func (s *Shell) Screen() Screen {
	return s.screen
}

// Mount loads the default tab if nothing is mounted yet.
func (s *Shell) Mount(ctx context.Context) {
	if s.screen == nil {
		s.mount(ctx, enum.TabOrders)
	}
}

// Switch activates tab. Re-selecting the active tab and unknown tabs are
// no-ops; it reports whether a new screen was mounted.
func (s *Shell) Switch(ctx context.Context, tab enum.Tab) bool {
	if !tab.Valid() || (s.screen != nil && tab == s.active) {
		return false
	}
	s.mount(ctx, tab)
	return true
}

func (s *Shell) mount(ctx context.Context, tab enum.Tab) {
	s.active = tab
	s.screen = s.newScreen(tab)
	s.screen.Load(ctx)
}

func (s *Shell) newScreen(tab enum.Tab) Screen {
	switch tab {
	case enum.TabCreate:
		return NewOrderForm(s.api)
	case enum.TabLookup:
		return NewOrderLookup(s.api)
	case enum.TabProducts:
		return NewProductManager(s.api)
	case enum.TabCustomers:
		return NewCustomerManager(s.api)
	}
	return NewOrderList(s.api)
}

// OrderForm returns whichever order form is showing: the create tab, or the
// edit form that replaced the order list.
func (s *Shell) OrderForm() (*OrderForm, bool) {
	switch sc := s.screen.(type) {
	case *OrderForm:
		return sc, true
	case *OrderList:
		if sc.Editing != nil {
			return sc.Editing, true
		}
	}
	return nil, false
}

// ScreenAs returns the active screen when it has type T.
func ScreenAs[T Screen](s *Shell) (T, bool) {
	sc, ok := s.screen.(T)
	return sc, ok
}
