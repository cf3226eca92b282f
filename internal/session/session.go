// Package session is the top-level view controller: one screen-valued state
// machine per connected device, the table identity derived from the entry
// link, and the customer view-count telemetry.
package session

import (
	"fmt"
	"net/url"
	"sync"
	"time"

	"menufacil/internal/models"
	"menufacil/internal/orders"
	"menufacil/internal/storage"
	"menufacil/internal/waiter"
)

// Screen identifies the active top-level screen.
type Screen string

const (
	ScreenLanding      Screen = "landing"
	ScreenRegistration Screen = "registration"
	ScreenCustomer     Screen = "customer"
	ScreenAdmin        Screen = "admin"
)

// TableParam is the query parameter carrying the table identity on the
// inbound QR link. Read once per session.
const TableParam = "table"

// SplashDelay is how long the splash screen stays up before the first
// route. Presentation pacing only; no state waits on it.
const SplashDelay = 2 * time.Second

// waiterIndicatorWindow is how long the customer-facing "calling…"
// indicator stays on after a waiter request. Local timeout only; it does
// not cancel the underlying request.
const waiterIndicatorWindow = 30 * time.Second

// validEdges enumerates every legal screen transition.
var validEdges = map[Screen][]Screen{
	ScreenLanding:      {ScreenRegistration, ScreenCustomer, ScreenAdmin},
	ScreenRegistration: {ScreenAdmin, ScreenLanding},
	ScreenCustomer:     {ScreenLanding},
	ScreenAdmin:        {ScreenLanding},
}

// ScreenTransitionError reports a rejected screen change.
type ScreenTransitionError struct {
	From Screen
	To   Screen
}

func (e *ScreenTransitionError) Error() string {
	return fmt.Sprintf("invalid screen transition %s -> %s", e.From, e.To)
}

// ConfirmFunc answers a destructive-action confirmation prompt. Returning
// false leaves all state unchanged.
type ConfirmFunc func(prompt string) bool

// Session is the state of one connected device. The table identity is set
// at most once, during Start, and only cleared by a confirmed exit. Only a
// table-bound session may order or signal the staff.
type Session struct {
	mu             sync.Mutex
	screen         Screen
	tableID        string
	cart           *orders.Cart
	waiterCalledAt time.Time
	store          storage.Store
	now            func() time.Time
}

// New returns a session on the landing screen with an empty cart.
func New(store storage.Store) *Session {
	return &Session{
		screen: ScreenLanding,
		cart:   orders.NewCart(),
		store:  store,
		now:    time.Now,
	}
}

// Start derives the table identity from the inbound link and routes the
// session: a table parameter binds the session and lands it on the customer
// screen (after the splash delay, which callers render); no parameter
// leaves it on the landing screen.
func (s *Session) Start(link string) error {
	u, err := url.Parse(link)
	if err != nil {
		return fmt.Errorf("parse entry link: %w", err)
	}
	table := u.Query().Get(TableParam)

	s.mu.Lock()
	defer s.mu.Unlock()
	if table == "" {
		return nil
	}
	s.tableID = table
	s.screen = ScreenCustomer
	return s.recordView()
}

// Screen returns the active screen.
func (s *Session) Screen() Screen {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.screen
}

// TableID returns the bound table identity, empty for demo sessions.
func (s *Session) TableID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tableID
}

// Bound reports whether the session is bound to a table.
func (s *Session) Bound() bool {
	return s.TableID() != ""
}

// StartRegistration moves landing -> registration.
func (s *Session) StartRegistration() error {
	return s.transition(ScreenRegistration)
}

// CancelRegistration moves registration -> landing.
func (s *Session) CancelRegistration() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenRegistration {
		return &ScreenTransitionError{From: s.screen, To: ScreenLanding}
	}
	s.screen = ScreenLanding
	return nil
}

// CompleteRegistration persists the new restaurant profile and moves
// registration -> admin.
func (s *Session) CompleteRegistration(info models.RestaurantInfo) error {
	if err := models.ValidateRestaurantInfo(&info); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenRegistration {
		return &ScreenTransitionError{From: s.screen, To: ScreenAdmin}
	}
	if err := s.store.SaveInfo(info); err != nil {
		return fmt.Errorf("persist restaurant profile: %w", err)
	}
	s.screen = ScreenAdmin
	return nil
}

// EnterCustomer moves landing -> customer and records one view. Every entry
// counts; views are not deduplicated per session.
func (s *Session) EnterCustomer() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenLanding {
		return &ScreenTransitionError{From: s.screen, To: ScreenCustomer}
	}
	s.screen = ScreenCustomer
	return s.recordView()
}

// EnterAdmin moves landing -> admin. Demo access: no credential check.
func (s *Session) EnterAdmin() error {
	return s.transition(ScreenAdmin)
}

// Logout moves admin -> landing.
func (s *Session) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenAdmin {
		return &ScreenTransitionError{From: s.screen, To: ScreenLanding}
	}
	s.screen = ScreenLanding
	return nil
}

// ExitTable leaves the customer screen after an explicit confirmation.
// Declining changes nothing. Confirming clears the table identity (the
// addressable table parameter is gone for the rest of the session) and
// returns to the landing screen.
func (s *Session) ExitTable(confirm ConfirmFunc) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.screen != ScreenCustomer {
		return false, &ScreenTransitionError{From: s.screen, To: ScreenLanding}
	}

	prompt := "Deseja voltar para o início?"
	if s.tableID != "" {
		prompt = "Deseja encerrar o atendimento nesta mesa e sair?"
	}
	if confirm == nil || !confirm(prompt) {
		return false, nil
	}

	s.tableID = ""
	s.cart.Clear()
	s.screen = ScreenLanding
	return true, nil
}

// AddToCart appends a cart line for the given item.
func (s *Session) AddToCart(item models.MenuItem, quantity int, observation string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Add(item, quantity, observation)
}

// RemoveFromCart removes the cart line at index; out of range is a no-op.
func (s *Session) RemoveFromCart(index int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cart.Remove(index)
}

// CartLines returns a copy of the cart lines.
func (s *Session) CartLines() []models.CartItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Lines()
}

// CartTotal returns the cart total in minor currency units.
func (s *Session) CartTotal() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Total()
}

// CartCount returns the total quantity across cart lines.
func (s *Session) CartCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cart.Count()
}

// PlaceOrder submits the cart to the board under this session's table
// identity. On success the cart is cleared by the board.
func (s *Session) PlaceOrder(board *orders.Board, customerName string) (models.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return board.PlaceFromCart(s.cart, s.tableID, customerName)
}

// CallWaiter records a staff signal for this session's table and starts the
// local indicator window.
func (s *Session) CallWaiter(queue *waiter.Queue, kind models.RequestKind) (models.WaiterRequest, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	req, err := queue.Request(s.tableID, kind)
	if err != nil {
		return models.WaiterRequest{}, err
	}
	s.waiterCalledAt = s.now()
	return req, nil
}

// CallingWaiter reports whether the "calling…" indicator is still on. The
// indicator expires 30 seconds after the last request, whether or not the
// staff has resolved it.
func (s *Session) CallingWaiter() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.waiterCalledAt.IsZero() {
		return false
	}
	return s.now().Sub(s.waiterCalledAt) < waiterIndicatorWindow
}

func (s *Session) transition(to Screen) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, legal := range validEdges[s.screen] {
		if legal == to {
			s.screen = to
			return nil
		}
	}
	return &ScreenTransitionError{From: s.screen, To: to}
}

// recordView increments today's view counter. Callers hold s.mu.
func (s *Session) recordView() error {
	if err := s.store.IncrementViews(storage.DayKey(s.now())); err != nil {
		return fmt.Errorf("record customer view: %w", err)
	}
	return nil
}
