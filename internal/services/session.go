package services

import (
	"errors"
	"fmt"
	"sync"

	"github.com/diewo77/invoice-studio/i18n"
	"github.com/diewo77/invoice-studio/internal/design"
	"github.com/diewo77/invoice-studio/internal/ledger"
	"github.com/diewo77/invoice-studio/internal/notify"
)

var ErrUnknownDesign = errors.New("design not found in catalog")

// Session is the single editing session served by the local editor.
// The HTTP server handles requests concurrently, so every ledger access goes
// through mu and mutations are applied one at a time.
type Session struct {
	mu       sync.Mutex
	ledger   *ledger.Ledger
	notifier *notify.Center
	lang     string
}

func NewSession(inv ledger.Invoice, notifier *notify.Center, lang string) *Session {
	if !i18n.Supported(lang) {
		lang = i18n.Default
	}
	return &Session{ledger: ledger.New(inv), notifier: notifier, lang: lang}
}

// Lang is the language used for rendered labels and notifications.
func (s *Session) Lang() string { return s.lang }

func (s *Session) Snapshot() ledger.Invoice {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ledger.Snapshot()
}

// Apply runs fn against the ledger and returns the resulting snapshot.
// The snapshot is returned even when fn fails so callers can redisplay state.
func (s *Session) Apply(fn func(l *ledger.Ledger) error) (ledger.Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	err := fn(s.ledger)
	return s.ledger.Snapshot(), err
}

// SelectDesign switches to the catalog design id and announces it.
func (s *Session) SelectDesign(id string) (ledger.Invoice, error) {
	d, ok := design.Lookup(id)
	if !ok {
		return s.Snapshot(), fmt.Errorf("%w: %s", ErrUnknownDesign, id)
	}
	inv, _ := s.Apply(func(l *ledger.Ledger) error {
		l.SelectDesign(d)
		return nil
	})
	if s.notifier != nil {
		s.notifier.Success(fmt.Sprintf(i18n.T(s.lang, "design_applied"), d.Name))
	}
	return inv, nil
}
