package handler

import (
	"context"
	"log"
	"sync"

	"github.com/google/uuid"

	"github.com/kiwari-pos/pedidos-web/internal/enum"
	"github.com/kiwari-pos/pedidos-web/internal/session"
	"github.com/kiwari-pos/pedidos-web/internal/ui"
)

// Notifier pushes events to a session's open pages.
// Satisfied by *ws.Hub.
type Notifier interface {
	Notify(sessionID uuid.UUID, eventType string, payload any) error
}

type screenUpdate struct {
	Tab enum.Tab `json:"tab"`
}

// Deleter runs confirmed deletions in the background. The backend call runs
// off the session lock and cannot be cancelled once started; the outcome is
// applied under the lock and the session's pages are told to re-render.
type Deleter struct {
	notifier Notifier
	wg       sync.WaitGroup
}

func NewDeleter(notifier Notifier) *Deleter {
	return &Deleter{notifier: notifier}
}

// Start launches del for sess. label names the target in logs.
func (d *Deleter) Start(ctx context.Context, sess *session.Session, del ui.Deletion, label string) {
	ctx = context.WithoutCancel(ctx)
	d.wg.Add(1)
	go func() {
		defer d.wg.Done()

		err := del.Run(ctx)
		if err != nil {
			log.Printf("ERROR: delete %s: %v", label, err)
		}

		var tab enum.Tab
		sess.Do(func(sh *ui.Shell) {
			del.Finish(err)
			tab = sh.Active()
		})

		if d.notifier == nil {
			return
		}
		if err := d.notifier.Notify(sess.ID, enum.EventScreenUpdated, screenUpdate{Tab: tab}); err != nil {
			log.Printf("ERROR: notify session %s: %v", sess.ID, err)
		}
	}()
}

// Wait blocks until every started deletion has finished.
func (d *Deleter) Wait() {
	d.wg.Wait()
}
