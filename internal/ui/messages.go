package ui

import (
	"context"
	"fmt"
	"strings"

	"github.com/kiwari-pos/pedidos-web/internal/backend"
)

const (
	msgInvalidData  = "Datos inválidos"
	msgInvalidID    = "Por favor ingrese un ID válido"
	msgLookupFailed = "Error al buscar el pedido"
)

// saveError picks the banner for a failed create or update: the body's
// validation list first, then status-specific fallbacks. notFound is used for
// a 404 when non-empty; creates pass "".
func saveError(err error, notFound, conflict, fallback string) string {
	if errs := backend.BodyErrors(err); len(errs) > 0 {
		return strings.Join(errs, ", ")
	}
	msg := backend.BodyMessage(err)
	switch {
	case notFound != "" && backend.IsNotFound(err):
		return notFound
	case backend.IsConflict(err):
		return or(msg, conflict)
	case backend.IsBadRequest(err):
		return or(msg, msgInvalidData)
	}
	return or(msg, fallback)
}

func orderNotFound(id int) string {
	return fmt.Sprintf("No se encontró el pedido con ID %d", id)
}

func or(msg, fallback string) string {
	if msg != "" {
		return msg
	}
	return fallback
}

func verb(editing bool) string {
	if editing {
		return "actualizar"
	}
	return "crear"
}

func pastVerb(editing bool) string {
	if editing {
		return "actualizado"
	}
	return "creado"
}

// Deletion is a confirmed delete. Run performs the backend call and may be
// executed off the session lock; Finish applies its outcome to the screen and
// must be called under it.
type Deletion struct {
	Run    func(ctx context.Context) error
	Finish func(err error)
}

// Execute runs the deletion synchronously.
func (d Deletion) Execute(ctx context.Context) error {
	err := d.Run(ctx)
	d.Finish(err)
	return err
}
