package recordstore

import (
	"fmt"
	"strings"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// RemoteError falla de transporte o rechazo del backend. Coincide con domain.ErrRemote.
type RemoteError struct {
	Table      string
	Op         string
	StatusCode int // 0 si no hubo respuesta HTTP
	Message    string
	Err        error
}

func (e *RemoteError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "recordstore: %s %s", e.Op, e.Table)
	if e.StatusCode != 0 {
		fmt.Fprintf(&b, ": HTTP %d", e.StatusCode)
	}
	if e.Message != "" {
		b.WriteString(": " + e.Message)
	}
	if e.Err != nil {
		b.WriteString(": " + e.Err.Error())
	}
	return b.String()
}

// PublicMessage texto del backend sin detalles de transporte.
func (e *RemoteError) PublicMessage() string { return e.Message }

// Is permite errors.Is(err, domain.ErrRemote).
func (e *RemoteError) Is(target error) bool { return target == domain.ErrRemote }

func (e *RemoteError) Unwrap() error { return e.Err }

// RecordFailure un registro rechazado dentro de un lote.
type RecordFailure struct {
	Index   int
	Message string
}

// BatchError el lote se aceptó pero algún registro falló. Coincide con domain.ErrPartialBatch.
type BatchError struct {
	Table     string
	Op        string
	Succeeded int
	Failures  []RecordFailure
}

func (e *BatchError) Error() string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, fmt.Sprintf("#%d: %s", f.Index, f.Message))
	}
	return fmt.Sprintf("recordstore: %s %s: %d registro(s) fallaron (%s)",
		e.Op, e.Table, len(e.Failures), strings.Join(msgs, "; "))
}

// PublicMessage lista los registros rechazados, sin tabla ni operación.
func (e *BatchError) PublicMessage() string {
	msgs := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		msgs = append(msgs, fmt.Sprintf("#%d: %s", f.Index, f.Message))
	}
	return fmt.Sprintf("%d registro(s) fallaron: %s", len(e.Failures), strings.Join(msgs, "; "))
}

// Is permite errors.Is(err, domain.ErrPartialBatch).
func (e *BatchError) Is(target error) bool { return target == domain.ErrPartialBatch }
