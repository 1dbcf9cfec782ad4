package recordstore

import (
	"context"
	"fmt"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// codec traduce entre una entidad y su registro remoto.
type codec[T any] struct {
	spec   TableSpec
	label  string // prefijo de los errores
	decode func(Record) (*T, error)
	encode func(*T) Record
	id     func(*T) string
}

// tableStore operaciones CRUD tipadas sobre una tabla. Cada store concreto lo embebe.
type tableStore[T any] struct {
	client *Client
	codec  codec[T]
}

func (s tableStore[T]) fetch(ctx context.Context, params FetchParams) ([]*T, error) {
	params.Fields = s.codec.spec.Fields
	recs, err := s.client.Fetch(ctx, s.codec.spec.Name, params)
	if err != nil {
		return nil, fmt.Errorf("%s: listar: %w", s.codec.label, err)
	}
	out := make([]*T, 0, len(recs))
	for _, r := range recs {
		e, err := s.codec.decode(r)
		if err != nil {
			return nil, fmt.Errorf("%s: listar: registro %s: %w", s.codec.label, asString(r["Id"]), err)
		}
		out = append(out, e)
	}
	return out, nil
}

func (s tableStore[T]) get(ctx context.Context, id string) (*T, error) {
	rec, err := s.client.GetByID(ctx, s.codec.spec.Name, id, s.codec.spec.Fields)
	if err != nil {
		return nil, fmt.Errorf("%s: obtener: %w", s.codec.label, err)
	}
	e, err := s.codec.decode(rec)
	if err != nil {
		return nil, fmt.Errorf("%s: obtener %s: %w", s.codec.label, id, err)
	}
	return e, nil
}

func (s tableStore[T]) create(ctx context.Context, e *T) (*T, error) {
	rec := s.codec.spec.Sanitize(s.codec.encode(e))
	out, err := s.client.Create(ctx, s.codec.spec.Name, []Record{rec})
	if err != nil {
		return nil, fmt.Errorf("%s: crear: %w", s.codec.label, err)
	}
	return s.single("crear", out)
}

func (s tableStore[T]) update(ctx context.Context, e *T) (*T, error) {
	id := s.codec.id(e)
	if id == "" {
		return nil, fmt.Errorf("%s: actualizar: id vacío: %w", s.codec.label, domain.ErrInvalidInput)
	}
	rec := s.codec.encode(e)
	rec["Id"] = IDValue(id)
	out, err := s.client.Update(ctx, s.codec.spec.Name, []Record{s.codec.spec.SanitizeForUpdate(rec)})
	if err != nil {
		return nil, fmt.Errorf("%s: actualizar %s: %w", s.codec.label, id, err)
	}
	return s.single("actualizar", out)
}

func (s tableStore[T]) delete(ctx context.Context, ids []string) error {
	if err := s.client.Delete(ctx, s.codec.spec.Name, ids); err != nil {
		return fmt.Errorf("%s: eliminar: %w", s.codec.label, err)
	}
	return nil
}

func (s tableStore[T]) single(op string, out []Record) (*T, error) {
	if len(out) == 0 || out[0] == nil {
		return nil, fmt.Errorf("%s: %s: %w", s.codec.label, op,
			&RemoteError{Table: s.codec.spec.Name, Op: op, Message: "respuesta sin datos"})
	}
	e, err := s.codec.decode(out[0])
	if err != nil {
		return nil, fmt.Errorf("%s: %s: %w", s.codec.label, op, err)
	}
	return e, nil
}
