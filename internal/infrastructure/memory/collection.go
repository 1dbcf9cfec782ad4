// Package memory implementa los repositorios en memoria. Sirve como backend de
// demostración y como doble de pruebas; opcionalmente simula latencia de red.
package memory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/jhoicas/Inventario-dashboard/internal/domain"
)

// accessor lee y escribe los campos comunes de una entidad.
type accessor[T any] struct {
	label string
	id    func(*T) string
	setID func(*T, string)
	touch func(e *T, now time.Time, created bool)
}

// collection guarda copias de las entidades en orden de inserción.
type collection[T any] struct {
	mu      sync.RWMutex
	items   map[string]T
	order   []string
	latency time.Duration
	acc     accessor[T]
	now     func() time.Time
}

func newCollection[T any](latency time.Duration, acc accessor[T]) *collection[T] {
	return &collection[T]{
		items:   make(map[string]T),
		latency: latency,
		acc:     acc,
		now:     func() time.Time { return time.Now().UTC() },
	}
}

// wait simula la latencia del backend remoto respetando la cancelación.
func (c *collection[T]) wait(ctx context.Context) error {
	if c.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(c.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

func (c *collection[T]) list(ctx context.Context, keep func(*T) bool) ([]*T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]*T, 0, len(c.order))
	for _, id := range c.order {
		e := c.items[id]
		if keep == nil || keep(&e) {
			out = append(out, &e)
		}
	}
	return out, nil
}

func (c *collection[T]) get(ctx context.Context, id string) (*T, error) {
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	e, ok := c.items[id]
	if !ok {
		return nil, fmt.Errorf("%s %s: %w", c.acc.label, id, domain.ErrNotFound)
	}
	return &e, nil
}

func (c *collection[T]) create(ctx context.Context, in *T) (*T, error) {
	if in == nil {
		return nil, fmt.Errorf("%s: %w", c.acc.label, domain.ErrInvalidInput)
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	e := *in
	if c.acc.id(&e) == "" {
		c.acc.setID(&e, uuid.New().String())
	}
	c.acc.touch(&e, c.now(), true)

	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.acc.id(&e)
	if _, exists := c.items[id]; exists {
		return nil, fmt.Errorf("%s %s: %w", c.acc.label, id, domain.ErrDuplicate)
	}
	c.items[id] = e
	c.order = append(c.order, id)
	return &e, nil
}

// update reemplaza la copia completa; la última escritura gana.
func (c *collection[T]) update(ctx context.Context, in *T) (*T, error) {
	if in == nil || c.acc.id(in) == "" {
		return nil, fmt.Errorf("%s: id vacío: %w", c.acc.label, domain.ErrInvalidInput)
	}
	if err := c.wait(ctx); err != nil {
		return nil, err
	}
	e := *in
	c.acc.touch(&e, c.now(), false)

	c.mu.Lock()
	defer c.mu.Unlock()
	id := c.acc.id(&e)
	if _, ok := c.items[id]; !ok {
		return nil, fmt.Errorf("%s %s: %w", c.acc.label, id, domain.ErrNotFound)
	}
	c.items[id] = e
	return &e, nil
}

// delete elimina todos los ids o ninguno.
func (c *collection[T]) delete(ctx context.Context, ids []string) error {
	if err := c.wait(ctx); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, id := range ids {
		if _, ok := c.items[id]; !ok {
			return fmt.Errorf("%s %s: %w", c.acc.label, id, domain.ErrNotFound)
		}
	}
	drop := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		delete(c.items, id)
		drop[id] = struct{}{}
	}
	kept := c.order[:0]
	for _, id := range c.order {
		if _, gone := drop[id]; !gone {
			kept = append(kept, id)
		}
	}
	c.order = kept
	return nil
}
