// ABOUTME: Client-side filtered list controller shared by every entity screen
// ABOUTME: Derives a view from the full fetched set, live search text and status filter
package lists

import "strings"

// StatusAll disables the status filter.
const StatusAll = "all"

// Schema tells the controller where to look when filtering records of
// type T. SearchFields returns the designated searchable text fields;
// Status may be nil for entities without a status enum.
type Schema[T any] struct {
	SearchFields func(T) []string
	Status       func(T) string
}

// Controller holds the raw fetched collection plus the live filter
// inputs and recomputes the derived view on every change. The raw set
// is replaced wholesale by Reset after each reload; it is never
// patched in place.
type Controller[T any] struct {
	schema   Schema[T]
	all      []T
	search   string
	status   string
	filtered []T
}

func NewController[T any](schema Schema[T]) *Controller[T] {
	return &Controller[T]{schema: schema, status: StatusAll}
}

// Reset replaces the full collection, keeping the current filters.
func (c *Controller[T]) Reset(items []T) {
	c.all = items
	c.refilter()
}

// Clear empties the collection. Used when the initial load fails.
func (c *Controller[T]) Clear() {
	c.all = nil
	c.refilter()
}

// SetSearch updates the free-text filter and recomputes the view.
func (c *Controller[T]) SetSearch(text string) {
	c.search = text
	c.refilter()
}

// SetStatus updates the status filter. StatusAll (or "") matches every
// record.
func (c *Controller[T]) SetStatus(status string) {
	c.status = status
	c.refilter()
}

func (c *Controller[T]) Search() string { return c.search }
func (c *Controller[T]) Status() string { return c.status }

// All returns the unfiltered collection.
func (c *Controller[T]) All() []T { return c.all }

// View returns the derived filtered view.
func (c *Controller[T]) View() []T { return c.filtered }

func (c *Controller[T]) Len() int { return len(c.filtered) }

func (c *Controller[T]) refilter() {
	needle := strings.ToLower(strings.TrimSpace(c.search))

	filtered := make([]T, 0, len(c.all))
	for _, item := range c.all {
		if !c.matchesStatus(item) {
			continue
		}
		if needle != "" && !c.matchesSearch(item, needle) {
			continue
		}
		filtered = append(filtered, item)
	}
	c.filtered = filtered
}

func (c *Controller[T]) matchesStatus(item T) bool {
	if c.schema.Status == nil || c.status == "" || c.status == StatusAll {
		return true
	}
	return c.schema.Status(item) == c.status
}

// matchesSearch is a case-insensitive substring match over the
// designated fields.
func (c *Controller[T]) matchesSearch(item T, needle string) bool {
	for _, field := range c.schema.SearchFields(item) {
		if strings.Contains(strings.ToLower(field), needle) {
			return true
		}
	}
	return false
}
