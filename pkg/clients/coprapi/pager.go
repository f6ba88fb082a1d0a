package coprapi

import (
	"context"
)

// PageFunc fetches a single page of a listing; an empty pageToken addresses
// the first page and an empty nextPageToken marks the final page
type PageFunc[T any] func(ctx context.Context, pageToken string) (items []T, nextPageToken string, err error)

// Pager walks a paginated listing lazily, one page per network round trip,
// never fetching ahead of the page currently being consumed. A pager is finite
// and cannot be restarted once exhausted.
type Pager[T any] struct {
	fetch      PageFunc[T]
	current    []T
	currentIdx int
	nextToken  string
	started    bool
	done       bool
	err        error
}

// NewPager returns a Pager over the given page fetch function
func NewPager[T any](fetch PageFunc[T]) *Pager[T] {
	return &Pager[T]{
		fetch: fetch,
	}
}

// Next advances to the next item, fetching a new page only when the current
// one is consumed; it returns false once the listing is exhausted or a page
// fetch failed
func (p *Pager[T]) Next(ctx context.Context) bool {
	if p.currentIdx < len(p.current) {
		return true
	}

	if p.done {
		return false
	}

	if p.started && p.nextToken == "" {
		p.done = true
		return false
	}

	items, nextToken, err := p.fetch(ctx, p.nextToken)
	if err != nil {
		p.err = err
		p.done = true
		return false
	}

	p.started = true
	p.current = items
	p.currentIdx = 0
	p.nextToken = nextToken

	if len(items) == 0 {
		p.done = true
		return false
	}

	return true
}

// Value returns the current item and moves the cursor past it
func (p *Pager[T]) Value() T {
	if p.currentIdx < len(p.current) {
		value := p.current[p.currentIdx]
		p.currentIdx++
		return value
	}

	var zero T
	return zero
}

// Err returns the page fetch error that ended the iteration, if any
func (p *Pager[T]) Err() error {
	return p.err
}

// CollectAll drains the remaining items into a slice
func (p *Pager[T]) CollectAll(ctx context.Context) ([]T, error) {
	var items []T
	for p.Next(ctx) {
		items = append(items, p.Value())
	}

	return items, p.Err()
}
