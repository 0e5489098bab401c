// Package images assigns stock photography to pages without per-page
// configuration.
package images

import (
	"fmt"
	"sync"
)

// DefaultKey names the list used for services without their own images.
const DefaultKey = "default"

// Selector maps service slugs to ordered image lists. It is immutable after
// construction and safe for concurrent use.
type Selector struct {
	lists map[string][]string
}

// NewSelector copies lists into a Selector. Every list must be non-empty and
// a DefaultKey list must be present.
func NewSelector(lists map[string][]string) (*Selector, error) {
	if len(lists[DefaultKey]) == 0 {
		return nil, fmt.Errorf("image lists must include a non-empty %q entry", DefaultKey)
	}
	s := &Selector{lists: make(map[string][]string, len(lists))}
	for key, list := range lists {
		if len(list) == 0 {
			return nil, fmt.Errorf("image list %q is empty", key)
		}
		s.lists[key] = append([]string(nil), list...)
	}
	return s, nil
}

// Images returns the candidate list for serviceSlug, or the default list.
func (s *Selector) Images(serviceSlug string) []string {
	return append([]string(nil), s.candidates(serviceSlug)...)
}

// Image returns list[index mod len(list)] for serviceSlug. Negative indexes
// wrap the same way.
func (s *Selector) Image(serviceSlug string, index int) string {
	list := s.candidates(serviceSlug)
	return list[wrap(index, len(list))]
}

func (s *Selector) candidates(serviceSlug string) []string {
	if list, ok := s.lists[serviceSlug]; ok {
		return list
	}
	return s.lists[DefaultKey]
}

func wrap(index, n int) int {
	i := index % n
	if i < 0 {
		i += n
	}
	return i
}

// NewAllocator returns an empty allocation context backed by s.
func (s *Selector) NewAllocator() *Allocator {
	return &Allocator{selector: s, dispensed: make(map[string]struct{})}
}

// Allocator hands out images so that a reference is not repeated until a
// service's candidates are exhausted. Create one per page or generation pass
// and pass it explicitly; allocators never share state.
type Allocator struct {
	selector *Selector

	mu        sync.Mutex
	dispensed map[string]struct{}
}

// Unique returns the first candidate for serviceSlug not yet dispensed by this
// allocator and marks it. Once every candidate has been dispensed it falls
// back to Selector.Image(serviceSlug, index).
func (a *Allocator) Unique(serviceSlug string, index int) string {
	a.mu.Lock()
	defer a.mu.Unlock()

	for _, img := range a.selector.candidates(serviceSlug) {
		if _, used := a.dispensed[img]; !used {
			a.dispensed[img] = struct{}{}
			return img
		}
	}
	return a.selector.Image(serviceSlug, index)
}

// Dispensed reports how many distinct references have been handed out.
func (a *Allocator) Dispensed() int {
	a.mu.Lock()
	defer a.mu.Unlock()
	return len(a.dispensed)
}

// Reset forgets every dispensed reference.
func (a *Allocator) Reset() {
	a.mu.Lock()
	defer a.mu.Unlock()
	clear(a.dispensed)
}
