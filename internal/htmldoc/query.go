package htmldoc

import (
	"fmt"
	"sync"

	"github.com/andybalholm/cascadia"
	"golang.org/x/net/html"
)

// QueryCache memoizes compiled selectors by their text.
// A selector is compiled at most once; failed compilations are not cached.
type QueryCache struct {
	mu       sync.RWMutex
	compiled map[string]cascadia.Matcher
}

// NewQueryCache returns an empty cache.
func NewQueryCache() *QueryCache {
	return &QueryCache{compiled: make(map[string]cascadia.Matcher)}
}

// Compile returns the compiled form of query.
func (c *QueryCache) Compile(query string) (cascadia.Matcher, error) {
	c.mu.RLock()
	m, ok := c.compiled[query]
	c.mu.RUnlock()
	if ok {
		return m, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if m, ok := c.compiled[query]; ok {
		return m, nil
	}
	group, err := cascadia.ParseGroup(query)
	if err != nil {
		return nil, fmt.Errorf("could not parse selector %q: %w", query, err)
	}
	c.compiled[query] = group
	return group, nil
}

// MustCompile is Compile for selectors written in the source; it panics on syntax errors.
func (c *QueryCache) MustCompile(query string) cascadia.Matcher {
	m, err := c.Compile(query)
	if err != nil {
		panic(err)
	}
	return m
}

// Len reports the number of compiled selectors.
func (c *QueryCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.compiled)
}

// All returns the descendants of n that match query, in document order.
func (c *QueryCache) All(n *html.Node, query string) []*html.Node {
	if n == nil {
		return nil
	}
	return cascadia.QueryAll(n, c.MustCompile(query))
}

// First returns the first descendant of n matching query, or nil.
func (c *QueryCache) First(n *html.Node, query string) *html.Node {
	if n == nil {
		return nil
	}
	return cascadia.Query(n, c.MustCompile(query))
}
