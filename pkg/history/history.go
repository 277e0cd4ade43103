// Package history tracks navigation state for a router.
// A Strategy selects how locations are reflected in URLs: browser history
// uses real paths, hash history keeps the location in the URL fragment, and
// memory history keeps it in process only.
package history

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

var (
	// ErrUnsupported indicates an unknown history strategy.
	ErrUnsupported = errors.New("history: unsupported strategy")

	// ErrInvalidBase indicates a base path that is not absolute.
	ErrInvalidBase = errors.New("history: invalid base path")
)

// Strategy selects the navigation semantics of a History.
type Strategy string

// History strategy constants.
const (
	StrategyBrowser Strategy = "browser"
	StrategyHash    Strategy = "hash"
	StrategyMemory  Strategy = "memory"
)

// Validate checks if the strategy is supported.
func (s Strategy) Validate() error {
	switch s {
	case StrategyBrowser, StrategyHash, StrategyMemory:
		return nil
	default:
		return fmt.Errorf("%w: %s (must be browser, hash, or memory)", ErrUnsupported, s)
	}
}

// History is a navigation stack with a current location.
type History interface {
	Strategy() Strategy
	Location() string
	Push(path string)
	Replace(path string)
	Back() bool
	Forward() bool
	Href(path string) string
}

type stack struct {
	mu       sync.RWMutex
	strategy Strategy
	base     string
	entries  []string
	index    int
}

// New creates a History for the strategy rooted at base.
// The initial location is "/".
func New(strategy Strategy, base string) (History, error) {
	if err := strategy.Validate(); err != nil {
		return nil, err
	}

	base, err := normalizeBase(base)
	if err != nil {
		return nil, err
	}

	return &stack{
		strategy: strategy,
		base:     base,
		entries:  []string{"/"},
	}, nil
}

func (s *stack) Strategy() Strategy {
	return s.strategy
}

func (s *stack) Location() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[s.index]
}

// Push adds a location after the current one, discarding forward entries.
func (s *stack) Push(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries[:s.index+1], path)
	s.index++
}

func (s *stack) Replace(path string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[s.index] = path
}

func (s *stack) Back() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == 0 {
		return false
	}
	s.index--
	return true
}

func (s *stack) Forward() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.index == len(s.entries)-1 {
		return false
	}
	s.index++
	return true
}

// Href returns the URL form of path under this strategy.
func (s *stack) Href(path string) string {
	switch s.strategy {
	case StrategyBrowser:
		if s.base == "/" {
			return path
		}
		return s.base + path
	case StrategyHash:
		return s.base + "#" + path
	default:
		return path
	}
}

func normalizeBase(base string) (string, error) {
	if base == "" {
		return "/", nil
	}
	if !strings.HasPrefix(base, "/") || strings.ContainsAny(base, "?#") {
		return "", fmt.Errorf("%w: %q", ErrInvalidBase, base)
	}
	if base != "/" {
		base = strings.TrimSuffix(base, "/")
	}
	return base, nil
}
