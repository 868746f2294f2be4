package paint

import (
	"errors"
	"fmt"
	"strings"
)

// Structural misuse panics with one of these wrapped in a descriptive
// error, so recover sites can match with errors.Is.
var (
	ErrMismatchedPair     = errors.New("paint: end item does not pair with the open begin item")
	ErrUnclosedPair       = errors.New("paint: begin item left open at commit")
	ErrCachedItemNotFound = errors.New("paint: cached item not found in previous list")
	ErrItemTooLarge       = errors.New("paint: display item exceeds the item size budget")
	ErrVisualRectOrder    = errors.New("paint: visual rect appended out of order")
	ErrNothingToRemove    = errors.New("paint: no display item to remove")
)

func panicf(sentinel error, format string, args ...any) {
	panic(fmt.Errorf("%w: %s", sentinel, fmt.Sprintf(format, args...)))
}

// UnderInvalidationError reports a client whose cached display items no
// longer match what it paints. The controller panics with it when
// under-invalidation checking is enabled.
type UnderInvalidationError struct {
	// Prefix names the enclosing cached subsequence, if any.
	Prefix  string
	Message string
	Client  string
	New     string
	Old     string
}

func (e *UnderInvalidationError) Error() string {
	var b strings.Builder
	if e.Prefix != "" {
		b.WriteString(e.Prefix)
		b.WriteByte(' ')
	}
	fmt.Fprintf(&b, "under-invalidation: %s: client %q", e.Message, e.Client)
	if e.New != "" {
		fmt.Fprintf(&b, "\n  new: %s", e.New)
	}
	if e.Old != "" {
		fmt.Fprintf(&b, "\n  old: %s", e.Old)
	}
	return b.String()
}
