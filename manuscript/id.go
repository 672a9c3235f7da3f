package manuscript

import (
	"fmt"
	"sync/atomic"

	"github.com/google/uuid"
)

// IDSource produces opaque identifiers unique within a project. It must be
// safe for concurrent use.
type IDSource func() string

// NewID returns time ordered UUID (v7), falling back to random one.
func NewID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// SequentialIDs returns source producing "<prefix>1", "<prefix>2", ... Used
// where output must be reproducible byte for byte.
func SequentialIDs(prefix string) IDSource {
	var n atomic.Uint64
	return func() string {
		return fmt.Sprintf("%s%d", prefix, n.Add(1))
	}
}
