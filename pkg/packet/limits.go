package packet

import "fmt"

const (
	defaultMaxDepth    = 1024
	defaultMaxChildren = MaxTotalLength // upper bound for any 15-bit group
	defaultMaxPackets  = 1 << 22

	strictMaxDepth    = 64
	strictMaxChildren = 256
	strictMaxPackets  = 1 << 14
)

// Limits bounds the size of a decoded tree. A zero field disables that check.
type Limits struct {
	// MaxDepth is the maximum nesting depth. The outermost packet has depth 1.
	MaxDepth int

	// MaxChildren is the maximum number of sub-packets of one operator.
	MaxChildren int

	// MaxPackets is the maximum number of packets in the whole tree.
	MaxPackets int
}

// DefaultLimits returns limits that accept any well-formed puzzle input.
func DefaultLimits() Limits {
	return Limits{
		MaxDepth:    defaultMaxDepth,
		MaxChildren: defaultMaxChildren,
		MaxPackets:  defaultMaxPackets,
	}
}

// StrictLimits returns conservative limits for untrusted input.
func StrictLimits() Limits {
	return Limits{
		MaxDepth:    strictMaxDepth,
		MaxChildren: strictMaxChildren,
		MaxPackets:  strictMaxPackets,
	}
}

// LimitError represents a limit validation failure.
type LimitError struct {
	Limit   string // Name of the limit that was exceeded
	Current int
	Maximum int
	Offset  int // bit offset of the packet that tripped the limit
}

func (e *LimitError) Error() string {
	return fmt.Sprintf("packet: limit exceeded at bit %d: %s is %d (max %d)",
		e.Offset, e.Limit, e.Current, e.Maximum)
}

// Is makes LimitError match ErrLimitExceeded.
func (e *LimitError) Is(target error) bool { return target == ErrLimitExceeded }

func exceeds(limit, n int) bool { return limit > 0 && n > limit }
