package lruk

import "fmt"

type constError string

// ErrInvalidCapacity may be returned from [New] and [NewK].
const ErrInvalidCapacity = constError("invalid capacity")

// ErrInvalidHistoryDepth may be returned from [NewK].
const ErrInvalidHistoryDepth = constError("invalid history depth")

func (errStr constError) Error() string { return string(errStr) }

func minCapacityError(capacity int) error {
	return fmt.Errorf(
		"%w: must be >=%d but %d was requested",
		ErrInvalidCapacity, MinimumCapacity, capacity)
}

func historyDepthError(depth int) error {
	return fmt.Errorf(
		"%w: must be >=1 but %d was requested",
		ErrInvalidHistoryDepth, depth)
}
