package chainstream

// BlockNotification signals that a new block was observed on the chain.
type BlockNotification struct {
	Slot uint64 // Slot of the observed block; non-decreasing along a subscription
}

// BlockEvent is one element of a block subscription. Exactly one of the two
// fields is meaningful: when Err is nil the element is a notification,
// otherwise it is a stream-level error for this element only and the
// subscription keeps running.
type BlockEvent struct {
	Notification BlockNotification // Valid only when Err is nil
	Err          error             // Per-element failure, wraps ErrStream
}

// IsError reports whether the event carries a stream error instead of a notification.
func (e BlockEvent) IsError() bool {
	return e.Err != nil
}
