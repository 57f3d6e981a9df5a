package kconnect

// Cursor positions understood by the runtime's split readers.
const (
	PositionEarliest    = `earliest`
	PositionLatest      = `latest`
	PositionNever       = `never`
	PositionEventTime   = `event-time`
	PositionPublishTime = `publish-time`
)

// StartCursor marks where a source starts consuming.
type StartCursor struct {
	position  string
	timestamp int64
}

func EarliestStartCursor() StartCursor {
	return StartCursor{position: PositionEarliest}
}

func LatestStartCursor() StartCursor {
	return StartCursor{position: PositionLatest}
}

// TimestampStartCursor starts from the given publish time in epoch millis.
func TimestampStartCursor(millis int64) StartCursor {
	return StartCursor{position: PositionPublishTime, timestamp: millis}
}

func (c StartCursor) Position() string {
	return c.position
}

func (c StartCursor) Timestamp() int64 {
	return c.timestamp
}

// StopCursor marks where a source stops. A never cursor keeps the source
// unbounded, any other position bounds it.
type StopCursor struct {
	position  string
	timestamp int64
}

func NeverStopCursor() StopCursor {
	return StopCursor{position: PositionNever}
}

func LatestStopCursor() StopCursor {
	return StopCursor{position: PositionLatest}
}

// EventTimeStopCursor stops once records pass the given event time in epoch
// millis.
func EventTimeStopCursor(millis int64) StopCursor {
	return StopCursor{position: PositionEventTime, timestamp: millis}
}

func PublishTimeStopCursor(millis int64) StopCursor {
	return StopCursor{position: PositionPublishTime, timestamp: millis}
}

func (c StopCursor) Position() string {
	return c.position
}

func (c StopCursor) Timestamp() int64 {
	return c.timestamp
}
