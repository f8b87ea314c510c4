package transport

import "time"

// Recorder receives one observation per HTTP exchange. Endpoint is the path
// template (e.g. "/my/ships/{shipSymbol}/orbit") so label cardinality stays bounded.
type Recorder interface {
	RecordRequest(method, endpoint string, statusCode int, duration time.Duration)
	RecordRetry(method, endpoint, reason string)
	RecordThrottleWait(method, endpoint string, wait time.Duration)
}

type noopRecorder struct{}

func (noopRecorder) RecordRequest(string, string, int, time.Duration) {}
func (noopRecorder) RecordRetry(string, string, string) {}
func (noopRecorder) RecordThrottleWait(string, string, time.Duration) {}
