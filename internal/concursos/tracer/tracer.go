// Package tracer provides a lightweight tracing abstraction for the lookup
// service.
//
// The service emits spans through this interface instead of the OpenTelemetry
// API directly, so tests can run with NoopTracer and production wires OTelTracer.
package tracer

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"time"

	"concursos/pkg/cpf"
)

// Span represents an active trace span.
type Span interface {
	// End completes the span, recording err when non-nil.
	// End must be called exactly once, typically via defer.
	End(err error)

	SetAttributes(attrs ...Attribute)
	AddEvent(name string, attrs ...Attribute)
}

// Tracer creates spans. Implementations must be safe for concurrent use.
type Tracer interface {
	// Start creates a new span with the given name and attributes.
	//
	// Example:
	//   ctx, span := tracer.Start(ctx, tracer.SpanLookupOpenings,
	//       tracer.String(tracer.AttrCPFHash, tracer.HashCPF(raw)),
	//   )
	//   defer span.End(nil)
	Start(ctx context.Context, name string, attrs ...Attribute) (context.Context, Span)
}

// Attribute represents a key-value pair attached to spans.
type Attribute struct {
	Key   string
	Value any
}

// String creates a string attribute.
func String(key, value string) Attribute {
	return Attribute{Key: key, Value: value}
}

// Bool creates a boolean attribute.
func Bool(key string, value bool) Attribute {
	return Attribute{Key: key, Value: value}
}

// Int creates an integer attribute.
func Int(key string, value int) Attribute {
	return Attribute{Key: key, Value: int64(value)}
}

// Duration creates a duration attribute in milliseconds.
func Duration(key string, value time.Duration) Attribute {
	return Attribute{Key: key, Value: value.Milliseconds()}
}

// HashCPF returns a short SHA-256 digest of the cleaned CPF so traces can be
// correlated without carrying the identifier itself.
func HashCPF(raw string) string {
	digits := cpf.Clean(raw)
	if digits == "" {
		return ""
	}
	hash := sha256.Sum256([]byte(digits))
	return hex.EncodeToString(hash[:8])
}

// Span names.
const (
	SpanLookupOpenings   = "lookup.openings"
	SpanLookupCandidates = "lookup.candidates"
	SpanLookupBatch      = "lookup.batch"
)

// Attribute keys.
const (
	AttrCPFHash          = "cpf_hash"
	AttrOpeningCode      = "opening_code"
	AttrStatus           = "lookup.status"
	AttrMatches          = "lookup.matches"
	AttrSimulatedLatency = "simulated_latency_ms"
	AttrBatchSize        = "batch.size"
)

// Event names.
const (
	EventKeyRejected = "lookup.key_rejected"
)
