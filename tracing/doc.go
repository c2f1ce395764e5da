// Package tracing integrates OpenTelemetry with the render engine. All
// instrumentation is kept in a separate package so that applications which
// do not require tracing can leave it uninitialised - spans started before
// Init are no-ops.
package tracing
