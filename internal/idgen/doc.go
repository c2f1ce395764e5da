// Package idgen wraps the UUID generator used for run identifiers so that
// it can be stubbed in tests. It lives under internal because callers must
// treat identifiers as opaque strings.
package idgen
