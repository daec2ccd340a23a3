// Package errors defines the ResourceFailure error type used across the
// module for environmental failures — a poisoned Background scheduler, a
// window or audio device that won't open. It does not attempt to wrap or
// deduplicate errors across layers; each Error carries a single Errno and
// its formatting arguments.
package errors
