package decoder

import (
	"context"

	"github.com/kestrelgen/gedkit/cancel"
	"github.com/kestrelgen/gedkit/charset"
)

// ProgressCallback receives byte-level progress from the raw input stream,
// e.g. to drive a progress bar keyed off file size rather than line count.
// totalSize is -1 when the source's size is not known in advance.
type ProgressCallback func(bytesRead, totalSize int64)

// Options configures a Decode call.
type Options struct {
	// Context allows cancellation and timeout control.
	Context context.Context

	// MaxNestingDepth sets the maximum allowed nesting depth (default: 100).
	// This prevents stack overflow with malformed files.
	MaxNestingDepth int

	// StrictMode makes the decode return a *FatalError, alongside the
	// partial document, when any error-severity diagnostic was recorded.
	StrictMode bool

	// StrictLineBreaks records each tokenizer warning (leading whitespace
	// before a level) as a CodeStrictLineBreak warning; when it is off those
	// warnings are dropped. Line terminators are not checked: \n\r and bare
	// \r are accepted like \n and \r\n whether or not it is set.
	StrictLineBreaks bool

	// StrictCustomTags rejects underscore-prefixed vendor extension tags
	// (e.g. _APID, _FSFTID) as unknown tags instead of passing them
	// through silently.
	StrictCustomTags bool

	// ReadNotificationRate is how many logical lines elapse between parse
	// progress events. Zero means use charset's default of 500.
	ReadNotificationRate int

	// CancelFlag lets a caller running Decode on another goroutine request
	// early termination. A nil flag means cancellation is never requested.
	CancelFlag *cancel.Flag

	// FileObservers receive byte-level progress against the raw input
	// stream (e.g. to drive a file-size-based progress bar).
	FileObservers []ProgressCallback

	// ParseObservers receive line-level progress events from the
	// tokenizer, at the rate set by ReadNotificationRate.
	ParseObservers []charset.ProgressFunc
}

// DefaultOptions returns the default decoding options.
func DefaultOptions() *Options {
	return &Options{
		Context:         context.Background(),
		MaxNestingDepth: 100,
		StrictMode:      false,
	}
}
