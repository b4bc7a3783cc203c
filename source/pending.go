package source

import "github.com/jtarrio/signals/internal/buffer"

// ErrTransferCanceled is returned by a pending or future read once a
// source has been closed (spec §4.8, §7).
var ErrTransferCanceled = buffer.ErrTransferCanceled

// ErrTooManyReads is returned synchronously when a source's pending-read
// ring is already at capacity (spec §4.8, §7).
var ErrTooManyReads = buffer.ErrTooManyReads
