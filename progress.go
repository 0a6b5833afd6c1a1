package ftpush

// ProgressEvent represents a progress update during a stream upload.
//
// Events are emitted each time the bytes accumulated since the previous
// event reach the configured threshold, and once more when the final byte
// of the source has been copied. For a single upload, Seq runs 1, 2, 3, …
// with no gaps and the DeltaBytes of all events sum to the source length.
type ProgressEvent struct {
	// Seq is the 1-based sequence number of this event within the upload.
	Seq int64
	// BytesTransferred is the cumulative bytes uploaded so far.
	BytesTransferred int64
	// DeltaBytes is the bytes uploaded since the previous event.
	DeltaBytes int64
	// TotalBytes is the total source length.
	TotalBytes int64
	// Percent is BytesTransferred/TotalBytes*100. It is only meaningful
	// when the source length is nonzero.
	Percent float64
}

// ProgressCallback is called during stream uploads to report progress.
// Implementations should be efficient as this may be called frequently.
type ProgressCallback func(event ProgressEvent)
