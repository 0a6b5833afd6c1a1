// Package progress provides utilities for tracking upload progress.
package progress

import "io"

// chunkSize caps each read so the accumulator advances in fixed increments
// regardless of the copy buffer the driver happens to use.
const chunkSize = 4 * 1024

// DefaultThreshold is the accumulated byte count that triggers an event.
const DefaultThreshold = 1 << 20

// Event carries the running totals for one progress notification.
type Event struct {
	// Seq is the 1-based event sequence number within one upload.
	Seq int64
	// Bytes is the cumulative bytes read so far.
	Bytes int64
	// Delta is the bytes read since the previous event.
	Delta int64
	// Total is the expected source length.
	Total int64
	// Percent is Bytes/Total*100, or 0 when Total is unknown.
	Percent float64
}

// Callback is called to report progress during an upload.
type Callback func(Event)

// Reader wraps an io.Reader, counts bytes read in fixed-size chunks, and
// emits an event each time the accumulated count reaches the threshold or
// the final byte of the source has been read. A source that runs short of
// the declared total still flushes its remaining bytes when EOF is seen.
// Sequence numbers start at 1 and the deltas of all emitted events sum to
// the bytes read.
type Reader struct {
	reader    io.Reader
	callback  Callback
	total     int64
	threshold int64
	read      int64
	pending   int64
	seq       int64
}

// NewReader creates a progress-tracking reader.
// The total parameter should be the expected size. A threshold <= 0 falls
// back to DefaultThreshold.
func NewReader(r io.Reader, total, threshold int64, callback Callback) *Reader {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Reader{
		reader:    r,
		callback:  callback,
		total:     total,
		threshold: threshold,
	}
}

// Read implements io.Reader, capping each read at the chunk size.
func (r *Reader) Read(p []byte) (n int, err error) {
	if len(p) > chunkSize {
		p = p[:chunkSize]
	}
	n, err = r.reader.Read(p)
	if n > 0 {
		r.read += int64(n)
		r.pending += int64(n)
		if r.callback != nil && (r.pending >= r.threshold || r.read == r.total) {
			r.flush()
		}
	}
	// A short source never satisfies the completion condition above; report
	// whatever accumulated before EOF rather than dropping the final event.
	if err == io.EOF && r.callback != nil && r.pending > 0 {
		r.flush()
	}
	return n, err
}

// flush emits one event with the accumulated delta and resets the accumulator.
func (r *Reader) flush() {
	r.seq++
	ev := Event{
		Seq:   r.seq,
		Bytes: r.read,
		Delta: r.pending,
		Total: r.total,
	}
	if r.total > 0 {
		ev.Percent = float64(r.read) / float64(r.total) * 100
	}
	r.callback(ev)
	r.pending = 0
}

// Close closes the underlying reader if it implements io.Closer.
func (r *Reader) Close() error {
	if closer, ok := r.reader.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}
