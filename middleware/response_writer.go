package middleware

import (
	"bufio"
	"net"
	"net/http"
)

// ResponseWriter wraps http.ResponseWriter to capture the status code and
// the number of bytes written, for request logging.
type ResponseWriter struct {
	http.ResponseWriter
	status      int
	bytes       int
	wroteHeader bool
}

// NewResponseWriter wraps w. The status defaults to 200 until WriteHeader
// says otherwise.
func NewResponseWriter(w http.ResponseWriter) *ResponseWriter {
	return &ResponseWriter{
		ResponseWriter: w,
		status:         http.StatusOK,
	}
}

// WriteHeader captures the status code. Repeat calls are dropped, matching
// net/http's superfluous-WriteHeader behavior without the log noise.
func (w *ResponseWriter) WriteHeader(code int) {
	if w.wroteHeader {
		return
	}

	w.status = code
	w.wroteHeader = true
	w.ResponseWriter.WriteHeader(code)
}

// Write writes data and accumulates the byte count.
func (w *ResponseWriter) Write(data []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}

	n, err := w.ResponseWriter.Write(data)
	w.bytes += n

	return n, err
}

// Status returns the captured HTTP status code.
func (w *ResponseWriter) Status() int {
	return w.status
}

// BytesWritten returns the number of response body bytes written so far.
func (w *ResponseWriter) BytesWritten() int {
	return w.bytes
}

// Written reports whether the header has been sent.
func (w *ResponseWriter) Written() bool {
	return w.wroteHeader
}

// Unwrap returns the underlying writer, so http.ResponseController can
// reach interfaces this wrapper does not re-implement.
func (w *ResponseWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}

// Flush implements http.Flusher.
func (w *ResponseWriter) Flush() {
	if flusher, ok := w.ResponseWriter.(http.Flusher); ok {
		flusher.Flush()
	}
}

// Hijack implements http.Hijacker.
func (w *ResponseWriter) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	if hijacker, ok := w.ResponseWriter.(http.Hijacker); ok {
		return hijacker.Hijack()
	}

	return nil, nil, http.ErrNotSupported
}
