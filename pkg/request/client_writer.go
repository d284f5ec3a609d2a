package request

import "net/http"

// ClientWriter wraps a http.ResponseWriter and remembers the status code written.
type ClientWriter struct {
	http.ResponseWriter

	statusCode  int
	wroteHeader bool
}

// NewClientWriter creates a new ClientWriter. The status code defaults to 200.
func NewClientWriter(w http.ResponseWriter) *ClientWriter {
	return &ClientWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK,
	}
}

// WriteHeader implements the http.ResponseWriter interface.
func (c *ClientWriter) WriteHeader(code int) {
	if c.wroteHeader {
		return
	}
	c.statusCode = code
	c.wroteHeader = true
	c.ResponseWriter.WriteHeader(code)
}

// Write implements the http.ResponseWriter interface.
func (c *ClientWriter) Write(b []byte) (int, error) {
	c.wroteHeader = true
	return c.ResponseWriter.Write(b)
}

// StatusCode returns the status code sent to the client.
func (c *ClientWriter) StatusCode() int {
	return c.statusCode
}
