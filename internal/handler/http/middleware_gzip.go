package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// gzipWriters recycles compressors across requests; gzip.NewWriter allocates
// sizeable internal buffers.
var gzipWriters = sync.Pool{
	New: func() any { return gzip.NewWriter(io.Discard) },
}

// withGZip inflates gzip-encoded request bodies and compresses responses for
// clients that advertise gzip support in Accept-Encoding.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			body, err := gzip.NewReader(r.Body)
			if err != nil {
				http.Error(w, "malformed gzip body", http.StatusBadRequest)
				return
			}
			r.Body = body
			r.Header.Del("Content-Encoding")
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		compressor := gzipWriters.Get().(*gzip.Writer)
		compressor.Reset(w)
		defer func() {
			compressor.Close()
			gzipWriters.Put(compressor)
		}()

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, compressor: compressor}, r)
	})
}

type gzipResponseWriter struct {
	http.ResponseWriter
	compressor *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(code int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(code)
}

func (w *gzipResponseWriter) Write(b []byte) (int, error) {
	return w.compressor.Write(b)
}
