package http

import (
	"compress/gzip"
	"io"
	"net/http"
	"strings"
	"sync"
)

// Writers and readers are pooled: entry listings are the hot path and their
// JSON bodies compress well, so the middleware runs on nearly every response.
var gzipWriterPool = sync.Pool{
	New: func() any {
		return gzip.NewWriter(nil)
	},
}

var gzipReaderPool = sync.Pool{
	New: func() any {
		return new(gzip.Reader)
	},
}

// withGZip transparently decompresses gzip request bodies and compresses
// responses for clients that advertise gzip support. Handlers below never
// see the encoding: the Content-Encoding request header is stripped after
// the body is wrapped, so JSON decoding works unchanged.
func withGZip(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.Header.Get("Content-Encoding"), "gzip") && r.Body != nil {
			if !decompressRequestBody(w, r) {
				return
			}
		}

		if !strings.Contains(r.Header.Get("Accept-Encoding"), "gzip") {
			next.ServeHTTP(w, r)
			return
		}

		gzipWriter := gzipWriterPool.Get().(*gzip.Writer)
		gzipWriter.Reset(w)

		next.ServeHTTP(&gzipResponseWriter{ResponseWriter: w, gzipWriter: gzipWriter}, r)

		gzipWriter.Close()
		gzipWriterPool.Put(gzipWriter)
	})
}

// decompressRequestBody swaps the request body for a pooled gzip reader.
// A body that does not start with a valid gzip header gets a 400 and the
// reader goes straight back to the pool; the return value tells the caller
// whether to continue serving.
func decompressRequestBody(w http.ResponseWriter, r *http.Request) bool {
	gzipReader := gzipReaderPool.Get().(*gzip.Reader)
	if err := gzipReader.Reset(r.Body); err != nil {
		gzipReaderPool.Put(gzipReader)
		http.Error(w, "Invalid gzip data", http.StatusBadRequest)
		return false
	}

	r.Body = &wrappedReadCloser{
		Reader: gzipReader,
		OnClose: func() {
			gzipReader.Close()
			gzipReaderPool.Put(gzipReader)
		},
	}
	r.Header.Del("Content-Encoding")
	return true
}

// wrappedReadCloser lets the pooled gzip reader be returned exactly once,
// when the server closes the request body.
type wrappedReadCloser struct {
	io.Reader
	OnClose func()
}

func (w *wrappedReadCloser) Close() error {
	if w.OnClose != nil {
		w.OnClose()
	}
	return nil
}

type gzipResponseWriter struct {
	http.ResponseWriter
	gzipWriter *gzip.Writer
}

func (w *gzipResponseWriter) WriteHeader(statusCode int) {
	w.Header().Set("Content-Encoding", "gzip")
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *gzipResponseWriter) Write(data []byte) (int, error) {
	return w.gzipWriter.Write(data)
}

func (w *gzipResponseWriter) Close() error {
	return w.gzipWriter.Close()
}
