package cookies

import "net/http"

// Middleware installs a [Jar] for every request and flushes its staged
// cookies when the response headers are committed.
//
// If the inner handler returns without writing anything, the staged cookies
// are flushed into the header map before net/http sends the implicit
// 200 response.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		jar := NewJar(r)
		fw := &flushWriter{ResponseWriter: w, jar: jar}

		next.ServeHTTP(fw, r.WithContext(WithJar(r.Context(), jar)))

		if !fw.wroteHeader && r.Context().Err() == nil {
			jar.Flush(w.Header())
		}
	})
}

// flushWriter flushes the jar right before the status line is written.
type flushWriter struct {
	http.ResponseWriter

	jar         *Jar
	wroteHeader bool
}

func (w *flushWriter) WriteHeader(statusCode int) {
	if w.wroteHeader {
		return
	}
	w.wroteHeader = true
	w.jar.Flush(w.Header())
	w.ResponseWriter.WriteHeader(statusCode)
}

func (w *flushWriter) Write(b []byte) (int, error) {
	if !w.wroteHeader {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

// Unwrap exposes the underlying writer to [http.ResponseController].
func (w *flushWriter) Unwrap() http.ResponseWriter {
	return w.ResponseWriter
}
