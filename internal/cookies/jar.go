package cookies

import (
	"context"
	"net/http"
)

type contextKey string

var jarKey = contextKey("cookieJar")

// Jar gives scoped access to the cookies of one request/response cycle.
//
// Reads go to the cookies sent with the request. Writes are staged and only
// reach the client when the response is committed; a later Set for the same
// cookie name replaces the earlier one. A Jar belongs to a single request and
// is not safe for concurrent use.
type Jar struct {
	request *http.Request

	staged    []*http.Cookie
	discarded bool
	flushed   bool
}

// NewJar returns a Jar reading the cookies of r.
func NewJar(r *http.Request) *Jar {
	return &Jar{request: r}
}

// Get returns the request cookie called name.
func (j *Jar) Get(name string) (*http.Cookie, bool) {
	c, err := j.request.Cookie(name)
	if err != nil {
		return nil, false
	}
	return c, true
}

// Set stages c for the response, replacing any cookie staged under the same
// name. Calls after the jar was flushed or discarded are ignored.
func (j *Jar) Set(c *http.Cookie) {
	if j.flushed || j.discarded || c == nil {
		return
	}

	for i, staged := range j.staged {
		if staged.Name == c.Name {
			j.staged[i] = c
			return
		}
	}
	j.staged = append(j.staged, c)
}

// Staged returns a copy of the cookies waiting to be flushed.
func (j *Jar) Staged() []*http.Cookie {
	out := make([]*http.Cookie, len(j.staged))
	copy(out, j.staged)
	return out
}

// Discard drops every staged mutation. Nothing staged so far, or later, will
// be written to the response.
func (j *Jar) Discard() {
	j.discarded = true
	j.staged = nil
}

// Discarded reports whether Discard was called.
func (j *Jar) Discarded() bool {
	return j.discarded
}

// Flush writes the staged cookies into h as Set-Cookie headers.
// It does so at most once per jar and reports whether this call flushed.
func (j *Jar) Flush(h http.Header) bool {
	if j.flushed {
		return false
	}
	j.flushed = true

	if j.discarded {
		return false
	}
	for _, c := range j.staged {
		if v := c.String(); v != "" {
			h.Add("Set-Cookie", v)
		}
	}
	return true
}

// WithJar returns a copy of ctx carrying j.
func WithJar(ctx context.Context, j *Jar) context.Context {
	return context.WithValue(ctx, jarKey, j)
}

// FromContext returns the Jar installed by [Middleware], if any.
func FromContext(ctx context.Context) (*Jar, bool) {
	j, ok := ctx.Value(jarKey).(*Jar)
	return j, ok && j != nil
}
