/* Copyright 2020 Freerware
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package restmachine

import (
	"context"
	"errors"
	"net/http"
)

// errNoProducer indicates content_types_provided chose a media type
// whose ProvidedType carries no Producer, a handler defect.
var errNoProducer = errors.New("restmachine: chosen provided type has no producer")

// errNoAcceptor indicates the acceptor path chose a media type whose
// AcceptedType carries no Acceptor, a handler defect.
var errNoAcceptor = errors.New("restmachine: chosen accepted type has no acceptor")

// Context is the request view and response builder the decision engine
// hands to every Resource callback. It borrows the request and the
// handler state exclusively for the lifetime of one request; the engine
// never retains a reference after the response is sent.
type Context struct {
	// Request is the in-flight HTTP request. Callbacks may read it but
	// must not assume it survives beyond their own invocation.
	Request *http.Request

	// State is the opaque value a Resource threads through its own
	// callbacks. The engine never inspects it.
	State interface{}

	rw     http.ResponseWriter
	header http.Header
	status int
	sent   bool
}

func newContext(w http.ResponseWriter, r *http.Request, state interface{}) *Context {
	return &Context{Request: r, State: state, rw: w, header: http.Header{}}
}

// ResponseWriter returns the underlying http.ResponseWriter and marks
// the response as sent, so the finalizer never rewrites what the
// callback commits directly. Callbacks that need to stream a body
// themselves (e.g. a chunked producer with framing the Body type can't
// express) use this escape hatch instead of returning a Body.
func (c *Context) ResponseWriter() http.ResponseWriter {
	if !c.sent {
		for k, vs := range c.header {
			for _, v := range vs {
				c.rw.Header().Add(k, v)
			}
		}
		status := c.status
		if status == 0 {
			status = http.StatusOK
		}
		c.rw.WriteHeader(status)
		c.sent = true
	}
	return c.rw
}

// Context returns the request's context.Context, for honoring
// cancellation inside long-running callbacks.
func (c *Context) Context() context.Context {
	return c.Request.Context()
}

// Header returns the response headers accumulated so far. They are
// buffered here rather than written directly to the wire, so that a
// short-circuit to an error status never leaves a partially committed
// response behind.
func (c *Context) Header() http.Header {
	return c.header
}

// SetStatus records the status the engine should emit if this callback
// causes the request to terminate. It has no effect on a callback whose
// outcome does not end the request.
func (c *Context) SetStatus(status int) {
	c.status = status
}

// Status returns the status most recently recorded with SetStatus, or
// zero if none has been set yet.
func (c *Context) Status() int {
	return c.status
}

// Run drives res through the decision engine for the request r, writing
// the resulting response to w. state is the initial handler state
// threaded through every callback; the engine never inspects it.
//
// Run returns a non-nil error only to surface a terminal condition to
// the host's own logging layer (see terminal in engine.go) — the HTTP
// response is always fully committed to w before Run returns.
func Run(w http.ResponseWriter, r *http.Request, res Resource, state interface{}, opts ...Option) error {
	e := newEngine(opts...)
	return e.run(w, r, res, state)
}
