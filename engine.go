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
	"net/http"
	"strconv"

	"github.com/freerware/restmachine/clock"
	"github.com/freerware/restmachine/internal/header"
	"github.com/freerware/restmachine/internal/invoke"
	"github.com/freerware/restmachine/internal/respond"
	"github.com/uber-go/tally"
	"go.uber.org/zap"
)

var (
	scopeTagEngine           = map[string]string{"engine": "restmachine"}
	scopeNameEngineTimer     = "decide"
	scopeNameEngineStatus2xx = "decide.status.2xx"
	scopeNameEngineStatus3xx = "decide.status.3xx"
	scopeNameEngineStatus4xx = "decide.status.4xx"
	scopeNameEngineStatus5xx = "decide.status.5xx"
	scopeNameEnginePanic     = "decide.panic"
)

// statusClientClosedRequest mirrors nginx's 499, used when the request's
// context.Context is canceled before a node runs. Not in net/http's
// status const list since it's a de facto, not RFC, status.
const statusClientClosedRequest = 499

// terminal carries the final status of a decision walk up through Run,
// for the host's own logging/observability layer. The HTTP response
// itself has already been fully committed by the finalizer by the time
// Run returns one of these.
type terminal struct {
	Status int
}

func (t *terminal) Error() string {
	return "restmachine: terminated with status " + strconv.Itoa(t.Status)
}

// engine walks the decision node table for one request at a time. It
// holds no state between requests; everything it touches per-request
// lives on requestState.
type engine struct {
	knownMethods []string
	clock        clock.Clock
	logger       *zap.Logger
	scope        tally.Scope
	invoker      invoke.Invoker
	finalizer    respond.Finalizer
}

func newEngine(opts ...Option) *engine {
	o := Options{
		KnownMethods: defaultKnownMethods,
		Clock:        clock.System{},
		Logger:       zap.NewNop(),
		Scope:        tally.NoopScope,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &engine{
		knownMethods: o.KnownMethods,
		clock:        o.Clock,
		logger:       o.Logger,
		scope:        o.Scope.Tagged(scopeTagEngine),
	}
}

func (e *engine) run(w http.ResponseWriter, r *http.Request, res Resource, state interface{}) error {
	defer e.scope.Timer(scopeNameEngineTimer).Start().Stop()

	ctx := newContext(w, r, state)
	s := newRequestState(ctx, res)

	current := nodeServiceAvailable
	for current != "" {
		if cerr := r.Context().Err(); cerr != nil {
			e.logger.Info("request canceled before node ran",
				zap.String("node", current), zap.Error(cerr))
			ctx.SetStatus(statusClientClosedRequest)
			break
		}
		fn, known := nodes[current]
		if !known {
			e.logger.Error("decision node not found", zap.String("node", current))
			ctx.SetStatus(http.StatusInternalServerError)
			break
		}
		next, err := fn(e, s)
		if err == ErrStop {
			if ctx.status == 0 {
				ctx.SetStatus(http.StatusNoContent)
			}
			break
		}
		if err != nil {
			e.logger.Error("resource callback failed",
				zap.String("node", current), zap.Error(err))
			if err == invoke.ErrHandlerPanic {
				e.scope.Counter(scopeNameEnginePanic).Inc(1)
			}
			ctx.SetStatus(http.StatusInternalServerError)
			break
		}
		if next == "" {
			break
		}
		current = next
	}

	if ctx.status == 0 {
		ctx.SetStatus(http.StatusOK)
	}
	if !ctx.sent && ctx.header.Get("Date") == "" {
		ctx.header.Set("Date", header.FormatHTTPDate(e.clock.Now()))
	}

	resp := respond.Response{Status: ctx.status, Header: ctx.header}
	if s.bodySet {
		switch s.body.Kind {
		case BodyKindBytes:
			resp.Kind, resp.Bytes = respond.BodyBytes, s.body.Bytes
		case BodyKindChunks:
			resp.Kind, resp.Chunks = respond.BodyChunks, s.body.Chunks
		case BodyKindFile:
			resp.Kind, resp.FilePath, resp.ModTime = respond.BodyFile, s.body.FilePath, s.body.ModTime
		case BodyKindValue:
			resp.Kind, resp.Value = respond.BodyValue, s.body.Value
			resp.ValueContentType = ctx.header.Get("Content-Type")
		}
	}

	if ferr := e.finalizer.Finalize(w, r, ctx.sent, resp); ferr != nil {
		e.logger.Error("failed to finalize response", zap.Error(ferr))
		return ferr
	}

	e.logger.Info("request completed",
		zap.String("method", s.method),
		zap.String("path", r.URL.Path),
		zap.Int("status", ctx.status))
	e.scope.Counter(statusClassCounter(ctx.status)).Inc(1)
	return &terminal{Status: ctx.status}
}

func statusClassCounter(status int) string {
	switch {
	case status < 300:
		return scopeNameEngineStatus2xx
	case status < 400:
		return scopeNameEngineStatus3xx
	case status < 500:
		return scopeNameEngineStatus4xx
	default:
		return scopeNameEngineStatus5xx
	}
}

// --- callback invocation helpers -------------------------------------
//
// Each wraps a single optional Resource field: nil substitutes the
// documented default without ever invoking the Invoker, present calls
// through it so a panicking callback is recovered and mapped to a
// handler-defect error by the caller (see engine.run's centralized
// handling above).

func (e *engine) invokeBool(ctx *Context, fn func(*Context) (bool, error), def bool) (bool, error) {
	if fn == nil {
		return def, nil
	}
	var v bool
	err := e.invoker.Invoke(func() error {
		var cerr error
		v, cerr = fn(ctx)
		return cerr
	})
	return v, err
}

func (e *engine) invokeStrings(ctx *Context, fn func(*Context) ([]string, error), def []string) ([]string, error) {
	if fn == nil {
		return def, nil
	}
	var v []string
	err := e.invoker.Invoke(func() error {
		var cerr error
		v, cerr = fn(ctx)
		return cerr
	})
	return v, err
}

func (e *engine) invokeAuth(ctx *Context, fn func(*Context) (AuthResult, error)) (AuthResult, error) {
	if fn == nil {
		return Authorized(), nil
	}
	var v AuthResult
	err := e.invoker.Invoke(func() error {
		var cerr error
		v, cerr = fn(ctx)
		return cerr
	})
	return v, err
}

func (e *engine) invokeLocation(ctx *Context, fn func(*Context) (LocationResult, error), def LocationResult) (LocationResult, error) {
	if fn == nil {
		return def, nil
	}
	var v LocationResult
	err := e.invoker.Invoke(func() error {
		var cerr error
		v, cerr = fn(ctx)
		return cerr
	})
	return v, err
}

func (e *engine) invokeProvided(ctx *Context, fn func(*Context) ([]ProvidedType, error), def []ProvidedType) ([]ProvidedType, error) {
	if fn == nil {
		return def, nil
	}
	var v []ProvidedType
	err := e.invoker.Invoke(func() error {
		var cerr error
		v, cerr = fn(ctx)
		return cerr
	})
	return v, err
}

func (e *engine) invokeAccepted(ctx *Context, fn func(*Context) ([]AcceptedType, error)) ([]AcceptedType, error) {
	if fn == nil {
		return nil, nil
	}
	var v []AcceptedType
	err := e.invoker.Invoke(func() error {
		var cerr error
		v, cerr = fn(ctx)
		return cerr
	})
	return v, err
}

func (e *engine) invokeOptionsCallback(ctx *Context, fn func(*Context) error) error {
	if fn == nil {
		return nil
	}
	return e.invoker.Invoke(func() error {
		return fn(ctx)
	})
}
