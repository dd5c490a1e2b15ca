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
	"fmt"
	"sync"
	"time"

	"github.com/freerware/restmachine/internal/header"
)

// requestState is the transient, per-request state the decision engine
// mutates as it walks the node table. It is created at request entry and
// discarded once the response is sent; nothing here outlives a request.
type requestState struct {
	ctx *Context
	res Resource

	method string

	knownMethods   []string
	allowedMethods []string

	contentTypesProvided []ProvidedType
	chosenProvided       *ProvidedType

	languagesProvided []string
	chosenLanguage    string

	charsetsProvided []string
	chosenCharset    string

	contentTypesAccepted []AcceptedType
	chosenAccepted       *AcceptedType

	exists      bool
	newResource bool

	etagOnce sync.Once
	etagVal  header.EntityTag
	etagOK   bool
	etagErr  error

	lastModOnce   sync.Once
	lastModVal    time.Time
	lastModRaw    string
	lastModIsTime bool
	lastModOK     bool
	lastModErr    error

	expiresOnce   sync.Once
	expiresVal    time.Time
	expiresRaw    string
	expiresIsTime bool
	expiresOK     bool
	expiresErr    error

	body    Body
	bodySet bool
}

func newRequestState(ctx *Context, res Resource) *requestState {
	return &requestState{ctx: ctx, res: res, method: ctx.Request.Method}
}

// etag fetches and memoizes the handler's generate_etag result, invoked
// at most once per request regardless of how many conditional headers
// consult it (Testable Property 3). ok is false when the Resource has no
// GenerateETag callback at all.
func (s *requestState) etag(e *engine) (tag header.EntityTag, ok bool, err error) {
	if s.res.GenerateETag == nil {
		return header.EntityTag{}, false, nil
	}
	s.etagOnce.Do(func() {
		var et ETag
		ierr := e.invoker.Invoke(func() error {
			var cerr error
			et, cerr = s.res.GenerateETag(s.ctx)
			return cerr
		})
		if ierr != nil {
			s.etagErr = ierr
			return
		}
		if et.IsRaw {
			parsed, perr := header.ParseEntityTag(et.Raw)
			if perr != nil {
				s.etagErr = perr
				return
			}
			s.etagVal = parsed
		} else {
			s.etagVal = header.NewEntityTag(et.Weak, et.Opaque)
		}
		s.etagOK = true
	})
	return s.etagVal, s.etagOK, s.etagErr
}

// lastModified fetches and memoizes the handler's last_modified result.
func (s *requestState) lastModified(e *engine) (t time.Time, raw string, isTime, ok bool, err error) {
	if s.res.LastModified == nil {
		return time.Time{}, "", false, false, nil
	}
	s.lastModOnce.Do(func() {
		var d DateOrString
		ierr := e.invoker.Invoke(func() error {
			var cerr error
			d, cerr = s.res.LastModified(s.ctx)
			return cerr
		})
		if ierr != nil {
			s.lastModErr = ierr
			return
		}
		if !d.IsTime {
			if _, perr := header.ParseHTTPDate(d.Raw); perr != nil {
				s.lastModErr = fmt.Errorf("last_modified: %w", perr)
				return
			}
		}
		s.lastModVal, s.lastModRaw, s.lastModIsTime = d.Time, d.Raw, d.IsTime
		s.lastModOK = true
	})
	return s.lastModVal, s.lastModRaw, s.lastModIsTime, s.lastModOK, s.lastModErr
}

// expires fetches and memoizes the handler's expires result.
func (s *requestState) expires(e *engine) (t time.Time, raw string, isTime, ok bool, err error) {
	if s.res.Expires == nil {
		return time.Time{}, "", false, false, nil
	}
	s.expiresOnce.Do(func() {
		var d DateOrString
		ierr := e.invoker.Invoke(func() error {
			var cerr error
			d, cerr = s.res.Expires(s.ctx)
			return cerr
		})
		if ierr != nil {
			s.expiresErr = ierr
			return
		}
		if !d.IsTime {
			if _, perr := header.ParseHTTPDate(d.Raw); perr != nil {
				s.expiresErr = fmt.Errorf("expires: %w", perr)
				return
			}
		}
		s.expiresVal, s.expiresRaw, s.expiresIsTime = d.Time, d.Raw, d.IsTime
		s.expiresOK = true
	})
	return s.expiresVal, s.expiresRaw, s.expiresIsTime, s.expiresOK, s.expiresErr
}

// isSafe reports whether method is one of the safe methods, used by
// if_none_match to decide between 304 and 412.
func isSafe(method string) bool {
	switch method {
	case "GET", "HEAD", "OPTIONS":
		return true
	default:
		return false
	}
}

func contains(list []string, v string) bool {
	for _, s := range list {
		if s == v {
			return true
		}
	}
	return false
}

func dedupe(list []string) []string {
	seen := make(map[string]bool, len(list))
	out := make([]string, 0, len(list))
	for _, v := range list {
		if seen[v] {
			continue
		}
		seen[v] = true
		out = append(out, v)
	}
	return out
}
