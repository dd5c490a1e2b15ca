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

package header

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEmptyContentType indicates that the Content-Type header cannot be
// empty.
var ErrEmptyContentType = errors.New("content type cannot be empty")

// ContentType represents the Content-Type header carried on a request
// body. Unlike MediaRange, it has no quality value and no wildcards; a
// request either declares a concrete type or the header is absent.
type ContentType struct {
	t      string
	subT   string
	params map[string]string
}

// NewContentType parses a Content-Type header value.
func NewContentType(raw string) (ContentType, error) {
	if len(strings.TrimSpace(raw)) == 0 {
		return ContentType{}, ErrEmptyContentType
	}
	t, subT, params, err := parseMediaType(raw)
	if err != nil {
		return ContentType{}, err
	}
	if charset, ok := params["charset"]; ok {
		params["charset"] = strings.ToLower(charset)
	}
	return ContentType{t: t, subT: subT, params: params}, nil
}

// Type retrieves the top-level type.
func (ct ContentType) Type() string { return ct.t }

// SubType retrieves the subtype.
func (ct ContentType) SubType() string { return ct.subT }

// Charset retrieves the charset parameter, if present.
func (ct ContentType) Charset() (string, bool) {
	c, ok := ct.params["charset"]
	return c, ok
}

// Param retrieves the value of the provided parameter.
func (ct ContentType) Param(p string) (string, bool) {
	v, ok := ct.params[strings.ToLower(p)]
	return v, ok
}

// MediaType provides the "type/subtype" without parameters.
func (ct ContentType) MediaType() string {
	return fmt.Sprintf("%s/%s", ct.t, ct.subT)
}

// String provides a textual representation of the content type.
func (ct ContentType) String() string {
	s := ct.MediaType()
	for p, v := range ct.params {
		s = fmt.Sprintf("%s;%s=%s", s, p, v)
	}
	return s
}
