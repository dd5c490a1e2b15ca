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
	"fmt"
	"strings"
)

// MediaType represents a media type offered by a resource handler
// (content_types_provided, content_types_accepted) or carried by a
// Content-Type request header. Unlike MediaRange, a MediaType has no
// quality value; it may instead declare ParamsWildcard to mean "any
// accept-extension is acceptable", a sentinel kept distinct from the
// params map rather than overloading it with a magic key.
type MediaType struct {
	Type           string
	SubType        string
	Params         map[string]string
	ParamsWildcard bool
}

// NewMediaType parses a Content-Type header value (or a handler-declared
// media type string) into a MediaType. A bare "*" is rejected; only
// "type/subtype[;params]" and the wildcard forms "*/*" and "type/*" are
// accepted, matching the grammar the negotiation ranker expects for both
// client offers and server declarations.
func NewMediaType(raw string) (MediaType, error) {
	if len(strings.TrimSpace(raw)) == 0 {
		return MediaType{}, ErrEmptyMediaRange
	}
	t, subT, params, err := parseMediaType(raw)
	if err != nil {
		return MediaType{}, err
	}
	delete(params, "q")
	return MediaType{Type: t, SubType: subT, Params: params}, nil
}

// IsTypeWildcard indicates if the type is "*".
func (mt MediaType) IsTypeWildcard() bool { return mt.Type == "*" }

// IsSubTypeWildcard indicates if the subtype is "*".
func (mt MediaType) IsSubTypeWildcard() bool { return mt.SubType == "*" }

// String provides the textual representation of the media type.
func (mt MediaType) String() string {
	s := fmt.Sprintf("%s/%s", mt.Type, mt.SubType)
	if mt.ParamsWildcard {
		return s + ";*"
	}
	keys := make([]string, 0, len(mt.Params))
	for k := range mt.Params {
		keys = append(keys, k)
	}
	for _, k := range keys {
		s = fmt.Sprintf("%s;%s=%s", s, k, mt.Params[k])
	}
	return s
}
