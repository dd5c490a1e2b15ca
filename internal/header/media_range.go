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
	"mime"
	"strconv"
	"strings"
)

var (
	// defaultMediaRange is the default media range, "*/*".
	defaultMediaRange = MediaRange{
		t:      "*",
		subT:   "*",
		params: make(map[string]string),
		qValue: QualityValueMaximum,
	}

	// ErrEmptyMediaRange indicates that the media range cannot be empty.
	ErrEmptyMediaRange = errors.New("media range cannot be empty")
)

// MediaRange represents a client media type preference, as carried by one
// comma-separated element of an Accept header.
type MediaRange struct {
	t      string
	subT   string
	params map[string]string
	qValue QualityValue
}

// NewMediaRange parses a single Accept header element into a MediaRange.
func NewMediaRange(mediaRange string) (MediaRange, error) {
	return parseMediaRange(mediaRange)
}

// parseMediaRange parses a media range from the provided string.
func parseMediaRange(m string) (MediaRange, error) {
	if len(m) == 0 {
		return MediaRange{}, ErrEmptyMediaRange
	}
	// a bare "*" is shorthand for "*/*".
	if strings.TrimSpace(m) == "*" {
		m = "*/*"
	}
	t, subT, params, err := parseMediaType(m)
	if err != nil {
		return MediaRange{}, err
	}

	mr := MediaRange{
		t:      t,
		subT:   subT,
		params: params,
		qValue: QualityValueDefault,
	}
	if q, ok := params["q"]; ok {
		v, err := strconv.ParseFloat(q, 32)
		if err != nil {
			return MediaRange{}, err
		}
		qv, err := NewQualityValue(float32(v))
		if err != nil {
			return MediaRange{}, err
		}
		mr.qValue = qv
	}
	return mr, nil
}

// parseMediaType parses the type, subtype, and parameters of a media type
// expression, delegating the grammar to the standard library's mime
// package (RFC 2045 §5.1).
func parseMediaType(m string) (string, string, map[string]string, error) {
	mediaType, params, err := mime.ParseMediaType(m)
	if err != nil {
		return "", "", nil, err
	}

	var t, subT string
	parts := strings.SplitN(mediaType, "/", 2)
	t = parts[0]
	if len(parts) > 1 {
		subT = parts[1]
	}
	if subT == "" {
		return "", "", nil, fmt.Errorf("media type %q lacks a subtype", m)
	}
	return t, subT, params, nil
}

// Type retrieves the type of the media range.
func (mr MediaRange) Type() string { return mr.t }

// IsTypeWildcard indicates if the type of the media range is "*".
func (mr MediaRange) IsTypeWildcard() bool { return mr.t == "*" }

// SubType retrieves the subtype of the media range.
func (mr MediaRange) SubType() string { return mr.subT }

// IsSubTypeWildcard indicates if the subtype of the media range is "*".
func (mr MediaRange) IsSubTypeWildcard() bool { return mr.subT == "*" }

// Param retrieves the value for the media range parameter provided. The
// "q" parameter is not exposed through Param; use QualityValue instead.
func (mr MediaRange) Param(p string) (string, bool) {
	if strings.EqualFold(p, "q") {
		return "", false
	}
	v, ok := mr.params[p]
	return v, ok
}

// Params retrieves the accept-extension parameters of the media range,
// excluding "q".
func (mr MediaRange) Params() map[string]string {
	out := make(map[string]string, len(mr.params))
	for k, v := range mr.params {
		if strings.EqualFold(k, "q") {
			continue
		}
		out[k] = v
	}
	return out
}

// HasParams indicates if the media range carries accept-extension
// parameters beyond "q".
func (mr MediaRange) HasParams() bool {
	return len(mr.Params()) > 0
}

// QualityValue retrieves the quality value of the media range.
func (mr MediaRange) QualityValue() QualityValue { return mr.qValue }

// Precedence determines the specificity of the media range: exact
// type/subtype is the most specific, "*/*" the least.
func (mr MediaRange) Precedence() int {
	switch {
	case mr.t == "*" && mr.subT == "*":
		return 0 + len(mr.Params())
	case mr.subT == "*":
		return 1 + len(mr.Params())
	default:
		return 2 + len(mr.Params())
	}
}

// String provides the textual representation of the media range.
func (mr MediaRange) String() string {
	var params []string
	params = append(params, fmt.Sprintf("q=%s", mr.QualityValue().String()))
	for p, v := range mr.Params() {
		params = append(params, fmt.Sprintf("%s=%s", p, v))
	}
	t := fmt.Sprintf("%s/%s", mr.Type(), mr.SubType())
	if len(params) > 0 {
		t = fmt.Sprintf("%s;%s", t, strings.Join(params, ";"))
	}
	return t
}
