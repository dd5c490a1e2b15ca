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

package respond

import (
	"net/http"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/freerware/restmachine/representation"
)

// ErrNoEncoder indicates that a BodyValue response named a content type
// none of representation.Codec's default marshallers recognize (only
// JSON, XML, YAML, and text/html rendered as XML are wired). Every other
// content type is expected
// to be rendered to bytes by its producer instead of left as a value.
var ErrNoEncoder = representation.ErrUnsupportedContentType

// DefaultContentType is emitted when the decision walk ends without
// content negotiation ever running, e.g. a 4xx short-circuit before
// content_types_provided.
const DefaultContentType = "text/html; charset=utf-8"

// Finalizer commits a Response to an http.ResponseWriter. If the
// handler already wrote to w directly (sent is true), Finalize is a
// no-op, matching the reference behavior that an already-committed
// response is never rewritten.
type Finalizer struct{}

// Finalize writes headers, status, and body to w. req is consulted only
// for BodyFile responses, to honor conditional/Range requests via
// http.ServeContent.
func (Finalizer) Finalize(w http.ResponseWriter, req *http.Request, sent bool, resp Response) error {
	if sent {
		return nil
	}

	header := w.Header()
	for k, vs := range resp.Header {
		for _, v := range vs {
			header.Add(k, v)
		}
	}
	if header.Get("Content-Type") == "" && (resp.Kind != BodyNone || resp.Status >= http.StatusBadRequest) {
		header.Set("Content-Type", DefaultContentType)
	}

	switch resp.Kind {
	case BodyBytes:
		header.Set("Content-Length", strconv.Itoa(len(resp.Bytes)))
		w.WriteHeader(resp.Status)
		_, err := w.Write(resp.Bytes)
		return err

	case BodyChunks:
		w.WriteHeader(resp.Status)
		flusher, canFlush := w.(http.Flusher)
		for chunk := range resp.Chunks {
			if _, err := w.Write(chunk); err != nil {
				return err
			}
			if canFlush {
				flusher.Flush()
			}
		}
		return nil

	case BodyFile:
		f, err := os.Open(resp.FilePath)
		if err != nil {
			return err
		}
		defer f.Close()
		// ServeContent decides the status itself (200, 206 for Range,
		// 304 for a conditional GET it re-checks) — it must own the
		// WriteHeader call.
		http.ServeContent(w, req, filepath.Base(resp.FilePath), resp.ModTime, f)
		return nil

	case BodyValue:
		b, err := encodeValue(resp.Value, resp.ValueContentType)
		if err != nil {
			return err
		}
		header.Set("Content-Length", strconv.Itoa(len(b)))
		w.WriteHeader(resp.Status)
		_, err = w.Write(b)
		return err

	default:
		w.WriteHeader(resp.Status)
		return nil
	}
}

// encodeValue renders v to bytes per contentType. A value that already
// implements representation.Representation (e.g. one embedding
// representation.Codec with its own marshaller overrides) encodes
// itself; anything else is run through a bare Codec built for the
// negotiated content type, covering JSON/XML/YAML without a hand-rolled
// branch per format.
func encodeValue(v interface{}, contentType string) ([]byte, error) {
	if rep, ok := v.(representation.Representation); ok {
		return rep.Bytes()
	}
	codec := representation.Codec{}
	codec.SetContentType(strings.Split(contentType, ";")[0])
	return codec.Bytes(v)
}
