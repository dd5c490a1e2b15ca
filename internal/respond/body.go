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

// Package respond commits a decision engine's outcome to the wire: it
// sets the response headers built up during the walk and encodes
// whichever body representation the resource handler chose.
package respond

import (
	"net/http"
	"time"
)

// BodyKind discriminates how Response.Body content is represented.
type BodyKind int

const (
	// BodyNone indicates no body is sent (e.g. 204, 304, 412).
	BodyNone BodyKind = iota
	// BodyBytes is a fully buffered body, sent with a single write.
	BodyBytes
	// BodyChunks is a body streamed chunk by chunk from a channel.
	BodyChunks
	// BodyFile is a body streamed from a file on disk.
	BodyFile
	// BodyValue is a structured value encoded per ValueContentType.
	BodyValue
)

// Response is everything the finalizer needs to commit one HTTP
// response: status, headers accumulated during the decision walk, and
// the body in whichever representation the producer returned.
type Response struct {
	Status int
	Header http.Header

	Kind             BodyKind
	Bytes            []byte
	Chunks           <-chan []byte
	FilePath         string
	ModTime          time.Time
	Value            interface{}
	ValueContentType string
}
