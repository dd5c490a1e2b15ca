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

import "time"

// BodyKind discriminates the representation a producer chose for a
// response body.
type BodyKind int

const (
	// BodyKindBytes is a fully buffered response body.
	BodyKindBytes BodyKind = iota
	// BodyKindChunks is a response body streamed as a sequence of chunks.
	BodyKindChunks
	// BodyKindFile is a response body streamed from a file on disk.
	BodyKindFile
	// BodyKindValue is a Go value to be marshaled by the finalizer
	// according to the negotiated media type (e.g. YAML).
	BodyKindValue
)

// Body is the tagged return value of a producer callback: bytes, a
// chunked stream, a file reference, or a structured value left for the
// finalizer to encode.
type Body struct {
	Kind     BodyKind
	Bytes    []byte
	Chunks   <-chan []byte
	FilePath string
	ModTime  time.Time
	Value    interface{}
}

// BytesBody constructs a fully buffered response body.
func BytesBody(b []byte) Body { return Body{Kind: BodyKindBytes, Bytes: b} }

// ChunksBody constructs a response body streamed from the provided
// channel; the producer closes the channel to signal completion.
func ChunksBody(chunks <-chan []byte) Body {
	return Body{Kind: BodyKindChunks, Chunks: chunks}
}

// FileBody constructs a response body streamed from the file at path,
// using its modification time for Range/conditional support.
func FileBody(path string, modTime time.Time) Body {
	return Body{Kind: BodyKindFile, FilePath: path, ModTime: modTime}
}

// ValueBody constructs a response body from a structured value, encoded
// by the finalizer according to the negotiated media type.
func ValueBody(v interface{}) Body { return Body{Kind: BodyKindValue, Value: v} }
