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

// Package representation provides the codec a BodyKindValue response is
// rendered through: a small marshal/unmarshal/content-encoding pipeline
// shared by every structured body the decision engine finalizes, rather
// than one hand-rolled branch per wire format.
package representation

// Representation is a value that already knows how to render and parse
// itself, bypassing the finalizer's generic Codec. A Resource producer
// can return a type that embeds Codec and satisfies this interface —
// see testRepresentation in this package's tests for the shape — when
// it needs a non-default marshaller set, rather than leaving the
// finalizer to build a bare Codec from the negotiated content type.
type Representation interface {
	ContentType() string
	ContentEncoding() []string
	Bytes() ([]byte, error)
	FromBytes([]byte) error
}
