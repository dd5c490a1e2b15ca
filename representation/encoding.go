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

package representation

import (
	"compress/flate"
	"compress/gzip"
	"compress/zlib"
	"io"
)

// EncodingReaderConstructor wraps an io.Reader with a content-encoding's
// decompressor.
type EncodingReaderConstructor func(io.Reader) (io.ReadCloser, error)

// EncodingWriterConstructor wraps an io.WriteCloser with a
// content-encoding's compressor.
type EncodingWriterConstructor func(io.WriteCloser) (io.WriteCloser, error)

// gzip/compress(zlib)/deflate are the three content-encodings RFC 7231
// names as commonly deployed; each constructor pair below backs one
// entry in Codec's default encoding tables.
var (
	newGzipReader EncodingReaderConstructor = func(r io.Reader) (io.ReadCloser, error) {
		return gzip.NewReader(r)
	}
	newGzipWriter EncodingWriterConstructor = func(w io.WriteCloser) (io.WriteCloser, error) {
		return gzip.NewWriter(w), nil
	}

	newCompressReader EncodingReaderConstructor = func(r io.Reader) (io.ReadCloser, error) {
		return zlib.NewReader(r)
	}
	newCompressWriter EncodingWriterConstructor = func(w io.WriteCloser) (io.WriteCloser, error) {
		return zlib.NewWriter(w), nil
	}

	newDeflateReader EncodingReaderConstructor = func(r io.Reader) (io.ReadCloser, error) {
		return flate.NewReader(r), nil
	}
	newDeflateWriter EncodingWriterConstructor = func(w io.WriteCloser) (io.WriteCloser, error) {
		return flate.NewWriter(w, flate.BestSpeed)
	}
)
