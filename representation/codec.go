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
	"bytes"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"io/ioutil"
	"strings"

	"gopkg.in/yaml.v2"
)

// Errors that can be encountered when serializing and deserializing
// representations.
var (
	// ErrUnsupportedContentEncoding indicates a content-encoding token
	// with no registered reader/writer constructor.
	ErrUnsupportedContentEncoding = errors.New("representation content encoding is not supported")

	// ErrUnsupportedContentType indicates a content type with no
	// registered marshaller/unmarshaller.
	ErrUnsupportedContentType = errors.New("representation content type is not supported")
)

// Marshaller renders a Go value to its wire form for a content type,
// matching the signature of json.Marshal/xml.Marshal/yaml.Marshal.
type Marshaller func(interface{}) ([]byte, error)

// Unmarshaller parses a content type's wire form into a Go value,
// matching the signature of json.Unmarshal/xml.Unmarshal/yaml.Unmarshal.
type Unmarshaller func([]byte, interface{}) error

var (
	defaultMarshallers = map[string]Marshaller{
		"application/json": json.Marshal,
		"application/xml":  xml.Marshal,
		"application/yaml": yaml.Marshal,
		"text/yaml":        yaml.Marshal,
		"text/html":        xml.Marshal,
	}

	defaultUnmarshallers = map[string]Unmarshaller{
		"application/json": json.Unmarshal,
		"application/xml":  xml.Unmarshal,
		"application/yaml": yaml.Unmarshal,
		"text/yaml":        yaml.Unmarshal,
		"text/html":        xml.Unmarshal,
	}

	defaultEncodingReaders = map[string]EncodingReaderConstructor{
		"gzip":       newGzipReader,
		"x-gzip":     newGzipReader,
		"compress":   newCompressReader,
		"x-compress": newCompressReader,
		"deflate":    newDeflateReader,
	}

	defaultEncodingWriters = map[string]EncodingWriterConstructor{
		"gzip":       newGzipWriter,
		"x-gzip":     newGzipWriter,
		"compress":   newCompressWriter,
		"x-compress": newCompressWriter,
		"deflate":    newDeflateWriter,
	}
)

// Codec is the generic marshal/unmarshal/content-encoding pipeline the
// finalizer runs a BodyKindValue response through. It carries only the
// two headers that actually drive that pipeline — content type selects
// the (un)marshaller, content encoding chains zero or more wrapping
// readers/writers around it — everything else content negotiation
// settled earlier (charset, language, location) the finalizer already
// wrote to the response directly and Codec never needs to know about.
type Codec struct {
	mediaType       string
	encoding        []string
	marshallers     map[string]Marshaller
	unmarshallers   map[string]Unmarshaller
	encodingReaders map[string]EncodingReaderConstructor
	encodingWriters map[string]EncodingWriterConstructor
}

// ContentType retrieves the content type of the representation.
func (c Codec) ContentType() string { return c.mediaType }

// SetContentType modifies the content type of the representation.
func (c *Codec) SetContentType(ct string) { c.mediaType = ct }

// ContentEncoding retrieves the content encoding of the representation.
func (c Codec) ContentEncoding() []string { return c.encoding }

// SetContentEncoding modifies the content encoding of the
// representation.
func (c *Codec) SetContentEncoding(ce []string) { c.encoding = ce }

// SetMarshallers overrides the default content-type-to-Marshaller table
// for this Codec instance, e.g. to register a protobuf marshaller a
// Resource needs but the package doesn't carry by default.
func (c *Codec) SetMarshallers(m map[string]Marshaller) { c.marshallers = m }

// SetUnmarshallers overrides the default content-type-to-Unmarshaller
// table for this Codec instance.
func (c *Codec) SetUnmarshallers(u map[string]Unmarshaller) { c.unmarshallers = u }

// SetEncodingReaders overrides the default content-encoding-to-reader
// table for this Codec instance.
func (c *Codec) SetEncodingReaders(e map[string]EncodingReaderConstructor) { c.encodingReaders = e }

// SetEncodingWriters overrides the default content-encoding-to-writer
// table for this Codec instance.
func (c *Codec) SetEncodingWriters(e map[string]EncodingWriterConstructor) { c.encodingWriters = e }

// Bytes marshals out per the codec's content type, then applies its
// content encoding chain (outermost encoding last, e.g. ["gzip"]
// compresses the marshaled bytes directly).
func (c Codec) Bytes(out interface{}) ([]byte, error) {
	marshallers := defaultMarshallers
	if len(c.marshallers) > 0 {
		marshallers = c.marshallers
	}

	ct := strings.ToLower(strings.Split(c.ContentType(), ";")[0])
	marshal, ok := marshallers[ct]
	if !ok {
		return nil, ErrUnsupportedContentType
	}

	b, err := marshal(out)
	if err != nil {
		return b, err
	}

	encodings := c.ContentEncoding()
	if len(encodings) < 1 || strings.EqualFold(encodings[0], "identity") {
		return b, nil
	}
	return c.encode(b)
}

func (c *Codec) encode(b []byte) ([]byte, error) {
	var buf bytes.Buffer
	var writer io.WriteCloser = &closeableBuffer{&buf}

	constructors := defaultEncodingWriters
	if len(c.encodingWriters) > 0 {
		constructors = c.encodingWriters
	}

	encodings := c.ContentEncoding()
	writers := make([]io.WriteCloser, 0, len(encodings))
	for idx := len(encodings) - 1; idx >= 0; idx-- {
		construct, ok := constructors[strings.ToLower(encodings[idx])]
		if !ok {
			return nil, ErrUnsupportedContentEncoding
		}
		var err error
		if writer, err = construct(writer); err != nil {
			return nil, err
		}
		writers = append(writers, writer)
	}
	if _, err := writer.Write(b); err != nil {
		return nil, err
	}
	for idx := len(writers) - 1; idx >= 0; idx-- {
		if err := writers[idx].Close(); err != nil {
			return nil, err
		}
	}
	return buf.Bytes(), nil
}

// FromBytes reverses the content encoding chain applied to b, then
// unmarshals the result into in per the codec's content type.
func (c Codec) FromBytes(b []byte, in interface{}) error {
	unmarshallers := defaultUnmarshallers
	if len(c.unmarshallers) > 0 {
		unmarshallers = c.unmarshallers
	}

	ct := strings.ToLower(strings.Split(c.ContentType(), ";")[0])
	unmarshal, ok := unmarshallers[ct]
	if !ok {
		return ErrUnsupportedContentType
	}

	encodings := c.ContentEncoding()
	if len(encodings) > 0 && !strings.EqualFold(encodings[0], "identity") {
		var err error
		if b, err = c.decode(b); err != nil {
			return err
		}
	}
	return unmarshal(b, in)
}

func (c *Codec) decode(b []byte) ([]byte, error) {
	var reader io.ReadCloser = &closeableBuffer{bytes.NewBuffer(b)}

	constructors := defaultEncodingReaders
	if len(c.encodingReaders) > 0 {
		constructors = c.encodingReaders
	}

	encodings := c.ContentEncoding()
	for idx := len(encodings) - 1; idx >= 0; idx-- {
		construct, ok := constructors[strings.ToLower(encodings[idx])]
		if !ok {
			return nil, ErrUnsupportedContentEncoding
		}
		var err error
		if reader, err = construct(reader); err != nil {
			return nil, err
		}
	}
	defer reader.Close()
	return ioutil.ReadAll(reader)
}

// closeableBuffer adapts a *bytes.Buffer to io.ReadWriteCloser so it can
// sit at either end of an encoding/decoding chain built from
// io.Reader/io.WriteCloser constructors.
type closeableBuffer struct {
	buf *bytes.Buffer
}

func (cb closeableBuffer) Close() error                { return nil }
func (cb closeableBuffer) Write(b []byte) (int, error) { return cb.buf.Write(b) }
func (cb closeableBuffer) Read(b []byte) (int, error)  { return cb.buf.Read(b) }
