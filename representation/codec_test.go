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

package representation_test

import (
	"bytes"
	"io"
	"testing"

	"github.com/freerware/restmachine/representation"
	"github.com/stretchr/testify/suite"
)

type CodecTestSuite struct {
	suite.Suite
}

func TestCodecTestSuite(t *testing.T) {
	suite.Run(t, new(CodecTestSuite))
}

func codecFor(contentType string, encoding ...string) representation.Codec {
	c := representation.Codec{}
	c.SetContentType(contentType)
	if len(encoding) > 0 {
		c.SetContentEncoding(encoding)
	}
	return c
}

func (s *CodecTestSuite) TestCodec_Bytes() {
	unsupportedMediaType := codecFor("application/beeboop")
	unsupportedContentEncoding := codecFor("application/json", "beeboop")

	tests := []struct {
		name string
		in   representation.Codec
		err  error
	}{
		{"IdentityJSON", codecFor("application/json", "identity"), nil},
		{"GzippedJSON", codecFor("application/json", "gzip"), nil},
		{"CompressedJSON", codecFor("application/json", "compress"), nil},
		{"DeflatedJSON", codecFor("application/json", "deflate"), nil},
		{"IdentityYAML", codecFor("application/yaml", "identity"), nil},
		{"GzippedYAML", codecFor("application/yaml", "gzip"), nil},
		{"CompressedYAML", codecFor("application/yaml", "compress"), nil},
		{"DeflatedYAML", codecFor("application/yaml", "deflate"), nil},
		{"IdentityXML", codecFor("application/xml", "identity"), nil},
		{"GzippedXML", codecFor("application/xml", "gzip"), nil},
		{"CompressedXML", codecFor("application/xml", "compress"), nil},
		{"DeflatedXML", codecFor("application/xml", "deflate"), nil},
		{"UnsupportedMediaType", unsupportedMediaType, representation.ErrUnsupportedContentType},
		{"UnsupportedContentEncoding", unsupportedContentEncoding, representation.ErrUnsupportedContentEncoding},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rep := testRepresentation{A: "TEST", B: 28}

			b, err := tt.in.Bytes(&rep)

			if tt.err != nil {
				s.Require().EqualError(err, tt.err.Error())
				return
			}
			s.Require().NoError(err)
			actual := testRepresentation{}
			actual.SetContentEncoding(rep.ContentEncoding())
			actual.SetContentType(rep.ContentType())
			s.Require().NoError(tt.in.FromBytes(b, &actual))
			s.Equal(rep, actual)
		})
	}
}

func (s *CodecTestSuite) TestCodec_FromBytes() {
	unsupportedMediaType := codecFor("application/beeboop")
	unsupportedContentEncoding := codecFor("application/json", "beeboop")

	tests := []struct {
		name string
		in   representation.Codec
		err  error
	}{
		{"IdentityJSON", codecFor("application/json", "identity"), nil},
		{"GzippedJSON", codecFor("application/json", "gzip"), nil},
		{"CompressedJSON", codecFor("application/json", "compress"), nil},
		{"DeflatedJSON", codecFor("application/json", "deflate"), nil},
		{"IdentityYAML", codecFor("application/yaml", "identity"), nil},
		{"GzippedYAML", codecFor("application/yaml", "gzip"), nil},
		{"CompressedYAML", codecFor("application/yaml", "compress"), nil},
		{"DeflatedYAML", codecFor("application/yaml", "deflate"), nil},
		{"IdentityXML", codecFor("application/xml", "identity"), nil},
		{"GzippedXML", codecFor("application/xml", "gzip"), nil},
		{"CompressedXML", codecFor("application/xml", "compress"), nil},
		{"DeflatedXML", codecFor("application/xml", "deflate"), nil},
		{"UnsupportedMediaType", unsupportedMediaType, representation.ErrUnsupportedContentType},
		{"UnsupportedContentEncoding", unsupportedContentEncoding, representation.ErrUnsupportedContentEncoding},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			rep := testRepresentation{A: "TEST", B: 28}
			rep.SetContentEncoding(tt.in.ContentEncoding())
			rep.SetContentType(tt.in.ContentType())
			b, _ := tt.in.Bytes(&rep)

			actual := testRepresentation{}
			actual.SetContentEncoding(tt.in.ContentEncoding())
			actual.SetContentType(tt.in.ContentType())

			err := tt.in.FromBytes(b, &actual)

			if tt.err != nil {
				s.Require().EqualError(err, tt.err.Error())
				return
			}
			s.Require().NoError(err)
			s.Equal(rep, actual)
		})
	}
}

func (s CodecTestSuite) TestCodec_ContentType() {
	rep := testRepresentation{A: "TEST", B: 28}
	rep.SetContentType("application/json")

	s.Equal("application/json", rep.ContentType())
}

func (s CodecTestSuite) TestCodec_SetContentType() {
	rep := testRepresentation{A: "TEST", B: 28}
	rep.SetContentType("application/json")

	rep.SetContentType("application/yaml")

	s.Equal("application/yaml", rep.ContentType())
}

func (s CodecTestSuite) TestCodec_ContentEncoding() {
	rep := testRepresentation{A: "TEST", B: 28}
	rep.SetContentEncoding([]string{"gzip"})

	s.Equal("gzip", rep.ContentEncoding()[0])
}

func (s CodecTestSuite) TestCodec_SetContentEncoding() {
	rep := testRepresentation{A: "TEST", B: 28}
	rep.SetContentEncoding([]string{"gzip"})

	rep.SetContentEncoding([]string{"compress"})

	s.Equal("compress", rep.ContentEncoding()[0])
}

func (s CodecTestSuite) TestCodec_SetMarshallers() {
	testContentType := "text/test"
	marshaller := func(in interface{}) ([]byte, error) { return []byte{}, nil }
	rep := testRepresentation{A: "TEST", B: 28}
	rep.SetContentType(testContentType)

	rep.SetMarshallers(map[string]representation.Marshaller{testContentType: marshaller})

	b, err := rep.Bytes()
	s.Require().NoError(err)
	s.Equal([]byte{}, b)
}

func (s CodecTestSuite) TestCodec_SetUnmarshallers() {
	testContentType := "text/test"
	unmarshaller := func(b []byte, in interface{}) error { return nil }
	rep := testRepresentation{A: "TEST", B: 28}
	rep.SetContentType(testContentType)

	rep.SetUnmarshallers(map[string]representation.Unmarshaller{testContentType: unmarshaller})

	s.Require().NoError(rep.FromBytes([]byte{}))
}

func (s CodecTestSuite) TestCodec_SetEncodingReaders() {
	testContentEncoding := "test"
	reader := func(r io.Reader) (io.ReadCloser, error) {
		cb := closeableBuffer{buf: &bytes.Buffer{}}
		return &cb, nil
	}
	rep := testRepresentation{A: "TEST", B: 28}
	rep.SetContentType("application/json")
	rep.SetContentEncoding([]string{testContentEncoding})

	rep.SetEncodingReaders(map[string]representation.EncodingReaderConstructor{testContentEncoding: reader})
}

func (s CodecTestSuite) TestCodec_SetEncodingWriters() {
	testContentEncoding := "test"
	writer := func(w io.WriteCloser) (io.WriteCloser, error) {
		cb := closeableBuffer{buf: &bytes.Buffer{}}
		return &cb, nil
	}
	rep := testRepresentation{A: "TEST", B: 28}
	rep.SetContentType("application/json")
	rep.SetContentEncoding([]string{testContentEncoding})

	rep.SetEncodingWriters(map[string]representation.EncodingWriterConstructor{testContentEncoding: writer})
}

// closeableBuffer is a throwaway io.ReadWriteCloser for the custom
// reader/writer constructor tests above.
type closeableBuffer struct {
	buf *bytes.Buffer
}

func (cb closeableBuffer) Close() error                { return nil }
func (cb closeableBuffer) Write(b []byte) (int, error) { return cb.buf.Write(b) }
func (cb closeableBuffer) Read(b []byte) (int, error)  { return cb.buf.Read(b) }
