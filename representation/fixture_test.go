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

import "github.com/freerware/restmachine/representation"

// testRepresentation is a minimal representation.Representation,
// embedding Codec for the marshal/unmarshal machinery and closing over
// itself for the no-arg Bytes/FromBytes pair the interface requires.
type testRepresentation struct {
	representation.Codec

	A string
	B int
}

func (r testRepresentation) Bytes() ([]byte, error) {
	return r.Codec.Bytes(&r)
}

func (r *testRepresentation) FromBytes(b []byte) error {
	return r.Codec.FromBytes(b, r)
}

var _ representation.Representation = (*testRepresentation)(nil)
