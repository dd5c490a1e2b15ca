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

import (
	"errors"
	"time"
)

// ErrStop is returned by a callback to short-circuit the decision walk
// immediately. Whatever status and headers are already set on the
// Context's response are honored as-is; the engine performs no further
// gates.
var ErrStop = errors.New("restmachine: stop")

// AuthResult is the tagged return value of Resource.IsAuthorized:
// authorized (OK true), or unauthorized carrying the value for the
// WWW-Authenticate response header.
type AuthResult struct {
	OK        bool
	Challenge string
}

// Authorized reports that the request is authorized.
func Authorized() AuthResult { return AuthResult{OK: true} }

// Unauthorized reports that the request is not authorized, and that the
// given value should be sent as the WWW-Authenticate header.
func Unauthorized(challenge string) AuthResult {
	return AuthResult{OK: false, Challenge: challenge}
}

// LocationResult is the tagged return value of Resource.MovedPermanently,
// Resource.MovedTemporarily, and any acceptor that creates a new
// resource: OK true optionally carries a Location to send back to the
// client.
type LocationResult struct {
	OK       bool
	Location string
}

// ETag is the tagged return value of Resource.GenerateETag: either a
// (weak, opaque) pair the engine renders as "opaque" or W/"opaque", or a
// pre-formatted, already-quoted string sent verbatim. A Raw value that
// is not quoted is a handler defect.
type ETag struct {
	Weak   bool
	Opaque string
	Raw    string
	IsRaw  bool
}

// StrongETag constructs a strong entity tag value.
func StrongETag(opaque string) ETag { return ETag{Opaque: opaque} }

// WeakETag constructs a weak entity tag value.
func WeakETag(opaque string) ETag { return ETag{Weak: true, Opaque: opaque} }

// RawETag constructs an entity tag value from an already-quoted string,
// e.g. `"xyz"` or `W/"xyz"`.
func RawETag(quoted string) ETag { return ETag{Raw: quoted, IsRaw: true} }

// DateOrString is the tagged return value of Resource.LastModified and
// Resource.Expires: a parsed datetime to render as IMF-fixdate, or a
// pre-formatted string. A string must parse as an HTTP date; one that
// does not is treated as a handler defect and the request ends in 500.
type DateOrString struct {
	Time   time.Time
	IsTime bool
	Raw    string
}

// AtTime constructs a DateOrString from a datetime.
func AtTime(t time.Time) DateOrString { return DateOrString{Time: t, IsTime: true} }

// AtString constructs a DateOrString from a pre-formatted HTTP date
// string.
func AtString(raw string) DateOrString { return DateOrString{Raw: raw} }

// ProvidedType pairs a media type a resource can produce with the
// producer callback that renders it.
type ProvidedType struct {
	MediaType string
	Producer  func(*Context) (Body, error)
}

// AcceptedType pairs a media type a resource can consume with the
// acceptor callback that processes the request body.
type AcceptedType struct {
	MediaType string
	Acceptor  func(*Context) (LocationResult, error)
}
