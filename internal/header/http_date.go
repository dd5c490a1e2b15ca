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
	"net/http"
	"time"
)

// ParseHTTPDate parses the value of a date-valued header field
// (If-Modified-Since, If-Unmodified-Since, Last-Modified, Expires) per
// RFC 7231 §7.1.1.1. It accepts the IMF-fixdate form and, for
// compatibility with older clients, RFC 850 and asctime dates, delegating
// to the standard library's HTTP date parser rather than reimplementing
// its fallback chain.
func ParseHTTPDate(raw string) (time.Time, error) {
	return http.ParseTime(raw)
}

// FormatHTTPDate renders a time as an IMF-fixdate, the sole format this
// package ever emits on the wire.
func FormatHTTPDate(t time.Time) string {
	return t.UTC().Format(http.TimeFormat)
}
