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

import "strings"

// splitElements splits one or more raw header field values on commas,
// honoring quoted strings (a comma inside a quoted-string parameter value
// does not terminate an element), and drops empty elements — RFC 7230
// §7's "null elements" rule, which lets list producers emit an empty
// element between two commas without it being a parse error.
func splitElements(raw []string) []string {
	var elements []string
	for _, line := range raw {
		var (
			current strings.Builder
			inQuote bool
		)
		flush := func() {
			e := strings.TrimSpace(current.String())
			if e != "" {
				elements = append(elements, e)
			}
			current.Reset()
		}
		for _, r := range line {
			switch {
			case r == '"':
				inQuote = !inQuote
				current.WriteRune(r)
			case r == ',' && !inQuote:
				flush()
			default:
				current.WriteRune(r)
			}
		}
		flush()
	}
	return elements
}
