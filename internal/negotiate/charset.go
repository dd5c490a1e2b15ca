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

package negotiate

import (
	"strings"

	"github.com/freerware/restmachine/internal/header"
)

// CharsetOffer is a single server-declared charset, identified by its
// position in charsets_provided so ties (and the unmentioned-wildcard
// rule) resolve to server order.
type CharsetOffer struct {
	Index   int
	Charset string
}

// BestCharset selects a server offer per spec §4.2: exact
// case-insensitive match against the Accept-Charset preferences; "*"
// matches the first offer not otherwise explicitly mentioned by any
// preference; absence of the header picks the first server offer.
// Returns false only when offers is empty or every preference scores
// zero against every offer (406).
func BestCharset(preferences []header.CharsetRange, offers []CharsetOffer) (CharsetOffer, bool) {
	if len(offers) == 0 {
		return CharsetOffer{}, false
	}
	if len(preferences) == 0 {
		return offers[0], true
	}

	mentioned := make(map[string]bool, len(offers))
	for _, p := range preferences {
		if !p.IsWildcard() {
			mentioned[strings.ToLower(p.Charset())] = true
		}
	}

	var (
		best       CharsetOffer
		bestQ      header.QualityValue
		found      bool
		wildcardQ  header.QualityValue
		haveWild   bool
	)

	for _, p := range preferences {
		if p.IsWildcard() {
			wildcardQ, haveWild = p.QualityValue(), true
			continue
		}
		for _, offer := range offers {
			if !strings.EqualFold(p.Charset(), offer.Charset) {
				continue
			}
			if p.QualityValue().IsUnacceptable() {
				continue
			}
			if !found || p.QualityValue().GreaterThan(bestQ) {
				best, bestQ, found = offer, p.QualityValue(), true
			}
		}
	}

	if haveWild && !wildcardQ.IsUnacceptable() {
		for _, offer := range offers {
			if mentioned[strings.ToLower(offer.Charset)] {
				continue
			}
			if !found || wildcardQ.GreaterThan(bestQ) {
				best, bestQ, found = offer, wildcardQ, true
			}
			break
		}
	}

	return best, found
}
