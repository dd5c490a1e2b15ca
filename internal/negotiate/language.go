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

// LanguageOffer is a single server-declared language, identified by its
// position in languages_provided so ties resolve to server order.
type LanguageOffer struct {
	Index int
	Tag   string
}

// BestLanguage selects the offer with the highest quality value under
// RFC 4647 basic filtering: a preference matches an offer when the offer
// equals the preference, or the offer is the preference followed by
// "-" and more subtags. A preference of "*" matches anything, but only
// ever at the lowest precedence — it never outranks an explicit match,
// even one with a lower quality value, since the wildcard represents
// "anything else is acceptable" rather than a genuine preference.
func BestLanguage(preferences []header.LanguageRange, offers []LanguageOffer) (LanguageOffer, bool) {
	if len(preferences) == 0 {
		if len(offers) == 0 {
			return LanguageOffer{}, false
		}
		return offers[0], true
	}

	var (
		best       LanguageOffer
		bestQ      header.QualityValue
		bestExact  bool
		found      bool
	)

	for _, offer := range offers {
		q, exact, ok := bestLanguageQuality(offer.Tag, preferences)
		if !ok || q.IsUnacceptable() {
			continue
		}
		switch {
		case !found:
			best, bestQ, bestExact, found = offer, q, exact, true
		case exact && !bestExact:
			best, bestQ, bestExact = offer, q, exact
		case exact == bestExact && q.GreaterThan(bestQ):
			best, bestQ, bestExact = offer, q, exact
		}
	}
	return best, found
}

// bestLanguageQuality reports the quality of the best-matching
// preference for the offer, and whether that match was an explicit tag
// (as opposed to the "*" wildcard).
func bestLanguageQuality(offer string, preferences []header.LanguageRange) (q header.QualityValue, exact bool, ok bool) {
	for _, p := range preferences {
		if p.IsWildcard() {
			if !ok {
				q, exact, ok = p.QualityValue(), false, true
			}
			continue
		}
		if languageMatches(p.Tag(), offer) {
			if !ok || !exact || p.QualityValue().GreaterThan(q) {
				q, exact, ok = p.QualityValue(), true, true
			}
		}
	}
	return
}

// languageMatches implements RFC 4647 basic filtering: the range
// matches the tag exactly, or the tag begins with the range followed
// by a "-", case-insensitively.
func languageMatches(rangeTag, offer string) bool {
	r := strings.ToLower(rangeTag)
	o := strings.ToLower(offer)
	if r == o {
		return true
	}
	return strings.HasPrefix(o, r+"-")
}
