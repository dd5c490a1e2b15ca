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

// Package negotiate picks, for a single negotiation axis at a time, the
// server offer with the highest client-preference quality value, ties
// broken by server order. It deliberately does not reproduce the
// teacher's multi-axis Apache httpd filter chain (source quality,
// encoding, level, size): each call here ranks exactly one axis.
package negotiate

import "github.com/freerware/restmachine/internal/header"

// MediaTypeOffer is a single server-declared offer, identified by its
// position among the resource's content_types_provided/accepted list so
// ties resolve to server order.
type MediaTypeOffer struct {
	Index int
	Type  header.MediaType
}

// BestMediaType selects the offer in offers with the highest quality
// value assigned to it by preferences, per spec §4.2: type/subtype
// match allowing wildcards in the preference (a wildcard in an offer
// is compared literally), and every non-q parameter of
// a matching preference must either be present with an equal value on
// the offer or the offer must declare a params wildcard. Returns false
// if no offer scores above zero (the caller must then fail with 406).
func BestMediaType(preferences []header.MediaRange, offers []MediaTypeOffer) (MediaTypeOffer, bool) {
	var (
		best      MediaTypeOffer
		bestQ     header.QualityValue
		found     bool
		noPrefs   = len(preferences) == 0
	)

	for _, offer := range offers {
		q := header.QualityValueMaximum
		if !noPrefs {
			var ok bool
			q, ok = bestQualityFor(offer.Type, preferences)
			if !ok {
				continue
			}
		}
		if q.IsUnacceptable() {
			continue
		}
		if !found || q.GreaterThan(bestQ) {
			best, bestQ, found = offer, q, true
		}
	}
	return best, found
}

// bestQualityFor finds the maximum quality value among preferences that
// match the offer, per spec §4.2's media-type matching rule.
func bestQualityFor(offer header.MediaType, preferences []header.MediaRange) (header.QualityValue, bool) {
	var (
		best  header.QualityValue
		found bool
	)
	for _, p := range preferences {
		if !mediaMatches(p, offer) {
			continue
		}
		if !found || p.QualityValue().GreaterThan(best) {
			best, found = p.QualityValue(), true
		}
	}
	return best, found
}

func mediaMatches(p header.MediaRange, offer header.MediaType) bool {
	if !p.IsTypeWildcard() && p.Type() != offer.Type {
		return false
	}
	if !p.IsSubTypeWildcard() && p.SubType() != offer.SubType {
		return false
	}
	if offer.ParamsWildcard {
		return true
	}
	for k, v := range p.Params() {
		ov, ok := offer.Params[k]
		if !ok || ov != v {
			return false
		}
	}
	return true
}
