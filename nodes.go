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
	"net/http"
	"strings"

	"github.com/freerware/restmachine/internal/header"
	"github.com/freerware/restmachine/internal/negotiate"
)

// node names double as decision-engine state names: a node's run
// function returns the name of the node to run next, or "" when the
// walk has terminated (status/body already recorded on the Context).
const (
	nodeServiceAvailable     = "service_available"
	nodeKnownMethods         = "known_methods"
	nodeURITooLong           = "uri_too_long"
	nodeAllowedMethods       = "allowed_methods"
	nodeMalformedRequest     = "malformed_request"
	nodeIsAuthorized         = "is_authorized"
	nodeForbidden            = "forbidden"
	nodeValidContentHeaders  = "valid_content_headers"
	nodeValidEntityLength    = "valid_entity_length"
	nodeOptions              = "options"
	nodeContentTypesProvided = "content_types_provided"
	nodeLanguagesProvided    = "languages_provided"
	nodeCharsetsProvided     = "charsets_provided"
	nodeVariances            = "variances"
	nodeResourceExists       = "resource_exists"

	nodeIfMatchExists     = "if_match_exists"
	nodeIfUnmodifiedSince = "if_unmodified_since"
	nodeIfNoneMatchExists = "if_none_match_exists"
	nodeIfModifiedSince   = "if_modified_since"

	nodePutToMissing       = "put_to_missing"
	nodeIfMatchMissing     = "if_match_missing"
	nodeIfNoneMatchMissing = "if_none_match_missing"
	nodePreviouslyExisted  = "previously_existed"
	nodeMovedPermanently   = "moved_permanently"
	nodeMovedTemporarily   = "moved_temporarily"

	nodeMethodDispatch = "method_dispatch"
	nodeAcceptContent  = "accept_content"
)

// terminalStatus sets the status for a decision that ends the request and
// reports no further node to run.
func terminalStatus(s *requestState, status int) (string, error) {
	s.ctx.SetStatus(status)
	return "", nil
}

// defaultAllowedMethods backs allowed_methods when the Resource does not
// supply its own. It includes OPTIONS alongside GET/HEAD so an OPTIONS
// request against a resource with no allowed_methods callback reaches
// the options node instead of failing method-not-allowed first.
var defaultAllowedMethods = []string{http.MethodHead, http.MethodGet, http.MethodOptions}

// defaultContentTypesProvided backs content_types_provided when the
// Resource does not supply its own: a no-op text/html producer, mirroring
// the reference implementation's to_html default.
var defaultContentTypesProvided = []ProvidedType{
	{MediaType: "text/html", Producer: func(*Context) (Body, error) { return BytesBody(nil), nil }},
}

var nodes = map[string]nodeFunc{
	nodeServiceAvailable:     runServiceAvailable,
	nodeKnownMethods:         runKnownMethods,
	nodeURITooLong:           runURITooLong,
	nodeAllowedMethods:       runAllowedMethods,
	nodeMalformedRequest:     runMalformedRequest,
	nodeIsAuthorized:         runIsAuthorized,
	nodeForbidden:            runForbidden,
	nodeValidContentHeaders:  runValidContentHeaders,
	nodeValidEntityLength:    runValidEntityLength,
	nodeOptions:              runOptions,
	nodeContentTypesProvided: runContentTypesProvided,
	nodeLanguagesProvided:    runLanguagesProvided,
	nodeCharsetsProvided:     runCharsetsProvided,
	nodeVariances:            runVariances,
	nodeResourceExists:       runResourceExists,

	nodeIfMatchExists:     runIfMatchExists,
	nodeIfUnmodifiedSince: runIfUnmodifiedSince,
	nodeIfNoneMatchExists: runIfNoneMatchExists,
	nodeIfModifiedSince:   runIfModifiedSince,

	nodePutToMissing:       runPutToMissing,
	nodeIfMatchMissing:     runIfMatchMissing,
	nodeIfNoneMatchMissing: runIfNoneMatchMissing,
	nodePreviouslyExisted:  runPreviouslyExisted,
	nodeMovedPermanently:   runMovedPermanently,
	nodeMovedTemporarily:   runMovedTemporarily,

	nodeMethodDispatch: runMethodDispatch,
	nodeAcceptContent:  runAcceptContent,
}

type nodeFunc func(e *engine, s *requestState) (string, error)

func runServiceAvailable(e *engine, s *requestState) (string, error) {
	ok, err := e.invokeBool(s.ctx, s.res.ServiceAvailable, true)
	if err != nil {
		return "", err
	}
	if !ok {
		return terminalStatus(s, http.StatusServiceUnavailable)
	}
	return nodeKnownMethods, nil
}

func runKnownMethods(e *engine, s *requestState) (string, error) {
	methods, err := e.invokeStrings(s.ctx, s.res.KnownMethods, e.knownMethods)
	if err != nil {
		return "", err
	}
	s.knownMethods = methods
	if !contains(methods, s.method) {
		return terminalStatus(s, http.StatusNotImplemented)
	}
	return nodeURITooLong, nil
}

func runURITooLong(e *engine, s *requestState) (string, error) {
	tooLong, err := e.invokeBool(s.ctx, s.res.URITooLong, false)
	if err != nil {
		return "", err
	}
	if tooLong {
		return terminalStatus(s, http.StatusRequestURITooLong)
	}
	return nodeAllowedMethods, nil
}

func runAllowedMethods(e *engine, s *requestState) (string, error) {
	methods, err := e.invokeStrings(s.ctx, s.res.AllowedMethods, defaultAllowedMethods)
	if err != nil {
		return "", err
	}
	s.allowedMethods = methods
	if !contains(methods, s.method) {
		s.ctx.Header().Set("Allow", strings.Join(methods, ", "))
		return terminalStatus(s, http.StatusMethodNotAllowed)
	}
	return nodeMalformedRequest, nil
}

func runMalformedRequest(e *engine, s *requestState) (string, error) {
	malformed, err := e.invokeBool(s.ctx, s.res.MalformedRequest, false)
	if err != nil {
		return "", err
	}
	if malformed {
		return terminalStatus(s, http.StatusBadRequest)
	}
	return nodeIsAuthorized, nil
}

func runIsAuthorized(e *engine, s *requestState) (string, error) {
	result, err := e.invokeAuth(s.ctx, s.res.IsAuthorized)
	if err != nil {
		return "", err
	}
	if !result.OK {
		if result.Challenge != "" {
			s.ctx.Header().Set("WWW-Authenticate", result.Challenge)
		}
		return terminalStatus(s, http.StatusUnauthorized)
	}
	return nodeForbidden, nil
}

func runForbidden(e *engine, s *requestState) (string, error) {
	forbidden, err := e.invokeBool(s.ctx, s.res.Forbidden, false)
	if err != nil {
		return "", err
	}
	if forbidden {
		return terminalStatus(s, http.StatusForbidden)
	}
	return nodeValidContentHeaders, nil
}

func runValidContentHeaders(e *engine, s *requestState) (string, error) {
	valid, err := e.invokeBool(s.ctx, s.res.ValidContentHeaders, true)
	if err != nil {
		return "", err
	}
	if !valid {
		return terminalStatus(s, http.StatusNotImplemented)
	}
	return nodeValidEntityLength, nil
}

func runValidEntityLength(e *engine, s *requestState) (string, error) {
	valid, err := e.invokeBool(s.ctx, s.res.ValidEntityLength, true)
	if err != nil {
		return "", err
	}
	if !valid {
		return terminalStatus(s, http.StatusRequestEntityTooLarge)
	}
	return nodeOptions, nil
}

func runOptions(e *engine, s *requestState) (string, error) {
	if s.method != http.MethodOptions {
		return nodeContentTypesProvided, nil
	}
	if s.res.Options == nil {
		s.ctx.Header().Set("Allow", strings.Join(s.allowedMethods, ", "))
		return terminalStatus(s, http.StatusOK)
	}
	if err := e.invokeOptionsCallback(s.ctx, s.res.Options); err != nil {
		return "", err
	}
	return terminalStatus(s, http.StatusOK)
}

func runContentTypesProvided(e *engine, s *requestState) (string, error) {
	provided, err := e.invokeProvided(s.ctx, s.res.ContentTypesProvided, defaultContentTypesProvided)
	if err != nil {
		return "", err
	}
	s.contentTypesProvided = provided

	accept := header.DefaultAccept
	if raw := s.ctx.Request.Header["Accept"]; len(raw) > 0 {
		a, perr := header.NewAccept(raw)
		if perr != nil {
			return terminalStatus(s, http.StatusBadRequest)
		}
		accept = a
	}

	offers := make([]negotiate.MediaTypeOffer, 0, len(provided))
	for i, p := range provided {
		mt, merr := header.NewMediaType(p.MediaType)
		if merr != nil {
			return "", merr
		}
		offers = append(offers, negotiate.MediaTypeOffer{Index: i, Type: mt})
	}

	chosen, ok := negotiate.BestMediaType(accept.MediaRanges(), offers)
	if !ok {
		return terminalStatus(s, http.StatusNotAcceptable)
	}
	s.chosenProvided = &s.contentTypesProvided[chosen.Index]
	return nodeLanguagesProvided, nil
}

func runLanguagesProvided(e *engine, s *requestState) (string, error) {
	provided, err := e.invokeStrings(s.ctx, s.res.LanguagesProvided, nil)
	if err != nil {
		return "", err
	}
	s.languagesProvided = provided
	if len(provided) == 0 {
		return nodeCharsetsProvided, nil
	}

	acceptLanguage := header.DefaultAcceptLanguage
	if raw := s.ctx.Request.Header["Accept-Language"]; len(raw) > 0 {
		al, perr := header.NewAcceptLanguage(raw)
		if perr != nil {
			return terminalStatus(s, http.StatusBadRequest)
		}
		acceptLanguage = al
	}

	offers := make([]negotiate.LanguageOffer, len(provided))
	for i, l := range provided {
		offers[i] = negotiate.LanguageOffer{Index: i, Tag: l}
	}
	chosen, ok := negotiate.BestLanguage(acceptLanguage.LanguageRanges(), offers)
	if !ok {
		return terminalStatus(s, http.StatusNotAcceptable)
	}
	s.chosenLanguage = chosen.Tag
	return nodeCharsetsProvided, nil
}

func runCharsetsProvided(e *engine, s *requestState) (string, error) {
	provided, err := e.invokeStrings(s.ctx, s.res.CharsetsProvided, nil)
	if err != nil {
		return "", err
	}
	s.charsetsProvided = provided
	if len(provided) == 0 {
		return nodeVariances, nil
	}

	acceptCharset := header.DefaultAcceptCharset
	if raw := s.ctx.Request.Header["Accept-Charset"]; len(raw) > 0 {
		ac, perr := header.NewAcceptCharset(raw)
		if perr != nil {
			return terminalStatus(s, http.StatusBadRequest)
		}
		acceptCharset = ac
	}

	offers := make([]negotiate.CharsetOffer, len(provided))
	for i, c := range provided {
		offers[i] = negotiate.CharsetOffer{Index: i, Charset: c}
	}
	chosen, ok := negotiate.BestCharset(acceptCharset.CharsetRanges(), offers)
	if !ok {
		return terminalStatus(s, http.StatusNotAcceptable)
	}
	s.chosenCharset = chosen.Charset
	return nodeVariances, nil
}

func runVariances(e *engine, s *requestState) (string, error) {
	extra, err := e.invokeStrings(s.ctx, s.res.Variances, nil)
	if err != nil {
		return "", err
	}
	var vary []string
	if len(s.contentTypesProvided) >= 2 {
		vary = append(vary, "Accept")
	}
	if len(s.languagesProvided) >= 2 {
		vary = append(vary, "Accept-Language")
	}
	if len(s.charsetsProvided) >= 2 {
		vary = append(vary, "Accept-Charset")
	}
	vary = append(vary, extra...)
	vary = dedupe(vary)
	if len(vary) > 0 {
		s.ctx.Header().Set("Vary", strings.Join(vary, ", "))
	}
	return nodeResourceExists, nil
}

func runResourceExists(e *engine, s *requestState) (string, error) {
	exists, err := e.invokeBool(s.ctx, s.res.ResourceExists, true)
	if err != nil {
		return "", err
	}
	s.exists = exists
	if exists {
		return nodeIfMatchExists, nil
	}
	if s.method == http.MethodPut {
		return nodePutToMissing, nil
	}
	return nodeIfMatchMissing, nil
}

// --- exists branch -----------------------------------------------------

func runIfMatchExists(e *engine, s *requestState) (string, error) {
	raw := s.ctx.Request.Header["If-Match"]
	if len(raw) == 0 {
		return nodeIfUnmodifiedSince, nil
	}
	match, perr := header.ParseEntityTagMatch(raw)
	if perr != nil {
		return terminalStatus(s, http.StatusBadRequest)
	}
	if match.IsWildcard() {
		return nodeIfUnmodifiedSince, nil
	}
	tag, ok, err := s.etag(e)
	if err != nil {
		return "", err
	}
	if !ok || !match.MatchesStrong(tag) {
		return terminalStatus(s, http.StatusPreconditionFailed)
	}
	return nodeIfUnmodifiedSince, nil
}

func runIfUnmodifiedSince(e *engine, s *requestState) (string, error) {
	raw := s.ctx.Request.Header.Get("If-Unmodified-Since")
	if raw == "" {
		return nodeIfNoneMatchExists, nil
	}
	when, perr := header.ParseHTTPDate(raw)
	if perr != nil {
		return nodeIfNoneMatchExists, nil
	}
	lastMod, _, isTime, ok, err := s.lastModified(e)
	if err != nil {
		return "", err
	}
	if ok && isTime && lastMod.After(when) {
		return terminalStatus(s, http.StatusPreconditionFailed)
	}
	return nodeIfNoneMatchExists, nil
}

func runIfNoneMatchExists(e *engine, s *requestState) (string, error) {
	raw := s.ctx.Request.Header["If-None-Match"]
	if len(raw) == 0 {
		return nodeIfModifiedSince, nil
	}
	match, perr := header.ParseEntityTagMatch(raw)
	if perr != nil {
		return terminalStatus(s, http.StatusBadRequest)
	}
	matched := match.IsWildcard()
	if !matched {
		tag, ok, err := s.etag(e)
		if err != nil {
			return "", err
		}
		matched = ok && match.MatchesWeak(tag)
	}
	if matched {
		if isSafe(s.method) {
			return terminalStatus(s, http.StatusNotModified)
		}
		return terminalStatus(s, http.StatusPreconditionFailed)
	}
	return nodeIfModifiedSince, nil
}

func runIfModifiedSince(e *engine, s *requestState) (string, error) {
	raw := s.ctx.Request.Header.Get("If-Modified-Since")
	if raw == "" {
		return nodeMethodDispatch, nil
	}
	when, perr := header.ParseHTTPDate(raw)
	if perr != nil {
		return nodeMethodDispatch, nil
	}
	lastMod, _, isTime, ok, err := s.lastModified(e)
	if err != nil {
		return "", err
	}
	if ok && isTime && !lastMod.After(when) {
		return terminalStatus(s, http.StatusNotModified)
	}
	return nodeMethodDispatch, nil
}

// --- missing branch ------------------------------------------------------

// runPutToMissing mirrors the reference implementation's special-casing
// of PUT against a nonexistent resource: a PUT names the resource it
// wants to create, so it skips If-Match/If-None-Match and the
// previously-existed/redirect chain entirely and goes straight to the
// conflict check.
func runPutToMissing(e *engine, s *requestState) (string, error) {
	s.newResource = true
	conflict, err := e.invokeBool(s.ctx, s.res.IsConflict, false)
	if err != nil {
		return "", err
	}
	if conflict {
		return terminalStatus(s, http.StatusConflict)
	}
	return nodeAcceptContent, nil
}

func runIfMatchMissing(e *engine, s *requestState) (string, error) {
	raw := s.ctx.Request.Header["If-Match"]
	if len(raw) > 0 {
		match, perr := header.ParseEntityTagMatch(raw)
		if perr != nil {
			return terminalStatus(s, http.StatusBadRequest)
		}
		if !match.IsWildcard() {
			return terminalStatus(s, http.StatusPreconditionFailed)
		}
	}
	return nodeIfNoneMatchMissing, nil
}

func runIfNoneMatchMissing(e *engine, s *requestState) (string, error) {
	raw := s.ctx.Request.Header["If-None-Match"]
	if len(raw) > 0 {
		match, perr := header.ParseEntityTagMatch(raw)
		if perr != nil {
			return terminalStatus(s, http.StatusBadRequest)
		}
		if match.IsWildcard() {
			if s.method == http.MethodPost {
				allow, aerr := e.invokeBool(s.ctx, s.res.AllowMissingPost, false)
				if aerr != nil {
					return "", aerr
				}
				if allow {
					s.newResource = true
					return nodeAcceptContent, nil
				}
			}
			return terminalStatus(s, http.StatusPreconditionFailed)
		}
	}
	return nodePreviouslyExisted, nil
}

func runPreviouslyExisted(e *engine, s *requestState) (string, error) {
	existed, err := e.invokeBool(s.ctx, s.res.PreviouslyExisted, false)
	if err != nil {
		return "", err
	}
	if !existed {
		if s.method == http.MethodPost {
			allow, aerr := e.invokeBool(s.ctx, s.res.AllowMissingPost, false)
			if aerr != nil {
				return "", aerr
			}
			if allow {
				s.newResource = true
				return nodeAcceptContent, nil
			}
		}
		return terminalStatus(s, http.StatusNotFound)
	}
	return nodeMovedPermanently, nil
}

func runMovedPermanently(e *engine, s *requestState) (string, error) {
	result, err := e.invokeLocation(s.ctx, s.res.MovedPermanently, LocationResult{})
	if err != nil {
		return "", err
	}
	if result.OK {
		s.ctx.Header().Set("Location", result.Location)
		return terminalStatus(s, http.StatusMovedPermanently)
	}
	return nodeMovedTemporarily, nil
}

func runMovedTemporarily(e *engine, s *requestState) (string, error) {
	result, err := e.invokeLocation(s.ctx, s.res.MovedTemporarily, LocationResult{})
	if err != nil {
		return "", err
	}
	if result.OK {
		s.ctx.Header().Set("Location", result.Location)
		return terminalStatus(s, http.StatusTemporaryRedirect)
	}
	return terminalStatus(s, http.StatusGone)
}

// --- method dispatch -----------------------------------------------------

func runMethodDispatch(e *engine, s *requestState) (string, error) {
	switch s.method {
	case http.MethodDelete:
		return runDelete(e, s)
	case http.MethodPut:
		conflict, err := e.invokeBool(s.ctx, s.res.IsConflict, false)
		if err != nil {
			return "", err
		}
		if conflict {
			return terminalStatus(s, http.StatusConflict)
		}
		return nodeAcceptContent, nil
	case http.MethodPost, http.MethodPatch:
		return nodeAcceptContent, nil
	default: // GET, HEAD
		return runProduce(e, s)
	}
}

func runDelete(e *engine, s *requestState) (string, error) {
	if s.res.DeleteResource == nil {
		return terminalStatus(s, http.StatusInternalServerError)
	}
	deleted, err := e.invokeBool(s.ctx, s.res.DeleteResource, false)
	if err != nil {
		return "", err
	}
	if !deleted {
		return terminalStatus(s, http.StatusInternalServerError)
	}
	completed, err := e.invokeBool(s.ctx, s.res.DeleteCompleted, true)
	if err != nil {
		return "", err
	}
	if !completed {
		return terminalStatus(s, http.StatusAccepted)
	}
	if s.bodySet {
		return terminalStatus(s, http.StatusOK)
	}
	return terminalStatus(s, http.StatusNoContent)
}

func runAcceptContent(e *engine, s *requestState) (string, error) {
	raw := s.ctx.Request.Header.Get("Content-Type")
	if raw == "" {
		return terminalStatus(s, http.StatusUnsupportedMediaType)
	}
	ct, perr := header.NewContentType(raw)
	if perr != nil {
		return terminalStatus(s, http.StatusUnsupportedMediaType)
	}

	accepted, err := e.invokeAccepted(s.ctx, s.res.ContentTypesAccepted)
	if err != nil {
		return "", err
	}
	s.contentTypesAccepted = accepted
	if len(accepted) == 0 {
		return terminalStatus(s, http.StatusUnsupportedMediaType)
	}

	requestType := header.MediaType{Type: ct.Type(), SubType: ct.SubType(), Params: map[string]string{}}
	preference, perr := header.NewMediaRange(requestType.Type + "/" + requestType.SubType)
	if perr != nil {
		return "", perr
	}

	offers := make([]negotiate.MediaTypeOffer, 0, len(accepted))
	for i, a := range accepted {
		mt, merr := header.NewMediaType(a.MediaType)
		if merr != nil {
			return "", merr
		}
		offers = append(offers, negotiate.MediaTypeOffer{Index: i, Type: mt})
	}
	chosen, ok := negotiate.BestMediaType([]header.MediaRange{preference}, offers)
	if !ok {
		return terminalStatus(s, http.StatusUnsupportedMediaType)
	}
	acceptor := s.contentTypesAccepted[chosen.Index]
	s.chosenAccepted = &acceptor
	if acceptor.Acceptor == nil {
		return "", errNoAcceptor
	}

	var result LocationResult
	aerr := e.invoker.Invoke(func() error {
		var cerr error
		result, cerr = acceptor.Acceptor(s.ctx)
		return cerr
	})
	if aerr != nil {
		return "", aerr
	}
	if !result.OK {
		status := s.ctx.Status()
		if status == 0 {
			status = http.StatusBadRequest
		}
		return terminalStatus(s, status)
	}
	if result.Location != "" {
		s.ctx.Header().Set("Location", result.Location)
	}
	return finishAccept(s, result)
}

func finishAccept(s *requestState, result LocationResult) (string, error) {
	switch s.method {
	case http.MethodPut:
		if s.newResource {
			return terminalStatus(s, http.StatusCreated)
		}
		if s.bodySet {
			return terminalStatus(s, http.StatusOK)
		}
		return terminalStatus(s, http.StatusNoContent)
	case http.MethodPost:
		if s.newResource && result.Location != "" {
			return terminalStatus(s, http.StatusCreated)
		}
		if result.Location != "" {
			return terminalStatus(s, http.StatusSeeOther)
		}
		if s.bodySet {
			return terminalStatus(s, http.StatusOK)
		}
		return terminalStatus(s, http.StatusNoContent)
	default: // PATCH
		if s.bodySet {
			return terminalStatus(s, http.StatusOK)
		}
		return terminalStatus(s, http.StatusNoContent)
	}
}

func runProduce(e *engine, s *requestState) (string, error) {
	if s.chosenProvided == nil || s.chosenProvided.Producer == nil {
		return "", errNoProducer
	}
	var body Body
	err := e.invoker.Invoke(func() error {
		var cerr error
		body, cerr = s.chosenProvided.Producer(s.ctx)
		return cerr
	})
	if err != nil {
		return "", err
	}
	s.body, s.bodySet = body, true

	contentType := s.chosenProvided.MediaType
	if s.chosenCharset != "" {
		contentType = contentType + "; charset=" + s.chosenCharset
	}
	s.ctx.Header().Set("Content-Type", contentType)
	if s.chosenLanguage != "" {
		s.ctx.Header().Set("Content-Language", s.chosenLanguage)
	}

	if err := applyValidators(e, s); err != nil {
		return "", err
	}

	multiple, err := e.invokeBool(s.ctx, s.res.MultipleChoices, false)
	if err != nil {
		return "", err
	}
	if multiple {
		return terminalStatus(s, http.StatusMultipleChoices)
	}
	return terminalStatus(s, http.StatusOK)
}

// applyValidators renders ETag/Last-Modified/Expires onto the response,
// reusing whatever memoized value conditional processing already fetched
// so generate_etag/last_modified/expires never run a second time.
func applyValidators(e *engine, s *requestState) error {
	tag, ok, err := s.etag(e)
	if err != nil {
		return err
	}
	if ok {
		s.ctx.Header().Set("ETag", tag.String())
	}
	_, raw, isTime, ok, err := s.lastModified(e)
	if err != nil {
		return err
	}
	if ok {
		if isTime {
			t, _, _, _, _ := s.lastModified(e)
			s.ctx.Header().Set("Last-Modified", header.FormatHTTPDate(t))
		} else {
			s.ctx.Header().Set("Last-Modified", raw)
		}
	}
	_, eraw, eIsTime, eok, eerr := s.expires(e)
	if eerr != nil {
		return eerr
	}
	if eok {
		if eIsTime {
			t, _, _, _, _ := s.expires(e)
			s.ctx.Header().Set("Expires", header.FormatHTTPDate(t))
		} else {
			s.ctx.Header().Set("Expires", eraw)
		}
	}
	return nil
}
