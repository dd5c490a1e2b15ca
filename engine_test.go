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

package restmachine_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/freerware/restmachine"
	"github.com/freerware/restmachine/clock"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type EngineTestSuite struct {
	suite.Suite

	mc    *gomock.Controller
	clock *clock.MockClock
}

func TestEngineTestSuite(t *testing.T) {
	suite.Run(t, new(EngineTestSuite))
}

func (s *EngineTestSuite) SetupTest() {
	s.mc = gomock.NewController(s.T())
	s.clock = clock.NewMockClock(s.mc)
}

func (s *EngineTestSuite) TearDownTest() {
	s.mc.Finish()
}

func (s *EngineTestSuite) run(res restmachine.Resource, req *http.Request, opts ...restmachine.Option) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	all := append([]restmachine.Option{restmachine.Clock(s.clock)}, opts...)
	restmachine.Run(rec, req, res, nil, all...)
	return rec
}

// (a) GET on a resource with only a producer falls all the way through to
// 200 with the negotiated content type and the producer's body.
func (s *EngineTestSuite) TestSimpleGET() {
	s.clock.EXPECT().Now().Return(time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC))

	res := restmachine.Resource{
		ContentTypesProvided: func(*restmachine.Context) ([]restmachine.ProvidedType, error) {
			return []restmachine.ProvidedType{
				{MediaType: "text/plain", Producer: func(*restmachine.Context) (restmachine.Body, error) {
					return restmachine.BytesBody([]byte("This is REST!")), nil
				}},
			}, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/simple", nil)
	rec := s.run(res, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("This is REST!", rec.Body.String())
	s.Equal("text/plain", rec.Header().Get("Content-Type"))
	s.NotEmpty(rec.Header().Get("Date"))
}

// (b) Accept negotiation picks the best offered media type and reflects it
// back on Content-Type, with Vary listing Accept once two types are on offer.
func (s *EngineTestSuite) TestContentNegotiation() {
	s.clock.EXPECT().Now().Return(time.Now())

	res := restmachine.Resource{
		ContentTypesProvided: func(*restmachine.Context) ([]restmachine.ProvidedType, error) {
			return []restmachine.ProvidedType{
				{MediaType: "text/plain", Producer: func(*restmachine.Context) (restmachine.Body, error) {
					return restmachine.BytesBody([]byte("plain")), nil
				}},
				{MediaType: "application/json", Producer: func(*restmachine.Context) (restmachine.Body, error) {
					return restmachine.BytesBody([]byte(`{"ok":true}`)), nil
				}},
			}, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/negotiated", nil)
	req.Header.Set("Accept", "application/json")
	rec := s.run(res, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(`{"ok":true}`, rec.Body.String())
	s.Equal("application/json", rec.Header().Get("Content-Type"))
	s.Equal("Accept", rec.Header().Get("Vary"))
}

// (c) An If-None-Match covering the generated ETag short-circuits a safe
// request to 304 without ever invoking the producer.
func (s *EngineTestSuite) TestIfNoneMatch_NotModified() {
	s.clock.EXPECT().Now().Return(time.Now())

	producerCalled := false
	res := restmachine.Resource{
		GenerateETag: func(*restmachine.Context) (restmachine.ETag, error) {
			return restmachine.StrongETag("abc123"), nil
		},
		ContentTypesProvided: func(*restmachine.Context) ([]restmachine.ProvidedType, error) {
			return []restmachine.ProvidedType{
				{MediaType: "text/plain", Producer: func(*restmachine.Context) (restmachine.Body, error) {
					producerCalled = true
					return restmachine.BytesBody([]byte("body")), nil
				}},
			}, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/etagged", nil)
	req.Header.Set("If-None-Match", `"abc123"`)
	rec := s.run(res, req)

	s.Equal(http.StatusNotModified, rec.Code)
	s.False(producerCalled)
}

// GenerateETag must run at most once per request even though both
// if_none_match and applyValidators consult it (Testable Property 3).
func (s *EngineTestSuite) TestETagMemoized() {
	s.clock.EXPECT().Now().Return(time.Now())

	calls := 0
	res := restmachine.Resource{
		GenerateETag: func(*restmachine.Context) (restmachine.ETag, error) {
			calls++
			return restmachine.StrongETag("xyz"), nil
		},
		ContentTypesProvided: func(*restmachine.Context) ([]restmachine.ProvidedType, error) {
			return []restmachine.ProvidedType{
				{MediaType: "text/plain", Producer: func(*restmachine.Context) (restmachine.Body, error) {
					return restmachine.BytesBody([]byte("body")), nil
				}},
			}, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/memo", nil)
	req.Header.Set("If-None-Match", `"other"`)
	rec := s.run(res, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal(`"xyz"`, rec.Header().Get("ETag"))
	s.Equal(1, calls)
}

// (d) If-Match against a resource that no longer carries the named tag
// fails the precondition before any method dispatch happens.
func (s *EngineTestSuite) TestIfMatch_PreconditionFailed() {
	s.clock.EXPECT().Now().Return(time.Now())

	res := restmachine.Resource{
		GenerateETag: func(*restmachine.Context) (restmachine.ETag, error) {
			return restmachine.StrongETag("current"), nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/conditional", nil)
	req.Header.Set("If-Match", `"stale"`)
	rec := s.run(res, req)

	s.Equal(http.StatusPreconditionFailed, rec.Code)
}

// (e) A resource without ResourceExists defaults to existing, and a PUT
// against it runs straight through IsConflict to the acceptor.
func (s *EngineTestSuite) TestPUT_ExistingResource() {
	s.clock.EXPECT().Now().Return(time.Now())

	res := restmachine.Resource{
		AllowedMethods: func(*restmachine.Context) ([]string, error) { return []string{http.MethodPut}, nil },
		ContentTypesAccepted: func(*restmachine.Context) ([]restmachine.AcceptedType, error) {
			return []restmachine.AcceptedType{
				{MediaType: "application/json", Acceptor: func(*restmachine.Context) (restmachine.LocationResult, error) {
					return restmachine.LocationResult{OK: true}, nil
				}},
			}, nil
		},
	}
	req := httptest.NewRequest(http.MethodPut, "/existing", nil)
	req.Header.Set("Content-Type", "application/json")
	rec := s.run(res, req)

	s.Equal(http.StatusNoContent, rec.Code)
}

// (f) A PUT to a resource ResourceExists reports missing skips the
// if-match/previously-existed/redirect chain and creates via the acceptor.
func (s *EngineTestSuite) TestPUT_ToMissing_Creates() {
	s.clock.EXPECT().Now().Return(time.Now())

	res := restmachine.Resource{
		AllowedMethods: func(*restmachine.Context) ([]string, error) { return []string{http.MethodPut}, nil },
		ResourceExists: func(*restmachine.Context) (bool, error) { return false, nil },
		ContentTypesAccepted: func(*restmachine.Context) ([]restmachine.AcceptedType, error) {
			return []restmachine.AcceptedType{
				{MediaType: "application/json", Acceptor: func(*restmachine.Context) (restmachine.LocationResult, error) {
					return restmachine.LocationResult{OK: true}, nil
				}},
			}, nil
		},
	}
	req := httptest.NewRequest(http.MethodPut, "/missing", nil)
	req.Header.Set("Content-Type", "application/json")
	rec := s.run(res, req)

	s.Equal(http.StatusCreated, rec.Code)
}

// (g) POST to a resource reporting neither existence nor prior existence,
// without AllowMissingPost, is a 404 and the acceptor never runs.
func (s *EngineTestSuite) TestPOST_ToMissing_NotFound() {
	s.clock.EXPECT().Now().Return(time.Now())

	acceptorCalled := false
	res := restmachine.Resource{
		AllowedMethods: func(*restmachine.Context) ([]string, error) { return []string{http.MethodPost}, nil },
		ResourceExists: func(*restmachine.Context) (bool, error) { return false, nil },
		ContentTypesAccepted: func(*restmachine.Context) ([]restmachine.AcceptedType, error) {
			return []restmachine.AcceptedType{
				{MediaType: "application/json", Acceptor: func(*restmachine.Context) (restmachine.LocationResult, error) {
					acceptorCalled = true
					return restmachine.LocationResult{OK: true}, nil
				}},
			}, nil
		},
	}
	req := httptest.NewRequest(http.MethodPost, "/missing", nil)
	req.Header.Set("Content-Type", "application/json")
	rec := s.run(res, req)

	s.Equal(http.StatusNotFound, rec.Code)
	s.False(acceptorCalled)
}

// (h) DELETE against a resource with no DeleteResource callback at all is
// a handler defect, mapped to 500.
func (s *EngineTestSuite) TestDELETE_NoCallback_InternalServerError() {
	s.clock.EXPECT().Now().Return(time.Now())

	res := restmachine.Resource{
		AllowedMethods: func(*restmachine.Context) ([]string, error) { return []string{http.MethodDelete}, nil },
	}
	req := httptest.NewRequest(http.MethodDelete, "/nodelete", nil)
	rec := s.run(res, req)

	s.Equal(http.StatusInternalServerError, rec.Code)
}

// DeleteResource returning false is equally a defect, not a "nothing to
// delete" outcome, and maps to the same 500.
func (s *EngineTestSuite) TestDELETE_ReturnsFalse_InternalServerError() {
	s.clock.EXPECT().Now().Return(time.Now())

	res := restmachine.Resource{
		AllowedMethods: func(*restmachine.Context) ([]string, error) { return []string{http.MethodDelete}, nil },
		DeleteResource: func(*restmachine.Context) (bool, error) { return false, nil },
	}
	req := httptest.NewRequest(http.MethodDelete, "/nodelete", nil)
	rec := s.run(res, req)

	s.Equal(http.StatusInternalServerError, rec.Code)
}

// (i) OPTIONS against a resource with no AllowedMethods/Options callbacks
// defaults Allow to the GET/HEAD/OPTIONS default list.
func (s *EngineTestSuite) TestOPTIONS_DefaultAllow() {
	s.clock.EXPECT().Now().Return(time.Now())

	res := restmachine.Resource{}
	req := httptest.NewRequest(http.MethodOptions, "/rest_empty_resource", nil)
	rec := s.run(res, req)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("HEAD, GET, OPTIONS", rec.Header().Get("Allow"))
}

// (j) An acceptor that sets its own status and returns ErrStop terminates
// the walk immediately with that status, bypassing finishAccept entirely.
func (s *EngineTestSuite) TestAcceptor_Stop() {
	s.clock.EXPECT().Now().Return(time.Now())

	res := restmachine.Resource{
		AllowedMethods: func(*restmachine.Context) ([]string, error) { return []string{http.MethodPost}, nil },
		ContentTypesAccepted: func(*restmachine.Context) ([]restmachine.AcceptedType, error) {
			return []restmachine.AcceptedType{
				{MediaType: "application/json", Acceptor: func(ctx *restmachine.Context) (restmachine.LocationResult, error) {
					ctx.SetStatus(http.StatusBadRequest)
					return restmachine.LocationResult{}, restmachine.ErrStop
				}},
			}, nil
		},
	}
	req := httptest.NewRequest(http.MethodPost, "/stoppy", nil)
	req.Header.Set("Content-Type", "application/json")
	rec := s.run(res, req)

	s.Equal(http.StatusBadRequest, rec.Code)
}

// MultipleChoices overrides a GET's usual 200 with 300 once the producer
// has already run and rendered its validators.
func (s *EngineTestSuite) TestGET_MultipleChoices() {
	s.clock.EXPECT().Now().Return(time.Now())

	res := restmachine.Resource{
		ContentTypesProvided: func(*restmachine.Context) ([]restmachine.ProvidedType, error) {
			return []restmachine.ProvidedType{
				{MediaType: "text/plain", Producer: func(*restmachine.Context) (restmachine.Body, error) {
					return restmachine.BytesBody([]byte("pick one")), nil
				}},
			}, nil
		},
		MultipleChoices: func(*restmachine.Context) (bool, error) { return true, nil },
	}
	req := httptest.NewRequest(http.MethodGet, "/ambiguous", nil)
	rec := s.run(res, req)

	s.Equal(http.StatusMultipleChoices, rec.Code)
}

// A callback that already wrote to the underlying ResponseWriter via the
// escape hatch leaves the finalizer a no-op: it must not re-send headers
// or a status line.
func (s *EngineTestSuite) TestResponseWriterEscapeHatch_FinalizerNoOp() {
	s.clock.EXPECT().Now().Times(0)

	res := restmachine.Resource{
		ServiceAvailable: func(ctx *restmachine.Context) (bool, error) {
			rw := ctx.ResponseWriter()
			rw.Write([]byte("handled directly"))
			return true, nil
		},
		ContentTypesProvided: func(*restmachine.Context) ([]restmachine.ProvidedType, error) {
			return []restmachine.ProvidedType{
				{MediaType: "text/plain", Producer: func(*restmachine.Context) (restmachine.Body, error) {
					return restmachine.BytesBody([]byte("never seen")), nil
				}},
			}, nil
		},
	}
	req := httptest.NewRequest(http.MethodGet, "/escape", nil)
	rec := s.run(res, req)

	s.Equal("handled directly", rec.Body.String())
}

// Unknown methods are rejected at known_methods before any other callback
// runs, per the default known-methods list.
func (s *EngineTestSuite) TestUnknownMethod_NotImplemented() {
	s.clock.EXPECT().Now().Return(time.Now())

	res := restmachine.Resource{}
	req := httptest.NewRequest("BREW", "/teapot", nil)
	rec := s.run(res, req)

	s.Equal(http.StatusNotImplemented, rec.Code)
}

// KnownMethods lets a host replace the default known-methods list.
func (s *EngineTestSuite) TestKnownMethods_Override() {
	s.clock.EXPECT().Now().Return(time.Now())

	res := restmachine.Resource{
		AllowedMethods: func(*restmachine.Context) ([]string, error) { return []string{"BREW"}, nil },
	}
	req := httptest.NewRequest("BREW", "/teapot", nil)
	rec := s.run(res, req, restmachine.KnownMethods("BREW"))

	s.NotEqual(http.StatusNotImplemented, rec.Code)
}
