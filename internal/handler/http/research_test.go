package http

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/MKhiriev/trademark-relay/internal/adapter"
	"github.com/MKhiriev/trademark-relay/internal/browser"
	"github.com/MKhiriev/trademark-relay/internal/challenge"
	"github.com/MKhiriev/trademark-relay/internal/config"
	"github.com/MKhiriev/trademark-relay/internal/logger"
	"github.com/MKhiriev/trademark-relay/internal/mock"
	"github.com/MKhiriev/trademark-relay/internal/service"
	"github.com/MKhiriev/trademark-relay/internal/validators"
	"github.com/MKhiriev/trademark-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

const testPageURL = "https://www.turkpatent.gov.tr/arastirma-yap"

type relayStubs struct {
	launcher *mock.MockLauncher
	session  *mock.MockSession
	acquirer *mock.MockAcquirer
	adapter  *mock.MockResearchAdapter
}

// newRelayRouter wires the real research service to gomock collaborators,
// so requests travel the whole handler -> validator -> orchestrator path.
func newRelayRouter(t *testing.T) (http.Handler, relayStubs) {
	t.Helper()

	ctrl := gomock.NewController(t)
	stubs := relayStubs{
		launcher: mock.NewMockLauncher(ctrl),
		session:  mock.NewMockSession(ctrl),
		acquirer: mock.NewMockAcquirer(ctrl),
		adapter:  mock.NewMockResearchAdapter(ctrl),
	}

	research, err := service.NewResearchService(service.ResearchDeps{
		Launcher: stubs.launcher,
		Acquirer: stubs.acquirer,
		Adapter:  stubs.adapter,
	}, service.ResearchOptions{PageURL: testPageURL}, logger.Nop())
	require.NoError(t, err)

	h := NewHandler(newTestServices(research), config.Server{}, nil, logger.Nop())
	return h.Init(), stubs
}

// echo makes the relay stub answer with the payload it was given.
func echo(_ context.Context, payload models.ResearchPayload) ([]byte, error) {
	return json.Marshal(payload)
}

func postJSON(path, body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return req
}

func decodeError(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	var resp models.ErrorResponse
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &resp))
	return resp.Error
}

// ─────────────────────────────────────────────
// End-to-end relay scenarios
// ─────────────────────────────────────────────

func TestSearch_RelaysAssembledPayload(t *testing.T) {
	router, stubs := newRelayRouter(t)

	stubs.launcher.EXPECT().Launch(gomock.Any()).Return(stubs.session, nil)
	stubs.session.EXPECT().Navigate(gomock.Any(), testPageURL).Return(nil)
	stubs.acquirer.EXPECT().Acquire(gomock.Any(), stubs.session).Return("tok-1", nil)
	stubs.adapter.EXPECT().Research(gomock.Any(), gomock.Any()).DoAndReturn(echo)
	stubs.session.EXPECT().Close().Return(nil).Times(1)

	rr := serve(router, postJSON("/search", `{"params":{"searchText":"ACME"}}`))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "application/json", rr.Header().Get("Content-Type"))
	assert.JSONEq(t, `{
		"type":"trademark",
		"params":{"markTypeId":"0","searchText":"ACME","searchTextOption":"isContains","holderName":"","holderNameOption":"isStartWith","bulletinNo":"","gazzetteNo":"","clientNo":"","niceClasses":"","niceClassesFor":"all"},
		"next":0,"limit":20,"order":null,"token":"tok-1"
	}`, rr.Body.String())
}

func TestSearch_EmptyBodyRejectedWithoutRelay(t *testing.T) {
	for _, body := range []string{`{}`, ``, `{"params":{"searchText":"   "}}`} {
		t.Run(body, func(t *testing.T) {
			// no expectations: launcher, acquirer and relay must stay untouched
			router, _ := newRelayRouter(t)

			rr := serve(router, postJSON("/search", body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.NotEmpty(t, decodeError(t, rr))
		})
	}
}

func TestFileDetails_RelaysAssembledPayload(t *testing.T) {
	router, stubs := newRelayRouter(t)

	stubs.launcher.EXPECT().Launch(gomock.Any()).Return(stubs.session, nil)
	stubs.session.EXPECT().Navigate(gomock.Any(), testPageURL).Return(nil)
	stubs.acquirer.EXPECT().Acquire(gomock.Any(), stubs.session).Return("tok-2", nil)
	stubs.adapter.EXPECT().Research(gomock.Any(), gomock.Any()).DoAndReturn(echo)
	stubs.session.EXPECT().Close().Return(nil).Times(1)

	rr := serve(router, postJSON("/file-details", `{"id":"2023/12345"}`))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"type":"trademark-file","params":{"id":"2023/12345"},"token":"tok-2"}`, rr.Body.String())
}

func TestSearch_ChallengeTimeoutReleasesSessionOnce(t *testing.T) {
	router, stubs := newRelayRouter(t)

	stubs.launcher.EXPECT().Launch(gomock.Any()).Return(stubs.session, nil)
	stubs.session.EXPECT().Navigate(gomock.Any(), testPageURL).Return(nil)
	stubs.acquirer.EXPECT().Acquire(gomock.Any(), stubs.session).
		Return("", &challenge.TimeoutError{What: "challenge library", After: 15 * time.Second})
	stubs.session.EXPECT().Close().Return(nil).Times(1)

	rr := serve(router, postJSON("/search", `{"params":{"searchText":"ACME"}}`))

	assert.Equal(t, http.StatusInternalServerError, rr.Code)
	assert.Contains(t, decodeError(t, rr), "timed out")
}

func TestFileDetails_MissingID(t *testing.T) {
	for _, body := range []string{`{}`, `{"id":""}`, `{"id":null}`} {
		t.Run(body, func(t *testing.T) {
			router, _ := newRelayRouter(t)

			rr := serve(router, postJSON("/file-details", body))

			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, validators.ErrEmptyFileID.Error(), decodeError(t, rr))
		})
	}
}

func TestFileDetails_NumericID(t *testing.T) {
	router, stubs := newRelayRouter(t)

	stubs.launcher.EXPECT().Launch(gomock.Any()).Return(stubs.session, nil)
	stubs.session.EXPECT().Navigate(gomock.Any(), gomock.Any()).Return(nil)
	stubs.acquirer.EXPECT().Acquire(gomock.Any(), gomock.Any()).Return("tok", nil)
	stubs.adapter.EXPECT().Research(gomock.Any(), gomock.Any()).DoAndReturn(echo)
	stubs.session.EXPECT().Close().Return(nil)

	rr := serve(router, postJSON("/file-details", `{"id":123}`))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, `{"type":"trademark-file","params":{"id":"123"},"token":"tok"}`, rr.Body.String())
}

// ─────────────────────────────────────────────
// Status mapping
// ─────────────────────────────────────────────

func TestResearchHandlers_StatusMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{
			name:       "validation",
			err:        &service.StageError{Stage: service.StageValidating, Err: validators.NewValidationError(validators.FieldFilters, validators.ErrNoSearchFilter)},
			wantStatus: http.StatusBadRequest,
		},
		{
			name:       "browser",
			err:        &service.StageError{Stage: service.StageAcquiringBrowser, Err: &browser.Error{Op: browser.OpLaunch, Err: errors.New("no chrome")}},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "token",
			err:        &service.StageError{Stage: service.StageSolvingChallenge, Err: &challenge.TokenAcquisitionError{Strategy: "self", Err: challenge.ErrSiteKeyNotFound}},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "upstream",
			err:        &service.StageError{Stage: service.StageRelaying, Err: &adapter.UpstreamError{StatusCode: 502, Err: adapter.ErrUpstreamStatus}},
			wantStatus: http.StatusInternalServerError,
		},
		{
			name:       "unclassified",
			err:        errors.New("unexpected"),
			wantStatus: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			research := &fakeResearchService{
				searchFn: func(context.Context, models.SearchRequest) ([]byte, error) { return nil, tt.err },
				fileDetailsFn: func(context.Context, models.FileDetailRequest) ([]byte, error) {
					return nil, tt.err
				},
			}
			router := NewHandler(newTestServices(research), config.Server{}, nil, logger.Nop()).Init()

			for _, path := range []string{"/search", "/file-details"} {
				rr := serve(router, postJSON(path, `{}`))
				assert.Equal(t, tt.wantStatus, rr.Code, path)
				assert.NotEmpty(t, decodeError(t, rr), path)
			}
		})
	}
}

func TestSearch_MalformedJSON(t *testing.T) {
	called := false
	research := &fakeResearchService{
		searchFn: func(context.Context, models.SearchRequest) ([]byte, error) {
			called = true
			return nil, nil
		},
	}
	router := NewHandler(newTestServices(research), config.Server{}, nil, logger.Nop()).Init()

	for _, body := range []string{`{`, `[1,2]`, `{"params":"x"}`, `"text"`} {
		rr := serve(router, postJSON("/search", body))

		assert.Equal(t, http.StatusBadRequest, rr.Code, body)
		assert.Contains(t, decodeError(t, rr), validators.ErrMalformedRequest.Error(), body)
	}
	assert.False(t, called)
}

func TestSearch_UpstreamBodyReturnedVerbatim(t *testing.T) {
	upstream := []byte(`{"payload":{"item":[{"applicationNo":"2023/1"}]},"  spacing" : true}`)
	research := &fakeResearchService{
		searchFn: func(context.Context, models.SearchRequest) ([]byte, error) { return upstream, nil },
	}
	router := NewHandler(newTestServices(research), config.Server{}, nil, logger.Nop()).Init()

	rr := serve(router, postJSON("/search", `{"params":{"searchText":"x"}}`))

	assert.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, bytes.Equal(upstream, rr.Body.Bytes()))
}

func TestSearch_RequestDecodedForService(t *testing.T) {
	var got models.SearchRequest
	research := &fakeResearchService{
		searchFn: func(_ context.Context, req models.SearchRequest) ([]byte, error) {
			got = req
			return []byte(`{}`), nil
		},
	}
	router := NewHandler(newTestServices(research), config.Server{}, nil, logger.Nop()).Init()

	rr := serve(router, postJSON("/search", `{"type":"trademark","params":{"holderName":"X","clientNo":7},"next":20,"limit":5,"order":["a"]}`))

	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "trademark", got.Type)
	assert.JSONEq(t, `"X"`, string(got.Params["holderName"]))
	assert.JSONEq(t, `7`, string(got.Params["clientNo"]))
	assert.Equal(t, 20, got.NextOrDefault())
	assert.Equal(t, 5, got.LimitOrDefault())
	assert.JSONEq(t, `["a"]`, string(got.Order))
}
