package service_test

import (
	"encoding/json"
	"testing"

	"github.com/MKhiriev/trademark-relay/internal/service"
	"github.com/MKhiriev/trademark-relay/internal/validators"
	"github.com/MKhiriev/trademark-relay/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func rawParams(kv ...string) map[string]json.RawMessage {
	params := make(map[string]json.RawMessage, len(kv)/2)
	for i := 0; i+1 < len(kv); i += 2 {
		params[kv[i]] = json.RawMessage(kv[i+1])
	}
	return params
}

func TestAssembleSearchPayload_Defaults(t *testing.T) {
	req := models.SearchRequest{Params: rawParams(models.ParamSearchText, `"ACME"`)}

	payload := service.AssembleSearchPayload(req, "tok-1")

	body, err := json.Marshal(payload)
	require.NoError(t, err)
	assert.JSONEq(t, `{
		"type": "trademark",
		"params": {
			"markTypeId": "0",
			"searchText": "ACME",
			"searchTextOption": "isContains",
			"holderName": "",
			"holderNameOption": "isStartWith",
			"bulletinNo": "",
			"gazzetteNo": "",
			"clientNo": "",
			"niceClasses": "",
			"niceClassesFor": "all"
		},
		"next": 0,
		"limit": 20,
		"order": null,
		"token": "tok-1"
	}`, string(body))
}

func TestAssembleSearchPayload_EachFilterCarriedUnmodified(t *testing.T) {
	for _, name := range models.RecognizedFilters {
		t.Run(name, func(t *testing.T) {
			req := models.SearchRequest{Params: rawParams(name, `"  Kılıç Ltd. "`)}

			payload := service.AssembleSearchPayload(req, "tok")

			assert.Equal(t, "  Kılıç Ltd. ", payload.Params[name])
			for _, other := range models.RecognizedFilters {
				if other != name {
					assert.Equal(t, "", payload.Params[other], other)
				}
			}
		})
	}
}

func TestAssembleSearchPayload_CallerValues(t *testing.T) {
	req := models.SearchRequest{
		Params: rawParams(
			models.ParamHolderName, `"ACME HOLDING"`,
			models.ParamClientNo, `12345`,
			models.ParamSearchText, `"   "`,
			"searchTextOption", `"isEqual"`,
			"bulletinNo", `"410"`,
			"markStatus", `"registered"`,
			"flag", `true`,
			"nested", `{"a":1}`,
		),
	}

	p := service.AssembleSearchPayload(req, "tok").Params

	assert.Equal(t, "ACME HOLDING", p[models.ParamHolderName])
	assert.Equal(t, "12345", p[models.ParamClientNo], "numbers are sent as strings")
	assert.Equal(t, "", p[models.ParamSearchText], "blank value keeps the default")
	assert.Equal(t, "isContains", p["searchTextOption"], "match mode is fixed")
	assert.Equal(t, "410", p["bulletinNo"])
	assert.Equal(t, "registered", p["markStatus"], "unknown params pass through")
	assert.NotContains(t, p, "flag")
	assert.NotContains(t, p, "nested")
}

func TestAssembleSearchPayload_PagingAndOrder(t *testing.T) {
	next, limit := 40, 10
	req := models.SearchRequest{
		Params: rawParams(models.ParamSearchText, `"ACME"`),
		Next:   &next,
		Limit:  &limit,
		Order:  json.RawMessage(`{"field":"applicationDate","dir":"desc"}`),
	}

	p := service.AssembleSearchPayload(req, "tok")

	assert.Equal(t, 40, p.Next)
	assert.Equal(t, 10, p.Limit)
	assert.JSONEq(t, `{"field":"applicationDate","dir":"desc"}`, string(p.Order))
}

func TestAssembleSearchPayload_Deterministic(t *testing.T) {
	req := models.SearchRequest{
		Params: rawParams(models.ParamSearchText, `"ACME"`, models.ParamNiceClasses, `"9 35"`, "extra", `"x"`),
		Order:  json.RawMessage(`["a","b"]`),
	}

	first, err := json.Marshal(service.AssembleSearchPayload(req, "tok"))
	require.NoError(t, err)

	for i := 0; i < 20; i++ {
		again, err := json.Marshal(service.AssembleSearchPayload(req, "tok"))
		require.NoError(t, err)
		assert.Equal(t, string(first), string(again))
	}
}

func TestAssembleSearchPayload_DoesNotMutateRequest(t *testing.T) {
	req := models.SearchRequest{Params: rawParams(models.ParamSearchText, `"ACME"`)}

	_ = service.AssembleSearchPayload(req, "tok")

	assert.Len(t, req.Params, 1)
	assert.Nil(t, req.Order)
}

func TestAssembleFileDetailPayload(t *testing.T) {
	tests := []struct {
		name   string
		id     string
		wantID string
	}{
		{"string id", `"2023/12345"`, "2023/12345"},
		{"numeric id", `123`, "123"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload, err := service.AssembleFileDetailPayload(models.FileDetailRequest{ID: json.RawMessage(tt.id)}, "tok-2")
			require.NoError(t, err)

			body, err := json.Marshal(payload)
			require.NoError(t, err)
			assert.JSONEq(t, `{"type":"trademark-file","params":{"id":"`+tt.wantID+`"},"token":"tok-2"}`, string(body))
		})
	}
}

func TestAssembleFileDetailPayload_InvalidID(t *testing.T) {
	for _, id := range []string{``, `null`, `"  "`, `{"id":1}`} {
		t.Run(id, func(t *testing.T) {
			_, err := service.AssembleFileDetailPayload(models.FileDetailRequest{ID: json.RawMessage(id)}, "tok")

			var vErr *validators.ValidationError
			assert.ErrorAs(t, err, &vErr)
		})
	}
}
