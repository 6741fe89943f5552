package models

import "encoding/json"

// Search categories understood by the research API.
const (
	SearchTypeTrademark = "trademark"
	FileDetailType      = "trademark-file"
)

// Recognized search filters. At least one of them must carry a non-blank
// value for a search to be accepted.
const (
	ParamSearchText  = "searchText"
	ParamHolderName  = "holderName"
	ParamClientNo    = "clientNo"
	ParamNiceClasses = "niceClasses"
)

// RecognizedFilters lists the filters checked by search validation, in the
// order they are reported to callers.
var RecognizedFilters = []string{ParamSearchText, ParamHolderName, ParamClientNo, ParamNiceClasses}

// Paging defaults applied when the caller omits next or limit.
const (
	DefaultNext  = 0
	DefaultLimit = 20
)

// SearchRequest is the inbound body of POST /search.
//
// Params values are kept raw so validation and payload assembly can tell
// strings, numbers and other JSON kinds apart.
type SearchRequest struct {
	Type   string                     `json:"type,omitempty"`
	Params map[string]json.RawMessage `json:"params,omitempty"`
	Next   *int                       `json:"next,omitempty"`
	Limit  *int                       `json:"limit,omitempty"`
	Order  json.RawMessage            `json:"order,omitempty"`
}

// SearchType returns the requested category, defaulting to trademark.
func (r SearchRequest) SearchType() string {
	if r.Type == "" {
		return SearchTypeTrademark
	}
	return r.Type
}

// NextOrDefault returns the page offset, 0 when absent.
func (r SearchRequest) NextOrDefault() int {
	if r.Next == nil {
		return DefaultNext
	}
	return *r.Next
}

// LimitOrDefault returns the page size, 20 when absent.
func (r SearchRequest) LimitOrDefault() int {
	if r.Limit == nil {
		return DefaultLimit
	}
	return *r.Limit
}

// FileDetailRequest is the inbound body of POST /file-details.
// ID is the application number and may be sent as a string or a number.
type FileDetailRequest struct {
	ID json.RawMessage `json:"id"`
}

// ResearchPayload is a body accepted by the upstream research API.
type ResearchPayload interface {
	// ResearchType returns the value of the payload's "type" field.
	ResearchType() string
}

// SearchPayload is the upstream body for a search query.
//
// Params is a map so caller supplied filters the relay does not know about
// pass through untouched; encoding/json sorts map keys, which keeps the
// serialized form stable.
type SearchPayload struct {
	Type   string            `json:"type"`
	Params map[string]string `json:"params"`
	Next   int               `json:"next"`
	Limit  int               `json:"limit"`
	Order  json.RawMessage   `json:"order"`
	Token  string            `json:"token"`
}

// ResearchType implements [ResearchPayload].
func (p SearchPayload) ResearchType() string { return p.Type }

// FileDetailParams carries the application number of a detail lookup.
type FileDetailParams struct {
	ID string `json:"id"`
}

// FileDetailPayload is the upstream body for a file-detail lookup.
type FileDetailPayload struct {
	Type   string           `json:"type"`
	Params FileDetailParams `json:"params"`
	Token  string           `json:"token"`
}

// ResearchType implements [ResearchPayload].
func (p FileDetailPayload) ResearchType() string { return p.Type }

// ErrorResponse is the body written for every non-200 relay response.
type ErrorResponse struct {
	Error string `json:"error"`
}

// HealthResponse is the body of GET /healthz.
type HealthResponse struct {
	Status string `json:"status"`
}
