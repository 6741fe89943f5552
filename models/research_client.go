package models

import (
	"encoding/json"
	"strings"
)

// SearchQuery is a search as entered in the terminal client.
type SearchQuery struct {
	SearchText  string
	HolderName  string
	ClientNo    string
	NiceClasses string
	Next        int
	Limit       int
}

// ToRequest converts the query to a relay request, leaving blank fields out.
func (q SearchQuery) ToRequest() SearchRequest {
	params := make(map[string]json.RawMessage, len(RecognizedFilters))
	for name, value := range map[string]string{
		ParamSearchText:  q.SearchText,
		ParamHolderName:  q.HolderName,
		ParamClientNo:    q.ClientNo,
		ParamNiceClasses: q.NiceClasses,
	} {
		value = strings.TrimSpace(value)
		if value == "" {
			continue
		}
		encoded, _ := json.Marshal(value)
		params[name] = encoded
	}

	req := SearchRequest{Params: params}
	if q.Next > 0 {
		next := q.Next
		req.Next = &next
	}
	if q.Limit > 0 {
		limit := q.Limit
		req.Limit = &limit
	}
	return req
}

// ResearchItem is one row of a search result as shown by the client.
// Raw keeps the upstream JSON of the row.
type ResearchItem struct {
	ApplicationNo string
	MarkName      string
	Holder        string
	NiceClasses   string
	Status        string
	Raw           string
}

// ResearchResult is a decoded search response.
type ResearchResult struct {
	Total int
	Items []ResearchItem
}
