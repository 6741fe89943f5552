package service

import (
	"encoding/json"
	"maps"
	"strings"

	"github.com/MKhiriev/trademark-relay/internal/utils"
	"github.com/MKhiriev/trademark-relay/internal/validators"
	"github.com/MKhiriev/trademark-relay/models"
)

// searchCategory describes the params the research API expects for one
// search type. Defaults are overridden by non-blank caller values; fixed
// params always win.
type searchCategory struct {
	defaults map[string]string
	fixed    map[string]string
}

var searchCategories = map[string]searchCategory{
	models.SearchTypeTrademark: {
		defaults: map[string]string{
			"markTypeId":            "0",
			models.ParamSearchText:  "",
			models.ParamHolderName:  "",
			"bulletinNo":            "",
			"gazzetteNo":            "",
			models.ParamClientNo:    "",
			models.ParamNiceClasses: "",
		},
		fixed: map[string]string{
			"searchTextOption": "isContains",
			"holderNameOption": "isStartWith",
			"niceClassesFor":   "all",
		},
	},
}

var jsonNull = json.RawMessage("null")

// AssembleSearchPayload builds the upstream body of a validated search.
//
// Caller params replace category defaults only when they are strings that
// are non-blank after trimming, or numbers. The value is kept as sent.
// Params the category does not know are passed through under the same rule.
// The result depends on its arguments only.
func AssembleSearchPayload(req models.SearchRequest, token string) models.SearchPayload {
	searchType := req.SearchType()
	category := searchCategories[searchType]

	params := make(map[string]string, len(category.defaults)+len(category.fixed)+len(req.Params))
	maps.Copy(params, category.defaults)

	for name, raw := range req.Params {
		if _, isFixed := category.fixed[name]; isFixed {
			continue
		}
		value, ok := utils.JSONScalar(raw)
		if !ok || strings.TrimSpace(value) == "" {
			continue
		}
		params[name] = value
	}
	maps.Copy(params, category.fixed)

	order := req.Order
	if len(order) == 0 {
		order = jsonNull
	}

	return models.SearchPayload{
		Type:   searchType,
		Params: params,
		Next:   req.NextOrDefault(),
		Limit:  req.LimitOrDefault(),
		Order:  order,
		Token:  token,
	}
}

// AssembleFileDetailPayload builds the upstream body of a file-detail lookup.
// A numeric id is sent in its string form.
func AssembleFileDetailPayload(req models.FileDetailRequest, token string) (models.FileDetailPayload, error) {
	id, ok := utils.JSONScalar(req.ID)
	if !ok || strings.TrimSpace(id) == "" {
		return models.FileDetailPayload{}, validators.NewValidationError(validators.FieldID, validators.ErrEmptyFileID)
	}

	return models.FileDetailPayload{
		Type:   models.FileDetailType,
		Params: models.FileDetailParams{ID: id},
		Token:  token,
	}, nil
}
