package validators

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/MKhiriev/trademark-relay/internal/utils"
	"github.com/MKhiriev/trademark-relay/models"
)

// Field name constants used to restrict validation to a subset of checks.
const (
	// FieldFilters targets the recognized search filters.
	FieldFilters = "params"

	// FieldType targets the search category.
	FieldType = "type"

	// FieldNext targets the page offset.
	FieldNext = "next"

	// FieldLimit targets the page size.
	FieldLimit = "limit"

	// FieldID targets the application number of a file-detail lookup.
	FieldID = "id"
)

var searchFields = []string{FieldType, FieldFilters, FieldNext, FieldLimit}

// knownCategories is the set of search types with registered defaults.
var knownCategories = map[string]struct{}{
	models.SearchTypeTrademark: {},
}

// ResearchValidator checks inbound relay requests. It has no side effects.
type ResearchValidator struct{}

// NewResearchValidator returns a Validator for search and file-detail
// requests.
func NewResearchValidator() Validator {
	return &ResearchValidator{}
}

func (v *ResearchValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.SearchRequest:
		return v.validateSearchRequest(ctx, value, fields...)
	case *models.SearchRequest:
		return v.validateSearchRequest(ctx, *value, fields...)

	case models.FileDetailRequest:
		return v.validateFileDetailRequest(ctx, value, fields...)
	case *models.FileDetailRequest:
		return v.validateFileDetailRequest(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ResearchValidator) validateSearchRequest(_ context.Context, req models.SearchRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = searchFields
	}

	for _, field := range fields {
		switch field {
		case FieldType:
			if _, ok := knownCategories[req.SearchType()]; !ok {
				return &ValidationError{Field: FieldType, Err: ErrUnknownCategory, Detail: req.SearchType()}
			}
		case FieldFilters:
			if !HasSearchFilter(req) {
				return NewValidationError(FieldFilters, ErrNoSearchFilter)
			}
		case FieldNext:
			if req.NextOrDefault() < 0 {
				return NewValidationError(FieldNext, ErrInvalidNext)
			}
		case FieldLimit:
			if req.LimitOrDefault() < 1 {
				return NewValidationError(FieldLimit, ErrInvalidLimit)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ResearchValidator) validateFileDetailRequest(_ context.Context, req models.FileDetailRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID}
	}

	for _, field := range fields {
		switch field {
		case FieldID:
			value, ok := utils.JSONScalar(req.ID)
			if !ok || strings.TrimSpace(value) == "" || isZeroNumber(req.ID) {
				return NewValidationError(FieldID, ErrEmptyFileID)
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isZeroNumber reports a JSON number equal to zero. The research site has no
// file with id 0 and treats it as a missing id; the string "0" is left alone.
func isZeroNumber(raw json.RawMessage) bool {
	var v any
	if err := json.Unmarshal(raw, &v); err != nil {
		return false
	}
	n, ok := v.(float64)
	return ok && n == 0
}

// HasSearchFilter reports whether at least one recognized filter carries a
// string that is non-blank after trimming, or a number.
func HasSearchFilter(req models.SearchRequest) bool {
	for _, name := range models.RecognizedFilters {
		value, ok := utils.JSONScalar(req.Params[name])
		if ok && strings.TrimSpace(value) != "" {
			return true
		}
	}
	return false
}
