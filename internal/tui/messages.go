package tui

import "github.com/MKhiriev/trademark-relay/models"

type searchDoneMsg struct {
	query  models.SearchQuery
	result models.ResearchResult
	err    error
}

type detailsDoneMsg struct {
	applicationNo string
	details       string
	err           error
}

type versionDoneMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	applicationNo string
	err           error
}

type clearStatusMsg struct{}
