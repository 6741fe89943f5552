package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/trademark-relay/models"
)

type resultsModel struct {
	query  models.SearchQuery
	items  []models.ResearchItem
	total  int
	idx    int
	status string
}

func newResultsModel(query models.SearchQuery, result models.ResearchResult) resultsModel {
	return resultsModel{query: query, items: result.Items, total: result.Total}
}

func (m resultsModel) current() (models.ResearchItem, bool) {
	if len(m.items) == 0 || m.idx < 0 || m.idx >= len(m.items) {
		return models.ResearchItem{}, false
	}
	return m.items[m.idx], true
}

func (m resultsModel) move(delta int) resultsModel {
	m.idx += delta
	if m.idx >= len(m.items) {
		m.idx = len(m.items) - 1
	}
	if m.idx < 0 {
		m.idx = 0
	}
	return m
}

// nextPage returns the query for the following page, or false on the last
// page.
func (m resultsModel) nextPage() (models.SearchQuery, bool) {
	q := m.query
	if q.Limit <= 0 || q.Next+q.Limit >= m.total {
		return q, false
	}
	q.Next += q.Limit
	return q, true
}

func (m resultsModel) prevPage() (models.SearchQuery, bool) {
	q := m.query
	if q.Next <= 0 {
		return q, false
	}
	q.Next -= q.Limit
	if q.Next < 0 {
		q.Next = 0
	}
	return q, true
}

func (m resultsModel) View() string {
	var b strings.Builder

	if len(m.items) == 0 {
		b.WriteString("No trademarks found\n")
	} else {
		first := m.query.Next + 1
		fmt.Fprintf(&b, "%d-%d of %d\n\n", first, m.query.Next+len(m.items), m.total)
		for i, item := range m.items {
			line := fmt.Sprintf("%-12s %-30s %-30s %s",
				valueOrDash(item.ApplicationNo),
				fitText(valueOrDash(item.MarkName), 30),
				fitText(valueOrDash(item.Holder), 30),
				valueOrDash(item.NiceClasses))
			if i == m.idx {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString("  " + line)
			}
			b.WriteString("\n")
		}
	}

	if m.status != "" {
		b.WriteString("\n" + m.status + "\n")
	}

	return renderPage("RESULTS", b.String(),
		"enter: details  c: copy no  n/p: page  /: new search  f: lookup  v: about  q: quit")
}
