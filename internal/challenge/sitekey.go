package challenge

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const (
	renderScriptMarker = "api.js?render="
	renderExplicit     = "explicit"
)

// Widget is a challenge widget rendered into the page markup.
type Widget struct {
	SiteKey   string
	Invisible bool
}

func parseDocument(html string) (*goquery.Document, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("error parsing page html: %w", err)
	}
	return doc, nil
}

// FindRenderKey returns the site key of the first script whose src loads
// the challenge library with a "render=<key>" query. Scripts rendering in
// explicit mode carry no key and are skipped.
func FindRenderKey(html string) (string, bool) {
	doc, err := parseDocument(html)
	if err != nil {
		return "", false
	}
	return findRenderKey(doc)
}

func findRenderKey(doc *goquery.Document) (string, bool) {
	var key string
	doc.Find("script[src]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		src, _ := s.Attr("src")
		if !strings.Contains(src, renderScriptMarker) {
			return true
		}

		u, err := url.Parse(src)
		if err != nil {
			return true
		}
		render := strings.TrimSpace(u.Query().Get("render"))
		if render == "" || render == renderExplicit {
			return true
		}

		key = render
		return false
	})
	return key, key != ""
}

// FindWidgets lists elements carrying a data-sitekey attribute.
func FindWidgets(html string) []Widget {
	doc, err := parseDocument(html)
	if err != nil {
		return nil
	}
	return findWidgets(doc)
}

func findWidgets(doc *goquery.Document) []Widget {
	var widgets []Widget
	doc.Find("[data-sitekey]").Each(func(_ int, s *goquery.Selection) {
		key := strings.TrimSpace(s.AttrOr("data-sitekey", ""))
		if key == "" {
			return
		}
		widgets = append(widgets, Widget{
			SiteKey:   key,
			Invisible: strings.EqualFold(s.AttrOr("data-size", ""), "invisible"),
		})
	})
	return widgets
}
