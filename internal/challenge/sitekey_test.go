package challenge

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFindRenderKey(t *testing.T) {
	tests := []struct {
		name    string
		html    string
		wantKey string
		wantOK  bool
	}{
		{
			name:    "render key",
			html:    `<html><head><script src="https://www.google.com/recaptcha/api.js?render=6LcKey"></script></head></html>`,
			wantKey: "6LcKey",
			wantOK:  true,
		},
		{
			name:    "explicit script skipped",
			html:    `<script src="https://www.google.com/recaptcha/api.js?render=explicit"></script><script src="/recaptcha/api.js?render=6LcSecond&hl=tr"></script>`,
			wantKey: "6LcSecond",
			wantOK:  true,
		},
		{
			name: "unrelated scripts",
			html: `<script src="/static/app.js"></script><script>var render = "x";</script>`,
		},
		{
			name: "empty render",
			html: `<script src="https://www.google.com/recaptcha/api.js?render="></script>`,
		},
		{
			name: "no document",
			html: ``,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			key, ok := FindRenderKey(tt.html)
			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.wantKey, key)
		})
	}
}

func TestFindWidgets(t *testing.T) {
	html := `<form>
  <div class="g-recaptcha" data-sitekey="visible-key"></div>
  <div class="g-recaptcha" data-sitekey="hidden-key" data-size="Invisible"></div>
  <div data-sitekey="  "></div>
</form>`

	assert.Equal(t, []Widget{
		{SiteKey: "visible-key"},
		{SiteKey: "hidden-key", Invisible: true},
	}, FindWidgets(html))

	assert.Empty(t, FindWidgets(`<p>nothing here</p>`))
}
