package browser

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const fakeResearchPage = `<!doctype html>
<html><head>
<script src="https://www.google.com/recaptcha/api.js?render=site-key-1"></script>
</head><body>
<script>
setTimeout(function () {
  window.grecaptcha = {
    ready: function (cb) { cb(); },
    execute: function (key, opts) { return Promise.resolve("tok-" + key + "-" + opts.action); }
  };
}, 100);
</script>
</body></html>`

// Runs only when RELAY_BROWSER_TESTS is set and Chrome is installed.
func TestLaunchers_AgainstLocalPage(t *testing.T) {
	if os.Getenv("RELAY_BROWSER_TESTS") == "" {
		t.Skip("set RELAY_BROWSER_TESTS=1 to run browser tests")
	}

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(fakeResearchPage))
	}))
	defer srv.Close()

	launchers := map[string]Launcher{
		"chromedp": NewChromedpLauncher(Options{Headless: true, NavigationTimeout: 30 * time.Second}),
		"rod":      NewRodLauncher(Options{Headless: true, NavigationTimeout: 30 * time.Second, Stealth: true}),
	}

	for name, l := range launchers {
		t.Run(name, func(t *testing.T) {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()

			s, err := l.Launch(ctx)
			require.NoError(t, err)
			defer s.Close()

			require.NoError(t, s.Navigate(ctx, srv.URL))

			html, err := s.HTML(ctx)
			require.NoError(t, err)
			assert.Contains(t, html, "api.js?render=site-key-1")

			require.NoError(t, s.WaitFor(ctx, "window.grecaptcha !== undefined", 5*time.Second))

			var token string
			require.NoError(t, s.Evaluate(ctx, `window.grecaptcha.execute("k", {action: "search"})`, &token))
			assert.Equal(t, "tok-k-search", token)

			err = s.WaitFor(ctx, "window.neverDefined !== undefined", 300*time.Millisecond)
			assert.ErrorIs(t, err, ErrWaitTimeout)

			require.NoError(t, s.Close())
			require.NoError(t, s.Close())
		})
	}
}
