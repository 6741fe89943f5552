package challenge

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/trademark-relay/internal/browser"
	"github.com/MKhiriev/trademark-relay/internal/mock"
)

const researchPageHTML = `<html><head>
<script src="https://www.google.com/recaptcha/api.js?render=6LcSiteKey"></script>
</head><body><form id="research"></form></body></html>`

// setToken stubs Evaluate decoding value into its out argument.
func setToken(value string) func(context.Context, string, any) error {
	return func(_ context.Context, _ string, out any) error {
		*(out.(*string)) = value
		return nil
	}
}

func TestSelfExtractor_Acquire(t *testing.T) {
	ctrl := gomock.NewController(t)
	page := mock.NewMockPage(ctrl)
	ctx := context.Background()

	var script string
	gomock.InOrder(
		page.EXPECT().HTML(ctx).Return(researchPageHTML, nil),
		page.EXPECT().WaitFor(ctx, libraryReadyPredicate, 15*time.Second).Return(nil),
		page.EXPECT().Evaluate(ctx, gomock.Any(), gomock.Any()).
			DoAndReturn(func(c context.Context, s string, out any) error {
				script = s
				return setToken("tok-1")(c, s, out)
			}),
	)

	token, err := NewSelfExtractor("search", 15*time.Second).Acquire(ctx, page)
	require.NoError(t, err)
	assert.Equal(t, "tok-1", token)
	assert.Contains(t, script, `grecaptcha.execute("6LcSiteKey", {"action":"search"})`)
	assert.Contains(t, script, "grecaptcha.ready")
}

func TestSelfExtractor_Failures(t *testing.T) {
	htmlErr := &browser.Error{Op: browser.OpHTML, Err: errors.New("target closed")}

	tests := []struct {
		name   string
		setup  func(page *mock.MockPage)
		assert func(t *testing.T, err error)
	}{
		{
			name: "page html fails",
			setup: func(page *mock.MockPage) {
				page.EXPECT().HTML(gomock.Any()).Return("", htmlErr)
			},
			assert: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, htmlErr)
			},
		},
		{
			name: "site key missing",
			setup: func(page *mock.MockPage) {
				page.EXPECT().HTML(gomock.Any()).Return(`<html><body></body></html>`, nil)
			},
			assert: func(t *testing.T, err error) {
				var acqErr *TokenAcquisitionError
				require.ErrorAs(t, err, &acqErr)
				assert.Equal(t, strategySelf, acqErr.Strategy)
				assert.ErrorIs(t, err, ErrSiteKeyNotFound)
			},
		},
		{
			name: "library never loads",
			setup: func(page *mock.MockPage) {
				page.EXPECT().HTML(gomock.Any()).Return(researchPageHTML, nil)
				page.EXPECT().WaitFor(gomock.Any(), libraryReadyPredicate, gomock.Any()).
					Return(&browser.Error{Op: browser.OpWait, Err: browser.ErrWaitTimeout})
			},
			assert: func(t *testing.T, err error) {
				var timeoutErr *TimeoutError
				require.ErrorAs(t, err, &timeoutErr)
				assert.Equal(t, "challenge library", timeoutErr.What)
				assert.Equal(t, time.Second, timeoutErr.After)
				assert.ErrorIs(t, err, browser.ErrWaitTimeout)
			},
		},
		{
			name: "empty token",
			setup: func(page *mock.MockPage) {
				page.EXPECT().HTML(gomock.Any()).Return(researchPageHTML, nil)
				page.EXPECT().WaitFor(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				page.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(setToken("  "))
			},
			assert: func(t *testing.T, err error) {
				var acqErr *TokenAcquisitionError
				require.ErrorAs(t, err, &acqErr)
				assert.ErrorIs(t, err, ErrEmptyToken)
			},
		},
		{
			name: "execution deadline",
			setup: func(page *mock.MockPage) {
				page.EXPECT().HTML(gomock.Any()).Return(researchPageHTML, nil)
				page.EXPECT().WaitFor(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
				page.EXPECT().Evaluate(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(&browser.Error{Op: browser.OpEvaluate, Err: context.DeadlineExceeded})
			},
			assert: func(t *testing.T, err error) {
				var timeoutErr *TimeoutError
				require.ErrorAs(t, err, &timeoutErr)
				assert.Equal(t, "challenge execution", timeoutErr.What)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			page := mock.NewMockPage(ctrl)
			tt.setup(page)

			token, err := NewSelfExtractor("search", time.Second).Acquire(context.Background(), page)
			require.Error(t, err)
			assert.Empty(t, token)
			tt.assert(t, err)
		})
	}
}

func TestExecuteScript_EscapesArguments(t *testing.T) {
	script, err := executeScript(`key"); alert(1); ("`, "a'b")
	require.NoError(t, err)
	assert.Contains(t, script, `"key\"); alert(1); (\""`)
	assert.Contains(t, script, `{"action":"a'b"}`)
}
