package web_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/digitaltwinhq/storefront/pkg/web"
)

func TestIsDataStar(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		mod  func(r *http.Request)
		want bool
	}{
		{
			name: "plain browser request",
			mod:  func(r *http.Request) {},
			want: false,
		},
		{
			name: "SSE accept header",
			mod:  func(r *http.Request) { r.Header.Set("Accept", "text/event-stream") },
			want: true,
		},
		{
			name: "datastar query param",
			mod:  func(r *http.Request) { r.URL.RawQuery = "datastar=%7B%7D" },
			want: true,
		},
		{
			name: "datastar content type",
			mod:  func(r *http.Request) { r.Header.Set("Content-Type", "application/x-datastar") },
			want: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			r := httptest.NewRequest(http.MethodGet, "/", nil)
			tt.mod(r)
			assert.Equal(t, tt.want, web.IsDataStar(r))
		})
	}
}

func TestWrapBindsFormRequest(t *testing.T) {
	t.Parallel()

	type buyRequest struct {
		PriceID string `form:"price_id"`
	}

	var got buyRequest
	h := web.Wrap(
		func(ctx *web.Context, req buyRequest) web.Response {
			got = req
			return web.Status(http.StatusNoContent)
		},
		web.WithBinders[buyRequest](web.BindForm()),
	)

	form := url.Values{"price_id": {"price_dtp_monthly"}}
	r := httptest.NewRequest(http.MethodPost, "/checkout", strings.NewReader(form.Encode()))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	w := httptest.NewRecorder()

	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "price_dtp_monthly", got.PriceID)
}

func TestWrapSkipsInapplicableBinder(t *testing.T) {
	t.Parallel()

	type req struct {
		Plan string `form:"plan"`
		Ref  string `query:"ref"`
	}

	var got req
	h := web.Wrap(
		func(ctx *web.Context, r req) web.Response {
			got = r
			return web.Status(http.StatusOK)
		},
		web.WithBinders[req](web.BindForm(), web.BindQuery()),
	)

	// GET request without a form body: the form binder must be skipped and
	// the query binder must still run.
	r := httptest.NewRequest(http.MethodGet, "/pricing?ref=homepage", nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, r)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, got.Plan)
	assert.Equal(t, "homepage", got.Ref)
}

func TestWrapNilResponse(t *testing.T) {
	t.Parallel()

	h := web.Wrap(func(ctx *web.Context, req struct{}) web.Response {
		return nil
	})

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestWrapHTTPError(t *testing.T) {
	t.Parallel()

	h := web.Wrap(
		func(ctx *web.Context, req struct{}) web.Response {
			return nil
		},
		web.WithErrorHandler[struct{}](func(ctx *web.Context, err error) {
			http.Error(ctx.ResponseWriter(), "custom", http.StatusTeapot)
		}),
	)

	w := httptest.NewRecorder()
	h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusTeapot, w.Code)
	assert.Contains(t, w.Body.String(), "custom")
}

func TestRedirectPlainRequest(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/checkout", nil)

	err := web.Redirect("https://pay.example/session/abc").Render(w, r)
	require.NoError(t, err)

	assert.Equal(t, http.StatusSeeOther, w.Code)
	assert.Equal(t, "https://pay.example/session/abc", w.Header().Get("Location"))
}

func TestRedirectDataStarRequest(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodPost, "/checkout", nil)
	r.Header.Set("Accept", "text/event-stream")

	err := web.Redirect("/success").Render(w, r)
	require.NoError(t, err)

	// Navigation is delivered over the SSE stream, not as a 3xx.
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Body.String(), "/success")
}

func TestTemplResponse(t *testing.T) {
	t.Parallel()

	component := templ.Raw(`<div id="status">Active</div>`)

	t.Run("plain request renders HTML", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)

		require.NoError(t, web.Templ(component).Render(w, r))
		assert.Equal(t, "text/html; charset=utf-8", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), `<div id="status">Active</div>`)
	})

	t.Run("datastar request patches element", func(t *testing.T) {
		t.Parallel()

		w := httptest.NewRecorder()
		r := httptest.NewRequest(http.MethodGet, "/", nil)
		r.Header.Set("Accept", "text/event-stream")

		require.NoError(t, web.Templ(component, web.WithTarget("#status")).Render(w, r))
		assert.Equal(t, "text/event-stream", w.Header().Get("Content-Type"))
		assert.Contains(t, w.Body.String(), "datastar-patch-elements")
	})
}

func TestJSONResponse(t *testing.T) {
	t.Parallel()

	w := httptest.NewRecorder()
	r := httptest.NewRequest(http.MethodGet, "/", nil)

	err := web.JSON(map[string]string{"url": "https://pay.example"}, http.StatusCreated).Render(w, r)
	require.NoError(t, err)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.JSONEq(t, `{"url":"https://pay.example"}`, w.Body.String())
}

func TestBindQueryTypes(t *testing.T) {
	t.Parallel()

	type req struct {
		Name    string `query:"name"`
		Page    int    `query:"page"`
		Verbose bool   `query:"verbose"`
		Skipped string `query:"-"`
	}

	r := httptest.NewRequest(http.MethodGet, "/?name=twin&page=3&verbose=on", nil)

	var got req
	require.NoError(t, web.BindQuery()(r, &got))

	assert.Equal(t, "twin", got.Name)
	assert.Equal(t, 3, got.Page)
	assert.True(t, got.Verbose)
	assert.Empty(t, got.Skipped)
}

func TestBindQueryInvalidInt(t *testing.T) {
	t.Parallel()

	type req struct {
		Page int `query:"page"`
	}

	r := httptest.NewRequest(http.MethodGet, "/?page=abc", nil)

	var got req
	err := web.BindQuery()(r, &got)
	require.ErrorIs(t, err, web.ErrInvalidQuery)
}
