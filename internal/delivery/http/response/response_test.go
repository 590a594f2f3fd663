package response

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestContext() (echo.Context, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	c := echo.New().NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

	return c, rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body
}

func TestSuccess_Envelope(t *testing.T) {
	c, rec := newTestContext()

	err := Success(c, http.StatusCreated, map[string]string{"_id": "abc"}, "User registered successfully")

	require.NoError(t, err)
	assert.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(http.StatusCreated), body["statusCode"])
	assert.Equal(t, "User registered successfully", body["message"])
	assert.Equal(t, true, body["success"])
	assert.NotContains(t, body, "errors")
}

func TestSuccess_DefaultMessage(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Success(c, http.StatusOK, nil, ""))

	body := decodeBody(t, rec)
	assert.Equal(t, "Success", body["message"])
	assert.NotContains(t, body, "data")
}

func TestFail_Envelope(t *testing.T) {
	c, rec := newTestContext()

	err := Fail(c, http.StatusBadRequest, "Invalid phone number", "phone must be 10 digits")

	require.NoError(t, err)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, float64(http.StatusBadRequest), body["statusCode"])
	assert.Equal(t, "Invalid phone number", body["message"])
	assert.Equal(t, false, body["success"])
	assert.Equal(t, "phone must be 10 digits", body["errors"])
	assert.NotContains(t, body, "data")
}

func TestFail_DefaultMessage(t *testing.T) {
	c, rec := newTestContext()

	require.NoError(t, Fail(c, http.StatusInternalServerError, "", ""))

	body := decodeBody(t, rec)
	assert.Equal(t, http.StatusText(http.StatusInternalServerError), body["message"])
}

func findCookie(t *testing.T, rec *httptest.ResponseRecorder, name string) *http.Cookie {
	t.Helper()

	for _, cookie := range rec.Result().Cookies() {
		if cookie.Name == name {
			return cookie
		}
	}
	t.Fatalf("cookie %q not set", name)

	return nil
}

func TestSetAuthCookies_Flags(t *testing.T) {
	c, rec := newTestContext()

	SetAuthCookies(c, "access-value", "refresh-value", 15*time.Minute, 7*24*time.Hour)

	access := findCookie(t, rec, AccessTokenCookie)
	assert.Equal(t, "access-value", access.Value)
	assert.True(t, access.HttpOnly)
	assert.True(t, access.Secure)
	assert.Equal(t, http.SameSiteNoneMode, access.SameSite)
	assert.Equal(t, "/", access.Path)

	refresh := findCookie(t, rec, RefreshTokenCookie)
	assert.Equal(t, "refresh-value", refresh.Value)
	assert.True(t, refresh.HttpOnly)
	assert.True(t, refresh.Secure)
	assert.True(t, refresh.Expires.After(access.Expires))
}

func TestClearAuthCookies_Expires(t *testing.T) {
	c, rec := newTestContext()

	ClearAuthCookies(c)

	for _, name := range []string{AccessTokenCookie, RefreshTokenCookie} {
		cookie := findCookie(t, rec, name)
		assert.Empty(t, cookie.Value)
		assert.Negative(t, cookie.MaxAge)
		assert.True(t, cookie.Expires.Before(time.Now()))
	}
}
