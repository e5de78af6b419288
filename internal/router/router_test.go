package router

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"hmps-api/internal/service"
	"hmps-api/internal/store"
	"hmps-api/internal/testutil"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOrigin = "https://hmps-informatika.vercel.app"

type api struct {
	t  *testing.T
	r  *gin.Engine
	st *store.Store
}

func newAPI(t *testing.T) *api {
	t.Helper()
	gin.SetMode(gin.TestMode)
	st := testutil.NewStore(t)
	r := Setup(st, Options{AllowedOrigin: testOrigin, RequestTimeout: 5 * time.Second, Port: 3000})
	return &api{t: t, r: r, st: st}
}

func (a *api) do(method, path string, body any) *httptest.ResponseRecorder {
	a.t.Helper()
	var buf bytes.Buffer
	if body != nil {
		switch b := body.(type) {
		case string:
			buf.WriteString(b)
		default:
			require.NoError(a.t, json.NewEncoder(&buf).Encode(b))
		}
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	a.r.ServeHTTP(rr, req)
	return rr
}

func decode(t *testing.T, rr *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func decodeList(t *testing.T, rr *httptest.ResponseRecorder) []map[string]any {
	t.Helper()
	var out []map[string]any
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &out), rr.Body.String())
	return out
}

func TestBanner(t *testing.T) {
	a := newAPI(t)
	rr := a.do(http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "3000")
}

func TestHealthz(t *testing.T) {
	a := newAPI(t)
	rr := a.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rr.Code)

	require.NoError(t, a.st.Close())
	rr = a.do(http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusServiceUnavailable, rr.Code)
}

func TestGalleryRoundTrip(t *testing.T) {
	a := newAPI(t)

	rr := a.do(http.MethodPost, "/gallery", map[string]string{
		"title": "Ospek", "category": "Acara", "photo_date": "2024-01-10", "image_url": "http://x/y.png",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	id := decode(t, rr)["id"].(float64)
	require.NotZero(t, id)

	rr = a.do(http.MethodGet, fmt.Sprintf("/gallery/%d", int(id)), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode(t, rr)
	assert.Equal(t, map[string]any{
		"id": id, "title": "Ospek", "category": "Acara", "photo_date": "2024-01-10", "image_url": "http://x/y.png",
	}, got)

	rr = a.do(http.MethodGet, "/gallery", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Len(t, decodeList(t, rr), 1)
}

func TestGalleryRoundTripKeepsWhitespace(t *testing.T) {
	a := newAPI(t)

	rr := a.do(http.MethodPost, "/gallery", `{"title":"  Ospek ","category":"Acara\n","photo_date":"2024-01-10","image_url":"http://x/y.png"}`)
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	id := int(decode(t, rr)["id"].(float64))

	got := decode(t, a.do(http.MethodGet, fmt.Sprintf("/gallery/%d", id), nil))
	assert.Equal(t, "  Ospek ", got["title"])
	assert.Equal(t, "Acara\n", got["category"])
}

func TestGalleryEmptyListIsArray(t *testing.T) {
	a := newAPI(t)
	rr := a.do(http.MethodGet, "/gallery", nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "[]", rr.Body.String())
}

func TestGalleryValidation(t *testing.T) {
	a := newAPI(t)

	rr := a.do(http.MethodPost, "/gallery", map[string]string{"title": "Ospek"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode(t, rr), "error")

	rr = a.do(http.MethodPost, "/gallery", "{not json")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = a.do(http.MethodPost, "/gallery", map[string]string{
		"title": "Ospek", "category": "Acara", "photo_date": "besok", "image_url": "u",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Zero(t, testutil.Count(t, a.st, "gallery"))
}

func TestGalleryUpdateDelete(t *testing.T) {
	a := newAPI(t)
	body := map[string]string{"title": "Ospek", "category": "Acara", "photo_date": "2024-01-10", "image_url": "u"}

	rr := a.do(http.MethodPut, "/gallery/77", body)
	assert.Equal(t, http.StatusNotFound, rr.Code)
	assert.Zero(t, testutil.Count(t, a.st, "gallery"))

	rr = a.do(http.MethodPost, "/gallery", body)
	require.Equal(t, http.StatusCreated, rr.Code)
	id := int(decode(t, rr)["id"].(float64))

	body["title"] = "Ospek 2024"
	rr = a.do(http.MethodPut, fmt.Sprintf("/gallery/%d", id), body)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = a.do(http.MethodDelete, fmt.Sprintf("/gallery/%d", id), nil)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Empty(t, rr.Body.String())

	rr = a.do(http.MethodGet, fmt.Sprintf("/gallery/%d", id), nil)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.JSONEq(t, "{}", rr.Body.String())

	rr = a.do(http.MethodDelete, fmt.Sprintf("/gallery/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = a.do(http.MethodDelete, "/gallery/abc", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestActivitiesLifecycle(t *testing.T) {
	a := newAPI(t)

	rr := a.do(http.MethodPost, "/activities", map[string]string{
		"title": "Seminar", "activity_date": "2024-03-01T17:00:00.000Z", "description": "Nasional",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	id := int(decode(t, rr)["insertedId"].(float64))

	rr = a.do(http.MethodGet, fmt.Sprintf("/activities/%d", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	got := decode(t, rr)
	assert.Equal(t, "2024-03-01", got["activity_date"])
	assert.Equal(t, "Nasional", got["description"])
	assert.Nil(t, got["status"])

	rr = a.do(http.MethodPut, fmt.Sprintf("/activities/%d", id), map[string]string{
		"title": "Seminar", "activity_date": "2024-03-02",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = a.do(http.MethodPut, fmt.Sprintf("/activities/%d", id), map[string]string{
		"title": "Seminar", "activity_date": "2024-03-02", "status": "selesai",
	})
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(id), decode(t, rr)["updatedId"])

	rr = a.do(http.MethodPut, "/activities/999", map[string]string{
		"title": "x", "activity_date": "2024-03-02", "status": "s",
	})
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = a.do(http.MethodDelete, fmt.Sprintf("/activities/%d", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, float64(id), decode(t, rr)["deletedId"])

	rr = a.do(http.MethodGet, fmt.Sprintf("/activities/%d", id), nil)
	assert.JSONEq(t, "{}", rr.Body.String())

	rr = a.do(http.MethodDelete, fmt.Sprintf("/activities/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestSejarahUpsertTwice(t *testing.T) {
	a := newAPI(t)

	rr := a.do(http.MethodGet, "/sejarah", nil)
	assert.JSONEq(t, "[]", rr.Body.String())

	rr = a.do(http.MethodPut, "/sejarah", map[string]any{"deskripsi": "Awal", "tahun_berdiri": 2010})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	rr = a.do(http.MethodPut, "/sejarah", map[string]any{"deskripsi": "Akhir", "tahun_berdiri": "2012"})
	require.Equal(t, http.StatusOK, rr.Code)

	rows := decodeList(t, a.do(http.MethodGet, "/sejarah", nil))
	require.Len(t, rows, 1)
	assert.Equal(t, "Akhir", rows[0]["deskripsi"])
	assert.Equal(t, "2012", rows[0]["tahun_berdiri"])
	assert.Equal(t, float64(1), rows[0]["id"])

	rr = a.do(http.MethodPut, "/sejarah", map[string]any{"deskripsi": "x"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, decode(t, rr), "message")
}

func TestBudayaAndVisiMisi(t *testing.T) {
	a := newAPI(t)

	rr := a.do(http.MethodPut, "/budaya", map[string]any{"slogan": "Satu Jiwa"})
	require.Equal(t, http.StatusOK, rr.Code)
	rows := decodeList(t, a.do(http.MethodGet, "/budaya", nil))
	require.Len(t, rows, 1)
	assert.Nil(t, rows[0]["struktur"])

	rr = a.do(http.MethodPut, "/visi-misi", map[string]any{"visi": "Unggul"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = a.do(http.MethodPut, "/visi-misi", map[string]any{"visi": "Unggul", "misi": "Berkarya"})
	require.Equal(t, http.StatusOK, rr.Code)
	rows = decodeList(t, a.do(http.MethodGet, "/visi-misi", nil))
	require.Len(t, rows, 1)
	assert.Equal(t, "Berkarya", rows[0]["misi"])

	rr = a.do(http.MethodDelete, "/visi-misi", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func member(nim, email string) map[string]any {
	return map[string]any{
		"nama": "Sari Dewi", "nim": nim, "email": email, "jabatan": "Ketua", "angkatan": 2022,
	}
}

func TestAnggotaLifecycle(t *testing.T) {
	a := newAPI(t)

	rr := a.do(http.MethodPost, "/api/anggota", member("2204111", "sari@x.id"))
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())
	body := decode(t, rr)
	assert.Equal(t, "success", body["status"])
	id := int(body["id"].(float64))

	rr = a.do(http.MethodPost, "/api/anggota", member("2204111", "other@x.id"))
	assert.Equal(t, http.StatusConflict, rr.Code)
	rr = a.do(http.MethodPost, "/api/anggota", member("9999999", "sari@x.id"))
	assert.Equal(t, http.StatusConflict, rr.Code)
	assert.Equal(t, int64(1), testutil.Count(t, a.st, "anggota"))

	rr = a.do(http.MethodPost, "/api/anggota", map[string]any{"nama": "x"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Equal(t, "error", decode(t, rr)["status"])

	rr = a.do(http.MethodGet, "/api/anggota?search=SARI", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	list := decode(t, rr)
	assert.Equal(t, float64(1), list["total"])

	rr = a.do(http.MethodGet, "/api/anggota?search=nobody", nil)
	list = decode(t, rr)
	assert.Equal(t, float64(0), list["total"])
	assert.Equal(t, []any{}, list["data"])

	rr = a.do(http.MethodGet, fmt.Sprintf("/api/anggota/%d", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "2022", decode(t, rr)["data"].(map[string]any)["angkatan"])

	update := member("2204111", "sari.dewi@x.id")
	update["telepon"] = "0812"
	rr = a.do(http.MethodPut, fmt.Sprintf("/api/anggota/%d", id), update)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	rr = a.do(http.MethodPut, "/api/anggota/404", update)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = a.do(http.MethodDelete, fmt.Sprintf("/api/anggota/%d", id), nil)
	require.Equal(t, http.StatusOK, rr.Code)
	rr = a.do(http.MethodDelete, fmt.Sprintf("/api/anggota/%d", id), nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)

	rr = a.do(http.MethodGet, fmt.Sprintf("/api/anggota/%d", id), nil)
	assert.Equal(t, map[string]any{}, decode(t, rr)["data"])
}

func TestLogin(t *testing.T) {
	a := newAPI(t)
	_, err := service.NewAuthService(a.st).EnsureAdmin(context.Background(), "admin", "admin@hmps.id", "rahasia-123")
	require.NoError(t, err)

	rr := a.do(http.MethodPost, "/login", map[string]string{"username": "admin", "password": "rahasia-123"})
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())
	ok := decode(t, rr)
	assert.Equal(t, true, ok["success"])
	assert.Equal(t, "admin", ok["user"].(map[string]any)["username"])
	assert.Equal(t, "/admin/dashboard.html", ok["redirect"])
	assert.Empty(t, rr.Header().Values("Set-Cookie"))

	rr = a.do(http.MethodPost, "/login", map[string]string{"username": "admin@hmps.id", "password": "rahasia-123"})
	assert.Equal(t, http.StatusOK, rr.Code)

	wrongPass := a.do(http.MethodPost, "/login", map[string]string{"username": "admin", "password": "salah"})
	unknown := a.do(http.MethodPost, "/login", map[string]string{"username": "ghost", "password": "rahasia-123"})
	assert.Equal(t, http.StatusUnauthorized, wrongPass.Code)
	assert.Equal(t, http.StatusUnauthorized, unknown.Code)
	assert.JSONEq(t, wrongPass.Body.String(), unknown.Body.String())

	rr = a.do(http.MethodPost, "/login", map[string]string{"username": "admin"})
	assert.Equal(t, http.StatusBadRequest, rr.Code)
}

func TestCORSRejectsForeignOrigin(t *testing.T) {
	a := newAPI(t)

	req := httptest.NewRequest(http.MethodGet, "/gallery", nil)
	req.Header.Set("Origin", "https://evil.example")
	rr := httptest.NewRecorder()
	a.r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	req = httptest.NewRequest(http.MethodGet, "/gallery", nil)
	req.Header.Set("Origin", testOrigin)
	rr = httptest.NewRecorder()
	a.r.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, testOrigin, rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestMetricsEndpoint(t *testing.T) {
	a := newAPI(t)
	a.do(http.MethodGet, "/gallery", nil)

	rr := a.do(http.MethodGet, "/metrics", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.True(t, strings.Contains(rr.Body.String(), "hmps_http_requests_total"))
}
