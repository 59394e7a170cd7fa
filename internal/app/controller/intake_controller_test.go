package controller

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pamatshop4/blacklight-backend/internal/app/model"
	"github.com/pamatshop4/blacklight-backend/internal/app/service"
)

type fakeRowStore struct {
	header    []string
	headerErr error
	appendErr error
	appended  [][][]string
}

func (f *fakeRowStore) HeaderRow(ctx context.Context) ([]string, error) {
	return f.header, f.headerErr
}

func (f *fakeRowStore) AppendRows(ctx context.Context, rows [][]string) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.appended = append(f.appended, rows)
	if len(f.header) == 0 && len(rows) > 0 {
		f.header = rows[0]
	}
	return nil
}

func setupIntakeControllerTest(store service.RowStore) *gin.Engine {
	gin.SetMode(gin.TestMode)

	ctrl := NewIntakeController(service.NewIntakeService(store))

	router := gin.New()
	router.POST("/api/join", ctrl.Join)
	return router
}

// validPayload is a fully valid minimal submission: no socials, no extra
// locations, one keyword, one ownership flag, consent given.
func validPayload() map[string]interface{} {
	return map[string]interface{}{
		"business_name":          "Mama Ruth's Kitchen",
		"Category":               "Restaurant & Food",
		"description":            "Family-owned soul food restaurant.",
		"products":               "Plates, catering",
		"website":                "https://mamaruths.example.com",
		"phone":                  "5551234567",
		"email":                  "ruth@example.com",
		"contact_first":          "Ruth",
		"contact_last":           "Jackson",
		"street":                 "12 Peach St",
		"street2":                "",
		"city":                   "Atlanta",
		"state":                  "GA",
		"zip_code":               "30303",
		"tags":                   []string{},
		"African_American":       true,
		"Women-American":         false,
		"type_of_business":       "physical",
		"is_usa_based":           false,
		"Not_USA":                1,
		"consent_marketing":      true,
		"facebook":               "",
		"instagram":              "",
		"linkedin":               "",
		"keywords":               []string{"soul food"},
		"has_multiple_locations": false,
		"additional_locations":   []interface{}{},
	}
}

func postJoin(t *testing.T, router *gin.Engine, payload interface{}) *httptest.ResponseRecorder {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest("POST", "/api/join", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestIntakeController_Join_Success(t *testing.T) {
	store := &fakeRowStore{}
	router := setupIntakeControllerTest(store)

	w := postJoin(t, router, validPayload())
	assert.Equal(t, http.StatusOK, w.Code)

	var response struct {
		OK      bool     `json:"ok"`
		Columns []string `json:"columns"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.True(t, response.OK)
	assert.Equal(t, model.Columns, response.Columns)
	assert.Len(t, response.Columns, 27)

	// First write bootstraps the header: two rows appended.
	require.Len(t, store.appended, 1)
	require.Len(t, store.appended[0], 2)
	assert.Equal(t, model.Columns, store.appended[0][0])

	// is_usa_based=false renders a "1" in the derived Not_USA cell.
	row := store.appended[0][1]
	assert.Equal(t, "1", row[19])

	// Second submission appends the data row only.
	w = postJoin(t, router, validPayload())
	assert.Equal(t, http.StatusOK, w.Code)
	require.Len(t, store.appended, 2)
	assert.Len(t, store.appended[1], 1)
}

func TestIntakeController_Join_MalformedBody(t *testing.T) {
	router := setupIntakeControllerTest(&fakeRowStore{})

	req := httptest.NewRequest("POST", "/api/join", bytes.NewBufferString("{not json"))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "error")
	assert.NotContains(t, response, "details")
}

func TestIntakeController_Join_InvalidExtras(t *testing.T) {
	router := setupIntakeControllerTest(&fakeRowStore{})

	payload := validPayload()
	payload["Not_USA"] = 2
	w := postJoin(t, router, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Error   string              `json:"error"`
		Details map[string][]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Details, "Not_USA")

	payload = validPayload()
	delete(payload, "Not_USA")
	w = postJoin(t, router, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestIntakeController_Join_SchemaValidationFailure(t *testing.T) {
	store := &fakeRowStore{}
	router := setupIntakeControllerTest(store)

	payload := validPayload()
	payload["business_name"] = ""
	payload["consent_marketing"] = false
	w := postJoin(t, router, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Error   string              `json:"error"`
		Details map[string][]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Details, "business_name")
	assert.Contains(t, response.Details, "consent_marketing")

	// Nothing reaches the sheet on a validation failure.
	assert.Empty(t, store.appended)
}

func TestIntakeController_Join_OwnershipRule(t *testing.T) {
	router := setupIntakeControllerTest(&fakeRowStore{})

	payload := validPayload()
	payload["African_American"] = false
	payload["Women-American"] = false
	w := postJoin(t, router, payload)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	var response struct {
		Details map[string][]string `json:"details"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response.Details, "African_American")
}

func TestIntakeController_Join_TagsRoundTrip(t *testing.T) {
	store := &fakeRowStore{header: model.Columns}
	router := setupIntakeControllerTest(store)

	// The client splits "a, b ,c" into trimmed tokens; re-joining on the
	// server must not itself cause a rejection.
	payload := validPayload()
	payload["tags"] = []string{"a", "b", "c"}
	w := postJoin(t, router, payload)
	assert.Equal(t, http.StatusOK, w.Code)

	require.Len(t, store.appended, 1)
	row := store.appended[0][0]
	assert.Equal(t, "a, b, c", row[14])
}

func TestIntakeController_Join_DownstreamFailure(t *testing.T) {
	store := &fakeRowStore{headerErr: errors.New("api unreachable")}
	router := setupIntakeControllerTest(store)

	w := postJoin(t, router, validPayload())
	assert.Equal(t, http.StatusInternalServerError, w.Code)

	var response map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	assert.Contains(t, response, "error")
	// The underlying cause stays server-side.
	assert.NotContains(t, response["error"], "unreachable")
}

func TestIntakeController_Join_NotConfigured(t *testing.T) {
	router := setupIntakeControllerTest(nil)

	w := postJoin(t, router, validPayload())
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}
