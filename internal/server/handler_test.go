package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gyeh/rehtriage/internal/model"
	"github.com/gyeh/rehtriage/internal/reh"
)

func newTestHandler() (*Handler, *echo.Echo) {
	return NewHandler(nil), echo.New()
}

func postJSON(e *echo.Echo, body string) (echo.Context, *httptest.ResponseRecorder) {
	req := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func TestHandler_ScoreSofa(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, `{"respiration":"90","is_ventilated":true,"platelets":"120","cns":"14"}`)

	require.NoError(t, h.ScoreSofa(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SofaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Respiration)
	assert.Equal(t, 1, resp.Coagulation)
	assert.Equal(t, 1, resp.CNS)
	assert.Equal(t, 6, resp.Total)
	assert.Equal(t, 2, resp.RehScore)
}

func TestHandler_ScoreSofa_BadRequest(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, `{"respiration":`)

	err := h.ScoreSofa(c)
	require.Error(t, err)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestHandler_ScoreSofa_NumericValues(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, `{"platelets":15,"cns":3}`)

	require.NoError(t, h.ScoreSofa(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp SofaResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.Coagulation)
	assert.Equal(t, 4, resp.CNS)
	assert.Equal(t, 8, resp.Total)
	assert.Equal(t, 3, resp.RehScore)
}

func TestHandler_ScoreApache(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, `{"age":"70","gcs":"10","acid_base_mode":"pH","acid_base_value":"7.1","creatinine":"2.5","is_arf":true}`)

	require.NoError(t, h.ScoreApache(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var resp ApacheResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 4, resp.AcidBase)
	assert.Equal(t, 6, resp.Creatinine)
	assert.Equal(t, 15, resp.Physiology)
	assert.Equal(t, 20, resp.Total)
	assert.Equal(t, 2, resp.RehScore)
}

func TestHandler_ScoreApache_UnknownMode(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, `{"acid_base_mode":"lactate"}`)

	var he *echo.HTTPError
	require.ErrorAs(t, h.ScoreApache(c), &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestHandler_ScoreCci(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, `{"comorbidities":{"DM":true,"htn":true,"ckd":true,"pcnr":false}}`)

	require.NoError(t, h.ScoreCci(c))
	var resp CciResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 3, resp.CciScore)
	assert.Equal(t, 1, resp.CciRehScore)
	assert.Equal(t, []string{"dm", "htn", "ckd"}, resp.Conditions)
}

func TestHandler_ScoreCci_UnknownCondition(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, `{"comorbidities":{"gout":true}}`)

	var he *echo.HTTPError
	require.ErrorAs(t, h.ScoreCci(c), &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestHandler_ScorePriority(t *testing.T) {
	h, e := newTestHandler()
	c, rec := postJSON(e, `{"priority":"P1"}`)

	require.NoError(t, h.ScorePriority(c))
	var resp PriorityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, model.Priority1, resp.Priority)
	assert.Equal(t, 4, resp.RehScore)

	c, _ = postJSON(e, `{"priority":"urgent"}`)
	assert.Error(t, h.ScorePriority(c))
}

func TestHandler_Evaluate(t *testing.T) {
	h, e := newTestHandler()
	body := `{
		"info": {"hn": "HN1", "ward": "ward"},
		"assessment_type": "sofa",
		"sofa": {"respiration": "250", "platelets": "120", "bilirubin": "1.5", "cns": "15", "renal": "1.5"},
		"priority": "2",
		"comorbidities": {"dm": true, "htn": true}
	}`
	c, rec := postJSON(e, body)

	require.NoError(t, h.Evaluate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var res model.CompositeResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.SofaScore)
	assert.Equal(t, 5, *res.SofaScore)
	assert.Equal(t, 7, res.TotalRehScore)
	assert.Equal(t, model.RiskHigh, res.RiskLevel)
	assert.Equal(t, string(reh.Key7NoICU), res.GuidelineKey)
	assert.Len(t, res.Guidelines, 8)
}

func TestHandler_Evaluate_NumericValues(t *testing.T) {
	h, e := newTestHandler()
	body := `{
		"info": {"ward": "AE"},
		"assessment_type": "SOFA",
		"sofa": {"platelets": 15, "cns": 3, "is_ventilated": false},
		"priority": "P4"
	}`
	c, rec := postJSON(e, body)

	require.NoError(t, h.Evaluate(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var res model.CompositeResult
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &res))
	require.NotNil(t, res.SofaScore)
	assert.Equal(t, 8, *res.SofaScore)
	assert.Equal(t, 3, res.AssessmentRehScore)
	assert.Equal(t, 5, res.TotalRehScore)
	assert.Equal(t, model.RiskMedium, res.RiskLevel)
}

func TestHandler_DisabledAssessment(t *testing.T) {
	h := NewHandler(map[model.AssessmentType]bool{model.AssessmentSOFA: true})
	e := echo.New()

	c, _ := postJSON(e, `{"assessment_type": "APACHE II", "apache": {"age": 70}, "priority": "1"}`)
	err := h.Evaluate(c)
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)

	c, _ = postJSON(e, `{"age": 70}`)
	require.ErrorAs(t, h.ScoreApache(c), &he)
	assert.Equal(t, http.StatusUnprocessableEntity, he.Code)

	c, rec := postJSON(e, `{"platelets": 15}`)
	require.NoError(t, h.ScoreSofa(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestHandler_Evaluate_BadEnum(t *testing.T) {
	h, e := newTestHandler()
	c, _ := postJSON(e, `{"info":{"ward":"OR"}}`)

	var he *echo.HTTPError
	require.ErrorAs(t, h.Evaluate(c), &he)
	assert.Equal(t, http.StatusBadRequest, he.Code)
}

func TestHandler_Guidelines(t *testing.T) {
	h, e := newTestHandler()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	rec := httptest.NewRecorder()
	require.NoError(t, h.ListGuidelines(e.NewContext(req, rec)))
	var all []reh.Guideline
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Len(t, all, 4)

	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("key")
	c.SetParamValues("7_with_icu")
	require.NoError(t, h.GetGuideline(c))
	var g reh.Guideline
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &g))
	assert.Equal(t, []string{"Provide care according to ICU standards"}, g.Items)

	rec = httptest.NewRecorder()
	c = e.NewContext(req, rec)
	c.SetParamNames("key")
	c.SetParamValues("8-10")
	var he *echo.HTTPError
	require.ErrorAs(t, h.GetGuideline(c), &he)
	assert.Equal(t, http.StatusNotFound, he.Code)
}

func TestServer_Routes(t *testing.T) {
	e := New(zerolog.Nop(), nil)

	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get(RequestIDHeader))

	req = httptest.NewRequest(http.MethodGet, "/v1/guidelines/1-4", nil)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusOK, rec.Code)

	req = httptest.NewRequest(http.MethodPost, "/v1/scores/priority", strings.NewReader(`{bad`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec = httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
