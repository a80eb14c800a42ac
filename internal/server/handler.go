package server

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/gyeh/rehtriage/internal/model"
	"github.com/gyeh/rehtriage/internal/normalize"
	"github.com/gyeh/rehtriage/internal/reh"
	"github.com/gyeh/rehtriage/internal/scoring"
	"github.com/gyeh/rehtriage/internal/triage"
)

// Handler serves the stateless scoring endpoints.
type Handler struct {
	allowed map[model.AssessmentType]bool
}

// NewHandler returns a handler scoring only the assessment types in allowed.
// A nil set allows every type.
func NewHandler(allowed map[model.AssessmentType]bool) *Handler {
	return &Handler{allowed: allowed}
}

func (h *Handler) checkAssessment(at model.AssessmentType) error {
	if at == "" || h.allowed == nil || h.allowed[at] {
		return nil
	}
	return echo.NewHTTPError(http.StatusUnprocessableEntity, fmt.Sprintf("assessment type %s is disabled", at))
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/scores/sofa", h.ScoreSofa)
	api.POST("/scores/apache", h.ScoreApache)
	api.POST("/scores/cci", h.ScoreCci)
	api.POST("/scores/priority", h.ScorePriority)
	api.POST("/evaluations", h.Evaluate)
	api.GET("/guidelines", h.ListGuidelines)
	api.GET("/guidelines/:key", h.GetGuideline)
}

type SofaResponse struct {
	scoring.SofaBreakdown
	Total    int `json:"total"`
	RehScore int `json:"reh_score"`
}

type ApacheResponse struct {
	scoring.ApacheBreakdown
	Physiology int `json:"physiology"`
	Total      int `json:"total"`
	RehScore   int `json:"reh_score"`
}

type CciRequest struct {
	Comorbidities map[string]bool `json:"comorbidities"`
}

type CciResponse struct {
	Conditions  []string `json:"conditions"`
	CciScore    int      `json:"cci_score"`
	CciRehScore int      `json:"cci_reh_score"`
}

type PriorityRequest struct {
	Priority string `json:"priority"`
}

type PriorityResponse struct {
	Priority model.Priority `json:"priority"`
	RehScore int            `json:"reh_score"`
}

func (h *Handler) ScoreSofa(c echo.Context) error {
	if err := h.checkAssessment(model.AssessmentSOFA); err != nil {
		return err
	}
	var a model.SofaAssessment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	b := scoring.Sofa(a)
	total := b.Total()
	return c.JSON(http.StatusOK, SofaResponse{SofaBreakdown: b, Total: total, RehScore: reh.SofaReh(total)})
}

func (h *Handler) ScoreApache(c echo.Context) error {
	if err := h.checkAssessment(model.AssessmentAPACHE); err != nil {
		return err
	}
	var a model.ApacheAssessment
	if err := c.Bind(&a); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	mode, err := normalize.ParseAcidBaseMode(string(a.AcidBaseMode))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	status, err := normalize.ParseOperativeStatus(string(a.OperativeStatus))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	a.AcidBaseMode = mode
	a.OperativeStatus = status

	b := scoring.Apache(a)
	total := b.Total()
	return c.JSON(http.StatusOK, ApacheResponse{
		ApacheBreakdown: b,
		Physiology:      b.Physiology(),
		Total:           total,
		RehScore:        reh.ApacheReh(total),
	})
}

func (h *Handler) ScoreCci(c echo.Context) error {
	var req CciRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	comorb := make(model.Comorbidities, len(req.Comorbidities))
	for name, v := range req.Comorbidities {
		k, err := normalize.ParseConditionKey(name)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
		comorb[k] = comorb[k] || v
	}
	resp := CciResponse{Conditions: []string{}, CciScore: scoring.CciScore(comorb)}
	for _, cond := range model.AllConditions {
		if comorb[cond.Key] {
			resp.Conditions = append(resp.Conditions, string(cond.Key))
		}
	}
	resp.CciRehScore = reh.CciReh(resp.CciScore)
	return c.JSON(http.StatusOK, resp)
}

func (h *Handler) ScorePriority(c echo.Context) error {
	var req PriorityRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	p, err := normalize.ParsePriority(req.Priority)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, PriorityResponse{Priority: p, RehScore: scoring.PriorityScore(p)})
}

// Evaluate scores a full patient record. Nothing is stored.
func (h *Handler) Evaluate(c echo.Context) error {
	var rec model.PatientRecord
	if err := c.Bind(&rec); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	canon, err := normalize.CanonicalRecord(rec)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	if err := h.checkAssessment(canon.AssessmentType); err != nil {
		return err
	}
	return c.JSON(http.StatusOK, triage.Evaluate(canon))
}

func (h *Handler) ListGuidelines(c echo.Context) error {
	return c.JSON(http.StatusOK, reh.All())
}

func (h *Handler) GetGuideline(c echo.Context) error {
	g, ok := reh.Lookup(reh.GuidelineKey(c.Param("key")))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "guideline not found")
	}
	return c.JSON(http.StatusOK, g)
}

func Health(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]string{"status": "ok"})
}
