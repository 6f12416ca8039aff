package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/dturkuler/humandesign-1/internal/bodygraph"
	"github.com/dturkuler/humandesign-1/internal/chart"
	"github.com/dturkuler/humandesign-1/internal/chartstore"
	"github.com/dturkuler/humandesign-1/internal/logging"
)

// #region request-shapes

// birthData carries the birth timestamp. The UTC offset comes from
// timezone (decimal hours) or timezone_name (IANA); the name wins.
type birthData struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	Day          int      `json:"day"`
	Hour         int      `json:"hour"`
	Minute       int      `json:"minute"`
	Second       int      `json:"second"`
	Timezone     *float64 `json:"timezone,omitempty"`
	TimezoneName string   `json:"timezone_name,omitempty"`
}

type featureRequest struct {
	Features []string `json:"features"`
}

type calculateRequest struct {
	BirthData      birthData       `json:"birth_data"`
	FeatureRequest *featureRequest `json:"feature_request,omitempty"`
}

func (b birthData) input(defaultZone string) chart.BirthInput {
	in := chart.BirthInput{
		Year: b.Year, Month: b.Month, Day: b.Day,
		Hour: b.Hour, Minute: b.Minute, Second: b.Second,
		Zone: b.TimezoneName,
	}
	if b.Timezone != nil {
		in.OffsetHours = *b.Timezone
	} else if in.Zone == "" {
		in.Zone = defaultZone
	}
	return in
}

// #endregion request-shapes

// #region calculate

func (s *Server) handleCalculate(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}

	var req calculateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
		s.audit(logging.RequestEntry{Endpoint: "/calculate", Status: http.StatusBadRequest, Reason: err.Error()})
		return
	}

	c, status, detail := s.calculate(req.BirthData)
	if c == nil {
		writeError(w, status, detail)
		s.audit(logging.RequestEntry{Endpoint: "/calculate", Status: status, Reason: detail})
		return
	}

	chartID := s.persist(req.BirthData, c)

	var features []string
	if req.FeatureRequest != nil {
		features = req.FeatureRequest.Features
	}
	result := filterFeatures(c, features)

	writeJSON(w, http.StatusOK, result)
	s.audit(logging.RequestEntry{
		ChartID:  chartID,
		Endpoint: "/calculate",
		Features: strings.Join(features, ","),
		Status:   http.StatusOK,
	})
}

// calculate runs the pipeline and maps errors to HTTP status codes.
func (s *Server) calculate(b birthData) (*chart.Chart, int, string) {
	c, err := chart.Calculate(b.input(s.defaultZone))
	if err != nil {
		if _, ok := err.(*chart.ValidationError); ok {
			return nil, http.StatusBadRequest, err.Error()
		}
		return nil, http.StatusInternalServerError, "calculation error: " + err.Error()
	}
	return c, http.StatusOK, ""
}

// persist stores the chart when a store is configured and returns the
// chart ID, or empty when persistence is off or fails.
func (s *Server) persist(b birthData, c *chart.Chart) string {
	if s.store == nil {
		return ""
	}
	data, err := json.Marshal(c)
	if err != nil {
		s.log.Warn("chart marshal failed", zap.Error(err))
		return ""
	}
	offset := 0.0
	if b.Timezone != nil {
		offset = *b.Timezone
	}
	rec, err := s.store.SaveChart(chartstore.ChartRecord{
		Year: b.Year, Month: b.Month, Day: b.Day,
		Hour: b.Hour, Minute: b.Minute, Second: b.Second,
		Zone:        b.TimezoneName,
		OffsetHours: offset,
		ChartJSON:   string(data),
	})
	if err != nil {
		s.log.Warn("chart save failed", zap.Error(err))
		return ""
	}
	return rec.ChartID
}

// filterFeatures projects the chart onto the requested feature names.
// An empty or entirely unmatched filter returns the full chart.
func filterFeatures(c *chart.Chart, features []string) interface{} {
	if len(features) == 0 {
		return c
	}
	data, err := json.Marshal(c)
	if err != nil {
		return c
	}
	var full map[string]json.RawMessage
	if err := json.Unmarshal(data, &full); err != nil {
		return c
	}
	filtered := make(map[string]json.RawMessage)
	for _, f := range features {
		if v, ok := full[f]; ok {
			filtered[f] = v
		}
	}
	if len(filtered) == 0 {
		return c
	}
	return filtered
}

// #endregion calculate

// #region available-features

var availableFeatures = []string{
	"birth_date", "design_date", "energy_type", "strategy", "authority",
	"authority_name", "profile", "incarnation_cross", "cross_type",
	"defined_centers", "undefined_centers", "split", "variables",
	"active_gates", "active_channels", "personality_gates", "design_gates",
}

func (s *Server) handleAvailableFeatures(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"available_features": availableFeatures,
		"example_usage": map[string]interface{}{
			"method": "POST",
			"url":    "/calculate",
			"body": map[string]interface{}{
				"birth_data": map[string]interface{}{
					"year": 1980, "month": 6, "day": 15,
					"hour": 14, "minute": 30, "second": 0,
					"timezone_name": "Europe/Berlin",
				},
				"feature_request": map[string]interface{}{
					"features": []string{"energy_type", "authority", "profile"},
				},
			},
		},
	})
}

// #endregion available-features

// #region feature-endpoints

type feature string

const (
	featureEnergyType feature = "energy_type"
	featureAuthority  feature = "authority"
	featureProfile    feature = "profile"
	featureCenters    feature = "centers"
	featureSplit      feature = "split"
	featureCross      feature = "cross"
	featureChannels   feature = "channels"
	featureGates      feature = "gates"
	featureVariables  feature = "variables"
)

// channelData is a channel with its traditional name and keynote.
type channelData struct {
	Channel     string `json:"channel"`
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
}

// featureHandler builds a POST handler that computes the chart and
// responds with the single-feature projection.
func (s *Server) featureHandler(f feature) http.HandlerFunc {
	endpoint := "/" + strings.ReplaceAll(string(f), "_", "-")
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "method not allowed")
			return
		}
		var b birthData
		if err := json.NewDecoder(r.Body).Decode(&b); err != nil {
			writeError(w, http.StatusBadRequest, "invalid request body: "+err.Error())
			s.audit(logging.RequestEntry{Endpoint: endpoint, Status: http.StatusBadRequest, Reason: err.Error()})
			return
		}
		c, status, detail := s.calculate(b)
		if c == nil {
			writeError(w, status, detail)
			s.audit(logging.RequestEntry{Endpoint: endpoint, Status: status, Reason: detail})
			return
		}
		writeJSON(w, http.StatusOK, featureResponse(f, c))
		s.audit(logging.RequestEntry{Endpoint: endpoint, Features: string(f), Status: http.StatusOK})
	}
}

func featureResponse(f feature, c *chart.Chart) interface{} {
	switch f {
	case featureEnergyType:
		return map[string]string{"energy_type": c.EnergyType, "strategy": c.Strategy}
	case featureAuthority:
		return map[string]string{"authority": c.Authority, "authority_name": c.AuthorityName}
	case featureProfile:
		return map[string]string{"profile": c.Profile}
	case featureCenters:
		return map[string][]string{
			"defined_centers":   c.DefinedCenters,
			"undefined_centers": c.UndefinedCenters,
		}
	case featureSplit:
		return map[string]int{"split": c.Split}
	case featureCross:
		return map[string]string{
			"incarnation_cross": c.IncarnationCross,
			"cross_type":        c.CrossType,
		}
	case featureChannels:
		return map[string][]channelData{"active_channels": describeChannels(c)}
	case featureGates:
		return map[string]interface{}{
			"active_gates":      c.ActiveGates,
			"personality_gates": c.PersonalityGates,
			"design_gates":      c.DesignGates,
		}
	case featureVariables:
		return map[string]chart.Variables{"variables": c.Variables}
	default:
		return c
	}
}

// describeChannels re-derives the active channels to attach their
// names and keynotes.
func describeChannels(c *chart.Chart) []channelData {
	gates := make(map[int]bool, len(c.ActiveGates))
	for _, g := range c.ActiveGates {
		gates[g] = true
	}
	channels := bodygraph.ActiveChannels(gates)
	out := make([]channelData, 0, len(channels))
	for _, ch := range channels {
		d := channelData{Channel: channelLabel(ch)}
		if m, ok := bodygraph.ChannelMeaning(ch); ok {
			d.Name = m.Name
			d.Description = m.Description
		}
		out = append(out, d)
	}
	return out
}

func channelLabel(ch bodygraph.Channel) string {
	return strconv.Itoa(ch.GateA) + "/" + strconv.Itoa(ch.GateB)
}

// #endregion feature-endpoints
