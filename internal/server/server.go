package server

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/iwvelando/college-roi/internal/analysis"
	"github.com/iwvelando/college-roi/internal/config"
	"github.com/iwvelando/college-roi/internal/lookup"
	"github.com/iwvelando/college-roi/pkg/constants"
	"github.com/iwvelando/college-roi/pkg/output"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

// RequestIDHeader carries the request ID on requests and responses.
const RequestIDHeader = "X-Request-ID"

const uploadCacheIgnoredWarning = "cache settings are ignored for uploaded configurations"

type requestIDKey struct{}

type handler struct {
	logger        *zap.Logger
	analyzer      *analysis.Analyzer
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the analysis API.
// Selections are resolved against directory.
func NewHandler(logger *zap.Logger, directory lookup.Directory, maxUploadSize int64, version string) http.Handler {
	if logger == nil {
		logger = zap.NewNop()
	}

	if maxUploadSize <= 0 {
		maxUploadSize = constants.DefaultMaxUploadSizeBytes
	}

	trimmedVersion := strings.TrimSpace(version)
	if trimmedVersion == "" {
		trimmedVersion = "dev"
	}

	h := &handler{
		logger:        logger,
		analyzer:      analysis.NewAnalyzer(logger, directory),
		maxUploadSize: maxUploadSize,
		version:       trimmedVersion,
	}

	mux := http.NewServeMux()

	// Single program analysis against the served directory
	mux.HandleFunc("/api/analyze", h.handleAnalyze)

	// Side-by-side comparison of two programs
	mux.HandleFunc("/api/compare", h.handleCompare)

	// Engine over caller-supplied inputs, no lookups
	mux.HandleFunc("/api/calculate", h.handleCalculate)

	// Full configuration upload, analyzed against its own records
	mux.HandleFunc("/api/report", h.handleReport)

	// Config serialization endpoint for editor downloads
	mux.HandleFunc("/api/editor/export", h.handleConfigExport)

	// Version endpoint for UI metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return h.withRequestID(mux)
}

func (h *handler) withRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := strings.TrimSpace(r.Header.Get(RequestIDHeader))
		if id == "" {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey{}, id)))
	})
}

func requestID(r *http.Request) string {
	id, _ := r.Context().Value(requestIDKey{}).(string)
	return id
}

type analyzeRequest struct {
	Assumptions analysis.Assumptions `json:"assumptions"`
	Selection   analysis.Selection   `json:"selection"`
}

type compareRequest struct {
	Assumptions analysis.Assumptions `json:"assumptions"`
	Selections  []analysis.Selection `json:"selections"`
}

type analyzeResponse struct {
	RequestID string           `json:"requestId"`
	Duration  string           `json:"duration"`
	Metrics   analysis.Metrics `json:"metrics"`
	Warnings  []string         `json:"warnings,omitempty"`
}

type compareResponse struct {
	RequestID  string              `json:"requestId"`
	Duration   string              `json:"duration"`
	Comparison analysis.Comparison `json:"comparison"`
	Warnings   []string            `json:"warnings,omitempty"`
}

type reportResponse struct {
	RequestID  string                 `json:"requestId"`
	Duration   string                 `json:"duration"`
	Report     output.Report          `json:"report"`
	CSV        string                 `json:"csv"`
	Config     map[string]interface{} `json:"config,omitempty"`
	ConfigYAML string                 `json:"configYaml,omitempty"`
}

func (h *handler) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleAnalyze"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	req := analyzeRequest{Assumptions: analysis.DefaultAssumptions()}
	if !h.decodeJSON(w, r, &req, op) {
		return
	}

	metrics, err := h.analyzer.Analyze(r.Context(), req.Selection, req.Assumptions)
	if err != nil {
		h.respondAnalysisError(w, r, err, op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("analysis computed",
		zap.String("op", op),
		zap.String("request_id", requestID(r)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, analyzeResponse{
		RequestID: requestID(r),
		Duration:  elapsed.String(),
		Metrics:   metrics,
		Warnings:  req.Assumptions.Validate(),
	})
}

func (h *handler) handleCompare(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCompare"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	req := compareRequest{Assumptions: analysis.DefaultAssumptions()}
	if !h.decodeJSON(w, r, &req, op) {
		return
	}
	if len(req.Selections) != 2 {
		h.respondErrorWithOp(w, r, http.StatusBadRequest,
			fmt.Sprintf("expected exactly 2 selections, got %d", len(req.Selections)), op)
		return
	}

	comparison, err := h.analyzer.Compare(r.Context(), req.Selections[0], req.Selections[1], req.Assumptions)
	if err != nil {
		h.respondAnalysisError(w, r, err, op)
		return
	}

	elapsed := time.Since(start)
	h.logger.Info("comparison computed",
		zap.String("op", op),
		zap.String("request_id", requestID(r)),
		zap.String("preferred", comparison.Preferred),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, compareResponse{
		RequestID:  requestID(r),
		Duration:   elapsed.String(),
		Comparison: comparison,
		Warnings:   req.Assumptions.Validate(),
	})
}

func (h *handler) handleCalculate(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleCalculate"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	in := analysis.InputsFromAssumptions(analysis.DefaultAssumptions())
	in.GraduationRate = constants.DefaultGraduationRate
	if !h.decodeJSON(w, r, &in, op) {
		return
	}

	metrics := analysis.Compute(in)

	h.writeJSON(w, http.StatusOK, analyzeResponse{
		RequestID: requestID(r),
		Duration:  time.Since(start).String(),
		Metrics:   metrics,
	})
}

func (h *handler) handleReport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleReport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	start := time.Now()
	configBytes, ok := h.readConfigUpload(w, r, op)
	if !ok {
		return
	}

	configMap, err := decodeYAMLToMap(configBytes)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("error reading config data, %v", err), op)
		return
	}

	cfg, err := config.LoadConfigurationFromReader(bytes.NewReader(configBytes))
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, err.Error(), op)
		return
	}
	warnings := cfg.ValidateConfiguration()

	// Uploaded records are served uncached; an upload never picks a cache
	// backend or address.
	if cfg.Cache.Backend != "" {
		h.logger.Warn("ignoring cache settings in uploaded configuration",
			zap.String("op", op),
			zap.String("request_id", requestID(r)),
			zap.String("backend", cfg.Cache.Backend),
		)
		warnings = append(warnings, uploadCacheIgnoredWarning)
	}
	cfg.Cache = config.CacheConfig{}

	directory, closeDirectory := cfg.BuildDirectory(r.Context(), h.logger)
	defer func() {
		if closeErr := closeDirectory(); closeErr != nil {
			h.logger.Warn("failed to close directory cache",
				zap.String("op", op),
				zap.Error(closeErr),
			)
		}
	}()

	analyzer := analysis.NewAnalyzer(h.logger, directory)
	selections := cfg.ActiveSelections()
	results := make([]analysis.Metrics, 0, len(selections))
	for _, sel := range selections {
		m, err := analyzer.Analyze(r.Context(), sel, cfg.Assumptions)
		if err != nil {
			h.respondAnalysisError(w, r, err, op)
			return
		}
		results = append(results, m)
	}

	report := output.NewReport(results, warnings)
	elapsed := time.Since(start)
	h.logger.Info("report computed",
		zap.String("op", op),
		zap.String("request_id", requestID(r)),
		zap.Int("selections", len(results)),
		zap.Duration("duration", elapsed),
	)

	h.writeJSON(w, http.StatusOK, reportResponse{
		RequestID:  requestID(r),
		Duration:   elapsed.String(),
		Report:     report,
		CSV:        output.CsvString(report),
		Config:     configMap,
		ConfigYAML: string(configBytes),
	})
}

// readConfigUpload accepts a multipart upload in field "file" or a raw YAML
// body.
func (h *handler) readConfigUpload(w http.ResponseWriter, r *http.Request, op string) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(h.maxUploadSize); err != nil {
			h.respondReadError(w, r, err, "failed to parse upload", op)
			return nil, false
		}

		file, _, err := r.FormFile("file")
		if err != nil {
			h.respondErrorWithOp(w, r, http.StatusBadRequest, "missing configuration file", op)
			return nil, false
		}
		defer func() {
			if closeErr := file.Close(); closeErr != nil {
				h.logger.Warn("failed to close uploaded file",
					zap.String("op", op),
					zap.Error(closeErr),
				)
			}
		}()

		var buf bytes.Buffer
		if _, err := io.Copy(&buf, file); err != nil {
			h.respondErrorWithOp(w, r, http.StatusInternalServerError, fmt.Sprintf("failed to read configuration: %v", err), op)
			return nil, false
		}
		return buf.Bytes(), true
	}

	data, err := io.ReadAll(r.Body)
	if err != nil {
		h.respondReadError(w, r, err, "failed to read configuration", op)
		return nil, false
	}
	return data, true
}

func (h *handler) handleVersion(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"version": h.version,
	})
}

func (h *handler) handleConfigExport(w http.ResponseWriter, r *http.Request) {
	const op = "server.handleConfigExport"
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return
	}

	var payload map[string]interface{}
	if !h.decodeJSON(w, r, &payload, op) {
		return
	}
	if payload == nil {
		payload = make(map[string]interface{})
	}

	yamlBytes, err := marshalOrderedConfigYAML(payload)
	if err != nil {
		h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("failed to encode configuration: %v", err), op)
		return
	}

	h.writeJSON(w, http.StatusOK, map[string]string{
		"configYaml": string(yamlBytes),
	})
}

// configKeyOrder is the section order of exported configuration files.
var configKeyOrder = []string{"logging", "output", "cache", "assumptions", "selections", "institutions", "programs", "regions"}

func marshalOrderedConfigYAML(payload map[string]interface{}) ([]byte, error) {
	items := make([]orderedItem, 0, len(payload))
	seen := make(map[string]struct{})

	for _, key := range configKeyOrder {
		if value, ok := payload[key]; ok {
			items = append(items, orderedItem{key: key, value: value})
			seen[key] = struct{}{}
		}
	}

	remainingKeys := make([]string, 0, len(payload))
	for key := range payload {
		if _, already := seen[key]; already {
			continue
		}
		remainingKeys = append(remainingKeys, key)
	}
	sort.Strings(remainingKeys)
	for _, key := range remainingKeys {
		items = append(items, orderedItem{key: key, value: payload[key]})
	}

	ordered := orderedConfig{items: items}
	return yaml.Marshal(ordered)
}

type orderedConfig struct {
	items []orderedItem
}

type orderedItem struct {
	key   string
	value interface{}
}

func (o orderedConfig) MarshalYAML() (interface{}, error) {
	mapNode := &yaml.Node{
		Kind: yaml.MappingNode,
		Tag:  "!!map",
	}

	for _, item := range o.items {
		keyNode := &yaml.Node{
			Kind:  yaml.ScalarNode,
			Tag:   "!!str",
			Value: item.key,
		}
		valueNode := &yaml.Node{}
		if err := valueNode.Encode(item.value); err != nil {
			return nil, err
		}
		mapNode.Content = append(mapNode.Content, keyNode, valueNode)
	}

	return mapNode, nil
}

func decodeYAMLToMap(data []byte) (map[string]interface{}, error) {
	trimmed := bytes.TrimSpace(data)
	if len(trimmed) == 0 {
		return make(map[string]interface{}), nil
	}

	var result map[string]interface{}
	if err := yaml.Unmarshal(trimmed, &result); err != nil {
		return nil, err
	}
	if result == nil {
		result = make(map[string]interface{})
	}
	return result, nil
}

// decodeJSON reads a size-limited JSON body into dst, responding on failure.
func (h *handler) decodeJSON(w http.ResponseWriter, r *http.Request, dst interface{}, op string) bool {
	r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.respondReadError(w, r, err, "failed to decode request", op)
		return false
	}
	return true
}

func (h *handler) respondReadError(w http.ResponseWriter, r *http.Request, err error, msg string, op string) {
	var maxBytesErr *http.MaxBytesError
	if errors.As(err, &maxBytesErr) {
		h.respondErrorWithOp(w, r, http.StatusRequestEntityTooLarge,
			fmt.Sprintf("request exceeds limit of %d bytes", h.maxUploadSize), op)
		return
	}
	h.respondErrorWithOp(w, r, http.StatusBadRequest, fmt.Sprintf("%s: %v", msg, err), op)
}

func (h *handler) respondAnalysisError(w http.ResponseWriter, r *http.Request, err error, op string) {
	status := http.StatusInternalServerError
	if errors.Is(err, lookup.ErrNotFound) {
		status = http.StatusNotFound
	}
	h.respondErrorWithOp(w, r, status, err.Error(), op)
}

func (h *handler) respondErrorWithOp(w http.ResponseWriter, r *http.Request, status int, msg string, op string) {
	h.logger.Error("request failed",
		zap.String("op", op),
		zap.String("request_id", requestID(r)),
		zap.Int("status", status),
		zap.String("error", msg),
	)

	h.writeJSON(w, status, map[string]string{"error": msg, "requestId": requestID(r)})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil {
		h.logger.Error("failed to write JSON response", zap.Error(err))
	}
}
