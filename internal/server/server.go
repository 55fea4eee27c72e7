// Package server exposes the evaluation engine and the scenario sweeps over
// a small JSON HTTP API. Request bodies are YAML configuration documents in
// the same format as the CLI's configuration file.
package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/azotech/plant-optimizer/internal/config"
	"github.com/azotech/plant-optimizer/internal/plant"
	"github.com/azotech/plant-optimizer/internal/scenario"
	"github.com/azotech/plant-optimizer/pkg/constants"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

type handler struct {
	logger        *zap.Logger
	maxUploadSize int64
	version       string
}

// NewHandler constructs the HTTP handler that serves the evaluation API.
func NewHandler(logger *zap.Logger, maxUploadSize int64, version string) http.Handler {
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

	h := &handler{logger: logger, maxUploadSize: maxUploadSize, version: trimmedVersion}

	mux := http.NewServeMux()

	// Evaluation endpoint (YAML configuration body)
	mux.HandleFunc("/api/evaluate", h.handleEvaluate)

	// Sweep endpoints
	mux.HandleFunc("/api/sweep/shutdown", h.handleShutdownSweep)
	mux.HandleFunc("/api/sweep/gas", h.handleGasSweep)

	// Version endpoint for client metadata
	mux.HandleFunc("/api/version", h.handleVersion)

	return mux
}

type solutionPayload struct {
	Case            string  `json:"case,omitempty"`
	Feasible        bool    `json:"feasible"`
	Methanol        float64 `json:"methanol"`
	AmmoniaGross    float64 `json:"ammoniaGross"`
	AmmoniaSaleable float64 `json:"ammoniaSaleable"`
	Urea            float64 `json:"urea"`
	FuelFlow        float64 `json:"fuelFlow"`
	Profit          float64 `json:"profit"`
	AmmoniaCost     float64 `json:"ammoniaCost"`
	MethanolCost    float64 `json:"methanolCost"`
	UreaCost        float64 `json:"ureaCost"`
}

type evaluateResponse struct {
	Solution   solutionPayload `json:"solution"`
	Warnings   []string        `json:"warnings,omitempty"`
	Duration   string          `json:"duration"`
	ConfigYAML string          `json:"configYaml,omitempty"`
}

type shutdownSweepResponse struct {
	Points         []scenario.ShutdownPoint `json:"points"`
	ShutdownProfit float64                  `json:"shutdownProfit"`
	CrossoverPrice *float64                 `json:"crossoverPrice"`
	Feasible       bool                     `json:"feasible"`
	Warnings       []string                 `json:"warnings,omitempty"`
	Duration       string                   `json:"duration"`
}

type gasSweepResponse struct {
	Points   []scenario.GasPoint `json:"points"`
	Warnings []string            `json:"warnings,omitempty"`
	Duration string              `json:"duration"`
}

func (h *handler) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	conf, ok := h.readConfiguration(w, r)
	if !ok {
		return
	}
	start := time.Now()

	sol, err := plant.Evaluate(h.logger, conf.MarketInputs(), conf.CapacityLimits(), conf.PeriodDays, conf.Coefficients)
	if err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	configYAML, err := yaml.Marshal(conf)
	if err != nil {
		h.logger.Warn("failed to serialize effective configuration",
			zap.String("op", "server.handleEvaluate"),
			zap.Error(err),
		)
	}

	h.writeJSON(w, http.StatusOK, evaluateResponse{
		Solution:   solutionToPayload(sol, conf.Coefficients.UreaAmmoniaRatio),
		Warnings:   conf.ValidateConfiguration(),
		Duration:   time.Since(start).String(),
		ConfigYAML: string(configYAML),
	})
}

func (h *handler) handleShutdownSweep(w http.ResponseWriter, r *http.Request) {
	conf, ok := h.readConfiguration(w, r)
	if !ok {
		return
	}
	start := time.Now()

	prices := scenario.PriceRange{
		Min:   conf.Sweeps.Shutdown.MinPrice,
		Max:   conf.Sweeps.Shutdown.MaxPrice,
		Steps: conf.Sweeps.Shutdown.Steps,
	}
	result, err := scenario.ShutdownSweep(h.logger,
		conf.Market.AmmoniaPrice, conf.Market.UreaPrice, conf.Market.GasPrice,
		conf.CapacityLimits(), conf.PeriodDays, conf.Coefficients, prices)
	if err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, shutdownSweepResponse{
		Points:         result.Points,
		ShutdownProfit: result.ShutdownProfit,
		CrossoverPrice: result.CrossoverPrice,
		Feasible:       result.Feasible,
		Warnings:       conf.ValidateConfiguration(),
		Duration:       time.Since(start).String(),
	})
}

func (h *handler) handleGasSweep(w http.ResponseWriter, r *http.Request) {
	conf, ok := h.readConfiguration(w, r)
	if !ok {
		return
	}
	start := time.Now()

	prices := scenario.PriceRange{
		Min:   conf.Sweeps.Gas.MinPrice,
		Max:   conf.Sweeps.Gas.MaxPrice,
		Steps: conf.Sweeps.Gas.Steps,
	}
	points, err := scenario.GasSensitivity(h.logger, conf.MarketInputs(), conf.CapacityLimits(), conf.PeriodDays, conf.Coefficients, prices)
	if err != nil {
		h.respondError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}

	h.writeJSON(w, http.StatusOK, gasSweepResponse{
		Points:   points,
		Warnings: conf.ValidateConfiguration(),
		Duration: time.Since(start).String(),
	})
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

// readConfiguration reads and parses the YAML configuration body shared by
// all evaluation endpoints.
func (h *handler) readConfiguration(w http.ResponseWriter, r *http.Request) (*config.Configuration, bool) {
	if r.Method != http.MethodPost {
		http.Error(w, http.StatusText(http.StatusMethodNotAllowed), http.StatusMethodNotAllowed)
		return nil, false
	}

	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	var buf bytes.Buffer
	if _, err := io.Copy(&buf, r.Body); err != nil {
		var maxBytesErr *http.MaxBytesError
		if errors.As(err, &maxBytesErr) {
			h.respondError(w, http.StatusRequestEntityTooLarge,
				fmt.Sprintf("upload exceeds limit of %d bytes", h.maxUploadSize))
			return nil, false
		}
		h.respondError(w, http.StatusBadRequest, fmt.Sprintf("failed to read configuration: %v", err))
		return nil, false
	}

	if buf.Len() == 0 {
		h.respondError(w, http.StatusBadRequest, "missing configuration body")
		return nil, false
	}

	conf, err := config.LoadConfigurationFromReader(&buf)
	if err != nil {
		h.respondError(w, http.StatusBadRequest, err.Error())
		return nil, false
	}
	return conf, true
}

func solutionToPayload(sol plant.Solution, ratio float64) solutionPayload {
	payload := solutionPayload{
		Feasible: sol.Feasible,
	}
	if !sol.Feasible {
		return payload
	}
	payload.Case = string(sol.Case)
	payload.Methanol = sol.Plan.Methanol
	payload.AmmoniaGross = sol.Plan.Ammonia
	payload.AmmoniaSaleable = sol.Plan.SaleableAmmonia(ratio)
	payload.Urea = sol.Plan.Urea
	payload.FuelFlow = sol.FuelFlow
	payload.Profit = sol.Profit
	payload.AmmoniaCost = sol.Costs.Ammonia
	payload.MethanolCost = sol.Costs.Methanol
	payload.UreaCost = sol.Costs.Urea
	return payload
}

func (h *handler) respondError(w http.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Warn("failed to encode response",
			zap.String("op", "server.writeJSON"),
			zap.Error(err),
		)
	}
}
