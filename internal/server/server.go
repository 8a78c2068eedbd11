// Package server exposes the Coast FI calculator over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"time"

	json "github.com/goccy/go-json"
	"github.com/rgehrsitz/coastfi/internal/calculation"
	"github.com/rgehrsitz/coastfi/internal/config"
	"github.com/rgehrsitz/coastfi/internal/domain"
	"github.com/rgehrsitz/coastfi/internal/solver"
	"github.com/valyala/fasthttp"
)

// Request is the body accepted by every calculation endpoint
type Request struct {
	domain.CoastFIInputs
	StartYear int `json:"startYear,omitempty"` // projection calendar year, defaults to the current year
	TargetAge int `json:"targetAge,omitempty"` // solve only
	MaxAge    int `json:"maxAge,omitempty"`    // solve only
}

// ProjectionResponse wraps the year-by-year projection
type ProjectionResponse struct {
	StartYear   int                           `json:"startYear"`
	Projections []domain.InvestmentProjection `json:"projections"`
}

// ErrorResponse is returned with every non-2xx status
type ErrorResponse struct {
	Status   int      `json:"status"`
	Message  string   `json:"message"`
	Problems []string `json:"problems,omitempty"`
}

// Server routes HTTP requests to the calculation engine and solver
type Server struct {
	Engine *calculation.CalculationEngine
	Solver *solver.Solver
	Parser *config.InputParser
	Logger calculation.Logger

	// ReadTimeout and WriteTimeout bound each connection
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	// SolveTimeout bounds a single solver request; zero means no limit
	SolveTimeout time.Duration
}

// New creates a server around the engine, logging through the engine's logger
func New(engine *calculation.CalculationEngine) *Server {
	if engine == nil {
		engine = calculation.NewCalculationEngine()
	}
	return &Server{
		Engine:       engine,
		Solver:       solver.NewDefaultSolver(engine),
		Parser:       config.NewInputParser(),
		Logger:       engine.Logger,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
		SolveTimeout: 5 * time.Second,
	}
}

// Handler returns the request router
func (s *Server) Handler() fasthttp.RequestHandler {
	return func(ctx *fasthttp.RequestCtx) {
		start := time.Now()
		s.route(ctx)
		s.logger().Infof("%s %s -> %d (%s)", ctx.Method(), ctx.Path(), ctx.Response.StatusCode(), time.Since(start))
	}
}

func (s *Server) route(ctx *fasthttp.RequestCtx) {
	path := string(ctx.Path())

	if path == "/healthz" {
		if !ctx.IsGet() && !ctx.IsHead() {
			writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed", nil)
			return
		}
		writeJSON(ctx, fasthttp.StatusOK, map[string]string{"status": "ok"})
		return
	}

	var handle func(*fasthttp.RequestCtx, Request)
	switch path {
	case "/v1/coastfi":
		handle = s.handleCoastFI
	case "/v1/projections":
		handle = s.handleProjections
	case "/v1/plan":
		handle = s.handlePlan
	case "/v1/solve":
		handle = s.handleSolve
	default:
		writeError(ctx, fasthttp.StatusNotFound, fmt.Sprintf("no route for %s", path), nil)
		return
	}

	if !ctx.IsPost() {
		writeError(ctx, fasthttp.StatusMethodNotAllowed, "method not allowed", nil)
		return
	}

	var req Request
	if err := json.Unmarshal(ctx.PostBody(), &req); err != nil {
		writeError(ctx, fasthttp.StatusBadRequest, "invalid request body: "+err.Error(), nil)
		return
	}
	if err := s.Parser.ValidateInputs(req.CoastFIInputs); err != nil {
		var verr *config.ValidationError
		if errors.As(err, &verr) {
			writeError(ctx, fasthttp.StatusBadRequest, "invalid inputs", verr.Problems)
			return
		}
		writeError(ctx, fasthttp.StatusBadRequest, err.Error(), nil)
		return
	}

	handle(ctx, req)
}

func (s *Server) handleCoastFI(ctx *fasthttp.RequestCtx, req Request) {
	writeJSON(ctx, fasthttp.StatusOK, calculation.CalculateCoastFI(req.CoastFIInputs))
}

func (s *Server) handleProjections(ctx *fasthttp.RequestCtx, req Request) {
	startYear := s.startYear(req)
	writeJSON(ctx, fasthttp.StatusOK, ProjectionResponse{
		StartYear:   startYear,
		Projections: calculation.GenerateProjectionsFrom(req.CoastFIInputs, startYear),
	})
}

func (s *Server) handlePlan(ctx *fasthttp.RequestCtx, req Request) {
	writeJSON(ctx, fasthttp.StatusOK, s.Engine.Summarize(domain.DefaultScenarioName, req.CoastFIInputs, s.startYear(req)))
}

func (s *Server) handleSolve(ctx *fasthttp.RequestCtx, req Request) {
	targetAge := req.TargetAge
	if targetAge == 0 {
		// halfway to retirement when not given
		targetAge = req.CurrentAge + (req.YearsToRetirement()+1)/2
	}
	solveCtx := context.Background()
	if s.SolveTimeout > 0 {
		var cancel context.CancelFunc
		solveCtx, cancel = context.WithTimeout(solveCtx, s.SolveTimeout)
		defer cancel()
	}

	result, err := s.Solver.SolveAll(solveCtx, req.CoastFIInputs, targetAge, req.MaxAge)
	if err != nil {
		writeError(ctx, fasthttp.StatusUnprocessableEntity, err.Error(), nil)
		return
	}
	writeJSON(ctx, fasthttp.StatusOK, result)
}

func (s *Server) startYear(req Request) int {
	if req.StartYear > 0 {
		return req.StartYear
	}
	return s.Engine.StartYear(nil)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &fasthttp.Server{
		Handler:      s.Handler(),
		Name:         "coastfi",
		ReadTimeout:  s.ReadTimeout,
		WriteTimeout: s.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger().Infof("coastfi API listening on %s", addr)
		errCh <- srv.ListenAndServe(addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		s.logger().Infof("shutting down")
		if err := srv.Shutdown(); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	}
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(ctx, fasthttp.StatusInternalServerError, "failed to encode response: "+err.Error(), nil)
		return
	}
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string, problems []string) {
	body, _ := json.Marshal(ErrorResponse{Status: status, Message: message, Problems: problems})
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func (s *Server) logger() calculation.Logger {
	if s.Logger == nil {
		return calculation.NopLogger{}
	}
	return s.Logger
}
