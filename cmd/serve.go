package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/pipeline"
	"github.com/OLVCORE/olv-trade-intelligence-sub000/internal/resolver"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API for resolution and qualification requests",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		e, err := initEnv(ctx, cfg)
		if err != nil {
			return err
		}
		defer e.Close()

		r := chi.NewRouter()
		r.Use(middleware.RequestID)
		r.Use(middleware.Recoverer)
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins: []string{"*"},
			AllowedMethods: []string{"GET", "POST", "OPTIONS"},
			AllowedHeaders: []string{"Accept", "Content-Type"},
		}))

		r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
			writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
		r.Post("/api/resolve", handleResolve(e))
		r.Post("/api/qualify", handleQualify(e))

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := &http.Server{
			Addr:    fmt.Sprintf(":%d", port),
			Handler: r,
		}

		go func() {
			<-ctx.Done()
			zap.L().Info("shutting down server")
			_ = srv.Shutdown(ctx)
		}()

		zap.L().Info("starting server", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return eris.Wrap(err, "server listen")
		}

		return nil
	},
}

func handleResolve(e *env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			URL         string `json:"url"`
			CompanyName string `json:"company_name"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		identity, err := e.Resolver.Resolve(r.Context(), req.URL, req.CompanyName)
		if err != nil {
			if be, ok := resolver.IsBlocked(err); ok {
				writeJSON(w, http.StatusForbidden, map[string]string{
					"error":          "source blocked",
					"blocked_reason": be.Reason,
					"offender":       be.Offender,
				})
				return
			}
			if errors.Is(err, resolver.ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			zap.L().Error("resolve failed", zap.String("url", req.URL), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "resolution failed"})
			return
		}

		writeJSON(w, http.StatusOK, identity)
	}
}

func handleQualify(e *env) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req pipeline.QualifyRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid request body"})
			return
		}

		report, err := e.Qualifier.Run(r.Context(), req)
		if err != nil {
			if errors.Is(err, pipeline.ErrInvalidInput) {
				writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
				return
			}
			zap.L().Error("qualification failed", zap.String("company", req.CompanyName), zap.Error(err))
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "qualification failed"})
			return
		}

		writeJSON(w, http.StatusOK, report)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
