package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os/signal"
	"path"
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/spf13/cobra"
	"github.com/ukaji3/opendata-check-go/pkg/opendata"
	"github.com/ukaji3/opendata-check-go/pkg/opendata/parser"
	"github.com/ukaji3/opendata-check-go/pkg/opendata/store"
	"go.uber.org/zap"
)

// multipartMemory is how much of an upload is held in memory before spilling to disk.
const multipartMemory = 32 << 20

func newServeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve the validation and report endpoints over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			defer logger.Sync()

			a, err := newApp(cfg, logger)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			return a.serve(ctx)
		},
	}
}

// serve runs the HTTP server until ctx is done, then shuts it down gracefully.
func (a *app) serve(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:         a.cfg.Server.Address(),
		Handler:      a.routes(),
		ReadTimeout:  a.cfg.Server.ReadTimeout,
		WriteTimeout: a.cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		a.log.Info("starting HTTP server", zap.String("address", httpServer.Addr))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("HTTP server error: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	a.log.Info("shutting down HTTP server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), a.cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("HTTP server shutdown error: %w", err)
	}
	return nil
}

func (a *app) routes() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(a.requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Post("/validate", a.handleValidate)
	r.Get("/reports/{token}.pdf", a.handleReport)

	return r
}

func (a *app) requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		a.log.Debug("request",
			zap.String("method", r.Method),
			zap.String("path", r.URL.Path),
			zap.Int("status", ww.Status()),
			zap.Duration("duration", time.Since(start)),
			zap.String("request_id", middleware.GetReqID(r.Context())))
	})
}

type validateResponse struct {
	result
	ReportURL string `json:"report_url"`
}

func (a *app) handleValidate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, a.cfg.Server.MaxUploadBytes)
	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, "El archivo excede el tamaño máximo permitido.")
			return
		}
		writeError(w, http.StatusBadRequest, "No se recibió ningún archivo.")
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "No se recibió ningún archivo.")
		return
	}
	defer file.Close()

	filename := uploadName(header.Filename)
	if filename == "" {
		writeError(w, http.StatusBadRequest, "No se seleccionó ningún archivo.")
		return
	}
	if parser.Ext(filename) == "xls" {
		writeError(w, http.StatusBadRequest, "El formato .xls no es compatible; guarde el archivo como .xlsx.")
		return
	}
	if _, err := parser.FormatFor(filename); err != nil {
		writeError(w, http.StatusBadRequest, "Formato de archivo no permitido. Use csv, txt, tsv o xlsx.")
		return
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeError(w, http.StatusBadRequest, "No fue posible leer el archivo.")
		return
	}

	rec, err := a.validate(r.Context(), filename, data, true)
	switch {
	case errors.Is(err, opendata.ErrUnsupportedFormat):
		writeError(w, http.StatusBadRequest, "Formato de archivo no permitido. Use csv, txt, tsv o xlsx.")
		return
	case err != nil:
		a.log.Error("validation failed", zap.String("file", filename), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error al procesar el archivo.")
		return
	}

	writeJSON(w, http.StatusOK, validateResponse{
		result:    result{Record: rec, Passed: !rec.Observations.HasFindings()},
		ReportURL: "/reports/" + rec.Token + ".pdf",
	})
}

func (a *app) handleReport(w http.ResponseWriter, r *http.Request) {
	token := chi.URLParam(r, "token")

	rec, err := a.store.Load(r.Context(), token)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Resultados no encontrados.")
		return
	}
	if err != nil {
		a.log.Error("failed to load result", zap.String("token", token), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error al leer los resultados.")
		return
	}

	data, err := a.render(r.Context(), rec, r.URL.Query().Get("name"))
	if err != nil {
		a.log.Error("failed to render report", zap.String("token", token), zap.Error(err))
		writeError(w, http.StatusInternalServerError, "Error al generar el informe.")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", reportFilename(rec.Token)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}

// uploadName strips any client-side directories from an uploaded filename.
func uploadName(name string) string {
	name = path.Base(strings.ReplaceAll(name, "\\", "/"))
	if name == "." || name == "/" {
		return ""
	}
	return name
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}
