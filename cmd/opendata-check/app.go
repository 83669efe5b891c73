package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"time"

	"github.com/ukaji3/opendata-check-go/pkg/opendata"
	"github.com/ukaji3/opendata-check-go/pkg/opendata/models"
	"github.com/ukaji3/opendata-check-go/pkg/opendata/report"
	"github.com/ukaji3/opendata-check-go/pkg/opendata/store"
	"go.uber.org/zap"
)

// timestampLayout is how validation times are printed and reported.
const timestampLayout = "2006-01-02 15:04:05"

// app wires configuration, storage and rendering for the commands and the server.
type app struct {
	cfg    *Config
	log    *zap.Logger
	store  *store.FileStore
	assets fs.FS
	now    func() time.Time
}

func newApp(cfg *Config, logger *zap.Logger) (*app, error) {
	s, err := store.NewFileStore(cfg.Storage.ResultsDir)
	if err != nil {
		return nil, err
	}

	var assets fs.FS
	if info, err := os.Stat(cfg.Report.AssetsDir); err == nil && info.IsDir() {
		assets = os.DirFS(cfg.Report.AssetsDir)
	} else {
		logger.Warn("report assets not found, images will be skipped",
			zap.String("dir", cfg.Report.AssetsDir))
	}

	return &app{
		cfg:    cfg,
		log:    logger,
		store:  s,
		assets: assets,
		now:    time.Now,
	}, nil
}

func (a *app) validateOptions() opendata.Options {
	opts := opendata.DefaultOptions()
	if len(a.cfg.Validation.DateColumnTokens) > 0 {
		opts.DateColumnTokens = a.cfg.Validation.DateColumnTokens
	}
	if a.cfg.Validation.MaxExamples > 0 {
		opts.MaxExamples = a.cfg.Validation.MaxExamples
	}
	opts.Logger = a.log.Named("validate")
	return opts
}

func (a *app) reportOptions() report.Options {
	opts := report.DefaultOptions()
	opts.Assets = a.assets
	if len(a.cfg.Report.Letterhead) > 0 {
		opts.Letterhead = a.cfg.Report.Letterhead
	}
	if len(a.cfg.Report.Signature) > 0 {
		opts.Signature = a.cfg.Report.Signature
	}
	opts.Logger = a.log.Named("report")
	return opts
}

// validate runs the checks on one file and optionally stores the result.
func (a *app) validate(ctx context.Context, filename string, data []byte, save bool) (store.Record, error) {
	obs, err := opendata.ValidateFile(filename, data, a.validateOptions())
	if err != nil {
		return store.Record{}, err
	}

	rec := store.Record{
		Filename:     filename,
		ValidatedAt:  a.now().In(a.cfg.Report.Location()),
		Observations: obs,
	}
	if save {
		token, err := a.store.Save(ctx, rec)
		if err != nil {
			return store.Record{}, err
		}
		rec.Token = token
	}

	a.log.Info("file validated",
		zap.String("file", filename),
		zap.Bool("passed", !obs.HasFindings()),
		zap.Int("findings", obs.Count()),
		zap.String("token", rec.Token))
	return rec, nil
}

// render builds the PDF for a record. name overrides the printed filename.
func (a *app) render(ctx context.Context, rec store.Record, name string) ([]byte, error) {
	if name == "" {
		name = rec.Filename
	}

	loc := a.cfg.Report.Location()
	now := a.now().In(loc)
	validatedAt := rec.ValidatedAt
	if validatedAt.IsZero() {
		validatedAt = now
	}

	meta := report.Metadata{
		ValidatedAt: validatedAt.In(loc).Format(timestampLayout),
		DateLine:    dateLine(a.cfg.Report.Place, now),
		Generated:   now,
	}
	if prefix := a.cfg.Report.SequencePrefix; prefix != "" {
		seq, err := a.store.NextSequence(ctx, prefix, now.Year())
		if err != nil {
			return nil, fmt.Errorf("allocate document number: %w", err)
		}
		meta.SequenceID = seq
	}

	data, err := report.Render(rec.Observations, name, meta, a.reportOptions())
	if err != nil {
		return nil, err
	}

	a.log.Info("report rendered",
		zap.String("file", name),
		zap.String("token", rec.Token),
		zap.String("sequence", meta.SequenceID),
		zap.Int("bytes", len(data)))
	return data, nil
}

// categoryLabels names each category in command output.
var categoryLabels = map[models.Category]string{
	models.CategoryFormat:   "Formato",
	models.CategoryFilename: "Nombre del archivo",
	models.CategoryColumns:  "Nombres de columnas",
	models.CategoryData:     "Filas/Datos",
}
