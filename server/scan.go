package server

import (
	"errors"
	"net/http"
	"path/filepath"

	"github.com/openmediastation/mediaserver/pkg/library"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"go.uber.org/zap"
)

// TriggerScan requests a rescan. Requests made while a scan runs collapse into one.
func (s Server) TriggerScan() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())
		s.scanner.Trigger()
		log.Debug("scan requested")

		if err := writeGenericResponse(w, http.StatusAccepted); err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

func (s Server) ScanStatus() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		err := writeResponse(w, http.StatusOK, GenericResponse{Response: s.scanner.Status()})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// ParsePath shows how a path would be read without touching the inventory.
// Relative paths are taken from the media root.
func (s Server) ParsePath() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		path := r.URL.Query().Get("path")
		if path == "" {
			writeErrorResponse(w, http.StatusBadRequest, errors.New("path is required"))
			return
		}
		if !filepath.IsAbs(path) {
			path = filepath.Join(s.mediaRoot, path)
		}

		parsed, err := library.Parse(path, s.mediaRoot)
		if err != nil {
			log.Debug("path could not be parsed", zap.String("path", path), zap.Error(err))
			writeErrorResponse(w, http.StatusUnprocessableEntity, err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: parsed})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}
