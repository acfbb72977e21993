package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/pkg/metadata"
	"github.com/openmediastation/mediaserver/pkg/pagination"
	"go.uber.org/zap"
)

// MetadataStore reads and edits the records items point at through their metadataId
type MetadataStore interface {
	ListMetadata(ctx context.Context, kind inventory.Kind) ([]metadata.Metadata, error)
	GetMetadata(ctx context.Context, kind inventory.Kind, id uuid.UUID) (metadata.Metadata, error)
	UpdateOrAddMetadata(ctx context.Context, m metadata.Metadata) error
}

// ListMetadata lists the metadata records of a category
func (s Server) ListMetadata() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		kind, err := categoryParam(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		params, err := ParsePaginationParams(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		records, err := s.metadata.ListMetadata(r.Context(), kind)
		if err != nil {
			log.Error("failed to list metadata", zap.String("category", string(kind)), zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}
		if records == nil {
			records = []metadata.Metadata{}
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: pagination.Paginate(records, params)})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GetMetadata returns one metadata record
func (s Server) GetMetadata() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		kind, err := categoryParam(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		id, err := idParam(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		record, err := s.metadata.GetMetadata(r.Context(), kind, id)
		if err != nil {
			log.Debug("failed to get metadata", zap.String("id", id.String()), zap.Error(err))
			writeErrorResponse(w, storageStatus(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: record})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// PutMetadata replaces or creates the record at category and id. Id and category
// come from the path; a body naming others is rejected.
func (s Server) PutMetadata() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		log := logger.FromCtx(r.Context())

		kind, err := categoryParam(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}
		id, err := idParam(r)
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		var record metadata.Metadata
		if err := json.NewDecoder(r.Body).Decode(&record); err != nil {
			log.Debug("invalid request body", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}
		if err := matchPath(&record, kind, id); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, err)
			return
		}

		if err := s.metadata.UpdateOrAddMetadata(r.Context(), record); err != nil {
			log.Error("failed to store metadata", zap.String("id", id.String()), zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}

		log.Infow("metadata stored", "category", kind, "id", id)
		err = writeResponse(w, http.StatusOK, GenericResponse{Response: record})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// matchPath fills the record's id and category from the path
func matchPath(record *metadata.Metadata, kind inventory.Kind, id uuid.UUID) error {
	if record.ID != uuid.Nil && record.ID != id {
		return fmt.Errorf("%w: body id %s does not match %s", errInvalidID, record.ID, id)
	}
	if record.Category != "" && !strings.EqualFold(string(record.Category), string(kind)) {
		return fmt.Errorf("%w: body category %q does not match %q", errUnknownCategory, record.Category, kind)
	}
	if strings.TrimSpace(record.Title) == "" {
		return errors.New("title cannot be empty")
	}

	record.ID = id
	record.Category = kind
	return nil
}
