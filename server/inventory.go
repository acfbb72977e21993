package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/oapi-codegen/nullable"
	"github.com/openmediastation/mediaserver/pkg/inventory"
	"github.com/openmediastation/mediaserver/pkg/logger"
	"github.com/openmediastation/mediaserver/pkg/pagination"
	"github.com/openmediastation/mediaserver/pkg/storage"
	"go.uber.org/zap"
)

var (
	errUnknownCategory = errors.New("unknown category")
	errInvalidID       = errors.New("invalid item id")
)

// UpdateItemRequest changes the fields that are present. A null metadataId
// unlinks the metadata record; title cannot be null.
type UpdateItemRequest struct {
	Title      nullable.Nullable[string]    `json:"title"`
	MetadataID nullable.Nullable[uuid.UUID] `json:"metadataId"`
}

// apply changes item according to the request
func (u UpdateItemRequest) apply(item *inventory.Item) error {
	if u.Title.IsSpecified() {
		if u.Title.IsNull() {
			return errors.New("title cannot be null")
		}
		title, _ := u.Title.Get()
		if strings.TrimSpace(title) == "" {
			return errors.New("title cannot be empty")
		}
		item.Title = title
	}

	if u.MetadataID.IsSpecified() {
		if u.MetadataID.IsNull() {
			item.MetadataID = nil
		} else {
			id, _ := u.MetadataID.Get()
			item.MetadataID = &id
		}
	}

	return nil
}

// categoryParam reads the category path variable. Kinds match case-insensitively.
func categoryParam(r *http.Request) (inventory.Kind, error) {
	raw := mux.Vars(r)["category"]
	kind, ok := inventory.ParseKind(raw)
	if !ok {
		return "", fmt.Errorf("%w: %q", errUnknownCategory, raw)
	}
	return kind, nil
}

func idParam(r *http.Request) (uuid.UUID, error) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		return uuid.Nil, fmt.Errorf("%w: %w", errInvalidID, err)
	}
	return id, nil
}

// ListInventory lists the live items of a category
func (s Server) ListInventory() http.HandlerFunc {
	return s.listItems(s.inventory.ListItems)
}

// ListBin lists the binned items of a category
func (s Server) ListBin() http.HandlerFunc {
	return s.listItems(s.bin.ListItems)
}

func (s Server) listItems(list func(ctx context.Context, kind inventory.Kind) ([]inventory.Item, error)) http.HandlerFunc {
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

		items, err := list(r.Context(), kind)
		if err != nil {
			log.Error("failed to list items", zap.String("category", string(kind)), zap.Error(err))
			writeErrorResponse(w, http.StatusInternalServerError, err)
			return
		}
		if items == nil {
			items = []inventory.Item{}
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: pagination.Paginate(items, params)})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// GetInventoryItem returns one live item
func (s Server) GetInventoryItem() http.HandlerFunc {
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

		item, err := s.inventory.GetItem(r.Context(), kind, id)
		if err != nil {
			log.Debug("failed to get item", zap.String("id", id.String()), zap.Error(err))
			writeErrorResponse(w, storageStatus(err), err)
			return
		}

		err = writeResponse(w, http.StatusOK, GenericResponse{Response: item})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}

// UpdateInventoryItem edits the title or metadata link of a live item
func (s Server) UpdateInventoryItem() http.HandlerFunc {
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

		var request UpdateItemRequest
		if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
			log.Debug("invalid request body", zap.Error(err))
			writeErrorResponse(w, http.StatusBadRequest, fmt.Errorf("invalid request body: %w", err))
			return
		}

		var updated inventory.Item
		var invalid error
		err = s.inventory.Update(r.Context(), kind, func(items []inventory.Item) ([]inventory.Item, error) {
			for i := range items {
				if items[i].ID != id {
					continue
				}
				item := items[i].Clone()
				if invalid = request.apply(&item); invalid != nil {
					return nil, invalid
				}
				items[i] = item
				updated = item
				return items, nil
			}
			return nil, storage.ErrNotFound
		})
		switch {
		case invalid != nil:
			writeErrorResponse(w, http.StatusBadRequest, invalid)
			return
		case err != nil:
			log.Debug("failed to update item", zap.String("id", id.String()), zap.Error(err))
			writeErrorResponse(w, storageStatus(err), err)
			return
		}

		log.Infow("item updated", "category", kind, "id", id)
		err = writeResponse(w, http.StatusOK, GenericResponse{Response: updated})
		if err != nil {
			log.Error("failed to write response", zap.Error(err))
		}
	}
}
