package server

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/openmediastation/mediaserver/pkg/scanner"
	"github.com/openmediastation/mediaserver/pkg/storage"
	"go.uber.org/zap"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
)

//go:generate mockgen -package mocks -destination mocks/mock_scan_controller.go github.com/openmediastation/mediaserver/server ScanController

type GenericResponse struct {
	Error    string `json:"error,omitempty"`
	Response any    `json:"response"`
}

// ScanController accepts rescan requests and reports scanner progress
type ScanController interface {
	Trigger()
	Status() scanner.Status
}

// Server exposes the inventory, the bin and the scanner over http
type Server struct {
	baseLogger *zap.SugaredLogger
	inventory  storage.InventoryStore
	bin        storage.BinStore
	metadata   MetadataStore
	scanner    ScanController
	mediaRoot  string
}

// New creates a new media server
func New(logger *zap.SugaredLogger, inventory storage.InventoryStore, bin storage.BinStore, metadata MetadataStore, scanner ScanController, mediaRoot string) Server {
	return Server{
		baseLogger: logger,
		inventory:  inventory,
		bin:        bin,
		metadata:   metadata,
		scanner:    scanner,
		mediaRoot:  mediaRoot,
	}
}

func writeGenericResponse(w http.ResponseWriter, status int) error {
	return writeResponse(w, status, GenericResponse{})
}

func writeErrorResponse(w http.ResponseWriter, status int, err error) error {
	return writeResponse(w, status, GenericResponse{
		Error: err.Error(),
	})
}

func writeResponse(w http.ResponseWriter, status int, body any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}

	w.Header().Set("content-type", "application/json")
	if status != http.StatusOK {
		w.WriteHeader(status)
	}

	_, err = w.Write(b)
	return err
}

// storageStatus maps store errors to a response status
func storageStatus(err error) int {
	if errors.Is(err, storage.ErrNotFound) {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}

// Router builds the routes served by the api
func (s Server) Router() *mux.Router {
	rtr := mux.NewRouter()
	rtr.Use(s.LogMiddleware())
	rtr.HandleFunc("/healthz", s.Healthz()).Methods(http.MethodGet)

	api := rtr.PathPrefix("/api").Subrouter()

	v1 := api.PathPrefix("/v1").Subrouter()

	v1.HandleFunc("/inventory/{category}", s.ListInventory()).Methods(http.MethodGet)
	v1.HandleFunc("/inventory/{category}/{id}", s.GetInventoryItem()).Methods(http.MethodGet)
	v1.HandleFunc("/inventory/{category}/{id}", s.UpdateInventoryItem()).Methods(http.MethodPatch)

	v1.HandleFunc("/bin/{category}", s.ListBin()).Methods(http.MethodGet)

	v1.HandleFunc("/metadata/{category}", s.ListMetadata()).Methods(http.MethodGet)
	v1.HandleFunc("/metadata/{category}/{id}", s.GetMetadata()).Methods(http.MethodGet)
	v1.HandleFunc("/metadata/{category}/{id}", s.PutMetadata()).Methods(http.MethodPut)

	v1.HandleFunc("/scan", s.TriggerScan()).Methods(http.MethodPost)
	v1.HandleFunc("/scan", s.ScanStatus()).Methods(http.MethodGet)

	v1.HandleFunc("/parse", s.ParsePath()).Methods(http.MethodGet)

	return rtr
}

// Serve starts the http server and blocks until ctx is done
func (s Server) Serve(ctx context.Context, port int) error {
	corsHandler := handlers.CORS(
		handlers.AllowedOrigins([]string{"*"}),
		handlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodPut}),
	)(s.Router())

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", port),
		Handler:           corsHandler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		s.baseLogger.Info("serving...", zap.Int("port", port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
		close(errs)
	}()

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second*3)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}

// Healthz is an endpoint that can be used for probes
func (s Server) Healthz() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := GenericResponse{
			Response: "ok",
		}
		writeResponse(w, http.StatusOK, response)
	}
}
