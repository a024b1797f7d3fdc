package mockserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/aws/smithy-go"
	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nandemo-ya/dms-go/internal/api"
	"github.com/nandemo-ya/dms-go/internal/logging"
	"github.com/nandemo-ya/dms-go/internal/shape"
	"github.com/nandemo-ya/dms-go/internal/version"
)

const (
	contentType     = "application/x-amz-json-1.1"
	requestIDHeader = "x-amzn-RequestId"
)

// NewRouter returns the HTTP handler serving svc over the DMS JSON 1.1
// protocol. Operations are dispatched on the X-Amz-Target header.
func NewRouter(svc api.DMSAPI) *mux.Router {
	handlers := operationHandlers(svc)

	router := mux.NewRouter()
	router.Use(requestLogger)
	router.HandleFunc("/healthz", handleHealthCheck).Methods(http.MethodGet)
	router.Path("/").Methods(http.MethodPost).HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		operation, ok := parseTarget(r.Header.Get("X-Amz-Target"))
		if !ok {
			writeError(w, http.StatusBadRequest, "UnknownOperationException", "missing or invalid X-Amz-Target header")
			return
		}
		handler, ok := handlers[operation]
		if !ok {
			writeError(w, http.StatusBadRequest, "UnknownOperationException", "unknown operation "+operation)
			return
		}

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "SerializationException", err.Error())
			return
		}

		ctx := logging.WithOperation(r.Context(), operation)
		resp, err := handler(ctx, body)
		if err != nil {
			writeAPIError(w, err)
			return
		}
		writeJSON(w, resp)
	})
	router.MethodNotAllowedHandler = http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "MethodNotAllowed", "method "+r.Method+" is not allowed")
	})

	return router
}

// parseTarget returns the operation of an "AmazonDMSv20160101.<Operation>"
// target.
func parseTarget(target string) (string, bool) {
	service, operation, ok := strings.Cut(target, ".")
	if !ok || service != api.ServiceID || operation == "" {
		return "", false
	}
	return operation, true
}

func writeJSON(w http.ResponseWriter, data any) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logging.Error("Failed to encode response", "error", err)
	}
}

func writeError(w http.ResponseWriter, statusCode int, errorType, message string) {
	w.Header().Set("Content-Type", contentType)
	w.WriteHeader(statusCode)
	if err := json.NewEncoder(w).Encode(map[string]string{
		"__type":  errorType,
		"message": message,
	}); err != nil {
		logging.Error("Failed to encode error response", "error", err)
	}
}

// writeAPIError encodes err as a DMS error body. Faults are 400, the
// NotImplemented error 501 and anything else 500.
func writeAPIError(w http.ResponseWriter, err error) {
	var invalid *shape.InvalidParamsError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusBadRequest, "InvalidParameterValueException", invalid.Error())
		return
	}
	var decodeErr *requestDecodeError
	if errors.As(err, &decodeErr) {
		writeError(w, http.StatusBadRequest, "SerializationException", decodeErr.Error())
		return
	}

	var apiErr smithy.APIError
	if !errors.As(err, &apiErr) {
		writeError(w, http.StatusInternalServerError, "InternalFailure", err.Error())
		return
	}

	status := http.StatusBadRequest
	switch {
	case apiErr.ErrorCode() == "NotImplemented":
		status = http.StatusNotImplemented
	case apiErr.ErrorFault() == smithy.FaultServer:
		status = http.StatusInternalServerError
	}
	writeError(w, status, apiErr.ErrorCode(), apiErr.ErrorMessage())
}

// statusRecorder captures the status code written by a handler
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

// requestLogger assigns a request id and logs every request.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := uuid.NewString()
		w.Header().Set(requestIDHeader, requestID)

		ctx := logging.WithRequestID(r.Context(), requestID)
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rec, r.WithContext(ctx))

		operation, _ := parseTarget(r.Header.Get("X-Amz-Target"))
		logging.FromContext(ctx).Info("request",
			"method", r.Method,
			"path", r.URL.Path,
			"operation", operation,
			"status", rec.status,
			"duration", time.Since(start),
		)
	})
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
	Version   string    `json:"version"`
}

func handleHealthCheck(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(HealthResponse{
		Status:    "OK",
		Timestamp: time.Now(),
		Version:   version.GetVersion(),
	})
}
