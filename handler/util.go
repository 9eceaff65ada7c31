package handler

import (
	"context"
	"encoding/json"
	"io"
	"net/http"

	intake "github.com/dawsos/intake-api"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

// envelope is the response wrapper the UI expects on every non-list
// response.
type envelope struct {
	Success bool                `json:"success"`
	ID      string              `json:"id,omitempty"`
	Message string              `json:"message,omitempty"`
	Errors  []intake.FieldError `json:"errors,omitempty"`
}

func decode(r *http.Request, into interface{}) error {
	rawJson, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(rawJson, into)
}

func respond(ctx context.Context, rw http.ResponseWriter, status int, data interface{}) {
	ctx, span := otel.GetTracerProvider().Tracer("").Start(ctx, "handler.respond")
	span.SetAttributes(attribute.Int("http.status", status))
	defer span.End()

	if status == http.StatusNoContent || data == nil {
		rw.WriteHeader(status)
		return
	}

	rawJson, err := json.Marshal(data)
	if err != nil {
		panic("respond-json-marshal:" + err.Error())
	}

	rw.Header().Add("Content-Type", "application/json")
	rw.WriteHeader(status)
	rw.Write(rawJson)
}

func respondFail(ctx context.Context, rw http.ResponseWriter, status int, message string, fields []intake.FieldError) {
	respond(ctx, rw, status, envelope{
		Success: false,
		Message: message,
		Errors:  fields,
	})
}

// fail translates an intake error into the envelope the UI renders as a
// toast: validation failures list every violated field under a 400,
// anything else becomes a generic 500 with no internal detail.
func fail(ctx context.Context, rw http.ResponseWriter, err error, internalMessage string) {
	if verr, ok := err.(*intake.ValidationError); ok {
		respondFail(ctx, rw, http.StatusBadRequest, "Validation error", verr.Fields)
		return
	}
	respondFail(ctx, rw, http.StatusInternalServerError, internalMessage, nil)
}
