package acts

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"pet-activity-log/internal/observability"
	"pet-activity-log/internal/platform/logger"

	"github.com/go-chi/chi/v5"
)

const (
	msgInvalidData = "data is not valid"
	msgInvalidID   = "invalid id"
	msgInternal    = "internal error"
)

func RegisterRoutes(r chi.Router, svc *Service, log logger.Logger) {
	r.Route("/api/todos", func(ar chi.Router) {
		ar.Get("/", listActsHandler(svc, log))
		ar.Post("/", createActHandler(svc, log))
		ar.Put("/{id}", updateActHandler(svc, log))
		ar.Delete("/{id}", deleteActHandler(svc, log))
	})
}

// actRequest es el registro que manda el cliente. El id del body se ignora (manda la URL).
type actRequest struct {
	ID   *int64     `json:"id,omitempty"`
	Time *time.Time `json:"time,omitempty"` // RFC3339; opcional
	Type Type       `json:"type" enums:"PEE,POO,FOOD,WATER,EXERCISE,ACCIDENT_PEE,ACCIDENT_POO,ACCIDENT_VOMIT"`
	Text *string    `json:"text,omitempty"` // opcional; default = label del tipo
}

// actResponse es un registro tal como quedó guardado.
type actResponse struct {
	ID   int64     `json:"id"`
	Time time.Time `json:"time"`
	Type Type      `json:"type"`
	Text string    `json:"text"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// listActsHandler godoc
// @Summary Listar registros
// @Description Devuelve los 50 registros más recientes, ordenados por hora descendente.
// @Tags acts
// @Produce json
// @Success 200 {array} actResponse
// @Failure 500 {object} errorResponse
// @Router /api/todos [get]
func listActsHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			log.Error("list acts failed", map[string]any{"err": err})
			writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternal})
			return
		}

		out := make([]actResponse, 0, len(items))
		for _, a := range items {
			out = append(out, toActResponse(a))
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// createActHandler godoc
// @Summary Crear registro
// @Description Crea un registro. Si no viene `text` se usa el label del tipo; si no viene `time`, la hora actual. El texto debe tener entre 3 y 50 caracteres.
// @Tags acts
// @Accept json
// @Produce json
// @Param payload body actRequest true "Registro sin id"
// @Success 201 {object} actResponse
// @Failure 400 {object} errorResponse "data is not valid"
// @Failure 500 {object} errorResponse
// @Router /api/todos [post]
func createActHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req actRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			observability.RecordMutation("create", "invalid")
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidData})
			return
		}

		a, err := svc.Create(r.Context(), req.toInput())
		if err != nil {
			writeServiceError(w, log, "create", err)
			return
		}

		log.Info("act created", map[string]any{"id": a.ID, "type": a.Type})
		observability.RecordMutation("create", "ok")
		observability.RecordActWritten(a.Time)
		writeJSON(w, http.StatusCreated, toActResponse(a))
	}
}

// updateActHandler godoc
// @Summary Actualizar registro
// @Description Reemplaza tipo, texto y hora del registro indicado. Sin control de versión: gana el último que escribe.
// @Tags acts
// @Accept json
// @Produce json
// @Param id path int true "ID del registro"
// @Param payload body actRequest true "Registro completo"
// @Success 201 {object} actResponse
// @Failure 400 {object} errorResponse "invalid id / data is not valid"
// @Failure 500 {object} errorResponse
// @Router /api/todos/{id} [put]
func updateActHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			observability.RecordMutation("update", "not_found")
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidID})
			return
		}

		var req actRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			observability.RecordMutation("update", "invalid")
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidData})
			return
		}

		a, err := svc.Update(r.Context(), id, req.toInput())
		if err != nil {
			writeServiceError(w, log, "update", err)
			return
		}

		log.Info("act updated", map[string]any{"id": a.ID, "type": a.Type})
		observability.RecordMutation("update", "ok")
		observability.RecordActWritten(a.Time)
		writeJSON(w, http.StatusCreated, toActResponse(a))
	}
}

// deleteActHandler godoc
// @Summary Borrar registro
// @Description Borra el registro y devuelve su último valor.
// @Tags acts
// @Produce json
// @Param id path int true "ID del registro"
// @Success 200 {object} actResponse
// @Failure 400 {object} errorResponse "invalid id"
// @Failure 500 {object} errorResponse
// @Router /api/todos/{id} [delete]
func deleteActHandler(svc *Service, log logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := parseID(chi.URLParam(r, "id"))
		if !ok {
			observability.RecordMutation("delete", "not_found")
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidID})
			return
		}

		a, err := svc.Delete(r.Context(), id)
		if err != nil {
			writeServiceError(w, log, "delete", err)
			return
		}

		log.Info("act deleted", map[string]any{"id": a.ID})
		observability.RecordMutation("delete", "ok")
		writeJSON(w, http.StatusOK, toActResponse(a))
	}
}

// writeServiceError colapsa not found e invalid input en 400, como el resto de la API.
func writeServiceError(w http.ResponseWriter, log logger.Logger, op string, err error) {
	switch {
	case errors.Is(err, ErrNotFound):
		observability.RecordMutation(op, "not_found")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidID})
	case errors.Is(err, ErrInvalidInput):
		observability.RecordMutation(op, "invalid")
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: msgInvalidData})
	default:
		observability.RecordMutation(op, "error")
		log.Error("act "+op+" failed", map[string]any{"err": err})
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: msgInternal})
	}
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (req actRequest) toInput() Input {
	in := Input{
		Type: req.Type,
		Text: req.Text,
	}
	if req.Time != nil {
		in.Time = *req.Time
	}
	return in
}

func toActResponse(a Act) actResponse {
	return actResponse{
		ID:   a.ID,
		Time: a.Time,
		Type: a.Type,
		Text: a.Text,
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
