package handler

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/jaekwang-park/tasklist/internal/model"
	"github.com/jaekwang-park/tasklist/internal/service"
)

type TaskHandler struct {
	svc    *service.TaskService
	logger *slog.Logger
}

func NewTaskHandler(svc *service.TaskService, logger *slog.Logger) *TaskHandler {
	return &TaskHandler{svc: svc, logger: logger}
}

// Get serves GET /tasks: one task when a positive id is supplied, otherwise
// the full collection ordered by the sort query param.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	if id := queryID(r); id > 0 {
		h.getByID(w, r, id)
		return
	}

	sort := model.ParseSortKey(r.URL.Query().Get("sort"))

	tasks, err := h.svc.List(r.Context(), sort)
	if err != nil {
		h.serverError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: tasks})
}

func (h *TaskHandler) getByID(w http.ResponseWriter, r *http.Request, id int64) {
	task, err := h.svc.GetByID(r.Context(), id)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			WriteFailure(w, "Task not found")
			return
		}
		h.serverError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, Envelope{Success: true, Data: task})
}

type createTaskRequest struct {
	TaskText *string `json:"task_text"`
	TaskDate *string `json:"task_date"`
	TaskTime *string `json:"task_time"`
}

func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createTaskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteFailure(w, "Missing required fields")
		return
	}

	input := service.CreateTaskInput{
		Text: req.TaskText,
		Date: req.TaskDate,
		Time: req.TaskTime,
	}

	id, err := h.svc.Create(r.Context(), input)
	if err != nil {
		if errors.Is(err, service.ErrInvalidInput) {
			WriteFailure(w, "Missing required fields")
			return
		}
		h.serverError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, Envelope{
		Success: true,
		Message: "Task added successfully",
		ID:      id,
	})
}

type updateTaskRequest struct {
	TaskText *string `json:"task_text"`
	TaskDate *string `json:"task_date"`
	TaskTime *string `json:"task_time"`
	Status   *string `json:"status"`
}

func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	id := queryID(r)
	if id <= 0 {
		WriteFailure(w, "Task ID required")
		return
	}

	// A malformed or empty body leaves every field nil, which reports the
	// same way as an explicit empty patch.
	var req updateTaskRequest
	_ = json.NewDecoder(r.Body).Decode(&req)

	patch := model.TaskPatch{
		Text:   req.TaskText,
		Date:   req.TaskDate,
		Time:   req.TaskTime,
		Status: req.Status,
	}

	if err := h.svc.Update(r.Context(), id, patch); err != nil {
		switch {
		case errors.Is(err, service.ErrNoFields):
			WriteFailure(w, "No fields to update")
		case errors.Is(err, service.ErrInvalidInput):
			WriteFailure(w, "Invalid status value")
		default:
			h.serverError(w, r, err)
		}
		return
	}

	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "Task updated successfully"})
}

func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := queryID(r)
	if id <= 0 {
		WriteFailure(w, "Task ID required")
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		h.serverError(w, r, err)
		return
	}

	WriteJSON(w, http.StatusOK, Envelope{Success: true, Message: "Task deleted successfully"})
}

// InvalidMethod answers any verb outside the supported set with a generic
// envelope instead of an HTTP error status.
func InvalidMethod(w http.ResponseWriter, r *http.Request) {
	WriteFailure(w, "Invalid request method")
}

// serverError hides store-level detail from the caller: the error is logged
// and the envelope carries only a generic message.
func (h *TaskHandler) serverError(w http.ResponseWriter, r *http.Request, err error) {
	h.logger.Error("task operation failed",
		"method", r.Method,
		"path", r.URL.Path,
		"error", err,
	)
	WriteFailure(w, "Server error occurred")
}

// queryID reads the id query param. A missing or non-numeric value maps to
// zero, matching the collection (no-id) form of the request.
func queryID(r *http.Request) int64 {
	id, err := strconv.ParseInt(r.URL.Query().Get("id"), 10, 64)
	if err != nil {
		return 0
	}
	return id
}
