package handlers

import (
	"Vitrine/internal/config"
	"Vitrine/internal/service"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// ItemHandler обрабатывает CRUD каталога items.
type ItemHandler struct {
	ItemService *service.ItemService
	Logger      *zap.SugaredLogger
	Config      *config.Config
}

// NewItemHandler создаёт хендлер items
func NewItemHandler(itemService *service.ItemService, logger *zap.SugaredLogger, cfg *config.Config) *ItemHandler {
	return &ItemHandler{ItemService: itemService, Logger: logger, Config: cfg}
}

// UpdateRequest — тело PUT /items/{id}.
type UpdateRequest struct {
	Description string `json:"description"`
}

// Create — POST /items, multipart: файл image + поле description.
// Загрузка буферизуется во временный файл, который удаляется на любом
// исходе запроса.
func (h *ItemHandler) Create(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(32 << 20); err != nil {
		h.Logger.Warnw("create item: invalid multipart form", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid multipart form"})
		return
	}
	description := r.FormValue("description")

	file, header, err := r.FormFile("image")
	if err != nil {
		h.Logger.Warnw("create item: missing image", "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "image required"})
		return
	}
	defer file.Close()

	data, err := h.bufferUpload(file)
	if err != nil {
		h.Logger.Errorw("create item: failed to buffer upload", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]any{"error": "failed to read upload"})
		return
	}

	item, err := h.ItemService.Create(r.Context(), service.CreateItemInput{
		Image:        data,
		ContentType:  header.Header.Get("Content-Type"),
		OriginalName: header.Filename,
		Description:  description,
	})
	if err != nil {
		h.Logger.Errorw("create item: service error", "name", header.Filename, "error", err)
		writeError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "item": item})
}

// bufferUpload пишет загрузку во временный файл под UploadDir и читает
// её обратно. Файл удаляется на каждом пути выхода.
func (h *ItemHandler) bufferUpload(src io.Reader) ([]byte, error) {
	if err := os.MkdirAll(h.Config.UploadDir, 0o755); err != nil {
		return nil, err
	}

	tmpPath := filepath.Join(h.Config.UploadDir, uuid.NewString())
	tmp, err := os.Create(tmpPath)
	if err != nil {
		return nil, err
	}
	defer func() {
		_ = tmp.Close()
		if err := os.Remove(tmpPath); err != nil {
			h.Logger.Warnw("upload buffer: temp file not removed", "path", tmpPath, "error", err)
		}
	}()

	if _, err := io.Copy(tmp, src); err != nil {
		return nil, err
	}
	if _, err := tmp.Seek(0, io.SeekStart); err != nil {
		return nil, err
	}
	return io.ReadAll(tmp)
}

// List — GET /items, новые первыми.
func (h *ItemHandler) List(w http.ResponseWriter, r *http.Request) {
	items, err := h.ItemService.List(r.Context())
	if err != nil {
		h.Logger.Errorw("list items: service error", "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, items)
}

// Get — GET /items/{id}.
func (h *ItemHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	item, err := h.ItemService.Get(r.Context(), id)
	if err != nil {
		h.Logger.Warnw("get item: service error", "id", id, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Update — PUT /items/{id}: меняется только description.
func (h *ItemHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	var req UpdateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.Logger.Warnw("update item: invalid request body", "id", id, "error", err)
		writeJSON(w, http.StatusBadRequest, map[string]any{"error": "invalid request"})
		return
	}

	item, err := h.ItemService.UpdateDescription(r.Context(), id, req.Description)
	if err != nil {
		h.Logger.Warnw("update item: service error", "id", id, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, item)
}

// Delete — DELETE /items/{id}.
func (h *ItemHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := h.itemID(w, r)
	if !ok {
		return
	}

	if err := h.ItemService.Delete(r.Context(), id); err != nil {
		h.Logger.Warnw("delete item: service error", "id", id, "error", err)
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

// itemID разбирает {id} из пути. Нечисловой id не может указывать ни на
// одну строку, поэтому отдаём 404, как для отсутствующей записи.
func (h *ItemHandler) itemID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		h.Logger.Warnw("invalid item id", "id", raw, "error", err)
		writeError(w, service.ErrNotFound)
		return 0, false
	}
	return id, true
}
