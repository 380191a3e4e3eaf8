package handlers

import (
	"net/http"
	"strings"

	"github.com/xavierca1/leadflow/internal/infra/http/middleware"
	"github.com/xavierca1/leadflow/internal/usecase"
)

const maxUploadSize = 10 << 20

type ImportHandler struct {
	ImportLeads *usecase.ImportLeadsUseCase
}

func NewImportHandler(uc *usecase.ImportLeadsUseCase) *ImportHandler {
	return &ImportHandler{ImportLeads: uc}
}

// Handle (POST /leads/import) accepts either a multipart upload in the
// "file" field or a JSON body {"text": "..."} for bulk paste.
func (h *ImportHandler) Handle(w http.ResponseWriter, r *http.Request) {
	var input usecase.ImportLeadsInput

	if strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		if err := r.ParseMultipartForm(maxUploadSize); err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "INVALID_UPLOAD", "Invalid upload")
			return
		}
		file, header, err := r.FormFile("file")
		if err != nil {
			writeErrorResponse(w, http.StatusBadRequest, "MISSING_FILE", "file is required")
			return
		}
		defer file.Close()
		input.Filename = header.Filename
		input.File = file
	} else {
		var body struct {
			Text string `json:"text"`
		}
		if !decodeJSON(w, r, &body) {
			return
		}
		input.Text = body.Text
	}

	output, err := h.ImportLeads.Execute(r.Context(), input)
	if err != nil {
		writeUseCaseError(w, err)
		return
	}
	middleware.RecordLeadsCollected("import", output.Imported)
	writeJSON(w, http.StatusCreated, output)
}
