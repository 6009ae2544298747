package server

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"path/filepath"

	"github.com/go-chi/render"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/institutions"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/models"
	"github.com/ukaji3/fundalloc-go/pkg/fundalloc/output"
)

// uploadField is the multipart field carrying the workbooks.
const uploadField = "files"

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type errorResponse struct {
	Code    string `json:"error_code"`
	Message string `json:"message"`
}

type institutionInfo struct {
	ID      string   `json:"id"`
	Name    string   `json:"name"`
	Aliases []string `json:"aliases"`
	Sheet   string   `json:"sheet"`
	Tags    []string `json:"tags"`
}

func (s *Server) fail(w http.ResponseWriter, r *http.Request, status int, code, msg string) {
	render.Status(r, status)
	render.JSON(w, r, errorResponse{Code: code, Message: msg})
}

// handleHealth handles GET /healthz
func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	render.JSON(w, r, map[string]string{"status": "ok"})
}

// handleInstitutions handles GET /api/institutions
func (s *Server) handleInstitutions(w http.ResponseWriter, r *http.Request) {
	var out []institutionInfo
	for _, id := range institutions.All() {
		p, _ := institutions.Lookup(id)
		info := institutionInfo{
			ID:      string(id),
			Name:    p.Name,
			Aliases: institutions.Aliases(id),
			Sheet:   p.Sheet.String(),
		}
		for _, t := range p.Tags() {
			info.Tags = append(info.Tags, string(t))
		}
		out = append(out, info)
	}
	render.JSON(w, r, out)
}

// handleExtract handles POST /api/extract
func (s *Server) handleExtract(w http.ResponseWriter, r *http.Request) {
	book, ok := s.extractUpload(w, r)
	if !ok {
		return
	}
	render.JSON(w, r, book)
}

// handleSummary handles POST /api/summary
func (s *Server) handleSummary(w http.ResponseWriter, r *http.Request) {
	book, ok := s.extractUpload(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := output.WriteWorkbook(&buf, book.Files); err != nil {
		if errors.Is(err, output.ErrNoResults) {
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, book)
			return
		}
		s.logger.ErrorContext(r.Context(), "failed to build workbook", slog.String("error", err.Error()))
		s.fail(w, r, http.StatusInternalServerError, "WORKBOOK_FAILED", "could not build summary workbook")
		return
	}

	w.Header().Set("Content-Type", xlsxContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", book.BookName))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(buf.Bytes())
}

// extractUpload reads the multipart upload and runs the batch. It writes the
// error response itself and returns false on request-level failures.
func (s *Server) extractUpload(w http.ResponseWriter, r *http.Request) (*models.SummaryBook, bool) {
	limit := s.cfg.Server.MaxUploadBytes
	tooLarge := func() {
		s.fail(w, r, http.StatusRequestEntityTooLarge, "UPLOAD_TOO_LARGE",
			fmt.Sprintf("upload exceeds %d bytes", limit))
	}
	if r.ContentLength > limit {
		tooLarge()
		return nil, false
	}

	r.Body = http.MaxBytesReader(w, r.Body, limit)
	if err := r.ParseMultipartForm(limit); err != nil {
		var maxBytes *http.MaxBytesError
		if errors.As(err, &maxBytes) {
			tooLarge()
			return nil, false
		}
		s.fail(w, r, http.StatusBadRequest, "INVALID_REQUEST", "expected multipart/form-data upload")
		return nil, false
	}

	headers := r.MultipartForm.File[uploadField]
	if len(headers) == 0 {
		s.fail(w, r, http.StatusBadRequest, "MISSING_PARAMETER", "no files in field \""+uploadField+"\"")
		return nil, false
	}

	inputs := make([]fundalloc.Input, 0, len(headers))
	for _, fh := range headers {
		data, err := readPart(fh)
		if err != nil {
			s.fail(w, r, http.StatusBadRequest, "INVALID_REQUEST",
				fmt.Sprintf("could not read %s: %v", fh.Filename, err))
			return nil, false
		}
		inputs = append(inputs, fundalloc.Input{Name: filepath.Base(fh.Filename), Data: data})
	}
	s.metrics.AddUploads(len(inputs))

	opts := fundalloc.Options{
		Canonical: s.cfg.Extract.Canonical,
		Logger:    s.logger.With(slog.String("request_id", GetReqID(r.Context()))),
		Observer:  s.metrics,
	}
	files := fundalloc.ExtractBatch(r.Context(), inputs, s.cfg.Extract.Workers, opts)
	book := &models.SummaryBook{BookName: s.cfg.Extract.BookName, Files: files}

	for _, f := range book.Failed() {
		s.logger.WarnContext(r.Context(), "file not extracted",
			slog.String("file", f.FileName),
			slog.String("error", f.Error))
	}
	return book, true
}

func readPart(fh *multipart.FileHeader) ([]byte, error) {
	f, err := fh.Open()
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return io.ReadAll(f)
}
