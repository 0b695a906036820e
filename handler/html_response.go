package handler

import (
	"io"
	"net/http"
)

type htmlResponse struct {
	status int
	body   string
}

func (h htmlResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(h.status)
	_, err := io.WriteString(w, h.body)
	return err
}

// HTML writes an already rendered HTML fragment with status 200.
func HTML(fragment string) Response {
	return htmlResponse{status: http.StatusOK, body: fragment}
}

type attachmentResponse struct {
	filename    string
	contentType string
	write       func(io.Writer) error
}

func (a attachmentResponse) Render(w http.ResponseWriter, r *http.Request) error {
	w.Header().Set("Content-Type", a.contentType)
	w.Header().Set("Content-Disposition", `attachment; filename="`+a.filename+`"`)
	w.WriteHeader(http.StatusOK)
	return a.write(w)
}

// CSV streams a downloadable CSV file produced by write.
func CSV(filename string, write func(io.Writer) error) Response {
	return attachmentResponse{
		filename:    filename,
		contentType: "text/csv; charset=utf-8",
		write:       write,
	}
}
