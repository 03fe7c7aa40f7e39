package server

import (
	"context"
	_ "embed"
	"html/template"
	"net/http"
	"regexp"
	"strings"

	"log/slog"

	"github.com/Phoenixs77/CarletonCalendar/calendar"
	"github.com/Phoenixs77/CarletonCalendar/courses"
)

// EmailRecorder captures the submitter's address before a download. The core
// conversion never touches it; persistence stays on this side of the boundary.
type EmailRecorder interface {
	Record(ctx context.Context, email string) error
}

type formHandler struct {
	store  EmailRecorder
	logger *slog.Logger
}

//go:embed form.html
var formHTML string

var formTemplate = template.Must(template.New("form").Parse(formHTML))

var emailPattern = regexp.MustCompile(`^[\w.-]+@[\w.-]+\.\w+$`)

func (h *formHandler) showForm(w http.ResponseWriter, r *http.Request) {
	h.renderForm(w, "")
}

func (h *formHandler) renderForm(w http.ResponseWriter, errorMessage string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	err := formTemplate.Execute(w, struct{ Error string }{Error: errorMessage})
	if err != nil {
		h.logger.Error("Could not render form", "err", err)
	}
}

func (h *formHandler) convert(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}
	email := strings.TrimSpace(r.PostFormValue("user_email"))
	input := strings.TrimSpace(strings.ReplaceAll(r.PostFormValue("course_data"), "\r\n", "\n"))

	if !emailPattern.MatchString(email) {
		h.renderForm(w, "Please enter a valid email address.")
		return
	}
	if err := h.store.Record(r.Context(), email); err != nil {
		h.logger.Error("Could not record email", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}

	parsed := courses.ParseCourses(input)
	doc, outcomes, err := calendar.Generate(parsed, calendar.Options{})
	if err != nil {
		h.logger.Error("Could not generate calendar", "err", err)
		http.Error(w, http.StatusText(500), 500)
		return
	}
	for _, outcome := range outcomes {
		if !outcome.Kept {
			h.logger.Info("Skipped course",
				"class", outcome.Course.ClassName,
				"reason", string(outcome.Reason))
		}
	}

	w.Header().Set("Content-Type", "text/calendar")
	w.Header().Set("Content-Disposition", `attachment; filename=courses.ics`)
	w.Write([]byte(doc))
}
