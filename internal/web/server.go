package web

import (
	_ "embed"
	"html/template"
	"net/http"
	"strings"

	"go.uber.org/zap"

	"github.com/ymatsuda/expertdesk/internal/domain"
	"github.com/ymatsuda/expertdesk/internal/service"
)

//go:embed index.html
var indexHTML string

var indexTmpl = template.Must(template.New("index").Parse(indexHTML))

const emptyInputWarning = "入力テキストを入力してください。"

type Server struct {
	svc    service.ConsultService
	logger *zap.Logger
}

func NewServer(svc service.ConsultService, logger *zap.Logger) http.Handler {
	s := &Server{svc: svc, logger: logger}

	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleIndex)

	return chainMiddlewares(mux, s.withLogging)
}

type roleOption struct {
	Code  string
	Label string
}

type pageData struct {
	Roles        []roleOption
	SelectedRole string
	Text         string
	Answer       string
	Warning      string
	Error        string
}

func newPageData() pageData {
	data := pageData{
		SelectedRole: domain.ExpertTravel.String(),
	}
	for _, r := range domain.Roles() {
		data.Roles = append(data.Roles, roleOption{Code: r.String(), Label: r.Label()})
	}
	return data
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}

	switch r.Method {
	case http.MethodGet:
		s.render(w, newPageData())
	case http.MethodPost:
		s.handleConsult(w, r)
	default:
		w.Header().Set("Allow", "GET, POST")
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func (s *Server) handleConsult(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}

	data := newPageData()
	if role := r.PostFormValue("role"); role != "" {
		data.SelectedRole = role
	}
	data.Text = r.PostFormValue("text")

	// Empty input never reaches the service, so no completion call is made.
	if strings.TrimSpace(data.Text) == "" {
		data.Warning = emptyInputWarning
		s.render(w, data)
		return
	}

	req := &domain.ConsultRequest{
		Role: domain.ExpertRole(data.SelectedRole),
		Text: strings.TrimSpace(data.Text),
	}

	resp, err := s.svc.Ask(r.Context(), req)
	if err != nil {
		// Generic catch: the raw message is the whole user-facing report.
		data.Error = err.Error()
		s.render(w, data)
		return
	}

	data.Answer = resp.Text
	s.render(w, data)
}

func (s *Server) render(w http.ResponseWriter, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := indexTmpl.Execute(w, data); err != nil {
		s.logger.Error("render page", zap.Error(err))
	}
}
