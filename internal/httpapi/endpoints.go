package httpapi

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/dekarrin/scramble"
	"github.com/dekarrin/scramble/internal/apierr"
	"github.com/dekarrin/scramble/internal/dao"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type endpointFunc func(req *http.Request) result

// endpoint adapts an endpointFunc into an http.HandlerFunc, recovering from
// any panic inside it as a 500 so a single bad request can't take the whole
// service down.
func endpoint(ep endpointFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, req *http.Request) {
		defer func() {
			if p := recover(); p != nil {
				jsonInternalServerError("panic: %v", p).writeResponse(w, req)
			}
		}()
		ep(req).writeResponse(w, req)
	}
}

// LoginRequest is the body of POST /api/v1/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the body returned on a successful login.
type LoginResponse struct {
	Token string `json:"token"`
}

// RunRequest is the body of POST /api/v1/runs.
type RunRequest struct {
	Source string `json:"source"`
}

// RunResponse is the shape a dao.Run is rendered into for a client.
type RunResponse struct {
	ID        string `json:"id"`
	Source    string `json:"source"`
	Stdout    string `json:"stdout"`
	Stderr    string `json:"stderr"`
	Error     string `json:"error,omitempty"`
	Succeeded bool   `json:"succeeded"`
	Created   string `json:"created"`
}

func toRunResponse(run dao.Run) RunResponse {
	return RunResponse{
		ID:        run.ID.String(),
		Source:    run.Source,
		Stdout:    run.Stdout,
		Stderr:    run.Stderr,
		Error:     run.ErrorMsg,
		Succeeded: run.Succeeded,
		Created:   run.Created.Format(time.RFC3339),
	}
}

func (s *Server) epLogin(req *http.Request) result {
	var body LoginRequest
	if err := parseJSON(req, &body); err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}
	if body.Username == "" || body.Password == "" {
		return jsonBadRequest("username and password are both required")
	}
	if body.Username != s.adminUser {
		return jsonUnauthorized("", "unknown user '%s'", body.Username)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(s.adminPasswordHash), []byte(body.Password)); err != nil {
		return jsonUnauthorized("", "bad password for '%s'", body.Username)
	}

	tok, err := generateToken(s.jwtSecret, s.adminUser)
	if err != nil {
		return jsonInternalServerError("could not generate token: %s", err.Error())
	}
	return jsonCreated(LoginResponse{Token: tok}, "user '%s' logged in", s.adminUser)
}

func (s *Server) epCreateRun(req *http.Request) result {
	var body RunRequest
	if err := parseJSON(req, &body); err != nil {
		return jsonBadRequest(err.Error(), err.Error())
	}
	if body.Source == "" {
		return jsonBadRequest("source: property is empty or missing from request")
	}

	var stdout, stderr bytes.Buffer
	eng := scramble.New(bytes.NewReader(nil), &stdout, &stderr, false)
	runErr := eng.RunSource(body.Source)

	run := dao.Run{
		Source:    body.Source,
		Stdout:    stdout.String(),
		Stderr:    stderr.String(),
		Succeeded: runErr == nil,
	}
	if runErr != nil {
		run.ErrorMsg = scramble.Render(runErr, body.Source)
	}
	if tokens, err := scramble.TokenCache(body.Source); err == nil {
		run.Tokens = tokens
	}

	created, err := s.runs.Create(req.Context(), run)
	if err != nil {
		return jsonInternalServerError("could not persist run: %s", err.Error())
	}

	if runErr != nil {
		return jsonCreated(toRunResponse(created), "run %s finished with error: %s", created.ID, apierr.ClientMessage(apierr.FromRunError(runErr)))
	}
	return jsonCreated(toRunResponse(created), "run %s finished successfully", created.ID)
}

func (s *Server) epGetRun(req *http.Request) result {
	id, err := uuid.Parse(chi.URLParam(req, "id"))
	if err != nil {
		return jsonBadRequest("id: not a valid UUID")
	}

	run, err := s.runs.GetByID(req.Context(), id)
	if err != nil {
		if errors.Is(err, dao.ErrNotFound) {
			return jsonNotFound("run %s not found", id)
		}
		return jsonInternalServerError(err.Error())
	}
	return jsonOK(toRunResponse(run), "got run %s", id)
}

func (s *Server) epGetAllRuns(req *http.Request) result {
	runs, err := s.runs.GetAll(req.Context())
	if err != nil {
		return jsonInternalServerError(err.Error())
	}

	resp := make([]RunResponse, len(runs))
	for i := range runs {
		resp[i] = toRunResponse(runs[i])
	}
	return jsonOK(resp, "got %d run(s)", len(resp))
}

func parseJSON(req *http.Request, v interface{}) error {
	data, err := io.ReadAll(req.Body)
	if err != nil {
		return err
	}
	defer req.Body.Close()
	return json.Unmarshal(data, v)
}
