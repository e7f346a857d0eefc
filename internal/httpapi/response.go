package httpapi

import (
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"strings"
)

// ErrorResponse is the body of every non-2xx JSON response.
type ErrorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

// result is the internal return value of every endpoint function: enough to
// write either a JSON success body or a JSON error body, plus a message that
// only ever reaches the server log, never the client.
type result struct {
	isErr       bool
	status      int
	internalMsg string
	resp        interface{}
	hdrs        [][2]string
}

func jsonOK(respObj interface{}, internalMsg ...interface{}) result {
	return jsonResult(http.StatusOK, false, respObj, fmtMsg("OK", internalMsg))
}

func jsonCreated(respObj interface{}, internalMsg ...interface{}) result {
	return jsonResult(http.StatusCreated, false, respObj, fmtMsg("created", internalMsg))
}

func jsonBadRequest(userMsg string, internalMsg ...interface{}) result {
	return jsonErr(http.StatusBadRequest, userMsg, fmtMsg("bad request", internalMsg))
}

func jsonNotFound(internalMsg ...interface{}) result {
	return jsonErr(http.StatusNotFound, "the requested resource was not found", fmtMsg("not found", internalMsg))
}

func jsonUnauthorized(userMsg string, internalMsg ...interface{}) result {
	if userMsg == "" {
		userMsg = "you are not authorized to do that"
	}
	return jsonErr(http.StatusUnauthorized, userMsg, fmtMsg("unauthorized", internalMsg)).
		withHeader("WWW-Authenticate", `Bearer realm="scramble"`)
}

func jsonInternalServerError(internalMsg ...interface{}) result {
	return jsonErr(http.StatusInternalServerError, "an internal error occurred", fmtMsg("internal server error", internalMsg))
}

func jsonResult(status int, isErr bool, respObj interface{}, internalMsg string) result {
	return result{status: status, isErr: isErr, internalMsg: internalMsg, resp: respObj}
}

func jsonErr(status int, userMsg, internalMsg string) result {
	return result{
		status:      status,
		isErr:       true,
		internalMsg: internalMsg,
		resp:        ErrorResponse{Error: userMsg, Status: status},
	}
}

func fmtMsg(def string, parts []interface{}) string {
	if len(parts) == 0 {
		return def
	}
	format, ok := parts[0].(string)
	if !ok {
		return def
	}
	return fmt.Sprintf(format, parts[1:]...)
}

func (r result) withHeader(name, val string) result {
	r.hdrs = append(append([][2]string{}, r.hdrs...), [2]string{name, val})
	return r
}

func (r result) writeResponse(w http.ResponseWriter, req *http.Request) {
	if r.status == 0 {
		logResponse("ERROR", req, http.StatusInternalServerError, "endpoint result was never populated")
		http.Error(w, "an internal error occurred", http.StatusInternalServerError)
		return
	}

	var body []byte
	if r.status != http.StatusNoContent {
		var err error
		body, err = json.Marshal(r.resp)
		if err != nil {
			jsonInternalServerError("could not marshal response: %s", err.Error()).writeResponse(w, req)
			return
		}
	}

	if r.isErr {
		logResponse("ERROR", req, r.status, r.internalMsg)
	} else {
		logResponse("INFO", req, r.status, r.internalMsg)
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	for _, h := range r.hdrs {
		w.Header().Set(h[0], h[1])
	}
	w.WriteHeader(r.status)
	if r.status != http.StatusNoContent {
		w.Write(body)
	}
}

func logResponse(level string, req *http.Request, status int, msg string) {
	for len(level) < 5 {
		level += " "
	}
	remoteIP := strings.SplitN(req.RemoteAddr, ":", 2)[0]
	log.Printf("%s %s %s %s: HTTP-%d %s", level, remoteIP, req.Method, req.URL.Path, status, msg)
}
