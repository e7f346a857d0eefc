package httpapi

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// requireAuth wraps next so that every request must carry a valid bearer
// token signed with secret, naming adminUser as the token's subject; a
// missing or invalid token is rejected with a delay before the 401 is
// written, the same way the teacher's AuthHandler slows down failed logins
// to deprioritize them.
func requireAuth(secret []byte, adminUser string, unauthDelay time.Duration, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		tok, err := bearerToken(req)
		if err == nil {
			err = validateToken(tok, secret, adminUser)
		}
		if err != nil {
			result := jsonUnauthorized("", err.Error())
			time.Sleep(unauthDelay)
			result.writeResponse(w, req)
			return
		}
		next.ServeHTTP(w, req)
	})
}

func validateToken(tok string, secret []byte, adminUser string) error {
	_, err := jwt.Parse(tok, func(t *jwt.Token) (interface{}, error) {
		subj, err := t.Claims.GetSubject()
		if err != nil {
			return nil, fmt.Errorf("cannot get subject: %w", err)
		}
		if subj != adminUser {
			return nil, fmt.Errorf("subject does not match configured admin user")
		}
		return secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS512.Alg()}), jwt.WithIssuer("scrambled"), jwt.WithLeeway(time.Minute))
	return err
}

func bearerToken(req *http.Request) (string, error) {
	header := strings.TrimSpace(req.Header.Get("Authorization"))
	if header == "" {
		return "", fmt.Errorf("no authorization header present")
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return "", fmt.Errorf("authorization header not in Bearer format")
	}
	return strings.TrimSpace(parts[1]), nil
}

func generateToken(secret []byte, adminUser string) (string, error) {
	claims := &jwt.MapClaims{
		"iss": "scrambled",
		"sub": adminUser,
		"exp": time.Now().Add(time.Hour).Unix(),
	}
	tok := jwt.NewWithClaims(jwt.SigningMethodHS512, claims)
	return tok.SignedString(secret)
}
