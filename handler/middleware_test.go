package handler

import (
	"encoding/json"
	"errors"
	"fmt"
	"go-social-api/common"
	"go-social-api/model"
	"go-social-api/service"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubAuth struct {
	identity model.Identity
	err      error
	header   string
}

func (s *stubAuth) Authenticate(header string) (model.Identity, error) {
	s.header = header
	return s.identity, s.err
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) common.Envelope {
	var env common.Envelope
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	return env
}

func TestRequireAuth(t *testing.T) {
	t.Run("passes the caller", func(t *testing.T) {
		userID := primitive.NewObjectID()
		auth := &stubAuth{identity: model.Identity{UserID: userID}}
		var got model.Identity
		h := ErrorHandlingMiddleware(RequireAuth(auth, func(w http.ResponseWriter, r *http.Request, caller model.Identity) *common.AppError {
			got = caller
			common.SuccessMessage(w, http.StatusOK, "ok")
			return nil
		}))

		req, _ := http.NewRequest("GET", "/", nil)
		req.Header.Set("Authorization", "Bearer abc")
		rr := httptest.NewRecorder()
		h.ServeHTTP(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, userID, got.UserID)
		assert.Equal(t, "Bearer abc", auth.header)
	})

	cases := []struct {
		err     error
		code    int
		message string
	}{
		{service.ErrMissingToken, http.StatusUnauthorized, "Access Denied"},
		{fmt.Errorf("%w: expired", service.ErrInvalidToken), http.StatusForbidden, "Unauthorized"},
		{service.ErrMissingSecret, http.StatusInternalServerError, "Missing authentication configuration"},
	}
	for _, tc := range cases {
		t.Run(tc.message, func(t *testing.T) {
			called := false
			h := ErrorHandlingMiddleware(RequireAuth(&stubAuth{err: tc.err}, func(http.ResponseWriter, *http.Request, model.Identity) *common.AppError {
				called = true
				return nil
			}))

			req, _ := http.NewRequest("GET", "/", nil)
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, req)

			assert.False(t, called)
			assert.Equal(t, tc.code, rr.Code)
			env := decodeEnvelope(t, rr)
			assert.Equal(t, common.StatusError, env.Status)
			assert.Equal(t, tc.message, env.Message)
		})
	}
}

func TestToAppError(t *testing.T) {
	appErr := toAppError(common.NewValidationError("Invalid email"), "fallback")
	assert.Equal(t, http.StatusBadRequest, appErr.Code)
	assert.Equal(t, "Invalid email", appErr.Message)

	appErr = toAppError(service.ErrPostNotFound, "fallback")
	assert.Equal(t, http.StatusNotFound, appErr.Code)
	assert.Nil(t, appErr.Err)

	appErr = toAppError(service.ErrTooManyLoginAttempts, "fallback")
	assert.Equal(t, http.StatusTooManyRequests, appErr.Code)

	cause := errors.New("connection reset")
	appErr = toAppError(cause, "Could not create post")
	assert.Equal(t, http.StatusInternalServerError, appErr.Code)
	assert.Equal(t, "Could not create post", appErr.Message)
	assert.Equal(t, cause, appErr.Err)
}

func TestCORS(t *testing.T) {
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})
	h := CORS(next)

	req, _ := http.NewRequest(http.MethodOptions, "/posts", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))

	req, _ = http.NewRequest(http.MethodGet, "/posts", nil)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	assert.Equal(t, http.StatusTeapot, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestRequestLogger_KeepsStatus(t *testing.T) {
	h := RequestLogger(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	req, _ := http.NewRequest(http.MethodPost, "/posts", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	assert.Equal(t, http.StatusCreated, rr.Code)
}
