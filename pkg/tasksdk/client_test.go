package tasksdk_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/aussiebroadwan/tasks/pkg/httpx"
	"github.com/aussiebroadwan/tasks/pkg/tasksdk"
	"github.com/stretchr/testify/require"
)

// fakeServer answers just enough of the API to exercise the SDK's request
// building and response decoding.
func fakeServer(t *testing.T) *httptest.Server {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("POST /users", func(w http.ResponseWriter, r *http.Request) {
		var req tasksdk.RegisterRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Email == "taken@example.com" {
			tasksdk.NewValidationError("email already registered", map[string]string{"email": "is taken"}).WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, tasksdk.User{ID: 1, Name: req.Name, Email: req.Email})
	})
	mux.HandleFunc("POST /token", func(w http.ResponseWriter, r *http.Request) {
		var req tasksdk.TokenRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		if req.Password != "secret" {
			tasksdk.ErrInvalidCredentials.WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, tasksdk.TokenResponse{Token: "tok"})
	})
	mux.HandleFunc("GET /user", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "JWT tok" {
			tasksdk.ErrUnauthorized.WriteError(w)
			return
		}
		httpx.WriteJSON(w, http.StatusOK, tasksdk.User{ID: 1, Name: "John", Email: "john@connor.net"})
	})
	mux.HandleFunc("PUT /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		require.Equal(t, map[string]any{"done": true}, req)
		w.WriteHeader(http.StatusNoContent)
	})
	mux.HandleFunc("GET /tasks/{id}", func(w http.ResponseWriter, r *http.Request) {
		tasksdk.ErrTaskNotFound.WriteError(w)
	})
	mux.HandleFunc("GET /tasks", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("<html>upstream down</html>"))
	})

	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestRegisterAndLogin(t *testing.T) {
	ctx := context.Background()
	client := tasksdk.NewClient(fakeServer(t).URL + "/")

	user, err := client.Register(ctx, tasksdk.RegisterRequest{Name: "John", Email: "john@connor.net", Password: "secret"})
	require.NoError(t, err)
	require.Equal(t, int64(1), user.ID)

	session, err := client.Login(ctx, "john@connor.net", "secret")
	require.NoError(t, err)
	require.Equal(t, "tok", session.Token())

	me, err := session.GetUser(ctx)
	require.NoError(t, err)
	require.Equal(t, "john@connor.net", me.Email)
}

func TestErrorsDecodeToAPIError(t *testing.T) {
	ctx := context.Background()
	client := tasksdk.NewClient(fakeServer(t).URL)

	_, err := client.Register(ctx, tasksdk.RegisterRequest{Name: "x", Email: "taken@example.com", Password: "p"})
	require.True(t, tasksdk.IsValidation(err))
	var apiErr *tasksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, httpx.ErrorCodeValidationFailed, apiErr.Code)
	require.Equal(t, "is taken", apiErr.Fields["email"])

	_, err = client.Login(ctx, "john@connor.net", "wrong")
	require.True(t, tasksdk.IsUnauthorized(err))

	_, err = client.NewSession("forged").GetUser(ctx)
	require.True(t, tasksdk.IsUnauthorized(err))

	_, err = client.NewSession("tok").GetTask(ctx, 5)
	require.True(t, tasksdk.IsNotFound(err))
}

func TestNonJSONErrorFallsBack(t *testing.T) {
	client := tasksdk.NewClient(fakeServer(t).URL)

	_, err := client.NewSession("tok").ListTasks(context.Background())
	var apiErr *tasksdk.APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
	require.Equal(t, httpx.ErrorCodeServerError, apiErr.Code)
}

func TestUpdateTaskSendsOnlySetFields(t *testing.T) {
	client := tasksdk.NewClient(fakeServer(t).URL)
	done := true

	err := client.NewSession("tok").UpdateTask(context.Background(), 3, tasksdk.UpdateTaskRequest{Done: &done})
	require.NoError(t, err)
}
