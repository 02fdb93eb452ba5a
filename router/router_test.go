// file: router/router_test.go

package router_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"go-social-api/app"
	"go-social-api/config"
	"go-social-api/logger"
	"go-social-api/model"
	"go-social-api/repository/repositorytest"
	"go-social-api/service"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path"
	"strings"
	"testing"
	"time"

	"github.com/sourcegraph/conc"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"golang.org/x/crypto/bcrypt"
)

const password = "Secret#123"

func TestMain(m *testing.M) {
	logger.Init()
	os.Exit(m.Run())
}

// --- Test Helper Functions ---

type testApp struct {
	Router   http.Handler
	Users    *repositorytest.UserStore
	Posts    *repositorytest.PostStore
	Comments *repositorytest.CommentStore
	Files    afero.Fs
}

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Server.BaseURL = "http://localhost:3000"
	cfg.JWT = config.JWTConfig{
		SecretKey:       "router-test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 24 * time.Hour,
	}
	cfg.Auth.BcryptCost = bcrypt.MinCost
	cfg.Upload.Dir = "public"
	cfg.Upload.MaxSize = 1024
	return cfg
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()
	a := &testApp{
		Users:    repositorytest.NewUserStore(),
		Posts:    repositorytest.NewPostStore(),
		Comments: repositorytest.NewCommentStore(),
		Files:    afero.NewMemMapFs(),
	}
	a.Router = app.NewHandler(testConfig(), app.Dependencies{
		Users:    a.Users,
		Posts:    a.Posts,
		Comments: a.Comments,
		Limiter:  service.NoopLoginLimiter{},
		Files:    a.Files,
	})
	return a
}

type envelope struct {
	Status  string          `json:"status"`
	Data    json.RawMessage `json:"data"`
	Message string          `json:"message"`
}

func (a *testApp) do(t *testing.T, method, target, body, token string) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.Router.ServeHTTP(rr, req)

	var env envelope
	if strings.HasPrefix(rr.Header().Get("Content-Type"), "application/json") {
		require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	}
	return rr, env
}

func registerBody(username, email string) string {
	return fmt.Sprintf(`{"username":%q,"password":%q,"email":%q,"fname":"Test","lname":"User"}`, username, password, email)
}

func (a *testApp) register(t *testing.T, username string) primitive.ObjectID {
	t.Helper()
	rr, env := a.do(t, http.MethodPost, "/auth/register", registerBody(username, username+"@example.com"), "")
	require.Equal(t, http.StatusCreated, rr.Code, env.Message)
	var user model.User
	require.NoError(t, json.Unmarshal(env.Data, &user))
	return user.ID
}

func (a *testApp) login(t *testing.T, username string) service.LoginResult {
	t.Helper()
	body := fmt.Sprintf(`{"username":%q,"password":%q}`, username, password)
	rr, env := a.do(t, http.MethodPost, "/auth/login", body, "")
	require.Equal(t, http.StatusOK, rr.Code, env.Message)
	var result service.LoginResult
	require.NoError(t, json.Unmarshal(env.Data, &result))
	require.NotEmpty(t, result.AccessToken)
	require.NotEmpty(t, result.RefreshToken)
	return result
}

func (a *testApp) createPost(t *testing.T, token, title string) model.Post {
	t.Helper()
	body := fmt.Sprintf(`{"title":%q,"content":"hello"}`, title)
	rr, env := a.do(t, http.MethodPost, "/posts", body, token)
	require.Equal(t, http.StatusCreated, rr.Code, env.Message)
	var post model.Post
	require.NoError(t, json.Unmarshal(env.Data, &post))
	return post
}

// --- Test Suites ---

func TestRegister(t *testing.T) {
	a := newTestApp(t)

	t.Run("success", func(t *testing.T) {
		rr, env := a.do(t, http.MethodPost, "/auth/register", registerBody("registered1", "registered1@example.com"), "")
		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Success", env.Status)
		assert.NotContains(t, string(env.Data), "password")
		assert.NotContains(t, string(env.Data), "refreshTokens")
	})

	fields := []string{"username", "password", "email", "fname", "lname"}
	for _, field := range fields {
		t.Run("missing "+field, func(t *testing.T) {
			payload := map[string]string{
				"username": "missingfield1",
				"password": password,
				"email":    "missing@example.com",
				"fname":    "Test",
				"lname":    "User",
			}
			delete(payload, field)
			body, _ := json.Marshal(payload)

			rr, env := a.do(t, http.MethodPost, "/auth/register", string(body), "")
			assert.Equal(t, http.StatusBadRequest, rr.Code)
			assert.Equal(t, "All fields are required", env.Message)
		})
	}

	t.Run("duplicate username", func(t *testing.T) {
		rr, env := a.do(t, http.MethodPost, "/auth/register", registerBody("registered1", "other@example.com"), "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Username already exists", env.Message)
	})

	t.Run("duplicate email", func(t *testing.T) {
		rr, env := a.do(t, http.MethodPost, "/auth/register", registerBody("registered2", "registered1@example.com"), "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Email already exists", env.Message)
	})

	t.Run("weak password", func(t *testing.T) {
		body := `{"username":"weakpass1","password":"password","email":"weak@example.com","fname":"a","lname":"b"}`
		rr, env := a.do(t, http.MethodPost, "/auth/register", body, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Contains(t, env.Message, "Password must be")
	})

	t.Run("malformed json", func(t *testing.T) {
		rr, _ := a.do(t, http.MethodPost, "/auth/register", `{"username":`, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})
}

func TestLogin(t *testing.T) {
	a := newTestApp(t)
	a.register(t, "loginuser1")

	t.Run("tokens differ", func(t *testing.T) {
		result := a.login(t, "loginuser1")
		assert.NotEqual(t, result.AccessToken, result.RefreshToken)
		assert.Equal(t, "loginuser1", result.Username)
	})

	t.Run("wrong password and unknown user look the same", func(t *testing.T) {
		rr1, env1 := a.do(t, http.MethodPost, "/auth/login", `{"username":"loginuser1","password":"Wrong#1234"}`, "")
		rr2, env2 := a.do(t, http.MethodPost, "/auth/login", `{"username":"nobody123","password":"Wrong#1234"}`, "")

		assert.Equal(t, http.StatusBadRequest, rr1.Code)
		assert.Equal(t, rr1.Code, rr2.Code)
		assert.Equal(t, "Username or password is incorrect", env1.Message)
		assert.Equal(t, env1.Message, env2.Message)
	})

	t.Run("missing fields", func(t *testing.T) {
		rr, env := a.do(t, http.MethodPost, "/auth/login", `{"username":"loginuser1"}`, "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Username and password are required", env.Message)
	})

	t.Run("every login adds a session", func(t *testing.T) {
		second := newTestApp(t)
		id := second.register(t, "sessions1")
		second.login(t, "sessions1")
		second.login(t, "sessions1")
		assert.Len(t, second.Users.Tokens(id), 2)
	})
}

func TestRefreshAndLogout(t *testing.T) {
	t.Run("refresh rotates the token", func(t *testing.T) {
		a := newTestApp(t)
		id := a.register(t, "refresher1")
		login := a.login(t, "refresher1")

		rr, env := a.do(t, http.MethodPost, "/auth/refresh", "", login.RefreshToken)
		require.Equal(t, http.StatusOK, rr.Code, env.Message)
		var result service.RefreshResult
		require.NoError(t, json.Unmarshal(env.Data, &result))

		assert.NotEqual(t, login.RefreshToken, result.RefreshToken)
		assert.Equal(t, []string{result.RefreshToken}, a.Users.Tokens(id))
	})

	t.Run("second refresh with the same token revokes everything", func(t *testing.T) {
		a := newTestApp(t)
		id := a.register(t, "refresher2")
		login := a.login(t, "refresher2")
		other := a.login(t, "refresher2")

		rr, _ := a.do(t, http.MethodPost, "/auth/refresh", "", login.RefreshToken)
		require.Equal(t, http.StatusOK, rr.Code)

		rr, env := a.do(t, http.MethodPost, "/auth/refresh", "", login.RefreshToken)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "Unauthorized", env.Message)
		assert.Empty(t, a.Users.Tokens(id))

		rr, _ = a.do(t, http.MethodPost, "/auth/refresh", "", other.RefreshToken)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("logout then refresh fails", func(t *testing.T) {
		a := newTestApp(t)
		a.register(t, "loggedout1")
		login := a.login(t, "loggedout1")

		rr, env := a.do(t, http.MethodPost, "/auth/logout", "", login.RefreshToken)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Logged out successfully", env.Message)

		rr, _ = a.do(t, http.MethodPost, "/auth/refresh", "", login.RefreshToken)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("logout keeps other sessions", func(t *testing.T) {
		a := newTestApp(t)
		id := a.register(t, "twodevices")
		first := a.login(t, "twodevices")
		second := a.login(t, "twodevices")

		rr, _ := a.do(t, http.MethodPost, "/auth/logout", "", first.RefreshToken)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, []string{second.RefreshToken}, a.Users.Tokens(id))
	})

	t.Run("access token is not a refresh token", func(t *testing.T) {
		a := newTestApp(t)
		id := a.register(t, "confused1")
		login := a.login(t, "confused1")

		rr, _ := a.do(t, http.MethodPost, "/auth/refresh", "", login.AccessToken)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Empty(t, a.Users.Tokens(id))
	})

	t.Run("missing token", func(t *testing.T) {
		a := newTestApp(t)
		rr, env := a.do(t, http.MethodPost, "/auth/refresh", "", "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Access Denied", env.Message)
	})

	t.Run("garbage token", func(t *testing.T) {
		a := newTestApp(t)
		rr, _ := a.do(t, http.MethodPost, "/auth/logout", "", "not-a-jwt")
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})
}

func TestRefresh_ConcurrentUseWinsOnce(t *testing.T) {
	a := newTestApp(t)
	a.register(t, "racinguser")
	login := a.login(t, "racinguser")

	const attempts = 8
	codes := make(chan int, attempts)
	var wg conc.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Go(func() {
			req := httptest.NewRequest(http.MethodPost, "/auth/refresh", nil)
			req.Header.Set("Authorization", "Bearer "+login.RefreshToken)
			rr := httptest.NewRecorder()
			a.Router.ServeHTTP(rr, req)
			codes <- rr.Code
		})
	}
	wg.Wait()
	close(codes)

	ok := 0
	for code := range codes {
		if code == http.StatusOK {
			ok++
			continue
		}
		assert.Equal(t, http.StatusForbidden, code)
	}
	assert.Equal(t, 1, ok)
}

func TestPosts(t *testing.T) {
	a := newTestApp(t)
	aliceID := a.register(t, "alicealice")
	alice := a.login(t, "alicealice").AccessToken
	bob := func() string {
		a.register(t, "bobbobbob")
		return a.login(t, "bobbobbob").AccessToken
	}()

	t.Run("create needs a token", func(t *testing.T) {
		rr, env := a.do(t, http.MethodPost, "/posts", `{"title":"t","content":"c"}`, "")
		assert.Equal(t, http.StatusUnauthorized, rr.Code)
		assert.Equal(t, "Access Denied", env.Message)

		rr, env = a.do(t, http.MethodPost, "/posts", `{"title":"t","content":"c"}`, "forged")
		assert.Equal(t, http.StatusForbidden, rr.Code)
		assert.Equal(t, "Unauthorized", env.Message)
	})

	t.Run("sender comes from the token", func(t *testing.T) {
		body := fmt.Sprintf(`{"title":"mine","content":"c","sender":%q}`, primitive.NewObjectID().Hex())
		rr, env := a.do(t, http.MethodPost, "/posts", body, alice)
		require.Equal(t, http.StatusCreated, rr.Code)
		var post model.Post
		require.NoError(t, json.Unmarshal(env.Data, &post))
		assert.Equal(t, aliceID, post.Sender)
		assert.Empty(t, post.Likes)
	})

	t.Run("blank title", func(t *testing.T) {
		rr, env := a.do(t, http.MethodPost, "/posts", `{"title":"   ","content":"c"}`, alice)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Please provide a post's title", env.Message)
	})

	t.Run("only the sender can update", func(t *testing.T) {
		post := a.createPost(t, alice, "editable")

		rr, _ := a.do(t, http.MethodPut, "/posts/"+post.ID.Hex(), `{"title":"hijack","content":"x"}`, bob)
		assert.Equal(t, http.StatusForbidden, rr.Code)

		rr, env := a.do(t, http.MethodPut, "/posts/"+post.ID.Hex(), `{"title":"edited","content":"x"}`, alice)
		require.Equal(t, http.StatusOK, rr.Code)
		var updated model.Post
		require.NoError(t, json.Unmarshal(env.Data, &updated))
		assert.Equal(t, "edited", updated.Title)
	})

	t.Run("get", func(t *testing.T) {
		post := a.createPost(t, alice, "readable")

		rr, _ := a.do(t, http.MethodGet, "/posts/"+post.ID.Hex(), "", "")
		assert.Equal(t, http.StatusOK, rr.Code)

		rr, env := a.do(t, http.MethodGet, "/posts/"+primitive.NewObjectID().Hex(), "", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Post not found", env.Message)

		rr, _ = a.do(t, http.MethodGet, "/posts/not-an-id", "", "")
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("like toggles", func(t *testing.T) {
		post := a.createPost(t, alice, "likeable")
		target := "/posts/like/" + post.ID.Hex()

		_, env := a.do(t, http.MethodPut, target, "", bob)
		var liked model.Post
		require.NoError(t, json.Unmarshal(env.Data, &liked))
		assert.Len(t, liked.Likes, 1)

		_, env = a.do(t, http.MethodPut, target, "", bob)
		var unliked model.Post
		require.NoError(t, json.Unmarshal(env.Data, &unliked))
		assert.Empty(t, unliked.Likes)
	})

	t.Run("delete removes comments", func(t *testing.T) {
		post := a.createPost(t, alice, "doomed")
		for i := 0; i < 3; i++ {
			rr, _ := a.do(t, http.MethodPost, "/comments/"+post.ID.Hex(), `{"content":"nice"}`, bob)
			require.Equal(t, http.StatusCreated, rr.Code)
		}

		rr, _ := a.do(t, http.MethodDelete, "/posts/"+post.ID.Hex(), "", bob)
		assert.Equal(t, http.StatusForbidden, rr.Code)

		rr, env := a.do(t, http.MethodDelete, "/posts/"+post.ID.Hex(), "", alice)
		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Post deleted", env.Message)

		rr, env = a.do(t, http.MethodGet, "/comments/post/"+post.ID.Hex(), "", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.JSONEq(t, `[]`, string(env.Data))
		assert.Zero(t, a.Comments.Len())
	})
}

func TestPosts_ListPaging(t *testing.T) {
	a := newTestApp(t)
	aliceID := a.register(t, "pageralice")
	alice := a.login(t, "pageralice").AccessToken
	a.register(t, "pagerbob1")
	bob := a.login(t, "pagerbob1").AccessToken

	for i := 0; i < 4; i++ {
		a.createPost(t, alice, fmt.Sprintf("Alice Post %d", i))
	}
	a.createPost(t, bob, "something else")

	rr, env := a.do(t, http.MethodGet, "/posts", "", "")
	require.Equal(t, http.StatusOK, rr.Code)
	var page model.Page[model.Post]
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, model.DefaultLimit)
	assert.Equal(t, int64(5), page.Total)
	assert.Equal(t, int64(2), page.TotalPages)
	assert.Equal(t, "something else", page.Items[0].Title)

	_, env = a.do(t, http.MethodGet, "/posts?sender="+aliceID.Hex()+"&page=2&limit=3", "", "")
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 1)
	assert.Equal(t, int64(4), page.Total)

	_, env = a.do(t, http.MethodGet, "/posts?title=alice+post&limit=10", "", "")
	require.NoError(t, json.Unmarshal(env.Data, &page))
	assert.Len(t, page.Items, 4)

	rr, _ = a.do(t, http.MethodGet, "/posts?sender=bogus", "", "")
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	t.Run("page far past the end is empty", func(t *testing.T) {
		rr, env := a.do(t, http.MethodGet, "/posts?page=9223372036854775807&limit=2", "", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var page model.Page[model.Post]
		require.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Empty(t, page.Items)
		assert.Equal(t, int64(5), page.Total)
		assert.Equal(t, int64(3), page.TotalPages)
	})

	t.Run("limit is capped", func(t *testing.T) {
		rr, env := a.do(t, http.MethodGet, "/posts?limit=9223372036854775807", "", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var page model.Page[model.Post]
		require.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Equal(t, int64(model.MaxLimit), page.Limit)
		assert.Len(t, page.Items, 5)
		assert.Equal(t, int64(1), page.TotalPages)
	})
}

func TestComments(t *testing.T) {
	a := newTestApp(t)
	a.register(t, "commenter1")
	alice := a.login(t, "commenter1").AccessToken
	a.register(t, "commenter2")
	bob := a.login(t, "commenter2").AccessToken
	post := a.createPost(t, alice, "discussed")

	rr, env := a.do(t, http.MethodPost, "/comments/"+post.ID.Hex(), `{"content":"first"}`, alice)
	require.Equal(t, http.StatusCreated, rr.Code)
	var comment model.Comment
	require.NoError(t, json.Unmarshal(env.Data, &comment))
	assert.Equal(t, post.ID, comment.PostID)

	t.Run("post must exist", func(t *testing.T) {
		rr, env := a.do(t, http.MethodPost, "/comments/"+primitive.NewObjectID().Hex(), `{"content":"x"}`, alice)
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Post not found", env.Message)
	})

	t.Run("blank content", func(t *testing.T) {
		rr, _ := a.do(t, http.MethodPost, "/comments/"+post.ID.Hex(), `{"content":""}`, alice)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("list by post query", func(t *testing.T) {
		rr, env := a.do(t, http.MethodGet, "/comments?postId="+post.ID.Hex(), "", "")
		require.Equal(t, http.StatusOK, rr.Code)
		var page model.Page[model.Comment]
		require.NoError(t, json.Unmarshal(env.Data, &page))
		assert.Equal(t, int64(1), page.Total)
	})

	t.Run("only the sender can edit or delete", func(t *testing.T) {
		target := "/comments/" + comment.ID.Hex()

		rr, _ := a.do(t, http.MethodPut, target, `{"content":"hijack"}`, bob)
		assert.Equal(t, http.StatusForbidden, rr.Code)
		rr, _ = a.do(t, http.MethodDelete, target, "", bob)
		assert.Equal(t, http.StatusForbidden, rr.Code)

		rr, env := a.do(t, http.MethodPut, target, `{"content":"edited"}`, alice)
		require.Equal(t, http.StatusOK, rr.Code)
		var edited model.Comment
		require.NoError(t, json.Unmarshal(env.Data, &edited))
		assert.Equal(t, "edited", edited.Content)

		rr, env = a.do(t, http.MethodDelete, target, "", alice)
		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "Comment deleted", env.Message)

		rr, env = a.do(t, http.MethodGet, target, "", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "Comment not found", env.Message)
	})
}

func TestUsers(t *testing.T) {
	a := newTestApp(t)
	aliceID := a.register(t, "profilealice")
	alice := a.login(t, "profilealice").AccessToken
	bobID := a.register(t, "profilebob1")

	t.Run("list and filter", func(t *testing.T) {
		rr, env := a.do(t, http.MethodGet, "/users", "", "")
		require.Equal(t, http.StatusOK, rr.Code)
		assert.NotContains(t, string(env.Data), "refreshTokens")
		var users []model.User
		require.NoError(t, json.Unmarshal(env.Data, &users))
		assert.Len(t, users, 2)

		_, env = a.do(t, http.MethodGet, "/users?username=profilebob1", "", "")
		require.NoError(t, json.Unmarshal(env.Data, &users))
		require.Len(t, users, 1)
		assert.Equal(t, bobID, users[0].ID)
	})

	t.Run("get unknown", func(t *testing.T) {
		rr, env := a.do(t, http.MethodGet, "/users/"+primitive.NewObjectID().Hex(), "", "")
		assert.Equal(t, http.StatusNotFound, rr.Code)
		assert.Equal(t, "User not found", env.Message)
	})

	update := `{"username":"renamedalice","email":"renamed@example.com","fname":"A","lname":"B"}`

	t.Run("cannot update someone else", func(t *testing.T) {
		rr, _ := a.do(t, http.MethodPut, "/users/"+bobID.Hex(), update, alice)
		assert.Equal(t, http.StatusForbidden, rr.Code)
	})

	t.Run("email taken by another user", func(t *testing.T) {
		body := `{"username":"profilealice","email":"profilebob1@example.com","fname":"A","lname":"B"}`
		rr, env := a.do(t, http.MethodPut, "/users/"+aliceID.Hex(), body, alice)
		assert.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Equal(t, "Email already exists", env.Message)
	})

	t.Run("update self", func(t *testing.T) {
		rr, env := a.do(t, http.MethodPut, "/users/"+aliceID.Hex(), update, alice)
		require.Equal(t, http.StatusOK, rr.Code, env.Message)
		var user model.User
		require.NoError(t, json.Unmarshal(env.Data, &user))
		assert.Equal(t, "renamedalice", user.Username)
	})
}

func TestUploadAndServe(t *testing.T) {
	a := newTestApp(t)

	upload := func(t *testing.T, name string, content []byte) *httptest.ResponseRecorder {
		var buf bytes.Buffer
		mw := multipart.NewWriter(&buf)
		if name != "" {
			part, err := mw.CreateFormFile("file", name)
			require.NoError(t, err)
			_, err = part.Write(content)
			require.NoError(t, err)
		}
		require.NoError(t, mw.Close())

		req := httptest.NewRequest(http.MethodPost, "/file", &buf)
		req.Header.Set("Content-Type", mw.FormDataContentType())
		rr := httptest.NewRecorder()
		a.Router.ServeHTTP(rr, req)
		return rr
	}

	rr := upload(t, "note.txt", []byte("hello world"))
	require.Equal(t, http.StatusOK, rr.Code)
	var env struct {
		Data map[string]string `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	url := env.Data["url"]
	assert.True(t, strings.HasPrefix(url, "http://localhost:3000/public/"), url)

	req := httptest.NewRequest(http.MethodGet, "/public/"+path.Base(url), nil)
	served := httptest.NewRecorder()
	a.Router.ServeHTTP(served, req)
	assert.Equal(t, http.StatusOK, served.Code)
	assert.Equal(t, "hello world", served.Body.String())
	assert.Equal(t, "nosniff", served.Header().Get("X-Content-Type-Options"))

	listing := httptest.NewRecorder()
	a.Router.ServeHTTP(listing, httptest.NewRequest(http.MethodGet, "/public/", nil))
	assert.Equal(t, http.StatusNotFound, listing.Code)
	assert.NotContains(t, listing.Body.String(), path.Base(url))

	rr = upload(t, "page.html", []byte("<html><script>alert(1)</script></html>"))
	require.Equal(t, http.StatusOK, rr.Code)
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &env))
	markup := httptest.NewRecorder()
	a.Router.ServeHTTP(markup, httptest.NewRequest(http.MethodGet, "/public/"+path.Base(env.Data["url"]), nil))
	assert.Equal(t, http.StatusOK, markup.Code)
	assert.Equal(t, "sandbox", markup.Header().Get("Content-Security-Policy"))
	assert.True(t, strings.HasPrefix(markup.Header().Get("Content-Disposition"), "attachment"))

	rr = upload(t, "", nil)
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	rr = upload(t, "big.bin", bytes.Repeat([]byte("a"), 2048))
	assert.Equal(t, http.StatusBadRequest, rr.Code)
	assert.Contains(t, rr.Body.String(), "File is too large")
}

func TestHealthAndCORS(t *testing.T) {
	a := newTestApp(t)

	rr, env := a.do(t, http.MethodGet, "/health", "", "")
	assert.Equal(t, http.StatusOK, rr.Code)
	assert.Equal(t, "Success", env.Status)
	assert.Equal(t, "API is healthy and running", env.Message)

	rr, _ = a.do(t, http.MethodOptions, "/posts", "", "")
	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.Equal(t, "*", rr.Header().Get("Access-Control-Allow-Origin"))
}

func TestUnknownRoutesUseEnvelope(t *testing.T) {
	a := newTestApp(t)

	for _, tc := range []struct{ method, target string }{
		{http.MethodGet, "/nowhere"},
		{http.MethodGet, "/auth/login"},
		{http.MethodPatch, "/posts"},
	} {
		rr, env := a.do(t, tc.method, tc.target, "", "")
		assert.Equal(t, http.StatusNotFound, rr.Code, tc.target)
		assert.Equal(t, "Error", env.Status, tc.target)
		assert.Equal(t, "Route not found", env.Message, tc.target)
	}
}
