package router

import (
	"go-social-api/common"
	"go-social-api/handler"
	"net/http"

	_ "go-social-api/docs"

	httpSwagger "github.com/swaggo/http-swagger/v2"
)

// Handlers groups everything the route table needs.
type Handlers struct {
	Auth          *handler.AuthHandler
	Users         *handler.UserHandler
	Posts         *handler.PostHandler
	Comments      *handler.CommentHandler
	Files         *handler.FileHandler
	Health        *handler.HealthHandler
	Authenticator handler.Authenticator
	Public        http.FileSystem
}

func NewRouter(h Handlers) http.Handler {
	mux := http.NewServeMux()

	public := func(pattern string, fn func(http.ResponseWriter, *http.Request) *common.AppError) {
		mux.Handle(pattern, handler.ErrorHandlingMiddleware(fn))
	}
	protected := func(pattern string, fn handler.AuthenticatedHandler) {
		mux.Handle(pattern, handler.ErrorHandlingMiddleware(handler.RequireAuth(h.Authenticator, fn)))
	}

	// Auth
	public("POST /auth/register", h.Auth.Register)
	public("POST /auth/login", h.Auth.Login)
	public("POST /auth/logout", h.Auth.Logout)
	public("POST /auth/refresh", h.Auth.Refresh)

	// Users
	public("GET /users", h.Users.ListUsers)
	public("GET /users/{id}", h.Users.GetUser)
	protected("PUT /users/{id}", h.Users.UpdateUser)

	// Posts
	public("GET /posts", h.Posts.ListPosts)
	protected("POST /posts", h.Posts.CreatePost)
	public("GET /posts/{id}", h.Posts.GetPost)
	protected("PUT /posts/{id}", h.Posts.UpdatePost)
	protected("DELETE /posts/{id}", h.Posts.DeletePost)
	protected("PUT /posts/like/{id}", h.Posts.ToggleLike)

	// Comments
	public("GET /comments", h.Comments.ListComments)
	public("GET /comments/post/{postId}", h.Comments.ListCommentsByPost)
	protected("POST /comments/{postId}", h.Comments.CreateComment)
	public("GET /comments/{id}", h.Comments.GetComment)
	protected("PUT /comments/{id}", h.Comments.UpdateComment)
	protected("DELETE /comments/{id}", h.Comments.DeleteComment)

	// Files
	public("POST /file", h.Files.UploadFile)
	public("GET /public/", handler.PublicFiles(h.Public))

	public("GET /health", h.Health.HealthCheck)
	mux.Handle("GET /swagger/", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	public("/", handler.NotFound)

	return handler.CORS(handler.RequestLogger(mux))
}
