// file: model/request.go

package model

// RegisterRequest defines the payload for creating a new user.
// The msg tag is the message returned when the field fails validation.
type RegisterRequest struct {
	Username   string `json:"username" validate:"required,alphanum,min=8" msg:"Username must be at least 8 characters long and include only letters and numbers"`
	Password   string `json:"password" validate:"required,password" msg:"Password must be at least 8 characters long and include at least 1 capital letter, 1 small letter, 1 number and 1 special character"`
	Email      string `json:"email" validate:"required,email" msg:"Invalid email"`
	FirstName  string `json:"fname" validate:"required"`
	LastName   string `json:"lname" validate:"required"`
	ProfileURL string `json:"profileUrl" validate:"omitempty,url" msg:"Invalid profile URL"`
}

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// UpdateUserRequest defines the payload for a profile update.
type UpdateUserRequest struct {
	Username   string `json:"username" validate:"required,alphanum,min=8" msg:"Username must be at least 8 characters long and include only letters and numbers"`
	Email      string `json:"email" validate:"required,email" msg:"Invalid email"`
	FirstName  string `json:"fname" validate:"required"`
	LastName   string `json:"lname" validate:"required"`
	ProfileURL string `json:"profileUrl" validate:"omitempty,url" msg:"Invalid profile URL"`
}

// PostRequest is used for both creating and editing a post.
type PostRequest struct {
	Title   string `json:"title" validate:"notblank" msg:"Please provide a post's title"`
	Content string `json:"content" validate:"notblank" msg:"Please provide a post's content"`
	PostURL string `json:"postUrl"`
}

// CommentRequest is used for both creating and editing a comment.
type CommentRequest struct {
	Content string `json:"content" validate:"notblank" msg:"Please provide a comment's content"`
}

// RequiredMessage is reported when any required field is missing.
func (RegisterRequest) RequiredMessage() string { return "All fields are required" }

func (LoginRequest) RequiredMessage() string { return "Username and password are required" }

func (UpdateUserRequest) RequiredMessage() string { return "All fields are required" }
