// cmd/main.go
package main

import (
	"go-social-api/app"
)

// @title           Go-Social API
// @version         1.0
// @description     REST backend for a small social application: users, posts, comments, likes and file uploads.

// @contact.name   API Support
// @contact.email  support@example.com

// @license.name   MIT
// @license.url    https://opensource.org/licenses/MIT

// @host      localhost:3000
// @BasePath  /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	app.Run()
}
