// @title           Job Match API
// @version         1.0
// @description     Биржа работ: публикация работ, подбор исполнителей, предложения и отзывы.
// @license.name    MIT
// @license.url     https://opensource.org/licenses/MIT
// @host            localhost:4000
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

package main

import "jobmatch_backend/internal/app"

func main() {
	app.Run()
}
