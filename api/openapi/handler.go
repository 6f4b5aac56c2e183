// Package openapi serves Swagger UI for the OpenAPI document generated by
// huma.
package openapi

import (
	"html/template"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

var swaggerUI = template.Must(template.New("swagger").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>mercado-search API</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    SwaggerUIBundle({
      url: "{{.}}",
      dom_id: "#swagger-ui",
      presets: [SwaggerUIBundle.presets.apis, SwaggerUIBundle.SwaggerUIStandalonePreset],
      layout: "BaseLayout",
    });
  </script>
</body>
</html>`))

// RegisterRoutes adds Swagger UI routes to the Echo instance. specURL is
// the path of the JSON document, e.g. "/openapi.json".
func RegisterRoutes(e *echo.Echo, specURL string) {
	ui := serveUI(specURL)
	e.GET("/swagger/index.html", ui)
	e.GET("/swagger", redirectToUI)
	e.GET("/swagger/", redirectToUI)
}

func serveUI(specURL string) echo.HandlerFunc {
	return func(c echo.Context) error {
		var b strings.Builder
		if err := swaggerUI.Execute(&b, specURL); err != nil {
			return c.String(http.StatusInternalServerError, "rendering swagger ui")
		}
		return c.HTML(http.StatusOK, b.String())
	}
}

func redirectToUI(c echo.Context) error {
	return c.Redirect(http.StatusMovedPermanently, "/swagger/index.html")
}
