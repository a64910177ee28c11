package httpserver

import (
	"net/http"

	"tronefilms/docs"

	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"
	"github.com/swaggo/swag"
)

const (
	openAPIPath = "/api/openapi"
	swaggerUI   = "/api/docs/"
)

// referencePage is the Swagger UI shell served at /api. Its assets come from
// the echo-swagger file server mounted at /api/docs/.
const referencePage = `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8">
  <title>TroneFilms API</title>
  <link rel="stylesheet" type="text/css" href="` + swaggerUI + `swagger-ui.css">
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="` + swaggerUI + `swagger-ui-bundle.js"></script>
  <script src="` + swaggerUI + `swagger-ui-standalone-preset.js"></script>
  <script>
    window.onload = function () {
      window.ui = SwaggerUIBundle({
        url: "` + openAPIPath + `",
        dom_id: "#swagger-ui",
        deepLinking: true,
        docExpansion: "list",
        presets: [SwaggerUIBundle.presets.apis, SwaggerUIStandalonePreset],
        layout: "StandaloneLayout"
      });
    };
  </script>
</body>
</html>
`

func (s *Server) RegisterSwaggerRoutes() {
	s.Router.GET("/api", func(c echo.Context) error {
		return c.HTML(http.StatusOK, referencePage)
	})
	s.Router.GET(openAPIPath, s.handleOpenAPI)
	s.Router.GET(swaggerUI+"*", echoSwagger.EchoWrapHandler(
		echoSwagger.URL(openAPIPath),
		echoSwagger.DeepLinking(true),
		echoSwagger.DocExpansion("list"),
		echoSwagger.InstanceName(docs.SwaggerInfo.InstanceName()),
	))
}

func (s *Server) handleOpenAPI(c echo.Context) error {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return err
	}
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSONCharsetUTF8, []byte(doc))
}
