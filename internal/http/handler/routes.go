package handler

import (
	"database/sql"
	_ "embed"

	"github.com/gofiber/fiber/v2"

	"leadinspect/internal/pdf"
	"leadinspect/internal/service"
)

// The OpenAPI document is embedded so /openapi.yaml works regardless of the
// process working directory.
//
//go:embed openapi.yaml
var openAPISpec []byte

// Deps bundles everything the HTTP routes need.
type Deps struct {
	DB            *sql.DB
	Inspectors    service.InspectorService
	Documents     service.DocumentService
	DocumentTypes service.DocumentTypeService
	Variables     service.GeneralVariableService
	Files         service.FileService
	Flattener     *pdf.Flattener
}

// RegisterRoutes attaches all HTTP routes to the provided Fiber app. Handlers
// stay thin; business logic lives in the service layer.
func RegisterRoutes(app *fiber.App, deps Deps) {
	// Serve OpenAPI spec and Swagger UI
	app.Get("/openapi.yaml", func(c *fiber.Ctx) error {
		c.Type("yaml")
		return c.Send(openAPISpec)
	})
	app.Get("/docs", func(c *fiber.Ctx) error {
		html := `<!DOCTYPE html>
<html lang="en">
<head>
  <meta charset="UTF-8" />
  <meta name="viewport" content="width=device-width, initial-scale=1" />
  <title>API Docs</title>
  <link rel="stylesheet" href="https://unpkg.com/swagger-ui-dist@5/swagger-ui.css" />
</head>
<body>
  <div id="swagger-ui"></div>
  <script src="https://unpkg.com/swagger-ui-dist@5/swagger-ui-bundle.js"></script>
  <script>
    window.ui = SwaggerUIBundle({
      url: '/openapi.yaml',
      dom_id: '#swagger-ui',
      presets: [SwaggerUIBundle.presets.apis],
      layout: 'BaseLayout'
    });
  </script>
</body>
</html>`
		return c.Type("html").SendString(html)
	})

	// Readiness checks DB connectivity; liveness checks nothing.
	app.Get("/health", HealthCheck(deps.DB))
	app.Get("/healthz", LivenessProbe())

	api := app.Group("/api")

	inspectors := api.Group("/inspectors")
	inspectors.Get("/", ListInspectors(deps.Inspectors))
	inspectors.Post("/", CreateInspector(deps.Inspectors))
	inspectors.Get("/:id", GetInspector(deps.Inspectors))
	inspectors.Put("/:id", UpdateInspector(deps.Inspectors))
	inspectors.Delete("/:id", DeleteInspector(deps.Inspectors))
	inspectors.Get("/:id/variables", ListInspectorVariables(deps.Inspectors))
	inspectors.Put("/:id/variables/:name", SetInspectorVariable(deps.Inspectors))
	inspectors.Delete("/:id/variables/:name", DeleteInspectorVariable(deps.Inspectors))

	documents := api.Group("/documents")
	documents.Get("/", ListDocuments(deps.Documents))
	documents.Post("/", UploadDocument(deps.Documents))
	documents.Get("/:id", GetDocument(deps.Documents))
	documents.Put("/:id", UpdateDocument(deps.Documents))
	documents.Delete("/:id", DeleteDocument(deps.Documents))

	documentTypes := api.Group("/document-types")
	documentTypes.Get("/", ListDocumentTypes(deps.DocumentTypes))
	documentTypes.Post("/", CreateDocumentType(deps.DocumentTypes))
	documentTypes.Delete("/:id", DeleteDocumentType(deps.DocumentTypes))

	variables := api.Group("/variables")
	variables.Get("/", ListVariables(deps.Variables))
	variables.Put("/:name", SetVariable(deps.Variables))
	variables.Delete("/:name", DeleteVariable(deps.Variables))

	// Raw object-store proxy. Keys may contain slashes, so the download
	// routes use wildcard parameters; presigned must be registered first.
	api.Post("/upload", UploadFile(deps.Files))
	api.Get("/files/presigned/+", PresignFile(deps.Files))
	api.Get("/files/+", DownloadFile(deps.Files))

	api.Post("/flatten-pdf", FlattenPDF(deps.Flattener))
}
