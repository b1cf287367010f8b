package http

import (
	_ "embed"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/getkin/kin-openapi/openapi3filter"
	"github.com/getkin/kin-openapi/routers"
	"github.com/getkin/kin-openapi/routers/gorillamux"
	"github.com/labstack/echo/v4"
)

//go:embed api/openapi.yml
var openAPISpec []byte

// loadOpenAPIDoc parses and validates the embedded OpenAPI document.
func loadOpenAPIDoc() (*openapi3.T, routers.Router, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(openAPISpec)
	if err != nil {
		return nil, nil, err
	}

	if err = doc.Validate(loader.Context); err != nil {
		return nil, nil, err
	}

	router, err := gorillamux.NewRouter(doc)
	if err != nil {
		return nil, nil, err
	}

	return doc, router, nil
}

// requestValidation returns echo middleware that validates incoming requests
// against the OpenAPI document before they reach the handlers. Requests for
// paths outside the document pass through untouched.
func requestValidation(router routers.Router) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()

			route, pathParams, err := router.FindRoute(req)
			if err != nil {
				return next(ctx)
			}

			input := &openapi3filter.RequestValidationInput{
				Request:    req,
				PathParams: pathParams,
				Route:      route,
			}
			if err = openapi3filter.ValidateRequest(req.Context(), input); err != nil {
				return ctx.JSON(http.StatusBadRequest, Error{
					Code:    http.StatusBadRequest,
					Message: "Invalid request: " + err.Error(),
				})
			}

			return next(ctx)
		}
	}
}
