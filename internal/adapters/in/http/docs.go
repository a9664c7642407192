package http

import (
	"fmt"
	"sync"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/swaggo/swag"
)

const SwaggerInstanceName = "b2better"

var registerOnce sync.Once

// RegisterSwaggerDoc publishes the API document to the swag registry read by
// the swagger UI handler. Later calls are no-ops.
func RegisterSwaggerDoc(swagger *openapi3.T) error {
	doc, err := swagger.MarshalJSON()
	if err != nil {
		return fmt.Errorf("failed to encode api document: %w", err)
	}

	registerOnce.Do(func() {
		swag.Register(SwaggerInstanceName, &swag.Spec{
			Version:          swagger.Info.Version,
			BasePath:         APIBasePath,
			Title:            swagger.Info.Title,
			Description:      swagger.Info.Description,
			InfoInstanceName: SwaggerInstanceName,
			SwaggerTemplate:  string(doc),
			LeftDelim:        "{{",
			RightDelim:       "}}",
		})
	})
	return nil
}
