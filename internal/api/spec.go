package api

import (
	_ "embed"
	"fmt"

	"github.com/getkin/kin-openapi/openapi3"
)

//go:embed openapi.yaml
var specYAML []byte

// GetSwagger returns the parsed and validated OpenAPI document.
func GetSwagger() (*openapi3.T, error) {
	loader := openapi3.NewLoader()

	swagger, err := loader.LoadFromData(specYAML)
	if err != nil {
		return nil, fmt.Errorf("error loading spec: %w", err)
	}
	if err = swagger.Validate(loader.Context); err != nil {
		return nil, fmt.Errorf("error validating spec: %w", err)
	}

	return swagger, nil
}

// RawSpec returns the embedded document as written.
func RawSpec() []byte {
	return append([]byte(nil), specYAML...)
}
