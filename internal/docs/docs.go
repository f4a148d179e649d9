// Package docs serves the API description and checks payloads against the
// documented Task representation.
package docs

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"net/http"
	"sync"

	"github.com/labstack/echo/v4"
	"github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed openapi.json
var openAPIDocument []byte

//go:embed task.schema.json
var taskSchemaDocument []byte

var taskSchema = sync.OnceValues(func() (*jsonschema.Schema, error) {
	return jsonschema.CompileString("task.schema.json", string(taskSchemaDocument))
})

func OpenAPI(c echo.Context) error {
	return c.Blob(http.StatusOK, echo.MIMEApplicationJSON, openAPIDocument)
}

// ValidateTask checks a single encoded task against the Task schema.
func ValidateTask(data []byte) error {
	schema, err := taskSchema()
	if err != nil {
		return fmt.Errorf("compiling task schema: %w", err)
	}

	v, err := decode(data)
	if err != nil {
		return err
	}
	return schema.Validate(v)
}

// ValidateTaskList checks an encoded JSON array whose items must all be tasks.
func ValidateTaskList(data []byte) error {
	schema, err := taskSchema()
	if err != nil {
		return fmt.Errorf("compiling task schema: %w", err)
	}

	v, err := decode(data)
	if err != nil {
		return err
	}
	items, ok := v.([]interface{})
	if !ok {
		return fmt.Errorf("expected a JSON array, got %T", v)
	}
	for i, item := range items {
		if err := schema.Validate(item); err != nil {
			return fmt.Errorf("item %d: %w", i, err)
		}
	}
	return nil
}

func decode(data []byte) (interface{}, error) {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	var v interface{}
	if err := dec.Decode(&v); err != nil {
		return nil, fmt.Errorf("decoding json: %w", err)
	}
	return v, nil
}
