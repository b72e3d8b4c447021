package validation

import (
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const catalogSchemaPath = "configs/schemas/catalog.schema.json"

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestSchemaValidator_ValidateFile(t *testing.T) {
	validator := NewSchemaValidator()
	tmpDir := t.TempDir()

	schemaPath := writeFile(t, tmpDir, "test.schema.json", `{
		"$schema": "http://json-schema.org/draft-07/schema#",
		"type": "object",
		"properties": {
			"name": {"type": "string"},
			"age": {"type": "integer", "minimum": 0}
		},
		"required": ["name"]
	}`)

	tests := []struct {
		name      string
		data      string
		wantError bool
		errorMsg  string
	}{
		{name: "valid data", data: `{"name": "John", "age": 30}`},
		{name: "valid data without optional field", data: `{"name": "Jane"}`},
		{name: "missing required field", data: `{"age": 25}`, wantError: true, errorMsg: "required"},
		{name: "wrong type for field", data: `{"name": "John", "age": "thirty"}`, wantError: true, errorMsg: "/age"},
		{name: "constraint violation", data: `{"name": "John", "age": -5}`, wantError: true, errorMsg: "minimum"},
		{name: "invalid JSON", data: `{"name": "John", "age": }`, wantError: true, errorMsg: "parse JSON"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dataPath := writeFile(t, tmpDir, "test_data.json", tt.data)

			err := validator.ValidateFile(dataPath, schemaPath)

			if !tt.wantError {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}

func TestSchemaValidator_SchemaErrorsWrapSentinel(t *testing.T) {
	validator := NewSchemaValidator()
	schemaPath := writeFile(t, t.TempDir(), "test.schema.json", `{"type": "array"}`)

	err := validator.ValidateBytes([]byte(`{}`), schemaPath)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrSchemaValidation))

	err = validator.ValidateBytes([]byte(`not json`), schemaPath)
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrSchemaValidation), "parse failures are not schema violations")
}

func TestSchemaValidator_MissingFiles(t *testing.T) {
	validator := NewSchemaValidator()
	tmpDir := t.TempDir()

	dataPath := writeFile(t, tmpDir, "data.json", `{}`)
	err := validator.ValidateFile(dataPath, "nonexistent.schema.json")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to load schema")

	schemaPath := writeFile(t, tmpDir, "test.schema.json", `{"type": "object"}`)
	err = validator.ValidateFile(filepath.Join(tmpDir, "nonexistent.json"), schemaPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to read data file")
}

func TestSchemaValidator_CachesCompiledSchemas(t *testing.T) {
	v := NewSchemaValidator().(*validator)
	schemaPath := writeFile(t, t.TempDir(), "test.schema.json", `{"type": "object"}`)

	var wg sync.WaitGroup
	for range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, v.ValidateBytes([]byte(`{"test": "value"}`), schemaPath))
		}()
	}
	wg.Wait()

	assert.Len(t, v.schemas, 1)
}

func TestSchemaValidator_CatalogSchema(t *testing.T) {
	validator := NewSchemaValidator()

	t.Run("shipped catalog is valid", func(t *testing.T) {
		assert.NoError(t, validator.ValidateFile("../../configs/catalog.json", catalogSchemaPath))
	})

	tests := []struct {
		name     string
		data     string
		errorMsg string
	}{
		{
			name:     "multi character code",
			data:     `{"version": "1.0", "ingredient_types": [{"code": "ab", "title": "Bread", "ingredients": []}]}`,
			errorMsg: "/ingredient_types/0/code",
		},
		{
			name:     "numeric price",
			data:     `{"version": "1.0", "ingredient_types": [{"code": "a", "title": "Bread", "ingredients": [{"title": "rye", "price": 1.5}]}]}`,
			errorMsg: "/ingredient_types/0/ingredients/0/price",
		},
		{
			name:     "three decimal places",
			data:     `{"version": "1.0", "ingredient_types": [{"code": "a", "title": "Bread", "ingredients": [{"title": "rye", "price": "1.505"}]}]}`,
			errorMsg: "pattern",
		},
		{
			name:     "negative price",
			data:     `{"version": "1.0", "ingredient_types": [{"code": "a", "title": "Bread", "ingredients": [{"title": "rye", "price": "-1"}]}]}`,
			errorMsg: "pattern",
		},
		{
			name:     "no types",
			data:     `{"version": "1.0", "ingredient_types": []}`,
			errorMsg: "minItems",
		},
		{
			name:     "unknown field",
			data:     `{"version": "1.0", "ingredient_types": [{"code": "a", "title": "Bread", "ingredients": [], "color": "red"}]}`,
			errorMsg: "additionalProperties",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validator.ValidateBytes([]byte(tt.data), catalogSchemaPath)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrSchemaValidation))
			assert.Contains(t, err.Error(), tt.errorMsg)
		})
	}
}
