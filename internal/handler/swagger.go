package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dafibh/fortuna/fortuna-reminders/docs"
	"github.com/labstack/echo/v4"
	"github.com/swaggo/swag"
)

// ServeSwaggerSpec serves the generated Swagger 2.0 document as JSON
func ServeSwaggerSpec(c echo.Context) error {
	doc, err := swag.ReadDoc(docs.SwaggerInfo.InstanceName())
	if err != nil {
		return NewInternalError(c, "Failed to read swagger doc")
	}

	var spec map[string]any
	if err := json.Unmarshal([]byte(doc), &spec); err != nil {
		return NewInternalError(c, "Failed to parse swagger doc")
	}

	return c.JSON(http.StatusOK, spec)
}
