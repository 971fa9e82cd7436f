package rest

import (
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/ghodss/yaml"
	"github.com/go-chi/chi/v5"
)

// NewOpenAPI3 instantiates the OpenAPI specification for this service.
func NewOpenAPI3() openapi3.T {
	taskSchema := openapi3.NewObjectSchema().
		WithProperty("id", openapi3.NewUUIDSchema()).
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("priority", openapi3.NewStringSchema().WithEnum("Low", "Medium", "High")).
		WithProperty("status", openapi3.NewStringSchema()).
		WithProperty("photos", openapi3.NewArraySchema().WithItems(openapi3.NewStringSchema())).
		WithProperty("created_by", openapi3.NewStringSchema().WithNullable()).
		WithProperty("created_at", openapi3.NewDateTimeSchema())

	taskResponse := openapi3.NewObjectSchema().WithProperty("task", taskSchema)

	errorResponse := openapi3.NewResponse().
		WithDescription("Error").
		WithJSONSchema(openapi3.NewObjectSchema().WithProperty("error", openapi3.NewStringSchema()))

	createTaskRequest := openapi3.NewObjectSchema().
		WithProperty("title", openapi3.NewStringSchema()).
		WithProperty("description", openapi3.NewStringSchema()).
		WithProperty("priority", openapi3.NewStringSchema().WithEnum("Low", "Medium", "High")).
		WithProperty("photos", openapi3.NewArraySchema().
			WithItems(openapi3.NewStringSchema().WithFormat("binary")).
			WithMaxItems(12))
	createTaskRequest.Required = []string{"title"}

	reportSchema := openapi3.NewObjectSchema().
		WithProperty("start", openapi3.NewDateTimeSchema()).
		WithProperty("end", openapi3.NewDateTimeSchema()).
		WithProperty("total", openapi3.NewIntegerSchema()).
		WithProperty("finished", openapi3.NewIntegerSchema()).
		WithProperty("rate", openapi3.NewIntegerSchema().WithMin(0).WithMax(100))

	userHeader := &openapi3.ParameterRef{
		Value: openapi3.NewHeaderParameter(HeaderUserID).
			WithDescription("User creating the task").
			WithSchema(openapi3.NewStringSchema()),
	}

	idempotencyHeader := &openapi3.ParameterRef{
		Value: openapi3.NewHeaderParameter("Idempotency-Key").
			WithDescription("Rejects concurrent saves of the same draft").
			WithSchema(openapi3.NewStringSchema()),
	}

	errorRef := &openapi3.ResponseRef{Value: errorResponse}

	return openapi3.T{
		OpenAPI: "3.0.0",
		Info: &openapi3.Info{
			Title:       "Task Photos API",
			Description: "REST APIs used for submitting tasks documented with photos",
			Version:     "0.0.0",
		},
		Servers: openapi3.Servers{
			&openapi3.Server{
				Description: "Local development",
				URL:         "http://127.0.0.1:9234",
			},
		},
		Paths: openapi3.Paths{
			"/tasks": &openapi3.PathItem{
				Post: &openapi3.Operation{
					OperationID: "CreateTask",
					Parameters:  openapi3.Parameters{userHeader, idempotencyHeader},
					RequestBody: &openapi3.RequestBodyRef{
						Value: openapi3.NewRequestBody().
							WithRequired(true).
							WithContent(openapi3.NewContentWithSchema(createTaskRequest, []string{"multipart/form-data"})),
					},
					Responses: openapi3.Responses{
						"201": &openapi3.ResponseRef{
							Value: openapi3.NewResponse().WithDescription("Task was created").WithJSONSchema(taskResponse),
						},
						"400": errorRef,
						"409": errorRef,
						"500": errorRef,
						"502": errorRef,
					},
				},
			},
			"/tasks/{id}": &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "ReadTask",
					Parameters: openapi3.Parameters{
						&openapi3.ParameterRef{
							Value: openapi3.NewPathParameter("id").WithSchema(openapi3.NewUUIDSchema()),
						},
					},
					Responses: openapi3.Responses{
						"200": &openapi3.ResponseRef{
							Value: openapi3.NewResponse().WithDescription("Task was found").WithJSONSchema(taskResponse),
						},
						"404": errorRef,
						"500": errorRef,
					},
				},
			},
			"/reports/monthly": &openapi3.PathItem{
				Get: &openapi3.Operation{
					OperationID: "MonthlyReport",
					Responses: openapi3.Responses{
						"200": &openapi3.ResponseRef{
							Value: openapi3.NewResponse().WithDescription("Completion rate of the current month").WithJSONSchema(reportSchema),
						},
						"500": errorRef,
					},
				},
			},
		},
	}
}

// RegisterOpenAPI serves the OpenAPI document as JSON and YAML.
func RegisterOpenAPI(r chi.Router) {
	swagger := NewOpenAPI3()

	r.Get("/openapi3.json", func(w http.ResponseWriter, r *http.Request) {
		renderResponse(w, r, &swagger, http.StatusOK)
	})

	r.Get("/openapi3.yaml", func(w http.ResponseWriter, r *http.Request) {
		data, err := yaml.Marshal(&swagger)
		if err != nil {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		w.Header().Set("Content-Type", "application/x-yaml")
		w.WriteHeader(http.StatusOK)

		_, _ = w.Write(data)
	})
}
