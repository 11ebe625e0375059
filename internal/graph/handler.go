package graph

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/graphql-go/graphql"

	"jobboard-backend/internal/shared/server/respond"
)

// Handler executes GraphQL requests against the schema.
type Handler struct {
	schema graphql.Schema
}

// NewHandler builds the schema from the resolver and wraps it for HTTP.
func NewHandler(r *Resolver) (*Handler, error) {
	schema, err := NewSchema(r)
	if err != nil {
		return nil, err
	}
	return &Handler{schema: schema}, nil
}

// RegisterRoutes attaches the GraphQL endpoint to the router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/graphql", h.execute)
}

type graphqlRequest struct {
	Query         string                 `json:"query"`
	Variables     map[string]interface{} `json:"variables"`
	OperationName string                 `json:"operationName"`
}

func (h *Handler) execute(c *gin.Context) {
	var req graphqlRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "validation_error", "invalid request body", nil)
		return
	}
	if req.Query == "" {
		respond.Error(c, http.StatusBadRequest, "validation_error", "query is required", nil)
		return
	}

	result := graphql.Do(graphql.Params{
		Schema:         h.schema,
		RequestString:  req.Query,
		VariableValues: req.Variables,
		OperationName:  req.OperationName,
		Context:        c.Request.Context(),
	})

	// GraphQL responds 200 even for resolver errors; they travel in the
	// errors array of the payload.
	respond.JSON(c, http.StatusOK, result)
}
