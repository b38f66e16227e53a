package handler

import (
	"context"

	"github.com/pkordes/toll-plaza/internal/handler/gen"
)

// GetHealth handles GET /healthz.
func (s *Server) GetHealth(_ context.Context, _ gen.GetHealthRequestObject) (gen.GetHealthResponseObject, error) {
	return gen.GetHealth200JSONResponse{Status: "ok"}, nil
}
