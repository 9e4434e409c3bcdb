package v1

import (
	"github.com/growvest/backend/internal/planner"
	gv_uuid "github.com/growvest/backend/internal/uuid"
)

// svc is the planner service backing all handlers in this package.
var svc = planner.NewService(planner.NewGormStore())

type URIID struct {
	ID gv_uuid.UUID `uri:"id" binding:"required" format:"UUID"` // ID of the resource
}

type Pagination struct {
	Count  int   `json:"count"`  // The amount of records returned in this response
	Offset uint  `json:"offset"` // The offset for the first record returned
	Limit  int   `json:"limit"`  // The maximum amount of resources to return for this request
	Total  int64 `json:"total"`  // The total number of resources matching the query
}
