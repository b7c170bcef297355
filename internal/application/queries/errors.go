package queries

import (
	"fmt"

	"github.com/featherlane/henhouse-go/internal/application/common"
)

// ErrUnknownQuery is returned when a handler receives a request type it
// was not registered for.
func ErrUnknownQuery(request common.Request) error {
	return fmt.Errorf("unknown query type %T", request)
}
