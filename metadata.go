package swapchain

import (
	"github.com/iov-one/swapchain/errors"
)

// Metadata is carried by every message and model. Schema describes the
// version of the structure and starts at 1.
type Metadata struct {
	Schema uint32 `json:"schema"`
}

// Validate returns an error if the schema version is not set.
func (m Metadata) Validate() error {
	if m.Schema == 0 {
		return errors.Wrap(errors.ErrInvalidModel, "schema version is required")
	}
	return nil
}
