package penio

import (
	"encoding/json"
	"io"

	"github.com/pkg/errors"

	"github.com/gogpu/skeleton"
)

func decodeJSON(r io.Reader) (skeleton.Trajectory, error) {
	var doc interface{}
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "penio: decode json")
	}
	return fromDocument(doc)
}
