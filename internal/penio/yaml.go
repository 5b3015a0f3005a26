package penio

import (
	"io"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/gogpu/skeleton"
)

func decodeYAML(r io.Reader) (skeleton.Trajectory, error) {
	var doc interface{}
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return skeleton.Trajectory{}, nil
		}
		return nil, errors.Wrap(err, "penio: decode yaml")
	}
	return fromDocument(doc)
}
