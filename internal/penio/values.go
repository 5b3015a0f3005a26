package penio

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cast"

	"github.com/gogpu/skeleton"
)

// fromDocument converts a generically decoded JSON or YAML document.
func fromDocument(doc interface{}) (skeleton.Trajectory, error) {
	if m, ok := asMap(doc); ok {
		list, found := m["positions"]
		if !found {
			return nil, errors.New("penio: object has no \"positions\" list")
		}
		doc = list
	}

	list, ok := doc.([]interface{})
	if !ok {
		if doc == nil {
			return skeleton.Trajectory{}, nil
		}
		return nil, errors.Errorf("penio: expected a list of positions, got %T", doc)
	}

	traj := make(skeleton.Trajectory, 0, len(list))
	for i, item := range list {
		p, err := fromSample(item)
		if err != nil {
			return nil, errors.Wrapf(err, "penio: sample %d", i)
		}
		traj = append(traj, p)
	}
	return traj, nil
}

func fromSample(v interface{}) (skeleton.PenPosition, error) {
	if m, ok := asMap(v); ok {
		x, err := toFloat(m["x"])
		if err != nil {
			return skeleton.PenPosition{}, errors.Wrap(err, "x")
		}
		y, err := toFloat(m["y"])
		if err != nil {
			return skeleton.PenPosition{}, errors.Wrap(err, "y")
		}
		down := true
		if d, found := m["down"]; found {
			if down, err = toBool(d); err != nil {
				return skeleton.PenPosition{}, errors.Wrap(err, "down")
			}
		}
		return skeleton.PenPosition{X: x, Y: y, Down: down}, nil
	}

	arr, ok := v.([]interface{})
	if !ok || len(arr) < 2 || len(arr) > 3 {
		return skeleton.PenPosition{}, errors.Errorf("want {x, y, down} or [x, y, down], got %v", v)
	}
	x, err := toFloat(arr[0])
	if err != nil {
		return skeleton.PenPosition{}, errors.Wrap(err, "x")
	}
	y, err := toFloat(arr[1])
	if err != nil {
		return skeleton.PenPosition{}, errors.Wrap(err, "y")
	}
	down := true
	if len(arr) == 3 {
		if down, err = toBool(arr[2]); err != nil {
			return skeleton.PenPosition{}, errors.Wrap(err, "down")
		}
	}
	return skeleton.PenPosition{X: x, Y: y, Down: down}, nil
}

// asMap normalizes JSON objects and YAML mappings to lower-case string
// keys.
func asMap(v interface{}) (map[string]interface{}, bool) {
	switch m := v.(type) {
	case map[string]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[strings.ToLower(k)] = val
		}
		return out, true
	case map[interface{}]interface{}:
		out := make(map[string]interface{}, len(m))
		for k, val := range m {
			out[strings.ToLower(fmt.Sprint(k))] = val
		}
		return out, true
	}
	return nil, false
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case nil:
		return 0, errors.New("missing coordinate")
	case bool:
		return 0, errors.Errorf("not a number: %v", v)
	case string:
		f, err := cast.ToFloat64E(strings.TrimSpace(n))
		return f, errors.Wrapf(err, "parse %q", n)
	}
	f, err := cast.ToFloat64E(v)
	return f, errors.Wrap(err, "not a number")
}

func toBool(v interface{}) (bool, error) {
	switch b := v.(type) {
	case bool:
		return b, nil
	case string:
		return parseBool(b)
	case nil:
		return true, nil
	}
	f, err := toFloat(v)
	if err != nil {
		return false, err
	}
	return f != 0, nil
}

func parseBool(s string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "1", "true", "t", "yes", "y", "down":
		return true, nil
	case "0", "false", "f", "no", "n", "up":
		return false, nil
	}
	return false, errors.Errorf("not a pen state: %q", s)
}
