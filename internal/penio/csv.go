package penio

import (
	"encoding/csv"
	"io"
	"strings"

	"github.com/pkg/errors"

	"github.com/gogpu/skeleton"
)

// csvColumns maps x, y and down to column indexes; down is -1 when absent.
type csvColumns struct {
	x, y, down int
}

func decodeCSV(r io.Reader) (skeleton.Trajectory, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1
	cr.TrimLeadingSpace = true
	cr.Comment = '#'

	rows, err := cr.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "penio: read csv")
	}

	cols := csvColumns{x: 0, y: 1, down: 2}
	if len(rows) > 0 && isHeader(rows[0]) {
		if cols, err = headerColumns(rows[0]); err != nil {
			return nil, err
		}
		rows = rows[1:]
	}

	traj := make(skeleton.Trajectory, 0, len(rows))
	for i, row := range rows {
		p, err := csvSample(row, cols)
		if err != nil {
			return nil, errors.Wrapf(err, "penio: csv row %d", i+1)
		}
		traj = append(traj, p)
	}
	return traj, nil
}

func isHeader(row []string) bool {
	if len(row) == 0 {
		return false
	}
	_, err := toFloat(row[0])
	return err != nil
}

func headerColumns(row []string) (csvColumns, error) {
	cols := csvColumns{x: -1, y: -1, down: -1}
	for i, name := range row {
		switch strings.ToLower(strings.TrimSpace(name)) {
		case "x":
			cols.x = i
		case "y":
			cols.y = i
		case "down", "pen", "pen_down", "pendown":
			cols.down = i
		}
	}
	if cols.x < 0 || cols.y < 0 {
		return cols, errors.Errorf("penio: csv header %v lacks x and y columns", row)
	}
	return cols, nil
}

func csvSample(row []string, cols csvColumns) (skeleton.PenPosition, error) {
	field := func(i int) (string, bool) {
		if i < 0 || i >= len(row) {
			return "", false
		}
		return row[i], true
	}

	xs, ok := field(cols.x)
	if !ok {
		return skeleton.PenPosition{}, errors.New("missing x")
	}
	ys, ok := field(cols.y)
	if !ok {
		return skeleton.PenPosition{}, errors.New("missing y")
	}
	x, err := toFloat(xs)
	if err != nil {
		return skeleton.PenPosition{}, errors.Wrap(err, "x")
	}
	y, err := toFloat(ys)
	if err != nil {
		return skeleton.PenPosition{}, errors.Wrap(err, "y")
	}

	down := true
	if ds, ok := field(cols.down); ok {
		if down, err = parseBool(ds); err != nil {
			return skeleton.PenPosition{}, errors.Wrap(err, "down")
		}
	}
	return skeleton.PenPosition{X: x, Y: y, Down: down}, nil
}
