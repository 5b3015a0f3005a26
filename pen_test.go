package skeleton

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestTrajectoryStrokes(t *testing.T) {
	tests := []struct {
		name string
		traj Trajectory
		want [][]Point
	}{
		{"empty", nil, nil},
		{"pen up only", Trajectory{{X: 1, Y: 2}, {X: 3, Y: 4}}, nil},
		{
			name: "single stroke",
			traj: Trajectory{{X: 0, Y: 0, Down: true}, {X: 1, Y: 1, Down: true}},
			want: [][]Point{{{0, 0}, {1, 1}}},
		},
		{
			name: "pen up splits",
			traj: Trajectory{
				{X: 0, Y: 0, Down: true},
				{X: 1, Y: 0, Down: true},
				{X: 5, Y: 5},
				{X: 2, Y: 2, Down: true},
				{X: 3, Y: 3, Down: true},
			},
			want: [][]Point{{{0, 0}, {1, 0}}, {{2, 2}, {3, 3}}},
		},
		{
			name: "dot between moves",
			traj: Trajectory{{X: 0, Y: 0}, {X: 4, Y: 4, Down: true}, {X: 8, Y: 8}},
			want: [][]Point{{{4, 4}}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.traj.Strokes()
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Strokes() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTrajectoryBounds(t *testing.T) {
	traj := Trajectory{
		{X: -100, Y: -100},
		{X: 3, Y: 8, Down: true},
		{X: -2, Y: 10, Down: true},
		{X: 7, Y: -1, Down: true},
		{X: 500, Y: 500},
	}

	lo, hi, ok := traj.Bounds()
	if !ok {
		t.Fatal("Bounds() ok = false, want true")
	}
	if lo != Pt(-2, -1) || hi != Pt(7, 10) {
		t.Errorf("Bounds() = %v, %v; want (-2,-1), (7,10)", lo, hi)
	}

	if _, _, ok := (Trajectory{{X: 1, Y: 1}}).Bounds(); ok {
		t.Error("Bounds() of pen-up trajectory should not be ok")
	}
}

func TestTrajectoryValidate(t *testing.T) {
	if err := (Trajectory{{X: 1, Y: 2, Down: true}}).Validate(); err != nil {
		t.Errorf("Validate() = %v, want nil", err)
	}

	bad := Trajectory{{X: 1, Y: 2}, {X: math.Inf(-1), Y: 0}}
	err := bad.Validate()
	if !errors.Is(err, ErrInvalidPosition) {
		t.Fatalf("Validate() = %v, want ErrInvalidPosition", err)
	}
}

func TestPointIsFinite(t *testing.T) {
	tests := []struct {
		p    Point
		want bool
	}{
		{Pt(0, 0), true},
		{Pt(-1e300, 1e300), true},
		{Pt(math.NaN(), 0), false},
		{Pt(0, math.Inf(1)), false},
	}
	for _, tt := range tests {
		if got := tt.p.IsFinite(); got != tt.want {
			t.Errorf("%v.IsFinite() = %v, want %v", tt.p, got, tt.want)
		}
	}
}

func TestPointArithmetic(t *testing.T) {
	p := Pt(1, 2).Add(Pt(3, 4)).Sub(Pt(0.5, 0.5))
	if p != Pt(3.5, 5.5) {
		t.Errorf("got %v, want (3.5, 5.5)", p)
	}
}
