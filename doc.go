// Package skeleton renders drawing trajectories as skeleton images.
//
// # Overview
//
// A trajectory is a sequence of pen positions. Consecutive positions with
// the pen down form strokes, and each stroke is rasterized as a 1 px
// anti-aliased hairline: dark ink on a white grayscale canvas. This is the
// skeleton mask.
//
// Render returns the mask together with a visualization made by inverting
// the mask, blurring it with a Gaussian of radius 1, and expanding the
// result to three color channels.
//
// # Quick Start
//
//	import "github.com/gogpu/skeleton"
//
//	traj := skeleton.Trajectory{
//	    {X: 0, Y: 0, Down: true},
//	    {X: 40, Y: 25, Down: true},
//	}
//
//	res, err := skeleton.Render(traj)
//	if err != nil {
//	    return err
//	}
//	// res.Mask is an *image.Gray, res.Blurred an *image.RGBA.
//
// # Layout
//
// Without options the canvas is fitted to the trajectory with a 4 px
// margin on every side, and Result.Offset reports the translation applied
// to the input coordinates. WithSize and WithOffset pin either one.
//
// # Coordinate System
//
//   - Origin (0,0) at top-left
//   - X increases right
//   - Y increases down
//   - A translated pen position (i, j) with integer coordinates addresses
//     the center of pixel (i, j)
package skeleton

// Version is the current version of the library.
const Version = "0.1.0"
