package compose

import (
	"github.com/user/postergen/pkg/ports"
	"github.com/user/postergen/pkg/scene"
)

// ComputeDraw maps a source image of srcW x srcH pixels into the target
// rectangle under the given fit mode. It returns the region of the source to
// read and the region of the canvas to write. Pure geometry; the caller
// guarantees positive dimensions on both sides.
//
//   - FitStretch uses the full source and the full target, distorting as
//     needed.
//   - FitCover fills the whole target and center-crops the source on the
//     axis that overflows.
//   - FitContain shrinks the draw rectangle inside the target, centered on
//     the leftover axis; the source is never cropped.
func ComputeDraw(target ports.Rect, srcW, srcH float64, mode scene.ObjectFit) (src, dst ports.Rect) {
	src = ports.Rect{Width: srcW, Height: srcH}
	dst = target

	targetRatio := target.Width / target.Height
	srcRatio := srcW / srcH

	switch mode {
	case scene.FitCover:
		if srcRatio > targetRatio {
			cropW := srcH * targetRatio
			src = ports.Rect{X: (srcW - cropW) / 2, Width: cropW, Height: srcH}
		} else if srcRatio < targetRatio {
			cropH := srcW / targetRatio
			src = ports.Rect{Y: (srcH - cropH) / 2, Width: srcW, Height: cropH}
		}
	case scene.FitContain:
		if srcRatio > targetRatio {
			h := target.Width / srcRatio
			dst = ports.Rect{
				X:      target.X,
				Y:      target.Y + (target.Height-h)/2,
				Width:  target.Width,
				Height: h,
			}
		} else if srcRatio < targetRatio {
			w := target.Height * srcRatio
			dst = ports.Rect{
				X:      target.X + (target.Width-w)/2,
				Y:      target.Y,
				Width:  w,
				Height: target.Height,
			}
		}
	}
	return src, dst
}
