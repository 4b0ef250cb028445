package qoi

import "image"

// isOpaqueImage decides whether m needs 3 or 4 output channels. A
// decoded *Image with only 3 channels is opaque by construction (A is
// always seeded to 255), so that case short-circuits without a scan.
// Anything else falls back to the standard library's Opaque() method
// when the concrete type provides one, and a full pixel scan otherwise.
func isOpaqueImage(m image.Image) bool {
	if qoiImg, ok := m.(*Image); ok && qoiImg.Channels == 3 {
		return true
	}

	if oim, ok := m.(interface{ Opaque() bool }); ok {
		return oim.Opaque()
	}

	rect := m.Bounds()
	for y := rect.Min.Y; y < rect.Max.Y; y++ {
		for x := rect.Min.X; x < rect.Max.X; x++ {
			if _, _, _, a := m.At(x, y).RGBA(); a != 0xffff {
				return false
			}
		}
	}
	return true
}
