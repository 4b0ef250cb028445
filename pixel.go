package qoi

// pixel is a 4-channel RGBA tuple. Componentwise equality is the only
// comparison the codec needs, so it's a plain comparable struct.
type pixel struct {
	R, G, B, A byte
}

// sentinelPixel is the predictor's state before the first pixel of an
// image: opaque black, not the cache's all-zero default. An INDEX tag can
// legitimately produce (0,0,0,0); the predictor chain never starts there.
var sentinelPixel = pixel{0, 0, 0, 255}

func hash(p pixel) byte {
	return (p.R ^ p.G ^ p.B ^ p.A) % cacheSize
}

// delta holds the signed per-channel difference current-previous, wide
// enough for the full [-255, 255] range.
type delta struct {
	R, G, B, A int32
}

func subtractPixels(cur, prev pixel) delta {
	return delta{
		R: int32(cur.R) - int32(prev.R),
		G: int32(cur.G) - int32(prev.G),
		B: int32(cur.B) - int32(prev.B),
		A: int32(cur.A) - int32(prev.A),
	}
}

func (d delta) withinDiff24Range() bool {
	return d.R > -16 && d.R < 17 && d.G > -16 && d.G < 17 && d.B > -16 && d.B < 17 && d.A > -16 && d.A < 17
}

func (d delta) fitsDiff8() bool {
	return d.A == 0 && d.R > -2 && d.R < 3 && d.G > -2 && d.G < 3 && d.B > -2 && d.B < 3
}

func (d delta) fitsDiff16() bool {
	return d.A == 0 && d.R > -16 && d.R < 17 && d.G > -8 && d.G < 9 && d.B > -8 && d.B < 9
}
