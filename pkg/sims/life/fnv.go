package life

// FNV-1 parameters for 64-bit digests.
const (
	fnvOffset64 uint64 = 14695981039346656037
	fnvPrime64  uint64 = 1099511628211
)

// Fingerprint is a digest of a board's interior liveness.
type Fingerprint uint64

// Hash folds the interior of a bordered, row-major grid of (w+2)*(h+2) cells
// into a Fingerprint. Cells are visited row by row using bordered 1-based
// indices; a live cell at (x, y) mixes in (2x)*(2y) and a dead one mixes in
// zero, so only liveness and position matter. Touch counts are ignored.
func Hash(cells []Cell, w, h int) Fingerprint {
	stride := w + 2
	hash := fnvOffset64
	for y := 1; y <= h; y++ {
		row := cells[y*stride : (y+1)*stride]
		for x := 1; x <= w; x++ {
			var term uint64
			if row[x].alive {
				term = uint64(x+x) * uint64(y+y)
			}
			hash = hash*fnvPrime64 ^ term
		}
	}
	return Fingerprint(hash)
}
