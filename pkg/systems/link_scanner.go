package systems

import (
	"math"
	"sort"

	"github.com/gonewx/glyphfield/pkg/components"
)

// Link is one unordered particle pair closer than the link distance.
// I is always less than J.
type Link struct {
	I, J     int
	Distance float64
}

// LinkScanner finds every particle pair within a 3D distance threshold.
//
// Two strategies produce the same pair set:
//   - brute force: the full O(n²) pairwise scan
//   - bucket grid: particles are hashed into cubes of edge = threshold and
//     only the 27 neighbouring cubes are compared
//
// Results are ordered by (I, J) either way so the renderer can interleave
// links with per-particle drawing. The returned slice is reused between calls.
type LinkScanner struct {
	useGrid bool
	links   []Link
	buckets map[bucketKey][]int
}

type bucketKey struct {
	x, y, z int
}

// NewLinkScanner 创建扫描器；useGrid 为 true 时使用分桶网格
func NewLinkScanner(useGrid bool) *LinkScanner {
	return &LinkScanner{
		useGrid: useGrid,
		links:   make([]Link, 0, 1024),
		buckets: make(map[bucketKey][]int),
	}
}

// UsesGrid reports whether the bucket grid strategy is active.
func (ls *LinkScanner) UsesGrid() bool {
	return ls.useGrid
}

// Scan returns all pairs with distance strictly below threshold.
func (ls *LinkScanner) Scan(particles []components.ParticleComponent, threshold float64) []Link {
	ls.links = ls.links[:0]
	if len(particles) < 2 || threshold <= 0 {
		return ls.links
	}

	if ls.useGrid {
		ls.scanGrid(particles, threshold)
	} else {
		ls.scanBruteForce(particles, threshold)
	}
	return ls.links
}

func (ls *LinkScanner) scanBruteForce(particles []components.ParticleComponent, threshold float64) {
	for i := range particles {
		a := particles[i].Position
		for j := i + 1; j < len(particles); j++ {
			if d := a.Sub(particles[j].Position).Len(); d < threshold {
				ls.links = append(ls.links, Link{I: i, J: j, Distance: d})
			}
		}
	}
}

func (ls *LinkScanner) scanGrid(particles []components.ParticleComponent, threshold float64) {
	clear(ls.buckets)
	for i := range particles {
		key := keyFor(&particles[i], threshold)
		ls.buckets[key] = append(ls.buckets[key], i)
	}

	for i := range particles {
		a := particles[i].Position
		key := keyFor(&particles[i], threshold)
		for dx := -1; dx <= 1; dx++ {
			for dy := -1; dy <= 1; dy++ {
				for dz := -1; dz <= 1; dz++ {
					neighbour := bucketKey{key.x + dx, key.y + dy, key.z + dz}
					for _, j := range ls.buckets[neighbour] {
						if j <= i {
							continue
						}
						if d := a.Sub(particles[j].Position).Len(); d < threshold {
							ls.links = append(ls.links, Link{I: i, J: j, Distance: d})
						}
					}
				}
			}
		}
	}

	sort.Slice(ls.links, func(a, b int) bool {
		if ls.links[a].I != ls.links[b].I {
			return ls.links[a].I < ls.links[b].I
		}
		return ls.links[a].J < ls.links[b].J
	})
}

func keyFor(p *components.ParticleComponent, cell float64) bucketKey {
	return bucketKey{
		x: int(math.Floor(p.Position.X() / cell)),
		y: int(math.Floor(p.Position.Y() / cell)),
		z: int(math.Floor(p.Position.Z() / cell)),
	}
}
