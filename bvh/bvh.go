package bvh

import (
	"sort"

	"github.com/daiyousei-qz/Usami/math"
	"github.com/daiyousei-qz/Usami/primitive"
)

// leafThreshold caps the number of primitives held by a single leaf.
const leafThreshold = 8

type primitiveInfo struct {
	bounds   math.BoundingBox
	centroid math.Vec3
	index    int
}

type buildNode struct {
	bounds     math.BoundingBox
	left       *buildNode
	right      *buildNode
	begin, end int
	axis       int
}

// linearNode is the 32-byte serialized BVH node: two Vec3 bounds (24
// bytes) plus axis/count/offset packed into 8 bytes.
type linearNode struct {
	bboxMin, bboxMax math.Vec3
	axis             uint16
	primCount        uint16
	offset           uint32 // primitive_offset if primCount > 0, else right_child_index
}

// Tree is a linear BVH over a fixed set of primitives, built once and
// never mutated afterward.
type Tree struct {
	prims []*primitive.Primitive
	nodes []linearNode
}

// Build constructs a BVH over prims. The input slice is not modified;
// Build produces its own reordered copy.
func Build(prims []*primitive.Primitive) *Tree {
	if len(prims) == 0 {
		return &Tree{}
	}

	infos := make([]primitiveInfo, len(prims))
	for i, p := range prims {
		b := p.Bounding()
		infos[i] = primitiveInfo{bounds: b, centroid: b.Centroid(), index: i}
	}

	root := buildRecursive(infos, 0, len(infos))

	t := &Tree{
		prims: make([]*primitive.Primitive, len(prims)),
		nodes: make([]linearNode, 0, 2*len(prims)),
	}
	for i, info := range infos {
		t.prims[i] = prims[info.index]
	}
	t.registerNode(root)
	return t
}

func buildRecursive(infos []primitiveInfo, begin, end int) *buildNode {
	bounds := infos[begin].bounds
	for i := begin + 1; i < end; i++ {
		bounds = bounds.Union(infos[i].bounds)
	}
	axis := bounds.MaxExtentAxis()

	if end-begin <= leafThreshold {
		return &buildNode{bounds: bounds, begin: begin, end: end, axis: axis}
	}

	mid := (begin + end) / 2
	slice := infos[begin:end]
	sort.Slice(slice, func(i, j int) bool {
		return component(slice[i].centroid, axis) < component(slice[j].centroid, axis)
	})

	return &buildNode{
		bounds: bounds,
		left:   buildRecursive(infos, begin, mid),
		right:  buildRecursive(infos, mid, end),
		begin:  -1,
		end:    -1,
		axis:   axis,
	}
}

func component(v math.Vec3, axis int) float32 {
	switch axis {
	case 0:
		return v.X
	case 1:
		return v.Y
	default:
		return v.Z
	}
}

func (t *Tree) registerNode(node *buildNode) int {
	index := len(t.nodes)
	t.nodes = append(t.nodes, linearNode{
		bboxMin:   node.bounds.Min,
		bboxMax:   node.bounds.Max,
		axis:      uint16(node.axis),
		primCount: uint16(node.end - node.begin),
	})

	if node.left != nil {
		t.registerNode(node.left)
		rightIndex := t.registerNode(node.right)
		t.nodes[index].offset = uint32(rightIndex)
	} else {
		t.nodes[index].offset = uint32(node.begin)
	}

	return index
}

func (t *Tree) nodeBounds(i uint32) math.BoundingBox {
	n := t.nodes[i]
	return math.BoundingBox{Min: n.bboxMin, Max: n.bboxMax}
}

// Intersect finds the nearest hit among all wrapped primitives, if any.
func (t *Tree) Intersect(ray math.Ray, tMin, tMax float32, hit *primitive.Hit) bool {
	if len(t.nodes) == 0 {
		return false
	}
	if _, ok := t.nodeBounds(0).Intersect(ray, tMin, tMax); !ok {
		return false
	}
	return t.intersectAux(0, ray, tMin, tMax, hit)
}

func (t *Tree) intersectAux(inode uint32, ray math.Ray, tMin, tMax float32, hit *primitive.Hit) bool {
	node := t.nodes[inode]

	if node.primCount != 0 {
		found := false
		closest := tMax
		for i := uint32(0); i < uint32(node.primCount); i++ {
			p := t.prims[node.offset+i]
			var candidate primitive.Hit
			if p.Intersect(ray, tMin, closest, &candidate) {
				found = true
				closest = candidate.T
				*hit = candidate
			}
		}
		return found
	}

	leftIndex := inode + 1
	rightIndex := node.offset

	t1, mayHit1 := t.nodeBounds(leftIndex).Intersect(ray, tMin, tMax)
	t2, mayHit2 := t.nodeBounds(rightIndex).Intersect(ray, tMin, tMax)

	if mayHit2 && (!mayHit1 || t1 > t2) {
		leftIndex, rightIndex = rightIndex, leftIndex
		mayHit1, mayHit2 = mayHit2, mayHit1
	}

	hit1 := mayHit1 && t.intersectAux(leftIndex, ray, tMin, tMax, hit)

	var tmp primitive.Hit
	hit2 := mayHit2 && t.intersectAux(rightIndex, ray, tMin, tMax, &tmp)
	if hit2 {
		if !hit1 || tmp.T < hit.T {
			*hit = tmp
		}
	} else if !hit1 {
		return false
	}

	return true
}

// IntersectOcclude reports whether any primitive lies on the ray within
// (tMin, tMax]. It runs the same closest-hit traversal as Intersect and
// discards the resulting hit record.
func (t *Tree) IntersectOcclude(ray math.Ray, tMin, tMax float32) bool {
	if len(t.nodes) == 0 {
		return false
	}
	var hit primitive.Hit
	return t.Intersect(ray, tMin, tMax, &hit)
}

// Bounding returns the bounds of the whole tree.
func (t *Tree) Bounding() math.BoundingBox {
	if len(t.nodes) == 0 {
		return math.BoundingBoxEmpty
	}
	return t.nodeBounds(0)
}
