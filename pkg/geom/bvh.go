package geom

// BVHNode is a node in the bounding volume hierarchy. Leaf nodes hold shapes;
// internal nodes hold children.
type BVHNode struct {
	Bounds AABB
	Left   *BVHNode
	Right  *BVHNode
	Shapes []Shape // non-nil only for leaf nodes
}

// BVH is a bounding volume hierarchy for fast ray intersection over many shapes.
type BVH struct {
	Root *BVHNode
}

// Shapes with this count or fewer go into a leaf node.
const leafThreshold = 8

// NewBVH builds a hierarchy over the given shapes using median splits along
// the longest axis.
func NewBVH(shapes []Shape) *BVH {
	if len(shapes) == 0 {
		return &BVH{}
	}
	// Copy so partitioning never reorders the caller's slice
	shapesCopy := make([]Shape, len(shapes))
	copy(shapesCopy, shapes)
	return &BVH{Root: buildNode(shapesCopy)}
}

func buildNode(shapes []Shape) *BVHNode {
	bounds := shapes[0].Bounds()
	for _, s := range shapes[1:] {
		bounds = bounds.Union(s.Bounds())
	}

	if len(shapes) <= leafThreshold {
		return &BVHNode{Bounds: bounds, Shapes: shapes}
	}

	axis := bounds.LongestAxis()
	if bounds.Max[axis] <= bounds.Min[axis] {
		// No extent to split along
		return &BVHNode{Bounds: bounds, Shapes: shapes}
	}
	splitPos := (bounds.Min[axis] + bounds.Max[axis]) * 0.5

	var left, right []Shape
	for _, s := range shapes {
		if s.Bounds().Center()[axis] < splitPos {
			left = append(left, s)
		} else {
			right = append(right, s)
		}
	}
	if len(left) == 0 || len(right) == 0 {
		return &BVHNode{Bounds: bounds, Shapes: shapes}
	}

	return &BVHNode{
		Bounds: bounds,
		Left:   buildNode(left),
		Right:  buildNode(right),
	}
}

// Hit finds the nearest intersection of the ray with any shape in the hierarchy.
func (b *BVH) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if b.Root == nil {
		return nil, false
	}
	return hitNode(b.Root, ray, tMin, tMax)
}

func hitNode(node *BVHNode, ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	if _, ok := node.Bounds.Intersects(ray, tMin, tMax); !ok {
		return nil, false
	}

	if node.Shapes != nil {
		var closest *HitRecord
		closestT := tMax
		for _, shape := range node.Shapes {
			if rec, ok := shape.Hit(ray, tMin, closestT); ok {
				closest = rec
				closestT = rec.T
			}
		}
		return closest, closest != nil
	}

	var closest *HitRecord
	closestT := tMax
	if node.Left != nil {
		if rec, ok := hitNode(node.Left, ray, tMin, closestT); ok {
			closest = rec
			closestT = rec.T
		}
	}
	if node.Right != nil {
		if rec, ok := hitNode(node.Right, ray, tMin, closestT); ok {
			closest = rec
			closestT = rec.T
		}
	}
	return closest, closest != nil
}
