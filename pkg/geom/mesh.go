package geom

import "github.com/go-gl/mathgl/mgl64"

// TriangleMesh is an immutable collection of triangles with a BVH for fast
// ray queries. Vertices are in the mesh's local space; instancing and
// transforms are the scene's concern.
type TriangleMesh struct {
	triangles []*Triangle
	bvh       *BVH
	bounds    AABB
}

// NewTriangleMesh builds a mesh from triangles.
func NewTriangleMesh(triangles []*Triangle) *TriangleMesh {
	mesh := &TriangleMesh{triangles: triangles}

	shapes := make([]Shape, len(triangles))
	for i, tri := range triangles {
		shapes[i] = tri
		if i == 0 {
			mesh.bounds = tri.Bounds()
		} else {
			mesh.bounds = mesh.bounds.Union(tri.Bounds())
		}
	}
	mesh.bvh = NewBVH(shapes)
	return mesh
}

// NewBoxMesh builds a rectangular box mesh spanning min to max, triangulated
// into 12 triangles with outward-facing winding.
func NewBoxMesh(min, max mgl64.Vec3) *TriangleMesh {
	box := NewAABB(min, max)
	c := box.Corners()

	// Corner layout from AABB.Corners:
	// 0:(-,-,-) 1:(+,-,-) 2:(-,+,-) 3:(+,+,-)
	// 4:(-,-,+) 5:(+,-,+) 6:(-,+,+) 7:(+,+,+)
	quads := [6][4]int{
		{0, 2, 3, 1}, // bottom (-Z)
		{4, 5, 7, 6}, // top (+Z)
		{0, 1, 5, 4}, // front (-Y)
		{2, 6, 7, 3}, // back (+Y)
		{0, 4, 6, 2}, // left (-X)
		{1, 3, 7, 5}, // right (+X)
	}

	triangles := make([]*Triangle, 0, 12)
	for _, q := range quads {
		triangles = append(triangles,
			NewTriangle(c[q[0]], c[q[1]], c[q[2]]),
			NewTriangle(c[q[0]], c[q[2]], c[q[3]]),
		)
	}
	return NewTriangleMesh(triangles)
}

// Hit finds the nearest triangle intersection.
func (m *TriangleMesh) Hit(ray Ray, tMin, tMax float64) (*HitRecord, bool) {
	return m.bvh.Hit(ray, tMin, tMax)
}

// Bounds returns the mesh bounding box.
func (m *TriangleMesh) Bounds() AABB {
	return m.bounds
}

// TriangleCount returns the number of triangles in the mesh.
func (m *TriangleMesh) TriangleCount() int {
	return len(m.triangles)
}
