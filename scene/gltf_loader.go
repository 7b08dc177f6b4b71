package scene

import (
	"fmt"
	"strings"

	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"

	"space-renderer/core"
	"space-renderer/math"
)

// LoadGLTFShip opens a .glb or .gltf file and flattens every mesh
// primitive into one hull mesh. The shading region of each primitive is
// inferred from its mesh or material name so the hull material can drive
// thruster glow and cockpit tinting per vertex.
func LoadGLTFShip(path string) (*core.MeshData, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, fmt.Errorf("gltf open %q: %w", path, err)
	}

	mesh := &core.MeshData{Name: path}

	for mi, gm := range doc.Meshes {
		for pi, prim := range gm.Primitives {
			region := classifyRegion(doc, gm.Name, prim)
			if err := appendPrimitive(doc, mesh, prim, region); err != nil {
				fmt.Printf("gltf: mesh %d prim %d: %v\n", mi, pi, err)
			}
		}
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("gltf %q: no triangle data", path)
	}

	return mesh, nil
}

func classifyRegion(doc *gltf.Document, meshName string, prim *gltf.Primitive) core.RegionID {
	name := strings.ToLower(meshName)
	if prim.Material != nil && int(*prim.Material) < len(doc.Materials) {
		name += " " + strings.ToLower(doc.Materials[*prim.Material].Name)
	}

	switch {
	case strings.Contains(name, "thrust"), strings.Contains(name, "engine"),
		strings.Contains(name, "exhaust"):
		return core.RegionThruster
	case strings.Contains(name, "cockpit"), strings.Contains(name, "canopy"),
		strings.Contains(name, "glass"):
		return core.RegionCockpit
	default:
		return core.RegionBody
	}
}

func appendPrimitive(doc *gltf.Document, mesh *core.MeshData, prim *gltf.Primitive, region core.RegionID) error {
	posIdx, ok := prim.Attributes["POSITION"]
	if !ok {
		return fmt.Errorf("no POSITION attribute")
	}
	positions, err := modeler.ReadPosition(doc, doc.Accessors[posIdx], nil)
	if err != nil {
		return fmt.Errorf("positions: %w", err)
	}

	var normals [][3]float32
	if nIdx, ok := prim.Attributes["NORMAL"]; ok {
		normals, err = modeler.ReadNormal(doc, doc.Accessors[nIdx], nil)
		if err != nil {
			return fmt.Errorf("normals: %w", err)
		}
	}

	var uvs [][2]float32
	if tIdx, ok := prim.Attributes["TEXCOORD_0"]; ok {
		uvs, err = modeler.ReadTextureCoord(doc, doc.Accessors[tIdx], nil)
		if err != nil {
			return fmt.Errorf("uvs: %w", err)
		}
	}

	base := uint32(len(mesh.Vertices))
	for i, p := range positions {
		v := core.Vertex{
			Position: math.Vec3{X: p[0], Y: p[1], Z: p[2]},
			Normal:   math.Vec3Up,
			Region:   region,
		}
		if i < len(normals) {
			v.Normal = math.Vec3{X: normals[i][0], Y: normals[i][1], Z: normals[i][2]}
		}
		if i < len(uvs) {
			v.UV = math.Vec2{X: uvs[i][0], Y: uvs[i][1]}
		}
		mesh.Vertices = append(mesh.Vertices, v)
	}

	if prim.Indices == nil {
		// Non-indexed primitive: consecutive triples.
		for i := uint32(0); i+2 < uint32(len(positions)); i += 3 {
			mesh.Indices = append(mesh.Indices, base+i, base+i+1, base+i+2)
		}
		return nil
	}

	indices, err := modeler.ReadIndices(doc, doc.Accessors[*prim.Indices], nil)
	if err != nil {
		return fmt.Errorf("indices: %w", err)
	}
	for _, idx := range indices {
		mesh.Indices = append(mesh.Indices, base+idx)
	}
	return nil
}
