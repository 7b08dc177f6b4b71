package scene

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"space-renderer/core"
	"space-renderer/math"
)

// LoadOBJ parses a Wavefront .obj file into a single mesh. Faces with more
// than three vertices are fan-triangulated; malformed faces are skipped.
// Material libraries are ignored since shading comes from the material
// policies, not from .mtl files.
func LoadOBJ(path string) (*core.MeshData, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open obj %q: %w", path, err)
	}
	defer f.Close()

	var positions []math.Vec3
	var normals []math.Vec3
	var uvs []math.Vec2

	mesh := &core.MeshData{Name: path}

	// Deduplicate vertices on their v/vt/vn triple.
	seen := map[string]uint32{}

	addVertex := func(ref string) (uint32, bool) {
		if idx, ok := seen[ref]; ok {
			return idx, true
		}

		parts := strings.Split(ref, "/")
		vi, err := strconv.Atoi(parts[0])
		if err != nil || vi < 1 || vi > len(positions) {
			return 0, false
		}

		v := core.Vertex{Position: positions[vi-1], Normal: math.Vec3Up}
		if len(parts) > 1 && parts[1] != "" {
			if ti, err := strconv.Atoi(parts[1]); err == nil && ti >= 1 && ti <= len(uvs) {
				v.UV = uvs[ti-1]
			}
		}
		if len(parts) > 2 && parts[2] != "" {
			if ni, err := strconv.Atoi(parts[2]); err == nil && ni >= 1 && ni <= len(normals) {
				v.Normal = normals[ni-1]
			}
		}

		idx := uint32(len(mesh.Vertices))
		mesh.Vertices = append(mesh.Vertices, v)
		seen[ref] = idx
		return idx, true
	}

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		if len(fields) == 0 {
			continue
		}

		switch fields[0] {
		case "v":
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 32)
			y, _ := strconv.ParseFloat(fields[2], 32)
			z, _ := strconv.ParseFloat(fields[3], 32)
			positions = append(positions, math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})

		case "vn":
			if len(fields) < 4 {
				continue
			}
			x, _ := strconv.ParseFloat(fields[1], 32)
			y, _ := strconv.ParseFloat(fields[2], 32)
			z, _ := strconv.ParseFloat(fields[3], 32)
			normals = append(normals, math.Vec3{X: float32(x), Y: float32(y), Z: float32(z)})

		case "vt":
			if len(fields) < 3 {
				continue
			}
			u, _ := strconv.ParseFloat(fields[1], 32)
			v, _ := strconv.ParseFloat(fields[2], 32)
			uvs = append(uvs, math.Vec2{X: float32(u), Y: float32(v)})

		case "f":
			if len(fields) < 4 {
				continue
			}
			refs := fields[1:]
			corners := make([]uint32, 0, len(refs))
			ok := true
			for _, ref := range refs {
				idx, valid := addVertex(ref)
				if !valid {
					ok = false
					break
				}
				corners = append(corners, idx)
			}
			if !ok {
				continue
			}
			for i := 1; i+1 < len(corners); i++ {
				mesh.Indices = append(mesh.Indices, corners[0], corners[i], corners[i+1])
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read obj %q: %w", path, err)
	}
	if len(mesh.Indices) == 0 {
		return nil, fmt.Errorf("obj %q: no faces", path)
	}

	return mesh, nil
}
