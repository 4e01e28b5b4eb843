package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/DanielDubon/ShadersLab/common"
	"github.com/DanielDubon/ShadersLab/engine/model"
)

// objBackend parses Wavefront OBJ files into flat triangle-list meshes.
// Supported statements: v, vn, vt, f (with v, v/vt, v//vn, and v/vt/vn index
// forms, positive or negative). Polygon faces are fan-triangulated. Groups,
// objects, smoothing groups, and material statements are ignored.
type objBackend struct{}

// Ensure objBackend implements loaderBackend interface.
var _ loaderBackend = &objBackend{}

func newOBJBackend() *objBackend {
	return &objBackend{}
}

// faceIndex holds the resolved attribute indices of one face corner.
// A value of -1 means the attribute was not specified.
type faceIndex struct {
	position int
	texCoord int
	normal   int
}

func (b *objBackend) Parse(name string, r io.Reader) (model.Mesh, error) {
	var (
		positions [][3]float32
		normals   [][3]float32
		texCoords [][2]float32
		vertices  []model.Vertex
	)

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		switch fields[0] {
		case "v":
			p, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex position: %w", lineNo, err)
			}
			positions = append(positions, p)
		case "vn":
			n, err := parseFloats3(fields[1:])
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid vertex normal: %w", lineNo, err)
			}
			normals = append(normals, n)
		case "vt":
			if len(fields) < 3 {
				return nil, fmt.Errorf("line %d: texture coordinate needs at least 2 components", lineNo)
			}
			u, err := strconv.ParseFloat(fields[1], 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid texture coordinate: %w", lineNo, err)
			}
			v, err := strconv.ParseFloat(fields[2], 32)
			if err != nil {
				return nil, fmt.Errorf("line %d: invalid texture coordinate: %w", lineNo, err)
			}
			texCoords = append(texCoords, [2]float32{float32(u), float32(v)})
		case "f":
			if len(fields) < 4 {
				return nil, fmt.Errorf("line %d: face needs at least 3 corners", lineNo)
			}
			corners := make([]faceIndex, 0, len(fields)-1)
			for _, tok := range fields[1:] {
				fi, err := parseFaceIndex(tok, len(positions), len(texCoords), len(normals))
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				corners = append(corners, fi)
			}
			// Fan triangulation: (0, i, i+1) for each interior corner.
			for i := 1; i+1 < len(corners); i++ {
				tri := [3]faceIndex{corners[0], corners[i], corners[i+1]}
				verts, err := buildTriangle(tri, positions, texCoords, normals)
				if err != nil {
					return nil, fmt.Errorf("line %d: %w", lineNo, err)
				}
				vertices = append(vertices, verts[:]...)
			}
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read source: %w", err)
	}

	if len(vertices) == 0 {
		return nil, fmt.Errorf("no faces found")
	}

	return model.NewMesh(name, vertices), nil
}

// parseFaceIndex resolves one "v", "v/vt", "v//vn", or "v/vt/vn" token into
// zero-based indices, handling OBJ's 1-based and negative (relative) forms.
func parseFaceIndex(token string, numPos, numTex, numNorm int) (faceIndex, error) {
	fi := faceIndex{position: -1, texCoord: -1, normal: -1}

	parts := strings.Split(token, "/")
	if len(parts) == 0 || len(parts) > 3 {
		return fi, fmt.Errorf("malformed face corner %q", token)
	}

	resolve := func(s string, count int) (int, error) {
		raw, err := strconv.Atoi(s)
		if err != nil {
			return -1, fmt.Errorf("malformed face corner %q: %w", token, err)
		}
		idx := raw - 1
		if raw < 0 {
			idx = count + raw
		}
		if idx < 0 || idx >= count {
			return -1, fmt.Errorf("face index %d out of range (have %d)", raw, count)
		}
		return idx, nil
	}

	pos, err := resolve(parts[0], numPos)
	if err != nil {
		return fi, err
	}
	fi.position = pos

	if len(parts) >= 2 && parts[1] != "" {
		tex, err := resolve(parts[1], numTex)
		if err != nil {
			return fi, err
		}
		fi.texCoord = tex
	}
	if len(parts) == 3 && parts[2] != "" {
		norm, err := resolve(parts[2], numNorm)
		if err != nil {
			return fi, err
		}
		fi.normal = norm
	}

	return fi, nil
}

// buildTriangle assembles three vertex records from resolved indices.
// Corners without a normal share the triangle's face normal.
func buildTriangle(tri [3]faceIndex, positions [][3]float32, texCoords [][2]float32, normals [][3]float32) ([3]model.Vertex, error) {
	var out [3]model.Vertex

	needFaceNormal := false
	for _, fi := range tri {
		if fi.normal < 0 {
			needFaceNormal = true
		}
	}

	var faceNormal [3]float32
	if needFaceNormal {
		p0 := positions[tri[0].position]
		p1 := positions[tri[1].position]
		p2 := positions[tri[2].position]
		e1 := [3]float32{p1[0] - p0[0], p1[1] - p0[1], p1[2] - p0[2]}
		e2 := [3]float32{p2[0] - p0[0], p2[1] - p0[1], p2[2] - p0[2]}
		faceNormal = common.Normalize3([3]float32{
			e1[1]*e2[2] - e1[2]*e2[1],
			e1[2]*e2[0] - e1[0]*e2[2],
			e1[0]*e2[1] - e1[1]*e2[0],
		})
	}

	for i, fi := range tri {
		v := model.Vertex{
			Position: positions[fi.position],
			Color:    common.NewColor(255, 255, 255),
		}
		if fi.normal >= 0 {
			v.Normal = normals[fi.normal]
		} else {
			v.Normal = faceNormal
		}
		if fi.texCoord >= 0 {
			v.TexCoords = texCoords[fi.texCoord]
		}
		out[i] = v
	}

	return out, nil
}

func parseFloats3(fields []string) ([3]float32, error) {
	var out [3]float32
	if len(fields) < 3 {
		return out, fmt.Errorf("need 3 components, have %d", len(fields))
	}
	for i := 0; i < 3; i++ {
		f, err := strconv.ParseFloat(fields[i], 32)
		if err != nil {
			return out, err
		}
		out[i] = float32(f)
	}
	return out, nil
}
