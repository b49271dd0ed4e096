package formats

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/g3n/engine/loader/obj"
)

// ErrInvalidOBJ is returned for OBJ or MTL content the decoder rejects or
// geometry that cannot be turned into a mesh.
var ErrInvalidOBJ = errors.New("invalid OBJ")

// defaultObject gives faces that precede any "o" statement an owner.
const defaultObject = "o default\n"

// Model is a decoded OBJ file with the materials of its library.
type Model struct {
	*obj.Decoder
	// MaterialPath is the MTL file the materials were read from, empty when
	// none was found.
	MaterialPath string
}

// DecodeOBJ decodes OBJ text and an optional MTL library (mtl may be nil).
func DecodeOBJ(objText, mtl io.Reader) (*obj.Decoder, error) {
	if mtl == nil {
		mtl = strings.NewReader("")
	}
	dec, err := obj.DecodeReader(io.MultiReader(strings.NewReader(defaultObject), objText), mtl)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOBJ, err)
	}
	return dec, nil
}

// LoadOBJ reads an OBJ file and its material library. The library is looked
// up next to the model as <name>.mtl first, then by the file's mtllib
// statement. A model without a readable library decodes with no materials.
func LoadOBJ(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("opening OBJ: %w", err)
	}

	mtlPath := strings.TrimSuffix(path, filepath.Ext(path)) + ".mtl"
	m, err := decodeWithLibrary(data, mtlPath)
	if err != nil {
		return nil, err
	}
	if m.MaterialPath != "" || m.Matlib == "" {
		return m, nil
	}

	named := filepath.Join(filepath.Dir(path), m.Matlib)
	if named == mtlPath {
		return m, nil
	}
	return decodeWithLibrary(data, named)
}

func decodeWithLibrary(objData []byte, mtlPath string) (*Model, error) {
	var mtl io.Reader
	found := ""
	if lib, err := os.ReadFile(mtlPath); err == nil {
		mtl = bytes.NewReader(lib)
		found = mtlPath
	}
	dec, err := DecodeOBJ(bytes.NewReader(objData), mtl)
	if err != nil {
		return nil, err
	}
	return &Model{Decoder: dec, MaterialPath: found}, nil
}

// Material returns the material of the first face that names a known
// material, or nil.
func (m *Model) Material() *obj.Material {
	for i := range m.Objects {
		for _, f := range m.Objects[i].Faces {
			if mat, ok := m.Materials[f.Material]; ok {
				return mat
			}
		}
	}
	return nil
}

// DiffuseMap returns the path of the first material's map_Kd, resolved
// against the MTL file, or "" when there is none.
func (m *Model) DiffuseMap() string {
	mat := m.Material()
	if mat == nil || mat.MapKd == "" || m.MaterialPath == "" {
		return ""
	}
	if filepath.IsAbs(mat.MapKd) {
		return mat.MapKd
	}
	return filepath.Join(filepath.Dir(m.MaterialPath), mat.MapKd)
}
