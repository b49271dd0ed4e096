package app

import (
	"errors"
	"fmt"
	"image"
	"io/fs"

	"go.uber.org/zap"

	"github.com/Faultbox/facelight/internal/engine/model"
	"github.com/Faultbox/facelight/internal/engine/texture"
	"github.com/Faultbox/facelight/internal/logger"
	"github.com/Faultbox/facelight/pkg/formats"
)

// missingTextureSize is the edge length of the fallback checkerboard.
const missingTextureSize = 64

var (
	checkerLight = [4]uint8{255, 0, 255, 255}
	checkerDark  = [4]uint8{32, 32, 32, 255}
)

// HeadAsset is the CPU side of the head model, ready for upload.
type HeadAsset struct {
	Mesh *model.Mesh
	// Texture is nil when the model names no diffuse map.
	Texture *image.RGBA
	// Shininess is the MTL specular exponent (Ns), 0 when not given.
	Shininess float32
}

// LoadHead loads an OBJ model and its diffuse texture. The texture comes from
// texturePath when set, otherwise from the map_Kd of the model's first
// material. A texture that cannot be loaded is replaced by a checkerboard.
func LoadHead(objPath, texturePath string, maxTextureSize int) (*HeadAsset, error) {
	m, err := formats.LoadOBJ(objPath)
	if err != nil {
		return nil, err
	}
	mesh, err := model.BuildOBJMesh(m.Decoder)
	if err != nil {
		return nil, fmt.Errorf("building %s: %w", objPath, err)
	}

	logger.Info("head model loaded",
		zap.String("path", objPath),
		zap.String("materials", m.MaterialPath),
		zap.Int("vertices", len(mesh.Vertices)),
		zap.Int("triangles", mesh.TriangleCount()),
	)

	asset := &HeadAsset{Mesh: mesh}
	if mat := m.Material(); mat != nil {
		asset.Shininess = mat.Shininess
	}

	if texturePath == "" {
		texturePath = m.DiffuseMap()
	}
	if texturePath == "" {
		return asset, nil
	}

	img, err := texture.Load(texturePath, texture.Options{MaxSize: maxTextureSize, FlipY: true})
	if err != nil {
		logger.Warn("head texture unavailable, using checkerboard", zap.String("path", texturePath), zap.Error(err))
		asset.Texture = texture.Checker(missingTextureSize, missingTextureSize/8, checkerLight, checkerDark)
		return asset, nil
	}
	asset.Texture = img
	logger.Debug("head texture loaded",
		zap.String("path", texturePath),
		zap.Int("width", img.Bounds().Dx()),
		zap.Int("height", img.Bounds().Dy()),
	)
	return asset, nil
}

// isMissing reports whether err means the file does not exist.
func isMissing(err error) bool {
	return errors.Is(err, fs.ErrNotExist)
}
