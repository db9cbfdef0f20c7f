package model

import (
	"bufio"
	"bytes"
	"io"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/udhos/gwob"
)

type Material struct {
	Name      string
	Diffuse   mgl32.Vec3
	Specular  mgl32.Vec3
	Shininess float32

	DiffuseTexture  string
	SpecularTexture string
}

func ParseMtl(r io.Reader) (map[string]*Material, error) {
	buf, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	lib, err := gwob.ReadMaterialLibFromReader(bytes.NewReader(buf), parserOptions())
	if err != nil {
		return nil, err
	}

	specularMaps, err := specularMaps(buf)
	if err != nil {
		return nil, err
	}

	materials := make(map[string]*Material, len(lib.Lib))
	for name, m := range lib.Lib {
		materials[name] = &Material{
			Name:            name,
			Diffuse:         mgl32.Vec3(m.Kd),
			Specular:        mgl32.Vec3(m.Ks),
			Shininess:       m.Ns,
			DiffuseTexture:  texturePath(strings.Fields(m.MapKd)),
			SpecularTexture: specularMaps[name],
		}
	}
	return materials, nil
}

// specularMaps collects the map_Ks entries per material, which gwob
// does not read.
func specularMaps(buf []byte) (map[string]string, error) {
	maps := make(map[string]string)
	var current string

	scanner := bufio.NewScanner(bytes.NewReader(buf))
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 {
			continue
		}
		switch fields[0] {
		case "newmtl":
			current = fields[1]
		case "map_Ks":
			maps[current] = texturePath(fields[1:])
		}
	}
	return maps, scanner.Err()
}

// texturePath drops map options such as "-bm 0.5" and keeps the file
// name, normalising Windows separators that exporters like to emit.
func texturePath(fields []string) string {
	if len(fields) == 0 {
		return ""
	}
	return strings.ReplaceAll(fields[len(fields)-1], "\\", "/")
}
