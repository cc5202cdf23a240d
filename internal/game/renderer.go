package game

import (
	"log/slog"
	"unsafe"

	"github.com/rowanlovejoy/bounding-box/internal/assets"
	"github.com/rowanlovejoy/bounding-box/internal/render"

	rl "github.com/gen2brain/raylib-go/raylib"
)

const lightingVS = `#version 330
in vec3 vertexPosition;
in vec2 vertexTexCoord;
in vec3 vertexNormal;
uniform mat4 mvp;
uniform mat4 matNormal;
out vec2 fragTexCoord;
out vec3 fragNormal;
void main() {
    fragTexCoord = vertexTexCoord;
    fragNormal = normalize(vec3(matNormal*vec4(vertexNormal, 0.0)));
    gl_Position = mvp*vec4(vertexPosition, 1.0);
}
`

const lightingFS = `#version 330
in vec2 fragTexCoord;
in vec3 fragNormal;
uniform sampler2D texture0;
uniform vec4 colDiffuse;
uniform vec3 lightDir;
uniform vec4 lightColor;
uniform vec4 ambient;
out vec4 finalColor;
void main() {
    vec4 texel = texture(texture0, fragTexCoord)*colDiffuse;
    float diff = max(dot(normalize(fragNormal), -normalize(lightDir)), 0.0);
    finalColor = vec4(texel.rgb*(ambient.rgb + lightColor.rgb*diff), texel.a);
}
`

var (
	platformColor = rl.NewColor(170, 170, 185, 255)
	goalColor     = rl.Gold
	wireColor     = rl.NewColor(50, 50, 65, 255)
)

// Renderer draws a published frame with a single directional light.
type Renderer struct {
	Shader rl.Shader

	assets *assets.Manager
	log    *slog.Logger
	drawn  int
}

func NewRenderer(log *slog.Logger) *Renderer {
	return &Renderer{
		assets: assets.NewManager(),
		log:    log,
	}
}

// Initialize compiles the lighting shader. Needs a GL context.
func (r *Renderer) Initialize() {
	r.Shader = rl.LoadShaderFromMemory(lightingVS, lightingFS)

	dir := render.LightDirection
	lightDirLoc := rl.GetShaderLocation(r.Shader, "lightDir")
	rl.SetShaderValue(r.Shader, lightDirLoc, []float32{dir.X(), dir.Y(), dir.Z()}, rl.ShaderUniformVec3)

	c := render.LightColor
	lightColorLoc := rl.GetShaderLocation(r.Shader, "lightColor")
	rl.SetShaderValue(r.Shader, lightColorLoc, []float32{c.X(), c.Y(), c.Z(), 1.0}, rl.ShaderUniformVec4)

	ambientLoc := rl.GetShaderLocation(r.Shader, "ambient")
	rl.SetShaderValue(r.Shader, ambientLoc, []float32{0.25, 0.25, 0.3, 1.0}, rl.ShaderUniformVec4)
}

// LoadModel loads a mesh for a platform and binds the lighting shader to
// every material. It has the shape world.AttachModels expects.
func (r *Renderer) LoadModel(path string) (any, error) {
	model, err := r.assets.LoadModel(path)
	if err != nil {
		return nil, err
	}

	materials := unsafe.Slice(model.Materials, model.MaterialCount)
	for i := range materials {
		materials[i].Shader = r.Shader
	}
	r.log.Debug("model loaded", "path", path, "meshes", model.MeshCount)
	return model, nil
}

// Draw renders every model in the frame that the camera can see. It must
// run inside BeginMode3D; the frame's matrices replace raylib's camera.
func (r *Renderer) Draw(f render.Frame, goal string) {
	rl.SetMatrixProjection(render.ToRaylib(f.Projection))
	rl.SetMatrixModelview(render.ToRaylib(f.View))

	frustum := f.Frustum()
	r.drawn = 0

	for _, m := range f.Models {
		if !frustum.ContainsModel(m) {
			continue
		}

		color := platformColor
		if m.Name == goal {
			color = goalColor
		}

		if model, ok := m.Handle.(rl.Model); ok {
			model.Transform = render.ToRaylib(m.Matrix)
			rl.DrawModel(model, rl.Vector3Zero(), 1.0, color)
		} else {
			// No mesh: draw the collision box itself
			center := rl.Vector3Add(m.Position, rl.Vector3Scale(m.Extent, 0.5))
			rl.DrawCubeV(center, m.Extent, color)
			rl.DrawCubeWiresV(center, m.Extent, wireColor)
		}
		r.drawn++
	}
}

// Cached is the number of distinct meshes held by the asset cache.
func (r *Renderer) Cached() int {
	return r.assets.Len()
}

// Drawn is the number of models that survived culling last frame.
func (r *Renderer) Drawn() int {
	return r.drawn
}

func (r *Renderer) Unload() {
	rl.UnloadShader(r.Shader)
	r.assets.Unload()
}
