// This file is part of GopherReality.
//
// GopherReality is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherReality is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherReality.  If not, see <https://www.gnu.org/licenses/>.

package sdlvideo

import (
	"strings"

	"github.com/go-gl/gl/v3.2-core/gl"
	"github.com/jetsetilly/gopherreality/curated"
	"github.com/jetsetilly/gopherreality/logger"
)

// the demo frame is drawn with a single fullscreen triangle, generated in
// the vertex shader from gl_VertexID. no vertex buffers required; the UV of
// the visible quadrant maps the frame texture the right way up.
const vertexShader = `#version 150
out vec2 uv;
void main() {
	float x = float((gl_VertexID & 1) << 2) - 1.0;
	float y = float((gl_VertexID & 2) << 1) - 1.0;
	uv = vec2((x + 1.0) * 0.5, (1.0 - y) * 0.5);
	gl_Position = vec4(x, y, 0.0, 1.0);
}`

const fragmentShader = `#version 150
uniform sampler2D tex;
in vec2 uv;
out vec4 fragColor;
void main() {
	fragColor = texture(tex, uv);
}`

// glRenderer owns the GL objects of the presentation path: one streaming
// texture the size of the demo's visible frame, and the fullscreen triangle
// program. All functions must be called from the main OS thread with the GL
// context current.
type glRenderer struct {
	program uint32
	vao     uint32
	texture uint32

	// current texture dimensions
	width  int32
	height int32
}

func newGlRenderer() (*glRenderer, error) {
	rnd := &glRenderer{}

	err := gl.Init()
	if err != nil {
		return nil, curated.Errorf("sdlvideo: %v", err)
	}

	logger.Logf("glsl", "vendor: %s", gl.GoStr(gl.GetString(gl.VENDOR)))
	logger.Logf("glsl", "renderer: %s", gl.GoStr(gl.GetString(gl.RENDERER)))
	logger.Logf("glsl", "driver: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	rnd.program, err = createProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}

	// core profile requires a bound VAO to draw, even with no attributes
	gl.GenVertexArrays(1, &rnd.vao)

	gl.GenTextures(1, &rnd.texture)
	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.NEAREST)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)

	return rnd, nil
}

func (rnd *glRenderer) destroy() {
	gl.DeleteTextures(1, &rnd.texture)
	gl.DeleteVertexArrays(1, &rnd.vao)
	gl.DeleteProgram(rnd.program)
}

// setFrameSize (re)allocates the streaming texture for a new visible frame
// size.
func (rnd *glRenderer) setFrameSize(width int, height int) {
	rnd.width = int32(width)
	rnd.height = int32(height)

	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA,
		rnd.width, rnd.height, 0,
		gl.RGBA, gl.UNSIGNED_BYTE, nil)
}

// render uploads one frame of packed RGBA pixels and draws it into a
// letterboxed viewport inside the drawable area.
func (rnd *glRenderer) render(pixels []uint32, drawW int32, drawH int32) {
	if rnd.width == 0 || rnd.height == 0 {
		return
	}

	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.TexSubImage2D(gl.TEXTURE_2D, 0, 0, 0,
		rnd.width, rnd.height,
		gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))

	// letterbox bars are plain black
	gl.Viewport(0, 0, drawW, drawH)
	gl.ClearColor(0.0, 0.0, 0.0, 1.0)
	gl.Clear(gl.COLOR_BUFFER_BIT)

	vpX, vpY, vpW, vpH := letterbox(rnd.width, rnd.height, drawW, drawH)
	gl.Viewport(vpX, vpY, vpW, vpH)

	gl.UseProgram(rnd.program)
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, rnd.texture)
	gl.BindVertexArray(rnd.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 3)
}

// letterbox computes the viewport that shows a frame of the given size as
// large as possible inside the drawable area while preserving its aspect
// ratio, centred, with black bars on the longer axis.
func letterbox(frameW int32, frameH int32, drawW int32, drawH int32) (int32, int32, int32, int32) {
	frameAspect := float32(frameW) / float32(frameH)
	drawAspect := float32(drawW) / float32(drawH)

	var vpX, vpY, vpW, vpH int32
	if drawAspect > frameAspect {
		// drawable is wider than the frame. bars left and right
		vpH = drawH
		vpW = int32(float32(drawH) * frameAspect)
		vpX = (drawW - vpW) / 2
		vpY = 0
	} else {
		// drawable is taller than the frame. bars top and bottom
		vpW = drawW
		vpH = int32(float32(drawW) / frameAspect)
		vpX = 0
		vpY = (drawH - vpH) / 2
	}

	return vpX, vpY, vpW, vpH
}

// compile and link the shader program.
func createProgram(vertProgram string, fragProgram string) (uint32, error) {
	program := gl.CreateProgram()

	vertHandle := gl.CreateShader(gl.VERTEX_SHADER)
	fragHandle := gl.CreateShader(gl.FRAGMENT_SHADER)

	glShaderSource := func(handle uint32, source string) {
		csource, free := gl.Strs(source + "\x00")
		defer free()
		gl.ShaderSource(handle, 1, csource, nil)
	}

	glShaderSource(vertHandle, vertProgram)
	glShaderSource(fragHandle, fragProgram)

	gl.CompileShader(vertHandle)
	if log := shaderCompileError(vertHandle); log != "" {
		return 0, curated.Errorf("sdlvideo: vertex shader: %v", log)
	}

	gl.CompileShader(fragHandle)
	if log := shaderCompileError(fragHandle); log != "" {
		return 0, curated.Errorf("sdlvideo: fragment shader: %v", log)
	}

	gl.AttachShader(program, vertHandle)
	gl.AttachShader(program, fragHandle)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		return 0, curated.Errorf("sdlvideo: %v", "cannot link shader program")
	}

	// now that the program has linked we no longer need the individual
	// shaders
	gl.DeleteShader(vertHandle)
	gl.DeleteShader(fragHandle)

	return program, nil
}

// get shader compile errors.
func shaderCompileError(handle uint32) string {
	var isCompiled int32
	gl.GetShaderiv(handle, gl.COMPILE_STATUS, &isCompiled)
	if isCompiled != 0 {
		return ""
	}

	var logLength int32
	gl.GetShaderiv(handle, gl.INFO_LOG_LENGTH, &logLength)
	if logLength == 0 {
		return "unspecified compile error"
	}

	log := strings.Repeat("\x00", int(logLength+1))
	gl.GetShaderInfoLog(handle, logLength, nil, gl.Str(log))
	return log
}
