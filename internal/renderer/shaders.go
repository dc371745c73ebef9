package renderer

import (
	"strings"

	"github.com/CharlieDoesDev/DidItHappen/internal/logger"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"
)

// =============================================================
//
//	Shaders
//
// =============================================================
type Shader struct {
	vertexSource   string
	fragmentSource string
	program        uint32
}

func (shader *Shader) Use() {
	gl.UseProgram(shader.program)
}

func (shader *Shader) SetVec3(name string, value mgl32.Vec3) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform3f(location, value.X(), value.Y(), value.Z())
}

func (shader *Shader) SetFloat(name string, value float32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1f(location, value)
}

func (shader *Shader) SetInt(name string, value int32) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.Uniform1i(location, value)
}

func (shader *Shader) SetBool(name string, value bool) {
	var v int32
	if value {
		v = 1
	}
	shader.SetInt(name, v)
}

func (shader *Shader) SetMat4(name string, value mgl32.Mat4) {
	location := gl.GetUniformLocation(shader.program, gl.Str(name+"\x00"))
	gl.UniformMatrix4fv(location, 1, false, &value[0])
}

func (shader *Shader) Compile() {
	vertexShader := GenShader(shader.vertexSource, gl.VERTEX_SHADER)
	fragmentShader := GenShader(shader.fragmentSource, gl.FRAGMENT_SHADER)
	shader.program = GenShaderProgram(vertexShader, fragmentShader)
}

func GenShader(source string, shaderType uint32) uint32 {
	shader := gl.CreateShader(shaderType)
	cSources, free := gl.Strs(source)
	gl.ShaderSource(shader, 1, cSources, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetShaderInfoLog(shader, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to compile shader", zap.Uint32("type", shaderType), zap.String("log", log))
	}

	return shader
}

func GenShaderProgram(vertexShader, fragmentShader uint32) uint32 {
	program := gl.CreateProgram()
	gl.AttachShader(program, vertexShader)
	gl.AttachShader(program, fragmentShader)
	gl.LinkProgram(program)

	var status int32
	gl.GetProgramiv(program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLength int32
		gl.GetProgramiv(program, gl.INFO_LOG_LENGTH, &logLength)

		log := strings.Repeat("\x00", int(logLength+1))
		gl.GetProgramInfoLog(program, logLength, nil, gl.Str(log))

		logger.Log.Error("Failed to link program", zap.String("log", log))
	}
	gl.DetachShader(program, vertexShader)
	gl.DeleteShader(vertexShader)
	gl.DetachShader(program, fragmentShader)
	gl.DeleteShader(fragmentShader)
	return program
}

var sceneVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition; // Vertex position
layout(location = 1) in vec2 inTexCoord; // Texture Coordinate
layout(location = 2) in vec3 inNormal;   // Vertex normal

uniform mat4 model;
uniform mat4 viewProjection;

out vec3 Normal;   // Pass normal to fragment shader
out vec3 FragPos;  // Pass position to fragment shader

void main() {
    FragPos = vec3(model * vec4(inPosition, 1.0));
    Normal = mat3(model) * inNormal; // Valid while the model matrix has no non-uniform scaling

    gl_Position = viewProjection * model * vec4(inPosition, 1.0);
}

` + "\x00"

var sceneFragmentShaderSource = `#version 330 core
in vec3 Normal;
in vec3 FragPos;

#define MAX_LIGHTS 4

struct Light {
    int isDirectional;
    vec3 position;
    vec3 direction;
    vec3 color;
    float intensity;
    float ambientStrength;
    float constantAtten;
    float linearAtten;
    float quadraticAtten;
};

uniform int lightCount;
uniform Light lights[MAX_LIGHTS];
uniform vec3 viewPos;
uniform vec3 diffuseColor;
uniform vec3 specularColor;
uniform float shininess;
uniform float alpha;

uniform int fogEnabled;
uniform vec3 fogColor;
uniform float fogNear;
uniform float fogFar;

out vec4 FragColor;

void main() {
    vec3 norm = normalize(Normal);
    vec3 viewDir = normalize(viewPos - FragPos);
    vec3 result = vec3(0.0);

    for (int i = 0; i < lightCount; i++) {
        vec3 lightDir;
        float attenuation = 1.0;
        if (lights[i].isDirectional == 1) {
            lightDir = normalize(lights[i].direction);
        } else {
            lightDir = normalize(lights[i].position - FragPos);
            float dist = length(lights[i].position - FragPos);
            attenuation = 1.0 / (lights[i].constantAtten + lights[i].linearAtten * dist + lights[i].quadraticAtten * dist * dist);
        }

        vec3 ambient = lights[i].ambientStrength * lights[i].color * diffuseColor;

        float diff = max(dot(norm, lightDir), 0.0);
        vec3 diffuse = diff * lights[i].color * diffuseColor;

        vec3 reflectDir = reflect(-lightDir, norm);
        float spec = pow(max(dot(viewDir, reflectDir), 0.0), shininess);
        vec3 specular = spec * lights[i].color * specularColor;

        result += (ambient + diffuse + specular) * lights[i].intensity * attenuation;
    }

    if (fogEnabled == 1) {
        float dist = length(viewPos - FragPos);
        float fogFactor = clamp((fogFar - dist) / (fogFar - fogNear), 0.0, 1.0);
        result = mix(fogColor, result, fogFactor);
    }

    FragColor = vec4(result, alpha);
}
` + "\x00"

var particleVertexShaderSource = `#version 330 core

layout(location = 0) in vec3 inPosition;

uniform mat4 viewProjection;
uniform vec3 viewPos;
uniform float pointSize;

out float viewDistance;

void main() {
    gl_Position = viewProjection * vec4(inPosition, 1.0);
    viewDistance = length(viewPos - inPosition);
    // Shrink points with distance so far particles don't dominate
    gl_PointSize = pointSize / max(viewDistance * 0.1, 1.0);
}
` + "\x00"

var particleFragmentShaderSource = `#version 330 core

in float viewDistance;

uniform vec3 particleColor;

uniform int fogEnabled;
uniform vec3 fogColor;
uniform float fogNear;
uniform float fogFar;

out vec4 FragColor;

void main() {
    // Round point sprite with soft edges
    vec2 coord = gl_PointCoord - vec2(0.5);
    float r = length(coord);
    if (r > 0.5) {
        discard;
    }
    float fade = 1.0 - smoothstep(0.35, 0.5, r);

    vec3 color = particleColor;
    if (fogEnabled == 1) {
        float fogFactor = clamp((fogFar - viewDistance) / (fogFar - fogNear), 0.0, 1.0);
        color = mix(fogColor, color, fogFactor);
    }

    FragColor = vec4(color, fade);
}
` + "\x00"

func InitSceneShader() Shader {
	return Shader{
		vertexSource:   sceneVertexShaderSource,
		fragmentSource: sceneFragmentShaderSource,
	}
}

func InitParticleShader() Shader {
	return Shader{
		vertexSource:   particleVertexShaderSource,
		fragmentSource: particleFragmentShaderSource,
	}
}
