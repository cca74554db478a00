// Package material implements the master-material / instance registry and
// the shader-effect cache of spec.md §4.4, compiling GLSL through the
// teacher's shaderc cgo binding (shaderc/shaderc.go) and wiring compiled
// modules into the teacher's Vulkan pipeline layer.
package material

import (
	"encoding/binary"
	"hash/fnv"
	"os"
	"path/filepath"

	vk "github.com/NOT-REAL-GAMES/anvil"
	"github.com/NOT-REAL-GAMES/anvil/logx"
	"github.com/NOT-REAL-GAMES/anvil/shaderc"
)

// ShaderStage mirrors the portable stage enum create-infos are tagged
// with. NextStages is a bitmask participating in the cache hash so that
// two effects compiled for different downstream stages never collide.
type ShaderStage uint32

const (
	StageVertex ShaderStage = 1 << iota
	StageFragment
	StageGeometry
)

func (s ShaderStage) vkStage() vk.ShaderStageFlags {
	switch s {
	case StageVertex:
		return vk.SHADER_STAGE_VERTEX_BIT
	case StageFragment:
		return vk.SHADER_STAGE_FRAGMENT_BIT
	default:
		return vk.SHADER_STAGE_VERTEX_BIT
	}
}

func (s ShaderStage) shadercKind() shaderc.ShaderKind {
	switch s {
	case StageVertex:
		return shaderc.VertexShader
	case StageFragment:
		return shaderc.FragmentShader
	default:
		return shaderc.VertexShader
	}
}

// ShaderEffectHandle indexes the cache's dense effect slice; the zero
// value is invalid.
type ShaderEffectHandle uint32

const invalidEffect ShaderEffectHandle = 0

// ShaderCreateInfo names one shader effect to resolve against the cache:
// a source file, its entry point, its stage, and the stages it feeds
// into, matching spec.md §3.4's cache key.
type ShaderCreateInfo struct {
	Path       string
	Entry      string
	Stage      ShaderStage
	NextStages ShaderStage

	// Source, when non-empty, is compiled directly instead of reading
	// Path off disk; Path still participates in the cache key and in
	// shaderc diagnostics as a synthetic filename. Used for shaders
	// baked into the binary rather than shipped per-project, such as the
	// UI pass's SDF glyph shaders (material/font).
	Source string
}

func effectHash(info ShaderCreateInfo) uint64 {
	h := fnv.New64a()
	h.Write([]byte(info.Entry))
	h.Write([]byte(info.Path))
	var tail [8]byte
	tail[0] = byte(info.Stage)
	tail[4] = byte(info.NextStages)
	h.Write(tail[:])
	return h.Sum64()
}

// cachedEffect is one compiled-and-registered shader effect.
type cachedEffect struct {
	handle ShaderEffectHandle
	info   ShaderCreateInfo
	module vk.ShaderModule
}

// EffectCache owns every compiled shader module reachable from any
// master material. Lookups are keyed by effectHash; a miss compiles the
// source once and may register several effects that share one file in a
// single pass, per spec.md §4.4.
type EffectCache struct {
	device     vk.Device
	shaderRoot string
	logger     *logx.Logger

	compiler shaderc.Compiler
	effects  []cachedEffect
	byHash   map[uint64]ShaderEffectHandle
}

// NewEffectCache creates an empty cache. shaderRoot is the directory
// ShaderCreateInfo.Path entries are resolved against (a project's
// resources/shaders directory, per spec.md §6.2).
func NewEffectCache(device vk.Device, shaderRoot string, logger *logx.Logger) *EffectCache {
	return &EffectCache{
		device:     device,
		shaderRoot: shaderRoot,
		logger:     logger,
		compiler:   shaderc.NewCompiler(),
		effects:    make([]cachedEffect, 1), // index 0 reserved for invalidEffect
		byHash:     make(map[uint64]ShaderEffectHandle),
	}
}

// Release destroys every compiled shader module and the underlying
// shaderc compiler instance.
func (c *EffectCache) Release() {
	for _, e := range c.effects[1:] {
		c.device.DestroyShaderModule(e.module)
	}
	c.compiler.Release()
}

// Module returns the Vulkan shader module a previously resolved handle
// refers to.
func (c *EffectCache) Module(h ShaderEffectHandle) vk.ShaderModule {
	return c.effects[h].module
}

// Stage returns the shader stage a handle was compiled for.
func (c *EffectCache) Stage(h ShaderEffectHandle) ShaderStage {
	return c.effects[h].info.Stage
}

// Resolve resolves every entry in infos against the cache. Consecutive
// cache-missing entries that share a source file reuse one read of it;
// a file that reappears after a different one is read again. Each
// missing effect is compiled separately. A compile failure logs the diagnostic and
// leaves that one entry as invalidEffect in the returned slice; callers
// treat any invalid entry as create_master failing overall.
func (c *EffectCache) Resolve(infos []ShaderCreateInfo) []ShaderEffectHandle {
	handles := make([]ShaderEffectHandle, len(infos))

	var sourceBuf []byte
	var sourcePath string

	for i, info := range infos {
		key := effectHash(info)
		if h, ok := c.byHash[key]; ok {
			handles[i] = h
			continue
		}

		path := filepath.Join(c.shaderRoot, info.Path)
		if info.Source != "" {
			path = "inline/" + info.Path
			sourceBuf, sourcePath = []byte(info.Source), path
		} else if path != sourcePath {
			buf, err := os.ReadFile(path)
			if err != nil {
				c.logger.Log(logx.Medium, "material: read shader source %s: %v", path, err)
				handles[i] = invalidEffect
				continue
			}
			sourceBuf, sourcePath = buf, path
		}

		module, err := c.compile(sourceBuf, path, info)
		if err != nil {
			c.logger.Log(logx.Medium, "material: compile %s (entry %s): %v", path, info.Entry, err)
			handles[i] = invalidEffect
			continue
		}

		handle := ShaderEffectHandle(len(c.effects))
		c.effects = append(c.effects, cachedEffect{handle: handle, info: info, module: module})
		c.byHash[key] = handle
		handles[i] = handle
	}

	return handles
}

func (c *EffectCache) compile(source []byte, filename string, info ShaderCreateInfo) (vk.ShaderModule, error) {
	opts := shaderc.NewCompileOptions()
	defer opts.Release()
	opts.SetTargetEnv(shaderc.TargetEnvVulkan, shaderc.EnvVersionVulkan_1_3)
	opts.SetOptimizationLevel(shaderc.OptimizationLevelPerformance)

	result, err := c.compiler.CompileIntoSPV(string(source), filename, info.Stage.shadercKind(), opts)
	if err != nil {
		return vk.ShaderModule{}, err
	}
	defer result.Release()

	spirv := result.GetBytes()
	code := make([]uint32, len(spirv)/4)
	for i := range code {
		code[i] = binary.LittleEndian.Uint32(spirv[i*4:])
	}
	return c.device.CreateShaderModule(&vk.ShaderModuleCreateInfo{Code: code})
}
