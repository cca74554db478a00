package material

import (
	"unsafe"

	vk "github.com/NOT-REAL-GAMES/anvil"
	"github.com/NOT-REAL-GAMES/anvil/logx"
)

// PassType is the material's render-graph binding point: global passes
// bind once per frame, scene passes bind per draw against the scene
// descriptor set (spec.md §4.4).
type PassType uint32

const (
	PassGlobal PassType = iota
	PassScene
)

// Kind distinguishes the descriptor-layout set a material pulls in.
type Kind uint32

const (
	Kind3D Kind = iota
	Kind2D
	KindNone
)

// MasterMaterialHandle indexes the registry's master-material slotmap.
// The zero value is invalid.
type MasterMaterialHandle uint32

// MaterialHandle indexes the freelist of per-instance uniform buffers.
// The zero value is invalid.
type MaterialHandle uint32

const (
	invalidMaster   MasterMaterialHandle = 0
	invalidInstance MaterialHandle       = 0
)

// CreateInfo names the shaders and per-instance layout of a new master
// material, mirroring spec.md §4.4's create_master input.
type CreateInfo struct {
	Name         string
	Shaders      []ShaderCreateInfo
	Pass         PassType
	Kind         Kind
	UserDataSize uint32
	CPUWriteable bool
}

type masterMaterial struct {
	name         string
	vertex       ShaderEffectHandle
	fragment     ShaderEffectHandle
	geometry     ShaderEffectHandle
	pass         PassType
	kind         Kind
	userDataSize uint32
	cpuWriteable bool
	layout       vk.PipelineLayout
}

type materialInstance struct {
	master       MasterMaterialHandle
	buffer       vk.Buffer
	memory       vk.DeviceMemory
	mapped       unsafe.Pointer
	userDataSize uint32
	free         bool
}

// Registry owns every master material and instance the engine has
// created, plus the shader-effect cache they resolve against. It is the
// Go analogue of the teacher's static MaterialSystem_inst singleton,
// generalized into an explicit, dependency-injected value instead of a
// process-global.
type Registry struct {
	device         vk.Device
	physicalDevice vk.PhysicalDevice
	logger         *logx.Logger
	cache          *EffectCache

	materialDescLayout vk.DescriptorSetLayout
	materialDescPool   vk.DescriptorPool
	materialDescSet    vk.DescriptorSet
	maxInstances       uint32

	masters   []masterMaterial
	instances []materialInstance
	freeList  []MaterialHandle
}

// NewRegistry creates an empty registry. maxInstances bounds the
// material descriptor array's size (spec.md §3.4's "array-of-uniform-
// buffers indexed by the instance index").
func NewRegistry(device vk.Device, physicalDevice vk.PhysicalDevice, cache *EffectCache, logger *logx.Logger, materialDescLayout vk.DescriptorSetLayout, materialDescPool vk.DescriptorPool, materialDescSet vk.DescriptorSet, maxInstances uint32) *Registry {
	return &Registry{
		device:             device,
		physicalDevice:     physicalDevice,
		logger:             logger,
		cache:              cache,
		materialDescLayout: materialDescLayout,
		materialDescPool:   materialDescPool,
		materialDescSet:    materialDescSet,
		maxInstances:       maxInstances,
		masters:            make([]masterMaterial, 1), // index 0 reserved for invalidMaster
		instances:          make([]materialInstance, 1),
	}
}

// CreateMaster resolves info's shaders against the cache and registers a
// new master material. A shader compile failure leaves existing masters
// untouched and returns invalidMaster after logging the diagnostic, per
// spec.md §4.4's failure semantics.
func (r *Registry) CreateMaster(info CreateInfo) MasterMaterialHandle {
	handles := r.cache.Resolve(info.Shaders)

	m := masterMaterial{
		name:         info.Name,
		pass:         info.Pass,
		kind:         info.Kind,
		userDataSize: info.UserDataSize,
		cpuWriteable: info.CPUWriteable,
	}
	for i, h := range handles {
		if h == invalidEffect {
			r.logger.Log(logx.Medium, "material: create_master %q failed, shader effect %d invalid", info.Name, i)
			return invalidMaster
		}
		switch r.cache.Stage(h) {
		case StageVertex:
			m.vertex = h
		case StageFragment:
			m.fragment = h
		case StageGeometry:
			m.geometry = h
		}
	}

	handle := MasterMaterialHandle(len(r.masters))
	r.masters = append(r.masters, m)
	return handle
}

// Master returns the registered master material a handle refers to.
func (r *Registry) Master(h MasterMaterialHandle) *masterMaterial {
	return &r.masters[h]
}

// CreateInstance allocates a uniform buffer sized to master.UserDataSize,
// maps it persistently if the master was created cpu-writeable, and
// binds it into the material descriptor array at the instance's own
// index (spec.md §4.4's create_instance).
func (r *Registry) CreateInstance(master MasterMaterialHandle) (MaterialHandle, error) {
	m := &r.masters[master]

	buffer, memory, err := r.device.CreateBufferWithMemory(
		uint64(m.userDataSize),
		vk.BUFFER_USAGE_UNIFORM_BUFFER_BIT|vk.BUFFER_USAGE_TRANSFER_DST_BIT,
		memoryProperties(m.cpuWriteable),
		r.physicalDevice,
	)
	if err != nil {
		r.logger.Log(logx.Medium, "material: create_instance for %q: %v", m.name, err)
		return invalidInstance, err
	}

	var mapped unsafe.Pointer
	if m.cpuWriteable {
		mapped, err = r.device.MapMemory(memory, 0, uint64(m.userDataSize))
		if err != nil {
			r.device.FreeMemory(memory)
			r.device.DestroyBuffer(buffer)
			return invalidInstance, err
		}
	}

	inst := materialInstance{
		master:       master,
		buffer:       buffer,
		memory:       memory,
		mapped:       mapped,
		userDataSize: m.userDataSize,
	}

	var handle MaterialHandle
	if n := len(r.freeList); n > 0 {
		handle, r.freeList = r.freeList[n-1], r.freeList[:n-1]
		r.instances[handle] = inst
	} else {
		if uint32(len(r.instances)) >= r.maxInstances {
			r.logger.Log(logx.Medium, "material: instance capacity %d exceeded", r.maxInstances)
			return invalidInstance, errCapacity
		}
		handle = MaterialHandle(len(r.instances))
		r.instances = append(r.instances, inst)
	}

	r.device.UpdateDescriptorSets([]vk.WriteDescriptorSet{{
		DstSet:          r.materialDescSet,
		DstBinding:      perMaterialBinding,
		DstArrayElement: uint32(handle),
		DescriptorType:  vk.DESCRIPTOR_TYPE_UNIFORM_BUFFER,
		BufferInfo: []vk.DescriptorBufferInfo{{
			Buffer: inst.buffer,
			Offset: 0,
			Range:  uint64(inst.userDataSize),
		}},
	}})

	return handle, nil
}

// FreeInstance unmaps (if mapped), destroys the instance's GPU buffer,
// and returns the slot to the freelist.
func (r *Registry) FreeInstance(h MaterialHandle) {
	inst := &r.instances[h]
	if inst.mapped != nil {
		r.device.UnmapMemory(inst.memory)
	}
	r.device.FreeMemory(inst.memory)
	r.device.DestroyBuffer(inst.buffer)
	*inst = materialInstance{}
	r.freeList = append(r.freeList, h)
}

// WriteCPU memcpys bytes through the instance's persistent mapping. It
// panics if the instance was not created cpu-writeable, matching
// spec.md §4.4's write_cpu contract.
func (r *Registry) WriteCPU(h MaterialHandle, bytes []byte) {
	inst := &r.instances[h]
	if inst.mapped == nil {
		panic("material: write_cpu on a non-cpu-writeable instance")
	}
	dst := unsafe.Slice((*byte)(inst.mapped), len(bytes))
	copy(dst, bytes)
}

// Write records a buffer-copy region from src (at srcOffset) into the
// instance's uniform buffer, for instances that are not cpu-writeable.
func (r *Registry) Write(h MaterialHandle, cmd vk.CommandBuffer, src vk.Buffer, srcOffset uint64) {
	inst := &r.instances[h]
	if inst.mapped != nil {
		r.logger.Log(logx.Optimization, "material: write() on a cpu-writeable instance; write_cpu is cheaper")
	}
	cmd.CmdCopyBuffer(src, inst.buffer, []vk.BufferCopy{{
		SrcOffset: srcOffset,
		DstOffset: 0,
		Size:      uint64(inst.userDataSize),
	}})
}

// Bind binds the master's shader stages as a graphics pipeline state and
// returns the pipeline layout push constants are written through.
func (r *Registry) Bind(cmd vk.CommandBuffer, pipeline vk.Pipeline, master MasterMaterialHandle) vk.PipelineLayout {
	cmd.BindPipeline(vk.PIPELINE_BIND_POINT_GRAPHICS, pipeline)
	return r.masters[master].layout
}

func memoryProperties(cpuWriteable bool) vk.MemoryPropertyFlags {
	if cpuWriteable {
		return vk.MEMORY_PROPERTY_HOST_VISIBLE_BIT | vk.MEMORY_PROPERTY_HOST_COHERENT_BIT
	}
	return vk.MEMORY_PROPERTY_DEVICE_LOCAL_BIT
}

const perMaterialBinding uint32 = 0

var errCapacity = materialError("material: capacity exceeded")

type materialError string

func (e materialError) Error() string { return string(e) }
