package rendergraph

import vk "github.com/NOT-REAL-GAMES/anvil"

// insertBarriers implements spec.md §4.3.2: for every IMAGE input whose
// current layout differs from the pass-implied read layout, and every
// IMAGE output whose current layout differs from the pass-implied write
// layout, append an image barrier and update current_layout. One
// PipelineBarriers call is issued per pass if the batch is non-empty.
func (g *Graph) insertBarriers(cmd vk.CommandBuffer, slot *FrameSlot, pass Pass) {
	var barriers []vk.ImageMemoryBarrier

	for _, h := range pass.Inputs {
		r := &slot.Resources[h]
		if r.Kind != KindImage {
			continue
		}
		want := r.readLayout()
		if r.CurrentLayout == want {
			continue
		}
		barriers = append(barriers, g.transitionBarrier(r, want))
		r.CurrentLayout = want
	}

	for _, h := range pass.Outputs {
		r := &slot.Resources[h]
		if r.Kind != KindImage {
			continue
		}
		want := r.writeLayout()
		if r.CurrentLayout == want {
			continue
		}
		barriers = append(barriers, g.transitionBarrier(r, want))
		r.CurrentLayout = want
	}

	if len(barriers) == 0 {
		return
	}
	cmd.PipelineBarrier(
		vk.PIPELINE_STAGE_TOP_OF_PIPE_BIT,
		vk.PIPELINE_STAGE_BOTTOM_OF_PIPE_BIT,
		0,
		barriers,
	)
}

func (g *Graph) transitionBarrier(r *Resource, newLayout vk.ImageLayout) vk.ImageMemoryBarrier {
	aspect := vk.IMAGE_ASPECT_COLOR_BIT
	if r.IsDepth {
		aspect = vk.IMAGE_ASPECT_DEPTH_BIT
	}
	return vk.ImageMemoryBarrier{
		SrcAccessMask:       vk.ACCESS_SHADER_READ_BIT | vk.ACCESS_COLOR_ATTACHMENT_WRITE_BIT,
		DstAccessMask:       vk.ACCESS_SHADER_READ_BIT | vk.ACCESS_COLOR_ATTACHMENT_WRITE_BIT,
		OldLayout:           r.CurrentLayout,
		NewLayout:           newLayout,
		SrcQueueFamilyIndex: g.QueueFamilyIndex,
		DstQueueFamilyIndex: g.QueueFamilyIndex,
		Image:               r.Image,
		SubresourceRange: vk.ImageSubresourceRange{
			AspectMask:     aspect,
			BaseMipLevel:   0,
			LevelCount:     1,
			BaseArrayLayer: 0,
			LayerCount:     1,
		},
	}
}

// renderingInfo builds the dynamic-rendering attachment set a pass's
// declared image outputs imply: color outputs become ColorAttachments,
// the one permitted depth output becomes DepthAttachment. A resource
// being written for the first time this frame (CurrentLayout still
// UNDEFINED, recorded by Execute before insertBarriers ran) clears;
// otherwise it loads, preserving whatever an earlier pass drew there
// (spec.md §4.3.4's passes draw atop skybox/shadow output rather than
// each clearing the framebuffer). ok is false when the pass has no
// image outputs (a compute-only or buffer-only pass needs no rendering
// scope).
func (g *Graph) renderingInfo(slot *FrameSlot, pass Pass, firstUse map[ResourceHandle]bool) (vk.RenderingInfo, bool) {
	var info vk.RenderingInfo
	var have bool

	loadOp := func(h ResourceHandle) vk.AttachmentLoadOp {
		if firstUse[h] {
			return vk.ATTACHMENT_LOAD_OP_CLEAR
		}
		return vk.ATTACHMENT_LOAD_OP_LOAD
	}

	for _, h := range pass.Outputs {
		r := &slot.Resources[h]
		if r.Kind != KindImage {
			continue
		}
		if !have {
			info.RenderArea = vk.Rect2D{
				Offset: vk.Offset2D{X: 0, Y: 0},
				Extent: vk.Extent2D{Width: r.Extent.Width, Height: r.Extent.Height},
			}
			info.LayerCount = 1
			have = true
		}
		att := vk.RenderingAttachmentInfo{
			ImageView:   r.View,
			ImageLayout: r.writeLayout(),
			LoadOp:      loadOp(h),
			StoreOp:     vk.ATTACHMENT_STORE_OP_STORE,
		}
		if r.IsDepth {
			att.ClearValue.DepthStencil = vk.ClearDepthStencilValue{Depth: 1}
			depth := att
			info.DepthAttachment = &depth
		} else {
			info.ColorAttachments = append(info.ColorAttachments, att)
		}
	}
	return info, have
}

// Execute allocates a graphics command pool/buffer, performs every
// staged copy from Compile, then walks the execution order inserting
// barriers and invoking each pass, and finally writes the scene
// constant-buffer (spec.md §4.3.1).
func (g *Graph) Execute(slotIdx int) error {
	slot := g.Slots[slotIdx]
	if slot.State != Compiled {
		return ErrWrongState
	}

	pool, err := g.Device.CreateCommandPool(&vk.CommandPoolCreateInfo{
		Flags:            vk.COMMAND_POOL_CREATE_TRANSIENT_BIT,
		QueueFamilyIndex: g.QueueFamilyIndex,
	})
	if err != nil {
		return err
	}
	bufs, err := g.Device.AllocateCommandBuffers(&vk.CommandBufferAllocateInfo{
		CommandPool: pool, Level: vk.COMMAND_BUFFER_LEVEL_PRIMARY, CommandBufferCount: 1,
	})
	if err != nil {
		g.Device.DestroyCommandPool(pool)
		return err
	}
	cmd := bufs[0]
	slot.CommandPool = pool
	slot.CommandBuffer = cmd

	if err := cmd.Begin(&vk.CommandBufferBeginInfo{Flags: vk.COMMAND_BUFFER_USAGE_ONE_TIME_SUBMIT_BIT}); err != nil {
		return err
	}

	for _, u := range slot.bufferUploads {
		cmd.CmdCopyBuffer(slot.ringBuffer, slot.FrameBuffer.Buffer, []vk.BufferCopy{
			{SrcOffset: uint64(u.ringOffset), DstOffset: u.frameOffset, Size: u.size},
		})
	}
	for _, u := range slot.imageUploads {
		r := &slot.Resources[u.resource]
		cmd.CopyBufferToImage(slot.ringBuffer, r.Image, vk.IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL, []vk.BufferImageCopy{
			{
				BufferOffset:     uint64(u.ringOffset),
				ImageSubresource: vk.ImageSubresourceLayers{AspectMask: vk.IMAGE_ASPECT_COLOR_BIT, LayerCount: 1},
				ImageExtent:      r.Extent,
			},
		})
		r.CurrentLayout = vk.IMAGE_LAYOUT_TRANSFER_DST_OPTIMAL
	}

	for _, idx := range slot.ExecutionOrder {
		pass := slot.Passes[idx]

		// A resource's CurrentLayout is still UNDEFINED here, before
		// insertBarriers transitions it to the pass's write layout; that
		// tells us whether this is the resource's first use this frame,
		// which decides CLEAR vs LOAD for the attachment insertBarriers
		// is about to put it into.
		firstUse := make(map[ResourceHandle]bool, len(pass.Outputs))
		for _, h := range pass.Outputs {
			if slot.Resources[h].Kind == KindImage {
				firstUse[h] = slot.Resources[h].CurrentLayout == vk.IMAGE_LAYOUT_UNDEFINED
			}
		}

		g.insertBarriers(cmd, slot, pass)

		if pass.ManualRendering {
			pass.Fn(cmd, g, slotIdx)
			continue
		}
		if info, ok := g.renderingInfo(slot, pass, firstUse); ok {
			cmd.BeginRendering(&info)
			pass.Fn(cmd, g, slotIdx)
			cmd.EndRendering()
		} else {
			pass.Fn(cmd, g, slotIdx)
		}
	}

	if g.WriteSceneConstants != nil {
		payload := g.WriteSceneConstants(slotIdx)
		if len(payload) > 0 {
			offset, err := slot.FrameBuffer.Reserve(uint64(len(payload)))
			if err == nil {
				slot.FrameBuffer.MemcpyInto(offset, payload)
			}
		}
	}

	if err := cmd.End(); err != nil {
		return err
	}
	slot.State = Submitted
	return nil
}

// Submit dispatches the recorded command buffer; the fence value it
// will signal was recorded by Compile in slot.FenceValue. The caller signals completion
// back to the graph later via NotifyCompleted.
func (g *Graph) Submit(slotIdx int, waitSemaphores []vk.Semaphore, waitStages []vk.PipelineStageFlags, signalSemaphores []vk.Semaphore, fence vk.Fence) error {
	slot := g.Slots[slotIdx]
	if slot.State != Submitted {
		return ErrWrongState
	}
	return g.Queue.Submit([]vk.SubmitInfo{{
		WaitSemaphores:   waitSemaphores,
		WaitDstStageMask: waitStages,
		CommandBuffers:   []vk.CommandBuffer{slot.CommandBuffer},
		SignalSemaphores: signalSemaphores,
	}}, fence)
}

// Finish marks slot Finished and frees its transient command pool. The
// caller must only call this after confirming slot.FenceValue has
// completed on the GPU (usually via NotifyCompleted).
func (g *Graph) Finish(slotIdx int) {
	slot := g.Slots[slotIdx]
	g.Device.FreeCommandBuffers(slot.CommandPool, []vk.CommandBuffer{slot.CommandBuffer})
	g.Device.DestroyCommandPool(slot.CommandPool)
	slot.State = Finished
}
