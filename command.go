package vulkango

import "unsafe"

// CommandBuffer methods delegate to the linked Backend, passing the
// buffer itself as the first argument per backend.go's Backend
// interface.

func (cmd CommandBuffer) Begin(beginInfo *CommandBufferBeginInfo) error {
	return cmd.backend.Begin(cmd, beginInfo)
}

func (cmd CommandBuffer) End() error {
	return cmd.backend.End(cmd)
}

func (cmd CommandBuffer) BeginRendering(renderingInfo *RenderingInfo) {
	cmd.backend.BeginRendering(cmd, renderingInfo)
}

func (cmd CommandBuffer) EndRendering() {
	cmd.backend.EndRendering(cmd)
}

func (cmd CommandBuffer) PipelineBarrier(srcStageMask, dstStageMask PipelineStageFlags, dependencyFlags uint32, imageMemoryBarriers []ImageMemoryBarrier) {
	cmd.backend.PipelineBarrier(cmd, srcStageMask, dstStageMask, dependencyFlags, imageMemoryBarriers)
}

func (cmd CommandBuffer) BindPipeline(bindPoint PipelineBindPoint, pipeline Pipeline) {
	cmd.backend.BindPipeline(cmd, bindPoint, pipeline)
}

func (cmd CommandBuffer) SetViewport(firstViewport uint32, viewports []Viewport) {
	cmd.backend.SetViewport(cmd, firstViewport, viewports)
}

func (cmd CommandBuffer) SetScissor(firstScissor uint32, scissors []Rect2D) {
	cmd.backend.SetScissor(cmd, firstScissor, scissors)
}

func (cmd CommandBuffer) BindIndexBuffer(buffer Buffer, offset uint64, indexType IndexType) {
	cmd.backend.BindIndexBuffer(cmd, buffer, offset, indexType)
}

func (cmd CommandBuffer) BindVertexBuffers(firstBinding uint32, buffers []Buffer, offsets []uint64) {
	cmd.backend.BindVertexBuffers(cmd, firstBinding, buffers, offsets)
}

func (cmd CommandBuffer) CmdPushConstants(layout PipelineLayout, stageFlags ShaderStageFlags, offset, size uint32, pValues unsafe.Pointer) {
	cmd.backend.CmdPushConstants(cmd, layout, stageFlags, offset, size, pValues)
}

func (cmd CommandBuffer) Draw(vertexCount, instanceCount, firstVertex, firstInstance uint32) {
	cmd.backend.Draw(cmd, vertexCount, instanceCount, firstVertex, firstInstance)
}

func (cmd CommandBuffer) DrawIndexed(indexCount, instanceCount, firstIndex uint32, vertexOffset int32, firstInstance uint32) {
	cmd.backend.DrawIndexed(cmd, indexCount, instanceCount, firstIndex, vertexOffset, firstInstance)
}

func (cmd CommandBuffer) CmdCopyBuffer(srcBuffer, dstBuffer Buffer, regions []BufferCopy) {
	cmd.backend.CmdCopyBuffer(cmd, srcBuffer, dstBuffer, regions)
}

func (cmd CommandBuffer) CopyBufferToImage(srcBuffer Buffer, dstImage Image, dstImageLayout ImageLayout, regions []BufferImageCopy) {
	cmd.backend.CopyBufferToImage(cmd, srcBuffer, dstImage, dstImageLayout, regions)
}
