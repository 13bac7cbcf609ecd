package bind_group_provider

// BufferWrite describes a pending write of raw bytes into a provider's buffer at a
// specific binding and offset. Writes are staged per-frame and flushed in a single
// batch via the Renderer's WriteBuffers.
type BufferWrite struct {
	Provider BindGroupProvider
	Binding  int
	Offset   uint64
	Data     []byte
}
