package basis

// Handle owns at most one resource together with the function that
// releases it. The release function runs exactly once per owned resource,
// whether triggered by [Handle.Close], [Handle.Reset], or dropping the old
// value during [Handle.Transfer]. A resource detached via
// [Handle.Release] is never released by the handle.
//
// Ownership is exclusive: there is no copy operation, and Transfer empties
// the source handle. A Handle is not internally synchronized; after a
// transfer only the destination's goroutine may touch the resource.
//
// The zero value is an empty handle with no release function.
type Handle[T any] struct {
	res     *T
	release func(*T)
}

// NewHandle creates a handle owning res with the given release function.
// res may be nil for an initially empty handle. A nil release function
// means the resource needs no cleanup beyond dropping the reference.
func NewHandle[T any](res *T, release func(*T)) *Handle[T] {
	return &Handle[T]{res: res, release: release}
}

// Get returns the owned resource, or nil if the handle is empty.
// Ownership does not change.
func (h *Handle[T]) Get() *T {
	return h.res
}

// Ok reports whether the handle currently owns a resource.
func (h *Handle[T]) Ok() bool {
	return h.res != nil
}

// Reset releases the currently owned resource, if any, then adopts res
// (which may be nil). The previous resource is released before the field
// is overwritten, so it can never leak or be released twice.
func (h *Handle[T]) Reset(res *T) {
	if h.res != nil && h.release != nil {
		h.release(h.res)
	}
	h.res = res
}

// Release detaches and returns the owned resource without invoking the
// release function. The handle becomes empty; the caller takes over
// responsibility for the resource.
func (h *Handle[T]) Release() *T {
	res := h.res
	h.res = nil
	return res
}

// Close releases the owned resource if the handle is non-empty, then
// empties the handle. It is idempotent: a second Close, or a Close after
// Release or Transfer, does nothing.
//
// Close always returns nil; it implements [io.Closer] so a Handle can sit
// behind cleanup plumbing that expects one.
func (h *Handle[T]) Close() error {
	if h.res != nil && h.release != nil {
		h.release(h.res)
	}
	h.res = nil
	return nil
}

// Transfer moves ownership from h to dst. Whatever dst held before is
// released first; then dst adopts h's resource and release function and h
// becomes empty, so the release still runs exactly once and only dst will
// trigger it. Transferring a handle to itself is a no-op.
//
// Panics if dst is nil.
func (h *Handle[T]) Transfer(dst *Handle[T]) {
	if dst == nil {
		panic("basis: Transfer requires non-nil destination")
	}
	if dst == h {
		return
	}
	if dst.res != nil && dst.release != nil {
		dst.release(dst.res)
	}
	dst.res = h.res
	dst.release = h.release
	h.res = nil
}
