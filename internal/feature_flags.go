package internal

// FeatureFlagStrictAllocLimit changes how a buffer's configured maxSize is
// enforced when growing.
//
// When true, a buffer that would need to grow past its maxSize reports
// allocation failure. This is the deterministic stand-in this package uses
// for an allocator-hook failure, since Go slices otherwise grow without
// ever failing.
//
// When false, maxSize is advisory only and buffers grow without bound
// regardless of the configured limit.
var FeatureFlagStrictAllocLimit = true
