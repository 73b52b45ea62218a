// Package kernel is the composition root of the simulated device kernel.
//
// Boot constructs one RegionAllocator, one privacy Shield and one power
// Profile, owned exclusively by the returned Core. It then reserves space for
// the security module and runs the shield once on a sample address:
//
//	core, err := kernel.Boot(kernel.DefaultConfig(), kernel.WithLogger(log))
//	if err != nil {
//	    return err
//	}
//	defer core.Shutdown()
//
//	r, err := core.Allocate(8192)
//
// Core is not safe for concurrent use.
package kernel
