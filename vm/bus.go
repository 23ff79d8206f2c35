package vm

import "yarisc32/isa"

// Bus multiplexes word accesses between RAM and an optional memory-mapped
// device. When MaxRAMAddr is unset, all traffic goes to RAM. Otherwise,
// addresses beyond MaxRAMAddr route to the MMIO device at offset
// addr-MaxRAMAddr; everything else routes to RAM.
type Bus struct {
	ram        *RAM
	mmio       MMIODevice
	maxRAMAddr uint32
	hasMaxAddr bool
}

// NewBus constructs a Bus backed by ram only; all addresses route to RAM.
func NewBus(ram *RAM) *Bus {
	return &Bus{ram: ram}
}

// NewBusWithMMIO constructs a Bus that routes addresses greater than
// maxRAMAddr to mmio.
func NewBusWithMMIO(ram *RAM, maxRAMAddr uint32, mmio MMIODevice) *Bus {
	return &Bus{ram: ram, mmio: mmio, maxRAMAddr: maxRAMAddr, hasMaxAddr: true}
}

// Read reads a word from whichever backing store addr routes to.
func (b *Bus) Read(addr uint32) (uint32, error) {
	if !b.hasMaxAddr {
		return b.ram.Read(addr)
	}
	if addr > b.maxRAMAddr {
		if b.mmio == nil {
			return 0, &OutOfBoundsError{Addr: addr, Op: "read"}
		}
		return b.mmio.Read(addr - b.maxRAMAddr)
	}
	return b.ram.Read(addr)
}

// Write writes value to whichever backing store addr routes to, but only
// when flags has MemWrite set; otherwise it is a no-op regardless of
// address, matching the MEM stage's unconditional call to bus.write (§4.5,
// §4.7).
func (b *Bus) Write(addr, value uint32, flags isa.Flags) error {
	if flags&isa.MemWrite == 0 {
		return nil
	}
	if !b.hasMaxAddr {
		return b.ram.Write(addr, value)
	}
	if addr > b.maxRAMAddr {
		if b.mmio == nil {
			return &OutOfBoundsError{Addr: addr, Op: "write"}
		}
		return b.mmio.Write(addr-b.maxRAMAddr, value)
	}
	return b.ram.Write(addr, value)
}
