package vm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yarisc32/isa"
	"yarisc32/vm"
)

func TestBus_NoMMIO_RoutesEverythingToRAM(t *testing.T) {
	ram := vm.NewRAM(8)
	bus := vm.NewBus(ram)
	require.NoError(t, bus.Write(5, 42, isa.MemWrite))
	got, err := bus.Read(5)
	require.NoError(t, err)
	assert.Equal(t, uint32(42), got)
}

func TestBus_Write_IgnoresAddressWithoutMemWriteFlag(t *testing.T) {
	ram := vm.NewRAM(8)
	bus := vm.NewBus(ram)
	require.NoError(t, bus.Write(5, 42, isa.Flags(0)))
	got, err := bus.Read(5)
	require.NoError(t, err)
	assert.Equal(t, uint32(0), got)
}

func TestBus_MMIO_BoundaryIsStrictlyGreaterThan(t *testing.T) {
	ram := vm.NewRAM(2048)
	mmio := vm.NewStdoutDevice(&discard{})
	bus := vm.NewBusWithMMIO(ram, 2047, mmio)

	require.NoError(t, bus.Write(2047, 1, isa.MemWrite))
	_, err := bus.Read(2047)
	require.NoError(t, err, "addr == maxRAMAddr still routes to RAM")

	// addr 2049 -> offset 2 -> append (offset 1, addr 2048, is the flush register)
	require.NoError(t, bus.Write(2049, 'H', isa.MemWrite))
	assert.Equal(t, "H", mmio.Buffered(), "addr > maxRAMAddr routes to MMIO at offset addr-maxRAMAddr")
}

func TestBus_MMIO_OffsetIsAddrMinusMaxRAMAddr(t *testing.T) {
	ram := vm.NewRAM(2048)
	mmio := vm.NewStdoutDevice(&discard{})
	bus := vm.NewBusWithMMIO(ram, 2047, mmio)

	// addr 2048 -> offset 1 -> flush (buffer empty, so this is a no-op flush)
	require.NoError(t, bus.Write(2048, 0, isa.MemWrite))
	assert.Equal(t, "", mmio.Buffered())

	// addr 2049 -> offset 2 -> append
	require.NoError(t, bus.Write(2049, 'x', isa.MemWrite))
	assert.Equal(t, "x", mmio.Buffered())
}

func TestBus_NoMMIODevice_OutOfBoundsBeyondMaxRAMAddr(t *testing.T) {
	ram := vm.NewRAM(8)
	bus := vm.NewBusWithMMIO(ram, 7, nil)
	_, err := bus.Read(8)
	require.Error(t, err)
	var oob *vm.OutOfBoundsError
	assert.ErrorAs(t, err, &oob)
}

type discard struct{}

func (d *discard) Write(p []byte) (int, error) { return len(p), nil }
