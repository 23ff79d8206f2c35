package vm_test

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"yarisc32/vm"
)

func TestRAM_ReadWrite(t *testing.T) {
	ram := vm.NewRAM(4)
	require.NoError(t, ram.Write(2, 0xDEADBEEF))
	got, err := ram.Read(2)
	require.NoError(t, err)
	assert.Equal(t, uint32(0xDEADBEEF), got)
}

func TestRAM_OutOfBounds(t *testing.T) {
	ram := vm.NewRAM(4)
	_, err := ram.Read(4)
	require.Error(t, err)
	assert.Error(t, ram.Write(4, 1))
}

func TestRAM_LoadImage(t *testing.T) {
	ram := vm.NewRAM(2)
	image := make([]byte, 8)
	binary.BigEndian.PutUint32(image[0:4], 1)
	binary.BigEndian.PutUint32(image[4:8], 2)
	require.NoError(t, ram.LoadImage(image))
	w0, _ := ram.Read(0)
	w1, _ := ram.Read(1)
	assert.Equal(t, uint32(1), w0)
	assert.Equal(t, uint32(2), w1)
}

func TestRAM_LoadImageTooLarge(t *testing.T) {
	ram := vm.NewRAM(1)
	image := make([]byte, 8)
	assert.Error(t, ram.LoadImage(image))
}
