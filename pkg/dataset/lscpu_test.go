package dataset

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

var lscpuLog = `Architecture:        x86_64
CPU op-mode(s):      32-bit, 64-bit
Byte Order:          Little Endian
CPU(s):              8
On-line CPU(s) list: 0-7
Thread(s) per core:  2
Core(s) per socket:  4
Socket(s):           1
NUMA node(s):        1
Vendor ID:           GenuineIntel
CPU family:          6
Model:               142
Model name:          Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz
Stepping:            10
CPU MHz:             1900.000
              total        used        free      shared  buff/cache   available
Mem:    16637734912  9064548352  1271418880   958143488  6301767680  6314647552
Swap:    8589930496   303104000  8286826496
`

func TestParseLscpu(t *testing.T) {

	t.Run("ReturnsAllFieldsForWellFormedLog", func(t *testing.T) {

		// act
		hw, err := ParseLscpu(lscpuLog)

		assert.Nil(t, err)
		assert.Equal(t, "x86_64", hw.Architecture)
		assert.Equal(t, "Intel(R) Core(TM) i7-8650U CPU @ 1.90GHz", hw.CPUModelName)
		assert.Equal(t, "142", hw.CPUModelNumber)
		assert.Equal(t, "6", hw.CPUFamily)
		assert.Equal(t, int64(4), hw.CoreCount)
		assert.Equal(t, int64(8), hw.SiblingCount)
		assert.Equal(t, int64(16637734912), hw.RAMSize)
	})

	t.Run("MultipliesCoresPerSocketBySocketCount", func(t *testing.T) {

		// act
		hw, err := ParseLscpu("CPU(s): 64\nCore(s) per socket: 16\nSocket(s): 2\n")

		assert.Nil(t, err)
		assert.Equal(t, int64(32), hw.CoreCount)
		assert.Equal(t, int64(64), hw.SiblingCount)
	})

	t.Run("LeavesFieldAbsentWhenValueFailsToParse", func(t *testing.T) {

		// act
		hw, err := ParseLscpu("Architecture: aarch64\nCPU(s): lots\nMem: plenty\n")

		assert.Nil(t, err)
		assert.Equal(t, "aarch64", hw.Architecture)
		assert.Equal(t, int64(0), hw.SiblingCount)
		assert.Equal(t, int64(0), hw.RAMSize)
	})

	t.Run("RaisesSiblingCountToCoreCountWhenCpusRowIsMissing", func(t *testing.T) {

		// act
		hw, err := ParseLscpu("Core(s) per socket: 4\nSocket(s): 2\n")

		assert.Nil(t, err)
		assert.Equal(t, int64(8), hw.CoreCount)
		assert.Equal(t, int64(8), hw.SiblingCount)
		assert.GreaterOrEqual(t, hw.SiblingCount, hw.CoreCount)
	})

	t.Run("IgnoresUnknownLabelsAndMalformedLines", func(t *testing.T) {

		// act
		hw, err := ParseLscpu("Flags: fpu vme de pse\nnonsense line without separator\nArchitecture: s390x\n")

		assert.Nil(t, err)
		assert.Equal(t, "s390x", hw.Architecture)
	})

	t.Run("ReturnsErrEmptyHwInfoWhenNoFieldParses", func(t *testing.T) {

		// act
		_, err := ParseLscpu("completely unrelated text\nwith: no known labels\n")

		assert.NotNil(t, err)
		assert.ErrorIs(t, err, ErrEmptyHwInfo)
	})

	t.Run("ReturnsErrEmptyHwInfoForEmptyInput", func(t *testing.T) {

		// act
		_, err := ParseLscpu("")

		assert.ErrorIs(t, err, ErrEmptyHwInfo)
	})

	t.Run("DoesNotConfuseModelRowWithModelNameRow", func(t *testing.T) {

		// act
		hw, err := ParseLscpu("Model: 49\nModel name: AMD EPYC 7302 16-Core Processor\n")

		assert.Nil(t, err)
		assert.Equal(t, "49", hw.CPUModelNumber)
		assert.Equal(t, "AMD EPYC 7302 16-Core Processor", hw.CPUModelName)
	})
}
