package m1asm

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEncodeWordFitsIn40Bits is invariant 5 of §8.
func TestEncodeWordFitsIn40Bits(t *testing.T) {
	mi := MicroInstruction{
		Lb: 0xF, Rb: 0xF, Al: 7, Sh: 7, Sb: 0xF, Mm: 3, Sq: SqNSQ,
		Low: LowHalf{Kind: LowTsAndEx, Ts: 7, Ex: 0xF},
	}
	word, err := Encode(mi)
	require.Nil(t, err)
	assert.Zero(t, word>>40)
}

// TestEncodeBranchAddressScatter mirrors §8 scenario S5.
func TestEncodeBranchAddressScatter(t *testing.T) {
	mi := MicroInstruction{
		Sq: SqB,
		Low: LowHalf{
			Kind: LowWithReference,
			Ex:   0xF,
			Seq:  SqB,
			Ref:  Reference{Resolved: true, Addr: 0xABC},
		},
	}
	word, err := Encode(mi)
	require.Nil(t, err)
	low16 := uint16(word & 0xFFFF)
	want := uint16((0xABC&0xE00)<<4) | uint16(0xF)<<9 | uint16(0xABC&0x1FF)
	assert.Equal(t, want, low16)
}

func TestEncodeUnresolvedReferenceFails(t *testing.T) {
	mi := MicroInstruction{
		Low: LowHalf{Kind: LowWithReference, Ref: Reference{Name: "X"}},
	}
	_, err := Encode(mi)
	require.NotNil(t, err)
	assert.Equal(t, ErrUnresolvedLabel, err.Kind)
}

// TestEncodeFieldPlacement checks each fixed-width code lands in its
// documented bit position (invariant 6: round-trip decode).
func TestEncodeFieldPlacement(t *testing.T) {
	mi := MicroInstruction{
		Lb: 0x3, Rb: 0x5, Al: 0x2, Sh: 0x6, Sb: 0x9, Mm: 0x1, Sq: SqRTN,
		Low: LowHalf{Kind: LowTsAndEx, Ts: 0x4, Ex: 0xA},
	}
	word, err := Encode(mi)
	require.Nil(t, err)

	assert.Equal(t, uint64(0x3), (word>>36)&0xF)
	assert.Equal(t, uint64(0x5), (word>>32)&0xF)
	assert.Equal(t, uint64(0x2), (word>>29)&0x7)
	assert.Equal(t, uint64(0x6), (word>>26)&0x7)
	assert.Equal(t, uint64(0x9), (word>>22)&0xF)
	assert.Equal(t, uint64(0x1), (word>>20)&0x3)
	assert.Equal(t, uint64(SqRTN), (word>>16)&0xF)
	assert.Equal(t, uint64(0x4), (word>>13)&0x7)
	assert.Equal(t, uint64(0xA), (word>>9)&0xF)
}
