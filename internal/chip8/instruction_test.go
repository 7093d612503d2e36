package chip8

import (
	"testing"

	"github.com/retroenv/retrogolib/assert"
)

func TestDecodeFields(t *testing.T) {
	ins := Decode(0xD12F)

	assert.Equal(t, KindDraw, ins.Kind)
	assert.Equal(t, uint16(0xD12F), ins.Word)
	assert.Equal(t, uint8(0x1), ins.X)
	assert.Equal(t, uint8(0x2), ins.Y)
	assert.Equal(t, uint8(0xF), ins.N)
	assert.Equal(t, uint8(0x2F), ins.NN)
	assert.Equal(t, uint16(0x12F), ins.NNN)
}

func TestDecodeKinds(t *testing.T) {
	tests := []struct {
		word uint16
		kind Kind
	}{
		{0x0000, KindSys},
		{0x0123, KindSys},
		{0x00E0, KindCls},
		{0x00EE, KindRet},
		{0x1234, KindJump},
		{0x2345, KindCall},
		{0x3A12, KindSkipEqImm},
		{0x4A12, KindSkipNeImm},
		{0x5AB0, KindSkipEqReg},
		{0x5AB1, KindUnknown},
		{0x6A12, KindLoadImm},
		{0x7A12, KindAddImm},
		{0x8AB0, KindMove},
		{0x8AB1, KindOr},
		{0x8AB2, KindAnd},
		{0x8AB3, KindXor},
		{0x8AB4, KindAdd},
		{0x8AB5, KindSub},
		{0x8AB6, KindShr},
		{0x8AB7, KindSubn},
		{0x8AB8, KindUnknown},
		{0x8ABE, KindShl},
		{0x9AB0, KindSkipNeReg},
		{0x9AB4, KindUnknown},
		{0xA123, KindLoadIndex},
		{0xB123, KindJumpOffset},
		{0xC1FF, KindRandom},
		{0xD125, KindDraw},
		{0xE19E, KindSkipKey},
		{0xE1A1, KindSkipNotKey},
		{0xE1A2, KindUnknown},
		{0xF107, KindLoadDelay},
		{0xF10A, KindWaitKey},
		{0xF115, KindSetDelay},
		{0xF118, KindSetSound},
		{0xF11E, KindAddIndex},
		{0xF129, KindFont},
		{0xF133, KindBCD},
		{0xF155, KindStore},
		{0xF165, KindLoad},
		{0xF1FF, KindUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			assert.Equal(t, tt.kind, Decode(tt.word).Kind)
		})
	}
}

func TestEncodeDecodeAllKinds(t *testing.T) {
	for _, kind := range Kinds() {
		for x := uint8(0); x < RegisterCount; x++ {
			word := Encode(kind, x, 0xF-x, x, 0x2A0|uint16(x))
			if kind == KindSys && (word == 0x00E0 || word == 0x00EE) {
				continue
			}
			ins := Decode(word)
			assert.Equal(t, kind, ins.Kind, "word %04X", word)
		}
	}
}

func TestKinds(t *testing.T) {
	all := Kinds()
	assert.Len(t, all, int(kindCount)-1)
	for _, kind := range all {
		assert.True(t, kind != KindUnknown)
		assert.NotEmpty(t, kind.String())
	}
	assert.Equal(t, "kind(200)", Kind(200).String())
}
