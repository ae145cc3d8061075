package sprite

import (
	"errors"
	"testing"

	"github.com/gogpu/sprite/gpucore"
)

// makeItems builds sequenced items from parallel texture/key slices.
func makeItems(texs []uint64, keys []float32) []DrawItem {
	out := make([]DrawItem, len(texs))
	for i := range texs {
		out[i] = DrawItem{
			Texture:  gpucore.TextureID(texs[i]),
			SortKey:  keys[i],
			Sequence: uint32(i),
		}
	}
	return out
}

func TestSortDeferredKeepsOrder(t *testing.T) {
	its := makeItems([]uint64{3, 1, 2}, []float32{0.9, 0.1, 0.5})
	if err := sortItems(its, SortDeferred); err != nil {
		t.Fatalf("sortItems: %v", err)
	}
	for i, it := range its {
		if it.Sequence != uint32(i) {
			t.Errorf("position %d holds sequence %d", i, it.Sequence)
		}
	}
}

func TestSortTextureGroupsAndStays(t *testing.T) {
	its := makeItems([]uint64{2, 1, 2, 1}, []float32{0, 0, 0, 0})
	if err := sortItems(its, SortTexture); err != nil {
		t.Fatalf("sortItems: %v", err)
	}
	wantTex := []uint64{1, 1, 2, 2}
	wantSeq := []uint32{1, 3, 0, 2}
	for i := range its {
		if uint64(its[i].Texture) != wantTex[i] || its[i].Sequence != wantSeq[i] {
			t.Errorf("position %d = tex %d seq %d, want tex %d seq %d",
				i, its[i].Texture, its[i].Sequence, wantTex[i], wantSeq[i])
		}
	}
}

func TestSortDepthDirections(t *testing.T) {
	ftb := makeItems([]uint64{1, 1, 1}, []float32{0.5, 0.1, 0.9})
	if err := sortItems(ftb, SortFrontToBack); err != nil {
		t.Fatalf("sortItems: %v", err)
	}
	if ftb[0].SortKey != 0.1 || ftb[1].SortKey != 0.5 || ftb[2].SortKey != 0.9 {
		t.Errorf("front-to-back keys = %v, %v, %v", ftb[0].SortKey, ftb[1].SortKey, ftb[2].SortKey)
	}

	btf := makeItems([]uint64{1, 1, 1}, []float32{0.5, 0.1, 0.9})
	if err := sortItems(btf, SortBackToFront); err != nil {
		t.Fatalf("sortItems: %v", err)
	}
	if btf[0].SortKey != 0.9 || btf[1].SortKey != 0.5 || btf[2].SortKey != 0.1 {
		t.Errorf("back-to-front keys = %v, %v, %v", btf[0].SortKey, btf[1].SortKey, btf[2].SortKey)
	}
}

func TestSortStabilityOnEqualKeys(t *testing.T) {
	// All keys equal: every mode must preserve submission order.
	modes := []SortMode{SortDeferred, SortTexture, SortFrontToBack, SortBackToFront}
	for _, mode := range modes {
		its := makeItems([]uint64{1, 1, 1, 1}, []float32{0.5, 0.5, 0.5, 0.5})
		if err := sortItems(its, mode); err != nil {
			t.Fatalf("%v: sortItems: %v", mode, err)
		}
		for i := range its {
			if its[i].Sequence != uint32(i) {
				t.Errorf("%v: position %d holds sequence %d", mode, i, its[i].Sequence)
			}
		}
	}
}

func TestSortUnknownModeErrors(t *testing.T) {
	its := makeItems([]uint64{1}, []float32{0})
	if err := sortItems(its, SortMode(99)); !errors.Is(err, ErrUnknownSortMode) {
		t.Fatalf("unknown mode error = %v, want ErrUnknownSortMode", err)
	}
}

func TestSortModeString(t *testing.T) {
	if SortTexture.String() != "texture" || SortMode(99).String() != "unknown" {
		t.Error("SortMode.String mismatch")
	}
}

func BenchmarkSortTexture(b *testing.B) {
	texs := make([]uint64, 1024)
	keys := make([]float32, 1024)
	for i := range texs {
		texs[i] = uint64(i % 7)
	}
	base := makeItems(texs, keys)
	its := make([]DrawItem, len(base))

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		copy(its, base)
		_ = sortItems(its, SortTexture)
	}
}
