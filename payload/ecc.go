package payload

import (
	"fmt"
	"math/rand"

	"github.com/yyyoichi/bitstream-go"
	"github.com/yyyoichi/golay"

	"github.com/yyyoichi/wavemark/internal/bitconv"
)

var _ factory = (*withoutecc)(nil)

type withoutecc struct{}

func (we withoutecc) encode(data []byte) []byte {
	out := make([]byte, len(data))
	copy(out, data)
	return out
}

func (we withoutecc) decode(data []byte, originalLen int) ([]byte, error) {
	if len(data) < originalLen {
		return nil, fmt.Errorf("payload is %d bytes, expected %d", len(data), originalLen)
	}
	out := make([]byte, originalLen)
	copy(out, data)
	return out, nil
}

func (we withoutecc) encodedLen(n int) int {
	return n
}

var _ factory = (*shuffledgolay)(nil)

type shuffledgolay int64

func (sg shuffledgolay) encode(data []byte) []byte {
	if len(data) == 0 {
		return nil
	}
	w := bitstream.NewBitWriter[uint64](0, 0)
	for _, v := range data {
		w.Write8(0, 8, v)
	}

	var encoded []uint64
	enc := golay.NewEncoder(&encoded)
	_ = enc.Encode(w.Data(), w.Bits())
	encodedLen := enc.Bits()

	// shuffle
	index := sg.generatePermutation(encodedLen)
	r := bitstream.NewBitReader(encoded, 0, 0)
	bits := make([]bool, encodedLen)
	for i := range bits {
		bits[i], _ = r.ReadBitAt(index[i])
	}

	// pad to a byte boundary; Decode truncates by encodedLen
	for len(bits)%8 != 0 {
		bits = append(bits, false)
	}
	out, _ := bitconv.BoolsToBytes(bits)
	return out
}

func (sg shuffledgolay) decode(data []byte, originalLen int) ([]byte, error) {
	if originalLen == 0 {
		return []byte{}, nil
	}
	encodedLen := golay.EncodedBits(originalLen * 8)
	bits := bitconv.BytesToBools(data)
	if len(bits) < encodedLen {
		return nil, fmt.Errorf("payload holds %d bits, expected %d", len(bits), encodedLen)
	}
	bits = bits[:encodedLen]

	// reverse shuffle: same permutation applied inversely
	index := sg.generatePermutation(encodedLen)
	w := bitstream.NewBitWriter[uint64](0, 0)
	for i := range bits {
		w.WriteBitAt(index[i], bits[i])
	}

	var decoded []byte
	if err := golay.DecodeBinay(w.Data(), &decoded); err != nil {
		return nil, fmt.Errorf("golay decode: %w", err)
	}
	if len(decoded) < originalLen {
		return nil, fmt.Errorf("decoded %d bytes, expected %d", len(decoded), originalLen)
	}
	return decoded[:originalLen], nil
}

func (sg shuffledgolay) encodedLen(n int) int {
	return (golay.EncodedBits(n*8) + 7) / 8
}

func (sg shuffledgolay) generatePermutation(length int) []int {
	index := make([]int, length)
	for i := range index {
		index[i] = i
	}
	rd := rand.New(rand.NewSource(int64(sg)))
	rd.Shuffle(length, func(i, j int) {
		index[i], index[j] = index[j], index[i]
	})
	return index
}
