// Package wavegen assembles in-memory PCM 16-bit WAV carriers with the
// canonical 44-byte header. go-audio's encoder needs an io.WriteSeeker,
// so test carriers are built byte-wise here instead.
package wavegen

import (
	"encoding/binary"
	"math"
)

// Header returns a canonical mono PCM 16-bit WAV header declaring
// dataSize body bytes at sampleRate.
func Header(sampleRate int, dataSize uint32) []byte {
	const (
		numChannels   = uint16(1)
		bitsPerSample = uint16(16)
	)
	byteRate := uint32(sampleRate) * uint32(numChannels) * uint32(bitsPerSample/8)
	blockAlign := numChannels * bitsPerSample / 8

	header := make([]byte, 44)
	copy(header[0:4], "RIFF")
	binary.LittleEndian.PutUint32(header[4:8], 36+dataSize)
	copy(header[8:12], "WAVE")
	copy(header[12:16], "fmt ")
	binary.LittleEndian.PutUint32(header[16:20], 16) // PCM fmt chunk size
	binary.LittleEndian.PutUint16(header[20:22], 1)  // PCM format
	binary.LittleEndian.PutUint16(header[22:24], numChannels)
	binary.LittleEndian.PutUint32(header[24:28], uint32(sampleRate))
	binary.LittleEndian.PutUint32(header[28:32], byteRate)
	binary.LittleEndian.PutUint16(header[32:34], blockAlign)
	binary.LittleEndian.PutUint16(header[34:36], bitsPerSample)
	copy(header[36:40], "data")
	binary.LittleEndian.PutUint32(header[40:44], dataSize)
	return header
}

// Silence returns a complete WAV file with numSamples zero samples.
func Silence(sampleRate, numSamples int) []byte {
	body := make([]byte, numSamples*2)
	return append(Header(sampleRate, uint32(len(body))), body...)
}

// Sine returns a complete WAV file carrying a sine tone at freq Hz with
// the given amplitude in [0,1].
func Sine(sampleRate, numSamples int, freq, amplitude float64) []byte {
	body := make([]byte, numSamples*2)
	for i := 0; i < numSamples; i++ {
		v := amplitude * math.Sin(2*math.Pi*freq*float64(i)/float64(sampleRate))
		binary.LittleEndian.PutUint16(body[i*2:], uint16(int16(v*math.MaxInt16)))
	}
	return append(Header(sampleRate, uint32(len(body))), body...)
}
