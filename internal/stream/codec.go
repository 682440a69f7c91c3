package stream

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"math"

	"go-particle-field/pkg/render"
)

const (
	OpCodeFrame    byte = 0x01
	OpCodeViewport byte = 0x02
)

const (
	frameHeaderSize = 1 + 1 + 4 + 4 // opcode, active, frame number, count
	pointSize       = 4*3 + 4       // x, y, size float32 + rgba
	inputSize       = 4 + 4 + 1
)

// ErrShortMessage is returned for client messages shorter than an Input.
var ErrShortMessage = errors.New("stream: message too short")

// Input is what a client sends: pointer position in viewport pixels and whether the field
// section is on its screen.
type Input struct {
	X       float32
	Y       float32
	Visible uint8
}

// DecodeInput reads a little-endian Input.
func DecodeInput(message []byte) (Input, error) {
	var in Input
	if len(message) < inputSize {
		return in, ErrShortMessage
	}
	if err := binary.Read(bytes.NewReader(message), binary.LittleEndian, &in); err != nil {
		return in, fmt.Errorf("decode input: %w", err)
	}
	return in, nil
}

// EncodeInput is the client side of DecodeInput.
func EncodeInput(in Input) []byte {
	buf := make([]byte, inputSize)
	binary.LittleEndian.PutUint32(buf[0:], math.Float32bits(in.X))
	binary.LittleEndian.PutUint32(buf[4:], math.Float32bits(in.Y))
	buf[8] = in.Visible
	return buf
}

// EncodeViewport announces the stream size to a new client.
func EncodeViewport(width, height int) []byte {
	buf := make([]byte, 1+4+4)
	buf[0] = OpCodeViewport
	binary.LittleEndian.PutUint32(buf[1:], uint32(width))
	binary.LittleEndian.PutUint32(buf[5:], uint32(height))
	return buf
}

// EncodeFrame packs a frame into dst (reused if large enough):
// header, then per point x, y, size as float32 and premultiplied rgba of the point centre.
func EncodeFrame(dst []byte, frame *render.Frame, number uint32) []byte {
	n := frameHeaderSize + len(frame.Points)*pointSize
	if cap(dst) < n {
		dst = make([]byte, n)
	}
	dst = dst[:n]

	dst[0] = OpCodeFrame
	dst[1] = 0
	if frame.Active {
		dst[1] = 1
	}
	binary.LittleEndian.PutUint32(dst[2:], number)
	binary.LittleEndian.PutUint32(dst[6:], uint32(len(frame.Points)))

	off := frameHeaderSize
	for _, p := range frame.Points {
		c := render.Shade(float64(p.R), float64(p.G), float64(p.B), render.CenterBoost(p), float64(p.Alpha))
		binary.LittleEndian.PutUint32(dst[off:], math.Float32bits(p.X))
		binary.LittleEndian.PutUint32(dst[off+4:], math.Float32bits(p.Y))
		binary.LittleEndian.PutUint32(dst[off+8:], math.Float32bits(p.Size))
		dst[off+12] = c.R
		dst[off+13] = c.G
		dst[off+14] = c.B
		dst[off+15] = c.A
		off += pointSize
	}
	return dst
}

// WirePoint is a decoded point of a frame message.
type WirePoint struct {
	X, Y, Size float32
	R, G, B, A uint8
}

// DecodeFrame parses a frame message; used by clients and tests.
func DecodeFrame(message []byte) (active bool, number uint32, points []WirePoint, err error) {
	if len(message) < frameHeaderSize || message[0] != OpCodeFrame {
		return false, 0, nil, fmt.Errorf("decode frame: bad header")
	}
	active = message[1] == 1
	number = binary.LittleEndian.Uint32(message[2:])
	count := int(binary.LittleEndian.Uint32(message[6:]))
	if len(message) != frameHeaderSize+count*pointSize {
		return false, 0, nil, fmt.Errorf("decode frame: %d points in %d bytes", count, len(message))
	}
	points = make([]WirePoint, count)
	off := frameHeaderSize
	for i := range points {
		points[i] = WirePoint{
			X:    math.Float32frombits(binary.LittleEndian.Uint32(message[off:])),
			Y:    math.Float32frombits(binary.LittleEndian.Uint32(message[off+4:])),
			Size: math.Float32frombits(binary.LittleEndian.Uint32(message[off+8:])),
			R:    message[off+12],
			G:    message[off+13],
			B:    message[off+14],
			A:    message[off+15],
		}
		off += pointSize
	}
	return active, number, points, nil
}
