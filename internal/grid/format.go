package grid

import "strconv"

// Element depth tags, numerically compatible with the OpenCV CV_* depth
// constants so format codes survive round trips through external tooling.
const (
	Depth8U  = 0
	Depth8S  = 1
	Depth16U = 2
	Depth16S = 3
	Depth32S = 4
	Depth32F = 5
	Depth64F = 6
)

const (
	depthMask    = 0x7
	channelShift = 3
)

// MakeType packs an element depth tag and a channel count into a single
// format code. channels must be >= 1.
func MakeType(depth, channels int) int {
	return (depth & depthMask) | ((channels - 1) << channelShift)
}

// TypeDepth extracts the element depth tag from a format code.
func TypeDepth(code int) int {
	return code & depthMask
}

// TypeChannels extracts the channel count from a format code.
func TypeChannels(code int) int {
	return (code >> channelShift) + 1
}

// TypeString returns a human-readable label for a format code, e.g. "8UC3"
// for an 8-bit unsigned 3-channel grid. Unknown depth tags degrade to the
// "User" label rather than failing.
func TypeString(code int) string {
	var depth string
	switch TypeDepth(code) {
	case Depth8U:
		depth = "8U"
	case Depth8S:
		depth = "8S"
	case Depth16U:
		depth = "16U"
	case Depth16S:
		depth = "16S"
	case Depth32S:
		depth = "32S"
	case Depth32F:
		depth = "32F"
	case Depth64F:
		depth = "64F"
	default:
		depth = "User"
	}
	return depth + "C" + strconv.Itoa(TypeChannels(code))
}
