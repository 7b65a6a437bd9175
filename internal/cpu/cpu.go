// Package cpu reports the vector instruction sets of the host so benchmark
// output can say which kernels the vector math library is likely to pick.
package cpu

import (
	"strings"
	"sync"
)

// Level names the widest vector extension found on the host.
type Level int

const (
	LevelGeneric Level = iota
	LevelSSE2
	LevelAVX
	LevelAVX2
	LevelAVX512
	LevelNEON
)

func (l Level) String() string {
	switch l {
	case LevelGeneric:
		return "generic"
	case LevelSSE2:
		return "SSE2"
	case LevelAVX:
		return "AVX"
	case LevelAVX2:
		return "AVX2"
	case LevelAVX512:
		return "AVX-512"
	case LevelNEON:
		return "NEON"
	default:
		return "unknown"
	}
}

// Features lists the extensions detected on the host.
type Features struct {
	Architecture string

	HasSSE2   bool
	HasAVX    bool
	HasAVX2   bool
	HasAVX512 bool
	HasNEON   bool
}

// Level returns the widest extension in f.
func (f Features) Level() Level {
	switch {
	case f.HasAVX512:
		return LevelAVX512
	case f.HasAVX2:
		return LevelAVX2
	case f.HasAVX:
		return LevelAVX
	case f.HasSSE2:
		return LevelSSE2
	case f.HasNEON:
		return LevelNEON
	default:
		return LevelGeneric
	}
}

// Flags returns the names of every detected extension, narrowest first.
func (f Features) Flags() []string {
	var flags []string
	for _, e := range []struct {
		ok   bool
		name Level
	}{
		{f.HasSSE2, LevelSSE2},
		{f.HasAVX, LevelAVX},
		{f.HasAVX2, LevelAVX2},
		{f.HasAVX512, LevelAVX512},
		{f.HasNEON, LevelNEON},
	} {
		if e.ok {
			flags = append(flags, e.name.String())
		}
	}
	return flags
}

// String formats f as "arch (flag flag ...)" or "arch (generic)".
func (f Features) String() string {
	flags := f.Flags()
	if len(flags) == 0 {
		return f.Architecture + " (" + LevelGeneric.String() + ")"
	}
	return f.Architecture + " (" + strings.Join(flags, " ") + ")"
}

var detect = sync.OnceValue(detectFeatures)

// Detect returns the host features. Detection runs once.
func Detect() Features {
	return detect()
}
