package sha256

import (
	stdsha256 "crypto/sha256"
	"runtime"

	cpuid "github.com/klauspost/cpuid/v2"
	sha256simd "github.com/minio/sha256-simd"
)

var useStdSHA256 bool

func init() {
	// On ARM64 some features require explicit detection
	if runtime.GOARCH == "arm64" {
		cpuid.DetectARM()
	}

	// Compare against the standard crypto/sha256 if we lack SIMD features
	switch runtime.GOARCH {
	case "amd64", "386":
		if !cpuid.CPU.Supports(cpuid.SSE2) {
			useStdSHA256 = true
		}
	case "arm64":
		if !cpuid.CPU.Supports(cpuid.ASIMD) {
			useStdSHA256 = true
		}
	default:
		useStdSHA256 = true
	}
}

// referenceSum256 computes SHA-256 with an independent implementation.
func referenceSum256(data []byte) [Size]byte {
	if useStdSHA256 {
		return stdsha256.Sum256(data)
	}
	return sha256simd.Sum256(data)
}

func referenceSum224(data []byte) [Size224]byte {
	return stdsha256.Sum224(data)
}
