package native

import (
	_ "embed"
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

//go:embed shaders/sprite.wgsl
var spriteShaderSource string

// compileShader creates a HAL shader module from WGSL source. The
// source is compiled to SPIR-V through naga first; backends whose HAL
// consumes WGSL directly get the original source as a fallback when
// naga cannot compile it.
func compileShader(device hal.Device, label, wgsl string) (hal.ShaderModule, error) {
	if wgsl == "" {
		return nil, fmt.Errorf("native: shader source for %q is empty", label)
	}

	spirvBytes, err := naga.Compile(wgsl)
	if err != nil {
		// Fall back to the WGSL path; the HAL validates it itself.
		return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
			Label:  label,
			Source: hal.ShaderSource{WGSL: wgsl},
		})
	}

	// SPIR-V is little-endian 32-bit words.
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: hal.ShaderSource{SPIRV: spirvCode},
	})
}
