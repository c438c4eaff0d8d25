// SPDX-License-Identifier: EPL-2.0

package wav

import "fmt"

// Format tags found in the fmt chunk.
const (
	FormatPCM        uint16 = 0x0001
	FormatIEEEFloat  uint16 = 0x0003
	FormatALaw       uint16 = 0x0006
	FormatMuLaw      uint16 = 0x0007
	FormatExtensible uint16 = 0xfffe
)

// FormatName returns a readable name for a WAVE format tag.
func FormatName(tag uint16) string {
	switch tag {
	case FormatPCM:
		return "PCM"
	case FormatIEEEFloat:
		return "IEEE float"
	case FormatALaw:
		return "A-law"
	case FormatMuLaw:
		return "mu-law"
	case FormatExtensible:
		return "extensible"
	default:
		return fmt.Sprintf("unknown (0x%04x)", tag)
	}
}
