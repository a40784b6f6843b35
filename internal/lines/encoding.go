package lines

import (
	"bytes"
	"unicode/utf8"

	"golang.org/x/text/encoding/unicode"
)

const (
	textDetectionSampleSize      = 4096
	nonPrintableThresholdPercent = 30
)

// Encoding identifies how an input stream is encoded.
type Encoding int

const (
	EncodingUTF8 Encoding = iota
	EncodingUTF8BOM
	EncodingUTF16LE
	EncodingUTF16BE
)

func (e Encoding) String() string {
	switch e {
	case EncodingUTF8BOM:
		return "utf-8-bom"
	case EncodingUTF16LE:
		return "utf-16le"
	case EncodingUTF16BE:
		return "utf-16be"
	default:
		return "utf-8"
	}
}

func (e Encoding) bomLen() int {
	switch e {
	case EncodingUTF8BOM:
		return 3
	case EncodingUTF16LE, EncodingUTF16BE:
		return 2
	default:
		return 0
	}
}

func (e Encoding) isUTF16() bool {
	return e == EncodingUTF16LE || e == EncodingUTF16BE
}

func detectEncoding(sample []byte) Encoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return EncodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return EncodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return EncodingUTF16BE
		}
	}
	return EncodingUTF8
}

// looksBinary sniffs a sample the way a pager would before showing it. Binary
// input is still ingested; the result only feeds diagnostics.
func looksBinary(sample []byte, enc Encoding) bool {
	if enc != EncodingUTF8 || len(sample) == 0 {
		return false
	}
	if len(sample) > textDetectionSampleSize {
		sample = sample[:textDetectionSampleSize]
	}
	if bytes.IndexByte(sample, 0x00) != -1 {
		return true
	}
	if utf8.Valid(sample) {
		return false
	}

	nonPrintable := 0
	for _, b := range sample {
		if !isCommonTextByte(b) {
			nonPrintable++
		}
	}
	return nonPrintable*100/len(sample) >= nonPrintableThresholdPercent
}

func isCommonTextByte(b byte) bool {
	switch {
	case b == 0x09 || b == 0x0A || b == 0x0B || b == 0x0D:
		return true
	case b >= 0x20 && b <= 0x7E:
		return true
	case b == 0x1B:
		return true
	case b >= 0x80:
		return true
	default:
		return false
	}
}

func utf16Endianness(enc Encoding) unicode.Endianness {
	if enc == EncodingUTF16BE {
		return unicode.BigEndian
	}
	return unicode.LittleEndian
}

// decodeUTF16 converts one UTF-16 line (no BOM, no terminator) to UTF-8.
func decodeUTF16(content []byte, enc Encoding) string {
	if len(content) == 0 {
		return ""
	}
	decoder := unicode.UTF16(utf16Endianness(enc), unicode.IgnoreBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return string(content)
	}
	return string(out)
}

// utf16Unit reads the code unit at data[i:i+2].
func utf16Unit(data []byte, i int, enc Encoding) uint16 {
	if enc == EncodingUTF16BE {
		return uint16(data[i])<<8 | uint16(data[i+1])
	}
	return uint16(data[i+1])<<8 | uint16(data[i])
}
