package fs

import (
	"golang.org/x/text/encoding/unicode"
)

type unicodeEncoding int

const (
	encodingUnknown unicodeEncoding = iota
	encodingUTF8BOM
	encodingUTF16LE
	encodingUTF16BE
)

func detectUnicodeEncoding(sample []byte) unicodeEncoding {
	if len(sample) >= 3 && sample[0] == 0xEF && sample[1] == 0xBB && sample[2] == 0xBF {
		return encodingUTF8BOM
	}
	if len(sample) >= 2 {
		switch {
		case sample[0] == 0xFF && sample[1] == 0xFE:
			return encodingUTF16LE
		case sample[0] == 0xFE && sample[1] == 0xFF:
			return encodingUTF16BE
		}
	}
	return encodingUnknown
}

// NormalizeTextContent strips a UTF-8 byte order mark and, when decodeUTF16 is
// set, converts BOM-marked UTF-16 content to UTF-8. Any other content is
// returned unchanged so raw bytes reach the terminal as they are.
func NormalizeTextContent(content []byte, decodeUTF16 bool) []byte {
	switch detectUnicodeEncoding(content) {
	case encodingUTF8BOM:
		return content[3:]
	case encodingUTF16LE:
		if decodeUTF16 {
			return decodeUTF16Bytes(content, unicode.LittleEndian)
		}
	case encodingUTF16BE:
		if decodeUTF16 {
			return decodeUTF16Bytes(content, unicode.BigEndian)
		}
	}
	return content
}

func decodeUTF16Bytes(content []byte, endian unicode.Endianness) []byte {
	decoder := unicode.UTF16(endian, unicode.ExpectBOM).NewDecoder()
	out, err := decoder.Bytes(content)
	if err != nil {
		return content
	}
	return out
}
