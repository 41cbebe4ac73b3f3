package csvtext

import (
	"bytes"
	"encoding/binary"
	"errors"
	"io"
	"strings"
	"unicode/utf16"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/transform"
)

var errUnsupportedEncoding = errors.New("csvtext: unsupported encoding")

// DecodeSource converts raw source bytes to UTF-8 and returns a reader
// over them. A UTF-16LE or UTF-8 BOM overrides enc; otherwise enc
// selects the decoder ("" means UTF-8, no copy).
func DecodeSource(data []byte, enc string) (io.Reader, error) {
	// BOM sniffing first, it is authoritative.
	if len(data) >= len(UTF16LEBOM) && data[0] == UTF16LEBOM[0] && data[1] == UTF16LEBOM[1] {
		return bytes.NewReader(utf16LEToBytes(data[len(UTF16LEBOM):])), nil
	}
	if len(data) >= len(UTF8BOM) && data[0] == UTF8BOM[0] && data[1] == UTF8BOM[1] && data[2] == UTF8BOM[2] {
		return bytes.NewReader(data[len(UTF8BOM):]), nil
	}

	switch strings.ToUpper(enc) {
	case "", EncodingUTF8:
		return bytes.NewReader(data), nil
	case EncodingUTF16LE:
		return bytes.NewReader(utf16LEToBytes(data)), nil
	case EncodingWindows1252:
		// Streamed through x/text rather than converted up front.
		return transform.NewReader(bytes.NewReader(data), charmap.Windows1252.NewDecoder()), nil
	default:
		return nil, errUnsupportedEncoding
	}
}

// utf16LEToBytes converts UTF-16LE data to UTF-8 bytes. A trailing odd
// byte is dropped.
func utf16LEToBytes(data []byte) []byte {
	if len(data)%UTF16CodeUnitSize == 1 {
		data = data[:len(data)-1]
	}
	if len(data) == 0 {
		return nil
	}
	words := make([]uint16, len(data)/UTF16CodeUnitSize)
	for i := 0; i < len(words); i++ {
		words[i] = binary.LittleEndian.Uint16(data[i*UTF16CodeUnitSize:])
	}
	return []byte(string(utf16.Decode(words)))
}
