package fileio

import (
	"bytes"
	"io"
	"strings"
	"unicode/utf8"

	"github.com/saintfish/chardet"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Encoding is a character encoding a file can be stored in.
type Encoding struct {
	Name    string
	ID      string
	codec   encoding.Encoding // nil for UTF-8
	aliases []string          // chardet charset names
	bom     []byte
}

// Encodings known to the store. Files in anything else are read as Latin-1.
var encodings = []*Encoding{
	{Name: "UTF-8", ID: "utf-8", aliases: []string{"utf8"}},
	{Name: "UTF-8 BOM", ID: "utf-8-bom", bom: []byte{0xEF, 0xBB, 0xBF}},
	{Name: "UTF-16 LE", ID: "utf-16-le", codec: unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM),
		aliases: []string{"UTF-16LE"}, bom: []byte{0xFF, 0xFE}},
	{Name: "UTF-16 BE", ID: "utf-16-be", codec: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM),
		aliases: []string{"UTF-16BE"}, bom: []byte{0xFE, 0xFF}},
	{Name: "ISO-8859-1", ID: "iso-8859-1", codec: charmap.ISO8859_1, aliases: []string{"latin1"}},
	{Name: "Windows-1252", ID: "windows-1252", codec: charmap.Windows1252, aliases: []string{"CP1252"}},
	{Name: "Shift-JIS", ID: "shift-jis", codec: japanese.ShiftJIS, aliases: []string{"Shift_JIS", "SJIS"}},
	{Name: "EUC-JP", ID: "euc-jp", codec: japanese.EUCJP},
	{Name: "GB18030", ID: "gb18030", codec: simplifiedchinese.GB18030, aliases: []string{"GBK", "GB2312"}},
	{Name: "EUC-KR", ID: "euc-kr", codec: korean.EUCKR},
}

// UTF8 is the encoding used for new files.
var UTF8 = encodings[0]

// EncodingByName finds an encoding by display name, ID or charset alias.
func EncodingByName(name string) *Encoding {
	for _, enc := range encodings {
		if strings.EqualFold(enc.Name, name) || strings.EqualFold(enc.ID, name) {
			return enc
		}
		for _, alias := range enc.aliases {
			if strings.EqualFold(alias, name) {
				return enc
			}
		}
	}
	return nil
}

// DetectEncoding guesses the encoding of data. A byte order mark wins,
// then valid UTF-8, then the charset detector. Anything it cannot map is
// treated as Latin-1, which decodes every byte sequence.
func DetectEncoding(data []byte) *Encoding {
	for _, enc := range encodings {
		if enc.bom != nil && bytes.HasPrefix(data, enc.bom) {
			return enc
		}
	}
	if utf8.Valid(data) {
		return UTF8
	}

	detected, err := chardet.NewTextDetector().DetectBest(data)
	if err == nil && detected != nil {
		if enc := EncodingByName(detected.Charset); enc != nil && enc != UTF8 {
			return enc
		}
	}
	return EncodingByName("iso-8859-1")
}

// decode converts data in enc to UTF-8, dropping any byte order mark.
func decode(data []byte, enc *Encoding) ([]byte, error) {
	data = bytes.TrimPrefix(data, enc.bom)
	if enc.codec == nil {
		return data, nil
	}
	return io.ReadAll(transform.NewReader(bytes.NewReader(data), enc.codec.NewDecoder()))
}

// encode converts UTF-8 data to enc, restoring its byte order mark.
func encode(data []byte, enc *Encoding) ([]byte, error) {
	var buf bytes.Buffer
	buf.Write(enc.bom)
	if enc.codec == nil {
		buf.Write(data)
		return buf.Bytes(), nil
	}

	w := transform.NewWriter(&buf, enc.codec.NewEncoder())
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
