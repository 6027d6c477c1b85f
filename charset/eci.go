// Package charset maps character set names to ECI designators and to the
// transcoders that produce the bytes a symbol carries.
package charset

import (
	"fmt"
	"strings"

	"github.com/ericlevine/ecc200"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
)

// ECI represents a Character Set Extended Channel Interpretation.
type ECI struct {
	Value   int    // designator written after the ECI codeword
	Name    string // canonical name
	Aliases []string

	enc      encoding.Encoding
	sevenBit bool
}

// pre-defined ECIs
var (
	Cp437      = &ECI{Value: 2, Name: "Cp437", Aliases: []string{"IBM437"}, enc: charmap.CodePage437}
	ISO8859_1  = &ECI{Value: 3, Name: "ISO-8859-1", Aliases: []string{"ISO8859_1", "latin1"}, enc: charmap.ISO8859_1}
	ISO8859_2  = &ECI{Value: 4, Name: "ISO-8859-2", Aliases: []string{"ISO8859_2"}, enc: charmap.ISO8859_2}
	ISO8859_3  = &ECI{Value: 5, Name: "ISO-8859-3", Aliases: []string{"ISO8859_3"}, enc: charmap.ISO8859_3}
	ISO8859_4  = &ECI{Value: 6, Name: "ISO-8859-4", Aliases: []string{"ISO8859_4"}, enc: charmap.ISO8859_4}
	ISO8859_5  = &ECI{Value: 7, Name: "ISO-8859-5", Aliases: []string{"ISO8859_5"}, enc: charmap.ISO8859_5}
	ISO8859_6  = &ECI{Value: 8, Name: "ISO-8859-6", Aliases: []string{"ISO8859_6"}, enc: charmap.ISO8859_6}
	ISO8859_7  = &ECI{Value: 9, Name: "ISO-8859-7", Aliases: []string{"ISO8859_7"}, enc: charmap.ISO8859_7}
	ISO8859_8  = &ECI{Value: 10, Name: "ISO-8859-8", Aliases: []string{"ISO8859_8"}, enc: charmap.ISO8859_8}
	ISO8859_9  = &ECI{Value: 11, Name: "ISO-8859-9", Aliases: []string{"ISO8859_9"}, enc: charmap.ISO8859_9}
	ISO8859_10 = &ECI{Value: 12, Name: "ISO-8859-10", Aliases: []string{"ISO8859_10"}, enc: charmap.ISO8859_10}
	ISO8859_13 = &ECI{Value: 15, Name: "ISO-8859-13", Aliases: []string{"ISO8859_13"}, enc: charmap.ISO8859_13}
	ISO8859_14 = &ECI{Value: 16, Name: "ISO-8859-14", Aliases: []string{"ISO8859_14"}, enc: charmap.ISO8859_14}
	ISO8859_15 = &ECI{Value: 17, Name: "ISO-8859-15", Aliases: []string{"ISO8859_15"}, enc: charmap.ISO8859_15}
	ISO8859_16 = &ECI{Value: 18, Name: "ISO-8859-16", Aliases: []string{"ISO8859_16"}, enc: charmap.ISO8859_16}
	ShiftJIS   = &ECI{Value: 20, Name: "Shift_JIS", Aliases: []string{"SJIS"}, enc: japanese.ShiftJIS}
	Cp1250     = &ECI{Value: 21, Name: "windows-1250", Aliases: []string{"Cp1250"}, enc: charmap.Windows1250}
	Cp1251     = &ECI{Value: 22, Name: "windows-1251", Aliases: []string{"Cp1251"}, enc: charmap.Windows1251}
	Cp1252     = &ECI{Value: 23, Name: "windows-1252", Aliases: []string{"Cp1252"}, enc: charmap.Windows1252}
	Cp1256     = &ECI{Value: 24, Name: "windows-1256", Aliases: []string{"Cp1256"}, enc: charmap.Windows1256}
	UTF16BE    = &ECI{Value: 25, Name: "UTF-16BE", Aliases: []string{"UnicodeBig", "UnicodeBigUnmarked"},
		enc: unicode.UTF16(unicode.BigEndian, unicode.IgnoreBOM)}
	UTF8    = &ECI{Value: 26, Name: "UTF-8", Aliases: []string{"UTF8"}, enc: unicode.UTF8}
	ASCII   = &ECI{Value: 27, Name: "US-ASCII", Aliases: []string{"ASCII"}, enc: charmap.ISO8859_1, sevenBit: true}
	Big5    = &ECI{Value: 28, Name: "Big5", enc: traditionalchinese.Big5}
	GB18030 = &ECI{Value: 29, Name: "GB18030", Aliases: []string{"GB2312", "EUC_CN", "GBK"}, enc: simplifiedchinese.GB18030}
	EUCKR   = &ECI{Value: 30, Name: "EUC-KR", Aliases: []string{"EUC_KR"}, enc: korean.EUCKR}
)

var nameToECI = make(map[string]*ECI)

func init() {
	for _, eci := range []*ECI{
		Cp437, ISO8859_1, ISO8859_2, ISO8859_3, ISO8859_4, ISO8859_5,
		ISO8859_6, ISO8859_7, ISO8859_8, ISO8859_9, ISO8859_10, ISO8859_13,
		ISO8859_14, ISO8859_15, ISO8859_16, ShiftJIS, Cp1250, Cp1251, Cp1252,
		Cp1256, UTF16BE, UTF8, ASCII, Big5, GB18030, EUCKR,
	} {
		nameToECI[strings.ToLower(eci.Name)] = eci
		for _, alias := range eci.Aliases {
			nameToECI[strings.ToLower(alias)] = eci
		}
	}
}

// Lookup returns the ECI for a character set name or alias, ignoring case.
func Lookup(name string) (*ECI, error) {
	eci, ok := nameToECI[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("charset: unknown character set %q: %w", name, ecc200.ErrCharset)
	}
	return eci, nil
}

// Encode transcodes UTF-8 text into this character set.
func (e *ECI) Encode(s string) ([]byte, error) {
	b, err := e.enc.NewEncoder().Bytes([]byte(s))
	if err != nil {
		return nil, fmt.Errorf("charset: %q not representable in %s: %w", s, e.Name, ecc200.ErrCharset)
	}
	if e.sevenBit {
		for _, c := range b {
			if c >= 0x80 {
				return nil, fmt.Errorf("charset: %q not representable in %s: %w", s, e.Name, ecc200.ErrCharset)
			}
		}
	}
	return b, nil
}

// String returns the canonical name.
func (e *ECI) String() string { return e.Name }
