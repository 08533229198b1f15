package vec

import (
	"fmt"

	"go.uber.org/zap"
	"golang.org/x/text/encoding/charmap"
)

func ascii(data []byte) bool {
	for _, c := range data {
		if c > 0x7f {
			return false
		}
	}
	return true
}

// fromLatin1 converts ISO 8859-1 bytes to UTF-8.
func fromLatin1(data []byte) ([]byte, error) {
	out, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
	if err != nil {
		return nil, fmt.Errorf("convert latin1 to UTF-8: %w", err)
	}
	Logger().Debug("converted latin1 data",
		zap.Int("in", len(data)),
		zap.Int("out", len(out)))
	return out, nil
}

// toUTF8 returns the UTF-8 form of an element's bytes, and whether the
// conversion produced new bytes. Pure ASCII data is UTF-8 already and passes
// through unconverted, as do UTF-8 and native elements (a Go host's native
// encoding is UTF-8) and undecoded bytes elements.
func toUTF8(el String) (data []byte, converted bool, err error) {
	if el.Encoding != Latin1 || ascii(el.Data) {
		return el.Data, false, nil
	}
	out, err := fromLatin1(el.Data)
	if err != nil {
		return nil, false, err
	}
	return out, true, nil
}
