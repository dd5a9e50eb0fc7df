package rawstr

import (
	"unicode/utf8"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// Lossy is a UTF-8 encoding whose decoder and encoder copy well-formed UTF-8
// unchanged and replace each maximal subpart of an ill-formed sequence with
// U+FFFD, exactly as [RawStr.AppendLossy] does. It lets readers and writers
// apply the same conversion to streams:
//
//	r := transform.NewReader(file, rawstr.Lossy.NewDecoder())
//
// A sequence that is cut off at the end of a chunk is held back until more
// input arrives, so the output does not depend on how the input is split.
var Lossy encoding.Encoding = lossy{}

type lossy struct{}

func (lossy) NewDecoder() *encoding.Decoder {
	return &encoding.Decoder{Transformer: lossyTransformer{}}
}

func (lossy) NewEncoder() *encoding.Encoder {
	return &encoding.Encoder{Transformer: lossyTransformer{}}
}

// lossyTransformer is stateless; everything it has not consumed is left in
// src for the next call.
type lossyTransformer struct{ transform.NopResetter }

func (lossyTransformer) Transform(dst, src []byte, atEOF bool) (nDst, nSrc int, err error) {
	for nSrc < len(src) {
		// Fast track ASCII.
		if c := src[nSrc]; c < utf8.RuneSelf {
			if nDst == len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			dst[nDst] = c
			nDst++
			nSrc++
			continue
		}

		n, ok, short := decode(src[nSrc:])
		if short && !atEOF {
			return nDst, nSrc, transform.ErrShortSrc
		}
		if ok {
			if nDst+n > len(dst) {
				return nDst, nSrc, transform.ErrShortDst
			}
			nDst += copy(dst[nDst:], src[nSrc:nSrc+n])
			nSrc += n
			continue
		}
		if nDst+len(replacement) > len(dst) {
			return nDst, nSrc, transform.ErrShortDst
		}
		nDst += copy(dst[nDst:], replacement)
		nSrc += n
	}
	return nDst, nSrc, nil
}
