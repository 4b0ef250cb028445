package qoi

/*

QOI - The “Quite OK Image” format for fast, lossless image compression

Original version by Dominic Szablewski - https://phoboslab.org
Go version by Makapuf makapuf2@gmail.com

-- LICENSE: The MIT License(MIT)

Copyright(c) 2021 Dominic Szablewski

Permission is hereby granted, free of charge, to any person obtaining a copy of
this software and associated documentation files(the "Software"), to deal in
the Software without restriction, including without limitation the rights to
use, copy, modify, merge, publish, distribute, sublicense, and / or sell copies
of the Software, and to permit persons to whom the Software is furnished to do
so, subject to the following conditions :
The above copyright notice and this permission notice shall be included in all
copies or substantial portions of the Software.
THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT.IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
SOFTWARE.

*/

// Tag bytes for the pre-final QOI revision. Longer prefixes (QOI_COLOR,
// QOI_DIFF_24, QOI_DIFF_16) must be tested before the shorter ones below
// them, since e.g. QOI_MASK_2 also matches bytes that are really QOI_COLOR.
const (
	QOI_INDEX   byte = 0b00_000000 // 00xxxxxx
	QOI_RUN_8   byte = 0b010_00000 // 010xxxxx
	QOI_RUN_16  byte = 0b011_00000 // 011xxxxx
	QOI_DIFF_8  byte = 0b10_000000 // 10xxxxxx
	QOI_DIFF_16 byte = 0b110_00000 // 110xxxxx
	QOI_DIFF_24 byte = 0b1110_0000 // 1110xxxx
	QOI_COLOR   byte = 0b1111_0000 // 1111xxxx

	QOI_MASK_2 byte = 0b11_000000
	QOI_MASK_3 byte = 0b111_00000
	QOI_MASK_4 byte = 0b1111_0000
)

// QOIMagic is the 4-byte file signature at offset 0 of every stream.
const QOIMagic = "qoif"

const (
	// headerSize is magic(4) + width(2) + height(2) + data length(4).
	headerSize = 12
	paddingLen = 4

	cacheSize = 64

	// maxRun8Length is the first run length (33) that no longer fits in a
	// single RUN_8 byte and must spill into RUN_16.
	maxRun8Length = 33
	// maxRunLength is the largest run length a single RUN_16 instruction
	// can carry: (0x1f<<8 | 0xff) + 33 == 0x2020.
	maxRunLength = 0x2020
)
