package api

import "strings"

const upperhex = "0123456789ABCDEF"

// EncodeQueryComponent percent-encodes s for use as a query value.
// ASCII letters and digits pass through; every other byte, including space
// and each byte of a multi-byte UTF-8 rune, becomes %XX with uppercase hex.
// League names such as "Hardcore Settlers" rely on space becoming %20 rather
// than the '+' produced by url.QueryEscape.
func EncodeQueryComponent(s string) string {
	var b strings.Builder
	b.Grow(len(s) * 3)

	for i := 0; i < len(s); i++ {
		c := s[i]
		if isASCIIAlnum(c) {
			b.WriteByte(c)
			continue
		}
		b.WriteByte('%')
		b.WriteByte(upperhex[c>>4])
		b.WriteByte(upperhex[c&0x0f])
	}

	return b.String()
}

func isASCIIAlnum(c byte) bool {
	return ('a' <= c && c <= 'z') || ('A' <= c && c <= 'Z') || ('0' <= c && c <= '9')
}

// overviewQuery builds the raw query string shared by both overview endpoints.
func overviewQuery(league, typ string) string {
	return "league=" + EncodeQueryComponent(league) + "&type=" + EncodeQueryComponent(typ)
}
