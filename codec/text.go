// Package codec is the formatter/parser collaborator for the chronos value
// model: text patterns (ISO-8601 extended) and JSON wire adapters. It layers
// over the public surface of the value types and contains no calendar or
// offset logic of its own.
package codec

import (
	"fmt"
	"strings"

	chronos "github.com/reoring/chronos"
)

// CodeInvalidFormat aliases the root parse-failure code for call sites that
// only import codec.
const CodeInvalidFormat = chronos.CodeInvalidFormat

// FormatOffset renders an offset in the extended pattern: "Z" for zero,
// otherwise "+hh:mm" or "+hh:mm:ss" when a seconds component is present.
func FormatOffset(o chronos.Offset) string {
	s := o.Seconds()
	if s == 0 {
		return "Z"
	}
	sign := "+"
	if s < 0 {
		sign = "-"
		s = -s
	}
	h := s / chronos.SecondsPerHour
	m := (s % chronos.SecondsPerHour) / chronos.SecondsPerMinute
	sec := s % chronos.SecondsPerMinute
	if sec != 0 {
		return fmt.Sprintf("%s%02d:%02d:%02d", sign, h, m, sec)
	}
	return fmt.Sprintf("%s%02d:%02d", sign, h, m)
}

// ParseOffset parses "Z"/"z" or a signed sexagesimal offset with one to
// three components: "+hh", "+hh:mm", "+hh:mm:ss".
func ParseOffset(text string) (chronos.Offset, error) {
	if text == "Z" || text == "z" {
		return chronos.Offset{}, nil
	}
	if len(text) < 3 || (text[0] != '+' && text[0] != '-') {
		return chronos.Offset{}, chronos.Issuef(CodeInvalidFormat, "invalid offset text %q", text)
	}
	negative := text[0] == '-'
	rest := text[1:]

	h, rest, err := takeTwoDigits(rest, text)
	if err != nil {
		return chronos.Offset{}, err
	}
	var m, s int
	if rest != "" {
		if m, rest, err = takeColonDigits(rest, text); err != nil {
			return chronos.Offset{}, err
		}
	}
	if rest != "" {
		if s, rest, err = takeColonDigits(rest, text); err != nil {
			return chronos.Offset{}, err
		}
	}
	if rest != "" {
		return chronos.Offset{}, chronos.Issuef(CodeInvalidFormat, "trailing text in offset %q", text)
	}
	if m > 59 || s > 59 {
		return chronos.Offset{}, chronos.Issuef(CodeInvalidFormat, "offset component out of range in %q", text)
	}
	total := h*chronos.SecondsPerHour + m*chronos.SecondsPerMinute + s
	if negative {
		total = -total
	}
	off, err := chronos.OffsetFromSeconds(total)
	if err != nil {
		return chronos.Offset{}, chronos.Issue{Code: CodeInvalidFormat, Message: "offset text out of range", Cause: err}
	}
	return off, nil
}

// FormatOffsetDateTime renders the ISO-8601 extended form, e.g.
// "2013-03-04T20:21:00+01:00", with the fraction trimmed of trailing zeros.
// The calendar system is not part of the text; parsing always yields
// Gregorian values.
func FormatOffsetDateTime(v chronos.OffsetDateTime) string {
	b := &strings.Builder{}
	year := v.Year()
	if year < 0 {
		b.WriteByte('-')
		year = -year
	}
	fmt.Fprintf(b, "%04d-%02d-%02dT%02d:%02d:%02d", year, v.Month(), v.Day(), v.Hour(), v.Minute(), v.Second())
	if ns := v.NanosecondOfSecond(); ns != 0 {
		frac := strings.TrimRight(fmt.Sprintf("%09d", ns), "0")
		b.WriteByte('.')
		b.WriteString(frac)
	}
	b.WriteString(FormatOffset(v.Offset()))
	return b.String()
}

// ParseOffsetDateTime parses the ISO-8601 extended form produced by
// FormatOffsetDateTime into a Gregorian OffsetDateTime.
func ParseOffsetDateTime(text string) (chronos.OffsetDateTime, error) {
	rest := text
	yearSign := 1
	if strings.HasPrefix(rest, "-") {
		yearSign = -1
		rest = rest[1:]
	}
	year, rest, err := takeDigits(rest, 4, text)
	if err != nil {
		return chronos.OffsetDateTime{}, err
	}
	month, rest, err := expectThenDigits(rest, '-', text)
	if err != nil {
		return chronos.OffsetDateTime{}, err
	}
	day, rest, err := expectThenDigits(rest, '-', text)
	if err != nil {
		return chronos.OffsetDateTime{}, err
	}
	hour, rest, err := expectThenDigits(rest, 'T', text)
	if err != nil {
		return chronos.OffsetDateTime{}, err
	}
	minute, rest, err := expectThenDigits(rest, ':', text)
	if err != nil {
		return chronos.OffsetDateTime{}, err
	}
	second, rest, err := expectThenDigits(rest, ':', text)
	if err != nil {
		return chronos.OffsetDateTime{}, err
	}
	nanos := 0
	if strings.HasPrefix(rest, ".") {
		rest = rest[1:]
		n := 0
		for n < len(rest) && rest[n] >= '0' && rest[n] <= '9' {
			n++
		}
		if n == 0 || n > 9 {
			return chronos.OffsetDateTime{}, chronos.Issuef(CodeInvalidFormat, "invalid fraction in %q", text)
		}
		for i := 0; i < 9; i++ {
			nanos *= 10
			if i < n {
				nanos += int(rest[i] - '0')
			}
		}
		rest = rest[n:]
	}
	off, err := ParseOffset(rest)
	if err != nil {
		return chronos.OffsetDateTime{}, err
	}

	date, err := chronos.NewDate(chronos.Gregorian, yearSign*year, month, day)
	if err != nil {
		return chronos.OffsetDateTime{}, err
	}
	tod, err := chronos.NewTimeOfDayWithNanos(hour, minute, second, nanos)
	if err != nil {
		return chronos.OffsetDateTime{}, err
	}
	return chronos.NewOffsetDateTime(date, tod, off)
}

func takeDigits(rest string, n int, whole string) (int, string, error) {
	if len(rest) < n {
		return 0, "", chronos.Issuef(CodeInvalidFormat, "truncated text %q", whole)
	}
	v := 0
	for i := 0; i < n; i++ {
		c := rest[i]
		if c < '0' || c > '9' {
			return 0, "", chronos.Issuef(CodeInvalidFormat, "expected digit at %q in %q", rest[i:], whole)
		}
		v = v*10 + int(c-'0')
	}
	return v, rest[n:], nil
}

func takeTwoDigits(rest, whole string) (int, string, error) {
	return takeDigits(rest, 2, whole)
}

func takeColonDigits(rest, whole string) (int, string, error) {
	if !strings.HasPrefix(rest, ":") {
		return 0, "", chronos.Issuef(CodeInvalidFormat, "expected ':' at %q in %q", rest, whole)
	}
	return takeDigits(rest[1:], 2, whole)
}

func expectThenDigits(rest string, sep byte, whole string) (int, string, error) {
	if len(rest) == 0 || rest[0] != sep {
		return 0, "", chronos.Issuef(CodeInvalidFormat, "expected %q at %q in %q", string(sep), rest, whole)
	}
	return takeDigits(rest[1:], 2, whole)
}
