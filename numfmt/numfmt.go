// Package numfmt is the thin locale-aware number formatting
// abstraction shared by the `formatNumber`/`parseNumber` stdlib
// functions and the CSV serializer's `regionalFormat` option, so the
// two behave identically. Both stdlib/regional.go and
// format/csv import this package rather than one depending on the
// other.
package numfmt

import (
	"fmt"
	"strconv"
	"strings"
)

// Format names one of the five number-formatting dialects the CSV
// adapter's `regionalFormat` option and the `formatNumber` stdlib
// function both accept.
type Format string

const (
	None     Format = "none"
	USA      Format = "usa"
	European Format = "european"
	French   Format = "french"
	Swiss    Format = "swiss"
)

// Render formats n per the named regional dialect.
func Render(n float64, format Format, decimals int, useThousands bool) (string, error) {
	base := strconv.FormatFloat(n, 'f', decimals, 64)

	neg := strings.HasPrefix(base, "-")
	if neg {
		base = base[1:]
	}

	intPart, fracPart, _ := strings.Cut(base, ".")

	var sb strings.Builder
	if neg {
		sb.WriteByte('-')
	}

	switch format {
	case None:
		sb.WriteString(intPart)
		writeFraction(&sb, fracPart, decimals, '.')
	case USA:
		sb.WriteString(group(intPart, ",", useThousands))
		writeFraction(&sb, fracPart, decimals, '.')
	case European:
		sb.WriteString(group(intPart, ".", useThousands))
		writeFraction(&sb, fracPart, decimals, ',')
	case French:
		sb.WriteString(group(intPart, " ", useThousands))
		writeFraction(&sb, fracPart, decimals, ',')
	case Swiss:
		sb.WriteString(strings.ReplaceAll(group(intPart, ",", useThousands), ",", "'"))
		writeFraction(&sb, fracPart, decimals, '.')
	default:
		return "", fmt.Errorf("unknown regional format %q", format)
	}

	return sb.String(), nil
}

// Separators returns the thousands and decimal separators of the
// named dialect. Parse and the CSV adapter's regional type inference
// both consult it so their view of a dialect cannot drift.
func Separators(format Format) (group, decimal string, err error) {
	switch format {
	case None:
		return "", ".", nil
	case USA:
		return ",", ".", nil
	case European:
		return ".", ",", nil
	case French:
		return " ", ",", nil
	case Swiss:
		return "'", ".", nil
	default:
		return "", "", fmt.Errorf("unknown regional format %q", format)
	}
}

// Parse is Render's inverse: it reads a string formatted under the
// named regional dialect back into a float64.
func Parse(s string, format Format) (float64, error) {
	group, decimal, err := Separators(format)
	if err != nil {
		return 0, err
	}

	if group != "" {
		s = strings.ReplaceAll(s, group, "")
	}

	if decimal != "." {
		s = strings.ReplaceAll(s, decimal, ".")
	}

	f, perr := strconv.ParseFloat(s, 64)
	if perr != nil {
		return 0, fmt.Errorf("parse %q as a %s-formatted number: %w", s, format, perr)
	}

	return f, nil
}

func writeFraction(sb *strings.Builder, fracPart string, decimals int, sep byte) {
	if decimals <= 0 {
		return
	}

	sb.WriteByte(sep)
	sb.WriteString(fracPart)
}

func group(intPart, sep string, useThousands bool) string {
	if !useThousands || len(intPart) <= 3 {
		return intPart
	}

	var groups []string

	for len(intPart) > 3 {
		groups = append([]string{intPart[len(intPart)-3:]}, groups...)
		intPart = intPart[:len(intPart)-3]
	}

	groups = append([]string{intPart}, groups...)

	return strings.Join(groups, sep)
}
