package stdlib

import (
	"strings"
	"time"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

var dateOnlyLayouts = []string{"2006-01-02", "2006/01/02"}

var dateTimeLayouts = []string{
	time.RFC3339,
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

func init() {
	register(&Func{Name: "parseDate", MinArity: 1, MaxArity: 1, Call: fnParseDate})
	register(&Func{Name: "parseDateOnly", MinArity: 1, MaxArity: 1, Call: fnParseDateOnly})
	register(&Func{Name: "parseDateTime", MinArity: 1, MaxArity: 1, Call: fnParseDateTime})
	register(&Func{Name: "formatDate", MinArity: 2, MaxArity: 3, Call: fnFormatDate})
	register(&Func{Name: "now", MinArity: 0, MaxArity: 0, Call: fnNow})
}

// parseDate auto-detects Date vs DateTime: a value with no time
// component parses as a calendar Date, otherwise as a DateTime
// (decided for "2020/03/15" to succeed as a Date).
func fnParseDate(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("parseDate", args, 0)
	if err != nil {
		return nil, err
	}

	for _, layout := range dateOnlyLayouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return udm.Date(t), nil
		}
	}

	for _, layout := range dateTimeLayouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return udm.DateTime(t), nil
		}
	}

	return nil, errs.TypeOrArgument("parseDate", "string is not a recognized date or datetime")
}

func fnParseDateOnly(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("parseDateOnly", args, 0)
	if err != nil {
		return nil, err
	}

	for _, layout := range dateOnlyLayouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return udm.Date(t), nil
		}
	}

	return nil, errs.TypeOrArgument("parseDateOnly", "string is not a plain date")
}

func fnParseDateTime(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("parseDateTime", args, 0)
	if err != nil {
		return nil, err
	}

	for _, layout := range dateTimeLayouts {
		if t, perr := time.Parse(layout, s); perr == nil {
			return udm.DateTime(t), nil
		}
	}

	return nil, errs.TypeOrArgument("parseDateTime", "string is not a recognized datetime")
}

func fnNow(_ []*udm.Value) (*udm.Value, error) {
	return udm.DateTime(time.Now().UTC()), nil
}

// formatDate accepts ICU-style patterns (a small, commonly used
// subset) and an optional BCP-47 locale tag honored for month/day
// names.
func fnFormatDate(args []*udm.Value) (*udm.Value, error) {
	v := args[0]

	switch v.Kind() {
	case udm.KindDate, udm.KindDateTime, udm.KindLocalDateTime, udm.KindTime:
	default:
		return nil, errs.TypeOrArgument("formatDate", "first argument must be a date/time value")
	}

	pattern, err := argString("formatDate", args, 1)
	if err != nil {
		return nil, err
	}

	locale := "en"

	if len(args) == 3 {
		locale, err = argString("formatDate", args, 2)
		if err != nil {
			return nil, err
		}
	}

	return udm.String(formatICU(v.Time(), pattern, locale)), nil
}

var monthNames = map[string][]string{
	"en": {"January", "February", "March", "April", "May", "June", "July", "August", "September", "October", "November", "December"},
	"fr": {"janvier", "février", "mars", "avril", "mai", "juin", "juillet", "août", "septembre", "octobre", "novembre", "décembre"},
	"de": {"Januar", "Februar", "März", "April", "Mai", "Juni", "Juli", "August", "September", "Oktober", "November", "Dezember"},
}

var weekdayNames = map[string][]string{
	"en": {"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"},
	"fr": {"dimanche", "lundi", "mardi", "mercredi", "jeudi", "vendredi", "samedi"},
	"de": {"Sonntag", "Montag", "Dienstag", "Mittwoch", "Donnerstag", "Freitag", "Samstag"},
}

func localeNames(table map[string][]string, locale string) []string {
	tag := strings.ToLower(strings.SplitN(locale, "-", 2)[0])
	if names, ok := table[tag]; ok {
		return names
	}

	return table["en"]
}

// formatICU implements a practical subset of ICU date pattern tokens:
// yyyy/yy, MMMM/MMM/MM/M, dd/d, HH/H, mm, ss, EEEE/EEE.
func formatICU(t time.Time, pattern, locale string) string {
	var sb strings.Builder

	months := localeNames(monthNames, locale)
	weekdays := localeNames(weekdayNames, locale)

	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		c := runes[i]

		count := 1
		for i+count < len(runes) && runes[i+count] == c {
			count++
		}

		switch c {
		case 'y':
			if count >= 4 {
				sb.WriteString(pad0(t.Year(), 4))
			} else {
				sb.WriteString(pad0(t.Year()%100, 2))
			}
		case 'M':
			switch {
			case count >= 4:
				sb.WriteString(months[int(t.Month())-1])
			case count == 3:
				sb.WriteString(abbrev(months[int(t.Month())-1]))
			default:
				sb.WriteString(pad0(int(t.Month()), count))
			}
		case 'd':
			sb.WriteString(pad0(t.Day(), count))
		case 'H':
			sb.WriteString(pad0(t.Hour(), count))
		case 'm':
			sb.WriteString(pad0(t.Minute(), count))
		case 's':
			sb.WriteString(pad0(t.Second(), count))
		case 'E':
			if count >= 4 {
				sb.WriteString(weekdays[int(t.Weekday())])
			} else {
				sb.WriteString(abbrev(weekdays[int(t.Weekday())]))
			}
		default:
			sb.WriteString(strings.Repeat(string(c), count))
		}

		i += count
	}

	return sb.String()
}

// abbrev takes the first three runes of a locale name; slicing bytes
// would cut a non-ASCII name (fr "février") mid-rune.
func abbrev(name string) string {
	runes := []rune(name)
	if len(runes) <= 3 {
		return name
	}

	return string(runes[:3])
}

func pad0(n, width int) string {
	s := itoa(n)
	for len(s) < width {
		s = "0" + s
	}

	return s
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}

	neg := n < 0
	if neg {
		n = -n
	}

	var digits []byte
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}

	if neg {
		return "-" + string(digits)
	}

	return string(digits)
}
