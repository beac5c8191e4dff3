package stdlib

import (
	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/numfmt"
	"github.com/utlx-lang/utlx/udm"
)

func init() {
	register(&Func{Name: "formatNumber", MinArity: 2, MaxArity: 4, Call: fnFormatNumber})
	register(&Func{Name: "parseNumber", MinArity: 2, MaxArity: 2, Call: fnParseNumber})
}

func fnFormatNumber(args []*udm.Value) (*udm.Value, error) {
	n, err := argNumber("formatNumber", args, 0)
	if err != nil {
		return nil, err
	}

	region, err := argString("formatNumber", args, 1)
	if err != nil {
		return nil, err
	}

	decimals := 2
	if len(args) >= 3 {
		decimals, err = argInt("formatNumber", args, 2)
		if err != nil {
			return nil, err
		}
	}

	useThousands := true
	if len(args) == 4 {
		b, ok := args[3].BoolValue()
		if !ok {
			return nil, errs.TypeOrArgument("formatNumber", "fourth argument must be a boolean")
		}

		useThousands = b
	}

	s, rerr := numfmt.Render(n, numfmt.Format(region), decimals, useThousands)
	if rerr != nil {
		return nil, errs.TypeOrArgument("formatNumber", rerr.Error())
	}

	return udm.String(s), nil
}

// parseNumber is formatNumber's inverse; the same dialect table backs
// both, so formatNumber output always parses back under the same
// region.
func fnParseNumber(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("parseNumber", args, 0)
	if err != nil {
		return nil, err
	}

	region, err := argString("parseNumber", args, 1)
	if err != nil {
		return nil, err
	}

	f, perr := numfmt.Parse(s, numfmt.Format(region))
	if perr != nil {
		return nil, errs.TypeOrArgument("parseNumber", perr.Error())
	}

	return udm.Float(f), nil
}
