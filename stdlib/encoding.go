package stdlib

import (
	"encoding/base64"
	"net/url"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

func init() {
	register(&Func{Name: "base64Encode", MinArity: 1, MaxArity: 1, Call: fnBase64Encode})
	register(&Func{Name: "base64Decode", MinArity: 1, MaxArity: 1, Call: fnBase64Decode})
	register(&Func{Name: "urlEncode", MinArity: 1, MaxArity: 1, Call: fnURLEncode})
	register(&Func{Name: "urlDecode", MinArity: 1, MaxArity: 1, Call: fnURLDecode})
}

func fnBase64Encode(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("base64Encode", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.String(base64.StdEncoding.EncodeToString(b)), nil
}

func fnBase64Decode(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("base64Decode", args, 0)
	if err != nil {
		return nil, err
	}

	b, decErr := base64.StdEncoding.DecodeString(s)
	if decErr != nil {
		return nil, errs.TypeOrArgument("base64Decode", "argument is not valid base64")
	}

	return udm.Binary(b), nil
}

func fnURLEncode(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("urlEncode", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.String(url.QueryEscape(s)), nil
}

func fnURLDecode(args []*udm.Value) (*udm.Value, error) {
	s, err := argString("urlDecode", args, 0)
	if err != nil {
		return nil, err
	}

	out, decErr := url.QueryUnescape(s)
	if decErr != nil {
		return nil, errs.TypeOrArgument("urlDecode", "argument is not valid percent-encoding")
	}

	return udm.String(out), nil
}
