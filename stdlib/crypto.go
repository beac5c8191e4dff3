package stdlib

import (
	"crypto/hmac"
	"crypto/md5" //nolint:gosec // exposed for interoperability with legacy systems, not for security use
	"crypto/sha256"
	"encoding/hex"

	"github.com/utlx-lang/utlx/udm"
)

// Hash functions are pure: no key material is retained across calls,
// matching the "every function is pure ... except the timer functions"
// contract.
func init() {
	register(&Func{Name: "sha256", MinArity: 1, MaxArity: 1, Call: fnSha256})
	register(&Func{Name: "md5", MinArity: 1, MaxArity: 1, Call: fnMd5})
	register(&Func{Name: "hmacSha256", MinArity: 2, MaxArity: 2, Call: fnHmacSha256})
}

func fnSha256(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("sha256", args, 0)
	if err != nil {
		return nil, err
	}

	sum := sha256.Sum256(b)

	return udm.String(hex.EncodeToString(sum[:])), nil
}

func fnMd5(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("md5", args, 0)
	if err != nil {
		return nil, err
	}

	sum := md5.Sum(b) //nolint:gosec

	return udm.String(hex.EncodeToString(sum[:])), nil
}

func fnHmacSha256(args []*udm.Value) (*udm.Value, error) {
	msg, err := argBytes("hmacSha256", args, 0)
	if err != nil {
		return nil, err
	}

	key, err := argBytes("hmacSha256", args, 1)
	if err != nil {
		return nil, err
	}

	mac := hmac.New(sha256.New, key)
	mac.Write(msg)

	return udm.String(hex.EncodeToString(mac.Sum(nil))), nil
}
