package stdlib

import (
	"archive/zip"
	"bytes"
	"compress/flate"
	"compress/gzip"
	"io"

	"github.com/utlx-lang/utlx/errs"
	"github.com/utlx-lang/utlx/udm"
)

func init() {
	register(&Func{Name: "gzip", MinArity: 1, MaxArity: 1, Call: fnGzip})
	register(&Func{Name: "gunzip", MinArity: 1, MaxArity: 1, Call: fnGunzip})
	register(&Func{Name: "deflate", MinArity: 1, MaxArity: 1, Call: fnDeflate})
	register(&Func{Name: "inflate", MinArity: 1, MaxArity: 1, Call: fnInflate})
	register(&Func{Name: "zipList", MinArity: 1, MaxArity: 1, Call: fnZipList})
	register(&Func{Name: "zipReadEntry", MinArity: 2, MaxArity: 2, Call: fnZipReadEntry})
	register(&Func{Name: "zipCreate", MinArity: 1, MaxArity: 1, Call: fnZipCreate})
	register(&Func{Name: "decompress", MinArity: 1, MaxArity: 1, Call: fnDecompress})
	register(&Func{Name: "isGzipped", MinArity: 1, MaxArity: 1, Call: fnIsGzipped})
}

func fnGzip(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("gzip", args, 0)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	w := gzip.NewWriter(&buf)
	if _, werr := w.Write(b); werr != nil {
		return nil, errs.Compression("gzip", werr)
	}

	if cerr := w.Close(); cerr != nil {
		return nil, errs.Compression("gzip", cerr)
	}

	return udm.Binary(buf.Bytes()), nil
}

func fnGunzip(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("gunzip", args, 0)
	if err != nil {
		return nil, err
	}

	r, gerr := gzip.NewReader(bytes.NewReader(b))
	if gerr != nil {
		return nil, errs.Compression("gunzip", gerr)
	}

	defer r.Close()

	out, rerr := io.ReadAll(r)
	if rerr != nil {
		return nil, errs.Compression("gunzip", rerr)
	}

	return udm.Binary(out), nil
}

func fnDeflate(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("deflate", args, 0)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	w, werr := flate.NewWriter(&buf, flate.DefaultCompression)
	if werr != nil {
		return nil, errs.Compression("deflate", werr)
	}

	if _, werr := w.Write(b); werr != nil {
		return nil, errs.Compression("deflate", werr)
	}

	if cerr := w.Close(); cerr != nil {
		return nil, errs.Compression("deflate", cerr)
	}

	return udm.Binary(buf.Bytes()), nil
}

func fnInflate(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("inflate", args, 0)
	if err != nil {
		return nil, err
	}

	r := flate.NewReader(bytes.NewReader(b))
	defer r.Close()

	out, rerr := io.ReadAll(r)
	if rerr != nil {
		return nil, errs.Compression("inflate", rerr)
	}

	return udm.Binary(out), nil
}

// fnZipList and fnZipReadEntry both serve JAR archives as well: a JAR
// is a zip with a conventional MANIFEST.MF entry, requiring no
// separate code path.
func fnZipList(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("zipList", args, 0)
	if err != nil {
		return nil, err
	}

	r, zerr := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if zerr != nil {
		return nil, errs.Compression("zipList", zerr)
	}

	out := make([]*udm.Value, 0, len(r.File))
	for _, f := range r.File {
		out = append(out, udm.String(f.Name))
	}

	return udm.ArrayOf(out), nil
}

func fnZipReadEntry(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("zipReadEntry", args, 0)
	if err != nil {
		return nil, err
	}

	name, err := argString("zipReadEntry", args, 1)
	if err != nil {
		return nil, err
	}

	r, zerr := zip.NewReader(bytes.NewReader(b), int64(len(b)))
	if zerr != nil {
		return nil, errs.Compression("zipReadEntry", zerr)
	}

	for _, f := range r.File {
		if f.Name != name {
			continue
		}

		rc, oerr := f.Open()
		if oerr != nil {
			return nil, errs.Compression("zipReadEntry", oerr)
		}

		defer rc.Close()

		data, rerr := io.ReadAll(rc)
		if rerr != nil {
			return nil, errs.Compression("zipReadEntry", rerr)
		}

		return udm.Binary(data), nil
	}

	return nil, errs.Compression("zipReadEntry", errZipEntryNotFound(name))
}

func fnZipCreate(args []*udm.Value) (*udm.Value, error) {
	obj, err := argObject("zipCreate", args, 0)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer

	w := zip.NewWriter(&buf)

	for _, kv := range obj.Properties() {
		data, derr := argBytesValue("zipCreate", kv.Value)
		if derr != nil {
			return nil, derr
		}

		fw, cerr := w.Create(kv.Key)
		if cerr != nil {
			return nil, errs.Compression("zipCreate", cerr)
		}

		if _, werr := fw.Write(data); werr != nil {
			return nil, errs.Compression("zipCreate", werr)
		}
	}

	if cerr := w.Close(); cerr != nil {
		return nil, errs.Compression("zipCreate", cerr)
	}

	return udm.Binary(buf.Bytes()), nil
}

func argBytesValue(fn string, v *udm.Value) ([]byte, error) {
	if v.Kind() == udm.KindBinary {
		return v.Bytes(), nil
	}

	if s, ok := v.StringValue(); ok {
		return []byte(s), nil
	}

	return nil, errs.TypeOrArgument(fn, "entry values must be strings or binary values")
}

// decompress dispatches on magic bytes, for scripts that receive a
// compressed payload without knowing its envelope in advance: gzip
// data is gunzipped, a zip archive (`PK`) is rejected with an error
// pointing at zipList/zipReadEntry, and anything else is inflated as
// a raw deflate stream. zlib-wrapped streams are not recognized.
func fnDecompress(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("decompress", args, 0)
	if err != nil {
		return nil, err
	}

	switch {
	case len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b:
		return fnGunzip(args)
	case len(b) >= 4 && b[0] == 'P' && b[1] == 'K':
		return nil, errs.TypeOrArgument("decompress", "zip archives must be read with zipList/zipReadEntry")
	default:
		return fnInflate(args)
	}
}

// fnIsGzipped reports whether data starts with the gzip magic bytes,
// without attempting to decompress it.
func fnIsGzipped(args []*udm.Value) (*udm.Value, error) {
	b, err := argBytes("isGzipped", args, 0)
	if err != nil {
		return nil, err
	}

	return udm.Bool(len(b) >= 2 && b[0] == 0x1f && b[1] == 0x8b), nil
}

type zipEntryNotFoundError struct{ name string }

func (e *zipEntryNotFoundError) Error() string { return "no entry named " + e.name }

func errZipEntryNotFound(name string) error { return &zipEntryNotFoundError{name: name} }
