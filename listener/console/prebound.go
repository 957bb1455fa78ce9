package console

import root "github.com/trickstertwo/xlogq"

// encodeStatic pre-encodes Options.Fields for the chosen format.
func encodeStatic(fields []root.Field, opts Options) []byte {
	if len(fields) == 0 {
		return nil
	}
	buf := getBuf(256)
	defer putBuf(buf)
	for i := range fields {
		if opts.Format == FormatJSON {
			appendJSONField(buf, &fields[i], opts)
		} else {
			appendTextField(buf, &fields[i]) // leading space included
		}
	}
	return append([]byte(nil), buf.b...)
}
