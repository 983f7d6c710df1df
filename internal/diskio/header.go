package diskio

import "stowdb/internal/record"

// ReadHeader reads and decodes the fixed-size header at the start of the
// file. Callers are expected to have already verified Len() >= HeaderSize.
func (f *File) ReadHeader() (record.Header, error) {
	buf, err := f.ReadExactAt(0, record.HeaderSize)
	if err != nil {
		return record.Header{}, err
	}
	h, err := record.DecodeHeader(buf)
	if err != nil {
		f.log.Errorw("corrupt header", "path", f.path, "error", err)
		return record.Header{}, err
	}
	return h, nil
}

// WriteHeader encodes h and writes it to the start of the file.
func (f *File) WriteHeader(h record.Header) error {
	buf, err := record.EncodeHeader(h)
	if err != nil {
		return err
	}
	return f.WriteAt(0, buf)
}

// InitHeader writes a zeroed header and extends the file to at least
// HeaderSize bytes, used when opening a file shorter than the header.
func (f *File) InitHeader() (record.Header, error) {
	h := record.Header{}
	if err := f.SetLen(record.HeaderSize); err != nil {
		return h, err
	}
	if err := f.WriteHeader(h); err != nil {
		return h, err
	}
	f.log.Infow("initialized empty header", "path", f.path)
	return h, nil
}
