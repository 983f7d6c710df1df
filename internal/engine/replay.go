package engine

import (
	"stowdb/internal/diskio"
	"stowdb/internal/index"
	"stowdb/internal/record"
)

// replay reads exactly header.TotalRecords records sequentially from the
// start of the log region and rebuilds idx from their Set/Remove
// operations. idx is populated in place and reflects only live keys once
// replay completes.
func replay(file *diskio.File, header record.Header, idx *index.Index) error {
	var relOff int64

	for i := uint64(0); i < header.TotalRecords; i++ {
		absOff := diskio.HeaderSize + relOff

		prefix, err := file.ReadExactAt(absOff, record.LengthPrefixSize)
		if err != nil {
			return err
		}
		payloadLen := record.DecodeLengthPrefix(prefix)

		payload, err := file.ReadExactAt(absOff+record.LengthPrefixSize, int(payloadLen))
		if err != nil {
			return err
		}

		rec, err := record.Decode(payload, absOff)
		if err != nil {
			return err
		}

		size := uint32(payloadLen) + record.LengthPrefixSize

		switch rec.Op {
		case record.OpSet:
			idx.Put(rec.Key, index.Pointer{Offset: relOff, Size: size})
		case record.OpRemove:
			idx.Delete(rec.Key)
		}

		relOff += int64(size)
	}

	return nil
}
