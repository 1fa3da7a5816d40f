package image

// Layout describes the sections of an image to build.
// Sections are placed in order: header, text, pool, heap, arguments.
type Layout struct {
	Start    uint64   // Entry point, as an offset into Text.
	Text     []byte   // Program text.
	Pool     []byte   // Constant pool.
	HeapSize uint64   // Zeroed heap size.
	Args     [][]byte // Program arguments, stored nul-terminated.
}

// Build an image from a layout, filling in every header field.
func Build(layout Layout) (img *Image) {
	var argBytes uint64
	for _, arg := range layout.Args {
		argBytes += uint64(len(arg)) + 1
	}

	hdr := Header{
		TextBase:    TEXT_BASE,
		TextSize:    uint64(len(layout.Text)),
		PoolSize:    uint64(len(layout.Pool)),
		HeapSize:    layout.HeapSize,
		ArgCount:    uint64(len(layout.Args)),
		ArgBytes:    argBytes,
		ProgramSize: uint64(len(layout.Text) + len(layout.Pool)),
	}
	hdr.Start = hdr.TextBase + layout.Start
	hdr.PoolBase = hdr.TextBase + hdr.TextSize
	hdr.HeapBase = hdr.PoolBase + hdr.PoolSize
	hdr.ArgsBase = hdr.HeapBase + hdr.HeapSize
	hdr.Size = hdr.ArgsBase + hdr.ArgBytes

	img = New(hdr.Size)
	img.SetHeader(hdr)
	copy(img.Data[hdr.TextBase:], layout.Text)
	copy(img.Data[hdr.PoolBase:], layout.Pool)
	pos := hdr.ArgsBase
	for _, arg := range layout.Args {
		copy(img.Data[pos:], arg)
		pos += uint64(len(arg)) + 1
	}

	return
}
