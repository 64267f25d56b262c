package messages

import (
	"bytes"
	"fmt"
	"io"

	snapshotfb "github.com/cbodonnell/tetris/flatbuffers/snapshot"
	gametypes "github.com/cbodonnell/tetris/pkg/game/types"
	flatbuffers "github.com/google/flatbuffers/go"
	"github.com/google/uuid"
	"github.com/klauspost/compress/zstd"
)

// SerializeSnapshot encodes a snapshot as a zstd compressed flatbuffer.
func SerializeSnapshot(s *gametypes.Snapshot) ([]byte, error) {
	if s == nil {
		return nil, fmt.Errorf("snapshot is nil")
	}

	b, err := SerializeSnapshotFlatbuffer(s)
	if err != nil {
		return nil, fmt.Errorf("failed to serialize snapshot: %v", err)
	}

	return compress(b)
}

// DeserializeSnapshot decodes data produced by SerializeSnapshot.
func DeserializeSnapshot(data []byte) (*gametypes.Snapshot, error) {
	b, err := decompress(data)
	if err != nil {
		return nil, err
	}

	s, err := DeserializeSnapshotFlatbuffer(b)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize snapshot: %v", err)
	}

	return s, nil
}

func compress(b []byte) ([]byte, error) {
	compressed := bytes.NewBuffer(nil)
	compWriter, err := zstd.NewWriter(compressed, zstd.WithEncoderLevel(zstd.SpeedFastest))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd writer: %v", err)
	}
	if _, err := compWriter.Write(b); err != nil {
		return nil, fmt.Errorf("failed to compress snapshot: %v", err)
	}
	if err := compWriter.Close(); err != nil {
		return nil, fmt.Errorf("failed to close zstd writer: %v", err)
	}

	return compressed.Bytes(), nil
}

func decompress(data []byte) ([]byte, error) {
	compReader, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to create zstd reader: %v", err)
	}
	defer compReader.Close()

	b, err := io.ReadAll(compReader)
	if err != nil {
		return nil, fmt.Errorf("failed to read decompressed snapshot: %v", err)
	}

	return b, nil
}

func SerializeSnapshotFlatbuffer(s *gametypes.Snapshot) ([]byte, error) {
	if len(s.Cells) != s.Height {
		return nil, fmt.Errorf("snapshot has %d rows, want %d", len(s.Cells), s.Height)
	}

	builder := flatbuffers.NewBuilder(0)

	sessionID := builder.CreateByteVector(s.SessionID[:])

	cells := make([]byte, 0, s.Width*s.Height)
	for y, row := range s.Cells {
		if len(row) != s.Width {
			return nil, fmt.Errorf("snapshot row %d has %d cells, want %d", y, len(row), s.Width)
		}
		for _, kind := range row {
			cells = append(cells, byte(kind))
		}
	}
	cellsVector := builder.CreateByteVector(cells)

	var piece flatbuffers.UOffsetT
	if s.Piece != nil {
		piece = SerializePieceStateFlatbuffer(builder, s.Piece)
	}

	snapshotfb.SnapshotStart(builder)
	snapshotfb.SnapshotAddSessionId(builder, sessionID)
	snapshotfb.SnapshotAddTimestamp(builder, s.Timestamp)
	snapshotfb.SnapshotAddPhase(builder, byte(s.Phase))
	snapshotfb.SnapshotAddWidth(builder, int32(s.Width))
	snapshotfb.SnapshotAddHeight(builder, int32(s.Height))
	snapshotfb.SnapshotAddCells(builder, cellsVector)
	if s.Piece != nil {
		snapshotfb.SnapshotAddPiece(builder, piece)
	}
	snapshotfb.SnapshotAddScore(builder, int32(s.Score))
	snapshotfb.SnapshotAddHighScore(builder, int32(s.HighScore))
	snapshotfb.SnapshotAddLevel(builder, int32(s.Level))
	snapshotfb.SnapshotAddLines(builder, int32(s.Lines))
	snapshot := snapshotfb.SnapshotEnd(builder)
	snapshotfb.FinishSnapshotBuffer(builder, snapshot)

	return builder.FinishedBytes(), nil
}

func SerializePieceStateFlatbuffer(builder *flatbuffers.Builder, p *gametypes.PieceState) flatbuffers.UOffsetT {
	shape := make([]byte, 0, p.Shape.Rows()*p.Shape.Cols())
	for _, row := range p.Shape {
		for _, filled := range row {
			if filled {
				shape = append(shape, 1)
			} else {
				shape = append(shape, 0)
			}
		}
	}
	shapeVector := builder.CreateByteVector(shape)

	snapshotfb.PieceStateStart(builder)
	snapshotfb.PieceStateAddKind(builder, byte(p.Kind))
	snapshotfb.PieceStateAddRows(builder, int32(p.Shape.Rows()))
	snapshotfb.PieceStateAddCols(builder, int32(p.Shape.Cols()))
	snapshotfb.PieceStateAddShape(builder, shapeVector)
	snapshotfb.PieceStateAddX(builder, int32(p.Position.X))
	snapshotfb.PieceStateAddY(builder, int32(p.Position.Y))
	return snapshotfb.PieceStateEnd(builder)
}

// DeserializeSnapshotFlatbuffer decodes an uncompressed snapshot flatbuffer.
// Malformed buffers are reported as errors.
func DeserializeSnapshotFlatbuffer(b []byte) (s *gametypes.Snapshot, err error) {
	defer func() {
		if r := recover(); r != nil {
			s, err = nil, fmt.Errorf("malformed snapshot buffer: %v", r)
		}
	}()

	if len(b) < flatbuffers.SizeUOffsetT {
		return nil, fmt.Errorf("snapshot buffer too short: %d bytes", len(b))
	}

	fb := snapshotfb.GetRootAsSnapshot(b, 0)

	s = &gametypes.Snapshot{
		Timestamp: fb.Timestamp(),
		Phase:     gametypes.Phase(fb.Phase()),
		Width:     int(fb.Width()),
		Height:    int(fb.Height()),
		Score:     int(fb.Score()),
		HighScore: int(fb.HighScore()),
		Level:     int(fb.Level()),
		Lines:     int(fb.Lines()),
	}

	if id := fb.SessionIdBytes(); len(id) > 0 {
		s.SessionID, err = uuid.FromBytes(id)
		if err != nil {
			return nil, fmt.Errorf("invalid session id: %v", err)
		}
	}

	cells := fb.CellsBytes()
	if s.Width < 0 || s.Height < 0 || len(cells) != s.Width*s.Height {
		return nil, fmt.Errorf("snapshot has %d cells, want %dx%d", len(cells), s.Width, s.Height)
	}
	s.Cells = make([][]gametypes.PieceKind, s.Height)
	for y := range s.Cells {
		s.Cells[y] = make([]gametypes.PieceKind, s.Width)
		for x := range s.Cells[y] {
			s.Cells[y][x] = gametypes.PieceKind(cells[y*s.Width+x])
		}
	}

	if pieceFlatbuffer := fb.Piece(nil); pieceFlatbuffer != nil {
		s.Piece, err = PieceStateFlatbufferToPieceState(pieceFlatbuffer)
		if err != nil {
			return nil, err
		}
	}

	return s, nil
}

func PieceStateFlatbufferToPieceState(fb *snapshotfb.PieceState) (*gametypes.PieceState, error) {
	rows, cols := int(fb.Rows()), int(fb.Cols())
	cells := fb.ShapeBytes()
	if rows < 0 || cols < 0 || len(cells) != rows*cols {
		return nil, fmt.Errorf("piece shape has %d cells, want %dx%d", len(cells), rows, cols)
	}

	shape := make(gametypes.Shape, rows)
	for y := range shape {
		shape[y] = make([]bool, cols)
		for x := range shape[y] {
			shape[y][x] = cells[y*cols+x] != 0
		}
	}

	return &gametypes.PieceState{
		Kind:  gametypes.PieceKind(fb.Kind()),
		Shape: shape,
		Position: gametypes.Position{
			X: int(fb.X()),
			Y: int(fb.Y()),
		},
	}, nil
}
