// Package records exports archived games to Parquet files for offline
// analysis.
package records

import (
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/reader"
	"github.com/xitongsys/parquet-go/writer"

	"github.com/VeeDeltaVee/knight-witch/internal/storage"
)

// parallelism is the marshal worker count handed to the Parquet
// writer and reader.
const parallelism int64 = 4

// MoveRecord is one half-move of an exported game.
type MoveRecord struct {
	Ply  int32  `parquet:"name=ply, type=INT32"`
	Text string `parquet:"name=text, type=BYTE_ARRAY, convertedtype=UTF8"`
}

// GameRecord is one exported game row.
type GameRecord struct {
	GameID     int64        `parquet:"name=game_id, type=INT64"`
	Result     string       `parquet:"name=result, type=BYTE_ARRAY, convertedtype=UTF8"`
	PlyCount   int32        `parquet:"name=ply_count, type=INT32"`
	StartedAt  int64        `parquet:"name=started_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	FinishedAt int64        `parquet:"name=finished_at, type=INT64, convertedtype=TIMESTAMP_MILLIS"`
	Moves      []MoveRecord `parquet:"name=moves, type=LIST"`
}

// FromStorage converts an archived game into its export row. Plies are
// numbered from one.
func FromStorage(game *storage.GameRecord) GameRecord {
	moves := make([]MoveRecord, len(game.Moves))
	for i, text := range game.Moves {
		moves[i] = MoveRecord{Ply: int32(i + 1), Text: text}
	}
	return GameRecord{
		GameID:     int64(game.ID),
		Result:     game.Result.String(),
		PlyCount:   int32(game.PlyCount),
		StartedAt:  game.StartedAt.UnixMilli(),
		FinishedAt: game.FinishedAt.UnixMilli(),
		Moves:      moves,
	}
}

// Write streams rows into a Parquet file at path with SNAPPY
// compression, consuming the channel until it closes.
func Write(path string, rows <-chan GameRecord) error {
	fileWriter, err := local.NewLocalFileWriter(path)
	if err != nil {
		return err
	}
	defer fileWriter.Close()

	parquetWriter, err := writer.NewParquetWriter(fileWriter, new(GameRecord), parallelism)
	if err != nil {
		return err
	}
	parquetWriter.CompressionType = parquet.CompressionCodec_SNAPPY

	for row := range rows {
		if err := parquetWriter.Write(row); err != nil {
			return err
		}
	}
	if err := parquetWriter.WriteStop(); err != nil {
		return err
	}
	return fileWriter.Close()
}

// ExportGames writes the archived games to path in the order given.
func ExportGames(path string, games []*storage.GameRecord) error {
	rows := make(chan GameRecord)
	go func() {
		defer close(rows)
		for _, game := range games {
			rows <- FromStorage(game)
		}
	}()
	return Write(path, rows)
}

// Read loads every row of a Parquet export.
func Read(path string) ([]GameRecord, error) {
	fileReader, err := local.NewLocalFileReader(path)
	if err != nil {
		return nil, err
	}
	defer fileReader.Close()

	parquetReader, err := reader.NewParquetReader(fileReader, new(GameRecord), parallelism)
	if err != nil {
		return nil, err
	}
	defer parquetReader.ReadStop()

	rows := make([]GameRecord, int(parquetReader.GetNumRows()))
	if err := parquetReader.Read(&rows); err != nil {
		return nil, err
	}
	return rows, nil
}
