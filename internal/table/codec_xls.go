package table

import (
	"errors"
	"fmt"
	"math"

	"github.com/extrame/xls"
	"github.com/go-gota/gota/dataframe"
)

// xlsCodec reads legacy BIFF workbooks. No maintained Go library writes
// BIFF, so mutating a .xls backing file is rejected before anything touches
// the disk.
type xlsCodec struct{}

func (c *xlsCodec) Read(path string) (dataframe.DataFrame, error) {
	workbook, closer, err := xls.OpenWithCloser(path, "utf-8")
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer closer.Close()

	records := workbook.ReadAllCells(math.MaxInt32)
	return frameFromRecords(normalizeRecords(records))
}

func (c *xlsCodec) Write(df dataframe.DataFrame, path string) error {
	return errors.New("writing legacy .xls files is not supported; convert the file to .xlsx or .csv")
}
