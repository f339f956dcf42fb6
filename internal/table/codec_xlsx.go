package table

import (
	"fmt"

	"github.com/go-gota/gota/dataframe"
	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

type xlsxCodec struct{}

func (c *xlsxCodec) Read(path string) (dataframe.DataFrame, error) {
	workbook, err := excelize.OpenFile(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer workbook.Close()

	sheets := workbook.GetSheetList()
	if len(sheets) == 0 {
		return dataframe.DataFrame{}, fmt.Errorf("workbook has no sheets: %s", path)
	}
	rows, err := workbook.GetRows(sheets[0])
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to read sheet %s: %w", sheets[0], err)
	}
	return frameFromRecords(normalizeRecords(rows))
}

func (c *xlsxCodec) Write(df dataframe.DataFrame, path string) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	header := make([]any, df.Ncol())
	for i, name := range df.Names() {
		header[i] = name
	}
	if err := workbook.SetSheetRow(defaultSheetName, "A1", &header); err != nil {
		return fmt.Errorf("failed to write header row: %w", err)
	}

	for row := 0; row < df.Nrow(); row++ {
		values := make([]any, df.Ncol())
		for col := 0; col < df.Ncol(); col++ {
			values[col] = df.Elem(row, col).Val()
		}
		cell, err := excelize.CoordinatesToCellName(1, row+2)
		if err != nil {
			return err
		}
		if err := workbook.SetSheetRow(defaultSheetName, cell, &values); err != nil {
			return fmt.Errorf("failed to write row %d: %w", row, err)
		}
	}

	if err := workbook.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save workbook: %w", err)
	}
	return nil
}
