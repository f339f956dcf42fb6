package table

import (
	"encoding/csv"
	"fmt"
	"os"

	"github.com/go-gota/gota/dataframe"
)

type csvCodec struct{}

func (c *csvCodec) Read(path string) (dataframe.DataFrame, error) {
	file, err := os.Open(path)
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to open CSV file: %w", err)
	}
	defer file.Close()

	records, err := csv.NewReader(file).ReadAll()
	if err != nil {
		return dataframe.DataFrame{}, fmt.Errorf("failed to parse CSV file: %w", err)
	}
	return frameFromRecords(records)
}

func (c *csvCodec) Write(df dataframe.DataFrame, path string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create CSV file: %w", err)
	}
	defer file.Close()

	if err := df.WriteCSV(file, dataframe.WriteHeader(true)); err != nil {
		return fmt.Errorf("failed to write CSV file: %w", err)
	}
	return nil
}
