package main

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
	"text/template"
)

// noMinorUnit is the marker used by ISO 4217 for currencies without a defined
// minor unit, such as precious metals and special drawing rights.
const noMinorUnit = "N.A."

type currency struct {
	Name   string
	Code   string
	Num    string
	Digits int
}

func main() {
	// Open the input file and read its contents
	data, err := readCsvFile(filepath.Join("scripts", "currency", "currency_data.csv"))
	if err != nil {
		panic(fmt.Errorf("error reading CSV file: %w", err))
	}

	// Convert the CSV records to a list of Currency objects
	currs, err := convertDataToCurrencies(data)
	if err != nil {
		panic(fmt.Errorf("error converting CSV records: %w", err))
	}

	// Generate Go code from the Currency objects using a template
	code, err := generateGoCode(filepath.Join("scripts", "currency", "currency_data.tmpl"), currs)
	if err != nil {
		panic(fmt.Errorf("error generating Go code: %w", err))
	}

	// Write the generated Go code to a file
	err = writeToFile("currency_data.go", code)
	if err != nil {
		panic(fmt.Errorf("error writing to file: %w", err))
	}
}

func readCsvFile(filename string) ([][]string, error) {
	// Open the CSV file
	in, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer func() { _ = in.Close() }()

	// Read the CSV records
	reader := csv.NewReader(in)
	_, err = reader.Read() // header
	if err != nil {
		return nil, err
	}
	recs, err := reader.ReadAll()
	if err != nil {
		return nil, err
	}

	return recs, nil
}

// rank keeps XXX at index 0, so that the zero value of Currency is XXX,
// and XTS right after it.
func rank(code string) int {
	switch code {
	case "XXX":
		return 0
	case "XTS":
		return 1
	}
	return 2
}

func convertDataToCurrencies(data [][]string) ([]currency, error) {
	// Sort the CSV records by currency code
	sort.SliceStable(data, func(i, j int) bool {
		a, b := data[i][1], data[j][1]
		if rank(a) != rank(b) {
			return rank(a) < rank(b)
		}
		return a < b
	})

	// Convert the CSV records to Currency objects
	currs := make([]currency, 0, len(data))
	seen := make(map[string]bool, 2*len(data))
	for _, rec := range data {
		code, num := rec[1], rec[2]
		if seen[code] || seen[num] {
			return nil, fmt.Errorf("duplicate currency %v (%v)", code, num)
		}
		seen[code], seen[num] = true, true
		digits := -1
		if rec[3] != noMinorUnit {
			d, err := strconv.Atoi(rec[3])
			if err != nil {
				return nil, fmt.Errorf("currency %v: minor unit %q: %w", code, rec[3], err)
			}
			digits = d
		}
		currs = append(currs, currency{
			Name:   rec[0],
			Code:   code,
			Num:    num,
			Digits: digits,
		})
	}
	return currs, nil
}

func generateGoCode(filename string, currs []currency) ([]byte, error) {
	// Create a new template object from the template file
	fmap := template.FuncMap{
		"lower": strings.ToLower,
	}
	tmpl, err := template.New(filepath.Base(filename)).Funcs(fmap).ParseFiles(filename)
	if err != nil {
		return nil, err
	}

	// Execute the template
	var output bytes.Buffer
	err = tmpl.Execute(&output, currs)
	if err != nil {
		return nil, err
	}

	// Format the output as Go code
	formatted, err := format.Source(output.Bytes())
	if err != nil {
		return nil, err
	}
	return formatted, nil
}

func writeToFile(filename string, content []byte) error {
	// Write the content to a file
	out, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer func() { _ = out.Close() }()
	writer := bufio.NewWriter(out)
	_, err = writer.Write(content)
	if err != nil {
		return err
	}
	return writer.Flush()
}
