package regfmt

import (
	"encoding/csv"
	"io"
	"strconv"
)

var csvHeader = []string{
	"model", "dependent", "block", "coefficient",
	"estimate", "std_error", "statistic", "p_value",
}

// writeCSV emits one tidy row per coefficient so results load directly
// into analysis tools. The model column numbers models in input order;
// volatility models contribute a second block of rows.
func writeCSV(w io.Writer, models []*ModelResult) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return err
	}
	for i, m := range models {
		id := strconv.Itoa(i + 1)
		for _, c := range m.Coefficients {
			if err := cw.Write(csvRow(id, m.Dependent, "coefficients", c)); err != nil {
				return err
			}
		}
		for _, c := range m.VolCoefficients {
			if err := cw.Write(csvRow(id, m.Dependent, "volatility", c)); err != nil {
				return err
			}
		}
	}
	cw.Flush()
	return cw.Error()
}

func csvRow(id, dependent, block string, c Coefficient) []string {
	return []string{
		id, dependent, block, c.Name,
		strconv.FormatFloat(c.Estimate, 'g', -1, 64),
		strconv.FormatFloat(c.StdErr, 'g', -1, 64),
		strconv.FormatFloat(c.Stat, 'g', -1, 64),
		strconv.FormatFloat(c.PValue, 'g', -1, 64),
	}
}
