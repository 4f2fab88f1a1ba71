package main

import (
	"io"
	"math"

	"github.com/goccy/go-json"
	"github.com/hyp3rd/ewrap"
)

// statsDocument fixes the wire field order. JSON has no encoding for NaN or
// ±Inf, so non-finite values (coef_var with a zero mean) go out as null.
type statsDocument struct {
	Min     *float64 `json:"min"`
	Max     *float64 `json:"max"`
	Mean    *float64 `json:"mean"`
	Median  *float64 `json:"median"`
	Q1      *float64 `json:"q1"`
	Q3      *float64 `json:"q3"`
	StdDev  *float64 `json:"std_dev"`
	CoefVar *float64 `json:"coef_var"`
}

func finite(v float64) *float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return nil
	}
	return &v
}

func encodeStats(st Stats) ([]byte, error) {
	doc := statsDocument{
		Min:     finite(st.Min),
		Max:     finite(st.Max),
		Mean:    finite(st.Mean),
		Median:  finite(st.Median),
		Q1:      finite(st.Q1),
		Q3:      finite(st.Q3),
		StdDev:  finite(st.StdDev),
		CoefVar: finite(st.CoefVar),
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return nil, ewrap.Wrapf(ErrSerialization, "encoding statistics: %v", err)
	}
	return append(data, '\n'), nil
}

// writeStats emits the result as a single line. The line is fully encoded
// before anything reaches w.
func writeStats(w io.Writer, st Stats) error {
	line, err := encodeStats(st)
	if err != nil {
		return err
	}
	if _, err := w.Write(line); err != nil {
		return ewrap.Wrapf(ErrIO, "writing output: %v", err)
	}
	return nil
}
