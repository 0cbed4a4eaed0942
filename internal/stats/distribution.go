// Package stats derives descriptive statistics and histograms from the
// entry dates of a dictionary.
package stats

import (
	"errors"
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
)

// ErrEmptyDistribution indicates a distribution built from no data points.
var ErrEmptyDistribution = errors.New("distribution has no data points")

// Distribution holds sorted data points and their descriptive statistics.
// Variance and standard deviation are population values.
type Distribution struct {
	Title       string
	Description string
	Data        []float64

	Mean     float64
	Variance float64
	Stdev    float64
	Median   float64
	Q1       float64
	Q3       float64
	IQR      float64
	Min      float64
	Max      float64
	Range    float64
	Skewness float64
	Kurtosis float64
}

// NewDistribution sorts a copy of data and computes its statistics.
func NewDistribution(title, description string, data []float64) (*Distribution, error) {
	if len(data) == 0 {
		return nil, ErrEmptyDistribution
	}

	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)

	n := len(sorted)
	d := &Distribution{
		Title:       title,
		Description: description,
		Data:        sorted,
		Min:         sorted[0],
		Max:         sorted[n-1],
	}
	d.Range = d.Max - d.Min
	d.Mean = mean(sorted)
	d.Variance = variance(sorted, d.Mean)
	d.Stdev = math.Sqrt(d.Variance)
	d.Median = medianOf(sorted, 0, n)
	d.Q1 = medianOf(sorted, 0, n/2)
	if n%2 == 1 {
		d.Q3 = medianOf(sorted, n/2+1, n)
	} else {
		d.Q3 = medianOf(sorted, n/2, n)
	}
	d.IQR = d.Q3 - d.Q1
	d.Skewness = skewness(sorted, d.Mean, d.Stdev)
	d.Kurtosis = kurtosis(sorted, d.Mean, d.Stdev)
	return d, nil
}

// Size returns the number of data points.
func (d *Distribution) Size() int {
	return len(d.Data)
}

// WithoutOutliers returns a distribution of the points inside the
// 1.5*IQR fences. When the quartiles are undefined the data is kept as is.
func (d *Distribution) WithoutOutliers() (*Distribution, error) {
	title := d.Title + " (outliers removed)"
	if math.IsNaN(d.IQR) {
		return NewDistribution(title, d.Description, d.Data)
	}

	low := d.Q1 - 1.5*d.IQR
	high := d.Q3 + 1.5*d.IQR
	kept := make([]float64, 0, len(d.Data))
	for _, v := range d.Data {
		if v >= low && v <= high {
			kept = append(kept, v)
		}
	}
	return NewDistribution(title, d.Description, kept)
}

// String renders the distribution as a human-readable block.
func (d *Distribution) String() string {
	var sb strings.Builder
	sb.WriteString(d.Title)
	sb.WriteString("\n")
	if d.Description != "" {
		sb.WriteString(d.Description)
		sb.WriteString("\n")
	}
	rows := []struct {
		label string
		value string
	}{
		{"Size", strconv.Itoa(d.Size())},
		{"Mean", formatFloat(d.Mean)},
		{"Std. dev.", formatFloat(d.Stdev)},
		{"Variance", formatFloat(d.Variance)},
		{"Minimum", formatFloat(d.Min)},
		{"Q1", formatFloat(d.Q1)},
		{"Median", formatFloat(d.Median)},
		{"Q3", formatFloat(d.Q3)},
		{"Maximum", formatFloat(d.Max)},
		{"IQR", formatFloat(d.IQR)},
		{"Range", formatFloat(d.Range)},
		{"Skewness", formatFloat(d.Skewness)},
		{"Kurtosis", formatFloat(d.Kurtosis)},
	}
	for _, row := range rows {
		fmt.Fprintf(&sb, "\n%-11s%s", row.label+":", row.value)
	}
	return sb.String()
}

func formatFloat(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return "undefined"
	}
	return strconv.FormatFloat(v, 'f', 4, 64)
}

func mean(data []float64) float64 {
	var sum float64
	for _, v := range data {
		sum += v
	}
	return sum / float64(len(data))
}

func variance(data []float64, mean float64) float64 {
	var mse float64
	for _, v := range data {
		mse += (v - mean) * (v - mean)
	}
	return mse / float64(len(data))
}

// medianOf returns the median of data[start:end], NaN for an empty range.
func medianOf(data []float64, start, end int) float64 {
	size := end - start
	if size <= 0 {
		return math.NaN()
	}
	if size%2 == 1 {
		return data[start+size/2]
	}
	return (data[start+size/2-1] + data[start+size/2]) / 2
}

// skewness is Pearson's moment coefficient adjusted for sample size.
func skewness(data []float64, mean, stdev float64) float64 {
	n := float64(len(data))
	if n < 3 || stdev == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range data {
		sum += math.Pow(v-mean, 3)
	}
	return n / ((n - 1) * (n - 2) * math.Pow(stdev, 3)) * sum
}

func kurtosis(data []float64, mean, stdev float64) float64 {
	n := float64(len(data))
	if n < 4 || stdev == 0 {
		return math.NaN()
	}
	var sum float64
	for _, v := range data {
		sum += math.Pow(v-mean, 4)
	}
	coeff := n * (n + 1) / ((n - 1) * (n - 2) * (n - 3) * math.Pow(stdev, 4))
	term := 3 * (n - 1) * (n - 1) / ((n - 2) * (n - 3))
	return coeff*sum - term
}
