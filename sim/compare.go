package sim

// CruiseComparison is the timeline summary for one cruise count.
type CruiseComparison struct {
	NumCruises int     `yaml:"num_cruises" json:"num_cruises"`
	Summary    Summary `yaml:"summary" json:"summary"`
}

// CompareCruiseCounts expands cfg once per cruise count from 1 to maxCruises
// and summarizes each timeline. cfg itself is not modified.
func CompareCruiseCounts(cfg SimulationConfig, maxCruises int) []CruiseComparison {
	if maxCruises < 1 {
		return nil
	}
	rows := make([]CruiseComparison, 0, maxCruises)
	for n := 1; n <= maxCruises; n++ {
		c := cfg
		c.NumCruises = n
		rows = append(rows, CruiseComparison{NumCruises: n, Summary: Summarize(CreateStateConfigs(c))})
	}
	return rows
}

// BestByROI returns the row with the highest ROI; ties go to the fewest cruises.
func BestByROI(rows []CruiseComparison) (CruiseComparison, bool) {
	return bestBy(rows, func(s Summary) float64 { return s.ROIPercent })
}

// BestByNetCashFlow returns the row with the highest expected net cash flow;
// ties go to the fewest cruises.
func BestByNetCashFlow(rows []CruiseComparison) (CruiseComparison, bool) {
	return bestBy(rows, func(s Summary) float64 { return s.ExpectedNetCashFlow })
}

func bestBy(rows []CruiseComparison, metric func(Summary) float64) (CruiseComparison, bool) {
	if len(rows) == 0 {
		return CruiseComparison{}, false
	}
	best := rows[0]
	for _, r := range rows[1:] {
		if metric(r.Summary) > metric(best.Summary) {
			best = r
		}
	}
	return best, true
}
