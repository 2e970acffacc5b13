package cli

import (
	"fmt"

	dto "github.com/prometheus/client_model/go"
	"github.com/spf13/cobra"
)

func newStatsCmd(s *shell) *cobra.Command {
	return &cobra.Command{
		Use:                ".stats",
		Short:              "Print page cache counters",
		DisableFlagParsing: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			families, err := s.db.Table().Pager().Metrics().Gather()
			if err != nil {
				return err
			}

			for _, mf := range families {
				for _, m := range mf.GetMetric() {
					fmt.Fprintf(s.out, "%s %g\n", mf.GetName(), metricValue(mf.GetType(), m))
				}
			}
			return nil
		},
	}
}

func metricValue(t dto.MetricType, m *dto.Metric) float64 {
	switch t {
	case dto.MetricType_COUNTER:
		return m.GetCounter().GetValue()
	case dto.MetricType_GAUGE:
		return m.GetGauge().GetValue()
	default:
		return m.GetUntyped().GetValue()
	}
}
