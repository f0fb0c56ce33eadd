// SPDX-License-Identifier: MIT

package metrics

import (
	"fmt"
	"io"
	"strings"

	"github.com/prometheus/client_golang/prometheus"
	dto "github.com/prometheus/client_model/go"
)

// WriteText prints every gauge and counter gathered from g as
// `name{label="value"} value` lines, sorted the way the registry gathers
// them. Other metric types are skipped.
func WriteText(w io.Writer, g prometheus.Gatherer) error {
	families, err := g.Gather()
	if err != nil {
		return fmt.Errorf("metrics: gather: %w", err)
	}
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			var value float64
			switch mf.GetType() {
			case dto.MetricType_GAUGE:
				value = m.GetGauge().GetValue()
			case dto.MetricType_COUNTER:
				value = m.GetCounter().GetValue()
			default:
				continue
			}
			if _, err := fmt.Fprintf(w, "%s%s %g\n", mf.GetName(), labels(m.GetLabel()), value); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteText prints the collector's registry.
func (c *Collector) WriteText(w io.Writer) error {
	return WriteText(w, c.gatherer)
}

func labels(pairs []*dto.LabelPair) string {
	if len(pairs) == 0 {
		return ""
	}
	parts := make([]string, len(pairs))
	for i, p := range pairs {
		parts[i] = fmt.Sprintf("%s=%q", p.GetName(), p.GetValue())
	}
	return "{" + strings.Join(parts, ",") + "}"
}
