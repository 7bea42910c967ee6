package main

import (
	"fmt"
	"io"
	"maps"
	"runtime"
	"slices"
	"text/template"
	"time"
)

type Report struct {
	// Configuration
	ConfigPath string
	TickRate   int
	ClimbModel string
	Camera     string

	// Results
	Results        []Result
	TotalTime      time.Duration
	GCPauseMetrics bool
	MemStatsStart  runtime.MemStats
	MemStatsEnd    runtime.MemStats
}

type Stats struct {
	Min     time.Duration
	Max     time.Duration
	Avg     time.Duration
	Samples []time.Duration
}

func (s *Stats) Finalize() {
	if len(s.Samples) == 0 {
		return
	}

	var total time.Duration
	s.Min = s.Samples[0]
	s.Max = s.Samples[0]

	for _, sample := range s.Samples {
		s.Min = min(s.Min, sample)
		s.Max = max(s.Max, sample)
		total += sample
	}
	s.Avg = total / time.Duration(len(s.Samples))
}

func (r *Report) Generate(w io.Writer) error {
	const reportTemplate = `
# Locomotion Scenario Report

## Configuration
- **Config:** {{if .ConfigPath}}{{.ConfigPath}}{{else}}defaults{{end}}
- **Tick Rate:** {{.TickRate}} Hz
- **Climb Model:** {{.ClimbModel}}
- **Initial Camera:** {{.Camera}}
{{range .Results}}
## {{.Name}}
- **Ticks:** {{.Ticks}} ({{printf "%.2f" .SimTime}} s simulated)
- **Final Stance:** {{.Stance}} ({{.Camera}})
- **Final Position:** {{vec .Position}}
- **Planar Distance:** {{printf "%.2f" .Distance}} m
- **Max Height:** {{printf "%.2f" .MaxHeight}} m
{{- if .Destroyed}}
- **Objects Destroyed:** {{.Destroyed}}
{{- end}}
{{- if .MaxCombo}}
- **Max Combo:** {{.MaxCombo}}
{{- end}}
- **Time per Stance:**{{$st := .StanceTime}}{{range stances $st}} {{.}}={{printf "%.2f" (index $st .)}}s{{end}}
- **Update Time (Tick):** avg {{.UpdateTime.Avg}}, min {{.UpdateTime.Min}}, max {{.UpdateTime.Max}}
{{end}}
## Run
- **Total Time:** {{.TotalTime}}
- Heap Alloc:     {{.MemStatsStart.HeapAlloc}} (start) -> {{.MemStatsEnd.HeapAlloc}} (end) -> delta: {{bsub .MemStatsEnd.HeapAlloc .MemStatsStart.HeapAlloc}}
- Total Alloc:    {{.MemStatsStart.TotalAlloc}} (start) -> {{.MemStatsEnd.TotalAlloc}} (end) -> delta: {{bsub .MemStatsEnd.TotalAlloc .MemStatsStart.TotalAlloc}}

{{if .GCPauseMetrics}}
## GC Pause Durations
- **Total GC Pause:** {{.MemStatsEnd.PauseTotalNs | ns}}
- **Num GC Cycles:** {{ usub .MemStatsEnd.NumGC .MemStatsStart.NumGC }}
{{end}}
`

	fm := template.FuncMap{
		"vec": func(v [3]float64) string {
			return fmt.Sprintf("(%.2f, %.2f, %.2f)", v[0], v[1], v[2])
		},
		"stances": func(m map[string]float64) []string {
			return slices.Sorted(maps.Keys(m))
		},
		"bsub": func(a, b uint64) int64 {
			return int64(a) - int64(b)
		},
		"usub": func(a, b uint32) uint32 {
			return a - b
		},
		"ns": func(ns uint64) string {
			return time.Duration(ns).String()
		},
	}

	tmpl, err := template.New("report").Funcs(fm).Parse(reportTemplate)
	if err != nil {
		return err
	}

	return tmpl.Execute(w, r)
}
