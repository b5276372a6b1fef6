package main

import (
	"github.com/chazu/boxkit/pkg/engine"
	"github.com/chazu/boxkit/pkg/kernel"
	"github.com/chazu/boxkit/pkg/scene"
	"github.com/chazu/boxkit/pkg/tessellate"
	"go.uber.org/zap"
)

// colorPalette assigns distinct colors to meshes for downstream viewers.
var colorPalette = []string{
	"#4A90D9", "#E67E22", "#2ECC71", "#9B59B6",
	"#E74C3C", "#1ABC9C", "#F39C12", "#3498DB",
}

// App runs scripts and scene files through the engine, validator and
// tessellator and collects the outcome into a Report.
type App struct {
	engine *engine.Engine
	kernel kernel.Kernel // nil disables meshing
	log    *zap.Logger
}

// BoxData is the JSON form of one scene box.
type BoxData struct {
	ID     string    `json:"id"`
	Name   string    `json:"name"`
	Dim    int       `json:"dim"`
	Min    []float64 `json:"min"`
	Max    []float64 `json:"max"`
	Area   float64   `json:"area"`
	Volume float64   `json:"volume"`
	String string    `json:"string"`
}

// MeshData is the JSON form of a tessellated box.
type MeshData struct {
	Vertices []float32 `json:"vertices"`
	Normals  []float32 `json:"normals"`
	Indices  []uint32  `json:"indices"`
	Name     string    `json:"name"`
	Color    string    `json:"color"`
}

// FindingData is the JSON form of a validation finding.
type FindingData struct {
	Severity string `json:"severity"`
	Box      string `json:"box,omitempty"`
	Other    string `json:"other,omitempty"`
	Message  string `json:"message"`
}

// Report is everything boxsh prints.
type Report struct {
	Value    string             `json:"value,omitempty"`
	Boxes    []BoxData          `json:"boxes"`
	Findings []FindingData      `json:"findings"`
	Errors   []engine.EvalError `json:"errors"`
	Meshes   []MeshData         `json:"meshes,omitempty"`
}

// Failed reports whether evaluation or validation produced errors.
func (r *Report) Failed() bool {
	if len(r.Errors) > 0 {
		return true
	}
	for _, f := range r.Findings {
		if f.Severity == scene.SeverityError.String() {
			return true
		}
	}
	return false
}

// NewApp creates an App. Pass a nil kernel to skip tessellation.
func NewApp(eng *engine.Engine, k kernel.Kernel, log *zap.Logger) *App {
	if log == nil {
		log = zap.NewNop()
	}
	return &App{engine: eng, kernel: k, log: log}
}

func newReport() *Report {
	return &Report{
		Boxes:    []BoxData{},
		Findings: []FindingData{},
		Errors:   []engine.EvalError{},
	}
}

// Evaluate runs a box DSL script.
func (a *App) Evaluate(source string) *Report {
	report := newReport()

	res, err := a.engine.EvaluateResult(source)
	if err != nil {
		// Fatal error (panic, timeout, etc.)
		a.log.Error("evaluate failed", zap.Error(err))
		report.Errors = append(report.Errors, engine.EvalError{Message: err.Error()})
		return report
	}
	if len(res.Errors) > 0 {
		report.Errors = append(report.Errors, res.Errors...)
		return report
	}

	report.Value = res.Value
	a.fill(report, res.Scene, res.Findings)
	return report
}

// Inspect reports on a scene loaded from elsewhere.
func (a *App) Inspect(s *scene.Scene) *Report {
	report := newReport()
	a.fill(report, s, scene.Validate(s))
	return report
}

func (a *App) fill(report *Report, s *scene.Scene, findings []scene.Finding) {
	for _, n := range s.List() {
		min, max := n.Box.Bounds()
		report.Boxes = append(report.Boxes, BoxData{
			ID:     n.ID.String(),
			Name:   n.Name,
			Dim:    int(n.Box.Dim()),
			Min:    min,
			Max:    max,
			Area:   n.Box.Area(),
			Volume: n.Box.Volume(),
			String: n.Box.String(),
		})
	}

	for _, f := range findings {
		fd := FindingData{Severity: f.Severity.String(), Message: f.Message}
		if !f.NodeID.IsZero() {
			fd.Box = f.NodeID.String()
		}
		if !f.Other.IsZero() {
			fd.Other = f.Other.String()
		}
		report.Findings = append(report.Findings, fd)
	}

	if a.kernel == nil {
		return
	}
	if scene.HasErrors(findings) {
		a.log.Warn("skipping tessellation, scene has invalid boxes")
		return
	}

	meshes, err := tessellate.Tessellate(s, a.kernel)
	if err != nil {
		a.log.Error("tessellate failed", zap.Error(err))
		report.Errors = append(report.Errors, engine.EvalError{Message: "tessellation failed: " + err.Error()})
		return
	}
	for i, m := range meshes {
		report.Meshes = append(report.Meshes, MeshData{
			Vertices: m.Vertices,
			Normals:  m.Normals,
			Indices:  m.Indices,
			Name:     m.Name,
			Color:    colorPalette[i%len(colorPalette)],
		})
	}
	a.log.Debug("tessellated scene", zap.Int("meshes", len(meshes)))
}
