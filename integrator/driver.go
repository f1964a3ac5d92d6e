// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package integrator implements component F: the explicit second-order
// Newmark time loop that drives the physics kernels over every element,
// assembles the pushed residual into the global acceleration field,
// inverts the lumped mass, updates the displacement/velocity history,
// and schedules source injection, receiver sampling and snapshot output.
package integrator

import (
	"math"

	"github.com/cpmech/gosem/dof"
	"github.com/cpmech/gosem/element"
	"github.com/cpmech/gosem/glog"
	"github.com/cpmech/gosem/physics"
	"github.com/cpmech/gosem/xerr"
)

// Source is anything a Driver can query for a time-dependent nodal
// forcing localized inside one element.
type Source interface {
	ElemID() int
	XiLocal() []float64
	NumComponents() int
	ValueAt(t float64) []float64 // length NumComponents()
}

// Receiver accumulates a sampled trace at a fixed reference location.
type Receiver interface {
	ElemID() int
	XiLocal() []float64
	Sample(t float64, values []float64)
	TraceName() string
	TraceData() (times []float64, traces [][]float64)
}

// SnapshotWriter is called at the configured cadence with the full field
// snapshot; nil disables snapshotting.
type SnapshotWriter interface {
	WriteFrame(step int, t float64, field string, values []float64) error
}

// TraceWriter flushes a receiver's accumulated trace to durable storage;
// nil disables flushing (Receivers keep accumulating in memory only).
type TraceWriter interface {
	Flush(name string, times []float64, traces [][]float64) error
}

// Driver owns the global time-stepping state for one physics over one
// partition of elements.
type Driver struct {
	Elems   []*element.Element
	Kernels []physics.Kernel
	Section *dof.Section

	// state holds every pointwise (non-assembled) field: u*, v*, a_* by
	// name, each of length Section.NumGlobal.
	state map[string][]float64

	// accel holds the push (acceleration) fields, which ARE assembled
	// via scatter-add across elements sharing a DoF.
	accel map[string]*dof.Field
	mi    map[string][]float64

	pinnedGlobal map[int]bool

	Sources   []Source
	Receivers []Receiver
	Snapshot  SnapshotWriter

	// Traces flushes Receivers' batched samples every TraceFlushEvery
	// steps and once more when Run finishes, bounding the in-memory
	// trace buffer on long runs; nil disables flushing.
	Traces          TraceWriter
	TraceFlushEvery int

	Dt, Duration float64
	T            float64
	Step         int

	SnapshotField string
	SnapshotEvery int

	StrictCFL bool
	Sentinel  float64 // NumericalBlowup threshold, default 5

	Log glog.Logger
}

// New builds a Driver over a set of elements and their matching physics
// kernels (already Setup and, where pinned, wrapped in *physics.Dirichlet).
func New(elems []*element.Element, kernels []physics.Kernel, section *dof.Section) *Driver {
	d := &Driver{
		Elems:        elems,
		Kernels:      kernels,
		Section:      section,
		state:        make(map[string][]float64),
		accel:        make(map[string]*dof.Field),
		mi:           make(map[string][]float64),
		pinnedGlobal: make(map[int]bool),
		Sentinel:     5,
		Log:          glog.New("integrator"),
	}
	d.buildFields()
	d.buildMass()
	return d
}

func (d *Driver) buildFields() {
	seen := make(map[string]bool)
	for _, k := range d.Kernels {
		for _, pull := range k.PullFields() {
			if !seen[pull] {
				seen[pull] = true
				d.state[pull] = make([]float64, d.Section.NumGlobal)
				d.state["v"+suffixOf(pull)] = make([]float64, d.Section.NumGlobal)
			}
		}
		for _, push := range k.PushFields() {
			if _, ok := d.accel[push]; !ok {
				d.accel[push] = dof.NewField(push, d.Section)
				d.state[push+"_"] = make([]float64, d.Section.NumGlobal)
			}
		}
	}
}

func (d *Driver) buildMass() {
	byField := make(map[string][][]float64)
	for e, k := range d.Kernels {
		for name, m := range k.Mass(d.Elems[e]) {
			for len(byField[name]) <= e {
				byField[name] = append(byField[name], nil)
			}
			byField[name][e] = m
		}
	}
	for name, elemMass := range byField {
		padded := make([][]float64, len(d.Elems))
		copy(padded, elemMass)
		d.mi[name] = dof.AssembleMass(d.Section, padded)
	}
}

// suffixOf turns a pull-field name into the matching velocity/push
// suffix: "u" -> "", "ux" -> "x".
func suffixOf(pull string) string {
	return pull[1:]
}

// SetHomogeneousDirichlet pins the global DoFs under faceLocalNodes for
// element elemIdx (caller enumerates these from the boundary sideset map
// and element.FaceNodes).
func (d *Driver) SetHomogeneousDirichlet(elemIdx int, faceLocalNodes []int) {
	for _, g := range dof.PinnedGlobalDofs(d.Section, elemIdx, faceLocalNodes) {
		d.pinnedGlobal[g] = true
	}
}

// RunStep advances the simulation by one time step (the ten-stage
// pull/compute/push/assemble/mass-solve/update/sample/snapshot cycle).
func (d *Driver) RunStep() error {
	pulled := d.pullElements()

	for name := range d.accel {
		d.accel[name].Zero()
	}

	for e, k := range d.Kernels {
		r := k.StiffnessAction(d.Elems[e], pulled[e])
		for name, val := range r {
			fe := make([]float64, len(val))
			for p, v := range val {
				fe[p] = -v
			}
			d.Section.ClosureSet(d.accel[name].Local, e, fe, true)
		}
	}
	d.injectSources()

	for name := range d.accel {
		d.accel[name].LocalToGlobal()
	}

	for name := range d.accel {
		g := d.accel[name].Global
		for p := range d.pinnedGlobal {
			g[p] = 0
		}
	}

	for name, mi := range d.mi {
		g := d.accel[name].Global
		for i := range g {
			g[i] *= mi[i]
		}
	}

	for name, accel := range d.accel {
		suffix := name[1:]
		u := d.state["u"+suffix]
		v := d.state["v"+suffix]
		aPrev := d.state[name+"_"]
		a := accel.Global
		for i := range u {
			v[i] += 0.5 * d.Dt * (a[i] + aPrev[i])
			u[i] += d.Dt*v[i] + 0.5*d.Dt*d.Dt*a[i]
			if math.Abs(u[i]) > d.Sentinel {
				return &xerr.NumericalBlowup{Field: "u" + suffix, DofIdx: i, Value: u[i], Sentinel: d.Sentinel}
			}
			aPrev[i] = a[i]
		}
	}

	d.sampleReceivers()
	d.maybeSnapshot()
	d.maybeFlushTraces()

	d.T += d.Dt
	d.Step++
	return nil
}

// Run advances until T >= Duration, checking the CFL bound once before
// the first step.
func (d *Driver) Run() error {
	d.checkCFL()
	for d.T < d.Duration {
		if err := d.RunStep(); err != nil {
			return err
		}
	}
	d.flushTraces()
	return nil
}

func (d *Driver) checkCFL() {
	for e, k := range d.Kernels {
		bound := k.CFL(d.Elems[e])
		if bound > 0 && d.Dt > bound {
			msg := "time step exceeds CFL bound on element"
			if d.StrictCFL {
				panic(&xerr.ConfigError{Flag: "--time-step", Reason: msg})
			}
			d.Log.Warnf("%s %d: dt=%.6g > bound=%.6g", msg, d.Elems[e].ID, d.Dt, bound)
		}
	}
}

func (d *Driver) pullElements() []map[string][]float64 {
	out := make([]map[string][]float64, len(d.Elems))
	for e, k := range d.Kernels {
		m := make(map[string][]float64, len(k.PullFields()))
		for _, name := range k.PullFields() {
			m[name] = d.Section.ClosureGet(d.state[name], e)
		}
		out[e] = m
	}
	return out
}

func (d *Driver) injectSources() {
	for _, src := range d.Sources {
		e := src.ElemID()
		c, err := d.Elems[e].DeltaCoefficients(src.XiLocal())
		if err != nil {
			continue
		}
		vals := src.ValueAt(d.T)
		push := d.Kernels[e].PushFields()
		for comp, name := range push {
			if comp >= len(vals) {
				break
			}
			fe := make([]float64, len(c))
			for p := range c {
				fe[p] = c[p] * vals[comp]
			}
			d.Section.ClosureSet(d.accel[name].Local, e, fe, true)
		}
	}
}

func (d *Driver) sampleReceivers() {
	for _, rec := range d.Receivers {
		e := rec.ElemID()
		l, err := d.Elems[e].InterpAt(rec.XiLocal())
		if err != nil {
			continue
		}
		pull := d.Kernels[e].PullFields()
		values := make([]float64, len(pull))
		for i, name := range pull {
			local := d.Section.ClosureGet(d.state[name], e)
			var v float64
			for p, w := range l {
				v += w * local[p]
			}
			values[i] = v
		}
		rec.Sample(d.T, values)
	}
}

// maybeFlushTraces flushes every receiver's accumulated trace once every
// TraceFlushEvery steps, bounding how long samples sit in memory on long
// runs; Run also flushes unconditionally once after the loop ends so the
// tail between the last cadence hit and the final step is not lost.
func (d *Driver) maybeFlushTraces() {
	if d.Traces == nil || d.TraceFlushEvery <= 0 {
		return
	}
	if d.Step%d.TraceFlushEvery != 0 {
		return
	}
	d.flushTraces()
}

func (d *Driver) flushTraces() {
	if d.Traces == nil {
		return
	}
	for _, rec := range d.Receivers {
		times, traces := rec.TraceData()
		if err := d.Traces.Flush(rec.TraceName(), times, traces); err != nil {
			d.Log.Errorf("trace flush failed for receiver %s: %v", rec.TraceName(), err)
		}
	}
}

func (d *Driver) maybeSnapshot() {
	if d.Snapshot == nil || d.SnapshotEvery <= 0 {
		return
	}
	if d.Step%d.SnapshotEvery != 0 {
		return
	}
	if field, ok := d.state[d.SnapshotField]; ok {
		if err := d.Snapshot.WriteFrame(d.Step, d.T, d.SnapshotField, field); err != nil {
			d.Log.Errorf("snapshot write failed at step %d: %v", d.Step, err)
		}
	}
}
