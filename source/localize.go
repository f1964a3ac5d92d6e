// Copyright 2016 The Gofem Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package source

import (
	"strconv"

	"github.com/cpmech/gosem/element"
	"github.com/cpmech/gosem/glog"
	"github.com/cpmech/gosem/shape"
	"github.com/cpmech/gosem/xerr"
)

// owner runs the two-pass localization protocol shared by sources and
// receivers: every element is offered the point to count candidate
// owners (finalize=false); ties are broken by the smallest element id,
// matching the shape layer's check_hull boundary-ownership policy; the
// winner then solves inverse_map once (finalize=true).
func owner(x []float64, elems []*element.Element) (elemIdx int, xi []float64, ok bool) {
	best := -1
	for i, e := range elems {
		sh := shape.New(e.Kind)
		inside, onBoundary := sh.CheckHull(x, e.V)
		if !inside && !onBoundary {
			continue
		}
		if best == -1 || e.ID < elems[best].ID {
			best = i
		}
	}
	if best == -1 {
		return 0, nil, false
	}
	sh := shape.New(elems[best].Kind)
	xiLocal, err := sh.InverseMap(x, elems[best].V)
	if err != nil {
		return 0, nil, false
	}
	return best, xiLocal, true
}

// Localize offers every source to every element and caches the owning
// element and reference coordinate; sources outside the mesh are dropped
// with a warning (LocalizationError, non-fatal).
func Localize(sources []*Source, elems []*element.Element, log glog.Logger) []*Source {
	kept := sources[:0]
	for _, s := range sources {
		e, xi, ok := owner(s.X, elems)
		if !ok {
			err := &xerr.LocalizationError{Kind: "source", ID: strconv.Itoa(s.ID), Location: s.X}
			log.Warnf("%v", err)
			continue
		}
		s.elemID = e
		s.xiLocal = xi
		s.localized = true
		kept = append(kept, s)
	}
	return kept
}

// LocalizeReceivers is the receiver counterpart of Localize.
func LocalizeReceivers(recs []*Receiver, elems []*element.Element, log glog.Logger) []*Receiver {
	kept := recs[:0]
	for _, r := range recs {
		e, xi, ok := owner(r.X, elems)
		if !ok {
			err := &xerr.LocalizationError{Kind: "receiver", ID: r.Name, Location: r.X}
			log.Warnf("%v", err)
			continue
		}
		r.elemID = e
		r.xiLocal = xi
		r.localized = true
		kept = append(kept, r)
	}
	return kept
}
