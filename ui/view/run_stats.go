package view

import (
	"fmt"
	"time"

	//lint:ignore ST1001 Dot import for concise Tk widget DSL.
	. "modernc.org/tk9.0"
)

// RunStats shows how long the current render has been running and the
// accumulated render time of the session.
type RunStats interface {
	SetTiming(run, total time.Duration, runs int)
}

type runStats struct {
	runLbl   *LabelWidget
	totalLbl *LabelWidget
}

// NewRunStats creates the duration labels at (row, startCol) and
// (row, startCol+1) inside parent, or the App root when parent is nil.
func NewRunStats(parent *FrameWidget, row, startCol int) RunStats {
	s := &runStats{runLbl: Label(Width(18)), totalLbl: Label(Width(24))}
	if parent != nil {
		Grid(s.runLbl, In(parent), Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
		Grid(s.totalLbl, In(parent), Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	} else {
		Grid(s.runLbl, Row(row), Column(startCol), Sticky("w"), Padx("0.2m"))
		Grid(s.totalLbl, Row(row), Column(startCol+1), Sticky("w"), Padx("0.2m"))
	}
	s.SetTiming(0, 0, 0)
	return s
}

func (s *runStats) SetTiming(run, total time.Duration, runs int) {
	if s == nil || s.runLbl == nil || s.totalLbl == nil {
		return
	}
	s.runLbl.Configure(Txt("Генерация: " + clock(run)))
	s.totalLbl.Configure(Txt(fmt.Sprintf("Всего: %s (%d)", clock(total), runs)))
}

// clock formats d as mm:ss.
func clock(d time.Duration) string {
	seconds := int(d.Seconds())
	return fmt.Sprintf("%02d:%02d", seconds/60, seconds%60)
}
