package services

import (
	"iter"

	"github.com/reglet-dev/ketchlist/internal/application/dto"
	apperrors "github.com/reglet-dev/ketchlist/internal/application/errors"
	"github.com/reglet-dev/ketchlist/internal/application/ports"
	"github.com/reglet-dev/ketchlist/internal/domain"
)

// lineWriter writes accepted candidates to a sink and keeps running and
// per-stage counts.
type lineWriter struct {
	sink ports.WordlistSink
	path string

	written  uint64
	filtered uint64

	// counts at the last checkpoint
	markWritten  uint64
	markFiltered uint64
}

// emit writes line when ok is true and counts it as filtered otherwise.
func (w *lineWriter) emit(line string, ok bool) error {
	if !ok {
		w.filtered++
		return nil
	}
	if err := w.sink.WriteLine(line); err != nil {
		return apperrors.NewOutputError(w.path, "write", err)
	}
	w.written++
	return nil
}

// emitAll drains seq through emit, stopping at the first write failure.
func (w *lineWriter) emitAll(seq iter.Seq2[string, bool]) error {
	for line, ok := range seq {
		if err := w.emit(line, ok); err != nil {
			return err
		}
	}
	return nil
}

// checkpoint returns the counts since the previous checkpoint.
func (w *lineWriter) checkpoint(stage domain.Stage) dto.StageCount {
	count := dto.StageCount{
		Stage:    stage,
		Written:  w.written - w.markWritten,
		Filtered: w.filtered - w.markFiltered,
	}
	w.markWritten, w.markFiltered = w.written, w.filtered
	return count
}
